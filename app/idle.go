package app

import (
	"time"

	"faceplate/eyes"
)

func xorshift32(x uint32) uint32 {
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	return x
}

// idler wanders the gaze and triggers occasional blinks while no external
// commands arrive, so an unattended face never looks frozen. Seeded per unit
// to de-synchronize idle motion between devices.
type idler struct {
	rng        uint32
	hold       time.Duration // dwell before the next wander
	since      time.Duration
	suppressed time.Duration
}

func newIdler(seed uint64) *idler {
	r := uint32(seed) ^ uint32(seed>>32)
	if r == 0 {
		r = 0x12345678
	}
	return &idler{rng: r, hold: 2 * time.Second}
}

// suppress pauses idle behavior, e.g. while the user is driving the face.
func (i *idler) suppress(d time.Duration) {
	i.suppressed = d
}

func (i *idler) advance(c *eyes.Controller, d time.Duration) {
	if i.suppressed > 0 {
		i.suppressed -= d
		return
	}

	i.since += d
	if c.Idle() && i.since >= i.hold {
		i.since = 0
		i.rng = xorshift32(i.rng)
		// Drawn from the closed direction set, so Look cannot fail.
		_ = c.Look(eyes.Direction(i.rng%9), eyes.SpeedSlow)
		i.rng = xorshift32(i.rng)
		i.hold = time.Duration(1500+i.rng%2500) * time.Millisecond
	}

	// Spontaneous blink, mean interval about four seconds.
	if ms := uint32(d / time.Millisecond); ms > 0 {
		i.rng = xorshift32(i.rng)
		if i.rng%4000 < ms {
			_ = c.Blink(eyes.SpeedMedium, eyes.SelectBoth)
		}
	}
}
