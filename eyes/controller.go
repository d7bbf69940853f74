package eyes

import (
	"fmt"
	"time"
)

// BlinkPhase is the blink state machine position.
type BlinkPhase uint8

const (
	BlinkIdle BlinkPhase = iota
	BlinkClosing
	BlinkClosed
	BlinkOpening
)

type blinkTiming struct {
	closing time.Duration
	closed  time.Duration
	opening time.Duration
}

// Interpolation is linear everywhere; these tables are the tunable if the
// original visual feel ever needs matching more closely.
var blinkTimings = [speedCount]blinkTiming{
	SpeedSlow:   {closing: 220 * time.Millisecond, closed: 90 * time.Millisecond, opening: 220 * time.Millisecond},
	SpeedMedium: {closing: 140 * time.Millisecond, closed: 60 * time.Millisecond, opening: 140 * time.Millisecond},
	SpeedFast:   {closing: 70 * time.Millisecond, closed: 40 * time.Millisecond, opening: 70 * time.Millisecond},
}

var lookDurations = [speedCount]time.Duration{
	SpeedSlow:   600 * time.Millisecond,
	SpeedMedium: 350 * time.Millisecond,
	SpeedFast:   160 * time.Millisecond,
}

// Shape is one eye's configured geometry.
type Shape struct {
	Width  float64
	Height float64
	Radius float64
}

// Params is the resolved configuration the engine is built from.
type Params struct {
	ScreenWidth  int
	ScreenHeight int
	Distance     float64 // gap between the eyes' inner edges
	Left, Right  Shape
}

type blinkState struct {
	phase   BlinkPhase
	speed   Speed
	sel     EyeSelector
	elapsed time.Duration
	queued  *queuedBlink
}

type queuedBlink struct {
	speed Speed
	sel   EyeSelector
}

type lookState struct {
	active       bool
	dir          Direction
	fromX, fromY float64
	toX, toY     float64
	elapsed      time.Duration
	duration     time.Duration
}

// Controller owns the two eye models and advances the animation state machine
// once per external tick. It is single-threaded by contract: the caller
// serializes commands, Tick, and rendering.
type Controller struct {
	screenW, screenH int

	left  EyeModel
	right EyeModel

	mood        Mood
	curious     bool // explicit SetCurious latch
	moodCurious bool // MoodCurious shape effect

	offX, offY float64 // shared gaze offset from home
	look       lookState
	blink      blinkState
}

// NewController builds a controller with both eyes at rest, default mood.
func NewController(p Params) *Controller {
	c := &Controller{
		screenW: p.ScreenWidth,
		screenH: p.ScreenHeight,
	}
	c.left.SetBaseSize(p.Left.Width, p.Left.Height, p.Left.Radius)
	c.right.SetBaseSize(p.Right.Width, p.Right.Height, p.Right.Radius)

	cx := float64(p.ScreenWidth) / 2
	cy := float64(p.ScreenHeight) / 2
	c.left.setHome(cx-p.Distance/2-p.Left.Width/2, cy)
	c.right.setHome(cx+p.Distance/2+p.Right.Width/2, cy)

	c.left.ApplyMoodShape(MoodDefault)
	c.right.ApplyMoodShape(MoodDefault)
	c.applyPose()
	return c
}

// Left returns the left eye model. Read-only for callers outside the engine.
func (c *Controller) Left() *EyeModel { return &c.left }

// Right returns the right eye model.
func (c *Controller) Right() *EyeModel { return &c.right }

func (c *Controller) Mood() Mood { return c.mood }

// BlinkPhase returns the current blink state machine position.
func (c *Controller) BlinkPhase() BlinkPhase { return c.blink.phase }

// Idle reports whether no blink or look animation is in flight.
func (c *Controller) Idle() bool {
	return c.blink.phase == BlinkIdle && !c.look.active
}

// Look starts gaze interpolation toward the given direction. A look command
// overrides any in-flight look immediately; rapid redirection is wanted for
// responsiveness.
func (c *Controller) Look(dir Direction, sp Speed) error {
	if !dir.valid() {
		return fmt.Errorf("%w: direction %d", ErrInvalidCommand, uint8(dir))
	}
	if !sp.valid() {
		return fmt.Errorf("%w: speed %d", ErrInvalidCommand, uint8(sp))
	}
	dx, dy := dir.vector()
	c.look = lookState{
		active:   true,
		dir:      dir,
		fromX:    c.offX,
		fromY:    c.offY,
		toX:      float64(dx) * c.roomX(dx),
		toY:      float64(dy) * c.roomY(dy),
		duration: lookDurations[sp],
	}
	return nil
}

// Blink starts a blink for the selected eye(s). A blink arriving mid-blink is
// queued (latest wins) rather than interrupting the in-flight one, avoiding
// coverage discontinuities.
func (c *Controller) Blink(sp Speed, sel EyeSelector) error {
	if !sp.valid() {
		return fmt.Errorf("%w: speed %d", ErrInvalidCommand, uint8(sp))
	}
	if !sel.valid() {
		return fmt.Errorf("%w: eye selector %d", ErrInvalidCommand, uint8(sel))
	}
	if c.blink.phase != BlinkIdle {
		c.blink.queued = &queuedBlink{speed: sp, sel: sel}
		return nil
	}
	c.startBlink(sp, sel)
	return nil
}

func (c *Controller) startBlink(sp Speed, sel EyeSelector) {
	c.blink.phase = BlinkClosing
	c.blink.speed = sp
	c.blink.sel = sel
	c.blink.elapsed = 0
}

// SetMood applies the mood's eyelid shape instantly. Smooth mood transitions
// are future work.
func (c *Controller) SetMood(m Mood) error {
	if !m.valid() {
		return fmt.Errorf("%w: mood %d", ErrInvalidCommand, uint8(m))
	}
	c.mood = m
	c.moodCurious = m == MoodCurious
	c.left.ApplyMoodShape(m)
	c.right.ApplyMoodShape(m)
	c.applyPose()
	return nil
}

// SetCurious toggles curious mode directly, independent of mood.
func (c *Controller) SetCurious(active bool) {
	c.curious = active
	c.applyPose()
}

// Tick advances all animations by the elapsed wall time and refreshes the eye
// models. Negative elapsed is treated as zero.
func (c *Controller) Tick(elapsed time.Duration) {
	if elapsed > 0 {
		c.advanceLook(elapsed)
		c.advanceBlink(elapsed)
	}
	c.applyPose()
}

func (c *Controller) advanceLook(d time.Duration) {
	if !c.look.active {
		return
	}
	c.look.elapsed += d
	if c.look.duration <= 0 || c.look.elapsed >= c.look.duration {
		c.offX, c.offY = c.look.toX, c.look.toY
		c.look.active = false
		return
	}
	f := float64(c.look.elapsed) / float64(c.look.duration)
	c.offX = c.look.fromX + (c.look.toX-c.look.fromX)*f
	c.offY = c.look.fromY + (c.look.toY-c.look.fromY)*f
}

func (c *Controller) advanceBlink(d time.Duration) {
	if c.blink.phase == BlinkIdle {
		return
	}
	t := blinkTimings[c.blink.speed]
	c.blink.elapsed += d
	for {
		var dur time.Duration
		switch c.blink.phase {
		case BlinkClosing:
			dur = t.closing
		case BlinkClosed:
			dur = t.closed
		case BlinkOpening:
			dur = t.opening
		default:
			return
		}
		if c.blink.elapsed < dur {
			return
		}
		c.blink.elapsed -= dur
		switch c.blink.phase {
		case BlinkClosing:
			c.blink.phase = BlinkClosed
		case BlinkClosed:
			c.blink.phase = BlinkOpening
		case BlinkOpening:
			c.blink.phase = BlinkIdle
			c.blink.elapsed = 0
			if q := c.blink.queued; q != nil {
				c.blink.queued = nil
				c.startBlink(q.speed, q.sel)
			} else {
				return
			}
		}
	}
}

// blinkProgress returns the closure fraction for one eye: 0 fully open at the
// mood baseline, 1 fully closed.
func (c *Controller) blinkProgress(left bool) float64 {
	if c.blink.phase == BlinkIdle || !c.blink.sel.covers(left) {
		return 0
	}
	t := blinkTimings[c.blink.speed]
	switch c.blink.phase {
	case BlinkClosing:
		if t.closing <= 0 {
			return 1
		}
		return clamp01(float64(c.blink.elapsed) / float64(t.closing))
	case BlinkClosed:
		return 1
	case BlinkOpening:
		if t.opening <= 0 {
			return 0
		}
		return clamp01(1 - float64(c.blink.elapsed)/float64(t.opening))
	}
	return 0
}

// gazeSide reports the horizontal gaze direction: negative left, positive
// right, zero centered. An in-flight look counts by its destination.
func (c *Controller) gazeSide() float64 {
	if c.look.active {
		return c.look.toX
	}
	return c.offX
}

// roomX is the available horizontal travel in the signed direction, limited
// by whichever eye is closer to that screen edge at its current size.
func (c *Controller) roomX(sign int) float64 {
	if sign == 0 {
		return 0
	}
	room := -1.0
	for _, e := range [...]*EyeModel{&c.left, &c.right} {
		hw := e.Width() / 2
		var v float64
		if sign > 0 {
			v = float64(c.screenW) - (e.homeX + hw)
		} else {
			v = e.homeX - hw
		}
		if room < 0 || v < room {
			room = v
		}
	}
	if room < 0 {
		room = 0
	}
	return room
}

func (c *Controller) roomY(sign int) float64 {
	if sign == 0 {
		return 0
	}
	room := -1.0
	for _, e := range [...]*EyeModel{&c.left, &c.right} {
		hh := e.Height() / 2
		var v float64
		if sign > 0 {
			v = float64(c.screenH) - (e.homeY + hh)
		} else {
			v = e.homeY - hh
		}
		if room < 0 || v < room {
			room = v
		}
	}
	if room < 0 {
		room = 0
	}
	return room
}

// applyPose recomputes both eye models from the animation state: curious
// scale by gaze side, eyelid coverage (blink overrides the baseline it
// interpolates from), and clamped centers.
func (c *Controller) applyPose() {
	active := c.curious || c.moodCurious
	leftOuter := c.gazeSide() <= 0
	c.left.ApplyCuriousScale(active, leftOuter)
	c.right.ApplyCuriousScale(active, !leftOuter)

	eyesPair := [...]*EyeModel{&c.left, &c.right}
	for i, e := range eyesPair {
		p := c.blinkProgress(i == 0)
		gap := 1 - e.restTop - e.restBottom
		if gap < 0 {
			gap = 0
		}
		e.SetEyelidCoverage(e.restTop+0.5*gap*p, e.restBottom+0.5*gap*p)
		e.place(e.homeX+c.offX, e.homeY+c.offY, float64(c.screenW), float64(c.screenH))
	}
}
