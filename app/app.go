// Package app wires the HAL, configuration, and eye animation engine into a
// running face: per-frame tick/render, button command mapping, idle behavior,
// and the stats page.
package app

import (
	"fmt"
	"time"

	"faceplate/eyeconfig"
	"faceplate/eyes"
	"faceplate/hal"
	"faceplate/irisgl"
	"faceplate/stats"
)

// Config carries the host-resolved pieces into the app. The zero value runs
// with compiled defaults and seed-derived eye geometry.
type Config struct {
	Resolved eyeconfig.Resolved
	Seed     uint64
	Stats    func() stats.Snapshot
}

type system struct {
	log    hal.Logger
	fb     hal.Framebuffer
	target irisgl.Target

	ctrl *eyes.Controller
	ren  *eyes.Renderer
	idle *idler

	stats     func() stats.Snapshot
	showStats bool
	curious   bool
	moodIdx   int

	fps     int
	ticks   <-chan uint64
	buttons <-chan hal.ButtonEvent
}

// New initializes the face with default config and returns the per-frame
// step function.
func New(h hal.HAL) func() error {
	return NewWithConfig(h, Config{})
}

// NewWithConfig initializes the face and returns the per-frame step function
// for an external runner (window, headless).
func NewWithConfig(h hal.HAL, cfg Config) func() error {
	s := newSystem(h, cfg)
	return s.step
}

// Run initializes the face and drives it at the configured frame rate,
// blocking forever (TinyGo entrypoint).
func Run(h hal.HAL) {
	s := newSystem(h, Config{})
	frame := time.Second / time.Duration(s.fps)
	for {
		time.Sleep(frame)
		if err := s.step(); err != nil {
			s.log.WriteLineString("app: present failed: " + err.Error())
		}
	}
}

func newSystem(h hal.HAL, cfg Config) *system {
	log := h.Logger()
	fb := h.Display().Framebuffer()

	res := cfg.Resolved
	if res == (eyeconfig.Resolved{}) {
		res = eyeconfig.ResolveDefaults(cfg.Seed)
	}
	// The attached panel wins over whatever the config claims.
	res = res.FitScreen(fb.Width(), fb.Height())

	s := &system{
		log:     log,
		fb:      fb,
		ctrl:    eyes.NewController(engineParams(res)),
		ren:     eyes.NewRenderer(),
		idle:    newIdler(cfg.Seed),
		stats:   cfg.Stats,
		fps:     res.FPS,
		ticks:   h.Time().Ticks(),
		buttons: h.Buttons().Events(),
	}

	switch fb.Format() {
	case hal.PixelFormatMono1:
		s.target = &irisgl.Mono1Target{Buf: fb.Buffer(), Stride: fb.StrideBytes(), W: fb.Width(), H: fb.Height()}
	default:
		s.target = &irisgl.RGB565Target{Buf: fb.Buffer(), Stride: fb.StrideBytes(), W: fb.Width(), H: fb.Height()}
	}

	log.WriteLineString(fmt.Sprintf(
		"app: %dx%d screen, eyes %dx%d/%dx%d distance %d (derived=%v)",
		res.ScreenWidth, res.ScreenHeight,
		res.Left.Width, res.Left.Height, res.Right.Width, res.Right.Height,
		res.Distance, res.Derived,
	))
	return s
}

func engineParams(res eyeconfig.Resolved) eyes.Params {
	return eyes.Params{
		ScreenWidth:  res.ScreenWidth,
		ScreenHeight: res.ScreenHeight,
		Distance:     float64(res.Distance),
		Left: eyes.Shape{
			Width:  float64(res.Left.Width),
			Height: float64(res.Left.Height),
			Radius: float64(res.Left.Roundness),
		},
		Right: eyes.Shape{
			Width:  float64(res.Right.Width),
			Height: float64(res.Right.Height),
			Radius: float64(res.Right.Roundness),
		},
	}
}

// step advances one frame: consume elapsed ticks, apply input, animate, draw,
// present.
func (s *system) step() error {
	elapsed := s.drainTicks()
	s.handleButtons()
	s.idle.advance(s.ctrl, elapsed)
	s.ctrl.Tick(elapsed)

	if s.showStats && s.stats != nil {
		stats.Render(s.target, s.stats())
	} else {
		s.ren.Render(s.target, s.ctrl)
	}
	return s.fb.Present()
}

func (s *system) drainTicks() time.Duration {
	var n int
	for {
		select {
		case <-s.ticks:
			n++
		default:
			return time.Duration(n) * time.Millisecond
		}
	}
}

// moodOrder is the cycle the mood button walks through.
var moodOrder = [...]eyes.Mood{
	eyes.MoodDefault,
	eyes.MoodHappy,
	eyes.MoodAngry,
	eyes.MoodTired,
	eyes.MoodCurious,
}

func (s *system) handleButtons() {
	for {
		select {
		case ev := <-s.buttons:
			if !ev.Press {
				continue
			}
			s.idle.suppress(5 * time.Second)
			s.applyButton(ev.Code)
		default:
			return
		}
	}
}

func (s *system) applyButton(code hal.ButtonCode) {
	var err error
	switch code {
	case hal.ButtonUp:
		err = s.ctrl.Look(eyes.DirTop, eyes.SpeedMedium)
	case hal.ButtonDown:
		err = s.ctrl.Look(eyes.DirBottom, eyes.SpeedMedium)
	case hal.ButtonLeft:
		err = s.ctrl.Look(eyes.DirLeft, eyes.SpeedMedium)
	case hal.ButtonRight:
		err = s.ctrl.Look(eyes.DirRight, eyes.SpeedMedium)
	case hal.ButtonBlink:
		err = s.ctrl.Blink(eyes.SpeedMedium, eyes.SelectBoth)
	case hal.ButtonMood:
		s.moodIdx = (s.moodIdx + 1) % len(moodOrder)
		err = s.ctrl.SetMood(moodOrder[s.moodIdx])
	case hal.ButtonCurious:
		s.curious = !s.curious
		s.ctrl.SetCurious(s.curious)
	case hal.ButtonStats:
		s.showStats = !s.showStats
	}
	if err != nil {
		s.log.WriteLineString("app: " + err.Error())
	}
}
