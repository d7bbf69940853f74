package hal

import "errors"

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

var ErrNotImplemented = errors.New("not implemented")

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGB565 is 16bpp: rrrrrggggggbbbbb, little-endian in the
	// buffer.
	PixelFormatRGB565 PixelFormat = iota + 1
	// PixelFormatMono1 is 1bpp, MSB-first within each byte, row-major.
	PixelFormatMono1
)

// Framebuffer is a simple pixel buffer plus a "present" hook.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	ClearRGB(r, g, b uint8)
	Present() error
}

// Display provides access to the framebuffer and panel controls.
type Display interface {
	Framebuffer() Framebuffer
	// Backlight switches the panel backlight where one exists; panels
	// without one return nil and do nothing.
	Backlight(on bool) error
}

// ButtonCode identifies a face button. The codes mirror the device's
// physical control cluster; hosts synthesize them from the keyboard.
type ButtonCode uint8

const (
	ButtonUnknown ButtonCode = iota
	ButtonUp
	ButtonDown
	ButtonLeft
	ButtonRight
	ButtonBlink
	ButtonMood
	ButtonCurious
	ButtonStats
)

// ButtonEvent is a button edge.
type ButtonEvent struct {
	Code  ButtonCode
	Press bool
}

// Buttons provides button events (best-effort on each platform).
type Buttons interface {
	Events() <-chan ButtonEvent
}

// Time provides a base tick stream.
//
// One tick is one millisecond of elapsed wall time; delivery is best-effort
// and may batch after stalls.
type Time interface {
	Ticks() <-chan uint64
}

// HAL is the only contact point between the engine wiring and the outside
// world.
type HAL interface {
	Logger() Logger
	Display() Display
	Buttons() Buttons
	Time() Time
}
