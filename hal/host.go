//go:build !tinygo

package hal

import (
	"os"
	"sync"
)

type hostHAL struct {
	logger *hostLogger
	fb     *hostFramebuffer
	btns   *hostButtons
	t      *hostTime
}

// NewHost returns a host HAL with an in-memory framebuffer of the given
// geometry. The window and headless runners accept only HALs built here.
func NewHost(width, height int, format PixelFormat) HAL {
	return &hostHAL{
		logger: &hostLogger{w: os.Stdout},
		fb:     newHostFramebuffer(width, height, format),
		btns:   newHostButtons(),
		t:      newHostTime(),
	}
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) Display() Display { return hostDisplay{fb: h.fb, logger: h.logger} }
func (h *hostHAL) Buttons() Buttons { return h.btns }
func (h *hostHAL) Time() Time       { return h.t }

type hostDisplay struct {
	fb     *hostFramebuffer
	logger *hostLogger
}

func (d hostDisplay) Framebuffer() Framebuffer { return d.fb }

func (d hostDisplay) Backlight(on bool) error {
	// No panel on the host; keep the call observable for the demo.
	if on {
		d.logger.WriteLineString("display: backlight on")
	} else {
		d.logger.WriteLineString("display: backlight off")
	}
	return nil
}

type hostLogger struct {
	mu sync.Mutex
	w  *os.File
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.WriteString(s)
	l.w.WriteString("\n")
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.WriteString("\n")
}
