//go:build !tinygo

package hal

import "sync"

type hostFramebuffer struct {
	mu     sync.Mutex
	width  int
	height int
	format PixelFormat
	stride int
	buf    []byte
}

func newHostFramebuffer(width, height int, format PixelFormat) *hostFramebuffer {
	stride := width * 2
	if format == PixelFormatMono1 {
		stride = monoStride(width)
	}
	return &hostFramebuffer{
		width:  width,
		height: height,
		format: format,
		stride: stride,
		buf:    make([]byte, stride*height),
	}
}

func (f *hostFramebuffer) Width() int          { return f.width }
func (f *hostFramebuffer) Height() int         { return f.height }
func (f *hostFramebuffer) Format() PixelFormat { return f.format }
func (f *hostFramebuffer) StrideBytes() int    { return f.stride }
func (f *hostFramebuffer) Buffer() []byte      { return f.buf }
func (f *hostFramebuffer) Present() error      { return nil }

func (f *hostFramebuffer) ClearRGB(r, g, b uint8) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.format == PixelFormatMono1 {
		fill := byte(0x00)
		if monoOn(r, g, b) {
			fill = 0xFF
		}
		for i := range f.buf {
			f.buf[i] = fill
		}
		return
	}

	pixel := rgb565(r, g, b)
	lo := byte(pixel)
	hi := byte(pixel >> 8)
	for i := 0; i+1 < len(f.buf); i += 2 {
		f.buf[i] = lo
		f.buf[i+1] = hi
	}
}

func (f *hostFramebuffer) snapshot(dst []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	copy(dst, f.buf)
}
