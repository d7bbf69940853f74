//go:build tinygo && ili9341

package hal

import (
	"machine"

	"tinygo.org/x/drivers/ili9341"
)

const (
	lcdWidth  = 320
	lcdHeight = 240
)

type ili9341Display struct {
	fb        *ili9341Framebuffer
	backlight machine.Pin
}

func initDisplay(logger Logger) Display {
	err := machine.SPI0.Configure(machine.SPIConfig{
		Frequency: 40_000_000,
		SCK:       machine.GP18,
		SDO:       machine.GP19,
		SDI:       machine.GP16,
	})
	if err != nil {
		logger.WriteLineString("display: spi configure failed: " + err.Error())
	}

	dc := machine.GP20
	cs := machine.GP17
	rst := machine.GP21
	bl := machine.GP22
	bl.Configure(machine.PinConfig{Mode: machine.PinOutput})
	bl.High()

	dev := ili9341.NewSPI(machine.SPI0, dc, cs, rst)
	dev.Configure(ili9341.Config{Width: lcdWidth, Height: lcdHeight})

	logger.WriteLineString("display: ili9341 320x240 on spi0")
	return &ili9341Display{fb: newILI9341Framebuffer(dev), backlight: bl}
}

func (d *ili9341Display) Framebuffer() Framebuffer { return d.fb }

func (d *ili9341Display) Backlight(on bool) error {
	if on {
		d.backlight.High()
	} else {
		d.backlight.Low()
	}
	return nil
}

type ili9341Framebuffer struct {
	dev    *ili9341.Device
	stride int
	buf    []byte // little-endian RGB565, as rasterized
	tx     []byte // big-endian scratch for the panel
}

func newILI9341Framebuffer(dev *ili9341.Device) *ili9341Framebuffer {
	stride := lcdWidth * 2
	return &ili9341Framebuffer{
		dev:    dev,
		stride: stride,
		buf:    make([]byte, stride*lcdHeight),
		tx:     make([]byte, stride*lcdHeight),
	}
}

func (f *ili9341Framebuffer) Width() int          { return lcdWidth }
func (f *ili9341Framebuffer) Height() int         { return lcdHeight }
func (f *ili9341Framebuffer) Format() PixelFormat { return PixelFormatRGB565 }
func (f *ili9341Framebuffer) StrideBytes() int    { return f.stride }
func (f *ili9341Framebuffer) Buffer() []byte      { return f.buf }

func (f *ili9341Framebuffer) ClearRGB(r, g, b uint8) {
	pixel := rgb565(r, g, b)
	lo := byte(pixel)
	hi := byte(pixel >> 8)
	for i := 0; i+1 < len(f.buf); i += 2 {
		f.buf[i] = lo
		f.buf[i+1] = hi
	}
}

// Present swaps to the panel's big-endian pixel order and pushes the frame.
func (f *ili9341Framebuffer) Present() error {
	for i := 0; i+1 < len(f.buf); i += 2 {
		f.tx[i] = f.buf[i+1]
		f.tx[i+1] = f.buf[i]
	}
	return f.dev.DrawRGBBitmap8(0, 0, f.tx, lcdWidth, lcdHeight)
}
