//go:build tinygo && !ili9341

package hal

import (
	"image/color"
	"machine"

	"tinygo.org/x/drivers/ssd1306"
)

const (
	oledWidth  = 128
	oledHeight = 64
	oledAddr   = 0x3C
)

type ssd1306Display struct {
	fb *ssd1306Framebuffer
}

func initDisplay(logger Logger) Display {
	err := machine.I2C0.Configure(machine.I2CConfig{
		Frequency: 400_000,
		SDA:       machine.GP4,
		SCL:       machine.GP5,
	})
	if err != nil {
		logger.WriteLineString("display: i2c configure failed: " + err.Error())
	}

	dev := ssd1306.NewI2C(machine.I2C0)
	dev.Configure(ssd1306.Config{
		Width:    oledWidth,
		Height:   oledHeight,
		Address:  oledAddr,
		VccState: ssd1306.SWITCHCAPVCC,
	})
	dev.ClearDisplay()

	logger.WriteLineString("display: ssd1306 128x64 on i2c0")
	return &ssd1306Display{fb: newSSD1306Framebuffer(&dev)}
}

func (d *ssd1306Display) Framebuffer() Framebuffer { return d.fb }

// The bare OLED module has no backlight; the panel is the light source.
func (d *ssd1306Display) Backlight(on bool) error { return nil }

type ssd1306Framebuffer struct {
	dev    *ssd1306.Device
	stride int
	buf    []byte
}

func newSSD1306Framebuffer(dev *ssd1306.Device) *ssd1306Framebuffer {
	stride := monoStride(oledWidth)
	return &ssd1306Framebuffer{
		dev:    dev,
		stride: stride,
		buf:    make([]byte, stride*oledHeight),
	}
}

func (f *ssd1306Framebuffer) Width() int          { return oledWidth }
func (f *ssd1306Framebuffer) Height() int         { return oledHeight }
func (f *ssd1306Framebuffer) Format() PixelFormat { return PixelFormatMono1 }
func (f *ssd1306Framebuffer) StrideBytes() int    { return f.stride }
func (f *ssd1306Framebuffer) Buffer() []byte      { return f.buf }

func (f *ssd1306Framebuffer) ClearRGB(r, g, b uint8) {
	fill := byte(0x00)
	if monoOn(r, g, b) {
		fill = 0xFF
	}
	for i := range f.buf {
		f.buf[i] = fill
	}
}

// Present pushes the shadow buffer through the driver's page-addressed RAM.
func (f *ssd1306Framebuffer) Present() error {
	on := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	off := color.RGBA{A: 255}
	for y := 0; y < oledHeight; y++ {
		row := y * f.stride
		for x := 0; x < oledWidth; x++ {
			c := off
			if f.buf[row+x/8]&(byte(0x80)>>uint(x%8)) != 0 {
				c = on
			}
			f.dev.SetPixel(int16(x), int16(y), c)
		}
	}
	return f.dev.Display()
}
