//go:build !tinygo

package hal

import (
	"errors"
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"faceplate/internal/buildinfo"
)

// RunWindow starts a desktop window that displays the framebuffer and
// forwards keyboard input as button events. It blocks until the window
// closes. h must come from NewHost.
func RunWindow(h HAL, step func() error) error {
	hh, ok := h.(*hostHAL)
	if !ok {
		return errors.New("hal: window runner requires a host HAL")
	}

	g := &hostGame{h: hh, step: step}
	ebiten.SetWindowTitle("Faceplate (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(hh.fb.width*4, hh.fb.height*4)
	ebiten.SetTPS(60)
	return ebiten.RunGame(g)
}

type hostGame struct {
	h       *hostHAL
	img     *image.RGBA
	fbImg   *ebiten.Image
	scratch []byte
	step    func() error
}

func (g *hostGame) Update() error {
	g.h.btns.poll()
	g.h.t.step()
	if g.step != nil {
		if err := g.step(); err != nil {
			return err
		}
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	fb := g.h.fb
	if g.img == nil || g.img.Bounds().Dx() != fb.width || g.img.Bounds().Dy() != fb.height {
		g.img = image.NewRGBA(image.Rect(0, 0, fb.width, fb.height))
		g.scratch = make([]byte, len(fb.buf))
		if g.fbImg != nil {
			g.fbImg.Deallocate()
		}
		g.fbImg = ebiten.NewImage(fb.width, fb.height)
	}

	fb.snapshot(g.scratch)

	if fb.format == PixelFormatMono1 {
		g.expandMono()
	} else {
		g.expandRGB565()
	}

	g.fbImg.ReplacePixels(g.img.Pix)
	screen.DrawImage(g.fbImg, nil)
}

func (g *hostGame) expandRGB565() {
	src := g.scratch
	dst := g.img.Pix
	for i := 0; i+1 < len(src) && i/2*4+3 < len(dst); i += 2 {
		r, gg, b := rgb888From565(uint16(src[i]) | uint16(src[i+1])<<8)
		j := (i / 2) * 4
		dst[j+0] = r
		dst[j+1] = gg
		dst[j+2] = b
		dst[j+3] = 0xFF
	}
}

func (g *hostGame) expandMono() {
	fb := g.h.fb
	dst := g.img.Pix
	for y := 0; y < fb.height; y++ {
		row := y * fb.stride
		for x := 0; x < fb.width; x++ {
			off := row + x/8
			if off >= len(g.scratch) {
				continue
			}
			var v uint8
			if g.scratch[off]&(byte(0x80)>>uint(x%8)) != 0 {
				v = 0xFF
			}
			j := (y*fb.width + x) * 4
			dst[j+0] = v
			dst[j+1] = v
			dst[j+2] = v
			dst[j+3] = 0xFF
		}
	}
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.h.fb.width, g.h.fb.height
}
