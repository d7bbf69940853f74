// Package stats renders a system status page as text lines. Gathering the
// numbers is the platform's job; this package only draws a snapshot it is
// handed.
package stats

import (
	"image/color"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"

	"faceplate/irisgl"
)

// Snapshot is one reading of the stats the page shows. Empty fields are
// skipped.
type Snapshot struct {
	Host string
	IP   string
	CPU  string
	Mem  string
	Disk string
	Temp string
}

func (s Snapshot) lines() []string {
	all := []string{s.Host, s.IP, s.CPU, s.Mem, s.Disk, s.Temp}
	out := all[:0]
	for _, l := range all {
		if l != "" {
			out = append(out, l)
		}
	}
	return out
}

const lineHeight = 11

// Render draws the snapshot onto the target, replacing its contents.
func Render(t irisgl.Target, s Snapshot) {
	if t == nil {
		return
	}
	t.Clear(irisgl.RGB(0, 0, 0))

	d := displayer{t: t}
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	y := int16(lineHeight)
	for _, line := range s.lines() {
		tinyfont.WriteLine(&d, &proggy.TinySZ8pt7b, 2, y, line, white)
		y += lineHeight
	}
}

// displayer adapts an irisgl.Target to the displayer interface tinyfont
// draws on.
type displayer struct {
	t irisgl.Target
}

func (d *displayer) Size() (x, y int16) {
	w, h := d.t.Size()
	return int16(w), int16(h)
}

func (d *displayer) SetPixel(x, y int16, c color.RGBA) {
	d.t.SetPixel(int(x), int(y), irisgl.RGBA(c.R, c.G, c.B, c.A))
}

func (d *displayer) Display() error { return nil }
