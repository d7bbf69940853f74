package irisgl

// Color is an RGBA color in 8-bit channels.
type Color struct {
	R, G, B, A uint8
}

func RGB(r, g, b uint8) Color     { return Color{R: r, G: g, B: b, A: 0xFF} }
func RGBA(r, g, b, a uint8) Color { return Color{R: r, G: g, B: b, A: a} }

// On reports whether the color lights a pixel on a 1-bit display.
func (c Color) On() bool {
	return c.R >= 0x80 || c.G >= 0x80 || c.B >= 0x80
}
