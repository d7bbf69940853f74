package irisgl

// Target is a minimal pixel target for software rasterization.
//
// Implementations must clip out-of-bounds coordinates.
type Target interface {
	Size() (w, h int)
	SetPixel(x, y int, c Color)
	Clear(c Color)
}

// RGB565Target rasterizes into an RGB565 framebuffer buffer.
//
// Callers provide the backing buffer and layout (stride); the type requires
// no display or HAL services and is usable in tests over a plain slice.
type RGB565Target struct {
	Buf    []byte
	Stride int // bytes per row
	W      int
	H      int
}

func (t *RGB565Target) Size() (w, h int) { return t.W, t.H }

func (t *RGB565Target) Clear(c Color) {
	if t == nil || t.Buf == nil || t.Stride <= 0 || t.W <= 0 || t.H <= 0 {
		return
	}
	p := rgb565From888(c.R, c.G, c.B)
	lo := byte(p)
	hi := byte(p >> 8)
	for y := 0; y < t.H; y++ {
		row := y * t.Stride
		for x := 0; x < t.W; x++ {
			off := row + x*2
			if off < 0 || off+1 >= len(t.Buf) {
				continue
			}
			t.Buf[off] = lo
			t.Buf[off+1] = hi
		}
	}
}

func (t *RGB565Target) SetPixel(x, y int, c Color) {
	if t == nil || t.Buf == nil || t.Stride <= 0 || t.W <= 0 || t.H <= 0 {
		return
	}
	if x < 0 || y < 0 || x >= t.W || y >= t.H {
		return
	}
	off := y*t.Stride + x*2
	if off < 0 || off+1 >= len(t.Buf) {
		return
	}
	p := rgb565From888(c.R, c.G, c.B)
	t.Buf[off] = byte(p)
	t.Buf[off+1] = byte(p >> 8)
}

// Pixel returns the stored pixel expanded to RGB888. Out-of-bounds reads
// return black.
func (t *RGB565Target) Pixel(x, y int) (r, g, b uint8) {
	if t == nil || t.Buf == nil || x < 0 || y < 0 || x >= t.W || y >= t.H {
		return 0, 0, 0
	}
	off := y*t.Stride + x*2
	if off < 0 || off+1 >= len(t.Buf) {
		return 0, 0, 0
	}
	return rgb888From565(uint16(t.Buf[off]) | uint16(t.Buf[off+1])<<8)
}

func rgb565From888(r, g, b uint8) uint16 {
	return uint16((uint16(r>>3)&0x1F)<<11 | (uint16(g>>2)&0x3F)<<5 | (uint16(b>>3) & 0x1F))
}

func rgb888From565(p uint16) (r, g, b uint8) {
	rr := (p >> 11) & 0x1F
	gg := (p >> 5) & 0x3F
	bb := p & 0x1F
	return uint8((rr * 255) / 31), uint8((gg * 255) / 63), uint8((bb * 255) / 31)
}

// Mono1Target rasterizes into a 1-bit buffer, MSB-first within each byte,
// row-major. Stride is in bytes per row (at least (W+7)/8).
//
// Monochrome OLED panels (SSD1306 class) consume this layout after the
// driver's own page reordering.
type Mono1Target struct {
	Buf    []byte
	Stride int
	W      int
	H      int
}

func (t *Mono1Target) Size() (w, h int) { return t.W, t.H }

func (t *Mono1Target) Clear(c Color) {
	if t == nil || t.Buf == nil || t.Stride <= 0 || t.W <= 0 || t.H <= 0 {
		return
	}
	fill := byte(0x00)
	if c.On() {
		fill = 0xFF
	}
	for i := range t.Buf {
		t.Buf[i] = fill
	}
}

func (t *Mono1Target) SetPixel(x, y int, c Color) {
	if t == nil || t.Buf == nil || t.Stride <= 0 {
		return
	}
	if x < 0 || y < 0 || x >= t.W || y >= t.H {
		return
	}
	off := y*t.Stride + x/8
	if off < 0 || off >= len(t.Buf) {
		return
	}
	mask := byte(0x80) >> uint(x%8)
	if c.On() {
		t.Buf[off] |= mask
	} else {
		t.Buf[off] &^= mask
	}
}

// Pixel reports whether the pixel is lit. Out-of-bounds reads return false.
func (t *Mono1Target) Pixel(x, y int) bool {
	if t == nil || t.Buf == nil || x < 0 || y < 0 || x >= t.W || y >= t.H {
		return false
	}
	off := y*t.Stride + x/8
	if off < 0 || off >= len(t.Buf) {
		return false
	}
	return t.Buf[off]&(byte(0x80)>>uint(x%8)) != 0
}
