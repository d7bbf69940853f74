package irisgl

import (
	"bytes"
	"testing"
)

func newTarget(w, h int) *RGB565Target {
	return &RGB565Target{Buf: make([]byte, w*2*h), Stride: w * 2, W: w, H: h}
}

func countLit(t *RGB565Target) int {
	n := 0
	for y := 0; y < t.H; y++ {
		for x := 0; x < t.W; x++ {
			if r, g, b := t.Pixel(x, y); r != 0 || g != 0 || b != 0 {
				n++
			}
		}
	}
	return n
}

func TestFillRectExactArea(t *testing.T) {
	tgt := newTarget(32, 32)
	FillRect(tgt, 4, 5, 10, 6, RGB(255, 255, 255))
	if got := countLit(tgt); got != 60 {
		t.Fatalf("lit pixels = %d, want 60", got)
	}
	if r, _, _ := tgt.Pixel(3, 5); r != 0 {
		t.Fatalf("pixel left of rect lit")
	}
	if r, _, _ := tgt.Pixel(4, 11); r != 0 {
		t.Fatalf("pixel below rect lit")
	}
}

func TestDegenerateShapesAreNoOps(t *testing.T) {
	tgt := newTarget(16, 16)
	white := RGB(255, 255, 255)

	FillRect(tgt, 2, 2, 0, 5, white)
	FillRect(tgt, 2, 2, 5, -1, white)
	FillRoundRect(tgt, 2, 2, 0, 0, 3, white)
	FillEllipse(tgt, 8, 8, 0, 4, white)
	FillPolygon(tgt, []Point{{1, 1}, {5, 1}}, white)

	if got := countLit(tgt); got != 0 {
		t.Fatalf("lit pixels after degenerate draws = %d, want 0", got)
	}
}

func TestFillRoundRectCornersClipped(t *testing.T) {
	tgt := newTarget(32, 32)
	FillRoundRect(tgt, 0, 0, 20, 20, 8, RGB(255, 255, 255))

	if r, _, _ := tgt.Pixel(0, 0); r != 0 {
		t.Fatalf("corner pixel lit, want rounded away")
	}
	if r, _, _ := tgt.Pixel(10, 10); r == 0 {
		t.Fatalf("center pixel not lit")
	}
	if r, _, _ := tgt.Pixel(10, 0); r == 0 {
		t.Fatalf("top edge midpoint not lit")
	}
	if r, _, _ := tgt.Pixel(0, 10); r == 0 {
		t.Fatalf("left edge midpoint not lit")
	}
}

func TestFillRoundRectRadiusClamped(t *testing.T) {
	a := newTarget(32, 32)
	b := newTarget(32, 32)
	FillRoundRect(a, 2, 2, 10, 10, 50, RGB(255, 255, 255))
	FillRoundRect(b, 2, 2, 10, 10, 5, RGB(255, 255, 255))
	if !bytes.Equal(a.Buf, b.Buf) {
		t.Fatalf("oversized radius not clamped to half side")
	}
}

func TestFillEllipseSymmetric(t *testing.T) {
	tgt := newTarget(33, 33)
	FillEllipse(tgt, 16, 16, 10, 6, RGB(255, 255, 255))

	for y := 0; y < 33; y++ {
		for x := 0; x < 33; x++ {
			r1, _, _ := tgt.Pixel(x, y)
			r2, _, _ := tgt.Pixel(32-x, y)
			r3, _, _ := tgt.Pixel(x, 32-y)
			if r1 != r2 || r1 != r3 {
				t.Fatalf("ellipse asymmetric at (%d, %d)", x, y)
			}
		}
	}
	if r, _, _ := tgt.Pixel(16, 16); r == 0 {
		t.Fatalf("ellipse center not lit")
	}
	if r, _, _ := tgt.Pixel(16, 9); r != 0 {
		t.Fatalf("pixel above ellipse lit")
	}
}

func TestFillPolygonTriangle(t *testing.T) {
	tgt := newTarget(32, 32)
	FillPolygon(tgt, []Point{{4, 4}, {24, 4}, {4, 24}}, RGB(255, 255, 255))

	if r, _, _ := tgt.Pixel(8, 8); r == 0 {
		t.Fatalf("interior pixel not lit")
	}
	if r, _, _ := tgt.Pixel(23, 23); r != 0 {
		t.Fatalf("pixel outside hypotenuse lit")
	}
	if r, _, _ := tgt.Pixel(28, 4); r != 0 {
		t.Fatalf("pixel right of triangle lit")
	}
}

func TestDrawLineEndpoints(t *testing.T) {
	tgt := newTarget(16, 16)
	DrawLine(tgt, 1, 1, 12, 9, RGB(255, 255, 255))
	if r, _, _ := tgt.Pixel(1, 1); r == 0 {
		t.Fatalf("line start not lit")
	}
	if r, _, _ := tgt.Pixel(12, 9); r == 0 {
		t.Fatalf("line end not lit")
	}
}

func TestTargetsClipOutOfBounds(t *testing.T) {
	tgt := newTarget(8, 8)
	white := RGB(255, 255, 255)

	tgt.SetPixel(-1, 0, white)
	tgt.SetPixel(0, -1, white)
	tgt.SetPixel(8, 0, white)
	tgt.SetPixel(0, 8, white)
	FillRect(tgt, -4, -4, 100, 5, white)

	if got := countLit(tgt); got != 8 {
		t.Fatalf("lit pixels = %d, want 8 (only row 0 on screen)", got)
	}
}

func TestMono1TargetPacking(t *testing.T) {
	tgt := &Mono1Target{Buf: make([]byte, 2*8), Stride: 2, W: 16, H: 8}
	tgt.SetPixel(0, 0, RGB(255, 255, 255))
	tgt.SetPixel(9, 3, RGB(255, 255, 255))

	if tgt.Buf[0] != 0x80 {
		t.Fatalf("byte 0 = %#x, want 0x80", tgt.Buf[0])
	}
	if tgt.Buf[3*2+1] != 0x40 {
		t.Fatalf("row 3 byte 1 = %#x, want 0x40", tgt.Buf[3*2+1])
	}
	if !tgt.Pixel(9, 3) || tgt.Pixel(8, 3) {
		t.Fatalf("mono readback mismatch")
	}

	tgt.SetPixel(9, 3, RGB(0, 0, 0))
	if tgt.Pixel(9, 3) {
		t.Fatalf("pixel still lit after clearing")
	}
}
