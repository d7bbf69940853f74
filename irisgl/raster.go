package irisgl

import (
	"math"
	"sort"
)

// Point is an integer pixel coordinate.
type Point struct {
	X, Y int
}

func fillSpan(t Target, x0, x1, y int, c Color) {
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	for x := x0; x <= x1; x++ {
		t.SetPixel(x, y, c)
	}
}

// FillRect fills the axis-aligned rectangle with top-left corner (x, y).
// Zero or negative extents are a no-op.
func FillRect(t Target, x, y, w, h int, c Color) {
	if t == nil || w <= 0 || h <= 0 {
		return
	}
	for row := 0; row < h; row++ {
		fillSpan(t, x, x+w-1, y+row, c)
	}
}

// FillRoundRect fills a rounded rectangle with corner radius r. The radius is
// clamped to half the shorter side; r <= 0 degrades to FillRect. Zero or
// negative extents are a no-op.
func FillRoundRect(t Target, x, y, w, h, r int, c Color) {
	if t == nil || w <= 0 || h <= 0 {
		return
	}
	if max := min(w, h) / 2; r > max {
		r = max
	}
	if r <= 0 {
		FillRect(t, x, y, w, h, c)
		return
	}
	rf := float64(r)
	for row := 0; row < h; row++ {
		inset := 0
		var dy float64
		switch {
		case row < r:
			dy = float64(r-row) - 0.5
		case row >= h-r:
			dy = float64(row-(h-r-1)) - 0.5
		}
		if dy > 0 {
			half := math.Sqrt(rf*rf - dy*dy)
			inset = r - int(half+0.5)
			if inset < 0 {
				inset = 0
			}
		}
		fillSpan(t, x+inset, x+w-1-inset, y+row, c)
	}
}

// FillEllipse fills the ellipse centered at (cx, cy) with half-extents
// (rx, ry). Non-positive half-extents are a no-op.
func FillEllipse(t Target, cx, cy, rx, ry int, c Color) {
	if t == nil || rx <= 0 || ry <= 0 {
		return
	}
	ryf := float64(ry)
	rxf := float64(rx)
	for dy := -ry; dy <= ry; dy++ {
		f := 1 - (float64(dy)/ryf)*(float64(dy)/ryf)
		if f < 0 {
			continue
		}
		half := int(rxf*math.Sqrt(f) + 0.5)
		fillSpan(t, cx-half, cx+half, cy+dy, c)
	}
}

// FillPolygon fills the closed polygon described by the ordered vertex list
// using even-odd scanline filling. Fewer than three vertices is a no-op.
func FillPolygon(t Target, pts []Point, c Color) {
	if t == nil || len(pts) < 3 {
		return
	}
	minY, maxY := pts[0].Y, pts[0].Y
	for _, p := range pts[1:] {
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	if minY == maxY {
		return
	}

	// Reused across scanlines; polygons here are tiny.
	xs := make([]int, 0, len(pts))
	for y := minY; y <= maxY; y++ {
		xs = xs[:0]
		sy := float64(y) + 0.5
		for i := 0; i < len(pts); i++ {
			a := pts[i]
			b := pts[(i+1)%len(pts)]
			ay, by := float64(a.Y), float64(b.Y)
			if ay == by {
				continue
			}
			if (sy >= ay && sy < by) || (sy >= by && sy < ay) {
				x := float64(a.X) + (sy-ay)*float64(b.X-a.X)/(by-ay)
				xs = append(xs, int(x+0.5))
			}
		}
		sort.Ints(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			fillSpan(t, xs[i], xs[i+1]-1, y, c)
		}
	}
}

// DrawLine draws a 1px line from (x0, y0) to (x1, y1).
func DrawLine(t Target, x0, y0, x1, y1 int, c Color) {
	if t == nil {
		return
	}
	dx := absInt(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -absInt(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		t.SetPixel(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
