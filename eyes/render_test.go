package eyes

import (
	"bytes"
	"testing"
	"time"

	"faceplate/irisgl"
)

func newTestTarget() *irisgl.RGB565Target {
	return &irisgl.RGB565Target{
		Buf:    make([]byte, 128*2*64),
		Stride: 128 * 2,
		W:      128,
		H:      64,
	}
}

// occludedRows counts background rows in the eye's center column, split into
// the run from the top of the eye box and the run from the bottom.
func occludedRows(t *irisgl.RGB565Target, e *EyeModel) (top, bottom int) {
	cx := int(e.CenterX())
	y0 := int(e.CenterY() - e.Height()/2 + 0.5)
	h := int(e.Height() + 0.5)

	for y := y0; y < y0+h; y++ {
		if r, _, _ := t.Pixel(cx, y); r != 0 {
			break
		}
		top++
	}
	for y := y0 + h - 1; y >= y0; y-- {
		if r, _, _ := t.Pixel(cx, y); r != 0 {
			break
		}
		bottom++
	}
	return top, bottom
}

func TestRenderCoverageFractionExact(t *testing.T) {
	for _, cov := range []float64{0, 0.25, 0.5, 0.75} {
		c := NewController(testParams())
		c.Left().SetEyelidCoverage(cov, 0)
		c.Right().SetEyelidCoverage(cov, 0)

		tgt := newTestTarget()
		NewRenderer().Render(tgt, c)

		want := int(cov*40 + 0.5)
		for _, e := range []*EyeModel{c.Left(), c.Right()} {
			top, _ := occludedRows(tgt, e)
			if top != want {
				t.Fatalf("coverage %v: occluded rows = %d, want %d", cov, top, want)
			}
		}
	}
}

func TestRenderFullCoverageBlanksEye(t *testing.T) {
	c := NewController(testParams())
	c.Left().SetEyelidCoverage(1, 0)
	c.Right().SetEyelidCoverage(1, 0)

	tgt := newTestTarget()
	NewRenderer().Render(tgt, c)

	for _, e := range []*EyeModel{c.Left(), c.Right()} {
		cx := int(e.CenterX())
		y0 := int(e.CenterY() - e.Height()/2 + 0.5)
		for y := y0; y < y0+40; y++ {
			if r, _, _ := tgt.Pixel(cx, y); r != 0 {
				t.Fatalf("pixel (%d, %d) lit under full coverage", cx, y)
			}
		}
	}
}

func TestRenderAngryAsymmetry(t *testing.T) {
	c := NewController(testParams())
	if err := c.SetMood(MoodAngry); err != nil {
		t.Fatalf("SetMood() error: %v", err)
	}

	tgt := newTestTarget()
	NewRenderer().Render(tgt, c)

	lt, lb := occludedRows(tgt, c.Left())
	rt, rb := occludedRows(tgt, c.Right())
	if lt <= lb {
		t.Fatalf("left occlusion top %d <= bottom %d, want top-heavy", lt, lb)
	}
	if lt != rt || lb != rb {
		t.Fatalf("eyes differ: left (%d, %d), right (%d, %d)", lt, lb, rt, rb)
	}
}

func TestRenderIsDeterministic(t *testing.T) {
	c := NewController(testParams())
	if err := c.SetMood(MoodHappy); err != nil {
		t.Fatalf("SetMood() error: %v", err)
	}
	if err := c.Blink(SpeedMedium, SelectBoth); err != nil {
		t.Fatalf("Blink() error: %v", err)
	}
	c.Tick(60 * time.Millisecond)

	r := NewRenderer()
	a := newTestTarget()
	b := newTestTarget()
	r.Render(a, c)
	r.Render(b, c)

	if !bytes.Equal(a.Buf, b.Buf) {
		t.Fatalf("two renders without a tick differ")
	}
}

func TestRenderDoesNotMutateState(t *testing.T) {
	c := NewController(testParams())
	if err := c.SetMood(MoodTired); err != nil {
		t.Fatalf("SetMood() error: %v", err)
	}
	top0, bottom0 := c.Left().Lids()
	x0 := c.Left().CenterX()

	NewRenderer().Render(newTestTarget(), c)

	if top, bottom := c.Left().Lids(); top != top0 || bottom != bottom0 {
		t.Fatalf("lids changed by render: (%v, %v) -> (%v, %v)", top0, bottom0, top, bottom)
	}
	if got := c.Left().CenterX(); got != x0 {
		t.Fatalf("CenterX changed by render: %v -> %v", x0, got)
	}
}

func TestRenderMonoTarget(t *testing.T) {
	c := NewController(testParams())
	tgt := &irisgl.Mono1Target{
		Buf:    make([]byte, 16*64),
		Stride: 16,
		W:      128,
		H:      64,
	}
	NewRenderer().Render(tgt, c)

	if !tgt.Pixel(39, 32) {
		t.Fatalf("left eye center not lit on mono target")
	}
	if tgt.Pixel(0, 0) {
		t.Fatalf("corner pixel lit, want background")
	}
}
