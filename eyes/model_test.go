package eyes

import "testing"

func TestSetEyelidCoverageClamped(t *testing.T) {
	var e EyeModel
	e.SetEyelidCoverage(1.5, -0.3)
	top, bottom := e.Lids()
	if top != 1 || bottom != 0 {
		t.Fatalf("Lids() = (%v, %v), want (1, 0)", top, bottom)
	}
}

func TestSetBaseSizeClampsNegative(t *testing.T) {
	var e EyeModel
	e.SetBaseSize(-10, -5, -2)
	if w, h := e.BaseSize(); w != 0 || h != 0 {
		t.Fatalf("BaseSize() = (%v, %v), want (0, 0)", w, h)
	}
	if got := e.CornerRadius(); got != 0 {
		t.Fatalf("CornerRadius() = %v, want 0", got)
	}
}

func TestApplyMoodShapeIdempotent(t *testing.T) {
	var e EyeModel
	e.SetBaseSize(36, 36, 8)
	e.ApplyMoodShape(MoodAngry)
	top1, bottom1 := e.Lids()
	e.ApplyMoodShape(MoodAngry)
	top2, bottom2 := e.Lids()
	if top1 != top2 || bottom1 != bottom2 {
		t.Fatalf("re-applying mood changed lids: (%v, %v) -> (%v, %v)", top1, bottom1, top2, bottom2)
	}
	if top1 <= bottom1 {
		t.Fatalf("angry lids = (%v, %v), want top > bottom", top1, bottom1)
	}
}

func TestApplyCuriousScaleIdempotent(t *testing.T) {
	var e EyeModel
	e.SetBaseSize(40, 40, 8)

	e.ApplyCuriousScale(true, true)
	w1 := e.Width()
	e.ApplyCuriousScale(true, true)
	if got := e.Width(); got != w1 {
		t.Fatalf("re-applying curious scale changed Width(): %v -> %v", w1, got)
	}
	if w1 != 40*curiousOuterScale {
		t.Fatalf("outer Width() = %v, want %v", w1, 40*curiousOuterScale)
	}

	e.ApplyCuriousScale(false, true)
	if got := e.Width(); got != 40 {
		t.Fatalf("Width() after deactivation = %v, want 40", got)
	}
}

func TestPlaceClampsToScreen(t *testing.T) {
	var e EyeModel
	e.SetBaseSize(40, 40, 8)
	e.setHome(64, 32)

	e.place(1000, -1000, 128, 64)
	if got := e.CenterX(); got != 108 {
		t.Fatalf("CenterX() = %v, want 108", got)
	}
	if got := e.CenterY(); got != 20 {
		t.Fatalf("CenterY() = %v, want 20", got)
	}

	// An eye wider than the screen is centered rather than clamped apart.
	e.SetBaseSize(300, 40, 8)
	e.place(10, 32, 128, 64)
	if got := e.CenterX(); got != 64 {
		t.Fatalf("oversized CenterX() = %v, want 64", got)
	}
}
