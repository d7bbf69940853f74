package eyes

// Curious mode scales the eye nearer the gaze direction up and its partner
// down, conveying alertness.
const (
	curiousOuterScale = 1.4
	curiousInnerScale = 0.6
)

// EyeModel is the mutable geometry state of a single eye.
//
// The rendered width/height are always derived from the base size and the
// current scale factor, never mutated in place, so toggling transient scale
// states round-trips to bit-exact base values.
type EyeModel struct {
	homeX, homeY     float64 // resting center
	centerX, centerY float64 // current center, kept inside screen bounds

	baseW, baseH float64
	baseRadius   float64
	scaleW       float64
	scaleH       float64

	restTop, restBottom float64 // mood baseline coverage
	lidTop, lidBottom   float64 // effective coverage, blink included
}

// SetBaseSize sets the configured eye size and corner radius. Negative values
// are clamped to zero; the current scale factor is preserved.
func (e *EyeModel) SetBaseSize(w, h, radius float64) {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	if radius < 0 {
		radius = 0
	}
	e.baseW, e.baseH = w, h
	e.baseRadius = radius
	if e.scaleW == 0 {
		e.scaleW = 1
	}
	if e.scaleH == 0 {
		e.scaleH = 1
	}
}

// setHome sets the resting center. The current center snaps along with it.
func (e *EyeModel) setHome(x, y float64) {
	e.homeX, e.homeY = x, y
	e.centerX, e.centerY = x, y
}

// ApplyMoodShape sets the eyelid coverage baseline for the mood. It is a pure
// function of the mood: deterministic and idempotent.
func (e *EyeModel) ApplyMoodShape(m Mood) {
	top, bottom := moodShape(m)
	e.restTop, e.restBottom = top, bottom
	e.SetEyelidCoverage(top, bottom)
}

func moodShape(m Mood) (top, bottom float64) {
	switch m {
	case MoodAngry:
		return 0.4, 0
	case MoodTired:
		return 0.55, 0
	case MoodHappy:
		return 0, 0.4
	}
	return 0, 0
}

// ApplyCuriousScale sets or clears the curious scale factor. outer selects
// which factor this eye receives. Re-applying the same arguments is a no-op;
// the rendered size is recomputed from the base each time, so repeated
// toggling cannot drift.
func (e *EyeModel) ApplyCuriousScale(active, outer bool) {
	s := 1.0
	if active {
		if outer {
			s = curiousOuterScale
		} else {
			s = curiousInnerScale
		}
	}
	e.scaleW, e.scaleH = s, s
}

// SetEyelidCoverage sets the effective top/bottom occlusion fractions,
// clamped to [0,1].
func (e *EyeModel) SetEyelidCoverage(top, bottom float64) {
	e.lidTop = clamp01(top)
	e.lidBottom = clamp01(bottom)
}

// place moves the current center to (x, y), clamped so the eye's bounding box
// stays inside the screen. An eye larger than the screen is centered.
func (e *EyeModel) place(x, y float64, screenW, screenH float64) {
	hw := e.Width() / 2
	hh := e.Height() / 2
	e.centerX = clampCenter(x, hw, screenW)
	e.centerY = clampCenter(y, hh, screenH)
}

func clampCenter(v, half, limit float64) float64 {
	if 2*half >= limit {
		return limit / 2
	}
	if v < half {
		return half
	}
	if v > limit-half {
		return limit - half
	}
	return v
}

func (e *EyeModel) CenterX() float64 { return e.centerX }
func (e *EyeModel) CenterY() float64 { return e.centerY }
func (e *EyeModel) Width() float64   { return e.baseW * e.scaleW }
func (e *EyeModel) Height() float64  { return e.baseH * e.scaleH }

// BaseSize returns the configured, unscaled size.
func (e *EyeModel) BaseSize() (w, h float64) { return e.baseW, e.baseH }

// CornerRadius is the shape rounding, scaled with the current size.
func (e *EyeModel) CornerRadius() float64 {
	s := e.scaleW
	if e.scaleH < s {
		s = e.scaleH
	}
	return e.baseRadius * s
}

// Lids returns the effective top/bottom eyelid coverage.
func (e *EyeModel) Lids() (top, bottom float64) { return e.lidTop, e.lidBottom }

// RestingLids returns the mood baseline coverage.
func (e *EyeModel) RestingLids() (top, bottom float64) { return e.restTop, e.restBottom }

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
