package eyeconfig

// Resolved is the validated eye geometry the engine is built from.
type Resolved struct {
	ScreenWidth  int
	ScreenHeight int
	Distance     int
	Left, Right  EyeShape
	FPS          int

	// Derived is true when no persisted override existed and the geometry
	// was derived from the unit seed.
	Derived bool
}

const (
	minEyeSide = 4
	minScreen  = 16
)

// Resolve merges the loaded configuration into engine geometry.
//
// A persisted [eye] override is used verbatim, clamped against the screen
// bounds: a display mismatch degrades gracefully instead of failing startup.
// Without an override, geometry is derived deterministically from the unit
// seed, bounded to fractions of the screen so no unit ends up with
// degenerate eyes. Same seed and screen always produce the same appearance.
func Resolve(cfg Config, seed uint64) Resolved {
	w := cfg.Screen.Width
	h := cfg.Screen.Height
	if w < minScreen {
		w = Default().Screen.Width
	}
	if h < minScreen {
		h = Default().Screen.Height
	}

	r := Resolved{
		ScreenWidth:  w,
		ScreenHeight: h,
		FPS:          cfg.Render.FPS,
	}
	if r.FPS <= 0 {
		r.FPS = Default().Render.FPS
	}

	if hasOverride(cfg.Eye) {
		r.Distance = cfg.Eye.Distance
		r.Left = cfg.Eye.Left
		r.Right = cfg.Eye.Right
	} else {
		r.Derived = true
		r.Distance, r.Left, r.Right = deriveFromSeed(seed, w, h)
	}

	r.clamp()
	return r
}

func hasOverride(e EyeSection) bool {
	return e != EyeSection{}
}

// ResolveDefaults resolves with no on-disk configuration at all: default
// screen, seed-derived eye geometry. Devices without a filesystem start here.
func ResolveDefaults(seed uint64) Resolved {
	return Resolve(base(), seed)
}

// FitScreen re-clamps the geometry against the actual panel dimensions.
// Called when the configured screen and the attached hardware disagree; the
// mismatch degrades to clamped geometry instead of failing startup.
func (r Resolved) FitScreen(w, h int) Resolved {
	if w >= minScreen {
		r.ScreenWidth = w
	}
	if h >= minScreen {
		r.ScreenHeight = h
	}
	r.clamp()
	return r
}

// deriveFromSeed gives each unit a distinct but reproducible default
// appearance: eye side 35–55% of the shorter screen dimension, spacing
// 8–16% of the width, roundness 15–35% of the side.
func deriveFromSeed(seed uint64, screenW, screenH int) (distance int, left, right EyeShape) {
	short := screenH
	if screenW < short {
		short = screenW
	}

	side := boundedDraw(seed, 0, short*35/100, short*55/100)
	distance = boundedDraw(seed, 1, screenW*8/100, screenW*16/100)
	round := boundedDraw(seed, 2, side*15/100, side*35/100)

	shape := EyeShape{Width: side, Height: side, Roundness: round}
	return distance, shape, shape
}

// boundedDraw maps the n-th value of the seed's splitmix64 stream into
// [lo, hi]. Pure function of (seed, n): no hidden generator state.
func boundedDraw(seed uint64, n uint64, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	v := mix64(seed + n*0x9e3779b97f4a7c15)
	return lo + int(v%uint64(hi-lo+1))
}

// mix64 is the splitmix64 finalizer.
func mix64(x uint64) uint64 {
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}

// clamp forces the geometry inside the screen. Out-of-bounds values are
// corrected, never rejected.
func (r *Resolved) clamp() {
	if r.Distance < 0 {
		r.Distance = 0
	}
	if max := r.ScreenWidth - 2*minEyeSide; r.Distance > max {
		r.Distance = max
	}
	half := (r.ScreenWidth - r.Distance) / 2
	r.Left.clampTo(half, r.ScreenHeight)
	r.Right.clampTo(half, r.ScreenHeight)
}

func (s *EyeShape) clampTo(maxW, maxH int) {
	if s.Width < minEyeSide {
		s.Width = minEyeSide
	}
	if s.Width > maxW {
		s.Width = maxW
	}
	if s.Height < minEyeSide {
		s.Height = minEyeSide
	}
	if s.Height > maxH {
		s.Height = maxH
	}
	if s.Roundness < 0 {
		s.Roundness = 0
	}
	short := s.Width
	if s.Height < short {
		short = s.Height
	}
	if s.Roundness > short/2 {
		s.Roundness = short / 2
	}
}
