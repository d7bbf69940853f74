package eyeconfig

import (
	"errors"
	"testing"
)

func TestResolveSeedDeterministic(t *testing.T) {
	cfg := base()
	a := Resolve(cfg, 0xfeedface)
	b := Resolve(cfg, 0xfeedface)
	if a != b {
		t.Fatalf("Resolve() not deterministic: %+v vs %+v", a, b)
	}
	if !a.Derived {
		t.Fatalf("Derived = false, want true without an override")
	}
}

func TestResolveSeedsDiffer(t *testing.T) {
	cfg := base()
	seen := map[Resolved]bool{}
	for seed := uint64(0); seed < 16; seed++ {
		seen[Resolve(cfg, seed)] = true
	}
	if len(seen) < 2 {
		t.Fatalf("16 seeds produced %d distinct geometries, want several", len(seen))
	}
}

func TestResolveDerivedGeometryInBounds(t *testing.T) {
	for seed := uint64(0); seed < 64; seed++ {
		r := Resolve(base(), seed)
		half := (r.ScreenWidth - r.Distance) / 2
		for _, s := range []EyeShape{r.Left, r.Right} {
			if s.Width < minEyeSide || s.Width > half {
				t.Fatalf("seed %d: width %d outside [%d, %d]", seed, s.Width, minEyeSide, half)
			}
			if s.Height < minEyeSide || s.Height > r.ScreenHeight {
				t.Fatalf("seed %d: height %d outside [%d, %d]", seed, s.Height, minEyeSide, r.ScreenHeight)
			}
			short := s.Width
			if s.Height < short {
				short = s.Height
			}
			if s.Roundness < 0 || s.Roundness > short/2 {
				t.Fatalf("seed %d: roundness %d outside [0, %d]", seed, s.Roundness, short/2)
			}
		}
	}
}

func TestResolveOverrideUsedVerbatim(t *testing.T) {
	cfg := base()
	cfg.Eye = EyeSection{
		Distance: 12,
		Left:     EyeShape{Width: 30, Height: 28, Roundness: 6},
		Right:    EyeShape{Width: 32, Height: 30, Roundness: 7},
	}
	r := Resolve(cfg, 42)
	if r.Derived {
		t.Fatalf("Derived = true, want false with an override")
	}
	if r.Left != cfg.Eye.Left || r.Right != cfg.Eye.Right || r.Distance != 12 {
		t.Fatalf("override not used verbatim: %+v", r)
	}
}

func TestResolveClampsOutOfBoundsOverride(t *testing.T) {
	cfg := base() // 128x64 screen
	cfg.Eye = EyeSection{
		Distance: -5,
		Left:     EyeShape{Width: 500, Height: 300, Roundness: 90},
		Right:    EyeShape{Width: 1, Height: 1, Roundness: -1},
	}
	r := Resolve(cfg, 0)

	if r.Distance != 0 {
		t.Fatalf("Distance = %d, want 0", r.Distance)
	}
	if r.Left.Width != 64 {
		t.Fatalf("Left.Width = %d, want 64", r.Left.Width)
	}
	if r.Left.Height != 64 {
		t.Fatalf("Left.Height = %d, want 64", r.Left.Height)
	}
	if r.Left.Roundness != 32 {
		t.Fatalf("Left.Roundness = %d, want 32", r.Left.Roundness)
	}
	if r.Right.Width != minEyeSide || r.Right.Height != minEyeSide {
		t.Fatalf("Right = %+v, want %dx%d minimum", r.Right, minEyeSide, minEyeSide)
	}
	if r.Right.Roundness != 0 {
		t.Fatalf("Right.Roundness = %d, want 0", r.Right.Roundness)
	}
}

func TestFitScreenReclamps(t *testing.T) {
	cfg := base()
	cfg.Eye = EyeSection{
		Distance: 10,
		Left:     EyeShape{Width: 59, Height: 64, Roundness: 8},
		Right:    EyeShape{Width: 59, Height: 64, Roundness: 8},
	}
	r := Resolve(cfg, 0).FitScreen(64, 48)
	if r.ScreenWidth != 64 || r.ScreenHeight != 48 {
		t.Fatalf("screen = %dx%d, want 64x48", r.ScreenWidth, r.ScreenHeight)
	}
	if r.Left.Width > (64-r.Distance)/2 || r.Left.Height > 48 {
		t.Fatalf("eye %+v exceeds 64x48 panel", r.Left)
	}
}

func TestLoadBytesMergesOverDefaults(t *testing.T) {
	data := []byte(`
[screen]
width = 240
height = 135

[eye]
distance = 14
[eye.left]
width = 50
height = 44
roundness = 10
[eye.right]
width = 50
height = 44
roundness = 10
`)
	cfg, err := LoadBytes(data)
	if err != nil {
		t.Fatalf("LoadBytes() error: %v", err)
	}
	if cfg.Screen.Width != 240 || cfg.Screen.Height != 135 {
		t.Fatalf("screen = %dx%d, want 240x135", cfg.Screen.Width, cfg.Screen.Height)
	}
	if cfg.Screen.Driver != "ssd1306" {
		t.Fatalf("Driver = %q, want default ssd1306", cfg.Screen.Driver)
	}
	if cfg.Render.FPS != 30 {
		t.Fatalf("FPS = %d, want default 30", cfg.Render.FPS)
	}

	r := Resolve(cfg, 7)
	if r.Derived {
		t.Fatalf("Derived = true, want false with [eye] on disk")
	}
	if r.Left.Width != 50 || r.Distance != 14 {
		t.Fatalf("resolved = %+v, want the persisted values", r)
	}
}

func TestLoadBytesEmptyDerivesFromSeed(t *testing.T) {
	cfg, err := LoadBytes([]byte(""))
	if err != nil {
		t.Fatalf("LoadBytes() error: %v", err)
	}
	r := Resolve(cfg, 3)
	if !r.Derived {
		t.Fatalf("Derived = false, want true with no [eye] table")
	}
}

func TestLoadBytesMalformed(t *testing.T) {
	_, err := LoadBytes([]byte("[screen\nwidth ="))
	if !errors.Is(err, ErrConfigLoad) {
		t.Fatalf("LoadBytes() error = %v, want ErrConfigLoad", err)
	}
}

func TestLoadMissingFileFallsBack(t *testing.T) {
	cfg, err := Load("testdata/does-not-exist.toml")
	if err != nil {
		t.Fatalf("Load() error = %v, want nil for a missing file", err)
	}
	if cfg.Screen != base().Screen {
		t.Fatalf("screen = %+v, want defaults", cfg.Screen)
	}
}
