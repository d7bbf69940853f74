package eyes

import (
	"errors"
	"fmt"
)

// ErrInvalidCommand rejects a command carrying an unrecognized mood,
// direction, speed, or selector. State is left unchanged; the engine never
// silently drops a bad command.
var ErrInvalidCommand = errors.New("invalid command")

// Mood is a named emotional preset controlling the persistent eyelid
// coverage baseline (and, for MoodCurious, the curious scale).
type Mood uint8

const (
	MoodDefault Mood = iota
	MoodAngry
	MoodTired
	MoodHappy
	MoodCurious

	moodCount
)

func (m Mood) valid() bool { return m < moodCount }

func (m Mood) String() string {
	switch m {
	case MoodDefault:
		return "default"
	case MoodAngry:
		return "angry"
	case MoodTired:
		return "tired"
	case MoodHappy:
		return "happy"
	case MoodCurious:
		return "curious"
	}
	return "unknown"
}

// ParseMood maps a boundary string (config file, console, button table) to a
// Mood.
func ParseMood(s string) (Mood, error) {
	for m := MoodDefault; m < moodCount; m++ {
		if m.String() == s {
			return m, nil
		}
	}
	return MoodDefault, fmt.Errorf("%w: mood %q", ErrInvalidCommand, s)
}

// Direction is a gaze target: the eight compass points plus center.
type Direction uint8

const (
	DirCenter Direction = iota
	DirTop
	DirTopRight
	DirRight
	DirBottomRight
	DirBottom
	DirBottomLeft
	DirLeft
	DirTopLeft

	directionCount
)

func (d Direction) valid() bool { return d < directionCount }

// vector returns the unit grid offset for the direction. Screen y grows
// downward.
func (d Direction) vector() (dx, dy int) {
	switch d {
	case DirTop:
		return 0, -1
	case DirTopRight:
		return 1, -1
	case DirRight:
		return 1, 0
	case DirBottomRight:
		return 1, 1
	case DirBottom:
		return 0, 1
	case DirBottomLeft:
		return -1, 1
	case DirLeft:
		return -1, 0
	case DirTopLeft:
		return -1, -1
	}
	return 0, 0
}

func (d Direction) String() string {
	switch d {
	case DirCenter:
		return "center"
	case DirTop:
		return "top"
	case DirTopRight:
		return "topright"
	case DirRight:
		return "right"
	case DirBottomRight:
		return "bottomright"
	case DirBottom:
		return "bottom"
	case DirBottomLeft:
		return "bottomleft"
	case DirLeft:
		return "left"
	case DirTopLeft:
		return "topleft"
	}
	return "unknown"
}

// ParseDirection maps a boundary string to a Direction.
func ParseDirection(s string) (Direction, error) {
	for d := DirCenter; d < directionCount; d++ {
		if d.String() == s {
			return d, nil
		}
	}
	return DirCenter, fmt.Errorf("%w: direction %q", ErrInvalidCommand, s)
}

// Speed selects one of three fixed animation rates.
type Speed uint8

const (
	SpeedSlow Speed = iota
	SpeedMedium
	SpeedFast

	speedCount
)

func (s Speed) valid() bool { return s < speedCount }

func (s Speed) String() string {
	switch s {
	case SpeedSlow:
		return "slow"
	case SpeedMedium:
		return "medium"
	case SpeedFast:
		return "fast"
	}
	return "unknown"
}

// EyeSelector names which eye(s) a blink applies to.
type EyeSelector uint8

const (
	SelectBoth EyeSelector = iota
	SelectLeft
	SelectRight

	selectorCount
)

func (s EyeSelector) valid() bool { return s < selectorCount }

func (s EyeSelector) covers(left bool) bool {
	switch s {
	case SelectLeft:
		return left
	case SelectRight:
		return !left
	}
	return true
}
