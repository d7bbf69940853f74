//go:build !tinygo

package hal

import "github.com/hajimehoshi/ebiten/v2"

// keyBindings maps host keyboard keys onto the device's control cluster.
var keyBindings = [...]struct {
	key  ebiten.Key
	code ButtonCode
}{
	{ebiten.KeyArrowUp, ButtonUp},
	{ebiten.KeyArrowDown, ButtonDown},
	{ebiten.KeyArrowLeft, ButtonLeft},
	{ebiten.KeyArrowRight, ButtonRight},
	{ebiten.KeySpace, ButtonBlink},
	{ebiten.KeyM, ButtonMood},
	{ebiten.KeyC, ButtonCurious},
	{ebiten.KeyS, ButtonStats},
}

type hostButtons struct {
	ch   chan ButtonEvent
	down [len(keyBindings)]bool
}

func newHostButtons() *hostButtons {
	return &hostButtons{ch: make(chan ButtonEvent, 64)}
}

func (b *hostButtons) Events() <-chan ButtonEvent { return b.ch }

// poll runs on the window update goroutine.
func (b *hostButtons) poll() {
	for i, kb := range keyBindings {
		pressed := ebiten.IsKeyPressed(kb.key)
		if pressed == b.down[i] {
			continue
		}
		b.down[i] = pressed
		select {
		case b.ch <- ButtonEvent{Code: kb.code, Press: pressed}:
		default:
		}
	}
}
