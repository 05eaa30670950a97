//go:build !headless

// Package input maps ebiten keyboard events to the cabinet's semantic
// button names, grounded on the teacher's handleKeyboardInput
// (video_backend_ebiten.go), simplified since this cabinet has a fixed,
// small set of discrete controls rather than a full keyboard stream.
package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/otley-arcade/invaders8080/internal/cabinet"
)

// keyBindings maps physical keys to cabinet buttons. Unbound keys are
// ignored, per spec.md's "unrecognized key symbols ... silently
// ignored" rule.
var keyBindings = map[ebiten.Key]cabinet.ButtonName{
	ebiten.Key5:     cabinet.ButtonCoin,
	ebiten.Key1:     cabinet.ButtonP1Start,
	ebiten.Key2:     cabinet.ButtonP2Start,
	ebiten.KeySpace: cabinet.ButtonP1Fire,
	ebiten.KeyLeft:  cabinet.ButtonP1Left,
	ebiten.KeyRight: cabinet.ButtonP1Right,
	ebiten.KeyW:     cabinet.ButtonP2Fire,
	ebiten.KeyA:     cabinet.ButtonP2Left,
	ebiten.KeyD:     cabinet.ButtonP2Right,
}

// Poll drains just-pressed and just-released key events into the
// machine's port latches. It is meant to be called once per ebiten
// Update tick.
func Poll(m *cabinet.Machine) {
	for key, button := range keyBindings {
		switch {
		case inpututil.IsKeyJustPressed(key):
			m.SetKey(button, true)
		case inpututil.IsKeyJustReleased(key):
			m.SetKey(button, false)
		}
	}
}
