package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/pufferdive/internal/domain/entity"
)

// stickDeadzone is the analog stick travel ignored around the center.
const stickDeadzone = 0.3

// KeyMap binds keyboard keys to the control snapshot. Any key of a slice
// triggers the action.
type KeyMap struct {
	Left  []ebiten.Key
	Right []ebiten.Key
	Up    []ebiten.Key
	Down  []ebiten.Key
	Puff  []ebiten.Key
	Pause []ebiten.Key
}

// DefaultKeyMap returns arrows/WASD for movement and space to puff.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:  []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA},
		Right: []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD},
		Up:    []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW},
		Down:  []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS},
		Puff:  []ebiten.Key{ebiten.KeySpace, ebiten.KeyZ},
		Pause: []ebiten.Key{ebiten.KeyEscape, ebiten.KeyP},
	}
}

// InputSystem handles player input
type InputSystem struct {
	keys    KeyMap
	gamepad []ebiten.GamepadID
}

// NewInputSystem creates a new input system
func NewInputSystem(keys KeyMap) *InputSystem {
	return &InputSystem{keys: keys}
}

// Read builds a control snapshot from a key predicate.
func (s *InputSystem) Read(isPressed func(ebiten.Key) bool) entity.ControlInput {
	held := func(keys []ebiten.Key) bool {
		for _, k := range keys {
			if isPressed(k) {
				return true
			}
		}
		return false
	}
	return entity.ControlInput{
		Left:  held(s.keys.Left),
		Right: held(s.keys.Right),
		Up:    held(s.keys.Up),
		Down:  held(s.keys.Down),
		A:     held(s.keys.Puff),
	}
}

// GetInput reads the current input state from the keyboard and every
// gamepad with a standard layout.
func (s *InputSystem) GetInput() entity.ControlInput {
	in := s.Read(ebiten.IsKeyPressed)

	s.gamepad = ebiten.AppendGamepadIDs(s.gamepad[:0])
	for _, id := range s.gamepad {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		in = mergeInput(in, readGamepad(id))
	}
	return in
}

// PausePressed reports whether a pause key went down this frame.
func (s *InputSystem) PausePressed() bool {
	for _, k := range s.keys.Pause {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	for _, id := range s.gamepad {
		if inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonCenterRight) {
			return true
		}
	}
	return false
}

func readGamepad(id ebiten.GamepadID) entity.ControlInput {
	h := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
	v := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
	pressed := func(b ebiten.StandardGamepadButton) bool {
		return ebiten.IsStandardGamepadButtonPressed(id, b)
	}
	return entity.ControlInput{
		Left:  h < -stickDeadzone || pressed(ebiten.StandardGamepadButtonLeftLeft),
		Right: h > stickDeadzone || pressed(ebiten.StandardGamepadButtonLeftRight),
		Up:    v < -stickDeadzone || pressed(ebiten.StandardGamepadButtonLeftTop),
		Down:  v > stickDeadzone || pressed(ebiten.StandardGamepadButtonLeftBottom),
		A:     pressed(ebiten.StandardGamepadButtonRightBottom),
	}
}

func mergeInput(a, b entity.ControlInput) entity.ControlInput {
	return entity.ControlInput{
		Left:  a.Left || b.Left,
		Right: a.Right || b.Right,
		Up:    a.Up || b.Up,
		Down:  a.Down || b.Down,
		A:     a.A || b.A,
		B:     a.B || b.B,
	}
}
