// Package controls maps physical input sources (keys, mouse buttons, gamepad
// buttons and sticks) onto named logical buttons and axes. Bindings are
// registered once; game code queries only the logical control each frame, so
// rebinding never touches gameplay logic.
package controls

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Input identifier types. These alias the ebiten types so call sites can use
// the ebiten constants directly; polling still goes through Host.
type (
	Key           = ebiten.Key
	MouseButton   = ebiten.MouseButton
	GamepadID     = ebiten.GamepadID
	GamepadButton = ebiten.StandardGamepadButton
	GamepadAxis   = ebiten.StandardGamepadAxis
)

// Host is the raw input polling surface a Registry samples from. All calls
// are non-blocking point samples taken during Registry.Update.
type Host interface {
	IsKeyDown(key Key) bool
	IsMouseButtonDown(button MouseButton) bool
	GamepadIDs() []GamepadID
	IsGamepadButtonDown(id GamepadID, button GamepadButton) bool
	GamepadAxis(id GamepadID, axis GamepadAxis) float64
}

// BinarySource is anything with a binary down state that can feed the
// negative or positive side of a pair detector: a button detector handle or
// a button handle.
type BinarySource interface {
	binarySource()
}
