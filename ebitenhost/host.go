// Package ebitenhost backs a controls.Registry with ebiten's input polling.
// Gamepads are read through the standard layout, so button and axis ids mean
// the same thing across platforms.
package ebitenhost

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/controls"
)

// Host implements controls.Host over ebiten. The zero value is ready to use.
type Host struct {
	seen []controls.GamepadID
}

func New() *Host {
	return &Host{}
}

func (*Host) IsKeyDown(key controls.Key) bool {
	return ebiten.IsKeyPressed(key)
}

func (*Host) IsMouseButtonDown(button controls.MouseButton) bool {
	return ebiten.IsMouseButtonPressed(button)
}

func (h *Host) GamepadIDs() []controls.GamepadID {
	h.seen = ebiten.AppendGamepadIDs(h.seen[:0])
	return h.seen
}

func (*Host) IsGamepadButtonDown(id controls.GamepadID, button controls.GamepadButton) bool {
	return ebiten.IsStandardGamepadButtonPressed(id, button)
}

func (*Host) GamepadAxis(id controls.GamepadID, axis controls.GamepadAxis) float64 {
	return ebiten.StandardGamepadAxisValue(id, axis)
}

// JustConnected returns the gamepads that connected since the last frame.
// A non-empty result is the cue to call Registry.RefreshDevices.
func (*Host) JustConnected() []controls.GamepadID {
	return inpututil.AppendJustConnectedGamepadIDs(nil)
}

// JustDisconnected returns the gamepads from the last enumeration that
// dropped off this frame.
func (h *Host) JustDisconnected() []controls.GamepadID {
	var out []controls.GamepadID
	for _, id := range h.seen {
		if inpututil.IsGamepadJustDisconnected(id) {
			out = append(out, id)
		}
	}
	return out
}
