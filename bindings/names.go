package bindings

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/controls"
)

// Profile sources name physical inputs with lowercase strings. Key names are
// the ebiten key names lowercased ("space", "a", "arrowleft"); gamepad names
// follow the standard-layout positions.

var keyNames = func() map[string]controls.Key {
	m := make(map[string]controls.Key)
	for k := controls.Key(0); k <= ebiten.KeyMax; k++ {
		if name := k.String(); name != "" {
			m[strings.ToLower(name)] = k
		}
	}
	return m
}()

var mouseNames = map[string]controls.MouseButton{
	"left":   ebiten.MouseButtonLeft,
	"right":  ebiten.MouseButtonRight,
	"middle": ebiten.MouseButtonMiddle,
}

var padButtonNames = map[string]controls.GamepadButton{
	"right_bottom":       ebiten.StandardGamepadButtonRightBottom,
	"right_right":        ebiten.StandardGamepadButtonRightRight,
	"right_left":         ebiten.StandardGamepadButtonRightLeft,
	"right_top":          ebiten.StandardGamepadButtonRightTop,
	"front_bottom_left":  ebiten.StandardGamepadButtonFrontBottomLeft,
	"front_bottom_right": ebiten.StandardGamepadButtonFrontBottomRight,
	"front_top_left":     ebiten.StandardGamepadButtonFrontTopLeft,
	"front_top_right":    ebiten.StandardGamepadButtonFrontTopRight,
	"center_left":        ebiten.StandardGamepadButtonCenterLeft,
	"center_right":       ebiten.StandardGamepadButtonCenterRight,
	"center_center":      ebiten.StandardGamepadButtonCenterCenter,
	"left_stick":         ebiten.StandardGamepadButtonLeftStick,
	"right_stick":        ebiten.StandardGamepadButtonRightStick,
	"left_top":           ebiten.StandardGamepadButtonLeftTop,
	"left_bottom":        ebiten.StandardGamepadButtonLeftBottom,
	"left_left":          ebiten.StandardGamepadButtonLeftLeft,
	"left_right":         ebiten.StandardGamepadButtonLeftRight,
}

var padAxisNames = map[string]controls.GamepadAxis{
	"left_stick_horizontal":  ebiten.StandardGamepadAxisLeftStickHorizontal,
	"left_stick_vertical":    ebiten.StandardGamepadAxisLeftStickVertical,
	"right_stick_horizontal": ebiten.StandardGamepadAxisRightStickHorizontal,
	"right_stick_vertical":   ebiten.StandardGamepadAxisRightStickVertical,
}

func keyByName(name string) (controls.Key, error) {
	if k, ok := keyNames[strings.ToLower(name)]; ok {
		return k, nil
	}
	return 0, fmt.Errorf("bindings: unknown key %q", name)
}

func mouseByName(name string) (controls.MouseButton, error) {
	if b, ok := mouseNames[strings.ToLower(name)]; ok {
		return b, nil
	}
	return 0, fmt.Errorf("bindings: unknown mouse button %q", name)
}

func padButtonByName(name string) (controls.GamepadButton, error) {
	if b, ok := padButtonNames[strings.ToLower(name)]; ok {
		return b, nil
	}
	return 0, fmt.Errorf("bindings: unknown gamepad button %q", name)
}

func padAxisByName(name string) (controls.GamepadAxis, error) {
	if a, ok := padAxisNames[strings.ToLower(name)]; ok {
		return a, nil
	}
	return 0, fmt.Errorf("bindings: unknown gamepad axis %q", name)
}
