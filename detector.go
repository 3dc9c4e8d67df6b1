package controls

import "math"

// buttonDetector samples exactly one raw binary condition per frame. When the
// bound gamepad is absent the previous sample is retained, so an unplugged
// pad freezes rather than flickers.
type buttonDetector interface {
	update(r *Registry)
	isDown() bool
}

type keyDetector struct {
	key  Key
	down bool
}

func (d *keyDetector) update(r *Registry) {
	d.down = r.host.IsKeyDown(d.key)
}

func (d *keyDetector) isDown() bool { return d.down }

type mouseDetector struct {
	button MouseButton
	down   bool
}

func (d *mouseDetector) update(r *Registry) {
	d.down = r.host.IsMouseButtonDown(d.button)
}

func (d *mouseDetector) isDown() bool { return d.down }

type padButtonDetector struct {
	button GamepadButton
	device int
	down   bool
}

func (d *padButtonDetector) update(r *Registry) {
	id, ok := r.gamepad(d.device)
	if !ok {
		return
	}
	d.down = r.host.IsGamepadButtonDown(id, d.button)
}

func (d *padButtonDetector) isDown() bool { return d.down }

// axisThresholdDetector turns one side of an analog axis into a binary
// condition: down when the raw value is past the threshold on the
// threshold's side of zero. Two detectors with opposite-signed thresholds
// split one axis into two logical buttons.
type axisThresholdDetector struct {
	axis      GamepadAxis
	threshold float64
	device    int
	down      bool
}

func (d *axisThresholdDetector) update(r *Registry) {
	id, ok := r.gamepad(d.device)
	if !ok {
		return
	}
	v := r.host.GamepadAxis(id, d.axis)
	d.down = math.Signbit(v) == math.Signbit(d.threshold) && math.Abs(v) > math.Abs(d.threshold)
}

func (d *axisThresholdDetector) isDown() bool { return d.down }
