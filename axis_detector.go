package controls

import "math"

// axisDetector samples one scalar condition per frame. value is the raw
// sample; the registry deadzone is applied by effectiveValue at aggregation
// time, not stored.
type axisDetector interface {
	update(r *Registry)
	value() float64
}

func effectiveValue(d axisDetector, deadzone float64) float64 {
	if v := d.value(); math.Abs(v) > deadzone {
		return v
	}
	return 0
}

type stickDetector struct {
	axis   GamepadAxis
	device int
	val    float64
}

func (d *stickDetector) update(r *Registry) {
	id, ok := r.gamepad(d.device)
	if !ok {
		return
	}
	d.val = r.host.GamepadAxis(id, d.axis)
}

func (d *stickDetector) value() float64 { return d.val }

// pairDetector derives a scalar from two binary sources: -1 when only the
// negative source is down, +1 when only the positive one is, 0 otherwise.
// Sources are resolved through the registry each frame; a removed source
// reads as not down.
type pairDetector struct {
	negative BinarySource
	positive BinarySource
	val      float64
}

func (d *pairDetector) update(r *Registry) {
	neg := r.sourceDown(d.negative)
	pos := r.sourceDown(d.positive)
	switch {
	case neg == pos:
		d.val = 0
	case neg:
		d.val = -1
	default:
		d.val = 1
	}
}

func (d *pairDetector) value() float64 { return d.val }
