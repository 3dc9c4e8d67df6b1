package controls

// axis is a named scalar control. Its detectors are scanned in registration
// order and the last one with a non-zero effective value wins, so a source
// bound later (typically an analog stick layered over keys) dominates while
// active.
type axis struct {
	name      string
	detectors []AxisDetectorHandle
	val       float64
}

func (a *axis) update(r *Registry) {
	a.val = 0
	for _, h := range a.detectors {
		d, ok := r.axisDetectors.get(uint64(h))
		if !ok {
			continue
		}
		if v := effectiveValue(d, r.deadzone); v != 0 {
			a.val = v
		}
	}
}
