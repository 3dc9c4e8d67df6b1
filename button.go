package controls

// button is a named logical control: the OR of its detectors, with
// press/release edges derived from the previous frame's down state.
type button struct {
	name      string
	detectors []DetectorHandle

	down         bool
	downPrevious bool
	pressed      bool
	released     bool
}

func (b *button) update(r *Registry) {
	b.downPrevious = b.down
	b.down = false
	for _, h := range b.detectors {
		if d, ok := r.buttonDetectors.get(uint64(h)); ok && d.isDown() {
			b.down = true
			break
		}
	}
	b.pressed = b.down && !b.downPrevious
	b.released = b.downPrevious && !b.down
}
