package controls

// fakeHost is an in-memory Host for tests. Zero value reports everything up
// and no pads connected.
type fakeHost struct {
	keys    map[Key]bool
	mouse   map[MouseButton]bool
	pads    []GamepadID
	buttons map[GamepadID]map[GamepadButton]bool
	axes    map[GamepadID]map[GamepadAxis]float64
}

func newFakeHost() *fakeHost {
	return &fakeHost{
		keys:    make(map[Key]bool),
		mouse:   make(map[MouseButton]bool),
		buttons: make(map[GamepadID]map[GamepadButton]bool),
		axes:    make(map[GamepadID]map[GamepadAxis]float64),
	}
}

func (h *fakeHost) IsKeyDown(key Key) bool               { return h.keys[key] }
func (h *fakeHost) IsMouseButtonDown(b MouseButton) bool { return h.mouse[b] }
func (h *fakeHost) GamepadIDs() []GamepadID              { return append([]GamepadID(nil), h.pads...) }

func (h *fakeHost) IsGamepadButtonDown(id GamepadID, b GamepadButton) bool {
	return h.buttons[id][b]
}

func (h *fakeHost) GamepadAxis(id GamepadID, a GamepadAxis) float64 {
	return h.axes[id][a]
}

func (h *fakeHost) setPadButton(id GamepadID, b GamepadButton, down bool) {
	if h.buttons[id] == nil {
		h.buttons[id] = make(map[GamepadButton]bool)
	}
	h.buttons[id][b] = down
}

func (h *fakeHost) setPadAxis(id GamepadID, a GamepadAxis, v float64) {
	if h.axes[id] == nil {
		h.axes[id] = make(map[GamepadAxis]float64)
	}
	h.axes[id][a] = v
}
