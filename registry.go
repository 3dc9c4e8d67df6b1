package controls

import "fmt"

const defaultDeadzone = 0.25

// Registry owns every detector, button, and axis, and drives their per-frame
// update. It is single-threaded: Update is called once per frame from the
// host loop, and queries must not run while an Update call is in progress.
type Registry struct {
	host     Host
	deadzone float64
	pads     []GamepadID

	buttonDetectors store[buttonDetector]
	axisDetectors   store[axisDetector]
	buttons         store[*button]
	axes            store[*axis]

	buttonNames map[string]ButtonHandle
	axisNames   map[string]AxisHandle
}

// New creates a Registry sampling from host and enumerates the connected
// gamepads. host must not be nil.
func New(host Host) *Registry {
	if host == nil {
		panic("controls: nil Host")
	}
	r := &Registry{
		host:        host,
		deadzone:    defaultDeadzone,
		buttonNames: make(map[string]ButtonHandle),
		axisNames:   make(map[string]AxisHandle),
	}
	r.RefreshDevices()
	return r
}

// Update advances one frame: button detectors, then axis detectors, then
// buttons, then axes. The order matters — axes read detector values sampled
// this frame, and pair detectors read button detectors sampled this frame.
// A button used as a pair source is read as of the previous frame, since
// buttons aggregate after axis detectors.
func (r *Registry) Update() {
	for _, d := range r.buttonDetectors.values() {
		d.update(r)
	}
	for _, d := range r.axisDetectors.values() {
		d.update(r)
	}
	for _, b := range r.buttons.values() {
		b.update(r)
	}
	for _, a := range r.axes.values() {
		a.update(r)
	}
}

// RefreshDevices re-enumerates connected gamepads. Detectors keep their
// device index; an index past the end of the new list leaves its detector
// frozen at the last sampled state until the device comes back.
func (r *Registry) RefreshDevices() {
	r.pads = append(r.pads[:0], r.host.GamepadIDs()...)
}

// Gamepads returns the device handles from the last RefreshDevices, in
// device-index order.
func (r *Registry) Gamepads() []GamepadID {
	out := make([]GamepadID, len(r.pads))
	copy(out, r.pads)
	return out
}

func (r *Registry) gamepad(device int) (GamepadID, bool) {
	if device < 0 || device >= len(r.pads) {
		return 0, false
	}
	return r.pads[device], true
}

// SetDeadzone sets the registry-wide deadzone applied to every axis
// detector's effective value. Must be in [0, 1).
func (r *Registry) SetDeadzone(v float64) error {
	if v < 0 || v >= 1 {
		return fmt.Errorf("controls: deadzone %v out of [0, 1): %w", v, ErrInvalidArgument)
	}
	r.deadzone = v
	return nil
}

// Deadzone returns the current registry-wide deadzone.
func (r *Registry) Deadzone() float64 {
	return r.deadzone
}

// AddKeyDetector registers a detector that is down while the keyboard key is
// held.
func (r *Registry) AddKeyDetector(key Key) (DetectorHandle, error) {
	if key < 0 {
		return 0, fmt.Errorf("controls: key %d: %w", key, ErrInvalidArgument)
	}
	return DetectorHandle(r.buttonDetectors.add(&keyDetector{key: key})), nil
}

// AddMouseDetector registers a detector that is down while the mouse button
// is held.
func (r *Registry) AddMouseDetector(button MouseButton) (DetectorHandle, error) {
	if button < 0 {
		return 0, fmt.Errorf("controls: mouse button %d: %w", button, ErrInvalidArgument)
	}
	return DetectorHandle(r.buttonDetectors.add(&mouseDetector{button: button})), nil
}

// AddGamepadDetector registers a detector that is down while the gamepad
// button is held on the pad at device index device.
func (r *Registry) AddGamepadDetector(button GamepadButton, device int) (DetectorHandle, error) {
	if button < 0 {
		return 0, fmt.Errorf("controls: gamepad button %d: %w", button, ErrInvalidArgument)
	}
	if device < 0 {
		return 0, fmt.Errorf("controls: device index %d: %w", device, ErrInvalidArgument)
	}
	return DetectorHandle(r.buttonDetectors.add(&padButtonDetector{button: button, device: device})), nil
}

// AddAxisThresholdDetector registers a detector that is down while the raw
// axis value is past threshold on threshold's side of zero. threshold must
// be non-zero and within [-1, 1].
func (r *Registry) AddAxisThresholdDetector(axisID GamepadAxis, threshold float64, device int) (DetectorHandle, error) {
	if axisID < 0 {
		return 0, fmt.Errorf("controls: gamepad axis %d: %w", axisID, ErrInvalidArgument)
	}
	if threshold == 0 || threshold < -1 || threshold > 1 {
		return 0, fmt.Errorf("controls: threshold %v: %w", threshold, ErrInvalidArgument)
	}
	if device < 0 {
		return 0, fmt.Errorf("controls: device index %d: %w", device, ErrInvalidArgument)
	}
	d := &axisThresholdDetector{axis: axisID, threshold: threshold, device: device}
	return DetectorHandle(r.buttonDetectors.add(d)), nil
}

// AddStickDetector registers an axis detector reporting the raw value of the
// gamepad axis on the pad at device index device.
func (r *Registry) AddStickDetector(axisID GamepadAxis, device int) (AxisDetectorHandle, error) {
	if axisID < 0 {
		return 0, fmt.Errorf("controls: gamepad axis %d: %w", axisID, ErrInvalidArgument)
	}
	if device < 0 {
		return 0, fmt.Errorf("controls: device index %d: %w", device, ErrInvalidArgument)
	}
	return AxisDetectorHandle(r.axisDetectors.add(&stickDetector{axis: axisID, device: device})), nil
}

// AddPairDetector registers an axis detector deriving -1/0/+1 from two
// binary sources. Sources may be detector handles or button handles; a
// button source is read as of the previous frame (buttons aggregate after
// axis detectors in the update order).
func (r *Registry) AddPairDetector(negative, positive BinarySource) (AxisDetectorHandle, error) {
	if err := r.checkSource("negative", negative); err != nil {
		return 0, err
	}
	if err := r.checkSource("positive", positive); err != nil {
		return 0, err
	}
	return AxisDetectorHandle(r.axisDetectors.add(&pairDetector{negative: negative, positive: positive})), nil
}

func (r *Registry) checkSource(side string, s BinarySource) error {
	switch h := s.(type) {
	case DetectorHandle:
		if !h.Valid() {
			return fmt.Errorf("controls: zero %s source detector: %w", side, ErrInvalidArgument)
		}
		if _, ok := r.buttonDetectors.get(uint64(h)); !ok {
			return fmt.Errorf("controls: %s source detector %s: %w", side, h, ErrInvalidArgument)
		}
	case ButtonHandle:
		if !h.Valid() {
			return fmt.Errorf("controls: zero %s source button: %w", side, ErrInvalidArgument)
		}
		if _, ok := r.buttons.get(uint64(h)); !ok {
			return fmt.Errorf("controls: %s source button %s: %w", side, h, ErrInvalidArgument)
		}
	default:
		return fmt.Errorf("controls: nil %s source: %w", side, ErrInvalidArgument)
	}
	return nil
}

func (r *Registry) sourceDown(s BinarySource) bool {
	switch h := s.(type) {
	case DetectorHandle:
		if d, ok := r.buttonDetectors.get(uint64(h)); ok {
			return d.isDown()
		}
	case ButtonHandle:
		if b, ok := r.buttons.get(uint64(h)); ok {
			return b.down
		}
	}
	return false
}

// AddButton registers a named button aggregating the given detectors with a
// logical OR. A button with no detectors is never down.
func (r *Registry) AddButton(name string, detectors ...DetectorHandle) (ButtonHandle, error) {
	if name == "" {
		return 0, fmt.Errorf("controls: empty button name: %w", ErrInvalidArgument)
	}
	if _, exists := r.buttonNames[name]; exists {
		return 0, fmt.Errorf("controls: button %q already registered: %w", name, ErrInvalidArgument)
	}
	for _, h := range detectors {
		if _, ok := r.buttonDetectors.get(uint64(h)); !ok {
			return 0, fmt.Errorf("controls: button %q: unknown detector %s: %w", name, h, ErrInvalidArgument)
		}
	}
	b := &button{name: name, detectors: append([]DetectorHandle(nil), detectors...)}
	h := ButtonHandle(r.buttons.add(b))
	r.buttonNames[name] = h
	return h, nil
}

// AddAxis registers a named axis aggregating the given detectors with the
// last-nonzero-wins rule in the order given here.
func (r *Registry) AddAxis(name string, detectors ...AxisDetectorHandle) (AxisHandle, error) {
	if name == "" {
		return 0, fmt.Errorf("controls: empty axis name: %w", ErrInvalidArgument)
	}
	if _, exists := r.axisNames[name]; exists {
		return 0, fmt.Errorf("controls: axis %q already registered: %w", name, ErrInvalidArgument)
	}
	for _, h := range detectors {
		if _, ok := r.axisDetectors.get(uint64(h)); !ok {
			return 0, fmt.Errorf("controls: axis %q: unknown detector %s: %w", name, h, ErrInvalidArgument)
		}
	}
	a := &axis{name: name, detectors: append([]AxisDetectorHandle(nil), detectors...)}
	h := AxisHandle(r.axes.add(a))
	r.axisNames[name] = h
	return h, nil
}

// RemoveDetector deletes a button detector. Buttons and pair detectors still
// referencing it skip the dangling handle from then on.
func (r *Registry) RemoveDetector(h DetectorHandle) error {
	if !r.buttonDetectors.remove(uint64(h)) {
		return fmt.Errorf("controls: detector %s: %w", h, ErrNotFound)
	}
	return nil
}

// RemoveAxisDetector deletes an axis detector. Axes still referencing it
// skip the dangling handle from then on.
func (r *Registry) RemoveAxisDetector(h AxisDetectorHandle) error {
	if !r.axisDetectors.remove(uint64(h)) {
		return fmt.Errorf("controls: axis detector %s: %w", h, ErrNotFound)
	}
	return nil
}

// RemoveButton deletes a button and frees its name. Its detectors stay
// registered; they may be shared with other aggregates.
func (r *Registry) RemoveButton(h ButtonHandle) error {
	b, ok := r.buttons.get(uint64(h))
	if !ok {
		return fmt.Errorf("controls: button %s: %w", h, ErrNotFound)
	}
	r.buttons.remove(uint64(h))
	delete(r.buttonNames, b.name)
	return nil
}

// RemoveAxis deletes an axis and frees its name. Its detectors stay
// registered.
func (r *Registry) RemoveAxis(h AxisHandle) error {
	a, ok := r.axes.get(uint64(h))
	if !ok {
		return fmt.Errorf("controls: axis %s: %w", h, ErrNotFound)
	}
	r.axes.remove(uint64(h))
	delete(r.axisNames, a.name)
	return nil
}

func (r *Registry) buttonByName(name string) (*button, error) {
	if h, ok := r.buttonNames[name]; ok {
		if b, ok := r.buttons.get(uint64(h)); ok {
			return b, nil
		}
	}
	return nil, fmt.Errorf("controls: button %q: %w", name, ErrNotFound)
}

func (r *Registry) axisByName(name string) (*axis, error) {
	if h, ok := r.axisNames[name]; ok {
		if a, ok := r.axes.get(uint64(h)); ok {
			return a, nil
		}
	}
	return nil, fmt.Errorf("controls: axis %q: %w", name, ErrNotFound)
}

// IsDown reports whether the named button is down as of the last Update.
func (r *Registry) IsDown(name string) (bool, error) {
	b, err := r.buttonByName(name)
	if err != nil {
		return false, err
	}
	return b.down, nil
}

// Pressed reports whether the named button went down this frame.
func (r *Registry) Pressed(name string) (bool, error) {
	b, err := r.buttonByName(name)
	if err != nil {
		return false, err
	}
	return b.pressed, nil
}

// Released reports whether the named button went up this frame.
func (r *Registry) Released(name string) (bool, error) {
	b, err := r.buttonByName(name)
	if err != nil {
		return false, err
	}
	return b.released, nil
}

// AxisValue returns the named axis's value as of the last Update.
func (r *Registry) AxisValue(name string) (float64, error) {
	a, err := r.axisByName(name)
	if err != nil {
		return 0, err
	}
	return a.val, nil
}

// ButtonNames returns the registered button names in no particular order.
func (r *Registry) ButtonNames() []string {
	out := make([]string, 0, len(r.buttonNames))
	for name := range r.buttonNames {
		out = append(out, name)
	}
	return out
}

// AxisNames returns the registered axis names in no particular order.
func (r *Registry) AxisNames() []string {
	out := make([]string, 0, len(r.axisNames))
	for name := range r.axisNames {
		out = append(out, name)
	}
	return out
}
