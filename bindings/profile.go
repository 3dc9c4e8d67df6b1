// Package bindings loads control binding profiles from YAML and applies them
// to a controls.Registry. A profile is the on-disk shape of spec-to-control
// wiring: named buttons and axes, each a list of physical sources, applied
// in list order so later axis sources win ties.
package bindings

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/milk9111/controls"
)

// Profile is one binding document.
type Profile struct {
	Deadzone *float64                  `yaml:"deadzone,omitempty"`
	Buttons  map[string][]ButtonSource `yaml:"buttons"`
	Axes     map[string][]AxisSource   `yaml:"axes"`
}

// ButtonSource binds one physical binary source. Exactly one of Key, Mouse,
// GamepadButton, Axis, or Button must be set; Button names another profile
// button and is only valid inside a pair.
type ButtonSource struct {
	Key           string  `yaml:"key,omitempty"`
	Mouse         string  `yaml:"mouse,omitempty"`
	GamepadButton string  `yaml:"gamepad_button,omitempty"`
	Axis          string  `yaml:"axis,omitempty"`
	Threshold     float64 `yaml:"threshold,omitempty"`
	Device        int     `yaml:"device,omitempty"`
	Button        string  `yaml:"button,omitempty"`
}

// AxisSource binds one scalar source: an analog stick or a pair of binary
// sources.
type AxisSource struct {
	Stick  string    `yaml:"stick,omitempty"`
	Device int       `yaml:"device,omitempty"`
	Pair   *PairSpec `yaml:"pair,omitempty"`
}

// PairSpec composes two binary sources into a -1/0/+1 axis source.
type PairSpec struct {
	Negative ButtonSource `yaml:"negative"`
	Positive ButtonSource `yaml:"positive"`
}

// Load reads and parses a profile file.
func Load(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("bindings: load %s: %w", path, err)
	}
	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("bindings: %s: %w", path, err)
	}
	return p, nil
}

// Parse parses and validates a profile document.
func Parse(data []byte) (*Profile, error) {
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("bindings: unmarshal: %w", err)
	}
	if err := p.validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

func (p *Profile) validate() error {
	for name, sources := range p.Buttons {
		if name == "" {
			return fmt.Errorf("bindings: button with empty name")
		}
		for i, src := range sources {
			if err := src.validate(false); err != nil {
				return fmt.Errorf("bindings: button %q source %d: %w", name, i, err)
			}
		}
	}
	for name, sources := range p.Axes {
		if name == "" {
			return fmt.Errorf("bindings: axis with empty name")
		}
		for i, src := range sources {
			switch {
			case src.Stick != "" && src.Pair != nil:
				return fmt.Errorf("bindings: axis %q source %d: both stick and pair set", name, i)
			case src.Stick == "" && src.Pair == nil:
				return fmt.Errorf("bindings: axis %q source %d: no source kind set", name, i)
			case src.Pair != nil:
				if err := src.Pair.Negative.validate(true); err != nil {
					return fmt.Errorf("bindings: axis %q source %d negative: %w", name, i, err)
				}
				if err := src.Pair.Positive.validate(true); err != nil {
					return fmt.Errorf("bindings: axis %q source %d positive: %w", name, i, err)
				}
				if ref := src.Pair.Negative.Button; ref != "" {
					if _, ok := p.Buttons[ref]; !ok {
						return fmt.Errorf("bindings: axis %q source %d: unknown button %q", name, i, ref)
					}
				}
				if ref := src.Pair.Positive.Button; ref != "" {
					if _, ok := p.Buttons[ref]; !ok {
						return fmt.Errorf("bindings: axis %q source %d: unknown button %q", name, i, ref)
					}
				}
			}
		}
	}
	return nil
}

func (s *ButtonSource) validate(inPair bool) error {
	set := 0
	for _, field := range []string{s.Key, s.Mouse, s.GamepadButton, s.Axis, s.Button} {
		if field != "" {
			set++
		}
	}
	if set != 1 {
		return fmt.Errorf("exactly one of key, mouse, gamepad_button, axis, button must be set")
	}
	if s.Button != "" && !inPair {
		return fmt.Errorf("button references are only valid inside a pair")
	}
	if s.Axis != "" && (s.Threshold == 0 || s.Threshold < -1 || s.Threshold > 1) {
		return fmt.Errorf("axis source needs a non-zero threshold in [-1, 1]")
	}
	return nil
}

// Apply registers everything the profile describes on reg. Buttons are
// registered before axes so pair sources can reference them by name. The
// profile is validated before anything is registered, so a file that fails
// to parse never half-applies.
func (p *Profile) Apply(reg *controls.Registry) error {
	if err := p.validate(); err != nil {
		return err
	}
	if p.Deadzone != nil {
		if err := reg.SetDeadzone(*p.Deadzone); err != nil {
			return fmt.Errorf("bindings: %w", err)
		}
	}

	buttons := make(map[string]controls.ButtonHandle, len(p.Buttons))
	for _, name := range sortedKeys(p.Buttons) {
		detectors := make([]controls.DetectorHandle, 0, len(p.Buttons[name]))
		for i, src := range p.Buttons[name] {
			h, err := src.register(reg)
			if err != nil {
				return fmt.Errorf("bindings: button %q source %d: %w", name, i, err)
			}
			detectors = append(detectors, h)
		}
		h, err := reg.AddButton(name, detectors...)
		if err != nil {
			return fmt.Errorf("bindings: %w", err)
		}
		buttons[name] = h
	}

	for _, name := range sortedKeys(p.Axes) {
		detectors := make([]controls.AxisDetectorHandle, 0, len(p.Axes[name]))
		for i, src := range p.Axes[name] {
			h, err := src.register(reg, buttons)
			if err != nil {
				return fmt.Errorf("bindings: axis %q source %d: %w", name, i, err)
			}
			detectors = append(detectors, h)
		}
		if _, err := reg.AddAxis(name, detectors...); err != nil {
			return fmt.Errorf("bindings: %w", err)
		}
	}
	return nil
}

func (s *ButtonSource) register(reg *controls.Registry) (controls.DetectorHandle, error) {
	switch {
	case s.Key != "":
		k, err := keyByName(s.Key)
		if err != nil {
			return 0, err
		}
		return reg.AddKeyDetector(k)
	case s.Mouse != "":
		b, err := mouseByName(s.Mouse)
		if err != nil {
			return 0, err
		}
		return reg.AddMouseDetector(b)
	case s.GamepadButton != "":
		b, err := padButtonByName(s.GamepadButton)
		if err != nil {
			return 0, err
		}
		return reg.AddGamepadDetector(b, s.Device)
	case s.Axis != "":
		a, err := padAxisByName(s.Axis)
		if err != nil {
			return 0, err
		}
		return reg.AddAxisThresholdDetector(a, s.Threshold, s.Device)
	}
	return 0, fmt.Errorf("no source kind set")
}

func (s *ButtonSource) binarySource(reg *controls.Registry, buttons map[string]controls.ButtonHandle) (controls.BinarySource, error) {
	if s.Button != "" {
		h, ok := buttons[s.Button]
		if !ok {
			return nil, fmt.Errorf("unknown button %q", s.Button)
		}
		return h, nil
	}
	return s.register(reg)
}

func (s *AxisSource) register(reg *controls.Registry, buttons map[string]controls.ButtonHandle) (controls.AxisDetectorHandle, error) {
	if s.Stick != "" {
		a, err := padAxisByName(s.Stick)
		if err != nil {
			return 0, err
		}
		return reg.AddStickDetector(a, s.Device)
	}
	neg, err := s.Pair.Negative.binarySource(reg, buttons)
	if err != nil {
		return 0, err
	}
	pos, err := s.Pair.Positive.binarySource(reg, buttons)
	if err != nil {
		return 0, err
	}
	return reg.AddPairDetector(neg, pos)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
