package controls

import (
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestButtonEdges(t *testing.T) {
	host := newFakeHost()
	r := New(host)

	kd, err := r.AddKeyDetector(ebiten.KeySpace)
	if err != nil {
		t.Fatalf("AddKeyDetector: %v", err)
	}
	if _, err := r.AddButton("jump", kd); err != nil {
		t.Fatalf("AddButton: %v", err)
	}

	frames := []struct {
		name                    string
		keyDown                 bool
		down, pressed, released bool
	}{
		{"key_goes_down", true, true, true, false},
		{"key_held", true, true, false, false},
		{"key_goes_up", false, false, false, true},
		{"key_stays_up", false, false, false, false},
	}

	for _, f := range frames {
		host.keys[ebiten.KeySpace] = f.keyDown
		r.Update()

		down, err := r.IsDown("jump")
		if err != nil {
			t.Fatalf("%s: IsDown: %v", f.name, err)
		}
		pressed, err := r.Pressed("jump")
		if err != nil {
			t.Fatalf("%s: Pressed: %v", f.name, err)
		}
		released, err := r.Released("jump")
		if err != nil {
			t.Fatalf("%s: Released: %v", f.name, err)
		}
		if down != f.down || pressed != f.pressed || released != f.released {
			t.Fatalf("%s: got down=%v pressed=%v released=%v, want %v %v %v",
				f.name, down, pressed, released, f.down, f.pressed, f.released)
		}
		if pressed && released {
			t.Fatalf("%s: pressed and released in the same frame", f.name)
		}
	}
}

func TestButtonORsDetectors(t *testing.T) {
	host := newFakeHost()
	host.pads = []GamepadID{7}
	r := New(host)

	kd, _ := r.AddKeyDetector(ebiten.KeyZ)
	md, _ := r.AddMouseDetector(ebiten.MouseButtonLeft)
	gd, _ := r.AddGamepadDetector(ebiten.StandardGamepadButtonRightBottom, 0)
	if _, err := r.AddButton("attack", kd, md, gd); err != nil {
		t.Fatalf("AddButton: %v", err)
	}

	cases := []struct {
		name            string
		key, mouse, pad bool
		want            bool
	}{
		{"none", false, false, false, false},
		{"key_only", true, false, false, true},
		{"mouse_only", false, true, false, true},
		{"pad_only", false, false, true, true},
		{"all", true, true, true, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			host.keys[ebiten.KeyZ] = c.key
			host.mouse[ebiten.MouseButtonLeft] = c.mouse
			host.setPadButton(7, ebiten.StandardGamepadButtonRightBottom, c.pad)
			r.Update()
			down, err := r.IsDown("attack")
			if err != nil {
				t.Fatalf("IsDown: %v", err)
			}
			if down != c.want {
				t.Fatalf("got down=%v, want %v", down, c.want)
			}
		})
	}
}

func TestEmptyButtonNeverDown(t *testing.T) {
	r := New(newFakeHost())
	if _, err := r.AddButton("noop"); err != nil {
		t.Fatalf("AddButton: %v", err)
	}
	for i := 0; i < 3; i++ {
		r.Update()
		down, err := r.IsDown("noop")
		if err != nil {
			t.Fatalf("IsDown: %v", err)
		}
		if down {
			t.Fatalf("frame %d: empty button reported down", i)
		}
	}
}

func TestQueriesUnknownName(t *testing.T) {
	r := New(newFakeHost())

	checks := []struct {
		name string
		call func() error
	}{
		{"IsDown", func() error { _, err := r.IsDown("nonexistent"); return err }},
		{"Pressed", func() error { _, err := r.Pressed("nonexistent"); return err }},
		{"Released", func() error { _, err := r.Released("nonexistent"); return err }},
		{"AxisValue", func() error { _, err := r.AxisValue("nonexistent"); return err }},
	}
	for _, c := range checks {
		t.Run(c.name, func(t *testing.T) {
			if err := c.call(); !errors.Is(err, ErrNotFound) {
				t.Fatalf("got %v, want ErrNotFound", err)
			}
		})
	}
}

func TestAddValidation(t *testing.T) {
	r := New(newFakeHost())
	kd, _ := r.AddKeyDetector(ebiten.KeyA)
	if _, err := r.AddButton("dup", kd); err != nil {
		t.Fatalf("AddButton: %v", err)
	}

	cases := []struct {
		name string
		call func() error
	}{
		{"negative_device", func() error {
			_, err := r.AddGamepadDetector(ebiten.StandardGamepadButtonRightBottom, -1)
			return err
		}},
		{"zero_threshold", func() error {
			_, err := r.AddAxisThresholdDetector(ebiten.StandardGamepadAxisLeftStickHorizontal, 0, 0)
			return err
		}},
		{"threshold_out_of_range", func() error {
			_, err := r.AddAxisThresholdDetector(ebiten.StandardGamepadAxisLeftStickHorizontal, 1.5, 0)
			return err
		}},
		{"empty_button_name", func() error { _, err := r.AddButton(""); return err }},
		{"duplicate_button_name", func() error { _, err := r.AddButton("dup"); return err }},
		{"unknown_detector", func() error { _, err := r.AddButton("b", DetectorHandle(999)); return err }},
		{"empty_axis_name", func() error { _, err := r.AddAxis(""); return err }},
		{"unknown_axis_detector", func() error { _, err := r.AddAxis("a", AxisDetectorHandle(999)); return err }},
		{"nil_pair_source", func() error { _, err := r.AddPairDetector(nil, kd); return err }},
		{"bad_deadzone", func() error { return r.SetDeadzone(1) }},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if err := c.call(); !errors.Is(err, ErrInvalidArgument) {
				t.Fatalf("got %v, want ErrInvalidArgument", err)
			}
		})
	}

	// Failed adds register nothing.
	if _, err := r.IsDown("b"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("partial button registered after failed add: %v", err)
	}
}

func TestRemoveFreesName(t *testing.T) {
	r := New(newFakeHost())
	kd, _ := r.AddKeyDetector(ebiten.KeyA)
	h, err := r.AddButton("shoot", kd)
	if err != nil {
		t.Fatalf("AddButton: %v", err)
	}
	if err := r.RemoveButton(h); err != nil {
		t.Fatalf("RemoveButton: %v", err)
	}
	if err := r.RemoveButton(h); !errors.Is(err, ErrNotFound) {
		t.Fatalf("double remove: got %v, want ErrNotFound", err)
	}
	if _, err := r.IsDown("shoot"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("query after remove: got %v, want ErrNotFound", err)
	}
	// Name is free again.
	if _, err := r.AddButton("shoot", kd); err != nil {
		t.Fatalf("re-add after remove: %v", err)
	}
}

func TestRemovedDetectorSkippedByButton(t *testing.T) {
	host := newFakeHost()
	r := New(host)
	kd, _ := r.AddKeyDetector(ebiten.KeyA)
	if _, err := r.AddButton("b", kd); err != nil {
		t.Fatalf("AddButton: %v", err)
	}
	host.keys[ebiten.KeyA] = true
	r.Update()
	if down, _ := r.IsDown("b"); !down {
		t.Fatalf("expected down before removal")
	}
	if err := r.RemoveDetector(kd); err != nil {
		t.Fatalf("RemoveDetector: %v", err)
	}
	r.Update()
	if down, _ := r.IsDown("b"); down {
		t.Fatalf("dangling detector handle still contributes to button")
	}
}

func TestRefreshDevicesAfterDisconnect(t *testing.T) {
	host := newFakeHost()
	host.pads = []GamepadID{3}
	host.setPadButton(3, ebiten.StandardGamepadButtonRightBottom, true)
	r := New(host)

	gd, _ := r.AddGamepadDetector(ebiten.StandardGamepadButtonRightBottom, 0)
	if _, err := r.AddButton("fire", gd); err != nil {
		t.Fatalf("AddButton: %v", err)
	}
	r.Update()
	if down, _ := r.IsDown("fire"); !down {
		t.Fatalf("expected down while pad connected")
	}

	// Unplug the pad: the bound index is now out of range, the detector
	// freezes at its last sample, and Update must not fail.
	host.pads = nil
	r.RefreshDevices()
	r.Update()
	if down, _ := r.IsDown("fire"); !down {
		t.Fatalf("detector state changed for an absent device")
	}

	if got := r.Gamepads(); len(got) != 0 {
		t.Fatalf("Gamepads after disconnect: got %v", got)
	}
}

func TestHandleValidity(t *testing.T) {
	host := newFakeHost()
	host.pads = []GamepadID{1}
	r := New(host)

	kd, _ := r.AddKeyDetector(ebiten.KeyA)
	sd, _ := r.AddStickDetector(ebiten.StandardGamepadAxisLeftStickHorizontal, 0)
	bh, _ := r.AddButton("b", kd)
	ah, _ := r.AddAxis("a", sd)
	if !kd.Valid() || !sd.Valid() || !bh.Valid() || !ah.Valid() {
		t.Fatalf("returned handles should be valid: %s %s %s %s", kd, sd, bh, ah)
	}

	var zeroDetector DetectorHandle
	var zeroButton ButtonHandle
	if zeroDetector.Valid() || zeroButton.Valid() {
		t.Fatalf("zero handles should be invalid")
	}
	if _, err := r.AddPairDetector(zeroDetector, kd); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("zero detector source: got %v, want ErrInvalidArgument", err)
	}
	if _, err := r.AddPairDetector(kd, zeroButton); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("zero button source: got %v, want ErrInvalidArgument", err)
	}
}

func TestHandleGenerationNotRecycled(t *testing.T) {
	r := New(newFakeHost())
	old, _ := r.AddKeyDetector(ebiten.KeyA)
	if err := r.RemoveDetector(old); err != nil {
		t.Fatalf("RemoveDetector: %v", err)
	}
	// The slot is recycled at a new generation; the old handle must stay dead.
	fresh, _ := r.AddKeyDetector(ebiten.KeyB)
	if old == fresh {
		t.Fatalf("recycled handle equals removed handle")
	}
	if err := r.RemoveDetector(old); !errors.Is(err, ErrNotFound) {
		t.Fatalf("stale handle resolved after recycling: %v", err)
	}
	if err := r.RemoveDetector(fresh); err != nil {
		t.Fatalf("RemoveDetector fresh: %v", err)
	}
}
