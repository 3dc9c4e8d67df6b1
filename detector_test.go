package controls

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestAxisThresholdDetector(t *testing.T) {
	cases := []struct {
		name      string
		threshold float64
		raw       float64
		want      bool
	}{
		{"neg_threshold_past", -0.5, -0.7, true},
		{"neg_threshold_wrong_side", -0.5, 0.3, false},
		{"neg_threshold_short", -0.5, -0.4, false},
		{"pos_threshold_past", 0.5, 0.7, true},
		{"pos_threshold_wrong_side", 0.5, -0.7, false},
		{"at_threshold_not_down", 0.5, 0.5, false},
		{"centered", 0.5, 0, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			host := newFakeHost()
			host.pads = []GamepadID{1}
			host.setPadAxis(1, ebiten.StandardGamepadAxisLeftStickHorizontal, c.raw)
			r := New(host)

			d, err := r.AddAxisThresholdDetector(ebiten.StandardGamepadAxisLeftStickHorizontal, c.threshold, 0)
			if err != nil {
				t.Fatalf("AddAxisThresholdDetector: %v", err)
			}
			if _, err := r.AddButton("dir", d); err != nil {
				t.Fatalf("AddButton: %v", err)
			}
			r.Update()
			down, err := r.IsDown("dir")
			if err != nil {
				t.Fatalf("IsDown: %v", err)
			}
			if down != c.want {
				t.Fatalf("threshold=%v raw=%v: got down=%v, want %v", c.threshold, c.raw, down, c.want)
			}
		})
	}
}

func TestOppositeThresholdsSplitOneAxis(t *testing.T) {
	host := newFakeHost()
	host.pads = []GamepadID{1}
	r := New(host)

	left, _ := r.AddAxisThresholdDetector(ebiten.StandardGamepadAxisLeftStickHorizontal, -0.5, 0)
	right, _ := r.AddAxisThresholdDetector(ebiten.StandardGamepadAxisLeftStickHorizontal, 0.5, 0)
	if _, err := r.AddButton("left", left); err != nil {
		t.Fatalf("AddButton: %v", err)
	}
	if _, err := r.AddButton("right", right); err != nil {
		t.Fatalf("AddButton: %v", err)
	}

	cases := []struct {
		raw                 float64
		wantLeft, wantRight bool
	}{
		{-0.9, true, false},
		{0.9, false, true},
		{0, false, false},
	}
	for _, c := range cases {
		host.setPadAxis(1, ebiten.StandardGamepadAxisLeftStickHorizontal, c.raw)
		r.Update()
		l, _ := r.IsDown("left")
		rg, _ := r.IsDown("right")
		if l != c.wantLeft || rg != c.wantRight {
			t.Fatalf("raw=%v: got left=%v right=%v, want %v %v", c.raw, l, rg, c.wantLeft, c.wantRight)
		}
	}
}

func TestGamepadDetectorRetainsStateWhenDeviceAbsent(t *testing.T) {
	host := newFakeHost()
	host.pads = []GamepadID{4}
	host.setPadButton(4, ebiten.StandardGamepadButtonLeftBottom, true)
	host.setPadAxis(4, ebiten.StandardGamepadAxisLeftStickVertical, -0.8)
	r := New(host)

	gd, _ := r.AddGamepadDetector(ebiten.StandardGamepadButtonLeftBottom, 0)
	sd, _ := r.AddStickDetector(ebiten.StandardGamepadAxisLeftStickVertical, 0)
	if _, err := r.AddButton("crouch", gd); err != nil {
		t.Fatalf("AddButton: %v", err)
	}
	if _, err := r.AddAxis("move_y", sd); err != nil {
		t.Fatalf("AddAxis: %v", err)
	}

	r.Update()
	if down, _ := r.IsDown("crouch"); !down {
		t.Fatalf("expected crouch down")
	}
	if v, _ := r.AxisValue("move_y"); v != -0.8 {
		t.Fatalf("expected move_y=-0.8, got %v", v)
	}

	host.pads = nil
	r.RefreshDevices()
	// Host state changes but the device is gone; samples must freeze.
	host.setPadButton(4, ebiten.StandardGamepadButtonLeftBottom, false)
	host.setPadAxis(4, ebiten.StandardGamepadAxisLeftStickVertical, 0)
	r.Update()

	if down, _ := r.IsDown("crouch"); !down {
		t.Fatalf("crouch reset while device absent")
	}
	if v, _ := r.AxisValue("move_y"); v != -0.8 {
		t.Fatalf("move_y reset while device absent, got %v", v)
	}
}
