package core

import "testing"

func TestInputFrameActionsAndKeys(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionUp)
	f.Press("w")
	f.Press("up")

	if !f.Has(ActionUp) {
		t.Error("Has(ActionUp) should be true after Set")
	}
	if f.Has(ActionDown) {
		t.Error("Has(ActionDown) should be false")
	}
	if got := len(f.Pressed()); got != 2 {
		t.Errorf("Pressed() returned %d keys, expected 2", got)
	}

	f.Clear()
	if f.Has(ActionUp) || len(f.Pressed()) != 0 {
		t.Error("Clear should drop actions and keys")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	if f.Has(ActionPause) {
		t.Error("zero frame should have no actions")
	}
	f.Set(ActionPause)
	f.Press("p")
	if !f.Has(ActionPause) || len(f.Pressed()) != 1 {
		t.Error("zero frame should lazily allocate on Set/Press")
	}
}

func TestActionString(t *testing.T) {
	if ActionRestart.String() != "Restart" {
		t.Errorf("ActionRestart.String() = %q", ActionRestart.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("unknown action should print Unknown")
	}
}
