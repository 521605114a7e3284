package tui

import (
	"testing"

	"github.com/vovakirdan/retro-gunner/internal/core"
)

func TestHeldInputDecays(t *testing.T) {
	h := newHeldInput()
	h.Press(core.ActionRight)

	for i := 0; i < holdTicks; i++ {
		if f := h.Frame(); !f.Has(core.ActionRight) {
			t.Fatalf("right released after %d ticks", i)
		}
		h.Advance()
	}
	if f := h.Frame(); f.Has(core.ActionRight) {
		t.Error("right still held after the hold window")
	}
}

func TestHeldInputRepeatRefreshes(t *testing.T) {
	h := newHeldInput()
	h.Press(core.ActionShoot)
	for i := 0; i < holdTicks-1; i++ {
		h.Advance()
	}
	h.Press(core.ActionShoot)
	h.Advance()

	if f := h.Frame(); !f.Has(core.ActionShoot) {
		t.Error("key repeat did not extend the hold")
	}
}

func TestHeldInputOppositesCancel(t *testing.T) {
	h := newHeldInput()
	h.Press(core.ActionLeft)
	h.Press(core.ActionRight)

	f := h.Frame()
	if f.Has(core.ActionLeft) {
		t.Error("left still held after pressing right")
	}
	if !f.Has(core.ActionRight) {
		t.Error("right not held")
	}
}

func TestHeldInputOneShot(t *testing.T) {
	tests := []core.Action{
		core.ActionJump,
		core.ActionConfirm,
		core.ActionPause,
		core.ActionRestart,
		core.ActionWeapon2,
	}

	for _, a := range tests {
		t.Run(a.String(), func(t *testing.T) {
			h := newHeldInput()
			h.Press(a)
			if f := h.Frame(); !f.Has(a) {
				t.Fatalf("%v missing from the first frame", a)
			}
			h.Advance()
			if f := h.Frame(); f.Has(a) {
				t.Errorf("%v repeated into the next frame", a)
			}
		})
	}
}

func TestHeldInputReset(t *testing.T) {
	h := newHeldInput()
	h.Press(core.ActionLeft)
	h.Press(core.ActionConfirm)
	h.Press(core.ActionNone)
	h.Reset()

	if f := h.Frame(); len(f.Actions) != 0 {
		t.Errorf("frame after reset = %v, want empty", f.Actions)
	}
}
