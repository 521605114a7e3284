package tui

import "github.com/vovakirdan/retro-gunner/internal/core"

// holdTicks is how many ticks a movement or fire key stays active after
// its last press. Terminals deliver key repeats but no key-up events.
const holdTicks = 8

// opposite pairs cancel each other's hold.
var opposite = map[core.Action]core.Action{
	core.ActionLeft:  core.ActionRight,
	core.ActionRight: core.ActionLeft,
	core.ActionUp:    core.ActionDown,
	core.ActionDown:  core.ActionUp,
}

func isHeld(a core.Action) bool {
	switch a {
	case core.ActionLeft, core.ActionRight, core.ActionUp, core.ActionDown, core.ActionShoot:
		return true
	}
	return false
}

// heldInput turns a stream of key presses into per-tick input frames.
// Held actions decay over holdTicks; everything else lasts one frame.
type heldInput struct {
	held    map[core.Action]int
	pressed map[core.Action]bool
}

func newHeldInput() *heldInput {
	return &heldInput{
		held:    make(map[core.Action]int),
		pressed: make(map[core.Action]bool),
	}
}

// Press records a key press.
func (h *heldInput) Press(a core.Action) {
	if a == core.ActionNone {
		return
	}
	if !isHeld(a) {
		h.pressed[a] = true
		return
	}
	if o, ok := opposite[a]; ok {
		delete(h.held, o)
	}
	h.held[a] = holdTicks
}

// Frame returns the input for the next tick.
func (h *heldInput) Frame() core.InputFrame {
	f := core.NewInputFrame()
	for a := range h.held {
		f.Set(a)
	}
	for a := range h.pressed {
		f.Set(a)
	}
	return f
}

// Advance ages held actions and drops one-shot presses.
func (h *heldInput) Advance() {
	for a, n := range h.held {
		if n <= 1 {
			delete(h.held, a)
			continue
		}
		h.held[a] = n - 1
	}
	clear(h.pressed)
}

// Reset drops everything, used when the session changes hands.
func (h *heldInput) Reset() {
	clear(h.held)
	clear(h.pressed)
}
