package core

// Action represents a semantic game action, abstracted from physical key presses.
// Input adapters (keyboard, SSH session, autopilot) produce actions; the
// simulation never sees raw keys.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, Left arrow - move left
	ActionRight          // D, Right arrow - move right
	ActionUp             // W, Up arrow - aim/look up
	ActionDown           // S, Down arrow - crouch
	ActionJump           // Space, K - jump
	ActionShoot          // J, X - fire current weapon
	ActionWeapon1        // 1 - basic gun
	ActionWeapon2        // 2 - machine gun
	ActionWeapon3        // 3 - spread gun
	ActionConfirm        // Enter - start game / next level
	ActionRestart        // R key - restart game after game over
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P, Escape - pause/unpause game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionJump:
		return "Jump"
	case ActionShoot:
		return "Shoot"
	case ActionWeapon1:
		return "Weapon1"
	case ActionWeapon2:
		return "Weapon2"
	case ActionWeapon3:
		return "Weapon3"
	case ActionConfirm:
		return "Confirm"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for the player during one simulation tick.
// It contains all actions that are held or were triggered during this frame.
type InputFrame struct {
	// Actions maps action types to whether they are active this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as active for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action is active this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}
