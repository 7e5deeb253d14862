package core

// Action represents a semantic game action, abstracted from physical key presses.
// The platform maps keys to actions; the game never sees raw input.
type Action int

const (
	ActionNone   Action = iota
	ActionLeft          // h
	ActionDown          // j
	ActionUp            // k
	ActionRight         // l
	ActionToggle        // Space - flip the neighborhood under the cursor
	ActionQuit          // q
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionDown:
		return "Down"
	case ActionUp:
		return "Up"
	case ActionRight:
		return "Right"
	case ActionToggle:
		return "Toggle"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
