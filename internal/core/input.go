package core

// Action represents a semantic player intent, abstracted from physical keys
// and mouse buttons. The platform translates actions into touch signals.
type Action int

const (
	ActionNone  Action = iota
	ActionLeft         // A, Left arrow - hold paddle moving left
	ActionRight        // D, Right arrow - hold paddle moving right
	ActionStop         // Space, S, Down - release the paddle
	ActionHelp         // ? - toggle the full help view
	ActionQuit         // Q, Ctrl+C - exit the game
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
	case ActionStop:
		return "Stop"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
