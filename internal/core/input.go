package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone       Action = iota
	ActionUp                // W, Up arrow, k - face/move up
	ActionDown              // S, Down arrow, j - face/move down
	ActionLeft              // A, Left arrow, h - face/move left
	ActionRight             // D, Right arrow, l - face/move right
	ActionShoot             // Space, F - fire along the current heading
	ActionRestart           // R - abandon the run and start a fresh board
	ActionReveal            // V - toggle drawing of undiscovered tiles
	ActionScoreboard        // Tab - open the run history
	ActionHelp              // ? - toggle the full key help
	ActionBack              // B, Escape - leave a sub screen
	ActionQuit              // Q, Ctrl+C - exit the session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionShoot:
		return "Shoot"
	case ActionRestart:
		return "Restart"
	case ActionReveal:
		return "Reveal"
	case ActionScoreboard:
		return "Scoreboard"
	case ActionHelp:
		return "Help"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsDirectional returns true for the four movement actions.
func (a Action) IsDirectional() bool {
	return a == ActionUp || a == ActionDown || a == ActionLeft || a == ActionRight
}
