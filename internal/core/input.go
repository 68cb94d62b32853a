package core

// Action represents a console command, abstracted from physical key presses.
type Action int

const (
	ActionNone       Action = iota
	ActionFireSingle        // Space, F - fire one torpedo
	ActionFireAll           // A - fire every loaded store
	ActionReload            // R - restock both stores
	ActionToggleLog         // Tab - switch between status and salvo log
	ActionHelp              // ? - expand key help
	ActionQuit              // Q, Ctrl+C - leave the console
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionFireSingle:
		return "FireSingle"
	case ActionFireAll:
		return "FireAll"
	case ActionReload:
		return "Reload"
	case ActionToggleLog:
		return "ToggleLog"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// FiringMode returns the mode a fire action requests.
// The second result is false for actions that do not fire.
func (a Action) FiringMode() (FiringMode, bool) {
	switch a {
	case ActionFireSingle:
		return FiringModeSingle, true
	case ActionFireAll:
		return FiringModeAll, true
	default:
		return 0, false
	}
}
