package core

// Action represents a semantic game action, abstracted from physical key
// presses. The simulation only ever sees "is this logical direction pressed",
// never key identifiers.
type Action int

const (
	ActionNone  Action = iota
	ActionLeft         // A, H, Left arrow
	ActionDown         // S, J, Down arrow
	ActionUp           // W, K, Up arrow
	ActionRight        // D, L, Right arrow
	ActionQuit         // Q, Ctrl+C - exit game/session
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
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for a single update cycle.
// It contains all actions that were pressed during this cycle.
type InputFrame struct {
	// Actions maps action types to whether they were pressed this cycle.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as pressed for this cycle.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was pressed this cycle.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next cycle.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
