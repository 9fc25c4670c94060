package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the simulation to work with held intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionForward        // W, Up arrow - thrust along facing
	ActionLeft           // A, Left arrow - turn counter-clockwise
	ActionRight          // D, Right arrow - turn clockwise
	ActionFire           // Space - fire player laser
	ActionStart          // Enter - start from the start screen
	ActionRestart        // R key - restart game after game over
	ActionPause          // P, Escape - pause/unpause game
	ActionQuit           // Q, Ctrl+C - exit game/session
)

// String returns the input identifier for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionForward:
		return "move-forward"
	case ActionLeft:
		return "turn-left"
	case ActionRight:
		return "turn-right"
	case ActionFire:
		return "fire"
	case ActionStart:
		return "start"
	case ActionRestart:
		return "restart"
	case ActionPause:
		return "pause"
	case ActionQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// ParseAction maps an input identifier back to its action.
// Unknown identifiers yield ActionNone.
func ParseAction(s string) Action {
	for a := ActionForward; a <= ActionQuit; a++ {
		if a.String() == s {
			return a
		}
	}
	return ActionNone
}

// InputFrame is the set of actions held during one simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they are held this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame(actions ...Action) InputFrame {
	f := InputFrame{
		Actions: make(map[Action]bool),
	}
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

// Set marks an action as held for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action is held this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
