package core

// Action represents a semantic game action, abstracted from physical key presses
// and mouse clicks. Front-ends translate their native events into actions.
type Action int

const (
	ActionNone    Action = iota
	ActionJump           // Space - start a jump arc
	ActionClick          // Pointer released; position in InputFrame.Pointer
	ActionConfirm        // Enter - press the Play/Restart button
	ActionHelp           // H, ? - press the Help button on the home screen
	ActionBack           // B, Escape - press the Back button on the instructions screen
	ActionQuit           // Q, Ctrl+C, window close - terminate
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionClick:
		return "Click"
	case ActionConfirm:
		return "Confirm"
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

// InputFrame represents the input snapshot for one simulation tick.
// It contains all actions that were triggered during this frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// Pointer is the click position in window pixels, valid when ActionClick is set.
	Pointer Point
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Click records a pointer release at (x, y) in window pixels.
func (f *InputFrame) Click(x, y int) {
	f.Set(ActionClick)
	f.Pointer = Point{X: x, Y: y}
}

// Has returns true if the given action was triggered this frame.
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
	f.Pointer = Point{}
}
