package core

// Action represents a semantic painter action, abstracted from physical key presses.
type Action int

const (
	ActionNone  Action = iota
	ActionClear        // C - refill the canvas with its background
	ActionQuit         // Esc, Q, Ctrl+C - exit after the current tick
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionClear:
		return "Clear"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// PointerState is a snapshot of the pointer for one tick.
// The painter keeps the previous tick's snapshot to tell a press from a drag.
type PointerState struct {
	Pressed  bool
	Position Vec2
}

// InputFrame is everything the host delivers for a single tick: the pointer
// position in canvas pixel coordinates, the primary button state and any
// keyboard actions triggered since the previous tick.
type InputFrame struct {
	Pointer Vec2
	Pressed bool

	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
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

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame. Pointer state is kept:
// hosts overwrite it every tick.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	clone.Pointer = f.Pointer
	clone.Pressed = f.Pressed
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
