package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionCancel         // Escape - drop the current selection
	ActionRestart        // R key - start a new game after game over
	ActionQuit           // Q, Ctrl+C - exit
	ActionPause          // P - pause/unpause
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionCancel:
		return "Cancel"
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

// Pointer is one selection gesture: a click on a cell or a typed planet label.
type Pointer struct {
	Cell Point
	Key  rune // Non-zero for a typed label, Cell is unused then
}

// IsKey reports whether the gesture was a typed label.
func (p Pointer) IsKey() bool {
	return p.Key != 0
}

// InputFrame is everything the player did during one simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// Pointers are clicks and typed labels in the order they happened.
	Pointers []Pointer
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
	return f.Actions[a]
}

// Click records a pointer press at cell (x, y).
func (f *InputFrame) Click(x, y int) {
	f.Pointers = append(f.Pointers, Pointer{Cell: Point{X: x, Y: y}})
}

// Hotkey records a typed target label.
func (f *InputFrame) Hotkey(r rune) {
	f.Pointers = append(f.Pointers, Pointer{Key: r})
}

// Clear resets the frame for the next tick, keeping allocated storage.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Pointers = f.Pointers[:0]
}
