package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone      Action = iota
	ActionMoveLeft         // A, Left arrow
	ActionMoveRight        // D, Right arrow
	ActionJump             // Space - jump, also starts the game from the title screen
	ActionRestart          // R key - restart after game over or win
	ActionPause            // P key - pause/unpause (front end only)
	ActionQuit             // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionMoveLeft:
		return "MoveLeft"
	case ActionMoveRight:
		return "MoveRight"
	case ActionJump:
		return "Jump"
	case ActionRestart:
		return "Restart"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputSource reports key state for the logical actions of a single tick.
type InputSource interface {
	// Down reports whether the action's key is currently held.
	Down(a Action) bool
	// Pressed reports whether the action's key went down this tick.
	Pressed(a Action) bool
}

// Clock reports frame timing and the logical screen size.
type Clock interface {
	// Elapsed returns the seconds since the previous tick.
	Elapsed() float64
	// ScreenSize returns the logical screen size in pixels.
	ScreenSize() (w, h float64)
}

// InputFrame is a snapshot of input for one simulation tick.
// It implements InputSource.
type InputFrame struct {
	held    map[Action]bool
	pressed map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		held:    make(map[Action]bool),
		pressed: make(map[Action]bool),
	}
}

// Press marks an action as pressed this tick. A pressed key is also held.
func (f *InputFrame) Press(a Action) {
	f.ensure()
	f.pressed[a] = true
	f.held[a] = true
}

// Hold marks an action as held without an edge this tick.
func (f *InputFrame) Hold(a Action) {
	f.ensure()
	f.held[a] = true
}

// Down returns true if the action is held this tick.
func (f InputFrame) Down(a Action) bool {
	return f.held[a]
}

// Pressed returns true if the action went down this tick.
func (f InputFrame) Pressed(a Action) bool {
	return f.pressed[a]
}

func (f *InputFrame) ensure() {
	if f.held == nil {
		f.held = make(map[Action]bool)
	}
	if f.pressed == nil {
		f.pressed = make(map[Action]bool)
	}
}

// FixedClock is a Clock with a constant tick length, used by headless runs and tests.
type FixedClock struct {
	DT   float64
	W, H float64
}

// NewFixedClock returns a clock ticking at the given rate over a screen of size w×h.
func NewFixedClock(tickRate int, w, h float64) FixedClock {
	if tickRate <= 0 {
		tickRate = 60
	}
	return FixedClock{DT: 1 / float64(tickRate), W: w, H: h}
}

// Elapsed returns the constant tick length.
func (c FixedClock) Elapsed() float64 {
	return c.DT
}

// ScreenSize returns the configured screen size.
func (c FixedClock) ScreenSize() (float64, float64) {
	return c.W, c.H
}
