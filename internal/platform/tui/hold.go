package tui

import (
	"time"

	"github.com/vovakirdan/jerrys-quest/internal/core"
)

// DefaultHoldWindow is how long a key counts as held after its last key event.
// Terminals only report presses, and autorepeat refreshes the window while a
// key stays down.
const DefaultHoldWindow = 250 * time.Millisecond

// HoldTracker turns the stream of terminal key events into per-tick input
// frames with both held and pressed state.
type HoldTracker struct {
	window  time.Duration
	last    map[core.Action]time.Time
	pending []core.Action
}

// NewHoldTracker creates a tracker with the given hold window.
func NewHoldTracker(window time.Duration) *HoldTracker {
	if window <= 0 {
		window = DefaultHoldWindow
	}
	return &HoldTracker{
		window: window,
		last:   make(map[core.Action]time.Time),
	}
}

// Observe records a key event for the action at time now.
// Only one horizontal direction can be held: pressing one releases the other.
func (h *HoldTracker) Observe(a core.Action, now time.Time) {
	switch a {
	case core.ActionNone:
		return
	case core.ActionMoveLeft:
		delete(h.last, core.ActionMoveRight)
	case core.ActionMoveRight:
		delete(h.last, core.ActionMoveLeft)
	}
	h.last[a] = now
	h.pending = append(h.pending, a)
}

// Frame builds the input for a tick at time now. Presses observed since the
// previous frame are reported once; keys seen within the hold window are held.
func (h *HoldTracker) Frame(now time.Time) core.InputFrame {
	f := core.NewInputFrame()
	for a, t := range h.last {
		if now.Sub(t) < h.window {
			f.Hold(a)
		} else {
			delete(h.last, a)
		}
	}
	for _, a := range h.pending {
		f.Press(a)
	}
	h.pending = h.pending[:0]
	return f
}

// Release forgets all held keys and queued presses.
func (h *HoldTracker) Release() {
	clear(h.last)
	h.pending = h.pending[:0]
}
