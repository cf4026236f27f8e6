package tui

import "github.com/vovakirdan/tui-breakout/internal/core"

// DefaultHoldTicks is how long a direction stays held after one press.
// Terminal auto-repeat usually refreshes it well before it expires.
const DefaultHoldTicks = 8

// HoldState turns key presses into held direction flags.
// Terminals report presses but never releases, so a press holds its
// direction for a fixed number of ticks. Pressing the opposite direction
// releases the other one at once.
type HoldState struct {
	holdTicks int
	left      int // ticks remaining
	right     int
	restart   bool
}

// NewHoldState creates a hold state. Non-positive holdTicks uses the default.
func NewHoldState(holdTicks int) HoldState {
	if holdTicks <= 0 {
		holdTicks = DefaultHoldTicks
	}
	return HoldState{holdTicks: holdTicks}
}

// Press records a key press.
func (h *HoldState) Press(a core.Action) {
	switch a {
	case core.ActionLeft:
		h.left = h.holdTicks
		h.right = 0
	case core.ActionRight:
		h.right = h.holdTicks
		h.left = 0
	case core.ActionRestart:
		h.restart = true
	}
}

// Held reports whether a direction is currently held.
func (h *HoldState) Held(a core.Action) bool {
	switch a {
	case core.ActionLeft:
		return h.left > 0
	case core.ActionRight:
		return h.right > 0
	}
	return false
}

// Frame samples the input for one tick and ages the held flags.
// A restart press is delivered in exactly one frame.
func (h *HoldState) Frame() core.InputFrame {
	frame := core.NewInputFrame()
	if h.left > 0 {
		frame.Set(core.ActionLeft)
		h.left--
	}
	if h.right > 0 {
		frame.Set(core.ActionRight)
		h.right--
	}
	if h.restart {
		frame.Set(core.ActionRestart)
		h.restart = false
	}
	return frame
}

// Release drops every held flag and any pending restart.
func (h *HoldState) Release() {
	h.left, h.right, h.restart = 0, 0, false
}
