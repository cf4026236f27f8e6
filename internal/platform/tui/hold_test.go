package tui

import (
	"testing"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

func TestHoldStateHoldsForTicks(t *testing.T) {
	h := NewHoldState(3)
	h.Press(core.ActionLeft)

	for i := range 3 {
		frame := h.Frame()
		if !frame.Has(core.ActionLeft) {
			t.Fatalf("tick %d: left should still be held", i)
		}
	}
	if frame := h.Frame(); frame.Has(core.ActionLeft) {
		t.Error("left should be released after the hold expires")
	}
}

func TestHoldStateRepeatRefreshes(t *testing.T) {
	h := NewHoldState(2)
	h.Press(core.ActionRight)
	h.Frame()
	h.Press(core.ActionRight) // auto-repeat
	h.Frame()

	if frame := h.Frame(); !frame.Has(core.ActionRight) {
		t.Error("a repeated press should extend the hold")
	}
}

func TestHoldStateOppositeReleases(t *testing.T) {
	h := NewHoldState(10)
	h.Press(core.ActionLeft)
	h.Press(core.ActionRight)

	frame := h.Frame()
	if frame.Has(core.ActionLeft) {
		t.Error("pressing right should release left")
	}
	if !frame.Has(core.ActionRight) {
		t.Error("right should be held")
	}
	if h.Held(core.ActionLeft) || !h.Held(core.ActionRight) {
		t.Error("Held() should agree with the frame")
	}
}

func TestHoldStateRestartIsOneShot(t *testing.T) {
	h := NewHoldState(5)
	h.Press(core.ActionRestart)

	if frame := h.Frame(); !frame.Has(core.ActionRestart) {
		t.Fatal("restart should be delivered in the next frame")
	}
	if frame := h.Frame(); frame.Has(core.ActionRestart) {
		t.Error("restart should be delivered only once")
	}
}

func TestHoldStateRelease(t *testing.T) {
	h := NewHoldState(5)
	h.Press(core.ActionLeft)
	h.Press(core.ActionRestart)
	h.Release()

	frame := h.Frame()
	if frame.Has(core.ActionLeft) || frame.Has(core.ActionRestart) {
		t.Error("Release should drop all input")
	}
}

func TestHoldStateDefaultTicks(t *testing.T) {
	h := NewHoldState(0)
	h.Press(core.ActionRight)

	held := 0
	for range DefaultHoldTicks + 5 {
		frame := h.Frame()
		if frame.Has(core.ActionRight) {
			held++
		}
	}
	if held != DefaultHoldTicks {
		t.Errorf("held for %d ticks, expected %d", held, DefaultHoldTicks)
	}
}
