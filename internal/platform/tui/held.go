package tui

import (
	"math"
	"time"

	"github.com/vovakirdan/sky-fight/internal/core"
)

// DefaultHoldDuration is how long a key counts as held after its last
// press or auto-repeat.
const DefaultHoldDuration = 160 * time.Millisecond

// HoldWindow converts a hold duration into whole ticks at the given rate.
// The result is at least one tick.
func HoldWindow(d time.Duration, tickRate int) int {
	if tickRate <= 0 {
		tickRate = 120
	}
	return max(int(math.Round(d.Seconds()*float64(tickRate))), 1)
}

// opposite holds the direction a press cancels.
var opposite = map[core.Action]core.Action{
	core.ActionLeft:  core.ActionRight,
	core.ActionRight: core.ActionLeft,
	core.ActionUp:    core.ActionDown,
	core.ActionDown:  core.ActionUp,
}

// HeldKeys turns a stream of key presses into per-tick held actions.
// Terminals report presses and auto-repeats but never releases, so an action
// stays held for a window of ticks after its last press. Pressing a
// direction releases the opposite one immediately.
type HeldKeys struct {
	window    int
	tick      int
	last      map[core.Action]int // tick of the last press
	autoFire  bool
	focusLock bool
}

// NewHeldKeys creates a tracker that holds each press for window ticks.
func NewHeldKeys(window int) *HeldKeys {
	return &HeldKeys{
		window: max(window, 1),
		last:   make(map[core.Action]int),
	}
}

// Press marks actions as pressed on the current tick.
func (h *HeldKeys) Press(actions ...core.Action) {
	for _, a := range actions {
		if o, ok := opposite[a]; ok {
			delete(h.last, o)
		}
		h.last[a] = h.tick
	}
}

// Frame returns the actions held on the current tick.
func (h *HeldKeys) Frame() core.InputFrame {
	f := core.NewInputFrame()
	for a, at := range h.last {
		if h.tick-at < h.window {
			f.Set(a)
		}
	}
	if h.autoFire {
		f.Set(core.ActionFire)
	}
	if h.focusLock {
		f.Set(core.ActionFocus)
	}
	return f
}

// Advance moves to the next tick and forgets expired presses.
func (h *HeldKeys) Advance() {
	h.tick++
	for a, at := range h.last {
		if h.tick-at >= h.window {
			delete(h.last, a)
		}
	}
}

// Release drops every held press. Toggles are kept.
func (h *HeldKeys) Release() {
	clear(h.last)
}

// ToggleAutoFire flips auto-fire and returns the new setting.
func (h *HeldKeys) ToggleAutoFire() bool {
	h.autoFire = !h.autoFire
	return h.autoFire
}

// ToggleFocusLock flips the precision lock and returns the new setting.
func (h *HeldKeys) ToggleFocusLock() bool {
	h.focusLock = !h.focusLock
	return h.focusLock
}

// AutoFire reports whether auto-fire is on.
func (h *HeldKeys) AutoFire() bool { return h.autoFire }

// FocusLock reports whether the precision lock is on.
func (h *HeldKeys) FocusLock() bool { return h.focusLock }

// Window returns the hold window in ticks.
func (h *HeldKeys) Window() int { return h.window }
