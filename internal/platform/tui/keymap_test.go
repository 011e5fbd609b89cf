package tui

import (
	"slices"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/sky-fight/internal/core"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapGameKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected GameKey
	}{
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, hold(core.ActionLeft)},
		{"wasd up", runeKey("w"), hold(core.ActionUp)},
		{"shift arrow", tea.KeyMsg{Type: tea.KeyShiftDown}, hold(core.ActionDown, core.ActionFocus)},
		{"uppercase wasd", runeKey("D"), hold(core.ActionRight, core.ActionFocus)},
		{"fire z", runeKey("z"), hold(core.ActionFire)},
		{"fire space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, hold(core.ActionFire)},
		{"focused fire", runeKey("Z"), hold(core.ActionFire, core.ActionFocus)},
		{"auto-fire toggle", runeKey("x"), GameKey{ToggleAutoFire: true}},
		{"precision lock", runeKey("c"), GameKey{ToggleFocusLock: true}},
		{"pause p", runeKey("p"), GameKey{Pause: true}},
		{"pause esc", tea.KeyMsg{Type: tea.KeyEsc}, GameKey{Pause: true}},
		{"quit", tea.KeyMsg{Type: tea.KeyCtrlC}, GameKey{Quit: true}},
		{"unbound", runeKey("y"), GameKey{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := km.MapGameKey(tc.msg)
			if !slices.Equal(got.Actions, tc.expected.Actions) ||
				got.ToggleAutoFire != tc.expected.ToggleAutoFire ||
				got.ToggleFocusLock != tc.expected.ToggleFocusLock ||
				got.Pause != tc.expected.Pause ||
				got.Quit != tc.expected.Quit {
				t.Errorf("MapGameKey(%q) = %+v, expected %+v", tc.msg.String(), got, tc.expected)
			}
		})
	}

	if !km.MapGameKey(runeKey("y")).Empty() {
		t.Error("unbound key should be empty")
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg      tea.KeyMsg
		expected MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey("j"), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{runeKey("z"), MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{runeKey("q"), MenuActionQuit},
		{runeKey("x"), MenuActionNone},
	}

	for _, tc := range tests {
		if got := km.MapKeyToMenuAction(tc.msg); got != tc.expected {
			t.Errorf("MapKeyToMenuAction(%q) = %d, expected %d", tc.msg.String(), got, tc.expected)
		}
	}
}

func TestHoldWindow(t *testing.T) {
	tests := []struct {
		d        time.Duration
		rate     int
		expected int
	}{
		{160 * time.Millisecond, 120, 19},
		{160 * time.Millisecond, 60, 10},
		{0, 120, 1},
		{time.Second, 0, 120},
	}

	for _, tc := range tests {
		if got := HoldWindow(tc.d, tc.rate); got != tc.expected {
			t.Errorf("HoldWindow(%v, %d) = %d, expected %d", tc.d, tc.rate, got, tc.expected)
		}
	}
}

func TestHeldKeysExpire(t *testing.T) {
	h := NewHeldKeys(3)
	h.Press(core.ActionLeft, core.ActionFocus)

	for tick := range 3 {
		f := h.Frame()
		if !f.Has(core.ActionLeft) || !f.Has(core.ActionFocus) {
			t.Fatalf("tick %d: press should still be held", tick)
		}
		h.Advance()
	}
	if f := h.Frame(); f.Has(core.ActionLeft) {
		t.Error("press should expire after the window")
	}
}

func TestHeldKeysRepeatExtends(t *testing.T) {
	h := NewHeldKeys(2)
	h.Press(core.ActionFire)
	h.Advance()
	h.Press(core.ActionFire) // auto-repeat
	h.Advance()

	if !h.Frame().Has(core.ActionFire) {
		t.Error("auto-repeat should keep the action held")
	}
}

func TestHeldKeysOppositeCancels(t *testing.T) {
	h := NewHeldKeys(10)
	h.Press(core.ActionLeft, core.ActionUp)
	h.Advance()
	h.Press(core.ActionRight)

	f := h.Frame()
	if f.Has(core.ActionLeft) {
		t.Error("right should release left")
	}
	if !f.Has(core.ActionRight) || !f.Has(core.ActionUp) {
		t.Errorf("frame = %v", f.Actions)
	}
}

func TestHeldKeysToggles(t *testing.T) {
	h := NewHeldKeys(1)

	if !h.ToggleAutoFire() || !h.ToggleFocusLock() {
		t.Fatal("toggles should turn on")
	}
	for range 5 {
		h.Advance()
	}
	h.Release()

	f := h.Frame()
	if !f.Has(core.ActionFire) || !f.Has(core.ActionFocus) {
		t.Errorf("toggles should survive expiry and release: %v", f.Actions)
	}

	h.ToggleAutoFire()
	if h.Frame().Has(core.ActionFire) {
		t.Error("auto-fire should turn off")
	}
}
