package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/planetwars/internal/core"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"q quits", runeKey("q"), core.ActionQuit, true},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"p pauses", runeKey("p"), core.ActionPause, false},
		{"r restarts", runeKey("r"), core.ActionRestart, false},
		{"esc cancels", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionCancel, false},
		{"letters are not actions", runeKey("c"), core.ActionNone, false},
		{"arrows are not actions", tea.KeyMsg{Type: tea.KeyUp}, core.ActionNone, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			action, quit := km.MapKey(tc.msg)
			if action != tc.action || quit != tc.quit {
				t.Errorf("MapKey() = %v, %v; expected %v, %v", action, quit, tc.action, tc.quit)
			}
		})
	}
}

func TestMapKeyToFrameHotkeys(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		hotkey rune // 0 means no hotkey
	}{
		{"digit", runeKey("7"), '7'},
		{"letter", runeKey("c"), 'c'},
		{"upper case folds", runeKey("C"), 'c'},
		{"punctuation", runeKey("!"), 0},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, 0},
		{"alt modified", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("c"), Alt: true}, 0},
		{"paste", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("c"), Paste: true}, 0},
		{"non ascii", runeKey("ж"), 0},
		{"action keys are not hotkeys", runeKey("p"), 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			frame := core.NewInputFrame()
			if km.MapKeyToFrame(tc.msg, &frame) {
				t.Fatal("unexpected quit")
			}
			if tc.hotkey == 0 {
				if len(frame.Pointers) != 0 {
					t.Errorf("Pointers = %+v, expected none", frame.Pointers)
				}
				return
			}
			if len(frame.Pointers) != 1 || frame.Pointers[0] != (core.Pointer{Key: tc.hotkey}) {
				t.Errorf("Pointers = %+v, expected hotkey %q", frame.Pointers, tc.hotkey)
			}
		})
	}
}

func TestMapKeyToFrameActions(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	if km.MapKeyToFrame(runeKey("p"), &frame) {
		t.Error("p should not quit")
	}
	if !frame.Has(core.ActionPause) {
		t.Error("pause not set")
	}
	if !km.MapKeyToFrame(runeKey("q"), &frame) {
		t.Error("q should quit")
	}
}

func TestMapMouseToFrame(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name  string
		msg   tea.MouseMsg
		click bool
	}{
		{"left press", tea.MouseMsg{X: 12, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, true},
		{"left release", tea.MouseMsg{X: 12, Y: 5, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}, false},
		{"right press", tea.MouseMsg{X: 12, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonRight}, false},
		{"motion", tea.MouseMsg{X: 12, Y: 5, Action: tea.MouseActionMotion, Button: tea.MouseButtonNone}, false},
		{"wheel", tea.MouseMsg{X: 12, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			frame := core.NewInputFrame()
			got := km.MapMouseToFrame(tc.msg, &frame)
			if got != tc.click {
				t.Fatalf("MapMouseToFrame() = %v, expected %v", got, tc.click)
			}
			want := core.Pointer{Cell: core.Point{X: 12, Y: 5}}
			if tc.click && (len(frame.Pointers) != 1 || frame.Pointers[0] != want) {
				t.Errorf("Pointers = %+v", frame.Pointers)
			}
			if !tc.click && len(frame.Pointers) != 0 {
				t.Errorf("unexpected pointers %+v", frame.Pointers)
			}
		})
	}
}
