package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-shaft/internal/config"
	"github.com/vovakirdan/tui-shaft/internal/core"
)

// keyMsg builds the key message a terminal would send for s.
func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEscape}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestKeyMapper() *KeyMapper {
	return NewKeyMapper(config.DefaultShaftConfig().Controls, 9)
}

func TestMapKey(t *testing.T) {
	km := newTestKeyMapper()

	tests := []struct {
		key    string
		action core.Action
		quit   bool
	}{
		{"left", core.ActionLeft, false},
		{"a", core.ActionLeft, false},
		{"A", core.ActionLeft, false},
		{"right", core.ActionRight, false},
		{"d", core.ActionRight, false},
		{" ", core.ActionJump, false},
		{"up", core.ActionJump, false},
		{"w", core.ActionJump, false},
		{"enter", core.ActionConfirm, false},
		{"r", core.ActionRestart, false},
		{"p", core.ActionPause, false},
		{"esc", core.ActionPause, false},
		{"b", core.ActionBack, false},
		{"q", core.ActionQuit, true},
		{"ctrl+c", core.ActionQuit, true},
		{"x", core.ActionNone, false},
	}

	for _, tt := range tests {
		action, quit := km.MapKey(keyMsg(tt.key))
		if action != tt.action || quit != tt.quit {
			t.Errorf("MapKey(%q) = (%v, %v), want (%v, %v)", tt.key, action, quit, tt.action, tt.quit)
		}
	}
}

func TestApplyRoutesMovementToKeyState(t *testing.T) {
	km := newTestKeyMapper()
	keys := core.NewKeyState()
	frame := core.NewInputFrame()

	km.Apply(keyMsg("a"), keys, &frame)
	if !keys.IsPressed("a") {
		t.Error("movement key should be tapped into key state")
	}
	if frame.Has(core.ActionLeft) {
		t.Error("movement should not be an edge action")
	}

	km.Apply(keyMsg(" "), keys, &frame)
	if !frame.Has(core.ActionJump) {
		t.Error("jump should be an edge action")
	}

	km.Apply(keyMsg("b"), keys, &frame)
	if frame.Has(core.ActionBack) {
		t.Error("back is handled by the model, not the game")
	}
}

func TestBuildFrameMovement(t *testing.T) {
	tests := []struct {
		name      string
		taps      []string
		wantLeft  bool
		wantRight bool
	}{
		{"none", nil, false, false},
		{"left arrow", []string{"left"}, true, false},
		{"right alias", []string{"D"}, false, true},
		{"both held", []string{"right", "a"}, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			km := newTestKeyMapper()
			keys := core.NewKeyState()
			frame := core.NewInputFrame()
			for _, k := range tt.taps {
				km.Apply(keyMsg(k), keys, &frame)
			}

			km.BuildFrame(keys, &frame)
			if frame.IsHeld(core.ActionLeft) != tt.wantLeft || frame.IsHeld(core.ActionRight) != tt.wantRight {
				t.Errorf("held left=%v right=%v, want %v %v",
					frame.IsHeld(core.ActionLeft), frame.IsHeld(core.ActionRight), tt.wantLeft, tt.wantRight)
			}
		})
	}
}

func TestTapExpiresAfterHoldTicks(t *testing.T) {
	km := newTestKeyMapper()
	keys := core.NewKeyState()
	frame := core.NewInputFrame()

	km.Apply(keyMsg("left"), keys, &frame)
	for i := 0; i < 8; i++ {
		keys.Tick()
	}
	if !keys.IsPressed("left") {
		t.Fatal("tap expired early")
	}
	keys.Tick()
	if keys.IsPressed("left") {
		t.Error("tap should expire after 9 ticks")
	}
}

func TestMenuKeyMap(t *testing.T) {
	k := DefaultMenuKeyMap()

	tests := []struct {
		key  string
		want MenuAction
	}{
		{"up", MenuActionUp},
		{"k", MenuActionUp},
		{"down", MenuActionDown},
		{"j", MenuActionDown},
		{"enter", MenuActionSelect},
		{"tab", MenuActionScoreboard},
		{"q", MenuActionQuit},
		{"esc", MenuActionQuit},
		{"x", MenuActionNone},
	}

	for _, tt := range tests {
		if got := k.MapKeyToMenuAction(keyMsg(tt.key)); got != tt.want {
			t.Errorf("%q: got %v, want %v", tt.key, got, tt.want)
		}
	}
}
