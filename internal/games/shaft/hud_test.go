package shaft

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-shaft/internal/core"
)

func TestHUDPanels(t *testing.T) {
	tests := []struct {
		name   string
		setup  func(h *HUD)
		paused bool
		want   string
	}{
		{"start", func(h *HUD) { h.ShowStartButton() }, false, "Enter: start"},
		{"game over", func(h *HUD) { h.ShowGameOver(123.9) }, false, "Depth: 123m"},
		{"paused", func(h *HUD) {}, true, "PAUSED"},
		{"game over beats pause", func(h *HUD) { h.ShowGameOver(5) }, true, "GAME OVER"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHUD()
			tt.setup(h)
			screen := core.NewScreen(80, 24)
			h.Draw(screen, nil, tt.paused)
			if !strings.Contains(screen.String(), tt.want) {
				t.Errorf("expected %q on screen", tt.want)
			}
		})
	}
}

func TestHUDHideGameOverHidesStart(t *testing.T) {
	h := NewHUD()
	h.ShowStartButton()
	h.ShowGameOver(10)
	h.HideGameOver()

	if h.startVisible || h.gameOverVisible {
		t.Error("HideGameOver should hide both panels")
	}
}

func TestHUDLowLivesColor(t *testing.T) {
	h := NewHUD()
	screen := core.NewScreen(80, 24)

	h.UpdateGameStats(42, 19)
	h.Draw(screen, nil, false)
	if c := screen.GetCell(79-len("Lives: 19"), 0).Color; c != core.ColorRed {
		t.Errorf("low lives color = %v, want red", c)
	}

	h.UpdateGameStats(42, 20)
	h.Draw(screen, nil, false)
	if c := screen.GetCell(79-len("Lives: 20"), 0).Color; c != core.ColorBrightGreen {
		t.Errorf("lives color = %v, want bright green", c)
	}
}

func TestPlatformColors(t *testing.T) {
	b := mkPlatform(1, 0, 0, PlatformBreaking)
	if b.Color() != core.ColorYellow {
		t.Errorf("idle breaking color = %v", b.Color())
	}
	b.Breaking = true
	b.BreakTime = 10
	if b.Color() != core.ColorSalmon {
		t.Errorf("flash frame color = %v", b.Color())
	}
	b.BreakTime = 11
	if b.Color() != core.ColorYellow {
		t.Errorf("non-flash frame color = %v", b.Color())
	}
}
