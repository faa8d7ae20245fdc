package shaft

import (
	"fmt"

	"github.com/vovakirdan/tui-shaft/internal/core"
)

// UI receives session events from the game.
type UI interface {
	UpdateGameStats(depth float64, lives int)
	ShowGameOver(finalDepth float64)
	HideGameOver()
	ShowStartButton()
}

// lowLives turns the lives counter red.
const lowLives = 20

// HUD is the default UI. It keeps the last values pushed to it and draws
// the stats row, the control bar and whichever panel is showing.
type HUD struct {
	depth      float64
	lives      int
	finalDepth float64

	startVisible    bool
	gameOverVisible bool
}

// NewHUD creates an empty HUD.
func NewHUD() *HUD {
	return &HUD{}
}

func (h *HUD) UpdateGameStats(depth float64, lives int) {
	h.depth = depth
	h.lives = lives
}

func (h *HUD) ShowGameOver(finalDepth float64) {
	h.finalDepth = finalDepth
	h.gameOverVisible = true
}

// HideGameOver hides the game-over panel and the start panel with it.
func (h *HUD) HideGameOver() {
	h.gameOverVisible = false
	h.startVisible = false
}

func (h *HUD) ShowStartButton() {
	h.startVisible = true
}

// Draw renders the HUD on top of the world.
func (h *HUD) Draw(dst *core.Screen, buttons []core.VirtualButton, paused bool) {
	h.drawStats(dst)
	h.drawControlBar(dst, buttons)

	switch {
	case h.gameOverVisible:
		drawPanel(dst, "GAME OVER", fmt.Sprintf("Depth: %dm  |  R: restart  B: menu", int(h.finalDepth)), core.ColorRed)
	case h.startVisible:
		drawPanel(dst, "N S - S H A F T", "Enter: start  |  ←/→ move  Space: jump", core.ColorBrightYellow)
	case paused:
		drawPanel(dst, "PAUSED", "Press P to resume", core.ColorBrightWhite)
	}
}

func (h *HUD) drawStats(dst *core.Screen) {
	dst.DrawHLine(0, 0, dst.Width(), ' ', core.ColorDefault)
	dst.DrawTextColor(1, 0, fmt.Sprintf("Depth: %dm", int(h.depth)), core.ColorBrightWhite)

	lives := fmt.Sprintf("Lives: %d", h.lives)
	color := core.ColorBrightGreen
	if h.lives < lowLives {
		color = core.ColorRed
	}
	dst.DrawTextColor(dst.Width()-len(lives)-1, 0, lives, color)
}

func (h *HUD) drawControlBar(dst *core.Screen, buttons []core.VirtualButton) {
	y := dst.Height() - 1
	dst.DrawHLine(0, y, dst.Width(), ' ', core.ColorDefault)
	dst.DrawTextCentered(y, "Space: jump  P: pause  R: restart  Q: quit", core.ColorGray)

	for _, b := range buttons {
		dst.DrawTextColor(b.Area.X, b.Area.Y, b.Label, core.ColorBrightCyan)
	}
}

// drawPanel draws a bordered message box in the center of the screen.
func drawPanel(dst *core.Screen, title, subtitle string, c core.Color) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH), c)

	dst.DrawTextCentered(boxY+1, title, c)
	dst.DrawTextCentered(boxY+3, subtitle, core.ColorDefault)
}
