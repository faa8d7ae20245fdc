// Package shaft implements a downward-scrolling platform survival game.
// The player drops through an endless shaft, landing on platforms that
// scroll up toward a ceiling of spikes. Lives are lost to spiked platforms
// and the ceiling; falling off the bottom of the screen ends the run.
package shaft

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-shaft/internal/config"
	"github.com/vovakirdan/tui-shaft/internal/core"
	"github.com/vovakirdan/tui-shaft/internal/registry"
)

// Screen rows reserved outside the play area.
const (
	hudRows = 1 // Stats row at the top
	barRows = 1 // Control bar at the bottom
)

// Virtual button labels on the control bar.
const (
	leftButtonLabel  = "[◀ LEFT ]"
	rightButtonLabel = "[ RIGHT ▶]"
)

// Game is one play session: it owns every subsystem and sequences them
// once per tick.
type Game struct {
	cfg     config.ShaftConfig
	runtime core.RuntimeConfig
	rng     *rand.Rand

	state      *GameState
	player     *Player
	platforms  *PlatformManager
	physics    Physics
	difficulty *config.DifficultyManager
	renderer   *Renderer
	hud        *HUD
	ui         UI

	canvasWidth  float64
	canvasHeight float64
	spawnDepth   float64

	paused     bool
	gameOver   bool
	finalDepth float64
	tickCount  uint64
	lastHit    CollisionKind
}

// New creates a game with the given tuning. Call Reset before use.
func New(cfg config.ShaftConfig) *Game {
	return &Game{cfg: cfg}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "shaft"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "NS-Shaft"
}

// Config returns the tuning the game was built with.
func (g *Game) Config() config.ShaftConfig {
	return g.cfg
}

// Controls returns the configured key aliases.
func (g *Game) Controls() config.ControlsConfig {
	return g.cfg.Controls
}

// Reset builds a fresh idle session with the start panel showing.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if runtime.TickRate <= 0 {
		runtime.TickRate = 60
	}
	g.runtime = runtime
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.canvasWidth, g.canvasHeight = g.canvasSize(runtime.ScreenW, runtime.ScreenH)

	g.state = NewGameState(g.cfg.Gameplay.Lives, g.cfg.Difficulty.DepthPerLevel)
	g.physics = NewPhysics(g.cfg)
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	g.platforms = NewPlatformManager(g.rng, g.cfg.Platforms, g.canvasWidth, g.canvasHeight)
	g.renderer = NewRenderer(g.cfg)
	g.renderer.Resize(g.canvasWidth)
	g.hud = NewHUD()
	g.ui = g.hud

	g.paused = false
	g.gameOver = false
	g.finalDepth = 0
	g.tickCount = 0

	g.reset()
	g.ui.ShowStartButton()
}

// canvasSize converts the terminal size into world units for the play area.
func (g *Game) canvasSize(screenW, screenH int) (float64, float64) {
	rows := core.Max(screenH-hudRows-barRows, 1)
	cols := core.Max(screenW, 1)
	return float64(cols) * g.cfg.World.CellWidth, float64(rows) * g.cfg.World.CellHeight
}

// reset rebuilds the world for a new run.
func (g *Game) reset() {
	g.state.Reset()
	g.player = NewPlayer(g.cfg, g.canvasWidth, g.runtime.TicksFor(g.cfg.Player.DamageFlashMS))
	g.platforms.Clear()
	g.platforms.CreateInitialPlatforms(g.player.Y)
	g.spawnDepth = 0
	g.lastHit = NoCollision
	g.ui.UpdateGameStats(g.state.Depth, g.state.Lives)
}

// StartGame begins a run. It does nothing while a run is in progress.
func (g *Game) StartGame() {
	if g.state.Running {
		return
	}
	g.state.Start()
	g.paused = false
	g.gameOver = false
	g.ui.HideGameOver()
	g.reset()
}

// RestartGame abandons the current run and starts a new one.
func (g *Game) RestartGame() {
	g.state.Stop()
	g.StartGame()
}

// Step handles session controls and advances the simulation by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	switch {
	case in.Has(core.ActionRestart):
		g.RestartGame()
	case in.Has(core.ActionConfirm) && !g.state.Running:
		g.StartGame()
	}

	if !g.state.Running {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionJump) {
		g.player.Jump()
	}

	g.update(moveFrom(in))
	return core.StepResult{State: g.State()}
}

// moveFrom resolves held movement; left wins when both are held.
func moveFrom(in core.InputFrame) MoveDir {
	if in.IsHeld(core.ActionLeft) {
		return MoveLeft
	}
	if in.IsHeld(core.ActionRight) {
		return MoveRight
	}
	return MoveNone
}

// update runs one simulation tick in fixed order.
func (g *Game) update(move MoveDir) {
	g.tickCount++
	g.player.TickDamage()

	g.player.Update(move, g.platforms)
	g.player.ApplyGravity()

	var removed []PlatformID
	g.spawnDepth, removed = g.platforms.Update(g.state.Depth, g.spawnDepth)
	g.player.Release(removed)

	hit := g.physics.CheckCollisions(g.player, g.platforms.Platforms())
	g.lastHit = hit.Kind
	if hit.Kind == SpikeHit && g.damage() {
		return
	}

	if g.physics.CheckCeilingSpikeCollision(g.player, g.state.Depth) && g.damage() {
		return
	}

	g.state.UpdateDepth(g.difficulty.ScrollSpeed(g.cfg.World.ScrollSpeed, g.state.Difficulty))
	g.ui.UpdateGameStats(g.state.Depth, g.state.Lives)

	if g.physics.CheckGameBounds(g.player, g.state.Depth, g.canvasHeight) {
		g.endGame()
	}
}

// damage costs lives and flashes the player. Returns true if the run ended.
func (g *Game) damage() bool {
	over := g.state.LoseLife(g.cfg.Gameplay.SpikeDamage)
	g.player.TakeDamage()
	if over {
		g.endGame()
	}
	return over
}

func (g *Game) endGame() {
	g.state.Stop()
	g.gameOver = true
	g.finalDepth = g.state.Depth
	g.ui.UpdateGameStats(g.state.Depth, g.state.Lives)
	g.ui.ShowGameOver(g.state.Depth)
}

// Resize adapts the session to a new terminal size. An idle session is
// rebuilt so its layout matches the new canvas.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
	g.canvasWidth, g.canvasHeight = g.canvasSize(w, h)

	g.renderer.Resize(g.canvasWidth)
	g.platforms.UpdateCanvasDimensions(g.canvasWidth, g.canvasHeight)
	g.player.SetCanvasWidth(g.canvasWidth)

	if !g.state.Running {
		g.reset()
	}
}

// VirtualButtons returns the clickable movement buttons on the control bar.
func (g *Game) VirtualButtons() []core.VirtualButton {
	y := g.runtime.ScreenH - 1
	rightW := len([]rune(rightButtonLabel))
	return []core.VirtualButton{
		{
			Key:   firstKey(g.cfg.Controls.Left, "left"),
			Label: leftButtonLabel,
			Area:  core.NewRect(0, y, len([]rune(leftButtonLabel)), 1),
		},
		{
			Key:   firstKey(g.cfg.Controls.Right, "right"),
			Label: rightButtonLabel,
			Area:  core.NewRect(g.runtime.ScreenW-rightW, y, rightW, 1),
		},
	}
}

func firstKey(aliases []string, fallback string) string {
	if len(aliases) == 0 {
		return fallback
	}
	return aliases[0]
}

// Render draws the world and the HUD.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	vp := Viewport{Top: hudRows, Rows: dst.Height() - hudRows - barRows}
	g.renderer.Render(dst, vp, g.state.Depth, g.platforms.Platforms(), g.player)
	g.hud.Draw(dst, g.VirtualButtons(), g.paused)
}

// State returns the platform-facing summary. Score is whole depth.
func (g *Game) State() core.GameState {
	depth := g.state.Depth
	if g.gameOver {
		depth = g.finalDepth
	}
	return core.GameState{
		Score:    int(math.Floor(depth)),
		Lives:    g.state.Lives,
		Running:  g.state.Running,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// NewFromOptions loads configuration and applies the difficulty preset.
func NewFromOptions(opts registry.Options) (*Game, error) {
	preset, ok := config.ParsePreset(opts.Difficulty)
	if !ok {
		return nil, fmt.Errorf("shaft: unknown difficulty %q", opts.Difficulty)
	}

	cfg, err := config.LoadShaft(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	config.ApplyShaftPreset(&cfg, preset)
	return New(cfg), nil
}

// Register the game with the registry
func init() {
	registry.Register(registry.GameInfo{ID: "shaft", Title: "NS-Shaft"}, func(opts registry.Options) (registry.Game, error) {
		g, err := NewFromOptions(opts)
		if err != nil {
			return nil, err
		}
		return g, nil
	})
}
