package shaft

import (
	"math/rand"

	"github.com/vovakirdan/tui-shaft/internal/config"
	"github.com/vovakirdan/tui-shaft/internal/core"
)

const (
	testCanvasW = 800.0
	testCanvasH = 550.0
)

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	}
}

// lookupMap is a PlatformLookup over a fixed set of platforms.
type lookupMap map[PlatformID]*Platform

func (m lookupMap) Lookup(id PlatformID) (*Platform, bool) {
	p, ok := m[id]
	return p, ok
}

func newTestPlayer() *Player {
	return NewPlayer(config.DefaultShaftConfig(), testCanvasW, 30)
}

func newTestManager(seed int64) *PlatformManager {
	cfg := config.DefaultShaftConfig()
	return NewPlatformManager(rand.New(rand.NewSource(seed)), cfg.Platforms, testCanvasW, testCanvasH)
}

func mkPlatform(id PlatformID, x, y float64, typ PlatformType) *Platform {
	return &Platform{ID: id, X: x, Y: y, Width: 80, Height: 15, Type: typ, Direction: 1, Speed: 2}
}

func started(seed int64) *Game {
	g := New(config.DefaultShaftConfig())
	g.Reset(testRuntime(seed))
	in := core.NewInputFrame()
	in.Set(core.ActionConfirm)
	g.Step(in)
	return g
}
