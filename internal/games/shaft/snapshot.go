package shaft

// PlatformSnapshot is a copy of one platform's observable state.
type PlatformSnapshot struct {
	ID        PlatformID
	X, Y      float64
	Type      PlatformType
	Breaking  bool
	BreakTime int
}

// Snapshot is a value copy of the session, used to compare runs.
type Snapshot struct {
	Tick       uint64
	Depth      float64
	Lives      int
	Difficulty float64
	Running    bool
	GameOver   bool
	Paused     bool
	SpawnDepth float64
	LastHit    CollisionKind

	PlayerX, PlayerY float64
	VelocityY        float64
	OnPlatform       bool
	CurrentPlatform  PlatformID

	Platforms []PlatformSnapshot
}

// Snapshot captures the current session state.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:            g.tickCount,
		Depth:           g.state.Depth,
		Lives:           g.state.Lives,
		Difficulty:      g.state.Difficulty,
		Running:         g.state.Running,
		GameOver:        g.gameOver,
		Paused:          g.paused,
		SpawnDepth:      g.spawnDepth,
		LastHit:         g.lastHit,
		PlayerX:         g.player.X,
		PlayerY:         g.player.Y,
		VelocityY:       g.player.VelocityY,
		OnPlatform:      g.player.IsOnPlatform,
		CurrentPlatform: g.player.CurrentPlatform,
	}

	s.Platforms = make([]PlatformSnapshot, 0, g.platforms.Len())
	for _, p := range g.platforms.Platforms() {
		s.Platforms = append(s.Platforms, PlatformSnapshot{
			ID:        p.ID,
			X:         p.X,
			Y:         p.Y,
			Type:      p.Type,
			Breaking:  p.Breaking,
			BreakTime: p.BreakTime,
		})
	}
	return s
}
