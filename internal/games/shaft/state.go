package shaft

// GameState tracks the session's scalar progress.
type GameState struct {
	Depth      float64
	Lives      int
	Difficulty float64
	Running    bool

	startLives    int
	depthPerLevel float64
}

// NewGameState creates an idle state with the given life budget.
func NewGameState(lives int, depthPerLevel float64) *GameState {
	if depthPerLevel <= 0 {
		depthPerLevel = 500
	}
	s := &GameState{startLives: lives, depthPerLevel: depthPerLevel}
	s.Reset()
	return s
}

// Start marks the session running.
func (s *GameState) Start() { s.Running = true }

// Stop marks the session stopped.
func (s *GameState) Stop() { s.Running = false }

// Reset restores depth, lives and difficulty. Running is left alone.
func (s *GameState) Reset() {
	s.Depth = 0
	s.Lives = s.startLives
	s.Difficulty = 1
}

// UpdateDepth advances depth and recomputes difficulty from it.
func (s *GameState) UpdateDepth(speed float64) {
	s.Depth += speed
	s.Difficulty = 1 + s.Depth/s.depthPerLevel
}

// LoseLife removes n lives and reports whether the session is over.
func (s *GameState) LoseLife(n int) bool {
	s.Lives -= n
	return s.Lives <= 0
}

// IsGameOver reports whether lives are exhausted.
func (s *GameState) IsGameOver() bool {
	return s.Lives <= 0
}
