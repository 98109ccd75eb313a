package xonix

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StateGameOver    GameStateType = "game_over"
	StateWin         GameStateType = "win"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick     uint64
	Score    int
	Lives    int
	Percent  float64
	PlayerX  int
	PlayerY  int
	Phase    Phase
	TrailLen int
	Agents   int
	GridHash uint64
	State    GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.won:
		state = StateWin
	case g.gameOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	snap := Snapshot{
		Tick:  g.tick,
		Lives: g.lives,
		State: state,
	}

	if g.engine != nil {
		snap.Score = int(g.engine.Percent())
		snap.Percent = g.engine.Percent()
		snap.PlayerX = g.engine.Player().X
		snap.PlayerY = g.engine.Player().Y
		snap.Phase = g.engine.Phase()
		snap.TrailLen = len(g.engine.TrailCells())
		snap.Agents = len(g.engine.Agents())
		snap.GridHash = g.engine.Grid().Hash()
	}

	return snap
}
