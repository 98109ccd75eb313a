package paratrooper

// GameStateType identifies the current mode of the game.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the observable state for determinism checks.
type Snapshot struct {
	Tick        uint64
	Score       int
	Wave        int
	Spawned     int
	TurretAngle float64
	Cooldown    int
	Helis       int
	Troopers    int
	Bullets     int
	State       GameStateType
}

// Snapshot returns the current snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.gameOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	return Snapshot{
		Tick:        g.tick,
		Score:       g.score,
		Wave:        g.wave,
		Spawned:     g.spawned,
		TurretAngle: g.angle,
		Cooldown:    g.cooldown,
		Helis:       len(g.helis),
		Troopers:    len(g.troopers),
		Bullets:     len(g.bullets),
		State:       state,
	}
}
