package xonix

import (
	"math/rand"

	"github.com/guyguy2/go-arcade/internal/core"
)

// Phase is the engine's per-life state.
type Phase uint8

const (
	PhaseIdle       Phase = iota // player on claimed ground, no trail
	PhaseDrawing                 // trail in progress through open space
	PhaseEliminated              // life lost; caller respawns or ends the game
	PhaseWon                     // territory target reached, terminal
)

// String returns a short name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseDrawing:
		return "drawing"
	case PhaseEliminated:
		return "eliminated"
	case PhaseWon:
		return "won"
	default:
		return "unknown"
	}
}

// Direction is a single-tick player movement intent.
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// delta returns the unit step for the direction.
func (d Direction) delta() Point {
	switch d {
	case DirUp:
		return Point{Y: -1}
	case DirDown:
		return Point{Y: 1}
	case DirLeft:
		return Point{X: -1}
	case DirRight:
		return Point{X: 1}
	default:
		return Point{}
	}
}

// String returns a short name for the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "none"
	}
}

// Player-facing elimination messages.
const (
	reasonOwnTrail   = "Hit your own trail!"
	reasonAgentTrail = "Enemy hit your trail!"
	reasonAgentYou   = "Enemy hit you!"
)

// EngineConfig sizes a new engine.
type EngineConfig struct {
	Width         int
	Height        int
	AgentCount    int
	TargetPercent float64
	Seed          int64
}

// TickReport carries the signals of one engine tick back to the caller.
type TickReport struct {
	LifeLost bool   // trail discarded, life over
	Reason   string // player-facing cause when LifeLost
	Closed   bool   // a trail closed this tick
	Claimed  int    // cells promoted to claimed by that closure
	Won      bool   // territory target reached this tick
}

// Engine orchestrates one game of territory claiming. It owns the field,
// the trail and the agents, and is the only writer of cell states; each
// tick runs strictly in sequence (agents advance, then the player intent)
// with no internal concurrency.
type Engine struct {
	grid   *Grid
	trail  *Trail
	agents *AgentSet
	player Point
	start  Point
	phase  Phase
	target float64
	// claimed counts interior cells promoted since the start, updated
	// incrementally from closure resolutions. Never decreases.
	claimed int
	rng     *rand.Rand
}

// NewEngine creates an engine with a fresh field, the player on the
// top-border start cell and agents scattered over the central open area.
func NewEngine(cfg EngineConfig) *Engine {
	w := core.Max(cfg.Width, 4)
	h := core.Max(cfg.Height, 4)
	target := cfg.TargetPercent
	if target <= 0 {
		target = 75
	}

	e := &Engine{
		grid:   NewGrid(w, h),
		trail:  NewTrail(),
		agents: NewAgentSet(),
		start:  Point{X: w / 2, Y: 0},
		phase:  PhaseIdle,
		target: target,
		rng:    rand.New(rand.NewSource(cfg.Seed)),
	}
	e.player = e.start
	e.spawnAgents(cfg.AgentCount)
	return e
}

// spawnAgents places n agents on open cells in the central quarter box
// with random diagonal vectors.
func (e *Engine) spawnAgents(n int) {
	w, h := e.grid.Width(), e.grid.Height()
	for i := 0; i < n; i++ {
		for range 100 {
			p := Point{
				X: w/4 + e.rng.Intn(core.Max(w/2, 1)),
				Y: h/4 + e.rng.Intn(core.Max(h/2, 1)),
			}
			if e.grid.At(p) != CellOpen {
				continue
			}
			vel := Point{
				X: e.rng.Intn(2)*2 - 1,
				Y: e.rng.Intn(2)*2 - 1,
			}
			e.agents.Spawn(p, vel)
			break
		}
	}
}

// Tick runs one full engine tick: agents advance first, then the player
// intent is applied. A life lost to an agent ends the tick before the
// player moves.
func (e *Engine) Tick(d Direction) TickReport {
	if rep := e.AdvanceAgents(); rep.LifeLost {
		return rep
	}
	return e.Move(d)
}

// AdvanceAgents moves every agent one step and applies the collision
// rules: while the player is drawing, an agent touching the trail or the
// player ends the life.
func (e *Engine) AdvanceAgents() TickReport {
	var rep TickReport
	if e.phase == PhaseWon || e.phase == PhaseEliminated {
		return rep
	}

	hits := e.agents.AdvanceAll(e.grid)
	if e.phase != PhaseDrawing {
		return rep
	}
	if len(hits) > 0 {
		e.eliminate(&rep, reasonAgentTrail)
		return rep
	}
	if e.agents.At(e.player) {
		e.eliminate(&rep, reasonAgentYou)
	}
	return rep
}

// Move applies a single player movement intent. Intents directed off the
// field are rejected without effect.
func (e *Engine) Move(d Direction) TickReport {
	var rep TickReport
	if d == DirNone || e.phase == PhaseWon || e.phase == PhaseEliminated {
		return rep
	}

	next := e.player.Add(d.delta())
	if !e.grid.InBounds(next) {
		return rep
	}

	state := e.grid.At(next)
	switch {
	case e.phase == PhaseIdle && state == CellOpen:
		// Leaving claimed ground starts a drawing attempt.
		if e.agents.At(next) {
			e.eliminate(&rep, reasonAgentYou)
			return rep
		}
		e.trail.Begin(e.player, next, e.grid)
		e.player = next
		e.phase = PhaseDrawing

	case e.phase == PhaseDrawing && state == CellClaimed:
		e.closeTrail(next, &rep)

	case e.phase == PhaseDrawing:
		// Open or trail cell: extend, retrace, or self-intersect.
		if state == CellOpen && e.agents.At(next) {
			e.eliminate(&rep, reasonAgentYou)
			return rep
		}
		if err := e.trail.Extend(next, e.grid); err != nil {
			e.eliminate(&rep, reasonOwnTrail)
			return rep
		}
		e.player = next
		if !e.trail.Active() {
			// Retraced all the way back to the anchor.
			e.phase = PhaseIdle
		}

	default:
		// Claimed to claimed: plain movement on safe ground.
		e.player = next
	}
	return rep
}

// closeTrail finishes the drawing attempt at the claimed cell next and
// resolves the enclosed regions. The win check runs in the same pass so
// a full claim is never observable as a non-won intermediate state.
func (e *Engine) closeTrail(next Point, rep *TickReport) {
	if e.trail.Close(next) == nil {
		return
	}

	res := ResolveClosure(e.grid, e.agents.Positions())
	e.claimed += res.Claimed()
	e.player = next
	e.phase = PhaseIdle
	rep.Closed = true
	rep.Claimed = res.Claimed()

	if e.Percent() >= e.target {
		e.phase = PhaseWon
		rep.Won = true
	}
}

// eliminate ends the current life: the trail is discarded, its cells
// revert to open and no partial promotion ever lands on the field.
func (e *Engine) eliminate(rep *TickReport, reason string) {
	e.trail.Discard(e.grid)
	e.phase = PhaseEliminated
	rep.LifeLost = true
	rep.Reason = reason
}

// RespawnLife starts a new life after an elimination: the player returns
// to the start cell on the border, territory and agents keep their state.
func (e *Engine) RespawnLife() {
	if e.phase != PhaseEliminated {
		return
	}
	e.player = e.start
	e.phase = PhaseIdle
}

// Percent returns the claimed share of the interior in percent.
func (e *Engine) Percent() float64 {
	interior := e.grid.InteriorSize()
	if interior <= 0 {
		return 0
	}
	return float64(e.claimed) / float64(interior) * 100
}

// Target returns the win threshold in percent.
func (e *Engine) Target() float64 {
	return e.target
}

// Phase returns the current per-life state.
func (e *Engine) Phase() Phase {
	return e.phase
}

// Player returns the player's cell.
func (e *Engine) Player() Point {
	return e.player
}

// Grid returns the field for rendering and inspection.
func (e *Engine) Grid() *Grid {
	return e.grid
}

// Agents returns a copy of the live agents.
func (e *Engine) Agents() []Agent {
	return e.agents.Agents()
}

// TrailCells returns a copy of the in-progress trail cells.
func (e *Engine) TrailCells() []Point {
	return e.trail.Cells()
}
