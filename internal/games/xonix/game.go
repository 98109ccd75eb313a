package xonix

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/guyguy2/go-arcade/internal/config"
	"github.com/guyguy2/go-arcade/internal/core"
	"github.com/guyguy2/go-arcade/internal/registry"
)

// Visual characters for rendering
const (
	ClaimedGlyph = '▒'
	TrailGlyph   = '·'
	PlayerGlyph  = '█'
	AgentGlyph   = '●'
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	switch preset {
	case "easy":
		difficultyPreset = config.DifficultyEasy
	case "normal":
		difficultyPreset = config.DifficultyNormal
	case "hard":
		difficultyPreset = config.DifficultyHard
	case "fixed":
		difficultyPreset = config.DifficultyFixed
	default:
		difficultyPreset = ""
	}
}

// Game implements the Xonix territory game around the engine.
type Game struct {
	engine *Engine
	rng    *rand.Rand
	tick   uint64

	// Pacing
	playerTicker int
	agentTicker  int
	pendingDir   Direction // latched intent, consumed on the next move tick

	// Run state
	lives    int
	message  string
	gameOver bool
	won      bool
	paused   bool
	tooSmall bool

	// Configuration
	runtime    core.RuntimeConfig
	cfg        config.XonixConfig
	difficulty *config.DifficultyManager

	// Layout (computed from screen size)
	fieldW    int
	fieldH    int
	offsetX   int
	offsetY   int
	hudHeight int
}

// New creates a new Xonix game instance.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("xonix", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "xonix"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Xonix"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	// Load game config
	cfg, err := config.LoadXonix(configPath)
	if err != nil {
		cfg = config.DefaultXonixConfig()
	}

	// Apply difficulty preset if set
	if difficultyPreset != "" {
		config.ApplyXonixPreset(&cfg, difficultyPreset)
	}

	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.tick = 0
	g.playerTicker = 0
	g.agentTicker = 0
	g.pendingDir = DirNone
	g.message = ""
	g.gameOver = false
	g.won = false
	g.paused = false

	g.lives = cfg.Rules.Lives
	if g.lives <= 0 {
		g.lives = 3
	}

	g.calculateLayout(cfg)
	if g.tooSmall {
		return
	}

	g.engine = NewEngine(EngineConfig{
		Width:         g.fieldW,
		Height:        g.fieldH,
		AgentCount:    cfg.Agents.Count,
		TargetPercent: cfg.Rules.TargetPercent,
		Seed:          g.rng.Int63(),
	})
}

// calculateLayout fits the field onto the screen under the HUD.
func (g *Game) calculateLayout(cfg config.XonixConfig) {
	g.hudHeight = 2 // Status line plus separator

	g.fieldW = core.Min(cfg.Field.Width, g.runtime.ScreenW-2)
	g.fieldH = core.Min(cfg.Field.Height, g.runtime.ScreenH-g.hudHeight-1)

	if g.fieldW < 12 || g.fieldH < 8 {
		g.tooSmall = true
		return
	}
	g.tooSmall = false

	g.offsetX = (g.runtime.ScreenW - g.fieldW) / 2
	g.offsetY = g.hudHeight
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	// Handle restart
	if input.Has(core.ActionRestart) && (g.gameOver || g.won) {
		g.Reset(core.RuntimeConfig{
			Seed:     g.rng.Int63(),
			ScreenW:  g.runtime.ScreenW,
			ScreenH:  g.runtime.ScreenH,
			TickRate: g.runtime.TickRate,
		})
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if input.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.gameOver || g.won || g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	// Latch the most recent direction intent
	g.processInput(input)

	// Agents advance on their own cadence, faster as territory grows
	g.agentTicker++
	if g.agentTicker >= g.agentInterval() {
		g.agentTicker = 0
		g.apply(g.engine.AdvanceAgents())
	}
	if g.gameOver || g.won {
		return core.StepResult{State: g.State()}
	}

	// Player moves on the configured cadence
	g.playerTicker++
	if g.playerTicker >= g.cfg.Rules.MoveEveryTicks {
		g.playerTicker = 0
		if g.pendingDir != DirNone {
			g.apply(g.engine.Move(g.pendingDir))
			g.pendingDir = DirNone
		}
	}

	return core.StepResult{State: g.State()}
}

// processInput latches a direction intent for the next move tick.
func (g *Game) processInput(input core.InputFrame) {
	switch {
	case input.Has(core.ActionUp):
		g.pendingDir = DirUp
	case input.Has(core.ActionDown):
		g.pendingDir = DirDown
	case input.Has(core.ActionLeft):
		g.pendingDir = DirLeft
	case input.Has(core.ActionRight):
		g.pendingDir = DirRight
	}
}

// agentInterval returns the agent step interval for the current difficulty.
func (g *Game) agentInterval() int {
	base := g.cfg.Agents.MoveEveryTicks
	if base <= 0 {
		base = 8
	}
	return g.difficulty.MoveInterval(base, int(g.engine.Percent()), int(g.tick))
}

// apply folds an engine report into the run state: wins end the game,
// lost lives respawn the player until none remain.
func (g *Game) apply(rep TickReport) {
	if rep.Won {
		g.won = true
		g.message = "Victory!"
		return
	}
	if rep.LifeLost {
		g.lives--
		g.message = rep.Reason
		if g.lives <= 0 {
			g.gameOver = true
			return
		}
		g.engine.RespawnLife()
	}
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	g.renderField(dst)

	switch {
	case g.won:
		g.renderOverlay(dst, g.message,
			fmt.Sprintf("Territory claimed: %.1f%%", g.engine.Percent()),
			"Press R to play again")
	case g.gameOver:
		g.renderOverlay(dst, g.message,
			fmt.Sprintf("Territory claimed: %.1f%%", g.engine.Percent()),
			"Press R to restart")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	var hud string
	if g.engine != nil {
		hud = fmt.Sprintf(" Xonix — Territory: %.1f%%  Target: %.0f%%  Lives: %d",
			g.engine.Percent(), g.engine.Target(), g.lives)
	} else {
		hud = " Xonix"
	}

	dst.DrawText(0, 0, hud)
	for x := range dst.Width() {
		dst.Set(x, 1, '─')
	}
}

// renderField draws the territory, trail, agents and player.
func (g *Game) renderField(dst *core.Screen) {
	grid := g.engine.Grid()
	for y := 0; y < g.fieldH; y++ {
		for x := 0; x < g.fieldW; x++ {
			sx, sy := g.offsetX+x, g.offsetY+y
			switch grid.At(Point{X: x, Y: y}) {
			case CellClaimed:
				dst.SetColored(sx, sy, ClaimedGlyph, core.ColorBlue)
			case CellTrail:
				dst.SetColored(sx, sy, TrailGlyph, core.ColorBrightYellow)
			}
		}
	}

	for _, a := range g.engine.Agents() {
		dst.SetColored(g.offsetX+a.Pos.X, g.offsetY+a.Pos.Y, AgentGlyph, core.ColorBrightRed)
	}

	p := g.engine.Player()
	dst.SetColored(g.offsetX+p.X, g.offsetY+p.Y, PlayerGlyph, core.ColorBrightGreen)
}

// renderOverlay draws a centered boxed message.
func (g *Game) renderOverlay(dst *core.Screen, lines ...string) {
	w := dst.Width()
	h := dst.Height()

	maxLen := 0
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}
	boxW := maxLen + 4
	boxH := 2*len(lines) + 1
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	for y := boxY; y < boxY+boxH && y < h; y++ {
		for x := boxX; x < boxX+boxW && x < w; x++ {
			if x < 0 || y < 0 {
				continue
			}
			isTopOrBottom := y == boxY || y == boxY+boxH-1
			isLeftOrRight := x == boxX || x == boxX+boxW-1
			switch {
			case isTopOrBottom && isLeftOrRight:
				dst.Set(x, y, '+')
			case isTopOrBottom:
				dst.Set(x, y, '-')
			case isLeftOrRight:
				dst.Set(x, y, '|')
			default:
				dst.Set(x, y, ' ')
			}
		}
	}

	for i, line := range lines {
		y := boxY + 1 + 2*i
		if y < 0 || y >= h {
			continue
		}
		x := (w - len(line)) / 2
		for j, ch := range line {
			px := x + j
			if px >= 0 && px < w {
				dst.Set(px, y, ch)
			}
		}
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	score := 0
	if g.engine != nil {
		score = int(g.engine.Percent())
	}
	return core.GameState{
		Score:    score,
		GameOver: g.gameOver || g.won,
		Won:      g.won,
		Paused:   g.paused,
	}
}

// DebugState returns a string representation of the game state.
func (g *Game) DebugState() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Tick: %d, Lives: %d\n", g.tick, g.lives))
	if g.engine != nil {
		b.WriteString(fmt.Sprintf("Phase: %s, Player: (%d, %d), Trail len: %d\n",
			g.engine.Phase(), g.engine.Player().X, g.engine.Player().Y, len(g.engine.TrailCells())))
		b.WriteString(fmt.Sprintf("Territory: %.1f%% of %.0f%%, Agents: %d\n",
			g.engine.Percent(), g.engine.Target(), len(g.engine.Agents())))
	}
	b.WriteString(fmt.Sprintf("GameOver: %v, Won: %v, Paused: %v\n", g.gameOver, g.won, g.paused))
	return b.String()
}
