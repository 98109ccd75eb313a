package paratrooper

import (
	"fmt"
	"math"
	"math/rand"
	"strings"

	"github.com/guyguy2/go-arcade/internal/config"
	"github.com/guyguy2/go-arcade/internal/core"
	"github.com/guyguy2/go-arcade/internal/registry"
)

// Visual characters for rendering
const (
	TurretGlyph  = '█'
	HeliBody     = 'H'
	HeliRotor    = '='
	TrooperGlyph = 'i'
	ChuteGlyph   = '∩'
	BulletGlyph  = '•'
	GroundGlyph  = '═'
)

const (
	barrelLength = 2.0 // cells from turret base to muzzle

	// Helicopters spawn just off screen and are culled past this margin.
	offscreenMargin = 3.0
	// No drops this close to either edge, so troopers stay shootable.
	edgeMargin = 5.0

	skyMinRow = 1 // altitude band in field rows
	skyMaxRow = 4

	heliSpawnMinTicks = 60 // delay between helicopter spawns
	heliSpawnMaxTicks = 120
	waveBreakTicks    = 60 // pause before the first spawn of a wave
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

// Game implements the Paratrooper turret-defense game.
type Game struct {
	rng  *rand.Rand
	tick uint64

	// Turret
	angle    float64 // radians, -π (left) to 0 (right), -π/2 straight up
	cooldown int

	// Entities
	helis    []Helicopter
	troopers []Trooper
	bullets  []Bullet

	// Wave progression
	wave       int
	waveTarget int
	spawned    int
	spawnTimer int

	// Run state
	score    int
	message  string
	gameOver bool
	paused   bool
	tooSmall bool

	// Configuration
	runtime    core.RuntimeConfig
	cfg        config.ParatrooperConfig
	difficulty *config.DifficultyManager

	// Layout (computed from screen size)
	fieldW    int
	fieldH    int
	groundY   int
	turretX   int
	turretY   int
	offsetY   int
	hudHeight int
}

// New creates a new Paratrooper game instance.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("paratrooper", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "paratrooper"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Paratrooper"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	// Load game config
	cfg, err := config.LoadParatrooper(configPath)
	if err != nil {
		cfg = config.DefaultParatrooperConfig()
	}

	// Apply difficulty preset if set
	if difficultyPreset != "" {
		config.ApplyParatrooperPreset(&cfg, difficultyPreset)
	}

	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.tick = 0
	g.angle = -math.Pi / 2
	g.cooldown = 0

	g.helis = nil
	g.troopers = nil
	g.bullets = nil

	g.wave = 1
	g.waveTarget = cfg.Waves.InitialHelis
	g.spawned = 0
	g.spawnTimer = waveBreakTicks

	g.score = 0
	g.message = ""
	g.gameOver = false
	g.paused = false

	g.calculateLayout()
}

// calculateLayout places the ground and turret under the HUD.
func (g *Game) calculateLayout() {
	g.hudHeight = 2 // Status line plus separator

	g.fieldW = g.runtime.ScreenW
	g.fieldH = g.runtime.ScreenH - g.hudHeight

	if g.fieldW < 20 || g.fieldH < 10 {
		g.tooSmall = true
		return
	}
	g.tooSmall = false

	g.offsetY = g.hudHeight
	g.groundY = g.fieldH - 1
	g.turretX = g.fieldW / 2
	g.turretY = g.groundY - 1
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	// Handle restart
	if input.Has(core.ActionRestart) && g.gameOver {
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

	if g.gameOver || g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	g.processInput(input)
	g.spawnHelicopters()
	g.updateHelicopters()
	g.updateTroopers()
	g.updateBullets()
	g.removeDead()
	g.checkWaveComplete()

	return core.StepResult{State: g.State()}
}

// processInput sweeps the turret and fires on demand.
func (g *Game) processInput(input core.InputFrame) {
	if input.Has(core.ActionLeft) {
		g.angle = core.ClampF(g.angle-g.cfg.Turret.RotateSpeed, -math.Pi, 0)
	}
	if input.Has(core.ActionRight) {
		g.angle = core.ClampF(g.angle+g.cfg.Turret.RotateSpeed, -math.Pi, 0)
	}

	if g.cooldown > 0 {
		g.cooldown--
	}
	if input.Has(core.ActionFire) && g.cooldown <= 0 {
		g.fire()
		g.cooldown = g.cfg.Turret.CooldownTicks
	}
}

// fire spawns a bullet at the muzzle heading along the barrel.
func (g *Game) fire() {
	bx := float64(g.turretX) + math.Cos(g.angle)*barrelLength
	by := float64(g.turretY) + math.Sin(g.angle)*barrelLength
	g.bullets = append(g.bullets, newBullet(bx, by, g.angle, g.cfg.Turret.BulletSpeed))
}

// spawnHelicopters feeds the current wave onto the screen.
func (g *Game) spawnHelicopters() {
	if g.spawned >= g.waveTarget {
		return
	}
	g.spawnTimer--
	if g.spawnTimer > 0 {
		return
	}

	dir := 1
	x := -offscreenMargin + 1
	if g.rng.Intn(2) == 1 {
		dir = -1
		x = float64(g.fieldW) + offscreenMargin - 1
	}
	g.helis = append(g.helis, Helicopter{
		X:         x,
		Y:         float64(g.randBetween(skyMinRow, skyMaxRow)),
		Direction: dir,
		DropTimer: g.randBetween(g.cfg.Waves.DropMinTicks, g.cfg.Waves.DropMaxTicks),
		Alive:     true,
	})
	g.spawned++
	g.spawnTimer = g.difficulty.SpawnInterval(
		g.randBetween(heliSpawnMinTicks, heliSpawnMaxTicks), g.score, int(g.tick))
}

// updateHelicopters moves helicopters and drops troopers on their timers.
func (g *Game) updateHelicopters() {
	speed := g.difficulty.Speed(g.cfg.Waves.HeliSpeed, g.score, int(g.tick))
	for i := range g.helis {
		h := &g.helis[i]
		h.update(speed)

		if h.shouldDrop() && h.X > edgeMargin && h.X < float64(g.fieldW)-edgeMargin {
			g.troopers = append(g.troopers, Trooper{
				X:          h.X,
				Y:          h.Y + 1,
				ChuteTimer: g.cfg.Waves.ChuteOpenTicks,
				Alive:      true,
			})
			h.DropTimer = g.randBetween(g.cfg.Waves.DropMinTicks, g.cfg.Waves.DropMaxTicks)
		}

		if h.X < -offscreenMargin || h.X > float64(g.fieldW)+offscreenMargin {
			h.Alive = false
		}
	}
}

// updateTroopers advances every fall and checks for landings.
func (g *Game) updateTroopers() {
	for i := range g.troopers {
		t := &g.troopers[i]
		t.update(g.cfg.Waves.FallSpeed, g.cfg.Waves.ChuteFallSpeed)

		if t.Y >= float64(g.turretY) {
			t.Y = float64(g.turretY)
			g.gameOver = true
			g.message = "A trooper reached the ground!"
		}
	}
}

// updateBullets advances shots and resolves hits.
func (g *Game) updateBullets() {
	for i := range g.bullets {
		b := &g.bullets[i]
		b.update()

		if b.X < 0 || b.X >= float64(g.fieldW) || b.Y < 0 || b.Y >= float64(g.fieldH) {
			b.Alive = false
			continue
		}

		for j := range g.helis {
			h := &g.helis[j]
			if h.Alive && b.hitsHeli(h) {
				h.Alive = false
				b.Alive = false
				g.score += g.cfg.Scoring.HeliPoints
				break
			}
		}
		if !b.Alive {
			continue
		}

		for j := range g.troopers {
			t := &g.troopers[j]
			if t.Alive && b.hitsTrooper(t) {
				t.Alive = false
				b.Alive = false
				g.score += g.cfg.Scoring.TrooperPoints
				break
			}
		}
	}
}

// removeDead compacts the entity slices after hits and cull checks.
func (g *Game) removeDead() {
	helis := g.helis[:0]
	for _, h := range g.helis {
		if h.Alive {
			helis = append(helis, h)
		}
	}
	g.helis = helis

	troopers := g.troopers[:0]
	for _, t := range g.troopers {
		if t.Alive {
			troopers = append(troopers, t)
		}
	}
	g.troopers = troopers

	bullets := g.bullets[:0]
	for _, b := range g.bullets {
		if b.Alive {
			bullets = append(bullets, b)
		}
	}
	g.bullets = bullets
}

// checkWaveComplete advances the wave once the sky is clear.
func (g *Game) checkWaveComplete() {
	if g.spawned < g.waveTarget || len(g.helis) > 0 || len(g.troopers) > 0 {
		return
	}
	g.wave++
	g.waveTarget = core.Min(g.cfg.Waves.InitialHelis+g.wave-1, g.cfg.Waves.MaxHelis)
	g.spawned = 0
	g.spawnTimer = waveBreakTicks
}

// randBetween returns a value in [lo, hi].
func (g *Game) randBetween(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + g.rng.Intn(hi-lo+1)
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	g.renderGround(dst)
	g.renderTurret(dst)
	g.renderEntities(dst)

	switch {
	case g.gameOver:
		g.renderOverlay(dst, g.message,
			fmt.Sprintf("Final score: %d on wave %d", g.score, g.wave),
			"Press R to restart")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Paratrooper — Score: %d  Wave: %d", g.score, g.wave)
	dst.DrawText(0, 0, hud)
	for x := range dst.Width() {
		dst.Set(x, 1, '─')
	}
}

// renderGround draws the ground line the turret sits on.
func (g *Game) renderGround(dst *core.Screen) {
	for x := range dst.Width() {
		dst.Set(x, g.offsetY+g.groundY, GroundGlyph)
	}
}

// renderTurret draws the base and a barrel oriented along the aim angle.
func (g *Game) renderTurret(dst *core.Screen) {
	dst.SetColored(g.turretX, g.offsetY+g.turretY, TurretGlyph, core.ColorBrightGreen)

	dx := int(math.Round(math.Cos(g.angle)))
	dy := int(math.Round(math.Sin(g.angle)))
	var glyph rune
	switch {
	case dx == 0:
		glyph = '│'
	case dy == 0:
		glyph = '─'
	case dx*dy < 0:
		glyph = '/'
	default:
		glyph = '\\'
	}
	for k := 1; k <= int(barrelLength); k++ {
		dst.SetColored(g.turretX+dx*k, g.offsetY+g.turretY+dy*k, glyph, core.ColorGreen)
	}
}

// renderEntities draws helicopters, troopers and bullets.
func (g *Game) renderEntities(dst *core.Screen) {
	for _, h := range g.helis {
		hx := int(math.Round(h.X))
		hy := g.offsetY + int(math.Round(h.Y))
		dst.SetColored(hx-1, hy, HeliRotor, core.ColorCyan)
		dst.SetColored(hx, hy, HeliBody, core.ColorBrightCyan)
		dst.SetColored(hx+1, hy, HeliRotor, core.ColorCyan)
	}

	for _, t := range g.troopers {
		tx := int(math.Round(t.X))
		ty := g.offsetY + int(math.Round(t.Y))
		if t.ChuteOpen {
			dst.SetColored(tx, ty-1, ChuteGlyph, core.ColorMagenta)
		}
		dst.SetColored(tx, ty, TrooperGlyph, core.ColorBrightMagenta)
	}

	for _, b := range g.bullets {
		bx := int(math.Round(b.X))
		by := g.offsetY + int(math.Round(b.Y))
		dst.SetColored(bx, by, BulletGlyph, core.ColorBrightYellow)
	}
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
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// DebugState returns a string representation of the game state.
func (g *Game) DebugState() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Tick: %d, Score: %d, Wave: %d/%d spawned %d\n",
		g.tick, g.score, g.wave, g.waveTarget, g.spawned))
	b.WriteString(fmt.Sprintf("Angle: %.2f, Cooldown: %d\n", g.angle, g.cooldown))
	b.WriteString(fmt.Sprintf("Helis: %d, Troopers: %d, Bullets: %d\n",
		len(g.helis), len(g.troopers), len(g.bullets)))
	b.WriteString(fmt.Sprintf("GameOver: %v, Paused: %v\n", g.gameOver, g.paused))
	return b.String()
}
