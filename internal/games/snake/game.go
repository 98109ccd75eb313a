// Package snake implements the classic endless snake: eat food, grow
// longer, speed up, and avoid the walls and your own body.
package snake

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/guyguy2/go-arcade/internal/core"
	"github.com/guyguy2/go-arcade/internal/registry"
)

// Direction represents the snake's movement direction.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

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
		return "unknown"
	}
}

// Point represents a 2D coordinate.
type Point struct {
	X, Y int
}

// Field and pacing constants.
const (
	fieldWidth  = 32 // Including the wall ring
	fieldHeight = 27

	scorePerFood = 10

	baseMoveInterval = 7  // Ticks per move at score 0
	minMoveInterval  = 3  // Speed cap
	speedUpEvery     = 50 // Score per interval reduction
)

// Game implements the Snake game.
type Game struct {
	rng            *rand.Rand
	tick           uint64
	score          int
	moveEveryTicks int
	moveTicker     int // Counts ticks until next move

	// Snake state
	snake     []Point // Head at index 0
	direction Direction
	nextDir   Direction // Buffered direction for next move
	growing   bool      // If true, don't remove tail on next move

	// Map state
	mapWidth   int
	mapHeight  int
	walls      map[Point]bool
	food       Point
	hudHeight  int
	mapOffsetX int
	mapOffsetY int

	// Screen dimensions
	screenW int
	screenH int

	// Game state flags
	gameOver bool
	paused   bool
	tooSmall bool
}

// New creates a new Snake game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("snake", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "snake"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Snake"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.score = 0
	g.gameOver = false
	g.paused = false
	g.tooSmall = false
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.hudHeight = 2 // Top HUD lines
	g.moveEveryTicks = baseMoveInterval
	g.moveTicker = 0

	g.buildField()
	if g.tooSmall {
		return
	}

	g.initSnake()
	g.spawnFood()
}

// buildField sizes the walled field to the screen and lays the wall ring.
func (g *Game) buildField() {
	g.mapWidth = min(fieldWidth, g.screenW-2)
	g.mapHeight = min(fieldHeight, g.screenH-g.hudHeight-1)

	if g.mapWidth < 10 || g.mapHeight < 8 {
		g.tooSmall = true
		return
	}
	g.tooSmall = false

	// Center the map under the HUD
	g.mapOffsetX = (g.screenW - g.mapWidth) / 2
	g.mapOffsetY = g.hudHeight

	g.walls = make(map[Point]bool)
	for x := 0; x < g.mapWidth; x++ {
		g.walls[Point{X: x, Y: 0}] = true
		g.walls[Point{X: x, Y: g.mapHeight - 1}] = true
	}
	for y := 0; y < g.mapHeight; y++ {
		g.walls[Point{X: 0, Y: y}] = true
		g.walls[Point{X: g.mapWidth - 1, Y: y}] = true
	}
}

// initSnake places the snake mid-field heading right.
func (g *Game) initSnake() {
	startX := g.mapWidth / 2
	startY := g.mapHeight / 2

	// Three segments, head at front
	g.snake = []Point{
		{X: startX, Y: startY},
		{X: startX - 1, Y: startY},
		{X: startX - 2, Y: startY},
	}
	g.direction = DirRight
	g.nextDir = DirRight
	g.growing = false
}

// spawnFood places food at a random empty cell.
func (g *Game) spawnFood() {
	// Collect all empty cells
	var emptyCells []Point
	for y := 1; y < g.mapHeight-1; y++ {
		for x := 1; x < g.mapWidth-1; x++ {
			p := Point{X: x, Y: y}
			if !g.walls[p] && !g.isSnakeAt(p) {
				emptyCells = append(emptyCells, p)
			}
		}
	}

	if len(emptyCells) == 0 {
		// The snake fills the field; nowhere left to spawn
		g.food = Point{X: -1, Y: -1}
		return
	}

	g.food = emptyCells[g.rng.Intn(len(emptyCells))]
}

// isSnakeAt checks if the snake occupies the given point.
func (g *Game) isSnakeAt(p Point) bool {
	for _, seg := range g.snake {
		if seg == p {
			return true
		}
	}
	return false
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	// Handle restart
	if input.Has(core.ActionRestart) && g.gameOver {
		g.Reset(core.RuntimeConfig{
			Seed:    g.rng.Int63(),
			ScreenW: g.screenW,
			ScreenH: g.screenH,
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

	// Process direction input (buffer for next move)
	g.processInput(input)

	// Move snake on tick interval
	g.moveTicker++
	if g.moveTicker >= g.moveEveryTicks {
		g.moveTicker = 0
		g.moveSnake()
	}

	return core.StepResult{State: g.State()}
}

// processInput handles direction changes.
func (g *Game) processInput(input core.InputFrame) {
	newDir := g.nextDir

	switch {
	case input.Has(core.ActionUp):
		newDir = DirUp
	case input.Has(core.ActionDown):
		newDir = DirDown
	case input.Has(core.ActionLeft):
		newDir = DirLeft
	case input.Has(core.ActionRight):
		newDir = DirRight
	}

	// Prevent instant reversal
	if !g.isOpposite(newDir, g.direction) {
		g.nextDir = newDir
	}
}

// isOpposite checks if two directions are opposite.
func (g *Game) isOpposite(d1, d2 Direction) bool {
	return (d1 == DirUp && d2 == DirDown) ||
		(d1 == DirDown && d2 == DirUp) ||
		(d1 == DirLeft && d2 == DirRight) ||
		(d1 == DirRight && d2 == DirLeft)
}

// moveSnake moves the snake one cell in the current direction.
func (g *Game) moveSnake() {
	if len(g.snake) == 0 {
		return
	}

	// Apply buffered direction
	g.direction = g.nextDir

	// Calculate new head position
	head := g.snake[0]
	var newHead Point
	switch g.direction {
	case DirUp:
		newHead = Point{X: head.X, Y: head.Y - 1}
	case DirDown:
		newHead = Point{X: head.X, Y: head.Y + 1}
	case DirLeft:
		newHead = Point{X: head.X - 1, Y: head.Y}
	case DirRight:
		newHead = Point{X: head.X + 1, Y: head.Y}
	}

	// Check wall collision
	if g.walls[newHead] || newHead.X < 0 || newHead.X >= g.mapWidth ||
		newHead.Y < 0 || newHead.Y >= g.mapHeight {
		g.gameOver = true
		return
	}

	// Check self collision (excluding tail if not growing, since it will move)
	checkLen := len(g.snake)
	if !g.growing && checkLen > 0 {
		checkLen-- // Tail will be removed
	}
	for i := range checkLen {
		if g.snake[i] == newHead {
			g.gameOver = true
			return
		}
	}

	// Move snake: add new head
	g.snake = append([]Point{newHead}, g.snake...)

	// Check food collision
	if newHead == g.food {
		g.score += scorePerFood
		g.growing = true // Don't remove tail this move
		g.spawnFood()
		g.updateSpeed()
	}

	// Remove tail unless growing
	if g.growing {
		g.growing = false
	} else if len(g.snake) > 1 {
		g.snake = g.snake[:len(g.snake)-1]
	}
}

// updateSpeed shortens the move interval as the score climbs.
func (g *Game) updateSpeed() {
	g.moveEveryTicks = max(minMoveInterval, baseMoveInterval-g.score/speedUpEvery)
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	g.renderMap(dst)
	g.renderSnake(dst)

	// Draw food
	if g.food.X >= 0 && g.food.Y >= 0 {
		fx := g.mapOffsetX + g.food.X
		fy := g.mapOffsetY + g.food.Y
		dst.SetColored(fx, fy, '*', core.ColorBrightRed)
	}

	switch {
	case g.gameOver:
		g.renderOverlay(dst, "Game Over", "Press R to restart")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Snake — Score: %d  Length: %d  Speed: %d",
		g.score, len(g.snake), 1+baseMoveInterval-g.moveEveryTicks)

	dst.DrawText(0, 0, hud)

	// Draw separator
	for x := range dst.Width() {
		dst.Set(x, 1, '─')
	}
}

// renderMap draws walls.
func (g *Game) renderMap(dst *core.Screen) {
	for wall := range g.walls {
		wx := g.mapOffsetX + wall.X
		wy := g.mapOffsetY + wall.Y
		if wx >= 0 && wx < dst.Width() && wy >= 0 && wy < dst.Height() {
			dst.Set(wx, wy, '#')
		}
	}
}

// renderSnake draws the snake.
func (g *Game) renderSnake(dst *core.Screen) {
	for i, seg := range g.snake {
		sx := g.mapOffsetX + seg.X
		sy := g.mapOffsetY + seg.Y
		if sx >= 0 && sx < dst.Width() && sy >= 0 && sy < dst.Height() {
			if i == 0 {
				dst.SetColored(sx, sy, 'O', core.ColorBrightGreen) // Head
			} else {
				dst.SetColored(sx, sy, 'o', core.ColorGreen) // Body
			}
		}
	}
}

// renderOverlay draws a centered overlay message.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	// Calculate box dimensions
	maxLen := len(line1)
	if len(line2) > maxLen {
		maxLen = len(line2)
	}
	boxW := maxLen + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	// Draw box
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

	// Draw text
	dst.DrawTextCentered(boxY+1, line1)
	dst.DrawTextCentered(boxY+3, line2)
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
	b.WriteString(fmt.Sprintf("Tick: %d, Score: %d, Interval: %d\n", g.tick, g.score, g.moveEveryTicks))
	b.WriteString(fmt.Sprintf("Snake len: %d, Direction: %s\n", len(g.snake), g.direction))
	if len(g.snake) > 0 {
		b.WriteString(fmt.Sprintf("Head: (%d, %d), Food: (%d, %d)\n", g.snake[0].X, g.snake[0].Y, g.food.X, g.food.Y))
	}
	b.WriteString(fmt.Sprintf("GameOver: %v, Paused: %v\n", g.gameOver, g.paused))
	return b.String()
}
