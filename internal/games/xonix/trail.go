package xonix

import (
	"errors"

	"github.com/guyguy2/go-arcade/internal/core"
)

// ErrSelfIntersection reports a trail crossing itself. It ends the current
// life, never the process; the engine discards the trail and the field keeps
// whatever it held before the offending step.
var ErrSelfIntersection = errors.New("xonix: trail crosses itself")

// Trail records the ordered cells the player has drawn through open space
// since leaving claimed ground. Cells under the trail are tagged CellTrail
// on the field while recorded; they are promoted to claimed on closure or
// reverted to open on discard, exactly once per drawing attempt.
type Trail struct {
	cells  []Point
	index  map[Point]int // position -> order in cells, for O(1) revisit checks
	anchor Point         // claimed cell the player stepped off
	active bool
}

// NewTrail creates an empty, inactive trail.
func NewTrail() *Trail {
	return &Trail{
		index: make(map[Point]int),
	}
}

// Active returns true while a drawing attempt is in progress.
func (t *Trail) Active() bool {
	return t.active
}

// Len returns the number of recorded trail cells.
func (t *Trail) Len() int {
	return len(t.cells)
}

// Cells returns a copy of the recorded cells in draw order.
func (t *Trail) Cells() []Point {
	out := make([]Point, len(t.cells))
	copy(out, t.cells)
	return out
}

// Head returns the most recently drawn cell.
func (t *Trail) Head() (Point, bool) {
	if len(t.cells) == 0 {
		return Point{}, false
	}
	return t.cells[len(t.cells)-1], true
}

// Contains returns true if p is a recorded trail cell.
func (t *Trail) Contains(p Point) bool {
	_, ok := t.index[p]
	return ok
}

// Anchor returns the claimed cell the trail started from.
// Only meaningful while the trail is active.
func (t *Trail) Anchor() Point {
	return t.anchor
}

// Begin starts a drawing attempt: the player steps off the claimed anchor
// cell onto the open cell first, which becomes the trail's first cell and
// is tagged CellTrail on the field.
func (t *Trail) Begin(anchor, first Point, g *Grid) {
	if t.active {
		return
	}
	t.anchor = anchor
	t.active = true
	t.push(first, g)
}

// Extend advances the trail to p, which must be adjacent to the head.
//
// Offering the head cell itself is a no-op (the player did not move this
// tick). Stepping back onto the cell drawn immediately before the head is
// an undo: the head is popped and its field cell reverted to open. Any
// other revisit fails with ErrSelfIntersection before the field is touched.
// Non-adjacent positions are ignored.
func (t *Trail) Extend(p Point, g *Grid) error {
	if !t.active || len(t.cells) == 0 {
		return nil
	}

	head := t.cells[len(t.cells)-1]
	if p == head {
		return nil
	}
	if core.Abs(p.X-head.X)+core.Abs(p.Y-head.Y) != 1 {
		return nil
	}

	// Immediate retrace: undo the head cell.
	if prev, ok := t.prev(); ok && p == prev {
		t.pop(g)
		return nil
	}

	if t.Contains(p) {
		return ErrSelfIntersection
	}

	t.push(p, g)
	return nil
}

// prev returns the cell the player would step back onto when retracing:
// the cell before the head, or the anchor when only one cell is drawn.
func (t *Trail) prev() (Point, bool) {
	switch len(t.cells) {
	case 0:
		return Point{}, false
	case 1:
		return t.anchor, true
	default:
		return t.cells[len(t.cells)-2], true
	}
}

// Close ends the drawing attempt at the claimed cell end and returns the
// finished path: anchor, the trail cells in draw order, then end. Closing
// an inactive or empty trail returns nil (the player never left claimed
// ground). The field tags are left in place for the closure pass that
// promotes them.
func (t *Trail) Close(end Point) []Point {
	if !t.active || len(t.cells) == 0 {
		return nil
	}

	path := make([]Point, 0, len(t.cells)+2)
	path = append(path, t.anchor)
	path = append(path, t.cells...)
	path = append(path, end)

	t.reset()
	return path
}

// Discard abandons the drawing attempt, reverting every trail cell on the
// field to open. Used on elimination so the field holds exactly what it
// held before the attempt.
func (t *Trail) Discard(g *Grid) {
	for _, p := range t.cells {
		g.Set(p, CellOpen)
	}
	t.reset()
}

func (t *Trail) push(p Point, g *Grid) {
	t.index[p] = len(t.cells)
	t.cells = append(t.cells, p)
	g.Set(p, CellTrail)
}

func (t *Trail) pop(g *Grid) {
	head := t.cells[len(t.cells)-1]
	delete(t.index, head)
	t.cells = t.cells[:len(t.cells)-1]
	g.Set(head, CellOpen)
	if len(t.cells) == 0 {
		t.active = false
	}
}

func (t *Trail) reset() {
	t.cells = t.cells[:0]
	clear(t.index)
	t.active = false
}
