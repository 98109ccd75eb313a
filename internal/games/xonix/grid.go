// Package xonix implements the territory-claiming game: the player draws
// trails through open space and closes them against claimed ground to
// capture regions, while hostile agents bounce around the unclaimed field.
package xonix

import (
	"fmt"
	"hash/fnv"
)

// Point is a grid coordinate.
type Point struct {
	X, Y int
}

// Add returns the point shifted by the given delta.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// CellState is the mutually exclusive tag of a single field cell.
// Agent presence is not a cell state; AgentSet tracks it separately so the
// field is not rewritten every time an agent moves.
type CellState uint8

const (
	CellOpen    CellState = iota // unclaimed, passable by agents
	CellClaimed                  // permanent territory, safe for the player
	CellTrail                    // in-progress player trail
)

// String returns a short name for the cell state.
func (c CellState) String() string {
	switch c {
	case CellOpen:
		return "open"
	case CellClaimed:
		return "claimed"
	case CellTrail:
		return "trail"
	default:
		return "unknown"
	}
}

// Grid is the playing field: a fixed-size rectangle of cell states stored
// in a flat row-major array (index = y*w + x). The outermost ring starts
// claimed and never reopens; all open cells therefore live in the interior.
type Grid struct {
	w     int
	h     int
	cells []CellState
}

// NewGrid creates a field of the given dimensions with every cell open
// except the one-cell border ring, which starts claimed.
func NewGrid(w, h int) *Grid {
	g := &Grid{
		w:     w,
		h:     h,
		cells: make([]CellState, w*h),
	}
	for x := 0; x < w; x++ {
		g.cells[g.index(Point{X: x, Y: 0})] = CellClaimed
		g.cells[g.index(Point{X: x, Y: h - 1})] = CellClaimed
	}
	for y := 0; y < h; y++ {
		g.cells[g.index(Point{X: 0, Y: y})] = CellClaimed
		g.cells[g.index(Point{X: w - 1, Y: y})] = CellClaimed
	}
	return g
}

// index converts a coordinate to a flat array index.
func (g *Grid) index(p Point) int {
	return p.Y*g.w + p.X
}

// Width returns the field width in cells.
func (g *Grid) Width() int {
	return g.w
}

// Height returns the field height in cells.
func (g *Grid) Height() int {
	return g.h
}

// InBounds returns true if the point lies within the field.
func (g *Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.w && p.Y >= 0 && p.Y < g.h
}

// At returns the state of the cell at p.
// Out-of-bounds positions read as claimed, so everything beyond the edge
// behaves like territory: agents bounce off it and trails cannot leave.
func (g *Grid) At(p Point) CellState {
	if !g.InBounds(p) {
		return CellClaimed
	}
	return g.cells[g.index(p)]
}

// Set writes the state of the cell at p.
// Out-of-bounds positions are silently ignored. Transition legality
// (claimed cells never reopening) is the engine's responsibility.
func (g *Grid) Set(p Point, s CellState) {
	if !g.InBounds(p) {
		return
	}
	g.cells[g.index(p)] = s
}

// ClaimedCount returns the number of claimed cells on the whole field,
// border ring included.
func (g *Grid) ClaimedCount() int {
	count := 0
	for _, c := range g.cells {
		if c == CellClaimed {
			count++
		}
	}
	return count
}

// InteriorSize returns the number of cells inside the initial border ring.
// Claimed percentage is reported against this so a fresh field reads 0%.
func (g *Grid) InteriorSize() int {
	return (g.w - 2) * (g.h - 2)
}

// CountInterior returns how many interior cells are currently in the given
// state.
func (g *Grid) CountInterior(s CellState) int {
	count := 0
	for y := 1; y < g.h-1; y++ {
		for x := 1; x < g.w-1; x++ {
			if g.cells[y*g.w+x] == s {
				count++
			}
		}
	}
	return count
}

// Clone returns a deep copy of the field.
func (g *Grid) Clone() *Grid {
	cells := make([]CellState, len(g.cells))
	copy(cells, g.cells)
	return &Grid{
		w:     g.w,
		h:     g.h,
		cells: cells,
	}
}

// Equal returns true if two fields have the same dimensions and contents.
func (g *Grid) Equal(other *Grid) bool {
	if g.w != other.w || g.h != other.h {
		return false
	}
	for i, c := range g.cells {
		if c != other.cells[i] {
			return false
		}
	}
	return true
}

// Hash returns an FNV-1a digest of the field contents, used by snapshots
// to compare states without copying the whole cell array.
func (g *Grid) Hash() uint64 {
	h := fnv.New64a()
	fmt.Fprintf(h, "%d:%d;", g.w, g.h)
	for _, c := range g.cells {
		h.Write([]byte{byte(c)})
	}
	return h.Sum64()
}
