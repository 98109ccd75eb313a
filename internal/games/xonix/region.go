package xonix

// fourNeighbors is the fixed flood-fill expansion order.
var fourNeighbors = [4]Point{{X: 0, Y: 1}, {X: 0, Y: -1}, {X: 1, Y: 0}, {X: -1, Y: 0}}

// Region is a maximal 4-connected component of open cells, bounded by
// claimed and trail cells.
type Region struct {
	Cells    []Point
	HasAgent bool
}

// Size returns the number of cells in the region.
func (r Region) Size() int {
	return len(r.Cells)
}

// Resolution summarises one closure pass: the open-cell partition it found,
// what it claimed, and what it left open.
type Resolution struct {
	Regions       []Region // in discovery order (row-major by starting cell)
	TrailClaimed  int      // trail cells promoted to claimed
	RegionClaimed int      // region cells promoted to claimed
	OpenRemaining int      // open cells left after the pass
}

// Claimed returns the total number of cells this pass promoted to claimed.
func (r Resolution) Claimed() int {
	return r.TrailClaimed + r.RegionClaimed
}

// ResolveClosure applies the capture rule after a trail closes.
//
// Claimed and trail cells form an impermeable boundary. The remaining open
// cells are partitioned into 4-connected components by flood fill with an
// explicit worklist, scanning starting cells in row-major order so that the
// partition is identical across runs. Every component free of agents is
// promoted wholesale to claimed; components holding at least one agent stay
// open (enclosing an agent does not capture it). The trail cells themselves
// are promoted unconditionally in the same pass.
func ResolveClosure(g *Grid, occupied []Point) Resolution {
	agentAt := make(map[Point]bool, len(occupied))
	for _, p := range occupied {
		agentAt[p] = true
	}

	var res Resolution
	visited := make([]bool, g.Width()*g.Height())

	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			start := Point{X: x, Y: y}
			if visited[g.index(start)] || g.At(start) != CellOpen {
				continue
			}
			res.Regions = append(res.Regions, fillRegion(g, start, visited, agentAt))
		}
	}

	// Promote the trail first: it is permanent boundary regardless of how
	// the regions resolve.
	for i, c := range g.cells {
		if c == CellTrail {
			g.cells[i] = CellClaimed
			res.TrailClaimed++
		}
	}

	for _, region := range res.Regions {
		if region.HasAgent {
			res.OpenRemaining += region.Size()
			continue
		}
		for _, p := range region.Cells {
			g.Set(p, CellClaimed)
		}
		res.RegionClaimed += region.Size()
	}

	return res
}

// fillRegion collects the open component containing start.
func fillRegion(g *Grid, start Point, visited []bool, agentAt map[Point]bool) Region {
	var region Region
	stack := []Point{start}

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !g.InBounds(p) || visited[g.index(p)] || g.At(p) != CellOpen {
			continue
		}
		visited[g.index(p)] = true
		region.Cells = append(region.Cells, p)
		if agentAt[p] {
			region.HasAgent = true
		}

		for _, d := range fourNeighbors {
			stack = append(stack, p.Add(d))
		}
	}

	return region
}
