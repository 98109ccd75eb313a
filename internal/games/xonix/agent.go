package xonix

// Agent is a hostile ball bouncing through open territory on diagonal unit
// steps. Its position is always an open cell.
type Agent struct {
	ID  int
	Pos Point
	Vel Point // movement vector, both components -1 or +1
}

// AgentSet tracks every live agent. It holds positions only; cell states
// stay with the Grid, and all movement goes through Grid reads so the set
// never caches field state.
type AgentSet struct {
	agents []Agent
	nextID int
}

// NewAgentSet creates an empty set.
func NewAgentSet() *AgentSet {
	return &AgentSet{}
}

// Spawn adds an agent at pos with the given vector and returns its id.
func (s *AgentSet) Spawn(pos, vel Point) int {
	id := s.nextID
	s.nextID++
	s.agents = append(s.agents, Agent{ID: id, Pos: pos, Vel: vel})
	return id
}

// Remove deletes the agent with the given id.
// Returns false if no such agent exists.
func (s *AgentSet) Remove(id int) bool {
	for i, a := range s.agents {
		if a.ID == id {
			s.agents = append(s.agents[:i], s.agents[i+1:]...)
			return true
		}
	}
	return false
}

// Len returns the number of live agents.
func (s *AgentSet) Len() int {
	return len(s.agents)
}

// Positions returns a fresh slice of current agent positions, in spawn
// order. Queried anew for every closure and collision check.
func (s *AgentSet) Positions() []Point {
	out := make([]Point, len(s.agents))
	for i, a := range s.agents {
		out[i] = a.Pos
	}
	return out
}

// Agents returns a copy of the live agents, in spawn order.
func (s *AgentSet) Agents() []Agent {
	out := make([]Agent, len(s.agents))
	copy(out, s.agents)
	return out
}

// At returns true if any agent occupies p. Agents may overlap.
func (s *AgentSet) At(p Point) bool {
	for _, a := range s.agents {
		if a.Pos == p {
			return true
		}
	}
	return false
}

// AdvanceAll moves every agent one step, reflecting off claimed cells and
// the field edge axis by axis. An agent never enters a claimed or trail
// cell: a step into the trail does not complete and is returned as a hit
// for the outer elimination path; an agent boxed in on all sides stays put.
func (s *AgentSet) AdvanceAll(g *Grid) []Point {
	var hits []Point
	for i := range s.agents {
		if hit, ok := s.agents[i].advance(g); ok {
			hits = append(hits, hit)
		}
	}
	return hits
}

// advance performs one bounce step. Returns the trail cell the agent ran
// into, if any.
func (a *Agent) advance(g *Grid) (Point, bool) {
	next := a.Pos.Add(a.Vel)
	if g.At(next) == CellClaimed {
		// Reflect whichever axis is blocked; a clean diagonal corner
		// reverses both.
		hBlocked := g.At(Point{X: a.Pos.X + a.Vel.X, Y: a.Pos.Y}) == CellClaimed
		vBlocked := g.At(Point{X: a.Pos.X, Y: a.Pos.Y + a.Vel.Y}) == CellClaimed
		if hBlocked {
			a.Vel.X = -a.Vel.X
		}
		if vBlocked {
			a.Vel.Y = -a.Vel.Y
		}
		if !hBlocked && !vBlocked {
			a.Vel.X, a.Vel.Y = -a.Vel.X, -a.Vel.Y
		}
		next = a.Pos.Add(a.Vel)
	}

	switch g.At(next) {
	case CellTrail:
		return next, true
	case CellOpen:
		a.Pos = next
	}
	return Point{}, false
}
