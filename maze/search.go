package maze

// neighborOffsets is the expansion order: down, up, right, left. Among paths
// of equal length the first one discovered in this order wins.
var neighborOffsets = [4]Cell{
	{Row: 1, Col: 0},
	{Row: -1, Col: 0},
	{Row: 0, Col: 1},
	{Row: 0, Col: -1},
}

// Search runs breadth-first searches over one grid. Its buffers are reused
// between calls; results never depend on earlier calls. A Search is not safe
// for concurrent use.
type Search struct {
	grid *Grid

	// Index rows*cols is a spare slot for a source that lies outside the
	// matrix (a pursuer pushed past the border never happens in play, but
	// the search must not index out of range if it does).
	source Cell
	stamp  uint32
	seen   []uint32 // seen[i] == stamp marks cell i discovered in this run
	prev   []int32
	dist   []int32
	queue  []int32
}

// NewSearch allocates search buffers sized for g.
func NewSearch(g *Grid) *Search {
	n := g.rows*g.cols + 1
	return &Search{
		grid:  g,
		seen:  make([]uint32, n),
		prev:  make([]int32, n),
		dist:  make([]int32, n),
		queue: make([]int32, 0, n),
	}
}

// Grid returns the grid this search runs over.
func (s *Search) Grid() *Grid { return s.grid }

// NextStep returns the cell after source on a shortest path to goal. It
// returns source when source == goal or when goal cannot be reached,
// including goals outside the grid. The search never crosses the tunnel
// edge.
func (s *Search) NextStep(source, goal Cell) Cell {
	if source == goal {
		return source
	}
	srcIdx, goalIdx, found := s.run(source, goal)
	if !found {
		return source
	}
	idx := goalIdx
	for s.prev[idx] != srcIdx {
		idx = s.prev[idx]
	}
	return s.grid.cell(int(idx))
}

// Distance returns the number of steps on a shortest path from source to
// goal, and false when goal is unreachable.
func (s *Search) Distance(source, goal Cell) (int, bool) {
	if source == goal {
		return 0, true
	}
	_, goalIdx, found := s.run(source, goal)
	if !found {
		return 0, false
	}
	return int(s.dist[goalIdx]), true
}

// run performs the BFS from source and stops once goal is dequeued. It
// returns the source's buffer index, the goal's index, and whether the goal
// was reached.
func (s *Search) run(source, goal Cell) (int32, int32, bool) {
	g := s.grid
	s.source = source

	srcIdx := int32(g.rows * g.cols)
	if g.Contains(source) {
		srcIdx = int32(g.index(source))
	}
	if !g.Contains(goal) {
		// Never discovered: the full traversal would end in "stay put".
		return srcIdx, 0, false
	}
	goalIdx := int32(g.index(goal))

	s.stamp++
	if s.stamp == 0 {
		clear(s.seen)
		s.stamp = 1
	}
	s.queue = s.queue[:0]
	s.visit(srcIdx, -1, 0)

	for head := 0; head < len(s.queue); head++ {
		cur := s.queue[head]
		if cur == goalIdx {
			return srcIdx, goalIdx, true
		}
		c := s.cellOf(cur)
		for _, d := range neighborOffsets {
			n := c.Add(d.Row, d.Col)
			if !g.IsWalkable(n, false) {
				continue
			}
			ni := int32(g.index(n))
			if s.seen[ni] == s.stamp {
				continue
			}
			s.visit(ni, cur, s.dist[cur]+1)
		}
	}
	return srcIdx, goalIdx, false
}

func (s *Search) visit(idx, prev, dist int32) {
	s.seen[idx] = s.stamp
	s.prev[idx] = prev
	s.dist[idx] = dist
	s.queue = append(s.queue, idx)
}

func (s *Search) cellOf(idx int32) Cell {
	if int(idx) == s.grid.rows*s.grid.cols {
		return s.source
	}
	return s.grid.cell(int(idx))
}

// NextStep is a convenience wrapper that allocates a throwaway Search.
func NextStep(g *Grid, source, goal Cell) Cell {
	return NewSearch(g).NextStep(source, goal)
}
