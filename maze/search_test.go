package maze

import "testing"

func isAdjacent(a, b Cell) bool {
	return a.Manhattan(b) == 1
}

// walkToGoal applies NextStep until the goal is reached or no progress is
// made, returning the number of steps taken.
func walkToGoal(t *testing.T, s *Search, source, goal Cell) int {
	t.Helper()
	steps := 0
	cur := source
	for cur != goal {
		next := s.NextStep(cur, goal)
		if next == cur {
			t.Fatalf("no progress from %v toward %v after %d steps", cur, goal, steps)
		}
		if !isAdjacent(cur, next) {
			t.Fatalf("step %v -> %v is not adjacent", cur, next)
		}
		cur = next
		steps++
		if steps > s.Grid().Rows()*s.Grid().Cols() {
			t.Fatalf("walk from %v to %v did not terminate", source, goal)
		}
	}
	return steps
}

func TestNextStepSameCell(t *testing.T) {
	g := gridFromRows(20, "000", "000")
	s := NewSearch(g)
	for _, c := range g.FloorCells() {
		if got := s.NextStep(c, c); got != c {
			t.Fatalf("NextStep(%v, %v) = %v", c, c, got)
		}
	}
}

func TestNextStepTieBreakOrder(t *testing.T) {
	g := gridFromRows(20,
		"00000",
		"00000",
		"00000",
		"00000",
		"00000",
	)
	s := NewSearch(g)

	cases := []struct {
		name   string
		source Cell
		goal   Cell
		want   Cell
	}{
		{"down_before_right", Cell{0, 0}, Cell{2, 2}, Cell{1, 0}},
		{"up_before_left", Cell{4, 4}, Cell{2, 2}, Cell{3, 4}},
		{"right_before_left", Cell{2, 2}, Cell{2, 4}, Cell{2, 3}},
		{"straight_line_up", Cell{4, 0}, Cell{0, 0}, Cell{3, 0}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := s.NextStep(c.source, c.goal); got != c.want {
				t.Fatalf("NextStep(%v, %v) = %v, want %v", c.source, c.goal, got, c.want)
			}
		})
	}
}

func TestNextStepFollowsShortestPath(t *testing.T) {
	grids := map[string]*Grid{
		"open": gridFromRows(20,
			"000000",
			"000000",
			"000000",
			"000000",
		),
		"walled": gridFromRows(20,
			"1111111111",
			"1000010001",
			"1011010101",
			"1000000101",
			"1110111101",
			"1000000001",
			"1111111111",
		),
		"tunnel_row": gridFromRows(20,
			"11111",
			"00000",
			"11011",
			"10001",
			"11111",
		),
	}

	for name, g := range grids {
		t.Run(name, func(t *testing.T) {
			s := NewSearch(g)
			floors := g.FloorCells()
			for _, src := range floors {
				for _, dst := range floors {
					want, ok := s.Distance(src, dst)
					if !ok {
						if got := s.NextStep(src, dst); got != src {
							t.Fatalf("unreachable %v->%v should stay put, got %v", src, dst, got)
						}
						continue
					}
					if got := walkToGoal(t, s, src, dst); got != want {
						t.Fatalf("walk %v->%v took %d steps, BFS distance is %d", src, dst, got, want)
					}
				}
			}
		})
	}
}

func TestNextStepUnreachable(t *testing.T) {
	g := gridFromRows(20,
		"00100",
		"00100",
		"00100",
	)
	s := NewSearch(g)

	cases := []struct {
		name string
		goal Cell
	}{
		{"walled_off_side", Cell{1, 4}},
		{"goal_is_wall", Cell{1, 2}},
		{"goal_above_grid", Cell{-3, 0}},
		{"goal_left_of_grid", Cell{1, -1}},
		{"goal_far_outside", Cell{100, 100}},
	}
	src := Cell{1, 0}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := s.NextStep(src, c.goal); got != src {
				t.Fatalf("NextStep(%v, %v) = %v, want source", src, c.goal, got)
			}
			if _, ok := s.Distance(src, c.goal); ok {
				t.Fatalf("Distance reported %v reachable", c.goal)
			}
		})
	}
}

func TestNextStepDoesNotCrossTunnel(t *testing.T) {
	// The only connection between the two ends of row 1 is the tunnel edge,
	// which the search must not use.
	g := gridFromRows(20,
		"111",
		"010",
		"111",
	)
	g2 := gridFromRows(20,
		"1111",
		"0110",
		"1111",
	)
	if got := NextStep(g, Cell{1, 0}, Cell{1, 2}); got != (Cell{1, 0}) {
		t.Fatalf("wall-separated cells: got %v", got)
	}
	if got := NextStep(g2, Cell{1, 0}, Cell{1, 3}); got != (Cell{1, 0}) {
		t.Fatalf("search wrapped through the tunnel: got %v", got)
	}
}

func TestNextStepFromWallSource(t *testing.T) {
	// Pursuers may spawn inside a wall square; the search still expands from
	// there.
	g := gridFromRows(20,
		"000",
		"010",
		"000",
	)
	got := NextStep(g, Cell{1, 1}, Cell{0, 1})
	if got != (Cell{0, 1}) {
		t.Fatalf("expected to step out of the wall to the goal, got %v", got)
	}
}

func TestSearchReuseIsStateless(t *testing.T) {
	g := gridFromRows(20,
		"0000",
		"0110",
		"0000",
	)
	s := NewSearch(g)
	first := s.NextStep(Cell{0, 0}, Cell{2, 3})
	for i := 0; i < 10; i++ {
		_ = s.NextStep(Cell{2, 3}, Cell{0, 0})
		_ = s.NextStep(Cell{0, 0}, Cell{-1, -1})
	}
	if again := s.NextStep(Cell{0, 0}, Cell{2, 3}); again != first {
		t.Fatalf("result changed after reuse: %v then %v", first, again)
	}
	if fresh := NewSearch(g).NextStep(Cell{0, 0}, Cell{2, 3}); fresh != first {
		t.Fatalf("reused search %v differs from fresh search %v", first, fresh)
	}
}

func BenchmarkNextStep(b *testing.B) {
	g := gridFromRows(20,
		"1111111111111111111111111111",
		"1000000000110000000000000001",
		"1011111110110111111111111101",
		"1011111110110111111111111101",
		"1011111110110111111111111101",
		"1000000000000000000000000001",
		"1011110111110111110111110101",
		"1000000100000000000100000001",
		"1111110110111111110101111111",
		"0000010000000900000001000000",
		"1111011110111111101111011111",
		"1000000000110000000000000001",
		"1011111111110111111111111101",
		"1000000000000000000000000001",
		"1111111111111111111111111111",
	)
	s := NewSearch(g)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		s.NextStep(Cell{1, 1}, Cell{13, 26})
	}
}
