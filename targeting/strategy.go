// Package targeting picks the search goal for each pursuer role.
package targeting

import "github.com/milk9111/mazechase/maze"

// Snapshot is the world state a strategy may look at.
type Snapshot struct {
	Player  maze.Cell
	Heading maze.Direction
	Self    maze.Cell
	// Leader is the Chaser's current cell; only the Flanker reads it.
	Leader maze.Cell
	Rows   int
}

// Strategy maps a snapshot to a goal cell for the path search. Goals may lie
// outside the grid; the search treats them as unreachable.
type Strategy interface {
	Goal(s Snapshot) maze.Cell
}

// Chase targets the player's cell directly.
type Chase struct{}

func (Chase) Goal(s Snapshot) maze.Cell {
	return s.Player
}

// Ambush targets a cell Lead steps ahead of the player along its heading.
type Ambush struct {
	Lead int
}

func (a Ambush) Goal(s Snapshot) maze.Cell {
	dr, dc := s.Heading.Delta()
	return s.Player.Add(dr*a.Lead, dc*a.Lead)
}

// Flank targets the midpoint between the player and the leader.
type Flank struct{}

func (Flank) Goal(s Snapshot) maze.Cell {
	return maze.Cell{
		Row: (s.Player.Row + s.Leader.Row) / 2,
		Col: (s.Player.Col + s.Leader.Col) / 2,
	}
}

// Opportunist chases from afar and retreats to its scatter cell once it is
// closer than Radius to the player.
type Opportunist struct {
	Radius int
}

func (o Opportunist) Goal(s Snapshot) maze.Cell {
	if s.Self.Manhattan(s.Player) < o.Radius {
		return ScatterCell(s.Rows)
	}
	return s.Player
}

// ScatterCell is the Opportunist's retreat cell near the bottom-left corner.
func ScatterCell(rows int) maze.Cell {
	return maze.Cell{Row: rows - 2, Col: 1}
}

const (
	AmbushLead        = 4
	OpportunistRadius = 5
)

// ForRole returns the strategy for r. Unknown roles fall back to Chase.
func ForRole(r Role) Strategy {
	switch r {
	case RoleAmbusher:
		return Ambush{Lead: AmbushLead}
	case RoleFlanker:
		return Flank{}
	case RoleOpportunist:
		return Opportunist{Radius: OpportunistRadius}
	default:
		return Chase{}
	}
}
