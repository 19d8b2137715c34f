package system

import (
	"sort"

	"github.com/milk9111/mazechase/ecs"
	"github.com/milk9111/mazechase/ecs/component"
	"github.com/milk9111/mazechase/maze"
	"github.com/milk9111/mazechase/targeting"
)

// PursuitSystem moves every pursuer one step toward the goal chosen by its
// strategy. Pursuers update one at a time in spawn order, so a later pursuer
// observes the positions earlier ones reached this tick.
type PursuitSystem struct {
	search *maze.Search
	queue  []pursuerRef
}

type pursuerRef struct {
	pursuer *component.Pursuer
	path    *component.Pathfinding
	t       *component.Transform
}

func NewPursuitSystem() *PursuitSystem {
	return &PursuitSystem{}
}

func (s *PursuitSystem) Update(w *ecs.World) {
	if w == nil || !roundRunning(w) {
		return
	}
	grid, ok := boardGrid(w)
	if !ok {
		return
	}
	playerEnt, playerTransform, ok := playerEntity(w)
	if !ok {
		return
	}
	if s.search == nil || s.search.Grid() != grid {
		s.search = maze.NewSearch(grid)
	}

	heading := maze.DirNone
	if player, ok := ecs.Get(w, playerEnt, component.PlayerComponent.Kind()); ok {
		heading = player.Heading
	}
	playerCell := grid.CellAt(playerTransform.Pos)

	s.queue = s.queue[:0]
	ecs.ForEach3(w, component.PursuerComponent.Kind(), component.PathfindingComponent.Kind(), component.TransformComponent.Kind(),
		func(_ ecs.Entity, p *component.Pursuer, pf *component.Pathfinding, t *component.Transform) {
			s.queue = append(s.queue, pursuerRef{pursuer: p, path: pf, t: t})
		})
	sort.SliceStable(s.queue, func(i, j int) bool {
		return s.queue[i].pursuer.Order < s.queue[j].pursuer.Order
	})

	leader := playerCell
	for _, ref := range s.queue {
		if ref.pursuer.Role == targeting.RoleChaser {
			leader = grid.CellAt(ref.t.Pos)
			break
		}
	}

	for _, ref := range s.queue {
		p := ref.pursuer
		cell := grid.CellAt(ref.t.Pos)

		strategy := p.Strategy
		if strategy == nil {
			strategy = targeting.ForRole(p.Role)
		}
		goal := strategy.Goal(targeting.Snapshot{
			Player:  playerCell,
			Heading: heading,
			Self:    cell,
			Leader:  leader,
			Rows:    grid.Rows(),
		})
		next := s.search.NextStep(cell, goal)

		target := grid.CellCorner(next)
		ref.t.Pos.X = approach(ref.t.Pos.X, target.X, p.Speed)
		ref.t.Pos.Y = approach(ref.t.Pos.Y, target.Y, p.Speed)
		*ref.path = component.Pathfinding{Cell: cell, Goal: goal, Next: next}

		if p.Role == targeting.RoleChaser {
			leader = grid.CellAt(ref.t.Pos)
		}
	}
}

// approach moves v toward target by at most step. The axes are handled
// independently, so a pursuer may travel diagonally between corners.
func approach(v, target, step float64) float64 {
	switch {
	case v < target:
		if v+step > target {
			return target
		}
		return v + step
	case v > target:
		if v-step < target {
			return target
		}
		return v - step
	default:
		return v
	}
}
