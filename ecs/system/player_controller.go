package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/mazechase/ecs"
	"github.com/milk9111/mazechase/ecs/component"
	"github.com/milk9111/mazechase/maze"
)

type PlayerControllerSystem struct{}

func NewPlayerControllerSystem() *PlayerControllerSystem {
	return &PlayerControllerSystem{}
}

func (p *PlayerControllerSystem) Update(w *ecs.World) {
	if w == nil || !roundRunning(w) {
		return
	}
	grid, ok := boardGrid(w)
	if !ok {
		return
	}

	ecs.ForEach3(w, component.PlayerComponent.Kind(), component.InputComponent.Kind(), component.TransformComponent.Kind(),
		func(_ ecs.Entity, player *component.Player, input *component.Input, t *component.Transform) {
			if input.Requested != maze.DirNone {
				player.Heading = input.Requested
				input.Requested = maze.DirNone
			}
			t.Pos = stepPlayer(grid, t.Pos, player.Heading, player.Speed)
		})
}

// stepPlayer applies one tick of player motion. Leaving the board through
// the left or right edge wraps to the far side; any other move is taken only
// when the destination cell is walkable.
func stepPlayer(grid *maze.Grid, pos cp.Vector, heading maze.Direction, speed float64) cp.Vector {
	dr, dc := heading.Delta()
	candidate := cp.Vector{
		X: pos.X + float64(dc)*speed,
		Y: pos.Y + float64(dr)*speed,
	}

	half := float64(grid.Tile() / 2)
	switch {
	case candidate.X < 0:
		return cp.Vector{X: grid.Width() - half, Y: pos.Y}
	case candidate.X > grid.Width():
		return cp.Vector{X: half, Y: pos.Y}
	case grid.IsWalkable(grid.CellAt(candidate), true):
		return candidate
	default:
		return pos
	}
}
