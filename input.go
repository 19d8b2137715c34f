package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/mazechase/maze"
)

type Input struct {
	bindings []keyBinding
}

type keyBinding struct {
	dir  maze.Direction
	keys []ebiten.Key
}

func NewInput() *Input {
	return &Input{
		// Later entries win when several keys are held.
		bindings: []keyBinding{
			{maze.DirLeft, []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}},
			{maze.DirRight, []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}},
			{maze.DirUp, []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}},
			{maze.DirDown, []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}},
		},
	}
}

// Direction returns the direction requested by the held keys, or DirNone.
func (i *Input) Direction() maze.Direction {
	dir := maze.DirNone
	for _, b := range i.bindings {
		for _, k := range b.keys {
			if ebiten.IsKeyPressed(k) {
				dir = b.dir
				break
			}
		}
	}
	return dir
}
