package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/mazechase/maze"
)

var (
	wallColor  = color.RGBA{B: 255, A: 255}
	floorColor = color.Black
)

var boards = map[*maze.Grid]*ebiten.Image{}

// BoardImage returns the pre-rendered wall layer for g, drawing it on first
// use.
func BoardImage(g *maze.Grid) *ebiten.Image {
	if g == nil {
		return nil
	}
	if img, ok := boards[g]; ok {
		return img
	}
	img := ebiten.NewImage(int(g.Width()), int(g.Height()))
	img.Fill(floorColor)
	tile := float32(g.Tile())
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			if g.At(maze.Cell{Row: r, Col: c}) != maze.Wall {
				continue
			}
			vector.FillRect(img, float32(c)*tile, float32(r)*tile, tile, tile, wallColor, false)
		}
	}
	boards[g] = img
	return img
}
