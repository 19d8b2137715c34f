package render

import (
	"fmt"
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/mazechase/ecs"
	"github.com/milk9111/mazechase/ecs/component"
)

// HUDHeight is the strip below the board reserved for the status line.
const HUDHeight = 20

type RenderSystem struct {
	// Debug draws each pursuer's goal cell and next step.
	Debug bool
	queue []drawItem
}

type drawItem struct {
	e     ecs.Entity
	layer int
	pos   *component.Transform
	look  *component.Appearance
}

func NewRenderSystem(debug bool) *RenderSystem {
	return &RenderSystem{Debug: debug}
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}

	boardEnt, ok := ecs.First(w, component.BoardComponent.Kind())
	if !ok {
		return
	}
	board, ok := ecs.Get(w, boardEnt, component.BoardComponent.Kind())
	if !ok || board.Grid == nil {
		return
	}
	screen.DrawImage(BoardImage(board.Grid), nil)

	r.queue = r.queue[:0]
	ecs.ForEach2(w, component.TransformComponent.Kind(), component.AppearanceComponent.Kind(), func(e ecs.Entity, t *component.Transform, a *component.Appearance) {
		layer := 0
		if rl, ok := ecs.Get(w, e, component.RenderLayerComponent.Kind()); ok {
			layer = rl.Index
		}
		r.queue = append(r.queue, drawItem{e: e, layer: layer, pos: t, look: a})
	})
	sort.SliceStable(r.queue, func(i, j int) bool {
		if r.queue[i].layer != r.queue[j].layer {
			return r.queue[i].layer < r.queue[j].layer
		}
		return uint64(r.queue[i].e) < uint64(r.queue[j].e)
	})

	for _, it := range r.queue {
		vector.FillCircle(screen, float32(it.pos.Pos.X), float32(it.pos.Pos.Y), float32(it.look.Radius), it.look.Color, true)
	}

	if r.Debug {
		r.drawPaths(w, screen, float32(board.Grid.Tile()))
	}

	if roundEnt, ok := ecs.First(w, component.RoundComponent.Kind()); ok {
		if round, ok := ecs.Get(w, roundEnt, component.RoundComponent.Kind()); ok {
			status := fmt.Sprintf("Score: %d  Left: %d  Tick: %d", round.Collected, round.PickupsLeft, round.Tick)
			if round.Cleared {
				status += "  CLEARED"
			}
			ebitenutil.DebugPrintAt(screen, status, 4, int(board.Grid.Height())+2)
		}
	}
}

func (r *RenderSystem) drawPaths(w *ecs.World, screen *ebiten.Image, tile float32) {
	ecs.ForEach3(w, component.PathfindingComponent.Kind(), component.TransformComponent.Kind(), component.AppearanceComponent.Kind(),
		func(_ ecs.Entity, pf *component.Pathfinding, t *component.Transform, a *component.Appearance) {
			cr, cg, cb, _ := a.Color.RGBA()
			faded := color.RGBA{R: uint8(cr >> 8), G: uint8(cg >> 8), B: uint8(cb >> 8), A: 160}
			gx := float32(pf.Goal.Col) * tile
			gy := float32(pf.Goal.Row) * tile
			vector.StrokeRect(screen, gx, gy, tile, tile, 1.5, faded, false)
			nx := float32(pf.Next.Col) * tile
			ny := float32(pf.Next.Row) * tile
			vector.StrokeLine(screen, float32(t.Pos.X), float32(t.Pos.Y), nx, ny, 1, faded, false)
		})
}
