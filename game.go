package main

import (
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/mazechase/ecs/component"
	"github.com/milk9111/mazechase/ecs/render"
	"github.com/milk9111/mazechase/maze"
	"github.com/milk9111/mazechase/prefabs"
	"github.com/milk9111/mazechase/session"
)

type Game struct {
	session  *session.Session
	renderer *render.RenderSystem
	gameOver *ebitenui.UI
	watcher  *prefabs.Watcher
	input    *Input
}

func NewGame(sess *session.Session, debug bool, watcher *prefabs.Watcher) *Game {
	g := &Game{
		session:  sess,
		renderer: render.NewRenderSystem(debug),
		watcher:  watcher,
		input:    NewInput(),
	}
	g.gameOver = NewGameOverUI(g)
	return g
}

func (g *Game) Update() error {
	g.drainWatcher()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		g.renderer.Debug = !g.renderer.Debug
	}

	if g.session.Status() == component.StatusGameOver {
		g.gameOver.Update()
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyR) {
			g.session.RequestRestart()
		}
		g.session.Update(maze.DirNone)
		return nil
	}

	g.session.Update(g.input.Direction())
	return nil
}

func (g *Game) drainWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("prefab %s changed; applies from the next round", name)
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("prefab watcher: %v", err)
		default:
			return
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(g.session.World(), screen)
	if g.session.Status() == component.StatusGameOver {
		g.gameOver.Draw(screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	grid := g.session.Grid()
	return grid.Width(), grid.Height() + render.HUDHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
