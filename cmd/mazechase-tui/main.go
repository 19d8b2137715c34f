// Command mazechase-tui plays the maze chase in a terminal.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/mazechase/ecs/component"
	"github.com/milk9111/mazechase/levels"
	"github.com/milk9111/mazechase/maze"
	"github.com/milk9111/mazechase/session"
)

const (
	tickInterval = time.Second / 60
	cellWidth    = 2
	playerGlyph  = 'C'
	pickupGlyph  = '.'
	wallGlyph    = '█'
)

var (
	wallStyle   = tcell.StyleDefault.Foreground(tcell.ColorBlue).Background(tcell.ColorBlack)
	floorStyle  = tcell.StyleDefault.Background(tcell.ColorBlack)
	pickupStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	playerStyle = tcell.StyleDefault.Foreground(tcell.ColorYellow).Background(tcell.ColorBlack).Bold(true)
	textStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	alertStyle  = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)

type Game struct {
	screen  tcell.Screen
	session *session.Session
	pending maze.Direction
}

func NewGame(sess *session.Session) (*Game, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.HideCursor()
	return &Game{screen: screen, session: sess}, nil
}

// handleInput applies one terminal event and reports whether to keep running.
func (g *Game) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyUp:
			g.pending = maze.DirUp
		case tcell.KeyDown:
			g.pending = maze.DirDown
		case tcell.KeyLeft:
			g.pending = maze.DirLeft
		case tcell.KeyRight:
			g.pending = maze.DirRight
		case tcell.KeyEnter:
			g.session.RequestRestart()
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case 'w':
				g.pending = maze.DirUp
			case 's':
				g.pending = maze.DirDown
			case 'a':
				g.pending = maze.DirLeft
			case 'd':
				g.pending = maze.DirRight
			case 'r':
				g.session.RequestRestart()
			}
		}
	case *tcell.EventResize:
		g.screen.Sync()
	}
	return true
}

func (g *Game) tick() {
	dir := g.pending
	g.pending = maze.DirNone
	g.session.Update(dir)
}

func (g *Game) draw() {
	g.screen.Clear()
	grid := g.session.Grid()
	snap := g.session.Snapshot()

	for r := 0; r < grid.Rows(); r++ {
		for c := 0; c < grid.Cols(); c++ {
			if grid.At(maze.Cell{Row: r, Col: c}) == maze.Wall {
				g.put(c, r, wallGlyph, wallStyle)
			} else {
				g.put(c, r, ' ', floorStyle)
			}
		}
	}

	for _, p := range snap.Pickups {
		cell := grid.CellAt(p)
		g.screen.SetContent(cell.Col*cellWidth, cell.Row, pickupGlyph, nil, pickupStyle)
	}

	player := grid.CellAt(snap.Player)
	g.screen.SetContent(player.Col*cellWidth, player.Row, playerGlyph, nil, playerStyle)

	half := float64(grid.Tile()) / 2
	for _, p := range snap.Pursuers {
		// Pursuers are anchored at cell corners; round to the nearest cell.
		cell := grid.CellAt(p.Position.Add(cp.Vector{X: half, Y: half}))
		style := tcell.StyleDefault.Foreground(tcell.FromImageColor(p.Color)).Background(tcell.ColorBlack).Bold(true)
		g.screen.SetContent(cell.Col*cellWidth, cell.Row, p.Glyph, nil, style)
	}

	status := fmt.Sprintf("Score: %d  Left: %d  Tick: %d", snap.Collected, snap.PickupsLeft, snap.Tick)
	g.text(0, grid.Rows()+1, status, textStyle)
	if snap.Cleared {
		g.text(len(status)+2, grid.Rows()+1, "CLEARED", textStyle)
	}
	if snap.Status == component.StatusGameOver {
		g.text(0, grid.Rows()+2, "GAME OVER - press r or Enter to play again, q to quit", alertStyle)
	}
	g.screen.Show()
}

func (g *Game) put(col, row int, ch rune, style tcell.Style) {
	for i := 0; i < cellWidth; i++ {
		g.screen.SetContent(col*cellWidth+i, row, ch, nil, style)
	}
}

func (g *Game) text(x, y int, s string, style tcell.Style) {
	for i, ch := range []rune(s) {
		g.screen.SetContent(x+i, y, ch, nil, style)
	}
}

func (g *Game) run() {
	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case ev, ok := <-eventChan:
			if !ok || !g.handleInput(ev) {
				return
			}
		case <-ticker.C:
			g.tick()
			g.draw()
		}
	}
}

func main() {
	levelName := flag.String("level", levels.DefaultLevel, "level name in levels/ (basename, .json optional) or path to a level file")
	seed := flag.Int64("seed", 0, "seed for the random player spawn (0 uses the clock)")
	logPath := flag.String("log", "", "write logs to this file instead of discarding them")
	flag.Parse()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	sess, err := session.New(session.Options{Level: *levelName, Seed: *seed})
	if err != nil {
		log.Fatal(err)
	}

	var logOut io.Writer = io.Discard
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("open log: %v", err)
		}
		defer f.Close()
		logOut = f
	}

	game, err := NewGame(sess)
	if err != nil {
		log.Fatalf("init terminal: %v", err)
	}
	defer game.screen.Fini()

	// The terminal belongs to tcell from here on.
	log.SetOutput(logOut)

	game.run()
}
