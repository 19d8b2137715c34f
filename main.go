package main

import (
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/mazechase/levels"
	"github.com/milk9111/mazechase/prefabs"
	"github.com/milk9111/mazechase/session"
)

func main() {
	debug := flag.Bool("debug", false, "draw pursuer goals and next steps")
	levelName := flag.String("level", levels.DefaultLevel, "level name in levels/ (basename, .json optional) or path to a level file")
	seed := flag.Int64("seed", 0, "seed for the random player spawn (0 uses the clock)")
	watch := flag.Bool("watch", false, "reload prefab YAML from ./prefabs when it changes")
	scale := flag.Float64("scale", 2, "window scale factor")
	flag.Parse()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	sess, err := session.New(session.Options{Level: *levelName, Seed: *seed})
	if err != nil {
		log.Fatal(err)
	}

	var watcher *prefabs.Watcher
	if *watch {
		watcher, err = prefabs.NewWatcher(prefabs.Dir)
		if err != nil {
			log.Fatalf("watch prefabs: %v", err)
		}
		defer watcher.Close()
	}

	game := NewGame(sess, *debug, watcher)

	w, h := game.LayoutF(0, 0)
	ebiten.SetWindowSize(int(w**scale), int(h**scale))
	ebiten.SetWindowTitle("mazechase")
	ebiten.SetTPS(60)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
