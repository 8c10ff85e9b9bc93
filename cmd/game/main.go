package main

import (
	"flag"
	"log"
	"time"

	"github.com/Garsondee/spellwalk/internal/game"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	seed := flag.Int64("seed", 0, "session seed (0 = time-based)")
	mute := flag.Bool("mute", false, "disable sound")
	flag.Parse()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	g := game.New(game.Options{Seed: *seed, Mute: *mute})
	if err := g.EnableSound(); err != nil {
		log.Printf("sound disabled: %v", err)
	}

	w, h := g.WindowSize()
	ebiten.SetWindowTitle("Spellwalk")
	ebiten.SetWindowSize(w, h)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
