package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	debug := flag.Bool("debug", false, "log every event and show debug info")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	seed := flag.Uint64("seed", 0, "seed for catch rolls (0 picks a random seed)")
	sellPolicy := flag.String("sell-policy", "nearest", "building that takes a sale when several are in range: nearest or first")
	watch := flag.Bool("watch", false, "reload prefabs/ and prefabs/scripts/ when they change on disk")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(1280, 720)
	ebiten.SetWindowTitle("fishtown")

	game, err := NewGame(Options{
		Debug:      *debug,
		Seed:       *seed,
		SellPolicy: *sellPolicy,
		Watch:      *watch,
	})
	if err != nil {
		log.Fatal(err)
	}

	err = ebiten.RunGame(game)
	game.Close()
	if err != nil {
		log.Fatal(err)
	}
}
