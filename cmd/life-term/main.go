// Command life-term runs the Game of Life engine in a terminal.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"

	"lifegrid/internal/config"
	"lifegrid/internal/engine"
	"lifegrid/internal/term"
)

func main() {
	cfg, err := config.Parse(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
	renderer, err := cfg.Renderer()
	if err != nil {
		log.Fatal(err)
	}
	// Grid lines would cover every pixel at one pixel per cell.
	renderer.ShowGrid = false

	ec := cfg.Engine()
	ec.CellSize = term.CellSize
	eng := engine.New(ec)
	if cfg.Soup.Density > 0 {
		eng.Seed(cfg.Soup.Seed, cfg.SoupRect(), cfg.Soup.Density)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("creating screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("initializing screen: %v", err)
	}
	defer screen.Fini()

	w, h := screen.Size()
	eng.CenterOn(0, 0, float64(w), float64(2*(h-1)))
	term.New(screen, eng, renderer).Run()
}
