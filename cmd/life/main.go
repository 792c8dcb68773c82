//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"lifegrid/internal/app"
	"lifegrid/internal/config"
	"lifegrid/internal/engine"

	"github.com/hajimehoshi/ebiten/v2"
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

	eng := engine.New(cfg.Engine())
	if cfg.Soup.Density > 0 {
		n := eng.Seed(cfg.Soup.Seed, cfg.SoupRect(), cfg.Soup.Density)
		log.Printf("seeded %d cells (seed=%d density=%.2f)", n, cfg.Soup.Seed, cfg.Soup.Density)
	}
	eng.CenterOn(0, 0, float64(cfg.Window.Width), float64(cfg.Window.Height))

	game := app.New(eng, renderer)

	ebiten.SetWindowTitle("lifegrid")
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(ebiten.SyncWithFPS)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
