//go:build ebiten

package main

import (
	"errors"
	"flag"
	"io"
	"log"
	"os"

	"heightmapper/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Scale = 2
	cfg.SetField("w", "385")
	cfg.SetField("h", "385")
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	logger := log.New(io.Discard, "", 0)
	if cfg.Verbose {
		logger = log.New(os.Stderr, "heightview: ", log.Ltime)
	}

	game, err := app.New(cfg, logger)
	if err != nil {
		log.Fatalf("heightview: %v", err)
	}
	size := game.Size()

	ebiten.SetWindowTitle("heightview")
	ebiten.SetWindowSize(size.W*cfg.Scale+app.PanelWidth, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
