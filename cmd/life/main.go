//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"gol-web/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if q, err := app.ParseQuery(app.PageQuery()); err != nil {
		log.Printf("ignoring page query: %v", err)
	} else if err := cfg.ApplyMap(q); err != nil {
		log.Fatalf("page query: %v", err)
	}

	winW, winH, ok := app.WindowSize()
	if !ok {
		winW, winH = app.DefaultWindowW, app.DefaultWindowH
	}
	eng, err := app.NewEngine(cfg, winW, winH, log.Default())
	if err != nil {
		log.Fatal(err)
	}

	game := app.New(eng, cfg, log.Default())
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("Game of Life")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
