package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Garsondee/Snake-Sense/internal/config"
	"github.com/Garsondee/Snake-Sense/internal/game"
	"github.com/Garsondee/Snake-Sense/internal/scorestore"
)

func main() {
	cfg := config.Load()

	ebiten.SetWindowTitle("Snake")
	ebiten.SetWindowSize(cfg.WindowWidth, cfg.WindowHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(game.New(cfg, scorestore.Open(cfg.ScoreFile))); err != nil {
		log.Fatal(err)
	}
}
