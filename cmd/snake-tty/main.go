package main

import (
	"fmt"
	"log"
	"math/rand"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/Garsondee/Snake-Sense/internal/config"
	"github.com/Garsondee/Snake-Sense/internal/engine"
	"github.com/Garsondee/Snake-Sense/internal/scorestore"
	"github.com/Garsondee/Snake-Sense/internal/tty"
)

func main() {
	cfg := config.Load()

	// The terminal owns stdout once the screen starts.
	var opts []engine.Option
	if cfg.LogEvents {
		f, err := os.OpenFile("snake-tty.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open event log: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		sl := engine.NewSimLog(false)
		sl.SetEcho(log.New(f, "", log.LstdFlags))
		opts = append(opts, engine.WithSimLog(sl))
	}

	var rng engine.RandSource
	if cfg.Seed != 0 {
		rng = rand.New(rand.NewSource(cfg.Seed)) // #nosec G404 -- food placement only
	}

	sound, err := tty.NewSound(cfg.Sound)
	if err != nil {
		// Non-fatal, game can run without sound
		log.Printf("Audio initialization failed: %v", err)
	}
	defer sound.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		sound.Close()
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		sound.Close()
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	app := tty.New(screen, scorestore.Open(cfg.ScoreFile), rng, sound, opts...)
	app.Run()
}
