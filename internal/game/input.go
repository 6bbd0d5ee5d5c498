package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Garsondee/Snake-Sense/internal/engine"
)

// directionKeys maps arrow keys and WASD to headings.
var directionKeys = []struct {
	key ebiten.Key
	dir engine.Direction
}{
	{ebiten.KeyArrowUp, engine.DirUp},
	{ebiten.KeyArrowDown, engine.DirDown},
	{ebiten.KeyArrowLeft, engine.DirLeft},
	{ebiten.KeyArrowRight, engine.DirRight},
	{ebiten.KeyW, engine.DirUp},
	{ebiten.KeyS, engine.DirDown},
	{ebiten.KeyA, engine.DirLeft},
	{ebiten.KeyD, engine.DirRight},
}

// commandKeys are edge-triggered keys outside the direction set.
var commandKeys = []ebiten.Key{
	ebiten.KeyEnter, ebiten.KeySpace, ebiten.KeyEscape,
	ebiten.KeyP, ebiten.KeyM, ebiten.KeyC, ebiten.KeyL,
}

func (g *Game) handleInput() {
	currentKeys := map[ebiten.Key]bool{}
	pressed := func(k ebiten.Key) bool {
		currentKeys[k] = ebiten.IsKeyPressed(k)
		return currentKeys[k] && !g.prevKeys[k]
	}

	var dirs []engine.Direction
	for _, dk := range directionKeys {
		if pressed(dk.key) {
			dirs = append(dirs, dk.dir)
		}
	}
	cmds := map[ebiten.Key]bool{}
	for _, k := range commandKeys {
		cmds[k] = pressed(k)
	}
	g.prevKeys = currentKeys

	clicked := false
	mouseLeft := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	if mouseLeft && !g.prevMouseLeft {
		clicked = true
	}
	g.prevMouseLeft = mouseLeft

	swipeDir, tapped := g.swipe.update()

	// M and L work on every screen.
	if cmds[ebiten.KeyM] {
		g.sound.toggle()
	}
	if cmds[ebiten.KeyL] {
		g.showFeed = !g.showFeed
	}

	switch g.screen {
	case screenStart, screenGameOver:
		if cmds[ebiten.KeyC] && g.screen == screenGameOver {
			g.copyResult()
		}
		if cmds[ebiten.KeyEnter] || cmds[ebiten.KeySpace] || clicked || tapped {
			g.start()
		}
	case screenPlaying:
		for _, d := range dirs {
			g.eng.SetPendingDirection(d)
		}
		if swipeDir != engine.DirNone {
			g.eng.SetPendingDirection(swipeDir)
		}
		if cmds[ebiten.KeyP] {
			g.autopilot = !g.autopilot
			state := "off"
			if g.autopilot {
				state = "on"
			}
			g.setStatus("autopilot " + state)
		}
		if cmds[ebiten.KeyEscape] {
			g.eng.EndSession()
		}
	}
}

// copyResult puts the last session's result line on the clipboard.
func (g *Game) copyResult() {
	sum, ok := g.eng.LastSummary()
	if !ok {
		return
	}
	if err := setClipboardText(sum.ResultLine(g.eng.HighScore())); err != nil {
		log.Printf("clipboard: %v", err)
		g.setStatus("copy failed")
		return
	}
	g.setStatus("result copied")
}
