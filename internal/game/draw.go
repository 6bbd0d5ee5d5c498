package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Garsondee/Snake-Sense/internal/engine"
)

var (
	colorBackground = color.RGBA{R: 44, G: 62, B: 80, A: 255}
	colorBoard      = color.RGBA{R: 17, G: 17, B: 17, A: 255}
	colorHeader     = color.RGBA{R: 34, G: 49, B: 63, A: 255}
	colorHead       = color.RGBA{R: 0x2e, G: 0xcc, B: 0x71, A: 255}
	colorBody       = color.RGBA{R: 0x27, G: 0xae, B: 0x60, A: 255}
	colorOutline    = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	colorFood       = color.RGBA{R: 0xe7, G: 0x4c, B: 0x3c, A: 255}
)

// boardOrigin returns the screen offset of the board's top-left corner.
func (g *Game) boardOrigin() (int, int) {
	x := (g.outW - g.boardW) / 2
	if x < 0 {
		x = 0
	}
	return x, headerHeight
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	switch g.screen {
	case screenStart:
		g.drawStart(screen)
	case screenPlaying:
		g.drawHeader(screen)
		g.drawBoard(screen)
	case screenGameOver:
		g.drawHeader(screen)
		g.drawBoard(screen)
		g.drawGameOver(screen)
	}

	if g.showFeed {
		g.feed.Draw(screen, g.outW-feedPanelWidth, headerHeight, g.outH-headerHeight)
	}
}

func (g *Game) drawHeader(screen *ebiten.Image) {
	vector.FillRect(screen, 0, 0, float32(g.outW), headerHeight, colorHeader, false)
	drawText(screen, fmt.Sprintf("Score: %d", g.eng.Score()), 12, 7, 2, colorText)
	drawTextRight(screen, fmt.Sprintf("High Score: %d", g.eng.HighScore()), g.outW-12, 7, 2, colorText)

	var tags []string
	if g.autopilot {
		tags = append(tags, "AUTO")
	}
	if g.sound.muted() {
		tags = append(tags, "MUTE")
	}
	if len(tags) > 0 {
		drawTextCentered(screen, fmt.Sprint(tags), g.outW/2, 14, 1, colorMuted)
	}
}

func (g *Game) drawBoard(screen *ebiten.Image) {
	ox, oy := g.boardOrigin()
	fx, fy := float32(ox), float32(oy)
	vector.FillRect(screen, fx, fy, float32(g.boardW), float32(g.boardH), colorBoard, false)

	u := float32(g.unit)
	for i, c := range g.snake {
		clr := colorBody
		if i == 0 {
			clr = colorHead
		}
		x := fx + float32(c.X)
		y := fy + float32(c.Y)
		vector.FillRect(screen, x, y, u, u, clr, false)
		vector.StrokeRect(screen, x, y, u, u, 1, colorOutline, false)
	}

	r := u/2 - 2
	if r < 1 {
		r = 1
	}
	vector.FillCircle(screen, fx+float32(g.food.X)+u/2, fy+float32(g.food.Y)+u/2, r, colorFood, true)
}

func (g *Game) drawStart(screen *ebiten.Image) {
	cx := g.outW / 2
	cy := g.outH / 2
	drawTextCentered(screen, "SNAKE", cx, cy-110, 6, colorAccent)
	drawTextCentered(screen, fmt.Sprintf("High Score: %d", g.eng.HighScore()), cx, cy-20, 2, colorText)
	drawTextCentered(screen, "Press Enter, click or tap to start", cx, cy+30, 2, colorText)
	drawTextCentered(screen, "Arrows/WASD or swipe to steer", cx, cy+70, 1, colorMuted)
	drawTextCentered(screen, "P autopilot   M mute   L events   Esc quit", cx, cy+90, 1, colorMuted)
}

func (g *Game) drawGameOver(screen *ebiten.Image) {
	vector.FillRect(screen, 0, headerHeight, float32(g.outW), float32(g.outH-headerHeight),
		color.RGBA{R: 0, G: 0, B: 0, A: 170}, false)

	cx := g.outW / 2
	cy := g.outH / 2
	drawTextCentered(screen, "GAME OVER", cx, cy-90, 4, colorFood)
	drawTextCentered(screen, fmt.Sprintf("Your Score: %d", g.finalScore), cx, cy-20, 2, colorText)
	if sum, ok := g.eng.LastSummary(); ok {
		line := fmt.Sprintf("grade %s   length %d   %s", sum.Grade, sum.Length, causeText(sum.Cause))
		drawTextCentered(screen, line, cx, cy+12, 1, colorMuted)
		if sum.NewHigh {
			drawTextCentered(screen, "New high score!", cx, cy+30, 1, colorAccent)
		}
	}
	drawTextCentered(screen, "Enter, click or tap to play again   C copy result", cx, cy+60, 1, colorText)
	if g.status != "" {
		drawTextCentered(screen, g.status, cx, cy+80, 1, colorAccent)
	}
}

func causeText(c engine.EndCause) string {
	switch c {
	case engine.CauseWall:
		return "hit the wall"
	case engine.CauseSelf:
		return "bit itself"
	case engine.CauseBoardFull:
		return "filled the board"
	case engine.CauseAbandoned:
		return "quit"
	}
	return ""
}
