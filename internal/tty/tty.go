// Package tty is a terminal front end for the snake engine. Each board cell
// is drawn two columns wide so the grid looks roughly square.
package tty

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/Garsondee/Snake-Sense/internal/engine"
)

const frameInterval = 16 * time.Millisecond // ~60 FPS

type view int

const (
	viewStart view = iota
	viewPlaying
	viewGameOver
)

var (
	styleDefault = tcell.StyleDefault
	styleHead    = tcell.StyleDefault.Foreground(tcell.NewHexColor(0x2ecc71))
	styleBody    = tcell.StyleDefault.Foreground(tcell.NewHexColor(0x27ae60))
	styleFood    = tcell.StyleDefault.Foreground(tcell.NewHexColor(0xe74c3c))
	styleBorder  = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleTitle   = tcell.StyleDefault.Foreground(tcell.NewHexColor(0x2ecc71)).Bold(true)
	styleMuted   = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

// App drives one engine from a tcell screen. It is the engine's Presenter.
type App struct {
	screen tcell.Screen
	eng    *engine.Engine
	clock  *engine.FrameClock
	sound  *Sound

	width, height int // terminal size
	view          view
	snake         []engine.Cell
	food          engine.Cell
	finalScore    int
	autopilot     bool
	logSeen       int
}

// New wires an App around an initialized screen. rng may be nil for a
// time-seeded source.
func New(screen tcell.Screen, store engine.ScoreStore, rng engine.RandSource, sound *Sound, opts ...engine.Option) *App {
	a := &App{
		screen: screen,
		clock:  engine.NewFrameClock(),
		sound:  sound,
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano())) // #nosec G404 -- food placement only
	}
	a.eng = engine.New(a.clock, rng, store, a, opts...)
	a.width, a.height = screen.Size()
	a.ShowStart()
	return a
}

// Engine exposes the engine for tests.
func (a *App) Engine() *engine.Engine { return a.eng }

// BoardSize returns the board, in cells, that fits a terminal of w×h: one
// header row, a one-cell border, two columns per cell, at least 5×5.
func BoardSize(w, h int) (int, int) {
	cols := (w - 2) / 2
	rows := h - 3
	if cols < 5 {
		cols = 5
	}
	if rows < 5 {
		rows = 5
	}
	return cols, rows
}

// --- engine.Presenter ---

func (a *App) Render(snake []engine.Cell, food engine.Cell) {
	a.snake = snake
	a.food = food
}

func (a *App) ShowStart() { a.view = viewStart }

func (a *App) ShowPlaying() { a.view = viewPlaying }

func (a *App) ShowGameOver(finalScore int) {
	a.view = viewGameOver
	a.finalScore = finalScore
	a.sound.GameOver()
}

// Run polls events and advances the engine until the user quits.
func (a *App) Run() {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	last := time.Now()
	a.draw()
	for {
		select {
		case ev, ok := <-eventChan:
			if !ok || !a.HandleEvent(ev) {
				return
			}
		case now := <-ticker.C:
			a.Advance(now.Sub(last))
			last = now
			a.draw()
		}
	}
}

// Advance runs the engine clock forward by dt and reacts to new events.
func (a *App) Advance(dt time.Duration) {
	if a.autopilot && a.eng.Running() {
		a.eng.SetPendingDirection(engine.Autopilot(a.eng))
	}
	a.clock.Advance(dt)

	sl := a.eng.Log()
	for _, e := range sl.Since(a.logSeen) {
		if e.Category == "food" && e.Key == "eaten" {
			a.sound.Eat()
		}
	}
	a.logSeen = sl.Len()
}

// HandleEvent applies one terminal event. It returns false when the app
// should exit.
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.handleKey(ev)
	case *tcell.EventResize:
		a.width, a.height = ev.Size()
		if a.eng.Running() {
			cols, rows := BoardSize(a.width, a.height)
			a.eng.Resize(cols, rows)
		}
		a.screen.Sync()
	}
	return true
}

func (a *App) handleKey(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyCtrlC {
		return false
	}

	if d := keyDirection(ev); d != engine.DirNone {
		if a.view == viewPlaying {
			a.eng.SetPendingDirection(d)
		}
		return true
	}

	switch a.view {
	case viewStart, viewGameOver:
		switch {
		case ev.Key() == tcell.KeyEnter, ev.Key() == tcell.KeyRune && ev.Rune() == ' ':
			a.start()
		case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
			return false
		}
	case viewPlaying:
		switch {
		case ev.Key() == tcell.KeyEscape:
			a.eng.EndSession()
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'p':
			a.autopilot = !a.autopilot
		}
	}
	if ev.Key() == tcell.KeyRune && ev.Rune() == 'm' {
		a.sound.Toggle()
	}
	return true
}

// keyDirection maps arrows, WASD and hjkl to headings.
func keyDirection(ev *tcell.EventKey) engine.Direction {
	switch ev.Key() {
	case tcell.KeyUp:
		return engine.DirUp
	case tcell.KeyDown:
		return engine.DirDown
	case tcell.KeyLeft:
		return engine.DirLeft
	case tcell.KeyRight:
		return engine.DirRight
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'k':
			return engine.DirUp
		case 's', 'j':
			return engine.DirDown
		case 'a', 'h':
			return engine.DirLeft
		case 'd', 'l':
			return engine.DirRight
		}
	}
	return engine.DirNone
}

func (a *App) start() {
	a.ShowPlaying()
	cols, rows := BoardSize(a.width, a.height)
	a.eng.InitSession(1, cols, rows)
}

// --- drawing ---

func (a *App) draw() {
	a.screen.Clear()
	switch a.view {
	case viewStart:
		a.drawStart()
	case viewPlaying:
		a.drawHeader()
		a.drawBoard()
	case viewGameOver:
		a.drawHeader()
		a.drawBoard()
		a.drawGameOver()
	}
	a.screen.Show()
}

func (a *App) drawString(x, y int, s string, style tcell.Style) {
	for i, r := range s {
		a.screen.SetContent(x+i, y, r, nil, style)
	}
}

func (a *App) drawCentered(y int, s string, style tcell.Style) {
	a.drawString((a.width-len(s))/2, y, s, style)
}

func (a *App) drawHeader() {
	score := fmt.Sprintf("Score: %d", a.eng.Score())
	a.drawString(1, 0, score, styleDefault)
	if a.sound.Muted() {
		a.drawString(len(score)+3, 0, "MUTE", styleMuted)
	}
	high := fmt.Sprintf("High Score: %d", a.eng.HighScore())
	a.drawString(a.width-len(high)-1, 0, high, styleDefault)
	if a.autopilot {
		a.drawCentered(0, "AUTO", styleMuted)
	}
}

func (a *App) drawBoard() {
	_, cols, rows := a.eng.Board()
	right := 1 + cols*2
	bottom := 2 + rows
	for x := 0; x <= right; x++ {
		a.screen.SetContent(x, 1, '─', nil, styleBorder)
		a.screen.SetContent(x, bottom, '─', nil, styleBorder)
	}
	for y := 1; y <= bottom; y++ {
		a.screen.SetContent(0, y, '│', nil, styleBorder)
		a.screen.SetContent(right, y, '│', nil, styleBorder)
	}
	a.screen.SetContent(0, 1, '┌', nil, styleBorder)
	a.screen.SetContent(right, 1, '┐', nil, styleBorder)
	a.screen.SetContent(0, bottom, '└', nil, styleBorder)
	a.screen.SetContent(right, bottom, '┘', nil, styleBorder)

	a.setCell(a.food, '●', ' ', styleFood)
	for i := len(a.snake) - 1; i >= 0; i-- {
		style := styleBody
		if i == 0 {
			style = styleHead
		}
		a.setCell(a.snake[i], '█', '█', style)
	}
}

// setCell draws one board cell as two terminal columns.
func (a *App) setCell(c engine.Cell, left, right rune, style tcell.Style) {
	x, y := 1+c.X*2, 2+c.Y
	a.screen.SetContent(x, y, left, nil, style)
	a.screen.SetContent(x+1, y, right, nil, style)
}

func (a *App) drawStart() {
	mid := a.height / 2
	a.drawCentered(mid-4, "S N A K E", styleTitle)
	a.drawCentered(mid-2, fmt.Sprintf("High Score: %d", a.eng.HighScore()), styleDefault)
	a.drawCentered(mid, "Enter or Space to start, q to quit", styleDefault)
	a.drawCentered(mid+2, "arrows/WASD/hjkl steer  p autopilot  m mute  Esc end", styleMuted)
}

func (a *App) drawGameOver() {
	mid := a.height / 2
	a.drawCentered(mid-2, "GAME OVER", styleFood.Bold(true))
	a.drawCentered(mid, fmt.Sprintf("Your Score: %d", a.finalScore), styleDefault)
	if sum, ok := a.eng.LastSummary(); ok {
		a.drawCentered(mid+1, fmt.Sprintf("grade %s  length %d  %s", sum.Grade, sum.Length, sum.Cause), styleMuted)
	}
	a.drawCentered(mid+3, "Enter to play again, q to quit", styleDefault)
}
