package game

import (
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Garsondee/Snake-Sense/internal/config"
	"github.com/Garsondee/Snake-Sense/internal/engine"
)

// headerHeight is the strip above the board holding score and high score.
const headerHeight = 40

// minBoardCells is the smallest board edge, in grid units, the sizing will
// hand to the engine. The initial three-segment snake needs room to spawn.
const minBoardCells = 5

type screenID int

const (
	screenStart screenID = iota
	screenPlaying
	screenGameOver
)

func (s screenID) String() string {
	switch s {
	case screenPlaying:
		return "playing"
	case screenGameOver:
		return "gameover"
	default:
		return "start"
	}
}

// Game is the ebiten front end. It implements ebiten.Game and serves as the
// engine's Presenter, so the engine drives screen changes and redraw state.
type Game struct {
	eng   *engine.Engine
	clock *engine.FrameClock
	unit  int

	outW, outH     int // outside size from the last Layout call
	boardW, boardH int // board measured from the outside size

	screen     screenID
	snake      []engine.Cell // last rendered state
	food       engine.Cell
	finalScore int

	autopilot bool
	showFeed  bool
	status    string // transient message under the game-over text
	statusTTL int

	feed    *EventFeed
	logSeen int
	sound   *soundBank
	swipe   swipeTracker

	prevKeys      map[ebiten.Key]bool
	prevMouseLeft bool
}

// New builds the front end around a fresh engine using cfg and store.
func New(cfg config.Config, store engine.ScoreStore) *Game {
	g := &Game{
		clock:    engine.NewFrameClock(),
		unit:     cfg.GridUnit,
		outW:     cfg.WindowWidth,
		outH:     cfg.WindowHeight,
		feed:     NewEventFeed(),
		prevKeys: make(map[ebiten.Key]bool),
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed)) // #nosec G404 -- food placement only

	simLog := engine.NewSimLog(false)
	if cfg.LogEvents {
		simLog.SetEcho(log.Default())
	}
	g.eng = engine.New(g.clock, rng, store, g, engine.WithSimLog(simLog))
	g.boardW, g.boardH = MeasureBoard(g.outW, g.outH, g.unit)
	g.sound = newSoundBank(cfg.Sound)
	g.ShowStart()
	return g
}

// Engine exposes the engine for tests and tooling.
func (g *Game) Engine() *engine.Engine { return g.eng }

// MeasureBoard returns the drawable board size for an outside area of
// outW×outH pixels: the area below the header, floored to whole grid units,
// and never smaller than minBoardCells units on either edge.
func MeasureBoard(outW, outH, unit int) (int, int) {
	if unit <= 0 {
		unit = 1
	}
	w := (outW / unit) * unit
	h := ((outH - headerHeight) / unit) * unit
	if w < minBoardCells*unit {
		w = minBoardCells * unit
	}
	if h < minBoardCells*unit {
		h = minBoardCells * unit
	}
	return w, h
}

// --- engine.Presenter ---

func (g *Game) Render(snake []engine.Cell, food engine.Cell) {
	g.snake = snake
	g.food = food
}

func (g *Game) ShowStart() {
	g.screen = screenStart
}

func (g *Game) ShowPlaying() {
	g.screen = screenPlaying
	g.status = ""
}

func (g *Game) ShowGameOver(finalScore int) {
	g.screen = screenGameOver
	g.finalScore = finalScore
	g.sound.play(soundGameOver)
}

// --- ebiten.Game ---

func (g *Game) Update() error {
	g.applyBoardSize()
	g.handleInput()

	if g.autopilot && g.eng.Running() {
		g.eng.SetPendingDirection(engine.Autopilot(g.eng))
	}
	g.clock.Advance(time.Second / time.Duration(ebiten.TPS()))

	g.syncFeed()
	if g.statusTTL > 0 {
		g.statusTTL--
		if g.statusTTL == 0 {
			g.status = ""
		}
	}
	return nil
}

// applyBoardSize re-measures the board and forwards changes to the engine.
func (g *Game) applyBoardSize() {
	w, h := MeasureBoard(g.outW, g.outH, g.unit)
	if w == g.boardW && h == g.boardH {
		return
	}
	g.boardW, g.boardH = w, h
	if g.eng.Running() {
		g.eng.Resize(w, h)
	}
}

// syncFeed mirrors new engine log entries into the on-screen feed and plays
// the matching sounds.
func (g *Game) syncFeed() {
	sl := g.eng.Log()
	for _, e := range sl.Since(g.logSeen) {
		g.feed.Add(e)
		if e.Category == "food" && e.Key == "eaten" {
			g.sound.play(soundEat)
		}
	}
	g.logSeen = sl.Len()
}

// start begins a new session on the current board.
func (g *Game) start() {
	g.ShowPlaying()
	g.eng.InitSession(g.unit, g.boardW, g.boardH)
}

func (g *Game) setStatus(msg string) {
	g.status = msg
	g.statusTTL = 3 * ebiten.TPS()
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.outW, g.outH = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}
