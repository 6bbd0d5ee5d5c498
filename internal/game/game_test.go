package game

import (
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Garsondee/Snake-Sense/internal/engine"
	"github.com/Garsondee/Snake-Sense/internal/scorestore"
)

// newTestGame builds a Game without audio on a 200×200 board.
func newTestGame(t *testing.T) *Game {
	t.Helper()
	g := &Game{
		clock:    engine.NewFrameClock(),
		unit:     20,
		outW:     200,
		outH:     200 + headerHeight,
		feed:     NewEventFeed(),
		prevKeys: make(map[ebiten.Key]bool),
	}
	g.eng = engine.New(g.clock, &engine.ScriptedRand{}, scorestore.NewMemory(4), g)
	g.boardW, g.boardH = MeasureBoard(g.outW, g.outH, g.unit)
	g.ShowStart()
	return g
}

func TestGame_StartRendersSession(t *testing.T) {
	g := newTestGame(t)
	if g.screen != screenStart {
		t.Fatalf("screen = %s, want start", g.screen)
	}
	g.start()
	if g.screen != screenPlaying {
		t.Fatalf("screen = %s, want playing", g.screen)
	}
	if len(g.snake) != engine.InitialLength || g.snake[0] != (engine.Cell{X: 100, Y: 100}) {
		t.Fatalf("rendered snake = %v", g.snake)
	}
	if _, w, h := g.eng.Board(); w != 200 || h != 200 {
		t.Fatalf("board = %dx%d", w, h)
	}
}

func TestGame_ResizeForwardedWhilePlaying(t *testing.T) {
	g := newTestGame(t)
	g.start()
	g.Layout(120, 120+headerHeight)
	g.applyBoardSize()
	if _, w, h := g.eng.Board(); w != 120 || h != 120 {
		t.Fatalf("board after resize = %dx%d, want 120x120", w, h)
	}
	if g.snake[0] != (engine.Cell{X: 100, Y: 100}) {
		t.Fatal("resize must not move the snake")
	}
}

func TestGame_GameOverScreen(t *testing.T) {
	g := newTestGame(t)
	g.start()
	g.eng.EndSession()
	if g.screen != screenGameOver || g.finalScore != 0 {
		t.Fatalf("screen=%s final=%d", g.screen, g.finalScore)
	}
	if g.eng.HighScore() != 4 {
		t.Fatalf("high score = %d, want stored 4", g.eng.HighScore())
	}
	g.start()
	if g.screen != screenPlaying || !g.eng.Running() {
		t.Fatal("restart from game over should begin a new session")
	}
}

func TestGame_FeedMirrorsLog(t *testing.T) {
	g := newTestGame(t)
	g.start()
	g.clock.Advance(g.eng.Speed())
	g.syncFeed()
	if g.feed.Len() != g.eng.Log().Len() {
		t.Fatalf("feed holds %d, log holds %d", g.feed.Len(), g.eng.Log().Len())
	}
	before := g.feed.Len()
	g.syncFeed()
	if g.feed.Len() != before {
		t.Fatal("syncFeed duplicated entries")
	}
}

func TestGame_ClockDrivesTicks(t *testing.T) {
	g := newTestGame(t)
	g.start()
	for i := 0; i < 10; i++ {
		g.clock.Advance(time.Second / 60)
	}
	if g.eng.Ticks() != 1 {
		t.Fatalf("ticks after ten frames = %d, want 1", g.eng.Ticks())
	}
}
