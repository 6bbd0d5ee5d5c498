package tty

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/Garsondee/Snake-Sense/internal/engine"
	"github.com/Garsondee/Snake-Sense/internal/scorestore"
)

func newTestApp(t *testing.T, w, h int) (*App, tcell.SimulationScreen) {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	t.Cleanup(s.Fini)
	s.SetSize(w, h)
	return New(s, scorestore.NewMemory(0), &engine.ScriptedRand{}, nil), s
}

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestBoardSize(t *testing.T) {
	if c, r := BoardSize(42, 23); c != 20 || r != 20 {
		t.Fatalf("BoardSize(42,23) = %dx%d, want 20x20", c, r)
	}
	if c, r := BoardSize(6, 4); c != 5 || r != 5 {
		t.Fatalf("tiny terminal gave %dx%d, want 5x5 minimum", c, r)
	}
}

func TestApp_EnterStartsSession(t *testing.T) {
	a, _ := newTestApp(t, 42, 23)
	if a.view != viewStart {
		t.Fatal("app should open on the start view")
	}
	a.HandleEvent(key(tcell.KeyEnter))
	if a.view != viewPlaying || !a.Engine().Running() {
		t.Fatal("Enter should start a session")
	}
	if _, w, h := a.Engine().Board(); w != 20 || h != 20 {
		t.Fatalf("board = %dx%d, want 20x20", w, h)
	}
	if a.snake[0] != (engine.Cell{X: 10, Y: 10}) {
		t.Fatalf("head = %s, want (10,10)", a.snake[0])
	}
}

func TestApp_KeysSteer(t *testing.T) {
	a, _ := newTestApp(t, 42, 23)
	a.HandleEvent(key(tcell.KeyEnter))
	a.HandleEvent(runeKey('k'))
	if a.Engine().PendingDirection() != engine.DirUp {
		t.Fatalf("pending = %s, want up", a.Engine().PendingDirection())
	}
	a.HandleEvent(key(tcell.KeyLeft))
	if a.Engine().PendingDirection() != engine.DirUp {
		t.Fatal("reverse of the committed heading must be rejected")
	}
	a.Advance(a.Engine().Speed())
	if a.snake[0] != (engine.Cell{X: 10, Y: 9}) {
		t.Fatalf("head = %s, want (10,9)", a.snake[0])
	}
}

func TestApp_EscapeEndsThenQuits(t *testing.T) {
	a, _ := newTestApp(t, 42, 23)
	a.HandleEvent(key(tcell.KeyEnter))
	if !a.HandleEvent(key(tcell.KeyEscape)) {
		t.Fatal("Escape during play should end the session, not exit")
	}
	if a.view != viewGameOver {
		t.Fatal("expected game over view")
	}
	if a.HandleEvent(runeKey('q')) {
		t.Fatal("q on the game over view should exit")
	}
}

func TestApp_DrawsSnakeAndHeader(t *testing.T) {
	a, s := newTestApp(t, 42, 23)
	a.HandleEvent(key(tcell.KeyEnter))
	a.draw()

	r, _, _, _ := s.GetContent(1+10*2, 2+10)
	if r != '█' {
		t.Fatalf("head cell rune = %q, want full block", r)
	}
	r, _, _, _ = s.GetContent(1, 0)
	if r != 'S' {
		t.Fatalf("header starts with %q, want 'S'", r)
	}
}

func TestApp_ResizeShrinksBoard(t *testing.T) {
	a, _ := newTestApp(t, 42, 23)
	a.HandleEvent(key(tcell.KeyEnter))
	a.HandleEvent(tcell.NewEventResize(22, 13))
	if _, w, h := a.Engine().Board(); w != 10 || h != 10 {
		t.Fatalf("board after resize = %dx%d, want 10x10", w, h)
	}
	a.Advance(a.Engine().Speed())
	if a.Engine().Running() {
		t.Fatal("head at x=11 is outside a 10-wide board")
	}
}

func rowText(s tcell.SimulationScreen, y, w int) string {
	var sb strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := s.GetContent(x, y)
		sb.WriteRune(r)
	}
	return sb.String()
}

func TestApp_HeaderShowsMute(t *testing.T) {
	a, s := newTestApp(t, 42, 23)
	a.HandleEvent(key(tcell.KeyEnter))
	a.draw()
	if got := rowText(s, 0, 42); !strings.Contains(got, "MUTE") {
		t.Fatalf("header %q should show MUTE without a speaker", got)
	}
}

func TestSound_MutedWithoutSpeaker(t *testing.T) {
	var nilSound *Sound
	if !nilSound.Muted() {
		t.Fatal("nil Sound should report muted")
	}
	snd, err := NewSound(false)
	if err != nil {
		t.Fatalf("NewSound(false): %v", err)
	}
	if !snd.Muted() {
		t.Fatal("disabled Sound should report muted")
	}
	snd.Toggle()
	if !snd.Muted() {
		t.Fatal("an uninitialized speaker stays muted after Toggle")
	}
	snd.Close()
	snd.Close()
	nilSound.Close()
}
