package game

import (
	"testing"

	"github.com/Garsondee/Snake-Sense/internal/engine"
)

func TestSwipeDirection(t *testing.T) {
	cases := []struct {
		dx, dy int
		want   engine.Direction
	}{
		{40, 5, engine.DirRight},
		{-40, 5, engine.DirLeft},
		{3, 50, engine.DirDown},
		{3, -50, engine.DirUp},
		{30, 30, engine.DirDown}, // tie is vertical
		{-30, -30, engine.DirUp}, // tie is vertical
		{4, -6, engine.DirNone},  // below the slop
		{0, 0, engine.DirNone},
	}
	for _, c := range cases {
		if got := SwipeDirection(c.dx, c.dy, tapSlop); got != c.want {
			t.Errorf("SwipeDirection(%d,%d) = %s, want %s", c.dx, c.dy, got, c.want)
		}
	}
}

func TestSwipeDirection_NoMinimum(t *testing.T) {
	if got := SwipeDirection(1, 0, 0); got != engine.DirRight {
		t.Fatalf("got %s", got)
	}
	if got := SwipeDirection(0, 0, 0); got != engine.DirNone {
		t.Fatalf("zero displacement gave %s", got)
	}
}

func TestSwipeTracker_Release(t *testing.T) {
	s := swipeTracker{startX: 100, startY: 100}
	if d, tap := s.release(104, 97); d != engine.DirNone || !tap {
		t.Fatalf("short release = %s tap=%v, want tap", d, tap)
	}
	if d, tap := s.release(40, 110); d != engine.DirLeft || tap {
		t.Fatalf("long release = %s tap=%v, want left", d, tap)
	}
}

func TestMeasureBoard(t *testing.T) {
	cases := []struct {
		w, h, unit   int
		wantW, wantH int
	}{
		{800, 640, 20, 800, 600},
		{815, 677, 20, 800, 620},
		{50, 50, 20, 100, 100},
		{400, 300, 10, 400, 260},
	}
	for _, c := range cases {
		w, h := MeasureBoard(c.w, c.h, c.unit)
		if w != c.wantW || h != c.wantH {
			t.Errorf("MeasureBoard(%d,%d,%d) = %dx%d, want %dx%d", c.w, c.h, c.unit, w, h, c.wantW, c.wantH)
		}
	}
}
