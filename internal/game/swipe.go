package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/Garsondee/Snake-Sense/internal/engine"
)

// tapSlop is the largest movement, in pixels, still treated as a tap.
const tapSlop = 10

// SwipeDirection classifies a touch displacement by its larger axis. A tie
// counts as vertical. Movements shorter than minDist on both axes yield
// DirNone.
func SwipeDirection(dx, dy, minDist int) engine.Direction {
	ax, ay := abs(dx), abs(dy)
	if ax < minDist && ay < minDist {
		return engine.DirNone
	}
	if ax > ay {
		if dx > 0 {
			return engine.DirRight
		}
		return engine.DirLeft
	}
	switch {
	case dy > 0:
		return engine.DirDown
	case dy < 0:
		return engine.DirUp
	}
	return engine.DirNone
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// swipeTracker follows one touch from press to release.
type swipeTracker struct {
	id             ebiten.TouchID
	active         bool
	startX, startY int
	lastX, lastY   int
}

// update polls touch state once per frame. On release it reports either a
// swipe direction or a tap.
func (s *swipeTracker) update() (dir engine.Direction, tapped bool) {
	if !s.active {
		ids := inpututil.AppendJustPressedTouchIDs(nil)
		if len(ids) == 0 {
			return engine.DirNone, false
		}
		s.id = ids[0]
		s.active = true
		s.startX, s.startY = ebiten.TouchPosition(s.id)
		s.lastX, s.lastY = s.startX, s.startY
		return engine.DirNone, false
	}

	if inpututil.IsTouchJustReleased(s.id) {
		s.active = false
		return s.release(s.lastX, s.lastY)
	}
	s.lastX, s.lastY = ebiten.TouchPosition(s.id)
	return engine.DirNone, false
}

// release ends the gesture at (x, y).
func (s *swipeTracker) release(x, y int) (engine.Direction, bool) {
	d := SwipeDirection(x-s.startX, y-s.startY, tapSlop)
	return d, d == engine.DirNone
}
