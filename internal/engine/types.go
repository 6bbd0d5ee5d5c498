package engine

import (
	"fmt"
	"time"
)

// Speed ramp. The tick interval only ever steps down, at fixed score thresholds.
const (
	StartSpeed   = 150 * time.Millisecond
	SpeedStep    = 10 * time.Millisecond
	SpeedFloor   = 70 * time.Millisecond
	SpeedUpEvery = 5 // food eaten between speed steps

	InitialLength = 3
)

// Cell is a grid-aligned pixel coordinate (multiples of the grid unit).
type Cell struct {
	X, Y int
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Direction is one of the four movement headings. The zero value means
// "no direction" and is never committed.
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "none"
	}
}

// Opposite returns the 180° reverse of d.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	default:
		return DirNone
	}
}

// Delta returns the unit step for d in grid cells.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// Step moves c by one grid unit in direction d.
func (c Cell) Step(d Direction, unit int) Cell {
	dx, dy := d.Delta()
	return Cell{X: c.X + dx*unit, Y: c.Y + dy*unit}
}

// Collision classifies the result of testing a prospective head cell.
type Collision int

const (
	NoCollision Collision = iota
	WallCollision
	SelfCollision
)

func (c Collision) String() string {
	switch c {
	case WallCollision:
		return "wall"
	case SelfCollision:
		return "self"
	default:
		return "none"
	}
}

// EndCause records why a session terminated.
type EndCause int

const (
	CauseNone EndCause = iota
	CauseWall
	CauseSelf
	CauseBoardFull
	CauseAbandoned
)

func (c EndCause) String() string {
	switch c {
	case CauseWall:
		return "wall"
	case CauseSelf:
		return "self"
	case CauseBoardFull:
		return "board_full"
	case CauseAbandoned:
		return "abandoned"
	default:
		return "none"
	}
}

// RandSource is the random capability used for food placement.
// *math/rand.Rand satisfies it.
type RandSource interface {
	Intn(n int) int
}

// ScoreStore persists the single high-score scalar between sessions.
type ScoreStore interface {
	Load() (int, error)
	Save(score int) error
}

// Presenter is the presentation collaborator the engine drives.
type Presenter interface {
	Render(snake []Cell, food Cell)
	ShowStart()
	ShowPlaying()
	ShowGameOver(finalScore int)
}

type nopPresenter struct{}

func (nopPresenter) Render([]Cell, Cell) {}
func (nopPresenter) ShowStart()          {}
func (nopPresenter) ShowPlaying()        {}
func (nopPresenter) ShowGameOver(int)    {}
