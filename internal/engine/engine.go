package engine

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/Garsondee/Snake-Sense/internal/scorestore"
)

// Engine owns all mutable state of one snake session and exposes the
// lifecycle operations front ends drive: InitSession, SetPendingDirection,
// Tick, EndSession and Resize. It is not safe for concurrent use; front ends
// call it from a single loop.
type Engine struct {
	sched Scheduler
	timer Timer
	rng   RandSource
	store ScoreStore
	view  Presenter
	log   *SimLog

	unit   int
	width  int
	height int

	snake   []Cell // head first
	food    Cell
	dir     Direction // committed
	pending Direction // latched from input, committed next tick
	score   int
	high    int
	speed   time.Duration
	running bool

	sessionID string
	tick      int
	foodEaten int
	last      *SessionSummary
}

// Option configures an Engine at construction.
type Option func(*Engine)

// WithSimLog records engine events into sl instead of a private log.
func WithSimLog(sl *SimLog) Option {
	return func(e *Engine) {
		if sl != nil {
			e.log = sl
		}
	}
}

// New builds an idle engine and loads the persisted high score. A nil
// scheduler, rng, store or view is replaced by a frame clock, a time-seeded
// source, an in-memory store and a no-op presenter respectively.
func New(sched Scheduler, rng RandSource, store ScoreStore, view Presenter, opts ...Option) *Engine {
	e := &Engine{
		sched:     sched,
		rng:       rng,
		store:     store,
		view:      view,
		log:       NewSimLog(false),
		speed:     StartSpeed,
		sessionID: "--",
	}
	if e.sched == nil {
		e.sched = NewFrameClock()
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(time.Now().UnixNano())) // #nosec G404 -- game only
	}
	if e.store == nil {
		e.store = scorestore.NewMemory(0)
	}
	if e.view == nil {
		e.view = nopPresenter{}
	}
	for _, opt := range opts {
		opt(e)
	}
	e.loadHighScore()
	return e
}

func (e *Engine) loadHighScore() {
	high, err := e.store.Load()
	if err != nil {
		e.log.Add(e.tick, e.sessionID, "store", "load_failed", err.Error(), 0)
		high = 0
	}
	if high < 0 {
		high = 0
	}
	e.high = high
}

// InitSession starts a new session on a board of width×height pixels, both
// multiples of unit. Any previously armed timer is cancelled first.
func (e *Engine) InitSession(unit, width, height int) {
	e.cancelTimer()

	e.unit = unit
	e.width = width
	e.height = height
	e.sessionID = newSessionID()
	e.tick = 0
	e.foodEaten = 0
	e.last = nil

	cx := (width / (2 * unit)) * unit
	cy := (height / (2 * unit)) * unit
	e.snake = make([]Cell, 0, 64)
	for i := 0; i < InitialLength; i++ {
		e.snake = append(e.snake, Cell{X: cx - i*unit, Y: cy})
	}

	e.dir = DirRight
	e.pending = DirRight
	e.score = 0
	e.speed = StartSpeed

	food, ok := placeFood(e.rng, e.snake, unit, width, height)
	e.food = food
	e.running = true
	e.log.Add(e.tick, e.sessionID, "session", "start",
		fmt.Sprintf("board=%dx%d unit=%d", width, height, unit), float64(unit))
	if !ok {
		e.terminate(CauseBoardFull)
		return
	}

	e.log.Add(e.tick, e.sessionID, "food", "placed", food.String(), 0)
	e.timer = e.sched.Every(e.speed, e.Tick)
	e.view.Render(e.Snake(), e.food)
}

// SetPendingDirection latches d for the next tick. Requests while idle and
// reversals of the committed direction are ignored; later requests before
// the next tick overwrite earlier ones.
func (e *Engine) SetPendingDirection(d Direction) {
	if !e.running {
		e.log.AddVerbose(e.tick, e.sessionID, "input", "ignored_idle", d.String(), 0)
		return
	}
	if d == DirNone {
		return
	}
	if d == e.dir.Opposite() {
		e.log.Add(e.tick, e.sessionID, "input", "rejected_reverse",
			fmt.Sprintf("%s while %s", d, e.dir), 0)
		return
	}
	e.pending = d
	e.log.AddVerbose(e.tick, e.sessionID, "input", "latched", d.String(), 0)
}

// Tick advances the simulation by one step. It is the timer callback.
func (e *Engine) Tick() {
	if !e.running {
		return
	}
	e.tick++

	e.dir = e.pending
	head := e.snake[0].Step(e.dir, e.unit)
	eating := head == e.food

	if hit := e.checkCollision(head, eating); hit != NoCollision {
		e.log.Add(e.tick, e.sessionID, "move", "collision",
			fmt.Sprintf("%s at %s", hit, head), 0)
		if hit == WallCollision {
			e.terminate(CauseWall)
		} else {
			e.terminate(CauseSelf)
		}
		return
	}

	e.snake = append(e.snake, Cell{})
	copy(e.snake[1:], e.snake)
	e.snake[0] = head
	e.log.AddVerbose(e.tick, e.sessionID, "move", "head", head.String(), float64(len(e.snake)))

	if eating {
		e.score++
		e.foodEaten++
		e.log.Add(e.tick, e.sessionID, "food", "eaten", head.String(), float64(e.score))

		food, ok := placeFood(e.rng, e.snake, e.unit, e.width, e.height)
		if !ok {
			e.view.Render(e.Snake(), e.food)
			e.terminate(CauseBoardFull)
			return
		}
		e.food = food
		e.log.Add(e.tick, e.sessionID, "food", "placed", food.String(), 0)

		if e.score%SpeedUpEvery == 0 && e.speed > SpeedFloor {
			e.speedUp()
		}
	} else {
		e.snake = e.snake[:len(e.snake)-1]
	}

	e.view.Render(e.Snake(), e.food)
}

// checkCollision tests the prospective head before it joins the body. The
// tail is excluded only when it will actually vacate this tick, that is when
// the head is not about to eat.
func (e *Engine) checkCollision(head Cell, eating bool) Collision {
	if head.X < 0 || head.Y < 0 || head.X >= e.width || head.Y >= e.height {
		return WallCollision
	}
	body := e.snake
	if !eating {
		body = body[:len(body)-1]
	}
	for _, c := range body {
		if c == head {
			return SelfCollision
		}
	}
	return NoCollision
}

func (e *Engine) speedUp() {
	old := e.speed
	e.speed -= SpeedStep
	if e.speed < SpeedFloor {
		e.speed = SpeedFloor
	}
	e.cancelTimer()
	e.timer = e.sched.Every(e.speed, e.Tick)
	e.log.Add(e.tick, e.sessionID, "speed", "change",
		fmt.Sprintf("%v → %v", old, e.speed), float64(e.speed.Milliseconds()))
}

// EndSession terminates a running session as abandoned. No-op when idle.
func (e *Engine) EndSession() {
	e.terminate(CauseAbandoned)
}

func (e *Engine) terminate(cause EndCause) {
	if !e.running {
		return
	}
	e.running = false
	e.cancelTimer()

	newHigh := false
	if e.score > e.high {
		e.high = e.score
		newHigh = true
		e.log.Add(e.tick, e.sessionID, "session", "high_score", fmt.Sprintf("%d", e.high), float64(e.high))
		if err := e.store.Save(e.high); err != nil {
			e.log.Add(e.tick, e.sessionID, "store", "save_failed", err.Error(), float64(e.high))
		} else {
			e.log.Add(e.tick, e.sessionID, "store", "saved", fmt.Sprintf("%d", e.high), float64(e.high))
		}
	}

	e.last = &SessionSummary{
		ID:         e.sessionID,
		Score:      e.score,
		Length:     len(e.snake),
		Ticks:      e.tick,
		FoodEaten:  e.foodEaten,
		FinalSpeed: e.speed,
		Cause:      cause,
		NewHigh:    newHigh,
		Grade:      ScoreLetterGrade(e.score),
	}
	e.log.Add(e.tick, e.sessionID, "session", "end",
		fmt.Sprintf("%s score=%d", cause, e.score), float64(e.score))
	e.view.ShowGameOver(e.score)
}

// Resize updates the board bounds used by the collision check. The snake and
// food are not moved.
func (e *Engine) Resize(width, height int) {
	if width == e.width && height == e.height {
		return
	}
	e.width = width
	e.height = height
	e.log.Add(e.tick, e.sessionID, "board", "resize", fmt.Sprintf("%dx%d", width, height), 0)
}

func (e *Engine) cancelTimer() {
	if e.timer != nil {
		e.timer.Stop()
		e.timer = nil
	}
}

func newSessionID() string {
	return uuid.NewString()[:8]
}

// --- Accessors ---

// Snake returns a copy of the body, head first.
func (e *Engine) Snake() []Cell {
	out := make([]Cell, len(e.snake))
	copy(out, e.snake)
	return out
}

func (e *Engine) Food() Cell                  { return e.food }
func (e *Engine) Score() int                  { return e.score }
func (e *Engine) HighScore() int              { return e.high }
func (e *Engine) Speed() time.Duration        { return e.speed }
func (e *Engine) Running() bool               { return e.running }
func (e *Engine) Direction() Direction        { return e.dir }
func (e *Engine) PendingDirection() Direction { return e.pending }
func (e *Engine) Ticks() int                  { return e.tick }
func (e *Engine) SessionID() string           { return e.sessionID }
func (e *Engine) Log() *SimLog                { return e.log }

// Board returns the grid unit and board size in pixels.
func (e *Engine) Board() (unit, width, height int) {
	return e.unit, e.width, e.height
}

// LastSummary returns the summary of the most recently ended session.
func (e *Engine) LastSummary() (SessionSummary, bool) {
	if e.last == nil {
		return SessionSummary{}, false
	}
	return *e.last, true
}
