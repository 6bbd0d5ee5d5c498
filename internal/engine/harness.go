package engine

import (
	"math/rand"

	"github.com/Garsondee/Snake-Sense/internal/scorestore"
)

// TestSim is a headless session harness used by tests and the batch
// reporter. It owns a FrameClock, so every tick is driven by explicit
// advanced time and runs are fully deterministic for a given seed.
type TestSim struct {
	Unit   int
	Width  int
	Height int

	Engine *Engine
	Clock  *FrameClock
	View   *RecordingPresenter
	Store  ScoreStore
	SimLog *SimLog

	rng       RandSource
	autopilot bool
}

// simOptionKind controls the pass in which an option is applied.
type simOptionKind int

const (
	simOptInfra  simOptionKind = iota // board, rng, store, log; applied before the engine exists
	simOptEngine                      // applied after the engine is built
)

// SimOption is a builder function applied to a TestSim during construction.
type SimOption struct {
	kind simOptionKind
	fn   func(*TestSim)
}

// WithBoard sets the grid unit and board size in pixels.
func WithBoard(unit, w, h int) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.Unit = unit
		ts.Width = w
		ts.Height = h
	}}
}

// WithSeed sets the RNG seed for deterministic runs.
func WithSeed(seed int64) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.rng = rand.New(rand.NewSource(seed)) // #nosec G404 -- test harness
	}}
}

// WithRand installs an explicit random source, usually a ScriptedRand.
func WithRand(r RandSource) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.rng = r
	}}
}

// WithHighScore preloads an in-memory store with score.
func WithHighScore(score int) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.Store = scorestore.NewMemory(score)
	}}
}

// WithStore uses s as the persistence backend.
func WithStore(s ScoreStore) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.Store = s
	}}
}

// WithVerbose enables per-tick verbose logging.
func WithVerbose(v bool) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.SimLog = NewSimLog(v)
	}}
}

// WithAutopilot steers with Autopilot before every step.
func WithAutopilot() SimOption {
	return SimOption{simOptEngine, func(ts *TestSim) {
		ts.autopilot = true
	}}
}

// NewTestSim constructs a TestSim from the given options. The engine is built
// idle; call Start to begin a session.
func NewTestSim(opts ...SimOption) *TestSim {
	ts := &TestSim{
		Unit:   20,
		Width:  200,
		Height: 200,
		Clock:  NewFrameClock(),
		View:   &RecordingPresenter{},
		SimLog: NewSimLog(false),
		rng:    rand.New(rand.NewSource(1)), // #nosec G404 -- test harness default
	}
	for _, o := range opts {
		if o.kind == simOptInfra {
			o.fn(ts)
		}
	}
	if ts.Store == nil {
		ts.Store = scorestore.NewMemory(0)
	}
	ts.Engine = New(ts.Clock, ts.rng, ts.Store, ts.View, WithSimLog(ts.SimLog))
	for _, o := range opts {
		if o.kind == simOptEngine {
			o.fn(ts)
		}
	}
	return ts
}

// Start begins a new session on the configured board.
func (ts *TestSim) Start() {
	ts.View.ShowPlaying()
	ts.Engine.InitSession(ts.Unit, ts.Width, ts.Height)
}

// Steer forwards a direction request to the engine.
func (ts *TestSim) Steer(d Direction) {
	ts.Engine.SetPendingDirection(d)
}

// ForceFood moves the current food to c. Tests use it to script eating.
func (ts *TestSim) ForceFood(c Cell) {
	ts.Engine.food = c
}

// FoodAhead places the food on the cell the head will enter next tick.
func (ts *TestSim) FoodAhead() {
	e := ts.Engine
	ts.ForceFood(e.snake[0].Step(e.pending, e.unit))
}

// Step advances the clock by exactly one tick interval.
func (ts *TestSim) Step() {
	if ts.autopilot && ts.Engine.Running() {
		ts.Steer(Autopilot(ts.Engine))
	}
	ts.Clock.Advance(ts.Engine.Speed())
}

// RunTicks steps n times, stopping early if the session ends.
func (ts *TestSim) RunTicks(n int) {
	for i := 0; i < n && ts.Engine.Running(); i++ {
		ts.Step()
	}
}

// RunUntilOver steps until the session ends or maxTicks steps have run.
// Returns the engine tick at which the session ended, or -1.
func (ts *TestSim) RunUntilOver(maxTicks int) int {
	for i := 0; i < maxTicks; i++ {
		if !ts.Engine.Running() {
			return ts.Engine.Ticks()
		}
		ts.Step()
	}
	if !ts.Engine.Running() {
		return ts.Engine.Ticks()
	}
	return -1
}

// RecordingPresenter is a Presenter that remembers what it was asked to show.
type RecordingPresenter struct {
	Renders    int
	Starts     int
	Playings   int
	GameOvers  int
	Screen     string
	LastSnake  []Cell
	LastFood   Cell
	FinalScore int
}

func (p *RecordingPresenter) Render(snake []Cell, food Cell) {
	p.Renders++
	p.LastSnake = snake
	p.LastFood = food
}

func (p *RecordingPresenter) ShowStart() {
	p.Starts++
	p.Screen = "start"
}

func (p *RecordingPresenter) ShowPlaying() {
	p.Playings++
	p.Screen = "playing"
}

func (p *RecordingPresenter) ShowGameOver(finalScore int) {
	p.GameOvers++
	p.Screen = "gameover"
	p.FinalScore = finalScore
}

// ScriptedRand returns Values in order, each reduced modulo n. Once the
// script runs out it defers to Fallback, or returns 0 if Fallback is nil.
type ScriptedRand struct {
	Values   []int
	Fallback RandSource
	Calls    int
}

func (r *ScriptedRand) Intn(n int) int {
	r.Calls++
	if len(r.Values) > 0 {
		v := r.Values[0]
		r.Values = r.Values[1:]
		if v < 0 {
			v = -v
		}
		return v % n
	}
	if r.Fallback != nil {
		return r.Fallback.Intn(n)
	}
	return 0
}
