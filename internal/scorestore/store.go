// Package scorestore persists the single high-score value shared by all
// sessions on one machine or browser profile.
package scorestore

import "errors"

// Key is the fixed name the high score is stored under.
const Key = "snakeHighScore"

// ErrUnavailable is returned when no backing storage exists on the platform.
var ErrUnavailable = errors.New("score storage unavailable")

// Memory keeps the high score in process memory only.
type Memory struct {
	score   int
	saves   int
	loadErr error
	saveErr error
}

// NewMemory returns a store preloaded with score.
func NewMemory(score int) *Memory {
	return &Memory{score: score}
}

// FailLoad makes subsequent Load calls return err.
func (m *Memory) FailLoad(err error) { m.loadErr = err }

// FailSave makes subsequent Save calls return err without storing.
func (m *Memory) FailSave(err error) { m.saveErr = err }

func (m *Memory) Load() (int, error) {
	if m.loadErr != nil {
		return 0, m.loadErr
	}
	return m.score, nil
}

func (m *Memory) Save(score int) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.score = score
	m.saves++
	return nil
}

// Saves returns how many successful writes the store has seen.
func (m *Memory) Saves() int { return m.saves }
