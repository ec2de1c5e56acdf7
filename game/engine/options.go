package engine

import (
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/exp/rand"
)

// Rand is the random source used for placement and respawn
type Rand interface {
	Intn(n int) int
}

// Option configures a GameEngine
type Option func(*GameEngine)

// WithRand sets the random source
func WithRand(rng Rand) Option {
	return func(e *GameEngine) {
		if rng != nil {
			e.rng = rng
		}
	}
}

// WithSeed seeds the default random source. A zero seed is time based.
func WithSeed(seed uint64) Option {
	return func(e *GameEngine) {
		e.rng = NewRand(seed)
	}
}

// WithLogger sets the logger used for turn events
func WithLogger(log logrus.FieldLogger) Option {
	return func(e *GameEngine) {
		if log != nil {
			e.log = log
		}
	}
}

// WithHistoryLimit caps the number of turns kept in history
func WithHistoryLimit(limit int) Option {
	return func(e *GameEngine) {
		if limit > 0 {
			e.historyLimit = limit
		}
	}
}

// NewRand returns a seeded random source. A zero seed is time based.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewSource(seed))
}

func randomPosition(rng Rand) Position {
	return Position{Row: rng.Intn(Rows), Col: rng.Intn(Cols)}
}
