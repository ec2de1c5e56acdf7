package engine

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/wricardo/monster-chase/logger"
)

// GameEngine owns the grid, both tokens and the score of one game
type GameEngine struct {
	grid    Grid
	monster Position
	target  Position
	score   int
	phase   Phase

	turns        int
	history      []TurnResult
	historyLimit int

	rng Rand
	log logrus.FieldLogger
}

func newGameEngine(opts []Option) *GameEngine {
	e := &GameEngine{
		phase:        Initializing,
		historyLimit: DefaultHistoryLimit,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = NewRand(0)
	}
	if e.log == nil {
		e.log = logger.Discard()
	}
	return e
}

// NewEngine creates a game with the monster and target at the given cells
func NewEngine(monster, target Position, opts ...Option) (*GameEngine, error) {
	e := newGameEngine(opts)
	if err := e.place(monster, target); err != nil {
		return nil, err
	}
	return e, nil
}

// NewRandomEngine creates a game with both tokens drawn uniformly over the
// grid. Unlike two independent draws, the target is redrawn while it lands on
// the monster, so a new game always has exactly one Monster and one Target
// cell. The start distribution is uniform over distinct pairs.
func NewRandomEngine(opts ...Option) (*GameEngine, error) {
	e := newGameEngine(opts)

	monster := randomPosition(e.rng)
	target := randomPosition(e.rng)
	for target == monster {
		target = randomPosition(e.rng)
	}

	if err := e.place(monster, target); err != nil {
		return nil, err
	}
	return e, nil
}

func (e *GameEngine) place(monster, target Position) error {
	if !monster.InBounds() || !target.InBounds() {
		return fmt.Errorf("%w: monster %s and target %s must lie inside the %dx%d grid",
			ErrOutOfBounds, monster, target, Rows, Cols)
	}
	if monster == target {
		return fmt.Errorf("%w: both at %s", ErrPositionsOverlap, monster)
	}

	e.monster = monster
	e.target = target
	e.grid.set(monster, Monster)
	e.grid.set(target, Target)
	e.phase = AwaitingInput

	e.log.WithFields(logrus.Fields{
		"monster": monster.String(),
		"target":  target.String(),
	}).Debug("game initialized")
	return nil
}

// Grid returns a copy of the grid
func (e *GameEngine) Grid() Grid {
	return e.grid
}

// Monster returns the current monster position
func (e *GameEngine) Monster() Position {
	return e.monster
}

// Target returns the current target position
func (e *GameEngine) Target() Position {
	return e.target
}

// Score returns the number of captures so far
func (e *GameEngine) Score() int {
	return e.score
}

// Phase returns the current phase of the turn cycle
func (e *GameEngine) Phase() Phase {
	return e.phase
}

// IsGameOver returns whether the game has ended
func (e *GameEngine) IsGameOver() bool {
	return e.phase == GameOver
}

// History returns the resolved turns, oldest first
func (e *GameEngine) History() []TurnResult {
	out := make([]TurnResult, len(e.history))
	copy(out, e.history)
	return out
}

// LastTurn returns the most recent turn, or nil if none resolved yet
func (e *GameEngine) LastTurn() *TurnResult {
	if len(e.history) == 0 {
		return nil
	}
	last := e.history[len(e.history)-1]
	return &last
}

// Board renders the grid into glyphs. A hidden board shows every cell as
// Empty. The score is always included.
func (e *GameEngine) Board(hidden bool, theme GlyphTheme) Board {
	rows := make([][]string, Rows)
	for y := range e.grid {
		rows[y] = make([]string, Cols)
		for x, cell := range e.grid[y] {
			if hidden {
				cell = Empty
			}
			rows[y][x] = Glyph(cell, theme)
		}
	}

	return Board{
		Rows:   rows,
		Score:  e.score,
		Hidden: hidden,
		Phase:  e.phase,
	}
}

// ResolveTurn compares the monster with the target after a path was applied.
// origin is where the monster stood before the path; its cell must still hold
// the Monster marker or ErrInvalidOrigin is returned.
func (e *GameEngine) ResolveTurn(origin Position) (TurnResult, error) {
	return e.resolve(origin, "", PathReport{})
}

// PlayTurn applies one input line and resolves the turn
func (e *GameEngine) PlayTurn(line string) (TurnResult, PathReport, error) {
	if e.phase == GameOver {
		return TurnResult{}, PathReport{}, ErrGameOver
	}

	origin := e.monster
	report, err := e.ApplyPath(line)
	if err != nil {
		return TurnResult{}, report, err
	}

	result, err := e.resolve(origin, strings.TrimSpace(line), report)
	return result, report, err
}

func (e *GameEngine) resolve(origin Position, path string, report PathReport) (TurnResult, error) {
	if e.phase == GameOver {
		return TurnResult{}, ErrGameOver
	}
	if !origin.InBounds() {
		return TurnResult{}, fmt.Errorf("%w: origin %s outside %dx%d grid", ErrOutOfBounds, origin, Rows, Cols)
	}
	if e.grid[origin.Row][origin.Col] != Monster {
		return TurnResult{}, fmt.Errorf("%w: no monster at %s", ErrInvalidOrigin, origin)
	}

	e.phase = Resolving
	e.turns++

	result := TurnResult{
		Number:       e.turns,
		Path:         path,
		Origin:       origin,
		Final:        e.monster,
		Target:       e.target,
		Steps:        report.Steps,
		Blocked:      report.Blocked,
		Unrecognized: len(report.Unrecognized),
	}
	log := e.log.WithFields(logrus.Fields{
		"turn":    result.Number,
		"origin":  origin.String(),
		"monster": e.monster.String(),
		"target":  e.target.String(),
	})

	if e.monster != e.target {
		// The footprint marks where the monster ended up, not where it started.
		e.grid.set(e.monster, Footprint)
		e.phase = GameOver

		result.Outcome = OutcomeMiss
		result.Score = e.score
		e.record(result)
		log.WithField("score", e.score).Info("target missed, game over")
		return result, nil
	}

	e.score++
	e.grid.set(origin, Empty)
	e.grid.set(e.target, Empty)
	e.grid.set(e.monster, Monster)

	result.Outcome = OutcomeCapture
	result.Score = e.score

	next, err := pickEmpty(&e.grid, e.rng)
	if err != nil {
		e.phase = GameOver
		e.record(result)
		log.WithError(err).Error("cannot respawn target")
		return result, err
	}

	e.grid.set(next, Target)
	e.target = next
	e.phase = AwaitingInput

	result.NewTarget = &next
	e.record(result)
	log.WithFields(logrus.Fields{
		"score":      e.score,
		"new_target": next.String(),
	}).Info("target captured")
	return result, nil
}

func (e *GameEngine) record(result TurnResult) {
	e.history = append(e.history, result)
	if over := len(e.history) - e.historyLimit; over > 0 {
		e.history = append([]TurnResult(nil), e.history[over:]...)
	}
}
