package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/wricardo/monster-chase/game/engine"
	"github.com/wricardo/monster-chase/logger"
)

const (
	DefaultRevealDelay = 1 * time.Second

	PathPrompt = "\nPlease enter your path with these keys ('w', 's', 'a', 'd'):\n" +
		"'w' => UP\n" +
		"'s' => DOWN\n" +
		"'a' => LEFT\n" +
		"'d' => RIGHT"
	UnrecognizedMessage = "Unrecognized command!"
)

// Outcome is how a session ended
type Outcome int

const (
	// OutcomeGameOver means the player missed the target
	OutcomeGameOver Outcome = iota
	// OutcomeAborted means the input stream closed before the turn resolved
	OutcomeAborted
	// OutcomeCancelled means the context was cancelled between turns or
	// while waiting for input
	OutcomeCancelled
)

func (o Outcome) String() string {
	switch o {
	case OutcomeGameOver:
		return "game_over"
	case OutcomeAborted:
		return "aborted"
	case OutcomeCancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Session drives the turn cycle of one game against a display and an input
// source: full board, reveal delay, hidden board, read a path, resolve.
type Session struct {
	id      string
	engine  *engine.GameEngine
	display Display
	input   InputSource

	delay  time.Duration
	theme  engine.GlyphTheme
	sleep  func(time.Duration)
	onTurn func(engine.TurnResult)
	log    logrus.FieldLogger
}

// Option configures a Session
type Option func(*Session)

// WithRevealDelay sets how long the full board stays visible
func WithRevealDelay(d time.Duration) Option {
	return func(s *Session) {
		if d >= 0 {
			s.delay = d
		}
	}
}

// WithTheme sets the glyph theme used for rendering
func WithTheme(theme engine.GlyphTheme) Option {
	return func(s *Session) { s.theme = theme }
}

// WithSleeper replaces time.Sleep for the reveal delay
func WithSleeper(sleep func(time.Duration)) Option {
	return func(s *Session) {
		if sleep != nil {
			s.sleep = sleep
		}
	}
}

// WithLogger sets the session logger
func WithLogger(log logrus.FieldLogger) Option {
	return func(s *Session) {
		if log != nil {
			s.log = log
		}
	}
}

// WithID tags log lines with a game identifier
func WithID(id string) Option {
	return func(s *Session) { s.id = id }
}

// OnTurn registers a callback invoked after every resolved turn
func OnTurn(fn func(engine.TurnResult)) Option {
	return func(s *Session) { s.onTurn = fn }
}

// New creates a session for an initialized engine
func New(eng *engine.GameEngine, display Display, input InputSource, opts ...Option) *Session {
	s := &Session{
		engine:  eng,
		display: display,
		input:   input,
		delay:   DefaultRevealDelay,
		theme:   engine.ThemeEmoji,
		sleep:   time.Sleep,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		s.log = logger.Discard()
	}
	if s.id != "" {
		s.log = s.log.WithField("game_id", s.id)
	}
	return s
}

// Engine returns the engine driven by the session
func (s *Session) Engine() *engine.GameEngine {
	return s.engine
}

// Run plays turns until the game ends, the input closes or ctx is done.
// The context is checked between turns; the reveal delay itself is not
// interrupted. An input source that honours ctx may also end a pending read
// with the context error.
func (s *Session) Run(ctx context.Context) (Outcome, error) {
	if s.engine.IsGameOver() {
		return OutcomeGameOver, engine.ErrGameOver
	}

	for {
		if err := ctx.Err(); err != nil {
			s.log.WithField("score", s.engine.Score()).Info("session cancelled")
			return OutcomeCancelled, err
		}

		done, outcome, err := s.turn()
		if err != nil || done {
			return outcome, err
		}
	}
}

func (s *Session) turn() (bool, Outcome, error) {
	if err := s.display.Render(s.engine.Board(false, s.theme)); err != nil {
		return true, OutcomeAborted, fmt.Errorf("render board: %w", err)
	}

	s.sleep(s.delay)

	if err := s.display.Render(s.engine.Board(true, s.theme)); err != nil {
		return true, OutcomeAborted, fmt.Errorf("render hidden board: %w", err)
	}
	if err := s.display.Prompt(PathPrompt); err != nil {
		return true, OutcomeAborted, fmt.Errorf("show prompt: %w", err)
	}

	line, err := s.input.ReadLine()
	if err != nil {
		entry := s.log.WithField("score", s.engine.Score())
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			entry.Info("session cancelled")
			return true, OutcomeCancelled, err
		}
		// A closed or broken input stream ends the game without resolving the turn.
		if errors.Is(err, io.EOF) {
			entry.Info("input closed")
		} else {
			entry.WithError(err).Warn("input unreadable")
		}
		return true, OutcomeAborted, nil
	}

	result, report, err := s.engine.PlayTurn(line)
	for range report.Unrecognized {
		if werr := s.display.Warn(UnrecognizedMessage); werr != nil {
			return true, OutcomeAborted, fmt.Errorf("show warning: %w", werr)
		}
	}
	if err != nil {
		return true, OutcomeAborted, fmt.Errorf("resolve turn: %w", err)
	}

	s.log.WithFields(logrus.Fields{
		"turn":    result.Number,
		"path":    result.Path,
		"outcome": result.Outcome,
		"score":   result.Score,
	}).Debug("turn resolved")

	if s.onTurn != nil {
		s.onTurn(result)
	}

	if result.Outcome == engine.OutcomeCapture {
		return false, 0, nil
	}

	if err := s.display.Render(s.engine.Board(false, s.theme)); err != nil {
		return true, OutcomeGameOver, fmt.Errorf("render final board: %w", err)
	}
	if err := s.display.GameOver(s.engine.Score()); err != nil {
		return true, OutcomeGameOver, fmt.Errorf("announce game over: %w", err)
	}
	return true, OutcomeGameOver, nil
}
