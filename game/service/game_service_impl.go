package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/wricardo/monster-chase/game/engine"
	"github.com/wricardo/monster-chase/logger"
)

var ErrNoGame = errors.New("no game in progress")

type game struct {
	id        string
	engine    *engine.GameEngine
	createdAt time.Time
}

// gameServiceImpl implements the GameService interface
type gameServiceImpl struct {
	newEngine EngineFactory
	publisher Publisher
	theme     engine.GlyphTheme
	log       logrus.FieldLogger

	mu      sync.Mutex
	current *game
}

// Option configures the game service
type Option func(*gameServiceImpl)

// WithPublisher forwards boards and turns to p
func WithPublisher(p Publisher) Option {
	return func(s *gameServiceImpl) { s.publisher = p }
}

// WithTheme sets the glyph theme of returned boards
func WithTheme(theme engine.GlyphTheme) Option {
	return func(s *gameServiceImpl) { s.theme = theme }
}

// WithLogger sets the service logger
func WithLogger(log logrus.FieldLogger) Option {
	return func(s *gameServiceImpl) {
		if log != nil {
			s.log = log
		}
	}
}

// NewGameService creates a new game service instance. No game exists until
// NewGame is called.
func NewGameService(factory EngineFactory, opts ...Option) GameService {
	s := &gameServiceImpl{
		newEngine: factory,
		theme:     engine.ThemeASCII,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		s.log = logger.Discard()
	}
	return s
}

// NewGame discards the current game and starts a new one
func (s *gameServiceImpl) NewGame(ctx context.Context) (*GameInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	eng, err := s.newEngine()
	if err != nil {
		return nil, fmt.Errorf("failed to create engine: %w", err)
	}

	s.current = &game{
		id:        uuid.NewString(),
		engine:    eng,
		createdAt: time.Now(),
	}
	s.log.WithField("game_id", s.current.id).Info("game created")

	info := s.info(false)
	s.publishBoard(info.Board)
	return info, nil
}

// State returns the current game. A hidden view masks the board and omits
// token positions.
func (s *gameServiceImpl) State(ctx context.Context, hidden bool) (*GameInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return nil, ErrNoGame
	}
	return s.info(hidden), nil
}

// SubmitPath plays one turn with the given path
func (s *gameServiceImpl) SubmitPath(ctx context.Context, path string) (*TurnReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return nil, ErrNoGame
	}

	result, report, err := s.current.engine.PlayTurn(path)
	if err != nil {
		return nil, fmt.Errorf("turn rejected: %w", err)
	}

	warnings := make([]string, 0, len(report.Unrecognized))
	for _, u := range report.Unrecognized {
		warnings = append(warnings, u.Error())
	}

	s.log.WithFields(logrus.Fields{
		"game_id": s.current.id,
		"turn":    result.Number,
		"outcome": result.Outcome,
		"score":   result.Score,
	}).Info("turn resolved")

	info := s.info(false)
	if s.publisher != nil {
		s.publisher.PublishTurn(s.current.id, result)
	}
	s.publishBoard(info.Board)

	return &TurnReport{
		Turn:     result,
		Warnings: warnings,
		Game:     info,
	}, nil
}

// History returns the resolved turns of the current game
func (s *gameServiceImpl) History(ctx context.Context) ([]engine.TurnResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return nil, ErrNoGame
	}
	return s.current.engine.History(), nil
}

// info builds a GameInfo; the caller holds mu
func (s *gameServiceImpl) info(hidden bool) *GameInfo {
	eng := s.current.engine
	info := &GameInfo{
		ID:        s.current.id,
		CreatedAt: s.current.createdAt,
		Board:     eng.Board(hidden, s.theme),
		Score:     eng.Score(),
		Phase:     eng.Phase(),
		GameOver:  eng.IsGameOver(),
	}
	if last := eng.LastTurn(); last != nil {
		info.Turns = last.Number
	}
	if hidden {
		return info
	}

	monster, target := eng.Monster(), eng.Target()
	info.Monster = &monster
	if !info.GameOver {
		info.Target = &target
		for _, d := range eng.GetPossibleMoves() {
			info.PossibleMoves = append(info.PossibleMoves, d.String())
		}
	}
	return info
}

func (s *gameServiceImpl) publishBoard(board engine.Board) {
	if s.publisher != nil {
		s.publisher.PublishBoard(s.current.id, board)
	}
}
