package service

import (
	"context"

	"github.com/wricardo/monster-chase/game/engine"
)

// GameService defines the operations remote players use
type GameService interface {
	// Game lifecycle
	NewGame(ctx context.Context) (*GameInfo, error)
	State(ctx context.Context, hidden bool) (*GameInfo, error)

	// Play
	SubmitPath(ctx context.Context, path string) (*TurnReport, error)
	History(ctx context.Context) ([]engine.TurnResult, error)
}

// EngineFactory creates a freshly initialized engine for a new game
type EngineFactory func() (*engine.GameEngine, error)

// Publisher receives every board and turn the service produces
type Publisher interface {
	PublishBoard(gameID string, board engine.Board)
	PublishTurn(gameID string, turn engine.TurnResult)
}
