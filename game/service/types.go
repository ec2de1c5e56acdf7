package service

import (
	"time"

	"github.com/wricardo/monster-chase/game/engine"
)

// GameInfo describes the current game
type GameInfo struct {
	ID            string           `json:"id"`
	CreatedAt     time.Time        `json:"created_at"`
	Board         engine.Board     `json:"board"`
	Score         int              `json:"score"`
	Phase         engine.Phase     `json:"phase"`
	GameOver      bool             `json:"game_over"`
	Turns         int              `json:"turns"`
	Monster       *engine.Position `json:"monster,omitempty"` // omitted on hidden views
	Target        *engine.Position `json:"target,omitempty"`
	PossibleMoves []string         `json:"possible_moves,omitempty"`
}

// TurnReport contains the result of one submitted path
type TurnReport struct {
	Turn     engine.TurnResult `json:"turn"`
	Warnings []string          `json:"warnings,omitempty"`
	Game     *GameInfo         `json:"game"`
}
