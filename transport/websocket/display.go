package websocket

import (
	"github.com/wricardo/monster-chase/game/engine"
)

// Display mirrors a local session to spectators. Every call succeeds; a slow
// or absent audience never interrupts the game.
type Display struct {
	hub    *Hub
	gameID string
}

func NewDisplay(hub *Hub, gameID string) *Display {
	return &Display{hub: hub, gameID: gameID}
}

func (d *Display) Render(board engine.Board) error {
	d.hub.PublishBoard(d.gameID, board)
	return nil
}

func (d *Display) Prompt(text string) error {
	d.hub.BroadcastEvent(d.gameID, EventPrompt, text)
	return nil
}

func (d *Display) Warn(text string) error {
	d.hub.BroadcastEvent(d.gameID, EventWarning, text)
	return nil
}

func (d *Display) GameOver(score int) error {
	d.hub.mu.Lock()
	d.hub.resetFor(d.gameID)
	d.hub.snapshot.GameOver = true
	d.hub.mu.Unlock()

	d.hub.BroadcastEvent(d.gameID, EventGameOver, map[string]int{"score": score})
	return nil
}

// PublishTurn adapts the hub to a session turn callback
func (d *Display) PublishTurn(turn engine.TurnResult) {
	d.hub.PublishTurn(d.gameID, turn)
}
