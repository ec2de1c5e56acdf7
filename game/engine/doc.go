// Package engine provides the core game logic for Monster Chase.
//
// The engine package implements the game mechanics including:
//   - A fixed Rows x Cols grid holding Monster, Target, Footprint and Empty cells
//   - Direction parsing and bounds-checked single-step movement
//   - Turn resolution: capture (score and respawn) or miss (game over)
//   - Uniform target respawn over every Empty cell
//   - Glyph tables for rendering a board
//
// Core Types:
//
// GameEngine owns the grid, the monster and target positions, the score and
// the phase of the game. Board is a glyph-resolved snapshot that a display
// surface can draw without touching engine state. TurnResult records the
// outcome of one resolved turn.
//
// Usage:
//
//	gameEngine, err := engine.NewRandomEngine(engine.WithRand(rng))
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	board := gameEngine.Board(false, engine.ThemeEmoji)
//	result, report, err := gameEngine.PlayTurn("ddw")
//
// Game Rules:
//
// The player enters a path of w/a/s/d keys. Each key moves the monster one
// cell; moves that would leave the grid are dropped. Grid cells are only
// reconciled when the turn resolves. Ending on the target scores a point and
// moves the target to a random Empty cell. Ending anywhere else leaves a
// footprint and ends the game.
package engine
