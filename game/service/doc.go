// Package service provides the business logic layer for remote play.
//
// The service package implements:
//   - A single current game with a uuid identifier
//   - Path submission and turn resolution under a mutex
//   - Masked and full views of the board
//   - Turn history retrieval
//   - Forwarding of boards and turns to a Publisher (the spectator hub)
//
// Architecture:
//
// The service layer sits between the MCP transport and the game engine. The
// engine itself is not safe for concurrent use; the service serializes every
// call so tool invocations arriving on different goroutines cannot interleave
// inside a turn.
//
// Usage:
//
//	gameService := service.NewGameService(func() (*engine.GameEngine, error) {
//		return engine.NewRandomEngine(engine.WithSeed(seed))
//	}, service.WithPublisher(hub))
//
//	info, err := gameService.NewGame(ctx)
//	report, err := gameService.SubmitPath(ctx, "ddw")
package service
