// Package mcp provides the Model Context Protocol server for Monster Chase.
//
// MCP Tools:
//
// The package exposes the following tools for AI agents:
//   - new_game: Start a new game and reveal the board once
//   - board: Current game, hidden unless reveal is set
//   - submit_path: Play one turn with a w/a/s/d path
//   - history: Resolved turns
//   - instructions: Complete rules
//
// The tools wrap a service.GameService, so the same game can be watched by
// websocket spectators while an agent plays it.
//
// Usage:
//
//	srv := mcp.NewServer(gameService, version)
//	if err := srv.ServeStdio(); err != nil {
//		log.Fatal(err)
//	}
package mcp
