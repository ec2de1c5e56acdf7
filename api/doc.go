// Package api provides the HTTP spectator API for Monster Chase.
//
// Endpoints:
//   - GET /api/state - Current board, score and turn count
//   - GET /api/history - Resolved turns with pagination (page, limit, order)
//   - GET /api/health - Liveness probe
//   - GET /ws - WebSocket stream of boards and turns
//
// The API is read-only. It serves the websocket hub's cached snapshot, so
// requests never touch the engine the game loop is mutating.
//
// Usage:
//
//	hub := websocket.NewHub()
//	go hub.Run(ctx)
//	server := api.NewServer(hub, log)
//	http.ListenAndServe(":8080", server)
package api
