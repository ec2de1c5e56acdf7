// Package websocket provides the spectator transport for Monster Chase.
//
// The websocket package implements:
//   - A hub broadcasting boards, turns and game events to read-only clients
//   - A cached snapshot so late joiners see the current frame at once
//   - A session Display that mirrors a local game to the hub
//
// Architecture:
//
// The package uses a hub-and-spoke model where a central Hub manages all
// WebSocket connections. Each client connection is handled by a dedicated
// read and write goroutine. Publishing is non-blocking: the game loop never
// waits on the network.
//
// Message Protocol:
//
// Outgoing messages are JSON objects:
//
//	{"game_id": "...", "event": "board_update", "board": {"rows": [...], "score": 2, "hidden": false, "phase": "awaiting_input"}}
//	{"game_id": "...", "event": "turn_resolved", "turn": {"number": 3, "outcome": "capture", ...}}
//	{"game_id": "...", "event": "game_over", "data": {"score": 3}}
//
// The first message on every connection is a "snapshot" event.
//
// Usage:
//
//	hub := websocket.NewHub(websocket.WithLogger(log))
//	go hub.Run(ctx)
//
//	router.HandleFunc("/ws", hub.ServeWS)
//	display := session.MultiDisplay{consoleDisplay, websocket.NewDisplay(hub, gameID)}
package websocket
