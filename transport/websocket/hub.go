package websocket

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
	"github.com/wricardo/monster-chase/game/engine"
	"github.com/wricardo/monster-chase/logger"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer.
	maxMessageSize = 512

	// Pending broadcasts before new ones are dropped.
	broadcastBuffer = 256
)

// Events pushed to spectators
const (
	EventSnapshot = "snapshot"
	EventBoard    = "board_update"
	EventTurn     = "turn_resolved"
	EventPrompt   = "prompt"
	EventWarning  = "warning"
	EventGameOver = "game_over"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Spectators are read-only
		return true
	},
}

// Message represents a WebSocket message
type Message struct {
	GameID string             `json:"game_id"`
	Event  string             `json:"event"`
	Board  *engine.Board      `json:"board,omitempty"`
	Turn   *engine.TurnResult `json:"turn,omitempty"`
	Data   interface{}        `json:"data,omitempty"`
}

// Snapshot is the latest state seen by the hub
type Snapshot struct {
	GameID   string              `json:"game_id"`
	Board    *engine.Board       `json:"board,omitempty"`
	Turns    []engine.TurnResult `json:"turns"`
	GameOver bool                `json:"game_over"`
}

// Client represents a WebSocket client
type Client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan []byte
}

// Hub maintains the set of spectators and broadcasts game events to them.
// Publishing never blocks the game: when the broadcast queue is full the
// message is dropped.
type Hub struct {
	// Registered clients, owned by the Run goroutine
	clients map[*Client]bool
	count   atomic.Int32

	broadcast  chan *Message
	register   chan *Client
	unregister chan *Client
	done       chan struct{}

	mu       sync.RWMutex
	snapshot Snapshot

	historyLimit int
	log          logrus.FieldLogger
}

// HubOption configures a Hub
type HubOption func(*Hub)

// WithLogger sets the hub logger
func WithLogger(log logrus.FieldLogger) HubOption {
	return func(h *Hub) {
		if log != nil {
			h.log = log
		}
	}
}

// WithHistoryLimit bounds the cached turn list
func WithHistoryLimit(n int) HubOption {
	return func(h *Hub) {
		if n > 0 {
			h.historyLimit = n
		}
	}
}

// NewHub creates a new WebSocket hub
func NewHub(opts ...HubOption) *Hub {
	h := &Hub{
		clients:      make(map[*Client]bool),
		broadcast:    make(chan *Message, broadcastBuffer),
		register:     make(chan *Client),
		unregister:   make(chan *Client),
		done:         make(chan struct{}),
		historyLimit: engine.DefaultHistoryLimit,
		log:          logger.Discard(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Run starts the hub's event loop and blocks until ctx is done. Every client
// connection is closed on return.
func (h *Hub) Run(ctx context.Context) {
	defer func() {
		close(h.done)
		for client := range h.clients {
			h.unregisterClient(client)
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return

		case client := <-h.register:
			h.registerClient(client)

		case client := <-h.unregister:
			h.unregisterClient(client)

		case message := <-h.broadcast:
			h.broadcastMessage(message)
		}
	}
}

// ClientCount returns the number of connected spectators
func (h *Hub) ClientCount() int {
	return int(h.count.Load())
}

// Snapshot returns a copy of the latest game state
func (h *Hub) Snapshot() Snapshot {
	h.mu.RLock()
	defer h.mu.RUnlock()

	snap := h.snapshot
	snap.Turns = append([]engine.TurnResult(nil), h.snapshot.Turns...)
	if h.snapshot.Board != nil {
		board := copyBoard(*h.snapshot.Board)
		snap.Board = &board
	}
	return snap
}

// ServeWS upgrades the request and registers the spectator
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.WithError(err).Warn("websocket upgrade failed")
		return
	}

	client := &Client{
		hub:  h,
		conn: conn,
		send: make(chan []byte, 256),
	}

	select {
	case h.register <- client:
	case <-h.done:
		conn.Close()
		return
	}

	// Start client goroutines
	go client.writePump()
	go client.readPump()
}

// PublishBoard records board as the current frame and pushes it to every
// spectator. A new game ID resets the cached turns.
func (h *Hub) PublishBoard(gameID string, board engine.Board) {
	board = copyBoard(board)

	h.mu.Lock()
	h.resetFor(gameID)
	h.snapshot.Board = &board
	h.snapshot.GameOver = board.Phase == engine.GameOver
	h.mu.Unlock()

	h.enqueue(&Message{GameID: gameID, Event: EventBoard, Board: &board})
}

// PublishTurn records a resolved turn and pushes it to every spectator
func (h *Hub) PublishTurn(gameID string, turn engine.TurnResult) {
	h.mu.Lock()
	h.resetFor(gameID)
	h.snapshot.Turns = append(h.snapshot.Turns, turn)
	if over := len(h.snapshot.Turns) - h.historyLimit; over > 0 {
		h.snapshot.Turns = append([]engine.TurnResult(nil), h.snapshot.Turns[over:]...)
	}
	h.mu.Unlock()

	h.enqueue(&Message{GameID: gameID, Event: EventTurn, Turn: &turn})
}

// BroadcastEvent sends a custom event to every spectator
func (h *Hub) BroadcastEvent(gameID string, event string, data interface{}) {
	h.enqueue(&Message{GameID: gameID, Event: event, Data: data})
}

// resetFor clears the snapshot when the game changes; the caller holds mu
func (h *Hub) resetFor(gameID string) {
	if h.snapshot.GameID == gameID {
		return
	}
	h.snapshot = Snapshot{GameID: gameID}
}

func (h *Hub) enqueue(message *Message) {
	select {
	case h.broadcast <- message:
	default:
		h.log.WithField("event", message.Event).Warn("broadcast queue full, dropping message")
	}
}

// registerClient adds a client and sends it the current snapshot
func (h *Hub) registerClient(client *Client) {
	h.clients[client] = true
	h.count.Store(int32(len(h.clients)))

	snap := h.Snapshot()
	data, err := json.Marshal(&Message{
		GameID: snap.GameID,
		Event:  EventSnapshot,
		Board:  snap.Board,
		Data:   snap,
	})
	if err == nil {
		client.send <- data
	}

	h.log.WithField("clients", len(h.clients)).Info("spectator connected")
}

// unregisterClient removes a client and closes its send channel
func (h *Hub) unregisterClient(client *Client) {
	if _, ok := h.clients[client]; !ok {
		return
	}
	delete(h.clients, client)
	close(client.send)
	h.count.Store(int32(len(h.clients)))

	h.log.WithField("clients", len(h.clients)).Info("spectator disconnected")
}

// broadcastMessage sends a message to all clients
func (h *Hub) broadcastMessage(message *Message) {
	data, err := json.Marshal(message)
	if err != nil {
		h.log.WithError(err).Error("failed to marshal broadcast message")
		return
	}

	for client := range h.clients {
		select {
		case client.send <- data:
		default:
			// Client's send channel is full, drop it
			h.unregisterClient(client)
		}
	}
}

// readPump keeps the connection alive; spectators never send commands
func (c *Client) readPump() {
	defer func() {
		select {
		case c.hub.unregister <- c:
		case <-c.hub.done:
		}
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.hub.log.WithError(err).Debug("websocket closed")
			}
			break
		}
	}
}

// writePump pumps messages from the hub to the WebSocket connection
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// The hub closed the channel
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func copyBoard(b engine.Board) engine.Board {
	rows := make([][]string, len(b.Rows))
	for i, row := range b.Rows {
		rows[i] = append([]string(nil), row...)
	}
	b.Rows = rows
	return b
}
