package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"github.com/wricardo/monster-chase/game/engine"
	"github.com/wricardo/monster-chase/logger"
	"github.com/wricardo/monster-chase/transport/websocket"
)

// Spectator is the read side of the websocket hub
type Spectator interface {
	Snapshot() websocket.Snapshot
	ServeWS(w http.ResponseWriter, r *http.Request)
}

// Server represents the spectator HTTP server
type Server struct {
	spectator Spectator
	router    *mux.Router
	log       logrus.FieldLogger
}

// NewServer creates a new API server
func NewServer(spectator Spectator, log logrus.FieldLogger) *Server {
	if log == nil {
		log = logger.Discard()
	}
	s := &Server{
		spectator: spectator,
		router:    mux.NewRouter(),
		log:       log,
	}

	s.setupRoutes()
	return s
}

// setupRoutes configures all API routes
func (s *Server) setupRoutes() {
	s.router.Use(s.logRequests)
	s.router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	// Registered on the root router; a /api subrouter reports method
	// mismatches as 404.
	s.router.HandleFunc("/api/state", s.handleGetState).Methods("GET")
	s.router.HandleFunc("/api/history", s.handleGetHistory).Methods("GET")
	s.router.HandleFunc("/api/health", s.handleHealth).Methods("GET")

	// WebSocket
	s.router.HandleFunc("/ws", s.spectator.ServeWS).Methods("GET")
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.log.WithFields(logrus.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"duration": time.Since(start),
		}).Debug("http request")
	})
}

// Response helpers
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// StateResponse is the body of GET /api/state
type StateResponse struct {
	GameID   string        `json:"game_id"`
	Board    *engine.Board `json:"board"`
	Score    int           `json:"score"`
	Turns    int           `json:"turns"`
	GameOver bool          `json:"game_over"`
}

func (s *Server) handleGetState(w http.ResponseWriter, r *http.Request) {
	snap := s.spectator.Snapshot()
	if snap.GameID == "" || snap.Board == nil {
		respondError(w, http.StatusNotFound, "no game in progress")
		return
	}

	resp := StateResponse{
		GameID:   snap.GameID,
		Board:    snap.Board,
		Score:    snap.Board.Score,
		GameOver: snap.GameOver,
	}
	if n := len(snap.Turns); n > 0 {
		resp.Turns = snap.Turns[n-1].Number
	}
	respondJSON(w, http.StatusOK, resp)
}

const (
	defaultHistoryPage = 20
	maxHistoryPage     = 100
)

// HistoryResponse is the body of GET /api/history
type HistoryResponse struct {
	GameID string              `json:"game_id"`
	Turns  []engine.TurnResult `json:"turns"`
	Total  int                 `json:"total"`
	Page   int                 `json:"page"`
	Limit  int                 `json:"limit"`
	Order  string              `json:"order"`
}

func (s *Server) handleGetHistory(w http.ResponseWriter, r *http.Request) {
	snap := s.spectator.Snapshot()
	if snap.GameID == "" {
		respondError(w, http.StatusNotFound, "no game in progress")
		return
	}

	page, limit, order := 1, defaultHistoryPage, "desc"

	query := r.URL.Query()
	if pageStr := query.Get("page"); pageStr != "" {
		if p, err := strconv.Atoi(pageStr); err == nil && p > 0 {
			page = p
		}
	}
	if limitStr := query.Get("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 {
			limit = min(l, maxHistoryPage)
		}
	}
	if o := query.Get("order"); o == "asc" || o == "desc" {
		order = o
	}

	turns := snap.Turns
	if order == "desc" {
		reversed := make([]engine.TurnResult, len(turns))
		for i, turn := range turns {
			reversed[len(turns)-1-i] = turn
		}
		turns = reversed
	}

	// Compare page counts before multiplying so a huge page cannot overflow
	start := len(turns)
	if pages := (len(turns) + limit - 1) / limit; page-1 < pages {
		start = (page - 1) * limit
	}
	end := start + limit
	if end > len(turns) {
		end = len(turns)
	}

	respondJSON(w, http.StatusOK, HistoryResponse{
		GameID: snap.GameID,
		Turns:  append([]engine.TurnResult{}, turns[start:end]...),
		Total:  len(snap.Turns),
		Page:   page,
		Limit:  limit,
		Order:  order,
	})
}

// Health check
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
	})
}
