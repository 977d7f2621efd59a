package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"

	"germanbridge/internal/games"
	"germanbridge/internal/metrics"
	"germanbridge/internal/wshub"
)

const maxBodyBytes = 1 << 20

type Server struct {
	Games   *games.Repository
	Hub     *wshub.Hub
	Metrics *metrics.Metrics
}

func New(repo *games.Repository, hub *wshub.Hub, m *metrics.Metrics) *Server {
	return &Server{
		Games:   repo,
		Hub:     hub,
		Metrics: m,
	}
}

type newGameRequest struct {
	Players []string `json:"players"`
}

type newGameResponse struct {
	GameID string `json:"gameId"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Println(err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func gameID(r *http.Request) string {
	return strings.ToUpper(strings.TrimSpace(r.PathValue("id")))
}

func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	fmt.Println("[Handle:NewGame] Request Received")

	var req newGameRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	id, _, err := s.Games.Create(r.Context(), req.Players)
	if errors.Is(err, games.ErrNoPlayers) {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		log.Printf("[Handle:NewGame] %v\n", err)
		s.Metrics.StoreErrors.WithLabelValues("create").Inc()
		writeError(w, http.StatusInternalServerError, "Failed to create game")
		return
	}
	s.Metrics.GamesCreated.Inc()

	fmt.Printf("[Handle:NewGame] Created game %s\n", id)
	writeJSON(w, http.StatusOK, newGameResponse{GameID: id})
}

func (s *Server) handleGetGame(w http.ResponseWriter, r *http.Request) {
	id := gameID(r)
	rec, err := s.Games.Get(r.Context(), id)
	if errors.Is(err, games.ErrNotFound) {
		s.Metrics.GameReads.WithLabelValues("not_found").Inc()
		writeError(w, http.StatusNotFound, "Game not found")
		return
	}
	if err != nil {
		log.Printf("[Handle:GetGame] %v\n", err)
		s.Metrics.StoreErrors.WithLabelValues("read").Inc()
		writeError(w, http.StatusInternalServerError, "Failed to read game")
		return
	}
	s.Metrics.GameReads.WithLabelValues("ok").Inc()
	writeJSON(w, http.StatusOK, rec)
}

// handleUpdateGame overwrites the stored game with the request body. There is
// no version check; the last writer wins.
func (s *Server) handleUpdateGame(w http.ResponseWriter, r *http.Request) {
	id := gameID(r)
	fmt.Printf("[Handle:UpdateGame] Request Received for %s\n", id)

	var rec games.Record
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&rec); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	if err := s.Games.Update(r.Context(), id, rec); err != nil {
		log.Printf("[Handle:UpdateGame] %v\n", err)
		s.Metrics.StoreErrors.WithLabelValues("update").Inc()
		writeError(w, http.StatusInternalServerError, "Failed to update game")
		return
	}
	s.Metrics.GameUpdates.Inc()

	s.Hub.Broadcast(wshub.ServerMessage{Type: "game", GameID: id, Game: rec})
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleScoreboard streams the game to a websocket viewer: the current record
// first, then every update.
func (s *Server) handleScoreboard(w http.ResponseWriter, r *http.Request) {
	id := gameID(r)
	rec, err := s.Games.Get(r.Context(), id)
	if errors.Is(err, games.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Game not found")
		return
	}
	if err != nil {
		log.Printf("[Handle:Scoreboard] %v\n", err)
		writeError(w, http.StatusInternalServerError, "Failed to read game")
		return
	}

	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{InsecureSkipVerify: true})
	if err != nil {
		log.Printf("[WSHub] Accept error: %v\n", err)
		return
	}
	defer conn.CloseNow()

	client := &wshub.Client{
		ID:     uuid.New().String(),
		GameID: id,
		Conn:   conn,
		Send:   make(chan []byte, 16),
	}

	initial, err := json.Marshal(wshub.ServerMessage{Type: "game", GameID: id, Game: rec})
	if err != nil {
		log.Printf("[WSHub] Marshal error: %v\n", err)
		return
	}
	client.Send <- initial

	s.Hub.Register(client)
	s.Metrics.Viewers.Inc()
	defer func() {
		s.Hub.Unregister(id, client.ID)
		s.Metrics.Viewers.Dec()
	}()

	// Viewers never send anything; CloseRead cancels ctx once they go away.
	ctx := conn.CloseRead(r.Context())
	client.WritePump(ctx)
	conn.Close(websocket.StatusNormalClosure, "")
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()
	if err := s.Games.Ping(ctx); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "store_error", "error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotImplemented, map[string]string{"message": "All time stats coming soon!"})
}
