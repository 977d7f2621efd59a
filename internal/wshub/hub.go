package wshub

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"github.com/coder/websocket"

	"germanbridge/internal/games"
)

// ServerMessage is the JSON structure sent to scoreboard viewers.
type ServerMessage struct {
	Type   string       `json:"t"`
	GameID string       `json:"id"`
	Game   games.Record `json:"game"`
}

// Client is one open scoreboard connection watching a single game.
type Client struct {
	ID     string
	GameID string
	Conn   *websocket.Conn
	Send   chan []byte
}

// WritePump reads from the Send channel and writes to the WebSocket connection.
func (c *Client) WritePump(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-c.Send:
			if !ok {
				return
			}
			if err := c.Conn.Write(ctx, websocket.MessageText, msg); err != nil {
				return
			}
		}
	}
}

// Hub tracks scoreboard viewers per game.
type Hub struct {
	mu    sync.RWMutex
	games map[string]map[string]*Client
}

func NewHub() *Hub {
	return &Hub{
		games: make(map[string]map[string]*Client),
	}
}

func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	viewers, ok := h.games[c.GameID]
	if !ok {
		viewers = make(map[string]*Client)
		h.games[c.GameID] = viewers
	}
	viewers[c.ID] = c
}

// Unregister removes a client and closes its Send channel.
func (h *Hub) Unregister(gameID, clientID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	viewers, ok := h.games[gameID]
	if !ok {
		return
	}
	if c, ok := viewers[clientID]; ok {
		close(c.Send)
		delete(viewers, clientID)
	}
	if len(viewers) == 0 {
		delete(h.games, gameID)
	}
}

// Count returns the number of viewers watching a game.
func (h *Hub) Count(gameID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.games[gameID])
}

// Broadcast sends msg to every viewer of its game. Non-blocking: drops if a
// viewer's channel is full.
func (h *Hub) Broadcast(msg ServerMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		log.Printf("[WSHub] Marshal error: %v\n", err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, c := range h.games[msg.GameID] {
		select {
		case c.Send <- data:
		default:
			// Drop message if channel full
		}
	}
}
