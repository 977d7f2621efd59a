package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"germanbridge/internal/config"
	"germanbridge/internal/games"
	"germanbridge/internal/metrics"
	"germanbridge/internal/store"
	"germanbridge/internal/wshub"
)

func Run() error {
	appCfg := config.Load()

	opts := store.Options{
		Backend:       appCfg.StoreBackend,
		RedisURL:      appCfg.RedisURL,
		DatabaseURL:   appCfg.DatabaseURL,
		MongoURI:      appCfg.MongoURI,
		MongoDatabase: appCfg.MongoDatabase,
		TTL:           time.Duration(appCfg.GameTTLHours) * time.Hour,
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	st, err := store.Open(ctx, opts)
	cancel()
	if err != nil {
		log.Printf("[Store] Failed to open %s store: %v (running in memory)\n", appCfg.StoreBackend, err)
		st = store.NewMemory()
	}
	defer st.Close()

	srv := New(games.NewRepository(st), wshub.NewHub(), metrics.New())

	addr := "0.0.0.0:" + appCfg.Port
	fmt.Printf("Server listening on http://localhost:%s\n", appCfg.Port)
	return http.ListenAndServe(addr, srv.Handler())
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /new-game", s.handleNewGame)
	mux.HandleFunc("GET /game/{id}", s.handleGetGame)
	mux.HandleFunc("POST /game/{id}/update", s.handleUpdateGame)
	mux.HandleFunc("GET /game/{id}/ws", s.handleScoreboard)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /stats", s.handleStats)
	mux.Handle("GET /metrics", s.Metrics.Handler())
	return withCORS(mux)
}

// withCORS opens every route to any origin, matching what browser clients of
// the gateway expect.
func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("Access-Control-Allow-Origin", "*")
		h.Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		h.Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
