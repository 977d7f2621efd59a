package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics counts gateway traffic. Each server gets its own registry so tests
// can build as many as they like.
type Metrics struct {
	Registry     *prometheus.Registry
	GamesCreated prometheus.Counter
	GameReads    *prometheus.CounterVec
	GameUpdates  prometheus.Counter
	StoreErrors  *prometheus.CounterVec
	Viewers      prometheus.Gauge
}

func New() *Metrics {
	m := &Metrics{
		GamesCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "germanbridge_games_created_total",
			Help: "Games created through the gateway.",
		}),
		GameReads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "germanbridge_game_reads_total",
			Help: "Game reads by result.",
		}, []string{"result"}),
		GameUpdates: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "germanbridge_game_updates_total",
			Help: "Full game overwrites.",
		}),
		StoreErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "germanbridge_store_errors_total",
			Help: "Store failures by operation.",
		}, []string{"op"}),
		Viewers: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "germanbridge_scoreboard_viewers",
			Help: "Open live scoreboard connections.",
		}),
	}
	m.Registry = prometheus.NewRegistry()
	m.Registry.MustRegister(m.GamesCreated, m.GameReads, m.GameUpdates, m.StoreErrors, m.Viewers)
	return m
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}
