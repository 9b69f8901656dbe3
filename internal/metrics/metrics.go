// Package metrics exposes game activity as Prometheus metrics.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/abhisek/menuquiz/internal/game"
)

// Collector implements game.Recorder and owns its own registry so tests
// and multiple servers never collide on the default registerer.
type Collector struct {
	registry *prometheus.Registry

	gamesStarted   *prometheus.CounterVec
	gamesFinished  *prometheus.CounterVec
	roundsScored   *prometheus.CounterVec
	hintsUsed      *prometheus.CounterVec
	ingredientsHit *prometheus.CounterVec
	pointsEarned   *prometheus.HistogramVec
	finalScore     *prometheus.HistogramVec
	activeSessions prometheus.Gauge
}

var _ game.Recorder = (*Collector)(nil)

// New creates a collector with Go runtime and process metrics registered.
func New() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		gamesStarted: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "menuquiz_games_started_total",
				Help: "Games started, by difficulty",
			},
			[]string{"difficulty"},
		),
		gamesFinished: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "menuquiz_games_finished_total",
				Help: "Games played through to the end screen, by difficulty",
			},
			[]string{"difficulty"},
		),
		roundsScored: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "menuquiz_rounds_scored_total",
				Help: "Submitted rounds, by difficulty and whether every slot was correct",
			},
			[]string{"difficulty", "perfect"},
		),
		hintsUsed: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "menuquiz_hints_used_total",
				Help: "Hint requests accepted, by difficulty",
			},
			[]string{"difficulty"},
		),
		ingredientsHit: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "menuquiz_ingredients_guessed_total",
				Help: "Guessable ingredients, by difficulty and outcome",
			},
			[]string{"difficulty", "outcome"},
		),
		pointsEarned: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "menuquiz_round_points",
				Help:    "Points earned per round",
				Buckets: prometheus.LinearBuckets(0, 5, 7),
			},
			[]string{"difficulty"},
		),
		finalScore: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "menuquiz_game_score",
				Help:    "Final score per finished game",
				Buckets: prometheus.ExponentialBuckets(10, 2, 8),
			},
			[]string{"difficulty"},
		),
		activeSessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "menuquiz_active_sessions",
			Help: "Sessions currently held by the API server",
		}),
	}

	c.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		c.gamesStarted,
		c.gamesFinished,
		c.roundsScored,
		c.hintsUsed,
		c.ingredientsHit,
		c.pointsEarned,
		c.finalScore,
		c.activeSessions,
	)
	return c
}

// Registry returns the underlying registry.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{Registry: c.registry})
}

// SetActiveSessions records the current session count.
func (c *Collector) SetActiveSessions(n int) {
	c.activeSessions.Set(float64(n))
}

func (c *Collector) GameStarted(_, difficulty string, _ int) {
	c.gamesStarted.WithLabelValues(difficulty).Inc()
}

func (c *Collector) HintUsed(_, difficulty string, _ int) {
	c.hintsUsed.WithLabelValues(difficulty).Inc()
}

func (c *Collector) RoundScored(_ string, r game.RoundResult) {
	perfect := "false"
	if r.Perfect {
		perfect = "true"
	}
	c.roundsScored.WithLabelValues(r.Difficulty, perfect).Inc()
	c.ingredientsHit.WithLabelValues(r.Difficulty, "correct").Add(float64(r.Correct))
	c.ingredientsHit.WithLabelValues(r.Difficulty, "wrong").Add(float64(r.Guessable - r.Correct))
	c.pointsEarned.WithLabelValues(r.Difficulty).Observe(float64(r.Earned))
}

func (c *Collector) GameFinished(_, difficulty string, s game.Summary) {
	c.gamesFinished.WithLabelValues(difficulty).Inc()
	c.finalScore.WithLabelValues(difficulty).Observe(float64(s.Score))
}
