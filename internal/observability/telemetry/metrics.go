package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Business metrics
	ActiveSessions = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "partassist_active_sessions",
		Help: "Number of live chat sessions",
	})

	TurnsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "partassist_turns_total",
		Help: "Total conversation turns processed",
	}, []string{"intent", "source"})

	TurnLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "partassist_turn_latency_seconds",
		Help:    "End-to-end turn processing latency",
		Buckets: prometheus.DefBuckets,
	})

	LLMFallbackTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "partassist_llm_fallback_total",
		Help: "Model fallback invocations by outcome",
	}, []string{"outcome"})

	// Infrastructure metrics
	CartOperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "partassist_cart_operations_total",
		Help: "Cart store operations",
	}, []string{"action", "status"})

	CatalogLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "partassist_catalog_latency_seconds",
		Help:    "Catalog query latency",
		Buckets: prometheus.DefBuckets,
	})
)
