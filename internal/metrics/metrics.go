// Package metrics provides Prometheus metrics for interaction handling.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Labels stay low-cardinality: no interaction, channel or custom IDs.
var (
	// InteractionsTotal counts verified interactions by type.
	InteractionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "rowkit_interactions_total",
		Help: "Total number of verified interactions received, by type.",
	}, []string{"type"})

	// DecodeErrorsTotal counts component trees that failed to decode.
	DecodeErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "rowkit_component_decode_errors_total",
		Help: "Total number of component decode failures, by reason.",
	}, []string{"reason"})

	// ResponsesTotal counts interaction responses by outcome.
	ResponsesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "rowkit_responses_total",
		Help: "Total number of interaction responses, by result (sent/invalid/failed).",
	}, []string{"result"})

	// DraftsSeededTotal counts drafts written from the seed file.
	DraftsSeededTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rowkit_drafts_seeded_total",
		Help: "Total number of drafts loaded from the seed file.",
	})
)
