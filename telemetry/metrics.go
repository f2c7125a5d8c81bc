package telemetry

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// DenormRunsTotal counts completed end-to-end denormalisation runs.
	DenormRunsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "confsched_denorm_runs_total",
		Help: "Completed definition denormalisation runs.",
	})

	// DenormErrorsTotal counts failed runs by stage.
	DenormErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "confsched_denorm_errors_total",
		Help: "Denormalisation failures by stage.",
	}, []string{"stage"})

	// SlotsBuiltTotal counts slot records emitted by the slot builder.
	SlotsBuiltTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "confsched_slots_built_total",
		Help: "Slot records built from venue definitions.",
	})

	// EventsBuiltTotal counts event records emitted by the event builder.
	EventsBuiltTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "confsched_events_built_total",
		Help: "Event records built from event definitions.",
	})

	// SelfClashInjectionsTotal counts self-clash entries injected while
	// normalising the clash relation. A high number means the supplied
	// relation was badly incomplete.
	SelfClashInjectionsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "confsched_self_clash_injections_total",
		Help: "Self-clash entries injected during clash normalisation.",
	})

	// DenormDuration observes end-to-end run duration in seconds.
	DenormDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "confsched_denorm_duration_seconds",
		Help:    "End-to-end denormalisation duration.",
		Buckets: prometheus.DefBuckets,
	})
)

// Handler exposes the metrics endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
