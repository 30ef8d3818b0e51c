package processor

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	reportsProcessed = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "aifr",
		Subsystem: "processor",
		Name:      "reports_processed_total",
		Help:      "Processed flaw reports by severity.",
	}, []string{"severity"})

	unresolvedSystems = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "aifr",
		Subsystem: "processor",
		Name:      "unresolved_systems_total",
		Help:      "Known-system slugs that failed to resolve.",
	})

	unknownSynthesized = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "aifr",
		Subsystem: "processor",
		Name:      "unknown_identities_total",
		Help:      "Placeholder identities synthesized for unknown systems.",
	})
)
