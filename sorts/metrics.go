package sorts

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	algorithmSelection = "selection"
	algorithmBubble    = "bubble"
	algorithmInsertion = "insertion"
	algorithmHybrid    = "hybrid_merge"
	algorithmQuicksort = "quicksort"
)

var (
	// sortInvocations counts calls to the exported sort functions. Recursive
	// calls and the insertion sort pass inside HybridMergeSort are not counted.
	sortInvocations = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "sorts_invocations_total",
		Help: "The total number of sort calls",
	}, []string{"algorithm"})

	// sortElements counts the elements handed to the exported sort functions.
	sortElements = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "sorts_elements_total",
		Help: "The total number of elements sorted",
	}, []string{"algorithm"})
)

func init() {
	for _, algorithm := range []string{
		algorithmSelection, algorithmBubble, algorithmInsertion, algorithmHybrid, algorithmQuicksort,
	} {
		sortInvocations.WithLabelValues(algorithm).Add(0)
		sortElements.WithLabelValues(algorithm).Add(0)
	}
}

func observe(algorithm string, n int) {
	sortInvocations.WithLabelValues(algorithm).Inc()
	sortElements.WithLabelValues(algorithm).Add(float64(n))
}
