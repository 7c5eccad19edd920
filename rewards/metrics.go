package rewards

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomePaired           = "paired"
	outcomeTooFewItems      = "too_few_items"
	outcomeNoPerfectPairing = "no_perfect_pairing"
)

// certifications counts pairing attempts by outcome.
//
// Labels:
//   - outcome: "paired", "too_few_items" or "no_perfect_pairing".
var certifications = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
	Name: "rewards_certifications_total",
	Help: "The total number of reward pairing attempts",
}, []string{"outcome"})

// init creates every outcome series at zero so rates are defined before the
// first failure.
func init() {
	certifications.WithLabelValues(outcomePaired).Add(0)
	certifications.WithLabelValues(outcomeTooFewItems).Add(0)
	certifications.WithLabelValues(outcomeNoPerfectPairing).Add(0)
}
