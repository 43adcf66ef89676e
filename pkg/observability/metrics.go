package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Resolution branches, one per shape of filter set.
const (
	BranchHome         = "home"
	BranchAuthor       = "author"
	BranchClub         = "club"
	BranchAuthorInClub = "author_in_club"
)

// FeedMetrics instruments feed resolution. A nil *FeedMetrics is a no-op.
type FeedMetrics struct {
	resolutions *prometheus.CounterVec
	duration    *prometheus.HistogramVec
	hidden      prometheus.Counter
	returned    prometheus.Histogram
}

// NewFeedMetrics registers the feed collectors on reg.
func NewFeedMetrics(reg prometheus.Registerer) *FeedMetrics {
	factory := promauto.With(reg)
	return &FeedMetrics{
		// Labels: branch, outcome (ok or the error code)
		resolutions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "freets",
			Subsystem: "feed",
			Name:      "resolutions_total",
			Help:      "Feed resolutions by branch and outcome",
		}, []string{"branch", "outcome"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "freets",
			Subsystem: "feed",
			Name:      "resolve_duration_seconds",
			Help:      "Time to resolve a feed",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"branch"}),
		hidden: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "freets",
			Subsystem: "feed",
			Name:      "hidden_freets_total",
			Help:      "Candidate freets dropped by the visibility pass",
		}),
		returned: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "freets",
			Subsystem: "feed",
			Name:      "freets_returned",
			Help:      "Number of freets in a resolved feed",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 6),
		}),
	}
}

func (m *FeedMetrics) ObserveResolve(branch, outcome string, took time.Duration, n int) {
	if m == nil {
		return
	}
	m.resolutions.WithLabelValues(branch, outcome).Inc()
	m.duration.WithLabelValues(branch).Observe(took.Seconds())
	if outcome == "ok" {
		m.returned.Observe(float64(n))
	}
}

func (m *FeedMetrics) AddHidden(n int) {
	if m == nil || n == 0 {
		return
	}
	m.hidden.Add(float64(n))
}
