package metrics

import (
	"autotable/sources/tracing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

type MetricsService struct {
	log *tracing.Logger
}

var (
	titlesClassified = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "autotable_titles_classified_total",
			Help: "Total number of titles classified, by pattern",
		},
		[]string{"pattern"},
	)

	titlesFailed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "autotable_titles_failed_total",
			Help: "Total number of titles that failed classification or expansion",
		},
		[]string{"reason"},
	)

	indicesExpanded = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "autotable_indices_expanded_total",
			Help: "Total number of indices produced by expansion",
		},
	)

	expansionDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "autotable_expansion_duration_seconds",
			Help:    "Duration of a single title expansion",
			Buckets: []float64{.00001, .00005, .0001, .0005, .001, .005, .01},
		},
	)
)

func init() {
	prometheus.MustRegister(titlesClassified)
	prometheus.MustRegister(titlesFailed)
	prometheus.MustRegister(indicesExpanded)
	prometheus.MustRegister(expansionDuration)
}

func NewMetricsService(log *tracing.Logger) *MetricsService {
	return &MetricsService{
		log: log,
	}
}

func (s *MetricsService) RecordClassified(pattern string) {
	titlesClassified.WithLabelValues(pattern).Inc()
}

func (s *MetricsService) RecordFailed(reason string) {
	titlesFailed.WithLabelValues(reason).Inc()
}

func (s *MetricsService) RecordExpanded(count int) {
	indicesExpanded.Add(float64(count))
}

func (s *MetricsService) RecordExpansionDuration(duration time.Duration) {
	expansionDuration.Observe(duration.Seconds())
}
