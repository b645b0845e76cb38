package validation

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metric names.
const (
	MetricValidationsTotal    = "brandkit_validations_total"
	MetricValidationDuration  = "brandkit_validation_duration_seconds"
	MetricRuleFailuresTotal   = "brandkit_rule_failures_total"
	MetricRuleExecutionErrors = "brandkit_rule_execution_errors_total"
	MetricCacheLookupsTotal   = "brandkit_cache_lookups_total"
)

// Cache lookup outcomes.
const (
	CacheHit    = "hit"
	CacheMiss   = "miss"
	CacheBypass = "bypass"
)

// Metrics holds Prometheus collectors for the engine. A nil *Metrics is
// valid and records nothing.
type Metrics struct {
	validationsTotal   *prometheus.CounterVec
	validationDuration prometheus.Histogram
	ruleFailures       *prometheus.CounterVec
	ruleErrors         *prometheus.CounterVec
	cacheLookups       *prometheus.CounterVec
}

// NewMetrics creates unregistered collectors. Call Register to expose them.
func NewMetrics() *Metrics {
	return &Metrics{
		validationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: MetricValidationsTotal,
				Help: "Total number of brand validations by outcome",
			},
			[]string{"outcome"},
		),
		validationDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    MetricValidationDuration,
				Help:    "Histogram of brand validation duration in seconds",
				Buckets: []float64{0.0001, 0.00025, 0.0005, 0.001, 0.0025, 0.005, 0.01, 0.05, 0.1},
			},
		),
		ruleFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: MetricRuleFailuresTotal,
				Help: "Total number of failing rule results by rule and severity",
			},
			[]string{"rule_id", "severity"},
		),
		ruleErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: MetricRuleExecutionErrors,
				Help: "Total number of rules that panicked or returned an error",
			},
			[]string{"rule_id"},
		),
		cacheLookups: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: MetricCacheLookupsTotal,
				Help: "Total number of validation cache lookups by result",
			},
			[]string{"result"},
		),
	}
}

// Register registers all collectors with reg.
func (m *Metrics) Register(reg prometheus.Registerer) error {
	for _, c := range m.Collectors() {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}

// Collectors returns all collectors.
func (m *Metrics) Collectors() []prometheus.Collector {
	return []prometheus.Collector{
		m.validationsTotal,
		m.validationDuration,
		m.ruleFailures,
		m.ruleErrors,
		m.cacheLookups,
	}
}

func (m *Metrics) observeReport(report Report, seconds float64) {
	if m == nil {
		return
	}
	outcome := "valid"
	if !report.Valid() {
		outcome = "invalid"
	}
	m.validationsTotal.WithLabelValues(outcome).Inc()
	m.validationDuration.Observe(seconds)
	for _, res := range report.Results {
		if res.Failed() {
			m.ruleFailures.WithLabelValues(res.RuleID, string(res.Severity)).Inc()
		}
	}
}

func (m *Metrics) incRuleError(ruleID string) {
	if m == nil {
		return
	}
	m.ruleErrors.WithLabelValues(ruleID).Inc()
}

func (m *Metrics) incCacheLookup(result string) {
	if m == nil {
		return
	}
	m.cacheLookups.WithLabelValues(result).Inc()
}
