package metrics

import (
	"sync"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

const namespace = "docspell"

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	once         sync.Once
	unitsChecked *prom.CounterVec
	unknownWords prom.Counter
	suppressed   prom.Counter
	failures     prom.Counter
	uniqueWords  prom.Gauge
	runDuration  prom.Histogram
	runOutcome   *prom.CounterVec
}

// NewPrometheusRecorder constructs and registers Prometheus metrics (idempotent).
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{}
	pr.once.Do(func() {
		pr.unitsChecked = prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "units_checked_total",
			Help:      "Text units submitted to the spell checker by kind",
		}, []string{"kind"})
		pr.unknownWords = prom.NewCounter(prom.CounterOpts{
			Namespace: namespace,
			Name:      "unknown_words_total",
			Help:      "Unknown words written to the report",
		})
		pr.suppressed = prom.NewCounter(prom.CounterOpts{
			Namespace: namespace,
			Name:      "suppressed_words_total",
			Help:      "Unknown words dropped by ignore-containing rules",
		})
		pr.failures = prom.NewCounter(prom.CounterOpts{
			Namespace: namespace,
			Name:      "check_failures_total",
			Help:      "Text units the spell checker failed to check",
		})
		pr.uniqueWords = prom.NewGauge(prom.GaugeOpts{
			Namespace: namespace,
			Name:      "unique_unknown_words",
			Help:      "Distinct unknown words of the last run",
		})
		pr.runDuration = prom.NewHistogram(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "run_duration_seconds",
			Help:      "Duration of a full spell-check run",
			Buckets:   prom.DefBuckets,
		})
		pr.runOutcome = prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "run_outcomes_total",
			Help:      "Run outcomes by final status",
		}, []string{"outcome"})
		reg.MustRegister(pr.unitsChecked, pr.unknownWords, pr.suppressed, pr.failures, pr.uniqueWords, pr.runDuration, pr.runOutcome)
	})
	return pr
}

func (p *PrometheusRecorder) IncUnitsChecked(kind UnitKind) {
	if p == nil || p.unitsChecked == nil {
		return
	}
	p.unitsChecked.WithLabelValues(string(kind)).Inc()
}

func (p *PrometheusRecorder) IncUnknownWords() {
	if p == nil || p.unknownWords == nil {
		return
	}
	p.unknownWords.Inc()
}

func (p *PrometheusRecorder) IncSuppressedWords() {
	if p == nil || p.suppressed == nil {
		return
	}
	p.suppressed.Inc()
}

func (p *PrometheusRecorder) IncCheckFailures() {
	if p == nil || p.failures == nil {
		return
	}
	p.failures.Inc()
}

func (p *PrometheusRecorder) SetUniqueWords(n int) {
	if p == nil || p.uniqueWords == nil {
		return
	}
	p.uniqueWords.Set(float64(n))
}

func (p *PrometheusRecorder) ObserveRunDuration(d time.Duration) {
	if p == nil || p.runDuration == nil {
		return
	}
	p.runDuration.Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncRunOutcome(outcome OutcomeLabel) {
	if p == nil || p.runOutcome == nil {
		return
	}
	p.runOutcome.WithLabelValues(string(outcome)).Inc()
}
