package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "ledgertree"

// Source failure kinds.
const (
	SourceHierarchy = "hierarchy"
	SourceLedgers   = "ledgers"
)

// Metrics captures hierarchy rebuild health. A nil *Metrics records nothing.
type Metrics struct {
	rebuilds       prometheus.Counter
	nodes          prometheus.Gauge
	options        prometheus.Gauge
	sourceFailures *prometheus.CounterVec
	skippedLedgers *prometheus.CounterVec
	ledgersCreated prometheus.Counter
}

// New registers the instruments with registerer, or the default registerer
// when nil.
func New(registerer prometheus.Registerer) *Metrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	m := &Metrics{
		rebuilds: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rebuilds_total",
			Help:      "Number of wholesale hierarchy rebuilds.",
		}),
		nodes: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "tree_nodes",
			Help:      "Number of nodes in the current hierarchy tree.",
		}),
		options: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "hierarchy_options",
			Help:      "Number of flattened hierarchy options.",
		}),
		sourceFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "source_failures_total",
			Help:      "Fetch failures by source.",
		}, []string{"source"}),
		skippedLedgers: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "skipped_ledgers_total",
			Help:      "Tenant ledgers left out of the tree, by reason.",
		}, []string{"reason"}),
		ledgersCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ledgers_created_total",
			Help:      "Tenant ledgers created through this process.",
		}),
	}

	registerer.MustRegister(m.rebuilds, m.nodes, m.options, m.sourceFailures, m.skippedLedgers, m.ledgersCreated)
	return m
}

// RecordRebuild records one rebuild and the resulting sizes.
func (m *Metrics) RecordRebuild(nodes, options int) {
	if m == nil {
		return
	}
	m.rebuilds.Inc()
	m.nodes.Set(float64(nodes))
	m.options.Set(float64(options))
}

// RecordSourceFailure counts a failed fetch from source.
func (m *Metrics) RecordSourceFailure(source string) {
	if m == nil {
		return
	}
	m.sourceFailures.WithLabelValues(source).Inc()
}

// RecordSkippedLedger counts a tenant ledger that could not be grafted.
func (m *Metrics) RecordSkippedLedger(reason string) {
	if m == nil {
		return
	}
	m.skippedLedgers.WithLabelValues(reason).Inc()
}

// RecordLedgerCreated counts a confirmed ledger creation.
func (m *Metrics) RecordLedgerCreated() {
	if m == nil {
		return
	}
	m.ledgersCreated.Inc()
}
