package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.RecordRebuild(12, 7)
	m.RecordRebuild(14, 8)
	m.RecordSourceFailure(SourceLedgers)
	m.RecordSourceFailure(SourceLedgers)
	m.RecordSourceFailure(SourceHierarchy)
	m.RecordSkippedLedger("cycle")
	m.RecordLedgerCreated()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.rebuilds))
	assert.Equal(t, 14.0, testutil.ToFloat64(m.nodes))
	assert.Equal(t, 8.0, testutil.ToFloat64(m.options))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.sourceFailures.WithLabelValues(SourceLedgers)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.sourceFailures.WithLabelValues(SourceHierarchy)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.skippedLedgers.WithLabelValues("cycle")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ledgersCreated))
}

func TestMetrics_Nil(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.RecordRebuild(1, 1)
		m.RecordSourceFailure(SourceHierarchy)
		m.RecordSkippedLedger("orphan")
		m.RecordLedgerCreated()
	})
}

func TestNew_DuplicateRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	New(reg)
	assert.Panics(t, func() { New(reg) })
}
