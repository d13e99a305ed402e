package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordBreakerState(t *testing.T) {
	m := New()

	m.RecordBreakerState("open")
	assert.Equal(t, float64(1), testutil.ToFloat64(m.BreakerState))

	m.RecordBreakerState("half_open")
	assert.Equal(t, float64(2), testutil.ToFloat64(m.BreakerState))

	m.RecordBreakerState("closed")
	assert.Equal(t, float64(0), testutil.ToFloat64(m.BreakerState))
}

func TestCountersIncrement(t *testing.T) {
	m := New()
	m.ParserErrors.WithLabelValues("invalid_price").Inc()
	m.ParserErrors.WithLabelValues("invalid_price").Inc()
	assert.Equal(t, float64(2), testutil.ToFloat64(m.ParserErrors.WithLabelValues("invalid_price")))
}
