package ingest

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lxbook/bookstream/internal/book"
	"github.com/lxbook/bookstream/internal/broadcast"
	"github.com/lxbook/bookstream/internal/market"
	"github.com/lxbook/bookstream/internal/metrics"
	"github.com/lxbook/bookstream/internal/stoptable"
)

func newTestDriver(t *testing.T) (*Driver, *BookSet, *stoptable.Table, *broadcast.Ring, uint16) {
	t.Helper()
	reg, err := market.New([]string{"BTC"})
	require.NoError(t, err)
	btcID, _ := reg.MarketID("BTC")

	books := NewBookSet(reg, book.DefaultLimits())
	stops := stoptable.New()
	ring := broadcast.NewRing(16)
	parser := New(reg, DefaultLimits())
	breaker := NewBreaker(DefaultBreakerConfig())
	log := logrus.NewEntry(logrus.New())

	return NewDriver(parser, breaker, books, stops, ring, log), books, stops, ring, btcID
}

func runLines(t *testing.T, d *Driver, lines ...string) {
	t.Helper()
	ch := make(chan []byte, len(lines))
	for _, l := range lines {
		ch <- []byte(l)
	}
	close(ch)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	err := d.Run(ctx, NewChannelSource(ch))
	require.NoError(t, err)
}

func TestDriver_RoutesOpenAndFilledToBook(t *testing.T) {
	d, books, _, ring, btcID := newTestDriver(t)

	runLines(t, d,
		`{"status":"open","order":{"oid":1,"coin":"BTC","side":"B","limitPx":"100","sz":"1"}}`,
		`{"status":"filled","order":{"oid":1,"coin":"BTC","side":"B","limitPx":"100","sz":"1"}}`,
	)

	b, ok := books.Get(btcID)
	require.True(t, ok)
	assert.Equal(t, 0, b.OrderCount())
	assert.Equal(t, uint64(2), ring.Len())
}

func TestDriver_RoutesTriggerOrdersToStopTable(t *testing.T) {
	d, books, stops, _, btcID := newTestDriver(t)

	runLines(t, d, `{"status":"open","order":{"oid":5,"coin":"BTC","side":"B","limitPx":"100","sz":"1","isTrigger":true,"triggerCondition":"above"}}`)

	assert.Equal(t, 1, stops.Len())
	b, _ := books.Get(btcID)
	assert.Equal(t, 0, b.OrderCount()) // trigger orders never reach the book

	runLines(t, d, `{"status":"canceled","order":{"oid":5,"coin":"BTC","side":"B","limitPx":"100","sz":"1","isTrigger":true}}`)
	assert.Equal(t, 0, stops.Len())
}

func TestDriver_MalformedLinesDoNotPublish(t *testing.T) {
	d, _, _, ring, _ := newTestDriver(t)
	runLines(t, d, `not json`, `{"status":"open","order":{"oid":1,"coin":"UNKNOWN","side":"B","limitPx":"1","sz":"1"}}`)
	assert.Equal(t, uint64(0), ring.Len())
}

func TestDriver_OpenBreakerSuppressesProcessing(t *testing.T) {
	reg, err := market.New([]string{"BTC"})
	require.NoError(t, err)
	books := NewBookSet(reg, book.DefaultLimits())
	stops := stoptable.New()
	ring := broadcast.NewRing(16)
	parser := New(reg, DefaultLimits())
	breaker := NewBreaker(BreakerConfig{Window: time.Minute, Threshold: 1, OpenDuration: time.Hour})
	d := NewDriver(parser, breaker, books, stops, ring, logrus.NewEntry(logrus.New()))

	runLines(t, d,
		`not json`, // trips the breaker (threshold=1)
		`{"status":"open","order":{"oid":1,"coin":"BTC","side":"B","limitPx":"100","sz":"1"}}`, // suppressed while open
	)

	assert.Equal(t, Open, breaker.GetState())
	assert.Equal(t, uint64(0), ring.Len())
}

func TestDriver_StopsAtContextCancellation(t *testing.T) {
	d, _, _, _, _ := newTestDriver(t)
	ch := make(chan []byte)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := d.Run(ctx, NewChannelSource(ch))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDriver_RecordsMetricsWhenAttached(t *testing.T) {
	d, books, _, _, btcID := newTestDriver(t)
	m := metrics.New()
	d.SetMetrics(m)

	runLines(t, d,
		`not json`,
		`{"status":"open","order":{"oid":1,"coin":"BTC","side":"B","limitPx":"100","sz":"1"}}`,
	)

	b, _ := books.Get(btcID)
	assert.Equal(t, 1, b.OrderCount())
	assert.Equal(t, float64(1), testutil.ToFloat64(m.ParserErrors.WithLabelValues("malformed")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.BookOrdersTotal.WithLabelValues("0")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.BookSequence.WithLabelValues("0")))
}
