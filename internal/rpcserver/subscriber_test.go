package rpcserver

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lxbook/bookstream/internal/book"
	"github.com/lxbook/bookstream/internal/broadcast"
	"github.com/lxbook/bookstream/internal/ingest"
	"github.com/lxbook/bookstream/internal/market"
	"github.com/lxbook/bookstream/internal/metrics"
)

func newTestBookSet(t *testing.T, symbols ...string) (*ingest.BookSet, *market.Registry) {
	t.Helper()
	reg, err := market.New(symbols)
	require.NoError(t, err)
	return ingest.NewBookSet(reg, book.DefaultLimits()), reg
}

type collector struct {
	mu   sync.Mutex
	snaps []book.Snapshot
}

func (c *collector) send(s book.Snapshot) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.snaps = append(c.snaps, s)
	return nil
}

func (c *collector) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.snaps)
}

func (c *collector) last() book.Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snaps[len(c.snaps)-1]
}

func TestSession_EmitsInitialSnapshotPerMarket(t *testing.T) {
	books, reg := newTestBookSet(t, "BTC", "ETH")
	ring := broadcast.NewRing(16)
	btcID, _ := reg.MarketID("BTC")
	ethID, _ := reg.MarketID("ETH")

	b, _ := books.Get(btcID)
	require.NoError(t, b.Add(book.Order{ID: 1, MarketID: btcID, Side: book.Buy, Price: decimal.NewFromInt(100), Size: decimal.NewFromInt(1)}))

	sess := NewSession(books, ring, []uint16{btcID, ethID}, 10, 0)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	c := &collector{}
	err := sess.Run(ctx, c.send)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	require.Equal(t, 2, c.count())
}

func TestSession_StreamsImmediateUpdatesForSubscribedMarketsOnly(t *testing.T) {
	books, reg := newTestBookSet(t, "BTC", "ETH")
	ring := broadcast.NewRing(16)
	btcID, _ := reg.MarketID("BTC")
	ethID, _ := reg.MarketID("ETH")

	sess := NewSession(books, ring, []uint16{btcID}, 10, 0)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	c := &collector{}
	done := make(chan struct{})
	go func() {
		_ = sess.Run(ctx, c.send)
		close(done)
	}()

	// Let the session take its cursor and emit the initial snapshot.
	time.Sleep(10 * time.Millisecond)

	ring.Publish(broadcast.MarketUpdate{MarketID: ethID, Sequence: 1, TsNs: 1})
	ring.Publish(broadcast.MarketUpdate{MarketID: btcID, Sequence: 1, TsNs: 2})

	require.Eventually(t, func() bool { return c.count() >= 2 }, time.Second, 5*time.Millisecond)
	cancel()
	<-done

	// One initial snapshot for BTC, plus one for the BTC update; the ETH
	// update must never have been forwarded.
	for _, snap := range func() []book.Snapshot { c.mu.Lock(); defer c.mu.Unlock(); return c.snaps }() {
		assert.Equal(t, btcID, snap.MarketID)
	}
}

func TestSession_LagTriggersResync(t *testing.T) {
	books, reg := newTestBookSet(t, "BTC")
	ring := broadcast.NewRing(2) // tiny capacity so a burst overruns it
	btcID, _ := reg.MarketID("BTC")

	sess := NewSession(books, ring, []uint16{btcID}, 10, 0)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	c := &collector{}
	done := make(chan struct{})
	go func() {
		_ = sess.Run(ctx, c.send)
		close(done)
	}()
	time.Sleep(10 * time.Millisecond) // cursor taken, initial snapshot sent (count=1)

	for i := 0; i < 10; i++ {
		ring.Publish(broadcast.MarketUpdate{MarketID: btcID, Sequence: uint64(i), TsNs: int64(i)})
	}

	require.Eventually(t, func() bool { return c.count() >= 2 }, time.Second, 5*time.Millisecond)
	cancel()
	<-done
}

func TestSession_LagIncrementsMetric(t *testing.T) {
	books, reg := newTestBookSet(t, "BTC")
	ring := broadcast.NewRing(2) // tiny capacity so a burst overruns it
	btcID, _ := reg.MarketID("BTC")

	sess := NewSession(books, ring, []uint16{btcID}, 10, 0)
	m := metrics.New()
	sess.SetMetrics(m)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	c := &collector{}
	done := make(chan struct{})
	go func() {
		_ = sess.Run(ctx, c.send)
		close(done)
	}()
	time.Sleep(10 * time.Millisecond)

	for i := 0; i < 10; i++ {
		ring.Publish(broadcast.MarketUpdate{MarketID: btcID, Sequence: uint64(i), TsNs: int64(i)})
	}

	require.Eventually(t, func() bool { return testutil.ToFloat64(m.BroadcastLag) > 0 }, time.Second, 5*time.Millisecond)
	cancel()
	<-done
}

func TestSession_CoalescesUpdatesWithinInterval(t *testing.T) {
	books, reg := newTestBookSet(t, "BTC")
	ring := broadcast.NewRing(64)
	btcID, _ := reg.MarketID("BTC")

	sess := NewSession(books, ring, []uint16{btcID}, 10, 50*time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	c := &collector{}
	done := make(chan struct{})
	go func() {
		_ = sess.Run(ctx, c.send)
		close(done)
	}()
	time.Sleep(5 * time.Millisecond) // past the initial snapshot (count=1)

	for i := 0; i < 5; i++ {
		ring.Publish(broadcast.MarketUpdate{MarketID: btcID, Sequence: uint64(i), TsNs: int64(i)})
	}

	// Within one tick, five updates to the same market must coalesce to a
	// single additional emission.
	time.Sleep(70 * time.Millisecond)
	cancel()
	<-done

	assert.Equal(t, 2, c.count())
}

func TestSession_DuplicateMarketIDsDeduped(t *testing.T) {
	books, reg := newTestBookSet(t, "BTC")
	ring := broadcast.NewRing(16)
	btcID, _ := reg.MarketID("BTC")

	sess := NewSession(books, ring, []uint16{btcID, btcID, btcID}, 10, 0)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	c := &collector{}
	_ = sess.Run(ctx, c.send)
	assert.Equal(t, 1, c.count())
}

func TestSession_UnknownMarketIDSkipped(t *testing.T) {
	books, reg := newTestBookSet(t, "BTC")
	ring := broadcast.NewRing(16)
	btcID, _ := reg.MarketID("BTC")

	sess := NewSession(books, ring, []uint16{btcID, 999}, 10, 0)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	c := &collector{}
	_ = sess.Run(ctx, c.send)
	assert.Equal(t, 1, c.count())
}
