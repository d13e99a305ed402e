// Package rpcserver implements the subscription server (spec §4.G, §6):
// SubscribeOrderbook/GetOrderbook/GetMarkets/GetStopOrders over gRPC, plus
// Unimplemented stubs for the out-of-core mark-price RPCs.
//
// The per-subscriber streaming logic (subscriber.go) is kept independent
// of the generated protobuf types so it can be unit tested directly; only
// server.go, the thin pb.OrderbookServiceServer adapter, depends on the
// generated proto/gen/orderbook package (produced at build time, see
// ../../Makefile, and not committed — the same convention luxfi-dex's
// pkg/grpc and IRIO-ORG-Trading-System use for their generated bindings).
package rpcserver

import (
	"context"
	"time"

	"github.com/lxbook/bookstream/internal/book"
	"github.com/lxbook/bookstream/internal/broadcast"
	"github.com/lxbook/bookstream/internal/ingest"
	"github.com/lxbook/bookstream/internal/metrics"
)

// Session drives one SubscribeOrderbook call's lifecycle: initial
// snapshot, then draining the broadcast ring for the requested markets,
// coalescing at the caller's cadence when update_interval_ms > 0.
// Matches the per-subscriber state machine in spec §4.G:
// Connecting -> Initializing -> Streaming -> (Lagging -> Streaming) -> Terminating.
type Session struct {
	books     *ingest.BookSet
	ring      *broadcast.Ring
	marketIDs map[uint16]struct{}
	order     []uint16 // stable iteration order for initial snapshots
	depth     int
	interval  time.Duration

	cursor  *broadcast.Cursor
	metrics *metrics.Metrics
}

// SetMetrics attaches the process's Prometheus observables, used to count
// lag events (spec §4.F). Optional: tests construct a Session without it.
func (s *Session) SetMetrics(m *metrics.Metrics) {
	s.metrics = m
}

// NewSession builds a session for the given market ids, depth, and
// coalescing interval (0 = emit every update immediately).
func NewSession(books *ingest.BookSet, ring *broadcast.Ring, marketIDs []uint16, depth int, interval time.Duration) *Session {
	set := make(map[uint16]struct{}, len(marketIDs))
	order := make([]uint16, 0, len(marketIDs))
	for _, id := range marketIDs {
		if _, dup := set[id]; dup {
			continue
		}
		set[id] = struct{}{}
		order = append(order, id)
	}
	return &Session{books: books, ring: ring, marketIDs: set, order: order, depth: depth, interval: interval}
}

// Run blocks until ctx is canceled or send returns an error (the
// transport-level send failure that, per spec §5, drives the subscriber
// to its terminal state). send receives one book.Snapshot per emission;
// the caller (server.go) converts it to the wire OrderbookSnapshot.
func (s *Session) Run(ctx context.Context, send func(book.Snapshot) error) error {
	s.cursor = s.ring.NewCursor()
	if err := s.resync(send); err != nil {
		return err
	}
	if s.interval <= 0 {
		return s.streamImmediate(ctx, send)
	}
	return s.streamCoalesced(ctx, send)
}

// resync re-emits the initial snapshot for every subscribed market; also
// used to recover from a lag event, per spec §4.F ("consumer MUST
// resynchronize by issuing a fresh snapshot for each of its markets").
func (s *Session) resync(send func(book.Snapshot) error) error {
	for _, marketID := range s.order {
		if err := s.emit(marketID, send); err != nil {
			return err
		}
	}
	return nil
}

func (s *Session) emit(marketID uint16, send func(book.Snapshot) error) error {
	b, ok := s.books.Get(marketID)
	if !ok {
		return nil
	}
	return send(b.Snapshot(s.depth, time.Now().UnixNano()))
}

func (s *Session) streamImmediate(ctx context.Context, send func(book.Snapshot) error) error {
	for {
		upd, lag, err := s.ring.Next(ctx, s.cursor)
		if err != nil {
			return err
		}
		if lag > 0 {
			if s.metrics != nil {
				s.metrics.BroadcastLag.Inc()
			}
			if err := s.resync(send); err != nil {
				return err
			}
			continue
		}
		if _, subscribed := s.marketIDs[upd.MarketID]; !subscribed {
			continue
		}
		if err := s.emit(upd.MarketID, send); err != nil {
			return err
		}
	}
}

// streamCoalesced holds the latest pending market per tick and flushes at
// s.interval, per spec §4.G's "hold the latest sequence per market; flush
// at the cadence" rule. A background goroutine drains the ring so ticks
// are never missed while no update has arrived.
func (s *Session) streamCoalesced(ctx context.Context, send func(book.Snapshot) error) error {
	type result struct {
		upd broadcast.MarketUpdate
		lag uint64
		err error
	}
	results := make(chan result)
	go func() {
		for {
			upd, lag, err := s.ring.Next(ctx, s.cursor)
			select {
			case results <- result{upd: upd, lag: lag, err: err}:
			case <-ctx.Done():
				return
			}
			if err != nil {
				return
			}
		}
	}()

	pending := make(map[uint16]struct{})
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case r := <-results:
			if r.err != nil {
				return r.err
			}
			if r.lag > 0 {
				if s.metrics != nil {
					s.metrics.BroadcastLag.Inc()
				}
				if err := s.resync(send); err != nil {
					return err
				}
				pending = make(map[uint16]struct{})
				continue
			}
			if _, subscribed := s.marketIDs[r.upd.MarketID]; subscribed {
				pending[r.upd.MarketID] = struct{}{}
			}
		case <-ticker.C:
			for marketID := range pending {
				if err := s.emit(marketID, send); err != nil {
					return err
				}
			}
			pending = make(map[uint16]struct{})
		}
	}
}
