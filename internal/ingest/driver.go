package ingest

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/lxbook/bookstream/internal/book"
	"github.com/lxbook/bookstream/internal/broadcast"
	"github.com/lxbook/bookstream/internal/market"
	"github.com/lxbook/bookstream/internal/metrics"
	"github.com/lxbook/bookstream/internal/stoptable"
)

// IngressSource yields raw lines to the driver. Next blocks until a line is
// available, ctx is canceled, or the source is exhausted (io.EOF).
type IngressSource interface {
	Next(ctx context.Context) ([]byte, error)
	Close() error
}

// BookSet owns one *book.Book per known market, created up front from the
// market registry rather than lazily, so the driver never mutates the map
// concurrently with readers resolving it for RPC snapshots.
type BookSet struct {
	books map[uint16]*book.Book
}

// NewBookSet creates an empty book for every market in the registry.
func NewBookSet(reg *market.Registry, limits book.Limits) *BookSet {
	set := &BookSet{books: make(map[uint16]*book.Book, reg.Len())}
	for _, entry := range reg.All() {
		set.books[entry.MarketID] = book.New(entry.MarketID, entry.Symbol, limits)
	}
	return set
}

// Get returns the book for a market id, if known.
func (s *BookSet) Get(marketID uint16) (*book.Book, bool) {
	b, ok := s.books[marketID]
	return b, ok
}

// Lookup adapts BookSet to stoptable.BookLookup.
func (s *BookSet) Lookup() stoptable.BookLookup {
	return s.Get
}

// All returns every book, for snapshot/listing RPCs.
func (s *BookSet) All() map[uint16]*book.Book {
	return s.books
}

// Driver pulls lines from an IngressSource, parses and validates them, and
// routes accepted events to the book set, the stop table, and the
// broadcast ring. It owns a single goroutine's worth of mutation: the
// orderbook and stop-table single-writer invariant holds only as long as
// one Driver instance drives a given BookSet/Table pair.
type Driver struct {
	parser  *Parser
	breaker *Breaker
	books   *BookSet
	stops   *stoptable.Table
	ring    *broadcast.Ring
	log     *logrus.Entry
	now     func() time.Time
	metrics *metrics.Metrics
}

// SetMetrics attaches the process's Prometheus observables. Optional: a
// Driver with no metrics attached runs identically, just unobserved
// (tests construct Driver without it).
func (d *Driver) SetMetrics(m *metrics.Metrics) {
	d.metrics = m
}

// NewDriver wires a parser, breaker, book set, stop table and broadcast
// ring into a runnable driver.
func NewDriver(parser *Parser, breaker *Breaker, books *BookSet, stops *stoptable.Table, ring *broadcast.Ring, log *logrus.Entry) *Driver {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Driver{parser: parser, breaker: breaker, books: books, stops: stops, ring: ring, log: log, now: time.Now}
}

// Run drains source until ctx is canceled or the source reports io.EOF, at
// which point Run returns nil. Any other source error is returned wrapped.
func (d *Driver) Run(ctx context.Context, source IngressSource) error {
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		line, err := source.Next(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return err
			}
			return fmt.Errorf("ingest: source: %w", err)
		}
		if len(line) == 0 {
			continue
		}

		d.processLine(line)
	}
}

func (d *Driver) processLine(line []byte) {
	if !d.breaker.Allow() {
		return
	}

	if d.metrics != nil {
		d.metrics.ParserTotal.WithLabelValues().Inc()
	}

	event, err := d.parser.Parse(line)
	if err != nil {
		var pe *ParseError
		kind := Malformed
		if errors.As(err, &pe) {
			kind = pe.Kind
		}
		d.breaker.RecordFailure(kind, string(line))
		if d.breaker.ShouldSample() {
			d.log.WithError(err).WithField("kind", kind.String()).Warn("rejected ingress line")
		}
		if d.metrics != nil {
			d.metrics.ParserErrors.WithLabelValues(kind.String()).Inc()
			d.metrics.RecordBreakerState(d.breaker.GetState().String())
		}
		return
	}
	d.breaker.RecordSuccess()
	if d.metrics != nil {
		d.metrics.RecordBreakerState(d.breaker.GetState().String())
	}

	if event.IsTrigger {
		d.routeStop(event)
		return
	}
	d.routeBook(event)
}

func (d *Driver) routeStop(event OrderEvent) {
	switch event.Status {
	case StatusOpen:
		d.stops.Upsert(stoptable.StopOrder{
			ID:               event.OID,
			MarketID:         event.MarketID,
			Side:             event.Side,
			TriggerPrice:     event.Price,
			Size:             event.Size,
			User:             event.User,
			TriggerCondition: event.TriggerCondition,
			TsMs:             event.TsMs,
		})
	case StatusFilled, StatusCanceled:
		if err := d.stops.Remove(event.OID); err != nil {
			d.log.WithError(err).Debug("remove unknown stop order")
		}
	}
}

func (d *Driver) routeBook(event OrderEvent) {
	b, ok := d.books.Get(event.MarketID)
	if !ok {
		d.log.WithField("market_id", event.MarketID).Warn("event for market outside registered universe")
		return
	}

	switch event.Status {
	case StatusOpen:
		if err := b.Add(book.Order{
			ID:       event.OID,
			MarketID: event.MarketID,
			Side:     event.Side,
			Price:    event.Price,
			Size:     event.Size,
			TsMs:     event.TsMs,
			User:     event.User,
		}); err != nil {
			d.log.WithError(err).Debug("add rejected")
			return
		}
	case StatusFilled, StatusCanceled:
		if err := b.Remove(event.OID); err != nil {
			d.log.WithError(err).Debug("remove rejected")
			return
		}
	default:
		return
	}

	seq := b.Sequence()
	if d.metrics != nil {
		label := fmt.Sprintf("%d", event.MarketID)
		d.metrics.BookOrdersTotal.WithLabelValues(label).Set(float64(b.OrderCount()))
		d.metrics.BookSequence.WithLabelValues(label).Set(float64(seq))
	}

	d.ring.Publish(broadcast.MarketUpdate{
		MarketID: event.MarketID,
		Sequence: seq,
		TsNs:     d.now().UnixNano(),
	})
}
