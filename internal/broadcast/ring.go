// Package broadcast implements the single-producer/many-consumer fan-out
// plane: a fixed-capacity ring of MarketUpdate records, with per-consumer
// cursors and lag detection.
//
// Grounded on luxfi-dex/pkg/websocket/server.go's hub/register/broadcast
// pattern, generalized from "broadcast to all currently-registered
// channels" (which can block the producer on a slow consumer) to a bounded
// ring that every consumer reads at its own pace, never blocking the writer.
package broadcast

import (
	"context"
	"sync"
)

// MarketUpdate is the signal record published by the ingestion driver after
// every effective book mutation (an add or remove that bumped the book's
// sequence). Stop-table changes are not published. It carries no embedded
// deltas: subscribers re-derive state via Snapshot (see DESIGN.md for the
// rationale).
type MarketUpdate struct {
	MarketID uint16
	Sequence uint64
	TsNs     int64
}

// Ring is a bounded, multi-consumer broadcast buffer. The producer never
// blocks: Publish always succeeds, overwriting the oldest slot once the
// ring wraps. A consumer whose Cursor has fallen more than capacity records
// behind observes a lag event on its next Next call.
type Ring struct {
	mu       sync.Mutex
	buf      []MarketUpdate
	capacity uint64
	total    uint64
	notify   chan struct{}
}

// NewRing creates a ring holding capacity records; a capacity below 1 is
// raised to 1. The configured default (broadcast_capacity) is 100,000.
func NewRing(capacity int) *Ring {
	if capacity < 1 {
		capacity = 1
	}
	return &Ring{
		buf:      make([]MarketUpdate, capacity),
		capacity: uint64(capacity),
		notify:   make(chan struct{}),
	}
}

// Publish appends a record. Producer-side only; never blocks on consumers.
func (r *Ring) Publish(u MarketUpdate) {
	r.mu.Lock()
	r.buf[r.total%r.capacity] = u
	r.total++
	old := r.notify
	r.notify = make(chan struct{})
	r.mu.Unlock()
	close(old)
}

// Cursor is a consumer's private read position into the ring.
type Cursor struct {
	pos uint64
}

// NewCursor returns a cursor positioned at the ring's current write head,
// so the consumer only observes updates published after subscription —
// the caller is responsible for emitting an initial snapshot first.
func (r *Ring) NewCursor() *Cursor {
	r.mu.Lock()
	defer r.mu.Unlock()
	return &Cursor{pos: r.total}
}

// Next blocks until a record is available for this cursor, the ring is
// closed via ctx cancellation, or ctx is otherwise done. A non-zero lag
// return value is the count of records the consumer missed because its
// cursor fell behind the ring's retained window; the caller MUST treat
// this as a lag event and resynchronize.
func (r *Ring) Next(ctx context.Context, c *Cursor) (MarketUpdate, uint64, error) {
	for {
		r.mu.Lock()
		if r.total > c.pos {
			var lag uint64
			if r.total-c.pos > r.capacity {
				lag = r.total - c.pos - r.capacity
				c.pos = r.total - r.capacity
			}
			rec := r.buf[c.pos%r.capacity]
			c.pos++
			r.mu.Unlock()
			return rec, lag, nil
		}
		waitCh := r.notify
		r.mu.Unlock()

		select {
		case <-waitCh:
		case <-ctx.Done():
			var zero MarketUpdate
			return zero, 0, ctx.Err()
		}
	}
}

// Len returns the number of records ever published, for metrics.
func (r *Ring) Len() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.total
}
