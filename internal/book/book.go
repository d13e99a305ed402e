// Package book implements the per-market Level-2 orderbook engine:
// price-indexed ordered sides, FIFO-per-level aggregation, an order_id
// locator for O(1) removal, and a monotonic sequence counter.
//
// Grounded on luxfi-dex/pkg/lx/orderbook.go and types.go for the overall
// shape (price-ordered sides, per-order locator, sequence counter), adapted
// away from order matching (a Non-goal of this spec) toward pure
// maintenance semantics: add/remove/snapshot only.
package book

import (
	"fmt"
	"sort"
	"sync"

	"github.com/shopspring/decimal"
)

// Book is a single market's orderbook. All mutating methods assume a
// single-writer discipline — callers (the ingestion driver) never call
// Add/Remove concurrently for the same Book. Snapshot and BestBid/BestAsk
// are safe to call concurrently with writers; they take a short read lock
// over the O(depth) materialization rather than copying the whole side.
type Book struct {
	mu       sync.RWMutex
	marketID uint16
	symbol   string

	bids []*level // sorted descending by price
	asks []*level // sorted ascending by price

	bidIndex map[string]int // price.String() -> index into bids
	askIndex map[string]int // price.String() -> index into asks

	locator     map[uint64]locatorEntry
	sizeByOrder map[uint64]decimal.Decimal

	sequence    uint64
	totalOrders int
	limits      Limits

	duplicateAdds   uint64
	unknownRemoves  uint64
	capacityRejects uint64
}

// New creates an empty book for one market.
func New(marketID uint16, symbol string, limits Limits) *Book {
	return &Book{
		marketID: marketID,
		symbol:   symbol,
		bidIndex: make(map[string]int),
		askIndex: make(map[string]int),
		locator:     make(map[uint64]locatorEntry),
		sizeByOrder: make(map[uint64]decimal.Decimal),
		limits:      limits,
	}
}

func (b *Book) sideSlices(side Side) (*[]*level, map[string]int) {
	if side == Buy {
		return &b.bids, b.bidIndex
	}
	return &b.asks, b.askIndex
}

// less reports whether price "a" sorts before price "b" within the given
// side's ordering: bids descending, asks ascending.
func less(side Side, a, b decimal.Decimal) bool {
	if side == Buy {
		return a.Cmp(b) > 0
	}
	return a.Cmp(b) < 0
}

// findLevel locates the level for a price within a side, or returns
// (nil, insertion index, false).
func (b *Book) findLevel(side Side, price decimal.Decimal) (*level, int, bool) {
	slicePtr, index := b.sideSlices(side)
	levels := *slicePtr
	if i, ok := index[price.String()]; ok {
		return levels[i], i, true
	}
	pos := sort.Search(len(levels), func(i int) bool {
		return !less(side, levels[i].price, price)
	})
	return nil, pos, false
}

func (b *Book) insertLevel(side Side, pos int, lv *level) {
	slicePtr, index := b.sideSlices(side)
	levels := *slicePtr
	levels = append(levels, nil)
	copy(levels[pos+1:], levels[pos:])
	levels[pos] = lv
	*slicePtr = levels
	for i := pos; i < len(levels); i++ {
		index[levels[i].price.String()] = i
	}
}

func (b *Book) removeLevelAt(side Side, pos int) {
	slicePtr, index := b.sideSlices(side)
	levels := *slicePtr
	delete(index, levels[pos].price.String())
	levels = append(levels[:pos], levels[pos+1:]...)
	*slicePtr = levels
	for i := pos; i < len(levels); i++ {
		index[levels[i].price.String()] = i
	}
}

// Add inserts a new resting order. It is a no-op (not a fatal error, but a
// counted, wrapped error) if order_id is already present, and does not bump
// sequence in that case.
func (b *Book) Add(o Order) error {
	if o.IsTrigger {
		return fmt.Errorf("book: trigger order %d must not reach the book", o.ID)
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, exists := b.locator[o.ID]; exists {
		b.duplicateAdds++
		return fmt.Errorf("book: order %d: %w", o.ID, ErrDuplicateOrder)
	}

	lv, pos, found := b.findLevel(o.Side, o.Price)
	if !found {
		if b.limits.MaxLevelsPerSide > 0 {
			slicePtr, _ := b.sideSlices(o.Side)
			if len(*slicePtr) >= b.limits.MaxLevelsPerSide {
				b.capacityRejects++
				return fmt.Errorf("book: %s side at max levels: %w", o.Side, ErrCapacityExceeded)
			}
		}
	}
	if b.limits.MaxTotalOrders > 0 && b.totalOrders >= b.limits.MaxTotalOrders {
		b.capacityRejects++
		return fmt.Errorf("book: market %d at max total orders: %w", b.marketID, ErrCapacityExceeded)
	}
	if found && b.limits.MaxOrdersPerLevel > 0 && len(lv.orders) >= b.limits.MaxOrdersPerLevel {
		b.capacityRejects++
		return fmt.Errorf("book: level %s at max orders: %w", o.Price.String(), ErrCapacityExceeded)
	}

	if !found {
		lv = &level{price: o.Price, aggregate: decimal.Zero}
		b.insertLevel(o.Side, pos, lv)
	}
	lv.orders = append(lv.orders, o.ID)
	lv.aggregate = lv.aggregate.Add(o.Size)
	b.locator[o.ID] = locatorEntry{side: o.Side, price: o.Price}
	b.sizeByOrder[o.ID] = o.Size
	b.totalOrders++
	b.sequence++
	return nil
}

// Remove deletes a resting order by id. No-op (no sequence bump) if unknown.
func (b *Book) Remove(orderID uint64) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	loc, ok := b.locator[orderID]
	if !ok {
		b.unknownRemoves++
		return fmt.Errorf("book: order %d: %w", orderID, ErrUnknownOrder)
	}

	lv, pos, found := b.findLevel(loc.side, loc.price)
	if !found {
		// Locator pointed at a level that no longer exists: a logic
		// violation that must not happen under single-writer discipline,
		// but we count and recover rather than panic.
		delete(b.locator, orderID)
		b.unknownRemoves++
		return fmt.Errorf("book: order %d: locator pointed at missing level: %w", orderID, ErrUnknownOrder)
	}

	idx := -1
	for i, id := range lv.orders {
		if id == orderID {
			idx = i
			break
		}
	}
	if idx < 0 {
		delete(b.locator, orderID)
		b.unknownRemoves++
		return fmt.Errorf("book: order %d: not present in its level: %w", orderID, ErrUnknownOrder)
	}
	size := b.sizeByOrder[orderID]
	lv.orders = append(lv.orders[:idx], lv.orders[idx+1:]...)
	lv.aggregate = lv.aggregate.Sub(size)
	delete(b.sizeByOrder, orderID)
	delete(b.locator, orderID)
	b.totalOrders--

	if len(lv.orders) == 0 || lv.aggregate.IsZero() {
		b.removeLevelAt(loc.side, pos)
	}
	b.sequence++
	return nil
}

// BestBid returns the top bid level, or (LevelView{}, false) if empty.
func (b *Book) BestBid() (LevelView, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if len(b.bids) == 0 {
		return LevelView{}, false
	}
	return toView(b.bids[0]), true
}

// BestAsk returns the top ask level, or (LevelView{}, false) if empty.
func (b *Book) BestAsk() (LevelView, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if len(b.asks) == 0 {
		return LevelView{}, false
	}
	return toView(b.asks[0]), true
}

// MidPrice returns (bestBid+bestAsk)/2, used by the stop-order risk ranking.
// Returns false if either side is empty.
func (b *Book) MidPrice() (decimal.Decimal, bool) {
	bid, okBid := b.BestBid()
	ask, okAsk := b.BestAsk()
	if !okBid || !okAsk {
		return decimal.Zero, false
	}
	return bid.Price.Add(ask.Price).Div(decimal.NewFromInt(2)), true
}

func toView(lv *level) LevelView {
	return LevelView{Price: lv.price, Size: lv.aggregate, OrderCount: len(lv.orders)}
}

// Snapshot materializes the current sequence plus the top-depth levels on
// each side. depth 0 returns empty bids/asks with a valid sequence.
func (b *Book) Snapshot(depth int, tsNs int64) Snapshot {
	b.mu.RLock()
	defer b.mu.RUnlock()

	n := depth
	if n > len(b.bids) {
		n = len(b.bids)
	}
	bids := make([]LevelView, n)
	for i := 0; i < n; i++ {
		bids[i] = toView(b.bids[i])
	}

	n = depth
	if n > len(b.asks) {
		n = len(b.asks)
	}
	asks := make([]LevelView, n)
	for i := 0; i < n; i++ {
		asks[i] = toView(b.asks[i])
	}

	return Snapshot{
		MarketID: b.marketID,
		Sequence: b.sequence,
		TsNs:     tsNs,
		Bids:     bids,
		Asks:     asks,
	}
}

// Sequence returns the current sequence without materializing a snapshot.
func (b *Book) Sequence() uint64 {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.sequence
}

// OrderCount returns the number of resting orders, for metrics.
func (b *Book) OrderCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.totalOrders
}

// Counters exposes the engine's logic-violation counters for internal/metrics.
type Counters struct {
	DuplicateAdds   uint64
	UnknownRemoves  uint64
	CapacityRejects uint64
}

// Stats returns a snapshot of the engine's counters.
func (b *Book) Stats() Counters {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return Counters{
		DuplicateAdds:   b.duplicateAdds,
		UnknownRemoves:  b.unknownRemoves,
		CapacityRejects: b.capacityRejects,
	}
}
