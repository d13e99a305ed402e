// Package stoptable holds trigger ("stop") orders outside any orderbook
// and ranks them by risk on request.
//
// Grounded on original_source/src/stop_orders.rs for the StopOrder shape
// and the calculate_slippage / rank_stop_orders algorithms, reproduced in
// Go rather than translated line-for-line.
package stoptable

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/lxbook/bookstream/internal/book"
)

// ErrUnknownStopOrder is returned by Remove when the id is not present.
var ErrUnknownStopOrder = errors.New("stoptable: unknown stop order")

// RiskLevel buckets a ranked stop's 0-100 risk score into
// LOW<33.3<=MEDIUM<66.6<=HIGH.
type RiskLevel int

const (
	RiskLow RiskLevel = iota
	RiskMedium
	RiskHigh
)

func (l RiskLevel) String() string {
	switch l {
	case RiskMedium:
		return "medium"
	case RiskHigh:
		return "high"
	default:
		return "low"
	}
}

// Weights are the risk-ranking coefficients.
type Weights struct {
	Distance float64
	Slippage float64
}

// DefaultWeights matches the spec's documented defaults.
func DefaultWeights() Weights {
	return Weights{Distance: 0.6, Slippage: 0.4}
}

// StopOrder is a trigger order, disjoint from any orderbook.
type StopOrder struct {
	ID               uint64
	MarketID         uint16
	Side             book.Side
	TriggerPrice     decimal.Decimal
	Size             decimal.Decimal
	User             string
	TriggerCondition string
	TsMs             uint64
}

// Table is the stop-order side table: keyed by order id, with secondary
// indices by market and by user.
type Table struct {
	mu       sync.RWMutex
	orders   map[uint64]StopOrder
	byMarket map[uint16]map[uint64]struct{}
	byUser   map[string]map[uint64]struct{}
}

// New creates an empty stop-order table.
func New() *Table {
	return &Table{
		orders:   make(map[uint64]StopOrder),
		byMarket: make(map[uint16]map[uint64]struct{}),
		byUser:   make(map[string]map[uint64]struct{}),
	}
}

// Upsert inserts or replaces a stop order.
func (t *Table) Upsert(o StopOrder) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if existing, ok := t.orders[o.ID]; ok {
		t.unindex(existing)
	}
	t.orders[o.ID] = o
	t.index(o)
}

func (t *Table) index(o StopOrder) {
	if t.byMarket[o.MarketID] == nil {
		t.byMarket[o.MarketID] = make(map[uint64]struct{})
	}
	t.byMarket[o.MarketID][o.ID] = struct{}{}

	if t.byUser[o.User] == nil {
		t.byUser[o.User] = make(map[uint64]struct{})
	}
	t.byUser[o.User][o.ID] = struct{}{}
}

func (t *Table) unindex(o StopOrder) {
	delete(t.byMarket[o.MarketID], o.ID)
	delete(t.byUser[o.User], o.ID)
}

// Remove deletes a stop order by id.
func (t *Table) Remove(id uint64) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	existing, ok := t.orders[id]
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownStopOrder, id)
	}
	t.unindex(existing)
	delete(t.orders, id)
	return nil
}

// Len returns the number of resting stop orders.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.orders)
}

// Filter narrows a query beyond market_id/user.
type Filter struct {
	MarketID               *uint16
	User                   *string
	Side                   *book.Side
	MinNotional            *decimal.Decimal
	MaxNotional            *decimal.Decimal
	MaxDistanceFromMidBps  *decimal.Decimal
}

func (f Filter) matches(o StopOrder, mid decimal.Decimal, haveMid bool) bool {
	if f.MarketID != nil && o.MarketID != *f.MarketID {
		return false
	}
	if f.User != nil && o.User != *f.User {
		return false
	}
	if f.Side != nil && o.Side != *f.Side {
		return false
	}
	notional := o.TriggerPrice.Mul(o.Size)
	if f.MinNotional != nil && notional.LessThan(*f.MinNotional) {
		return false
	}
	if f.MaxNotional != nil && notional.GreaterThan(*f.MaxNotional) {
		return false
	}
	if f.MaxDistanceFromMidBps != nil {
		if !haveMid || mid.IsZero() {
			return false
		}
		distBps := distanceBps(o.TriggerPrice, mid)
		if distBps.GreaterThan(*f.MaxDistanceFromMidBps) {
			return false
		}
	}
	return true
}

func distanceBps(trigger, mid decimal.Decimal) decimal.Decimal {
	diff := trigger.Sub(mid).Abs()
	return diff.Div(mid).Mul(decimal.NewFromInt(10000))
}

// RankedStopOrder is a stop order annotated with its computed risk score.
type RankedStopOrder struct {
	Order                 StopOrder
	DistanceToTriggerBps  decimal.Decimal
	ExpectedSlippageBps   decimal.Decimal
	RiskScore             float64
	RiskLevel             RiskLevel
}

// BookLookup resolves the live book for a market, used to compute mid price
// and expected slippage when ranking is requested. The stop table never
// writes to a book; it only reads snapshots.
type BookLookup func(marketID uint16) (*book.Book, bool)

// Query returns stop orders matching filter, optionally ranked by risk.
func (t *Table) Query(filter Filter, rankByRisk bool, weights Weights, lookup BookLookup) []RankedStopOrder {
	t.mu.RLock()
	candidates := make([]StopOrder, 0, len(t.orders))
	for _, o := range t.orders {
		candidates = append(candidates, o)
	}
	t.mu.RUnlock()

	var mid decimal.Decimal
	var haveMid bool
	if filter.MarketID != nil && lookup != nil {
		if b, ok := lookup(*filter.MarketID); ok {
			mid, haveMid = b.MidPrice()
		}
	}

	out := make([]RankedStopOrder, 0, len(candidates))
	for _, o := range candidates {
		if !filter.matches(o, mid, haveMid) {
			continue
		}
		ranked := RankedStopOrder{Order: o}
		if rankByRisk {
			m, ok := mid, haveMid
			if filter.MarketID == nil {
				if b, lookupOk := lookup(o.MarketID); lookupOk {
					m, ok = b.MidPrice()
				}
			}
			ranked = rank(o, m, ok, weights, lookup)
		}
		out = append(out, ranked)
	}

	if rankByRisk {
		sort.Slice(out, func(i, j int) bool { return out[i].RiskScore > out[j].RiskScore })
	}
	return out
}

// rank computes the risk score for a single stop order against the current
// mid price and book depth:
//   risk = distance_weight*f_dist + slippage_weight*f_slip, rescaled to 0-100
func rank(o StopOrder, mid decimal.Decimal, haveMid bool, w Weights, lookup BookLookup) RankedStopOrder {
	r := RankedStopOrder{Order: o}
	if !haveMid || mid.IsZero() {
		return r
	}
	r.DistanceToTriggerBps = distanceBps(o.TriggerPrice, mid)

	fDist := fDist(r.DistanceToTriggerBps)

	var fSlip float64
	if b, ok := lookup(o.MarketID); ok {
		slipBps := expectedSlippageBps(b, o)
		r.ExpectedSlippageBps = slipBps
		fSlip = fSlipFn(slipBps)
	}

	score := (w.Distance*fDist + w.Slippage*fSlip) * 100
	r.RiskScore = score
	r.RiskLevel = bucket(score)
	return r
}

// fDist decreases monotonically with relative distance: closer to mid is
// riskier (score closer to 1). Saturates toward 0 as distance grows.
func fDist(distBps decimal.Decimal) float64 {
	d, _ := distBps.Float64()
	if d < 0 {
		d = 0
	}
	return 1.0 / (1.0 + d/100.0)
}

// fSlipFn increases monotonically with expected slippage, saturating toward 1.
func fSlipFn(slipBps decimal.Decimal) float64 {
	s, _ := slipBps.Float64()
	if s < 0 {
		s = 0
	}
	return s / (s + 50.0)
}

func bucket(score float64) RiskLevel {
	switch {
	case score >= 66.6:
		return RiskHigh
	case score >= 33.3:
		return RiskMedium
	default:
		return RiskLow
	}
}

// expectedSlippageBps walks the opposite side of the book to estimate the
// basis-point slippage of consuming o.Size at trigger time, mirroring
// stop_orders.rs's calculate_slippage: a buy stop consumes asks, a sell
// stop consumes bids.
func expectedSlippageBps(b *book.Book, o StopOrder) decimal.Decimal {
	snap := b.Snapshot(50, 0)
	levels := snap.Asks
	if o.Side == book.Sell {
		levels = snap.Bids
	}
	if len(levels) == 0 {
		return decimal.Zero
	}

	top := levels[0].Price
	remaining := o.Size
	var notional decimal.Decimal
	filled := decimal.Zero

	for _, lv := range levels {
		if remaining.LessThanOrEqual(decimal.Zero) {
			break
		}
		take := lv.Size
		if take.GreaterThan(remaining) {
			take = remaining
		}
		notional = notional.Add(take.Mul(lv.Price))
		filled = filled.Add(take)
		remaining = remaining.Sub(take)
	}
	if filled.IsZero() {
		return decimal.Zero
	}
	avgFill := notional.Div(filled)
	return avgFill.Sub(top).Abs().Div(top).Mul(decimal.NewFromInt(10000))
}
