package book

import "github.com/shopspring/decimal"

// Side is the resting side of an order.
type Side int

const (
	Buy Side = iota
	Sell
)

func (s Side) String() string {
	if s == Buy {
		return "buy"
	}
	return "sell"
}

// Order is the immutable-once-accepted order record the engine operates on.
// Trigger orders never reach the book; the ingestion driver routes them to
// internal/stoptable instead.
type Order struct {
	ID        uint64
	MarketID  uint16
	Side      Side
	Price     decimal.Decimal
	Size      decimal.Decimal
	TsMs      uint64
	User      string
	IsTrigger bool
}

// LevelView is the read-only projection of a price level returned by
// Snapshot: aggregate size and how many distinct orders make it up.
type LevelView struct {
	Price      decimal.Decimal
	Size       decimal.Decimal
	OrderCount int
}

// Snapshot is a derived, point-in-time view of both sides of a book.
type Snapshot struct {
	MarketID uint16
	Sequence uint64
	TsNs     int64
	Bids     []LevelView
	Asks     []LevelView
}

// Limits are the per-book capacity safeguards, supplemented from
// original_source/src/config.rs.
type Limits struct {
	MaxOrdersPerLevel int
	MaxLevelsPerSide  int
	MaxTotalOrders    int
}

// DefaultLimits mirrors config.rs's Config::default().
func DefaultLimits() Limits {
	return Limits{
		MaxOrdersPerLevel: 100,
		MaxLevelsPerSide:  1000,
		MaxTotalOrders:    10000,
	}
}

type level struct {
	price     decimal.Decimal
	aggregate decimal.Decimal
	orders    []uint64 // FIFO by arrival
}

type locatorEntry struct {
	side  Side
	price decimal.Decimal
}
