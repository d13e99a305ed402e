// Package ingest implements the event parser & validator, the circuit
// breaker and driver loop, and the concrete ingress sources that feed
// lines into the driver.
//
// The parser is grounded on original_source/src/order_parser.rs: same
// field names, same validation rules and default ceilings, reproduced as
// idiomatic Go rather than translated statement-for-statement.
package ingest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/shopspring/decimal"

	"github.com/lxbook/bookstream/internal/book"
	"github.com/lxbook/bookstream/internal/market"
)

// ErrorKind classifies why a line was rejected.
type ErrorKind int

const (
	Malformed ErrorKind = iota
	UnknownMarket
	InvalidPrice
	InvalidSize
	UnsupportedSide
	MissingField
)

func (k ErrorKind) String() string {
	switch k {
	case UnknownMarket:
		return "unknown_market"
	case InvalidPrice:
		return "invalid_price"
	case InvalidSize:
		return "invalid_size"
	case UnsupportedSide:
		return "unsupported_side"
	case MissingField:
		return "missing_field"
	default:
		return "malformed"
	}
}

// ParseError is returned by Parse for any rejected line.
type ParseError struct {
	Kind ErrorKind
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("ingest: %s: %v", e.Kind, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

func newParseError(kind ErrorKind, format string, args ...any) *ParseError {
	return &ParseError{Kind: kind, Err: fmt.Errorf(format, args...)}
}

// Status is the outer order-status field understood by the driver.
type Status string

const (
	StatusOpen     Status = "open"
	StatusFilled   Status = "filled"
	StatusCanceled Status = "canceled"
	StatusRejected Status = "rejected"
)

// OrderEvent is the typed, validated output of Parse.
type OrderEvent struct {
	OID              uint64
	MarketID         uint16
	Side             book.Side
	Price            decimal.Decimal
	Size             decimal.Decimal
	TsMs             uint64
	User             string
	IsTrigger        bool
	TriggerCondition string
	Status           Status
}

type wireOrder struct {
	OID              uint64          `json:"oid"`
	Coin             string          `json:"coin"`
	Side             string          `json:"side"`
	LimitPx          json.RawMessage `json:"limitPx"`
	Sz               json.RawMessage `json:"sz"`
	IsTrigger        bool            `json:"isTrigger"`
	TriggerCondition string          `json:"triggerCondition"`
	Timestamp        uint64          `json:"timestamp"`
}

type wireRecord struct {
	Status      string    `json:"status"`
	User        string    `json:"user"`
	TimestampMs uint64    `json:"timestampMs"`
	Order       wireOrder `json:"order"`
}

// Limits are the validator's price/size ceilings.
type Limits struct {
	MaxPrice decimal.Decimal
	MaxSize  decimal.Decimal
}

// DefaultLimits returns the documented default ceilings (price<=10,000,000,
// size<=1,000,000).
func DefaultLimits() Limits {
	return Limits{
		MaxPrice: decimal.NewFromInt(10_000_000),
		MaxSize:  decimal.NewFromInt(1_000_000),
	}
}

// Stats are the parser's read-only atomic observables, used by the circuit
// breaker and internal/metrics.
type Stats struct {
	Total                uint64
	ParseErrors          uint64
	ValidationErrors     uint64
	SkippedUnknownStatus uint64
	DuplicateOpen        uint64
}

// Parser decodes and validates one ingress line at a time. Its counters
// are atomic, but Parse is not safe for concurrent use: it records Open
// ids in an unsynchronized map. The ingestion driver calls it from its own
// single goroutine.
type Parser struct {
	registry *market.Registry
	limits   Limits

	total                atomic.Uint64
	parseErrors          atomic.Uint64
	validationErrors     atomic.Uint64
	skippedUnknownStatus atomic.Uint64
	duplicateOpen        atomic.Uint64

	seenOpen map[uint64]struct{} // supplement for Open Question #6, owned by caller's single writer
}

// New creates a Parser bound to a market registry and validation limits.
func New(registry *market.Registry, limits Limits) *Parser {
	return &Parser{
		registry: registry,
		limits:   limits,
		seenOpen: make(map[uint64]struct{}),
	}
}

// Parse decodes and validates a single line. On success, the returned
// event's Status determines what the driver does with it: Open routes to
// add, Filled/Canceled routes to remove, Rejected and unrecognized statuses
// produce no book or stop-table mutation.
func (p *Parser) Parse(line []byte) (OrderEvent, error) {
	p.total.Add(1)

	var rec wireRecord
	dec := json.NewDecoder(bytes.NewReader(line))
	if err := dec.Decode(&rec); err != nil {
		p.parseErrors.Add(1)
		return OrderEvent{}, newParseError(Malformed, "decode: %w", err)
	}

	if rec.Order.Coin == "" {
		p.validationErrors.Add(1)
		return OrderEvent{}, newParseError(MissingField, "missing order.coin")
	}
	marketID, err := p.registry.MarketID(rec.Order.Coin)
	if err != nil {
		p.validationErrors.Add(1)
		return OrderEvent{}, newParseError(UnknownMarket, "coin %q: %w", rec.Order.Coin, err)
	}

	side, err := parseSide(rec.Order.Side)
	if err != nil {
		p.validationErrors.Add(1)
		return OrderEvent{}, newParseError(UnsupportedSide, "side %q: %w", rec.Order.Side, err)
	}

	price, err := parseDecimalField(rec.Order.LimitPx)
	if err != nil {
		p.validationErrors.Add(1)
		return OrderEvent{}, newParseError(InvalidPrice, "limitPx: %w", err)
	}
	if err := validateMagnitude(price, p.limits.MaxPrice); err != nil {
		p.validationErrors.Add(1)
		return OrderEvent{}, newParseError(InvalidPrice, "limitPx %s: %w", price.String(), err)
	}

	size, err := parseDecimalField(rec.Order.Sz)
	if err != nil {
		p.validationErrors.Add(1)
		return OrderEvent{}, newParseError(InvalidSize, "sz: %w", err)
	}
	if err := validateMagnitude(size, p.limits.MaxSize); err != nil {
		p.validationErrors.Add(1)
		return OrderEvent{}, newParseError(InvalidSize, "sz %s: %w", size.String(), err)
	}

	status := normalizeStatus(rec.Status)
	if status == "" {
		p.skippedUnknownStatus.Add(1)
	}
	if status == StatusOpen {
		if _, dup := p.seenOpen[rec.Order.OID]; dup {
			p.duplicateOpen.Add(1)
		} else {
			p.seenOpen[rec.Order.OID] = struct{}{}
		}
	}

	return OrderEvent{
		OID:              rec.Order.OID,
		MarketID:         marketID,
		Side:             side,
		Price:            price,
		Size:             size,
		TsMs:             rec.Order.Timestamp,
		User:             rec.User,
		IsTrigger:        rec.Order.IsTrigger,
		TriggerCondition: rec.Order.TriggerCondition,
		Status:           status,
	}, nil
}

func parseSide(s string) (book.Side, error) {
	switch s {
	case "B":
		return book.Buy, nil
	case "A":
		return book.Sell, nil
	default:
		return 0, fmt.Errorf("must be %q or %q", "B", "A")
	}
}

var errNonFinite = errors.New("non-finite")
var errNonPositive = errors.New("must be > 0")
var errExceedsCeiling = errors.New("exceeds configured ceiling")

func parseDecimalField(raw json.RawMessage) (decimal.Decimal, error) {
	if len(raw) == 0 {
		return decimal.Decimal{}, fmt.Errorf("missing")
	}
	s := string(raw)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, errNonFinite
	}
	return d, nil
}

func validateMagnitude(d, max decimal.Decimal) error {
	if !d.IsPositive() {
		return errNonPositive
	}
	if d.GreaterThan(max) {
		return errExceedsCeiling
	}
	return nil
}

func normalizeStatus(s string) Status {
	switch s {
	case "open":
		return StatusOpen
	case "filled":
		return StatusFilled
	case "canceled", "cancelled":
		return StatusCanceled
	case "rejected", "perpMarginRejected":
		return StatusRejected
	default:
		return ""
	}
}

// Stats returns a snapshot of the parser's counters.
func (p *Parser) Stats() Stats {
	return Stats{
		Total:                p.total.Load(),
		ParseErrors:          p.parseErrors.Load(),
		ValidationErrors:     p.validationErrors.Load(),
		SkippedUnknownStatus: p.skippedUnknownStatus.Load(),
		DuplicateOpen:        p.duplicateOpen.Load(),
	}
}
