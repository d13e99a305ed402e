package stoptable

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lxbook/bookstream/internal/book"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestUpsertAndFilterByMarket(t *testing.T) {
	tbl := New()
	tbl.Upsert(StopOrder{ID: 5, MarketID: 0, Side: book.Buy, TriggerPrice: dec("95"), Size: dec("1"), User: "alice"})

	market := uint16(0)
	results := tbl.Query(Filter{MarketID: &market}, false, DefaultWeights(), nil)
	require.Len(t, results, 1)
	assert.Equal(t, uint64(5), results[0].Order.ID)
}

func TestRemoveUnknown(t *testing.T) {
	tbl := New()
	err := tbl.Remove(99)
	assert.ErrorIs(t, err, ErrUnknownStopOrder)
}

func TestUpsertThenRemove(t *testing.T) {
	tbl := New()
	tbl.Upsert(StopOrder{ID: 1, MarketID: 0, User: "bob"})
	require.NoError(t, tbl.Remove(1))
	assert.Equal(t, 0, tbl.Len())
}

func TestFilterByUser(t *testing.T) {
	tbl := New()
	tbl.Upsert(StopOrder{ID: 1, MarketID: 0, User: "alice"})
	tbl.Upsert(StopOrder{ID: 2, MarketID: 0, User: "bob"})

	user := "alice"
	results := tbl.Query(Filter{User: &user}, false, DefaultWeights(), nil)
	require.Len(t, results, 1)
	assert.Equal(t, uint64(1), results[0].Order.ID)
}

func TestRankByRisk(t *testing.T) {
	tbl := New()
	tbl.Upsert(StopOrder{ID: 1, MarketID: 0, Side: book.Buy, TriggerPrice: dec("99.9"), Size: dec("1"), User: "alice"})
	tbl.Upsert(StopOrder{ID: 2, MarketID: 0, Side: book.Buy, TriggerPrice: dec("50"), Size: dec("1"), User: "bob"})

	b := book.New(0, "BTC", book.DefaultLimits())
	require.NoError(t, b.Add(book.Order{ID: 100, Side: book.Buy, Price: dec("99"), Size: dec("1")}))
	require.NoError(t, b.Add(book.Order{ID: 101, Side: book.Sell, Price: dec("101"), Size: dec("1")}))

	lookup := func(marketID uint16) (*book.Book, bool) {
		if marketID == 0 {
			return b, true
		}
		return nil, false
	}

	market := uint16(0)
	results := tbl.Query(Filter{MarketID: &market}, true, DefaultWeights(), lookup)
	require.Len(t, results, 2)
	// closer-to-mid trigger (99.9) must rank at least as risky as the far one (50).
	assert.GreaterOrEqual(t, results[0].RiskScore, results[1].RiskScore)
	assert.Equal(t, uint64(1), results[0].Order.ID)
}

func TestRiskBucketThresholds(t *testing.T) {
	assert.Equal(t, RiskLow, bucket(0))
	assert.Equal(t, RiskLow, bucket(33.2))
	assert.Equal(t, RiskMedium, bucket(33.3))
	assert.Equal(t, RiskMedium, bucket(66.5))
	assert.Equal(t, RiskHigh, bucket(66.6))
	assert.Equal(t, RiskHigh, bucket(100))
}
