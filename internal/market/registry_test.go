package market

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_ResolvesBothDirections(t *testing.T) {
	r, err := New([]string{"BTC", "ETH", "SOL"})
	require.NoError(t, err)

	id, err := r.MarketID("ETH")
	require.NoError(t, err)
	assert.Equal(t, uint16(1), id)

	sym, err := r.Symbol(1)
	require.NoError(t, err)
	assert.Equal(t, "ETH", sym)

	assert.Equal(t, 3, r.Len())
}

func TestNew_UnknownMarket(t *testing.T) {
	r, err := New([]string{"BTC"})
	require.NoError(t, err)

	_, err = r.MarketID("DOGE")
	assert.ErrorIs(t, err, ErrUnknownMarket)

	_, err = r.Symbol(99)
	assert.ErrorIs(t, err, ErrUnknownMarket)
}

func TestNew_RejectsDuplicates(t *testing.T) {
	_, err := New([]string{"BTC", "BTC"})
	assert.Error(t, err)
}

func TestNewFromPairs_PreservesExternalNumbering(t *testing.T) {
	r, err := NewFromPairs(DefaultUniverse(len(hyperliquidUniverse)))
	require.NoError(t, err)

	id, err := r.MarketID("HYPE")
	require.NoError(t, err)
	assert.Equal(t, HYPEMarketID, id)
}

func TestAll_ReturnsIndependentCopy(t *testing.T) {
	r, err := New([]string{"BTC", "ETH"})
	require.NoError(t, err)

	entries := r.All()
	require.Len(t, entries, 2)

	entries[0].Symbol = "MUTATED"
	sym, err := r.Symbol(entries[0].MarketID)
	require.NoError(t, err)
	assert.NotEqual(t, "MUTATED", sym)
}

func TestAll_SortedByMarketID(t *testing.T) {
	r, err := NewFromPairs(map[uint16]string{5: "FIVE", 1: "ONE", 3: "THREE"})
	require.NoError(t, err)

	entries := r.All()
	require.Len(t, entries, 3)
	assert.Equal(t, []uint16{1, 3, 5}, []uint16{entries[0].MarketID, entries[1].MarketID, entries[2].MarketID})
}
