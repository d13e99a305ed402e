package ingest

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lxbook/bookstream/internal/book"
	"github.com/lxbook/bookstream/internal/market"
)

func newTestRegistry(t *testing.T) *market.Registry {
	t.Helper()
	reg, err := market.New([]string{"BTC", "ETH"})
	require.NoError(t, err)
	return reg
}

func TestParse_ValidOpenOrder(t *testing.T) {
	p := New(newTestRegistry(t), DefaultLimits())
	line := []byte(`{"status":"open","user":"0xabc","timestampMs":1000,"order":{"oid":1,"coin":"BTC","side":"B","limitPx":"50000.5","sz":"0.25","timestamp":1000}}`)

	ev, err := p.Parse(line)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), ev.OID)
	assert.Equal(t, book.Buy, ev.Side)
	assert.Equal(t, StatusOpen, ev.Status)
	assert.True(t, ev.Price.Equal(dec(t, "50000.5")))
	assert.True(t, ev.Size.Equal(dec(t, "0.25")))
}

func TestParse_NumericPriceAndSize(t *testing.T) {
	p := New(newTestRegistry(t), DefaultLimits())
	line := []byte(`{"status":"open","order":{"oid":2,"coin":"ETH","side":"A","limitPx":2500.25,"sz":1.5}}`)

	ev, err := p.Parse(line)
	require.NoError(t, err)
	assert.True(t, ev.Price.Equal(dec(t, "2500.25")))
}

func TestParse_MalformedJSON(t *testing.T) {
	p := New(newTestRegistry(t), DefaultLimits())
	_, err := p.Parse([]byte(`not json`))
	assertKind(t, err, Malformed)
}

func TestParse_MissingCoin(t *testing.T) {
	p := New(newTestRegistry(t), DefaultLimits())
	_, err := p.Parse([]byte(`{"status":"open","order":{"oid":1,"side":"B","limitPx":"1","sz":"1"}}`))
	assertKind(t, err, MissingField)
}

func TestParse_UnknownMarket(t *testing.T) {
	p := New(newTestRegistry(t), DefaultLimits())
	_, err := p.Parse([]byte(`{"status":"open","order":{"oid":1,"coin":"DOGE","side":"B","limitPx":"1","sz":"1"}}`))
	assertKind(t, err, UnknownMarket)
}

func TestParse_UnsupportedSide(t *testing.T) {
	p := New(newTestRegistry(t), DefaultLimits())
	_, err := p.Parse([]byte(`{"status":"open","order":{"oid":1,"coin":"BTC","side":"X","limitPx":"1","sz":"1"}}`))
	assertKind(t, err, UnsupportedSide)
}

func TestParse_InvalidPrice(t *testing.T) {
	p := New(newTestRegistry(t), DefaultLimits())
	_, err := p.Parse([]byte(`{"status":"open","order":{"oid":1,"coin":"BTC","side":"B","limitPx":"-5","sz":"1"}}`))
	assertKind(t, err, InvalidPrice)
}

func TestParse_PriceExceedsCeiling(t *testing.T) {
	p := New(newTestRegistry(t), DefaultLimits())
	_, err := p.Parse([]byte(`{"status":"open","order":{"oid":1,"coin":"BTC","side":"B","limitPx":"99999999","sz":"1"}}`))
	assertKind(t, err, InvalidPrice)
}

func TestParse_InvalidSize(t *testing.T) {
	p := New(newTestRegistry(t), DefaultLimits())
	_, err := p.Parse([]byte(`{"status":"open","order":{"oid":1,"coin":"BTC","side":"B","limitPx":"1","sz":"0"}}`))
	assertKind(t, err, InvalidSize)
}

func TestParse_UnknownStatusCountedAndStillReturned(t *testing.T) {
	p := New(newTestRegistry(t), DefaultLimits())
	ev, err := p.Parse([]byte(`{"status":"queued","order":{"oid":1,"coin":"BTC","side":"B","limitPx":"1","sz":"1"}}`))
	require.NoError(t, err)
	assert.Equal(t, Status(""), ev.Status)
	assert.Equal(t, uint64(1), p.Stats().SkippedUnknownStatus)
}

func TestParse_DuplicateOpenCounted(t *testing.T) {
	p := New(newTestRegistry(t), DefaultLimits())
	line := []byte(`{"status":"open","order":{"oid":7,"coin":"BTC","side":"B","limitPx":"1","sz":"1"}}`)
	_, err := p.Parse(line)
	require.NoError(t, err)
	_, err = p.Parse(line)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), p.Stats().DuplicateOpen)
}

func TestParse_StatsAccumulate(t *testing.T) {
	p := New(newTestRegistry(t), DefaultLimits())
	_, _ = p.Parse([]byte(`not json`))
	_, _ = p.Parse([]byte(`{"status":"open","order":{"oid":1,"coin":"BTC","side":"B","limitPx":"1","sz":"1"}}`))
	stats := p.Stats()
	assert.Equal(t, uint64(2), stats.Total)
	assert.Equal(t, uint64(1), stats.ParseErrors)
}

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func assertKind(t *testing.T, err error, kind ErrorKind) {
	t.Helper()
	require.Error(t, err)
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, kind, pe.Kind)
}
