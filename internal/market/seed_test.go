package market

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultUniverse_TruncatesByID(t *testing.T) {
	pairs := DefaultUniverse(3)
	assert.Equal(t, "BTC", pairs[BTCMarketID])
	assert.Equal(t, "ETH", pairs[ETHMarketID])
	_, hasHype := pairs[HYPEMarketID]
	assert.False(t, hasHype, "HYPE (id 159) should be excluded from a 3-entry universe")
}

func TestDefaultUniverse_FullSizeIncludesRealSymbology(t *testing.T) {
	pairs := DefaultUniverse(len(hyperliquidUniverse))
	assert.Len(t, pairs, len(hyperliquidUniverse))
	assert.Equal(t, "HYPE", pairs[HYPEMarketID])
	assert.Equal(t, "BUB", pairs[198])
}

func TestLoadUniverseFile_ParsesEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "universe.yml")
	content := `
markets:
  - id: 0
    symbol: BTC
  - id: 7
    symbol: CUSTOM
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	pairs, err := LoadUniverseFile(path)
	require.NoError(t, err)
	assert.Equal(t, "BTC", pairs[0])
	assert.Equal(t, "CUSTOM", pairs[7])
}

func TestLoadUniverseFile_MissingFileErrors(t *testing.T) {
	_, err := LoadUniverseFile(filepath.Join(t.TempDir(), "does-not-exist.yml"))
	assert.Error(t, err)
}

func TestLoadUniverseFile_EmptyMarketsErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "universe.yml")
	require.NoError(t, os.WriteFile(path, []byte("markets: []\n"), 0o644))

	_, err := LoadUniverseFile(path)
	assert.Error(t, err)
}
