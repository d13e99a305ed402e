package market

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Well-known market ids reproduced from the exchange wire format this
// system ingests (original_source/src/types.rs), used by tests and call
// sites that exercise specific real symbols rather than iterate the
// whole universe.
const (
	BTCMarketID  uint16 = 0
	ETHMarketID  uint16 = 1
	HYPEMarketID uint16 = 159
)

// hyperliquidUniverse reproduces the production market table shipped in
// original_source/src/markets.rs (get_all_markets): every active
// Hyperliquid perpetual as of that snapshot, keyed by its exchange
// market id.
var hyperliquidUniverse = map[uint16]string{
	0: "BTC",
	1: "ETH",
	2: "ATOM",
	3: "MATIC",
	4: "DYDX",
	5: "SOL",
	6: "AVAX",
	7: "APE",
	8: "LTC",
	9: "DOGE",
	10: "BNB",
	11: "ARB",
	12: "SUI",
	13: "OP",
	14: "APT",
	15: "RDNT",
	16: "FTM",
	17: "INJ",
	18: "ORDI",
	19: "STX",
	20: "SHIB",
	21: "BLUR",
	22: "XRP",
	23: "NEAR",
	24: "GALA",
	25: "LINK",
	26: "OX",
	27: "RNDR",
	28: "HIFI",
	29: "SAND",
	30: "MANA",
	31: "TRX",
	32: "SNX",
	33: "UNI",
	34: "CRV",
	35: "MKR",
	36: "COMP",
	37: "MEME",
	38: "ADA",
	39: "DOT",
	40: "FIL",
	41: "ICP",
	42: "IMX",
	43: "SEI",
	44: "TIA",
	45: "FRIEND",
	46: "1000SATS",
	47: "JTO",
	48: "BONK",
	49: "ACE",
	50: "PYTH",
	51: "NFP",
	52: "AI",
	53: "XAI",
	54: "MANTA",
	55: "ALT",
	56: "JUP",
	57: "ZETA",
	58: "STRK",
	59: "DYM",
	60: "PIXEL",
	61: "WLD",
	62: "TRB",
	63: "PORTAL",
	64: "PDA",
	65: "AXL",
	66: "MYRO",
	67: "METIS",
	68: "AEVO",
	69: "BOME",
	70: "ETHFI",
	71: "SLERF",
	72: "W",
	73: "ENA",
	74: "PAC",
	75: "TNSR",
	76: "OMNI",
	77: "MERL",
	78: "ORBS",
	79: "POPCAT",
	80: "REZ",
	81: "KMNO",
	82: "SAFE",
	83: "SAGA",
	84: "TAO",
	85: "BRETT",
	86: "ZK",
	87: "IO",
	88: "ZRO",
	89: "BLAST",
	90: "AAVE",
	91: "ENS",
	92: "EIGEN",
	93: "MEW",
	94: "DOG",
	95: "NOT",
	96: "PEPE",
	97: "PEOPLE",
	98: "WIF",
	99: "BAKE",
	100: "MOG",
	101: "MNT",
	102: "ASTR",
	103: "FET",
	104: "RUNE",
	105: "PRIME",
	106: "AERO",
	107: "HOOK",
	108: "ONDO",
	109: "ZEX",
	110: "H2O",
	111: "POL",
	112: "BANANA",
	113: "SUN",
	114: "PUFFER",
	115: "REEF",
	116: "VADER",
	117: "GIGA",
	118: "DRIFT",
	119: "GRASS",
	120: "CATI",
	121: "DBR",
	122: "HMSTR",
	123: "DOGS",
	124: "EIGEN2",
	125: "NEIRO",
	126: "TURBO",
	127: "BNSOL",
	128: "1MBABYDOGE",
	129: "MOODENG",
	130: "GOAT",
	131: "MEMEFI",
	132: "PONKE",
	133: "FTT",
	134: "PNUT",
	135: "ACT",
	136: "HIPPOP",
	137: "CHILLGUY",
	138: "SLERF2",
	139: "FARTCOIN",
	140: "VIRTUAL",
	141: "ANON",
	142: "MAJOR",
	143: "MANEKI",
	144: "SWARM",
	145: "CUTO",
	146: "WHY",
	147: "VINE",
	148: "G",
	149: "UBC",
	150: "ALCH",
	151: "AIXCB",
	152: "COOKIE",
	153: "CGPT",
	154: "ZEREBRO",
	155: "MICE",
	156: "PVP",
	157: "BUZZ",
	158: "SORA",
	159: "HYPE",
	160: "REX",
	161: "ME",
	162: "PENGU",
	163: "MOVE",
	164: "USUAL",
	165: "FUEL",
	166: "VANA",
	167: "AVA",
	168: "LBR",
	169: "ORDER",
	170: "SONIC",
	171: "MOZ",
	172: "WZRD",
	173: "GRIFFAIN",
	174: "AMC",
	175: "SEIYAN",
	176: "HPOS10I",
	177: "LESTER",
	178: "GME",
	179: "SPX",
	180: "MOO",
	181: "TON",
	182: "NEIROCTO",
	183: "1000BEER",
	184: "LOCKIN",
	185: "ATH",
	186: "PUPS",
	187: "BUCK",
	188: "BOBER",
	189: "SUNDOG",
	190: "SHRUB",
	191: "NEIROETH",
	192: "SWAG",
	193: "RETARDIO",
	194: "WIBWOB",
	195: "BABYPENGU",
	196: "BILLYSOL",
	197: "FWOG",
	198: "BUB",
}

// DefaultUniverse returns the seed universe used when no config-provided
// universe file is present: the real production market table truncated
// to the first size ids, so the registry's shape and symbology match
// production even when a deployment declares a smaller universe for
// tests or demos.
func DefaultUniverse(size int) map[uint16]string {
	if size < 1 {
		size = 1
	}
	pairs := make(map[uint16]string, size)
	for id, sym := range hyperliquidUniverse {
		if int(id) >= size {
			continue
		}
		pairs[id] = sym
	}
	return pairs
}

// universeFile is the on-disk shape of a YAML market universe file: a
// flat list of (id, symbol) entries, overriding DefaultUniverse for
// deployments that track their own exchange's symbol table.
type universeFile struct {
	Markets []Entry `yaml:"markets"`
}

// LoadUniverseFile reads path and returns its entries as the
// (market_id -> symbol) pairs NewFromPairs expects.
func LoadUniverseFile(path string) (map[uint16]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("market: read universe file %s: %w", path, err)
	}
	var f universeFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("market: parse universe file %s: %w", path, err)
	}
	if len(f.Markets) == 0 {
		return nil, fmt.Errorf("market: universe file %s declares no markets", path)
	}
	pairs := make(map[uint16]string, len(f.Markets))
	for _, e := range f.Markets {
		pairs[e.MarketID] = e.Symbol
	}
	return pairs, nil
}
