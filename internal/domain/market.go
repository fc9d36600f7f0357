package domain

// Market identifies an exchange segment by the provider's internal code.
type Market string

// Nasdaq OMX Nordic segment codes.
const (
	NordicLarge Market = "L:INET:H7053910"
	NordicMid   Market = "L:INET:H7053920"
	NordicSmall Market = "L:INET:H7053930"

	CopenhagenLarge Market = "L:INET:H7096510"
	CopenhagenMid   Market = "L:INET:H7096520"
	CopenhagenSmall Market = "L:INET:H7096530"

	StockholmLarge Market = "L:INET:H7057510"
	StockholmMid   Market = "L:INET:H7057520"
	StockholmSmall Market = "L:INET:H7057530"

	HelsinkiLarge Market = "L:INET:H7054310"
	HelsinkiMid   Market = "L:INET:H7054320"
	HelsinkiSmall Market = "L:INET:H7054330"
)

var marketLabels = map[Market]string{
	NordicLarge:     "NORDIC_LARGE",
	NordicMid:       "NORDIC_MID",
	NordicSmall:     "NORDIC_SMALL",
	CopenhagenLarge: "COPENHAGEN_LARGE",
	CopenhagenMid:   "COPENHAGEN_MID",
	CopenhagenSmall: "COPENHAGEN_SMALL",
	StockholmLarge:  "STOCKHOLM_LARGE",
	StockholmMid:    "STOCKHOLM_MID",
	StockholmSmall:  "STOCKHOLM_SMALL",
	HelsinkiLarge:   "HELSINKI_LARGE",
	HelsinkiMid:     "HELSINKI_MID",
	HelsinkiSmall:   "HELSINKI_SMALL",
}

var allMarkets = []Market{
	NordicLarge, NordicMid, NordicSmall,
	CopenhagenLarge, CopenhagenMid, CopenhagenSmall,
	StockholmLarge, StockholmMid, StockholmSmall,
	HelsinkiLarge, HelsinkiMid, HelsinkiSmall,
}

// Code returns the provider code used in query parameters.
func (m Market) Code() string { return string(m) }

// Label returns the human-readable segment name, or the raw code for an
// unknown market.
func (m Market) Label() string {
	if label, ok := marketLabels[m]; ok {
		return label
	}
	return string(m)
}

// AllMarkets returns the known markets in a stable order.
func AllMarkets() []Market {
	markets := make([]Market, len(allMarkets))
	copy(markets, allMarkets)
	return markets
}

// MarketByLabel resolves a segment label like "HELSINKI_LARGE".
func MarketByLabel(label string) (Market, bool) {
	for m, l := range marketLabels {
		if l == label {
			return m, true
		}
	}
	return "", false
}
