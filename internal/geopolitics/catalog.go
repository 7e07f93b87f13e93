// Package geopolitics maps news text to a fixed catalog of geopolitical
// scenarios and nets their estimated currency impact.
package geopolitics

// Tracked currency codes. Every impact map covers exactly this set.
var TrackedCurrencies = []string{"USD", "EUR", "GBP", "JPY", "INR", "CNY", "CHF", "AUD"}

// Scenario is one immutable catalog entry mapping trigger phrases to
// sector winners/losers and per-currency impact deltas. Impact values
// are signed fractional deltas against the current rate, not absolute
// levels.
type Scenario struct {
	ID             string
	Name           string
	Framework      string
	TriggerWords   []string
	BullishSectors []string
	BearishSectors []string
	StocksByMarket map[string][]string
	CurrencyImpact map[string]float64
}

// catalog is scanned in declaration order by DetectScenario; overlapping
// trigger sets resolve to the earliest entry. Never mutated after load.
var catalog = []Scenario{
	{
		ID:             "china-taiwan",
		Name:           "China-Taiwan Conflict",
		Framework:      "supply-chain shock",
		TriggerWords:   []string{"taiwan", "strait crisis", "tsmc blockade", "cross-strait", "pla drills"},
		BullishSectors: []string{"defense", "cybersecurity", "rare earths"},
		BearishSectors: []string{"semiconductors", "consumer electronics", "shipping"},
		StocksByMarket: map[string][]string{
			"india":  {"HAL.NS", "BEL.NS", "BDL.NS"},
			"us":     {"LMT", "NOC", "RTX"},
			"crypto": {"BTC-USD"},
		},
		CurrencyImpact: map[string]float64{
			"USD": 0.02, "EUR": -0.01, "GBP": -0.005, "JPY": 0.015,
			"INR": -0.015, "CNY": -0.03, "CHF": 0.02, "AUD": -0.02,
		},
	},
	{
		ID:             "russia-nato",
		Name:           "Russia-NATO Escalation",
		Framework:      "energy shock",
		TriggerWords:   []string{"russia", "nato", "ukraine", "donbas", "baltic incident"},
		BullishSectors: []string{"defense", "oil & gas", "agriculture"},
		BearishSectors: []string{"european banks", "airlines", "autos"},
		StocksByMarket: map[string][]string{
			"india": {"ONGC.NS", "OIL.NS", "HAL.NS"},
			"us":    {"XOM", "CVX", "LMT"},
			"uk":    {"BP.L", "SHEL.L"},
		},
		CurrencyImpact: map[string]float64{
			"USD": 0.025, "EUR": -0.03, "GBP": -0.015, "JPY": 0.01,
			"INR": -0.01, "CNY": 0.005, "CHF": 0.025, "AUD": 0.005,
		},
	},
	{
		ID:             "middle-east-conflict",
		Name:           "Middle East Conflict",
		Framework:      "oil supply shock",
		TriggerWords:   []string{"strait of hormuz", "iran", "israel", "gulf tanker", "red sea attack"},
		BullishSectors: []string{"oil & gas", "defense", "gold miners"},
		BearishSectors: []string{"airlines", "paints", "tyres"},
		StocksByMarket: map[string][]string{
			"india": {"ONGC.NS", "RELIANCE.NS", "HINDPETRO.NS"},
			"us":    {"XOM", "SLB", "HAL"},
		},
		CurrencyImpact: map[string]float64{
			"USD": 0.02, "EUR": -0.01, "GBP": -0.01, "JPY": 0.005,
			"INR": -0.025, "CNY": -0.005, "CHF": 0.015, "AUD": 0,
		},
	},
	{
		ID:             "us-china-trade",
		Name:           "US-China Trade War",
		Framework:      "tariff shock",
		TriggerWords:   []string{"tariff", "trade war", "export controls", "decoupling", "sanctions on china"},
		BullishSectors: []string{"domestic manufacturing", "india it services"},
		BearishSectors: []string{"semiconductors", "retail", "agriculture exporters"},
		StocksByMarket: map[string][]string{
			"india": {"TCS.NS", "INFY.NS", "DIXON.NS"},
			"us":    {"CAT", "DE"},
		},
		CurrencyImpact: map[string]float64{
			"USD": 0.01, "EUR": 0, "GBP": 0, "JPY": 0.01,
			"INR": 0.005, "CNY": -0.025, "CHF": 0.01, "AUD": -0.015,
		},
	},
	{
		ID:             "opec-supply-cut",
		Name:           "OPEC+ Supply Cut",
		Framework:      "oil price shock",
		TriggerWords:   []string{"opec", "production cut", "output cut", "crude supply"},
		BullishSectors: []string{"oil & gas", "oilfield services"},
		BearishSectors: []string{"airlines", "logistics", "chemicals"},
		StocksByMarket: map[string][]string{
			"india": {"ONGC.NS", "OIL.NS"},
			"us":    {"XOM", "COP", "OXY"},
		},
		CurrencyImpact: map[string]float64{
			"USD": 0.005, "EUR": -0.01, "GBP": -0.005, "JPY": -0.01,
			"INR": -0.02, "CNY": -0.005, "CHF": 0.005, "AUD": 0.01,
		},
	},
	{
		ID:             "global-banking-stress",
		Name:           "Global Banking Stress",
		Framework:      "credit crunch",
		TriggerWords:   []string{"bank run", "bank collapse", "credit crunch", "bailout", "contagion"},
		BullishSectors: []string{"gold miners", "utilities", "consumer staples"},
		BearishSectors: []string{"banks", "real estate", "brokerages"},
		StocksByMarket: map[string][]string{
			"india":  {"HINDUNILVR.NS", "NESTLEIND.NS"},
			"us":     {"NEM", "GLD"},
			"crypto": {"BTC-USD", "ETH-USD"},
		},
		CurrencyImpact: map[string]float64{
			"USD": -0.01, "EUR": -0.02, "GBP": -0.02, "JPY": 0.02,
			"INR": -0.01, "CNY": 0, "CHF": 0.03, "AUD": -0.01,
		},
	},
}

// Catalog returns the scenario catalog in declaration order. Callers
// must treat the returned slice as read-only.
func Catalog() []Scenario {
	return catalog
}
