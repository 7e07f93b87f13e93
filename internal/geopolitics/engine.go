package geopolitics

import "strings"

// Engine detects active scenarios in news text and aggregates their
// currency impact. The catalog is fixed at compile time, so the engine
// is stateless and safe for concurrent use.
type Engine struct {
	scenarios []Scenario
}

// NewEngine creates an engine over the built-in scenario catalog.
func NewEngine() *Engine {
	return &Engine{scenarios: catalog}
}

// DetectScenario returns the first scenario with any trigger word that
// is a case-insensitive substring of text, or nil when none match.
// First match wins: overlapping trigger sets resolve by catalog order.
func (e *Engine) DetectScenario(text string) *Scenario {
	lowered := strings.ToLower(text)
	for i := range e.scenarios {
		for _, trigger := range e.scenarios[i].TriggerWords {
			if strings.Contains(lowered, trigger) {
				return &e.scenarios[i]
			}
		}
	}
	return nil
}

// StocksForScenario concatenates the scenario's stock lists for the
// requested markets, in the order the markets were given. Unknown
// scenario IDs and unknown markets yield nothing.
func (e *Engine) StocksForScenario(id string, markets []string) []string {
	scenario := e.byID(id)
	if scenario == nil {
		return []string{}
	}
	stocks := []string{}
	for _, market := range markets {
		stocks = append(stocks, scenario.StocksByMarket[market]...)
	}
	return stocks
}

// CurrencyImpact returns a copy of the scenario's per-currency delta
// map, or an empty map for unknown IDs.
func (e *Engine) CurrencyImpact(id string) map[string]float64 {
	scenario := e.byID(id)
	if scenario == nil {
		return map[string]float64{}
	}
	impact := make(map[string]float64, len(scenario.CurrencyImpact))
	for currency, delta := range scenario.CurrencyImpact {
		impact[currency] = delta
	}
	return impact
}

// DetectActiveScenarios runs detection over a batch of news items,
// deduplicating by scenario ID and preserving first-seen order. A later
// item matching an already-detected scenario is ignored.
func (e *Engine) DetectActiveScenarios(newsItems []string) []Scenario {
	seen := make(map[string]bool)
	active := []Scenario{}
	for _, item := range newsItems {
		scenario := e.DetectScenario(item)
		if scenario == nil || seen[scenario.ID] {
			continue
		}
		seen[scenario.ID] = true
		active = append(active, *scenario)
	}
	return active
}

// NetCurrencyImpact sums the active scenarios' deltas per tracked
// currency. With more than one active scenario the sums are averaged
// over the scenario count; a single scenario's impact passes through
// unaveraged.
func (e *Engine) NetCurrencyImpact(active []Scenario) map[string]float64 {
	net := make(map[string]float64, len(TrackedCurrencies))
	for _, currency := range TrackedCurrencies {
		net[currency] = 0
	}
	for _, scenario := range active {
		for currency, delta := range scenario.CurrencyImpact {
			net[currency] += delta
		}
	}
	if len(active) > 1 {
		count := float64(len(active))
		for currency := range net {
			net[currency] /= count
		}
	}
	return net
}

func (e *Engine) byID(id string) *Scenario {
	for i := range e.scenarios {
		if e.scenarios[i].ID == id {
			return &e.scenarios[i]
		}
	}
	return nil
}
