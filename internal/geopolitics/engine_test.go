package geopolitics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectScenarioTaiwan(t *testing.T) {
	engine := NewEngine()

	scenario := engine.DetectScenario("Taiwan strait crisis escalates")
	require.NotNil(t, scenario)
	assert.Equal(t, "china-taiwan", scenario.ID)
}

func TestDetectScenarioCaseInsensitive(t *testing.T) {
	engine := NewEngine()

	scenario := engine.DetectScenario("OPEC announces PRODUCTION CUT of 2 million barrels")
	require.NotNil(t, scenario)
	assert.Equal(t, "opec-supply-cut", scenario.ID)
}

func TestDetectScenarioNoMatch(t *testing.T) {
	engine := NewEngine()

	assert.Nil(t, engine.DetectScenario("quarterly earnings beat analyst estimates"))
	assert.Nil(t, engine.DetectScenario(""))
}

func TestDetectScenarioFirstMatchWins(t *testing.T) {
	engine := NewEngine()

	// Mentions both Taiwan and Russia triggers; china-taiwan is declared
	// earlier in the catalog.
	scenario := engine.DetectScenario("russia backs china over taiwan tensions")
	require.NotNil(t, scenario)
	assert.Equal(t, "china-taiwan", scenario.ID)
}

func TestStocksForScenarioMarketOrder(t *testing.T) {
	engine := NewEngine()

	stocks := engine.StocksForScenario("china-taiwan", []string{"us", "india"})
	assert.Equal(t, []string{"LMT", "NOC", "RTX", "HAL.NS", "BEL.NS", "BDL.NS"}, stocks)

	assert.Empty(t, engine.StocksForScenario("no-such-scenario", []string{"us"}))
	assert.Empty(t, engine.StocksForScenario("china-taiwan", []string{"mars"}))
}

func TestCurrencyImpactUnknownID(t *testing.T) {
	engine := NewEngine()

	assert.Empty(t, engine.CurrencyImpact("unknown"))

	impact := engine.CurrencyImpact("china-taiwan")
	assert.Equal(t, 0.02, impact["USD"])
	assert.Equal(t, -0.03, impact["CNY"])
}

func TestCurrencyImpactReturnsCopy(t *testing.T) {
	engine := NewEngine()

	impact := engine.CurrencyImpact("china-taiwan")
	impact["USD"] = 99

	assert.Equal(t, 0.02, engine.CurrencyImpact("china-taiwan")["USD"])
}

func TestDetectActiveScenariosDeduplicates(t *testing.T) {
	engine := NewEngine()

	news := []string{
		"Taiwan strait crisis escalates",
		"irrelevant headline about sports",
		"PLA drills encircle taiwan for third day", // same scenario again
		"NATO responds to baltic incident",
	}

	active := engine.DetectActiveScenarios(news)

	require.Len(t, active, 2)
	assert.Equal(t, "china-taiwan", active[0].ID)
	assert.Equal(t, "russia-nato", active[1].ID)
}

func TestNetCurrencyImpactSingleScenarioUnaveraged(t *testing.T) {
	engine := NewEngine()

	active := engine.DetectActiveScenarios([]string{"Taiwan strait crisis escalates"})
	require.Len(t, active, 1)

	net := engine.NetCurrencyImpact(active)

	// One active scenario passes through raw.
	assert.Equal(t, engine.CurrencyImpact("china-taiwan"), net)
	assert.Len(t, net, len(TrackedCurrencies))
}

func TestNetCurrencyImpactAveragesAcrossScenarios(t *testing.T) {
	engine := NewEngine()

	active := engine.DetectActiveScenarios([]string{
		"Taiwan strait crisis escalates",
		"russia and nato tensions rise",
	})
	require.Len(t, active, 2)

	net := engine.NetCurrencyImpact(active)

	// USD: (0.02 + 0.025) / 2
	assert.InDelta(t, 0.0225, net["USD"], 1e-12)
	// EUR: (-0.01 + -0.03) / 2
	assert.InDelta(t, -0.02, net["EUR"], 1e-12)
}

func TestNetCurrencyImpactEmptyInput(t *testing.T) {
	engine := NewEngine()

	net := engine.NetCurrencyImpact(nil)

	require.Len(t, net, len(TrackedCurrencies))
	for currency, delta := range net {
		assert.Zero(t, delta, currency)
	}
}

func TestCatalogCoversTrackedCurrencies(t *testing.T) {
	for _, scenario := range Catalog() {
		assert.Len(t, scenario.CurrencyImpact, len(TrackedCurrencies), scenario.ID)
		for _, currency := range TrackedCurrencies {
			_, ok := scenario.CurrencyImpact[currency]
			assert.True(t, ok, "%s missing %s", scenario.ID, currency)
		}
		assert.NotEmpty(t, scenario.TriggerWords, scenario.ID)
	}
}
