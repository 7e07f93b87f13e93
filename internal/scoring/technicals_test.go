package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveTechnicalsUptrend(t *testing.T) {
	closes := make([]float64, 80)
	for i := range closes {
		closes[i] = 100 + float64(i)
	}

	tech, err := DeriveTechnicals(closes)
	require.NoError(t, err)

	assert.Equal(t, TrendStrongUptrend, tech.Trend)
	assert.Equal(t, RSIOverbought, tech.RSISignal) // monotone rise pins RSI at 100
	assert.Equal(t, MACDBullish, tech.MACDTrend)
	assert.Greater(t, tech.SMA20, tech.SMA50)
}

func TestDeriveTechnicalsDowntrend(t *testing.T) {
	closes := make([]float64, 80)
	for i := range closes {
		closes[i] = 200 - float64(i)
	}

	tech, err := DeriveTechnicals(closes)
	require.NoError(t, err)

	assert.Equal(t, RSIOversold, tech.RSISignal)
	assert.Equal(t, MACDBearish, tech.MACDTrend)
	assert.Less(t, tech.SMA20, tech.SMA50)
}

func TestDeriveTechnicalsFlatIsMixed(t *testing.T) {
	closes := make([]float64, 80)
	for i := range closes {
		closes[i] = 100
	}

	tech, err := DeriveTechnicals(closes)
	require.NoError(t, err)

	assert.Equal(t, TrendMixed, tech.Trend)
	assert.Equal(t, RSIOverbought, tech.RSISignal) // zero losses reads as RSI 100
}

func TestDeriveTechnicalsInsufficientData(t *testing.T) {
	_, err := DeriveTechnicals(make([]float64, 30))
	assert.Error(t, err)
}
