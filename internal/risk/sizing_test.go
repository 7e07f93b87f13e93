package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculatePositionSizeHitsCap(t *testing.T) {
	sizer := NewSizer(DefaultLimits())

	// winRate=0.5, avgWin=0.08, avgLoss=0.04: b=2, kelly=0.25,
	// halfKelly=0.125, volAdjusted~=0.1042, capped at 2%.
	qty, err := sizer.CalculatePositionSize(50, 100000, SizingInput{})
	require.NoError(t, err)

	assert.Equal(t, 40, qty) // floor(100000 * 0.02 / 50)
}

func TestCalculatePositionSizeBelowCap(t *testing.T) {
	limits := DefaultLimits()
	limits.MaxPositionPct = 50 // cap out of the way

	sizer := NewSizer(limits)

	qty, err := sizer.CalculatePositionSize(100, 100000, SizingInput{
		WinRate:    0.5,
		AvgWin:     0.08,
		AvgLoss:    0.04,
		Volatility: 0.2,
	})
	require.NoError(t, err)

	// volAdjusted = 0.125 / 1.2 = 0.1041666..., floor(100000*0.1041666/100)
	assert.Equal(t, 104, qty)
}

func TestNegativeKellyClampsToZero(t *testing.T) {
	sizer := NewSizer(DefaultLimits())

	// Losing edge: p*b - q < 0, the sizer never shorts.
	qty, err := sizer.CalculatePositionSize(50, 100000, SizingInput{
		WinRate: 0.3,
		AvgWin:  0.04,
		AvgLoss: 0.08,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, qty)
}

func TestHigherVolatilityShrinksSize(t *testing.T) {
	limits := DefaultLimits()
	limits.MaxPositionPct = 50

	sizer := NewSizer(limits)

	calm, err := sizer.CalculatePositionSize(100, 100000, SizingInput{Volatility: 0.1})
	require.NoError(t, err)
	wild, err := sizer.CalculatePositionSize(100, 100000, SizingInput{Volatility: 0.8})
	require.NoError(t, err)

	assert.Greater(t, calm, wild)
}

func TestCalculatePositionSizeContractErrors(t *testing.T) {
	sizer := NewSizer(DefaultLimits())

	_, err := sizer.CalculatePositionSize(0, 100000, SizingInput{})
	assert.Error(t, err)

	_, err = sizer.CalculatePositionSize(50, -1, SizingInput{})
	assert.Error(t, err)
}
