package risk

import (
	"fmt"
	"math"

	"github.com/quantdesk/trading-advisor/internal/safety"
)

// Default trade statistics assumed when the caller has no track record yet.
const (
	DefaultWinRate    = 0.5
	DefaultAvgWin     = 0.08
	DefaultAvgLoss    = 0.04
	DefaultVolatility = 0.2
)

// SizingInput carries the per-trade statistics fed into the Kelly model.
// Zero values fall back to the package defaults.
type SizingInput struct {
	WinRate    float64 // probability of a winning trade, 0-1
	AvgWin     float64 // average fractional gain on winners
	AvgLoss    float64 // average fractional loss on losers
	Volatility float64 // annualized volatility estimate
}

// Sizer computes risk-adjusted position sizes using a half-Kelly model
// discounted by volatility and capped by the shared max-position limit.
// Pure computation; Sizer carries no mutable state.
type Sizer struct {
	limits Limits
	checks *safety.Validator
}

// NewSizer creates a position sizer over the shared limit table.
func NewSizer(limits Limits) *Sizer {
	return &Sizer{limits: limits, checks: safety.NewValidator()}
}

// CalculatePositionSize returns the whole-unit quantity to buy at the
// given price. The Kelly fraction is halved, discounted by volatility,
// then capped at the MaxPositionPct shared with the validator; a
// negative Kelly clamps to zero (this sizer never shorts).
func (s *Sizer) CalculatePositionSize(price, portfolioValue float64, input SizingInput) (int, error) {
	if err := s.checks.ValidatePrice(price, "").Err(); err != nil {
		return 0, fmt.Errorf("position size: %w", err)
	}
	if err := s.checks.ValidatePortfolioValue(portfolioValue).Err(); err != nil {
		return 0, fmt.Errorf("position size: %w", err)
	}

	winRate := input.WinRate
	if winRate == 0 {
		winRate = DefaultWinRate
	}
	avgWin := input.AvgWin
	if avgWin == 0 {
		avgWin = DefaultAvgWin
	}
	avgLoss := input.AvgLoss
	if avgLoss == 0 {
		avgLoss = DefaultAvgLoss
	}
	volatility := input.Volatility
	if volatility == 0 {
		volatility = DefaultVolatility
	}

	p := winRate
	q := 1 - p
	b := avgWin / avgLoss

	kellyPct := (p*b - q) / b
	halfKelly := math.Max(0, kellyPct/2)
	volAdjusted := halfKelly * (1 / (1 + volatility))
	cappedPct := math.Min(volAdjusted, s.limits.MaxPositionPct/100)

	return int(math.Floor(portfolioValue * cappedPct / price)), nil
}
