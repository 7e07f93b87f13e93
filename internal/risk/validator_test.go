package risk

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(v float64) *float64 { return &v }

func cleanSignal() Signal {
	return Signal{
		Symbol:     "RELIANCE.NS",
		EntryPrice: 50,
		Quantity:   10,
		StopLoss:   ptr(47),
		Target:     ptr(56),
		Score:      7.5,
	}
}

func newTestValidator() *Validator {
	return NewValidator(DefaultLimits(), NewCircuitBreaker())
}

func TestValidateSignalApproved(t *testing.T) {
	v := newTestValidator()

	check, err := v.ValidateSignal(cleanSignal(), Portfolio{TotalValue: 100000}, DailyStats{Trades: 1, PnL: 500})
	require.NoError(t, err)

	assert.True(t, check.Approved)
	assert.Empty(t, check.Violations)
	assert.Empty(t, check.Warnings)
	assert.Nil(t, check.AdjustedQuantity)
}

func TestApprovedMatchesViolations(t *testing.T) {
	v := newTestValidator()

	cases := []struct {
		name   string
		signal Signal
		stats  DailyStats
	}{
		{"clean", cleanSignal(), DailyStats{Trades: 1}},
		{"oversized", Signal{Symbol: "TCS.NS", EntryPrice: 50, Quantity: 500, StopLoss: ptr(47), Target: ptr(56), Score: 8}, DailyStats{}},
		{"no stop", Signal{Symbol: "INFY.NS", EntryPrice: 50, Quantity: 10, Score: 8}, DailyStats{}},
		{"low score", Signal{Symbol: "WIPRO.NS", EntryPrice: 50, Quantity: 10, StopLoss: ptr(47), Target: ptr(56), Score: 2}, DailyStats{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			check, err := v.ValidateSignal(tc.signal, Portfolio{TotalValue: 100000}, tc.stats)
			require.NoError(t, err)
			assert.Equal(t, len(check.Violations) == 0, check.Approved)
		})
	}
}

func TestMaxPositionAdjustsQuantity(t *testing.T) {
	v := newTestValidator()

	// $50 x 50 = $2,500 = 2.5% of a $100,000 portfolio, over the 2% cap.
	sig := cleanSignal()
	sig.Quantity = 50

	check, err := v.ValidateSignal(sig, Portfolio{TotalValue: 100000}, DailyStats{})
	require.NoError(t, err)

	require.Len(t, check.Violations, 1)
	assert.Equal(t, RuleMaxPosition, check.Violations[0].Rule)
	assert.Equal(t, SeverityBlock, check.Violations[0].Severity)
	assert.InDelta(t, 2.5, check.Violations[0].Actual, 1e-9)

	require.NotNil(t, check.AdjustedQuantity)
	assert.Equal(t, 40.0, *check.AdjustedQuantity) // floor(100000*2/100/50)
	assert.False(t, check.Approved)
}

func TestDailyTradeLimitAndWarning(t *testing.T) {
	v := newTestValidator()
	portfolio := Portfolio{TotalValue: 100000}

	// At the cap: blocked.
	check, err := v.ValidateSignal(cleanSignal(), portfolio, DailyStats{Trades: 10})
	require.NoError(t, err)
	require.Len(t, check.Violations, 1)
	assert.Equal(t, RuleMaxDailyTrades, check.Violations[0].Rule)

	// Within two trades of the cap: approved with a warning.
	check, err = v.ValidateSignal(cleanSignal(), portfolio, DailyStats{Trades: 8})
	require.NoError(t, err)
	assert.True(t, check.Approved)
	assert.Len(t, check.Warnings, 1)
}

func TestDailyLossHaltTripsBreaker(t *testing.T) {
	v := newTestValidator()

	var haltReason string
	v.SetHaltCallback(func(reason string, d time.Duration) {
		haltReason = reason
		assert.Equal(t, 24*time.Hour, d)
	})

	// -$6,000 on $100,000 = 6% daily loss, over the 5% limit.
	check, err := v.ValidateSignal(cleanSignal(), Portfolio{TotalValue: 100000}, DailyStats{Trades: 1, PnL: -6000})
	require.NoError(t, err)

	require.Len(t, check.Violations, 1)
	assert.Equal(t, RuleMaxDailyLoss, check.Violations[0].Rule)
	assert.Equal(t, SeverityHalt, check.Violations[0].Severity)
	assert.InDelta(t, 6.0, check.Violations[0].Actual, 1e-9)
	assert.Equal(t, "Daily loss limit exceeded", haltReason)

	status := v.Breaker().Status()
	require.True(t, status.IsHalted)
	assert.Equal(t, 24*time.Hour, status.ResumesAt.Sub(*status.HaltedAt))

	// Subsequent signals hit the breaker gate and nothing else.
	check, err = v.ValidateSignal(cleanSignal(), Portfolio{TotalValue: 100000}, DailyStats{Trades: 1, PnL: -6000})
	require.NoError(t, err)
	require.Len(t, check.Violations, 1)
	assert.Equal(t, RuleCircuitBreaker, check.Violations[0].Rule)
	assert.Equal(t, SeverityHalt, check.Violations[0].Severity)
}

func TestDailyLossWarningBelowLimit(t *testing.T) {
	v := newTestValidator()

	// 3% loss: over the 60% warning fraction of the 5% limit but under it.
	check, err := v.ValidateSignal(cleanSignal(), Portfolio{TotalValue: 100000}, DailyStats{PnL: -3000})
	require.NoError(t, err)

	assert.True(t, check.Approved)
	assert.Len(t, check.Warnings, 1)
	assert.False(t, v.Breaker().Status().IsHalted)
}

func TestPositivePnLMeansNoLoss(t *testing.T) {
	v := newTestValidator()

	check, err := v.ValidateSignal(cleanSignal(), Portfolio{TotalValue: 100000}, DailyStats{PnL: 20000})
	require.NoError(t, err)
	assert.True(t, check.Approved)
	assert.Empty(t, check.Warnings)
}

func TestStopLossRequired(t *testing.T) {
	v := newTestValidator()

	sig := cleanSignal()
	sig.StopLoss = nil
	sig.Target = nil

	check, err := v.ValidateSignal(sig, Portfolio{TotalValue: 100000}, DailyStats{})
	require.NoError(t, err)

	require.Len(t, check.Violations, 1)
	assert.Equal(t, RuleStopLossReq, check.Violations[0].Rule)
}

func TestMinScoreThreshold(t *testing.T) {
	v := newTestValidator()

	sig := cleanSignal()
	sig.Score = 4.9

	check, err := v.ValidateSignal(sig, Portfolio{TotalValue: 100000}, DailyStats{})
	require.NoError(t, err)

	require.Len(t, check.Violations, 1)
	assert.Equal(t, RuleMinScore, check.Violations[0].Rule)
}

func TestRiskRewardRatio(t *testing.T) {
	v := newTestValidator()

	// Risk $3, reward $3: R:R 1.0 under the 1.5 minimum.
	sig := cleanSignal()
	sig.Target = ptr(53)

	check, err := v.ValidateSignal(sig, Portfolio{TotalValue: 100000}, DailyStats{})
	require.NoError(t, err)

	require.Len(t, check.Violations, 1)
	assert.Equal(t, RuleMinRiskReward, check.Violations[0].Rule)
	assert.InDelta(t, 1.0, check.Violations[0].Actual, 1e-9)

	// Zero risk distance counts as R:R zero, not a crash.
	sig.StopLoss = ptr(50)
	check, err = v.ValidateSignal(sig, Portfolio{TotalValue: 100000}, DailyStats{})
	require.NoError(t, err)
	require.Len(t, check.Violations, 1)
	assert.Equal(t, 0.0, check.Violations[0].Actual)
}

func TestViolationsAccumulate(t *testing.T) {
	v := newTestValidator()

	// Oversized, no stop, and low score at once.
	sig := Signal{Symbol: "HDFC.NS", EntryPrice: 50, Quantity: 500, Score: 1}

	check, err := v.ValidateSignal(sig, Portfolio{TotalValue: 100000}, DailyStats{})
	require.NoError(t, err)

	rules := make([]string, 0, len(check.Violations))
	for _, violation := range check.Violations {
		rules = append(rules, violation.Rule)
	}
	assert.ElementsMatch(t, []string{RuleMaxPosition, RuleStopLossReq, RuleMinScore}, rules)
}

func TestValidateSignalContractErrors(t *testing.T) {
	v := newTestValidator()

	_, err := v.ValidateSignal(Signal{Symbol: "X.NS", EntryPrice: 0, Quantity: 1, Score: 8}, Portfolio{TotalValue: 100000}, DailyStats{})
	assert.Error(t, err)

	_, err = v.ValidateSignal(cleanSignal(), Portfolio{TotalValue: 0}, DailyStats{})
	assert.Error(t, err)

	sig := cleanSignal()
	sig.Quantity = -5
	_, err = v.ValidateSignal(sig, Portfolio{TotalValue: 100000}, DailyStats{})
	assert.Error(t, err)
}

func TestRiskStatus(t *testing.T) {
	v := newTestValidator()

	status, err := v.RiskStatus(Portfolio{TotalValue: 100000}, DailyStats{Trades: 2, PnL: -1000})
	require.NoError(t, err)

	assert.InDelta(t, 1.0, status.DailyLossPct, 1e-9)
	assert.Equal(t, 5.0, status.DailyLossLimit)
	assert.Equal(t, 2, status.TradesUsed)
	assert.Equal(t, 10, status.TradesLimit)
	assert.True(t, status.IsHealthy)
	assert.False(t, status.CircuitBreaker.IsHalted)

	// Loss at the warning fraction or trade count near the cap flips health.
	status, err = v.RiskStatus(Portfolio{TotalValue: 100000}, DailyStats{Trades: 8, PnL: 0})
	require.NoError(t, err)
	assert.False(t, status.IsHealthy)

	status, err = v.RiskStatus(Portfolio{TotalValue: 100000}, DailyStats{Trades: 0, PnL: -3000})
	require.NoError(t, err)
	assert.False(t, status.IsHealthy)
}
