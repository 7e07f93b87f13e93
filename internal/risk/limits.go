package risk

import "time"

// Limits is the frozen table of hard risk thresholds shared by the
// validator and the position sizer. It is constructed once at startup
// and never mutated afterwards; Copy returns a deep clone so callers
// cannot reach the shared table through a returned reference.
//
// MaxSectorPct and MaxConcentration are carried for completeness but no
// validation rule reads them yet; sector limits are enforced upstream
// by the portfolio layer.
type Limits struct {
	MaxPositionPct     float64       `json:"max_position_pct"`     // max % of portfolio in one position
	MaxSectorPct       float64       `json:"max_sector_pct"`       // max % of portfolio in one sector
	MaxConcentration   float64       `json:"max_concentration"`    // max % in a single instrument class
	MaxDailyLossPct    float64       `json:"max_daily_loss_pct"`   // daily kill-switch threshold
	MaxWeeklyLossPct   float64       `json:"max_weekly_loss_pct"`  // weekly loss threshold
	MaxDrawdownPct     float64       `json:"max_drawdown_pct"`     // peak-to-trough limit
	MaxTradesPerDay    int           `json:"max_trades_per_day"`   // trade count cap per day
	MinHoldingPeriod   time.Duration `json:"min_holding_period"`   // minimum time between entry and exit
	RequireStopLoss    bool          `json:"require_stop_loss"`    // reject signals without a stop
	MinRiskRewardRatio float64       `json:"min_risk_reward_ratio"`
	MinScoreThreshold  float64       `json:"min_score_threshold"`  // minimum signal quality score

	// HumanApproval maps currency code to the trade value above which a
	// human must sign off. Currencies not in the map fall back to
	// DefaultApprovalThreshold (a $500-equivalent).
	HumanApproval map[string]float64 `json:"human_approval"`
}

// DefaultApprovalThreshold is used when a currency has no entry in the
// human-approval table.
const DefaultApprovalThreshold = 500.0

// DefaultLimits returns the hard-coded rule table used across the engine.
func DefaultLimits() Limits {
	return Limits{
		MaxPositionPct:     2.0,
		MaxSectorPct:       20.0,
		MaxConcentration:   10.0,
		MaxDailyLossPct:    5.0,
		MaxWeeklyLossPct:   8.0,
		MaxDrawdownPct:     15.0,
		MaxTradesPerDay:    10,
		MinHoldingPeriod:   time.Hour,
		RequireStopLoss:    true,
		MinRiskRewardRatio: 1.5,
		MinScoreThreshold:  5.0,
		HumanApproval: map[string]float64{
			"USD": 500,
			"EUR": 450,
			"GBP": 400,
			"INR": 40000,
			"JPY": 75000,
		},
	}
}

// Copy returns a deep clone of the limits table. Mutating the clone
// (including its per-currency approval map) leaves the receiver intact.
func (l Limits) Copy() Limits {
	out := l
	out.HumanApproval = make(map[string]float64, len(l.HumanApproval))
	for currency, threshold := range l.HumanApproval {
		out.HumanApproval[currency] = threshold
	}
	return out
}

// RequiresHumanApproval reports whether a trade of the given value needs
// manual confirmation. Unknown currencies use DefaultApprovalThreshold.
func (l Limits) RequiresHumanApproval(amount float64, currency string) bool {
	threshold, ok := l.HumanApproval[currency]
	if !ok {
		threshold = DefaultApprovalThreshold
	}
	return amount > threshold
}
