package risk

import "time"

// Severity classifies how a broken rule affects trading
type Severity string

const (
	// SeverityBlock rejects the signal under evaluation only
	SeverityBlock Severity = "block"
	// SeverityHalt stops all trading, not just this signal
	SeverityHalt Severity = "halt"
)

// Rule identifiers attached to violations
const (
	RuleCircuitBreaker = "CIRCUIT_BREAKER"
	RuleMaxPosition    = "MAX_POSITION"
	RuleMaxDailyTrades = "MAX_DAILY_TRADES"
	RuleMaxDailyLoss   = "MAX_DAILY_LOSS"
	RuleStopLossReq    = "STOP_LOSS_REQUIRED"
	RuleMinScore       = "MIN_SCORE"
	RuleMinRiskReward  = "MIN_RISK_REWARD"
)

// Signal represents a proposed trade submitted for validation
type Signal struct {
	Symbol     string   `json:"symbol"`
	EntryPrice float64  `json:"entry_price"`
	Quantity   float64  `json:"quantity"`
	StopLoss   *float64 `json:"stop_loss,omitempty"`
	Target     *float64 `json:"target,omitempty"`
	Score      float64  `json:"score"` // pre-computed quality score, 0-10 scale
}

// Portfolio is the account snapshot consumed during validation.
// Owned by the caller; the engine only reads it.
type Portfolio struct {
	TotalValue     float64            `json:"total_value"`
	SectorExposure map[string]float64 `json:"sector_exposure,omitempty"`
}

// DailyStats carries the running trade count and realized PnL for the day
type DailyStats struct {
	Trades int     `json:"trades"`
	PnL    float64 `json:"pnl"`
}

// Violation records a single broken rule with its limit and observed value
type Violation struct {
	Rule     string   `json:"rule"`
	Severity Severity `json:"severity"`
	Limit    float64  `json:"limit"`
	Actual   float64  `json:"actual"`
	Message  string   `json:"message"`
}

// RiskCheck is the verdict produced for one signal.
// Approved is true exactly when Violations is empty; Warnings are
// advisory and returned even for approved signals.
type RiskCheck struct {
	Approved         bool        `json:"approved"`
	Violations       []Violation `json:"violations"`
	Warnings         []string    `json:"warnings"`
	AdjustedQuantity *float64    `json:"adjusted_quantity,omitempty"`
}

// BreakerStatus is a snapshot of the circuit breaker state
type BreakerStatus struct {
	IsHalted  bool       `json:"is_halted"`
	Reason    string     `json:"reason,omitempty"`
	HaltedAt  *time.Time `json:"halted_at,omitempty"`
	ResumesAt *time.Time `json:"resumes_at,omitempty"`
}

// Status is the derived read-only summary served to dashboards
type Status struct {
	DailyLossPct   float64       `json:"daily_loss_pct"`
	DailyLossLimit float64       `json:"daily_loss_limit"`
	TradesUsed     int           `json:"trades_used"`
	TradesLimit    int           `json:"trades_limit"`
	IsHealthy      bool          `json:"is_healthy"`
	CircuitBreaker BreakerStatus `json:"circuit_breaker"`
}
