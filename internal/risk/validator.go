package risk

import (
	"fmt"
	"math"
	"time"

	"github.com/quantdesk/trading-advisor/internal/safety"
)

// haltDuration is how long the breaker stays open after a daily loss
// breach.
const haltDuration = 24 * time.Hour

// warnTradesBuffer is how close to the daily trade cap a signal may get
// before a warning is attached.
const warnTradesBuffer = 2

// warnLossFraction of the daily loss limit at which a warning is attached.
const warnLossFraction = 0.6

// Validator evaluates proposed signals against the hard limit table and
// the shared circuit breaker.
//
// ValidateSignal is a command, not a query: breaching the daily loss
// limit trips the process-wide breaker as a side effect of validation.
type Validator struct {
	limits  Limits
	breaker *CircuitBreaker
	checks  *safety.Validator

	// onHalt, when set, is invoked after the validator trips the
	// breaker. The host wires alerting and metrics here.
	onHalt func(reason string, d time.Duration)
}

// NewValidator creates a validator over the given limits and breaker.
func NewValidator(limits Limits, breaker *CircuitBreaker) *Validator {
	return &Validator{
		limits:  limits,
		breaker: breaker,
		checks:  safety.NewValidator(),
	}
}

// SetHaltCallback registers a hook invoked whenever validation trips the
// circuit breaker. Must be called before the validator is shared.
func (v *Validator) SetHaltCallback(fn func(reason string, d time.Duration)) {
	v.onHalt = fn
}

// Limits returns a deep copy of the validator's limit table.
func (v *Validator) Limits() Limits {
	return v.limits.Copy()
}

// Breaker exposes the shared circuit breaker for status rendering.
func (v *Validator) Breaker() *CircuitBreaker {
	return v.breaker
}

// ValidateSignal evaluates a signal against every applicable rule and
// returns the verdict. Rules are accumulated, not short-circuited; the
// only early exit is an already-halted circuit breaker. A non-nil error
// means the caller broke an input contract (non-positive price,
// quantity, or portfolio value) and no verdict was produced.
func (v *Validator) ValidateSignal(sig Signal, portfolio Portfolio, stats DailyStats) (*RiskCheck, error) {
	if err := v.checks.ValidatePrice(sig.EntryPrice, sig.Symbol).Err(); err != nil {
		return nil, fmt.Errorf("validate signal %s: %w", sig.Symbol, err)
	}
	if err := v.checks.ValidateQuantity(sig.Quantity, sig.Symbol).Err(); err != nil {
		return nil, fmt.Errorf("validate signal %s: %w", sig.Symbol, err)
	}
	if err := v.checks.ValidatePortfolioValue(portfolio.TotalValue).Err(); err != nil {
		return nil, fmt.Errorf("validate signal %s: %w", sig.Symbol, err)
	}

	check := &RiskCheck{
		Violations: []Violation{},
		Warnings:   []string{},
	}

	// Rule 1: circuit breaker gate. A halted breaker rejects the signal
	// outright and skips every other rule.
	if status := v.breaker.Status(); status.IsHalted {
		check.Violations = append(check.Violations, Violation{
			Rule:     RuleCircuitBreaker,
			Severity: SeverityHalt,
			Message:  fmt.Sprintf("trading halted: %s (resumes %s)", status.Reason, status.ResumesAt.Format(time.RFC3339)),
		})
		return check, nil
	}

	// Rule 2: maximum position size as a percentage of the portfolio.
	positionValue := sig.EntryPrice * sig.Quantity
	positionPct := positionValue / portfolio.TotalValue * 100
	if positionPct > v.limits.MaxPositionPct {
		maxQuantity := math.Floor(portfolio.TotalValue * v.limits.MaxPositionPct / 100 / sig.EntryPrice)
		check.Violations = append(check.Violations, Violation{
			Rule:     RuleMaxPosition,
			Severity: SeverityBlock,
			Limit:    v.limits.MaxPositionPct,
			Actual:   positionPct,
			Message: fmt.Sprintf("position %.2f%% of portfolio exceeds %.2f%% limit, max quantity %.0f",
				positionPct, v.limits.MaxPositionPct, maxQuantity),
		})
		check.AdjustedQuantity = &maxQuantity
	}

	// Rule 3: daily trade count.
	if stats.Trades >= v.limits.MaxTradesPerDay {
		check.Violations = append(check.Violations, Violation{
			Rule:     RuleMaxDailyTrades,
			Severity: SeverityBlock,
			Limit:    float64(v.limits.MaxTradesPerDay),
			Actual:   float64(stats.Trades),
			Message:  fmt.Sprintf("daily trade limit reached: %d of %d", stats.Trades, v.limits.MaxTradesPerDay),
		})
	} else if stats.Trades >= v.limits.MaxTradesPerDay-warnTradesBuffer {
		check.Warnings = append(check.Warnings,
			fmt.Sprintf("approaching daily trade limit: %d of %d used", stats.Trades, v.limits.MaxTradesPerDay))
	}

	// Rule 4: daily loss. Breaching the limit both records a halt
	// violation and trips the breaker for 24 hours.
	dailyLossPct := math.Abs(math.Min(0, stats.PnL)) / portfolio.TotalValue * 100
	if dailyLossPct >= v.limits.MaxDailyLossPct {
		check.Violations = append(check.Violations, Violation{
			Rule:     RuleMaxDailyLoss,
			Severity: SeverityHalt,
			Limit:    v.limits.MaxDailyLossPct,
			Actual:   dailyLossPct,
			Message: fmt.Sprintf("daily loss %.2f%% breached %.2f%% limit, trading halted for 24h",
				dailyLossPct, v.limits.MaxDailyLossPct),
		})
		v.triggerHalt("Daily loss limit exceeded", haltDuration)
	} else if dailyLossPct >= warnLossFraction*v.limits.MaxDailyLossPct {
		check.Warnings = append(check.Warnings,
			fmt.Sprintf("daily loss %.2f%% approaching %.2f%% limit", dailyLossPct, v.limits.MaxDailyLossPct))
	}

	// Rule 5: stop loss required.
	if v.limits.RequireStopLoss && sig.StopLoss == nil {
		check.Violations = append(check.Violations, Violation{
			Rule:     RuleStopLossReq,
			Severity: SeverityBlock,
			Message:  "signal has no stop loss",
		})
	}

	// Rule 6: minimum quality score.
	if sig.Score < v.limits.MinScoreThreshold {
		check.Violations = append(check.Violations, Violation{
			Rule:     RuleMinScore,
			Severity: SeverityBlock,
			Limit:    v.limits.MinScoreThreshold,
			Actual:   sig.Score,
			Message:  fmt.Sprintf("score %.2f below minimum %.2f", sig.Score, v.limits.MinScoreThreshold),
		})
	}

	// Rule 7: risk/reward ratio, only when both stop and target are set.
	if sig.StopLoss != nil && sig.Target != nil {
		riskDist := math.Abs(sig.EntryPrice - *sig.StopLoss)
		rewardDist := math.Abs(*sig.Target - sig.EntryPrice)
		rr := 0.0
		if riskDist > 0 {
			rr = rewardDist / riskDist
		}
		if rr < v.limits.MinRiskRewardRatio {
			check.Violations = append(check.Violations, Violation{
				Rule:     RuleMinRiskReward,
				Severity: SeverityBlock,
				Limit:    v.limits.MinRiskRewardRatio,
				Actual:   rr,
				Message:  fmt.Sprintf("risk/reward %.2f below minimum %.2f", rr, v.limits.MinRiskRewardRatio),
			})
		}
	}

	check.Approved = len(check.Violations) == 0
	return check, nil
}

func (v *Validator) triggerHalt(reason string, d time.Duration) {
	v.breaker.Trigger(reason, d)
	if v.onHalt != nil {
		v.onHalt(reason, d)
	}
}

// RiskStatus derives the read-only health summary served to dashboards.
func (v *Validator) RiskStatus(portfolio Portfolio, stats DailyStats) (*Status, error) {
	if err := v.checks.ValidatePortfolioValue(portfolio.TotalValue).Err(); err != nil {
		return nil, fmt.Errorf("risk status: %w", err)
	}

	dailyLossPct := math.Abs(math.Min(0, stats.PnL)) / portfolio.TotalValue * 100
	healthy := dailyLossPct < warnLossFraction*v.limits.MaxDailyLossPct &&
		stats.Trades < v.limits.MaxTradesPerDay-warnTradesBuffer

	return &Status{
		DailyLossPct:   dailyLossPct,
		DailyLossLimit: v.limits.MaxDailyLossPct,
		TradesUsed:     stats.Trades,
		TradesLimit:    v.limits.MaxTradesPerDay,
		IsHealthy:      healthy,
		CircuitBreaker: v.breaker.Status(),
	}, nil
}
