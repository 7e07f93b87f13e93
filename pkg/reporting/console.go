// Package reporting renders engine output (rankings, verdicts, risk
// status) for the console and for CSV/Excel export.
package reporting

import (
	"fmt"
	"strings"

	"github.com/quantdesk/trading-advisor/internal/risk"
	"github.com/quantdesk/trading-advisor/internal/scoring"
)

// ConsoleReporter implements console output functionality
type ConsoleReporter struct{}

// NewConsoleReporter creates a new console reporter
func NewConsoleReporter() *ConsoleReporter {
	return &ConsoleReporter{}
}

// PrintVerdict prints one validation verdict to the console
func (r *ConsoleReporter) PrintVerdict(symbol string, check *risk.RiskCheck) {
	fmt.Println("\n" + strings.Repeat("=", 50))
	fmt.Printf("🛡️ RISK CHECK: %s\n", symbol)
	fmt.Println(strings.Repeat("=", 50))

	if check.Approved {
		fmt.Println("✅ Approved")
	} else {
		fmt.Println("❌ Blocked")
	}

	for _, violation := range check.Violations {
		fmt.Printf("🚫 [%s/%s] %s\n", violation.Rule, violation.Severity, violation.Message)
	}
	for _, warning := range check.Warnings {
		fmt.Printf("⚠️  %s\n", warning)
	}
	if check.AdjustedQuantity != nil {
		fmt.Printf("🔧 Suggested quantity: %.0f\n", *check.AdjustedQuantity)
	}
}

// PrintRiskStatus prints the risk health summary
func (r *ConsoleReporter) PrintRiskStatus(status *risk.Status) {
	fmt.Println("\n" + strings.Repeat("=", 50))
	fmt.Println("📊 RISK STATUS")
	fmt.Println(strings.Repeat("=", 50))

	fmt.Printf("📉 Daily Loss:     %.2f%% of %.2f%% limit\n", status.DailyLossPct, status.DailyLossLimit)
	fmt.Printf("🔄 Trades Used:    %d of %d\n", status.TradesUsed, status.TradesLimit)

	if status.IsHealthy {
		fmt.Println("💚 Health:         OK")
	} else {
		fmt.Println("🧡 Health:         DEGRADED")
	}

	cb := status.CircuitBreaker
	if cb.IsHalted {
		fmt.Printf("🛑 Circuit Breaker: HALTED (%s), resumes %s\n",
			cb.Reason, cb.ResumesAt.Format("2006-01-02 15:04:05"))
	} else {
		fmt.Println("🟢 Circuit Breaker: active")
	}
}

// PrintCurrencyImpact prints the net per-currency deltas from active scenarios
func (r *ConsoleReporter) PrintCurrencyImpact(scenarios []string, impact map[string]float64, currencies []string) {
	fmt.Println("\n" + strings.Repeat("=", 50))
	fmt.Println("🌍 GEOPOLITICAL CURRENCY IMPACT")
	fmt.Println(strings.Repeat("=", 50))

	if len(scenarios) == 0 {
		fmt.Println("No active scenarios detected")
		return
	}

	fmt.Printf("Active scenarios: %s\n", strings.Join(scenarios, ", "))
	for _, currency := range currencies {
		delta := impact[currency]
		arrow := "→"
		if delta > 0 {
			arrow = "📈"
		} else if delta < 0 {
			arrow = "📉"
		}
		fmt.Printf("  %s %s %+.3f\n", arrow, currency, delta)
	}
}

// PrintRankingSummary prints a one-line summary per ranked instrument
func (r *ConsoleReporter) PrintRankingSummary(ranked []scoring.StockScore) {
	fmt.Println("\n" + strings.Repeat("=", 50))
	fmt.Printf("🏆 RANKED %d INSTRUMENTS\n", len(ranked))
	fmt.Println(strings.Repeat("=", 50))

	for i, score := range ranked {
		fmt.Printf("%2d. %-14s %5.2f  %s\n", i+1, score.Symbol, score.Score, score.Recommendation)
	}
}
