package main

import (
	"sync"

	"github.com/quantdesk/trading-advisor/internal/risk"
)

// portfolioState is the process-local snapshot of the account fed into
// the validator. A real deployment replaces this with the orchestration
// layer's live portfolio feed.
type portfolioState struct {
	mu        sync.Mutex
	portfolio risk.Portfolio
	stats     risk.DailyStats
}

func newPortfolioState() *portfolioState {
	return &portfolioState{
		portfolio: risk.Portfolio{
			TotalValue: 100000,
			SectorExposure: map[string]float64{
				"it":     8.5,
				"energy": 5.2,
				"banks":  12.0,
			},
		},
		stats: risk.DailyStats{Trades: 3, PnL: -1200},
	}
}

func (s *portfolioState) snapshot() (risk.Portfolio, risk.DailyStats) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.portfolio, s.stats
}

func (s *portfolioState) recordTrade(pnl float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stats.Trades++
	s.stats.PnL += pnl
}

func ptr(v float64) *float64 { return &v }

// demoSignals is a representative mix: a clean signal, an unsized one,
// an oversized one, and one missing its stop loss.
func demoSignals() []risk.Signal {
	return []risk.Signal{
		{Symbol: "TATAPOWER.NS", EntryPrice: 420, Quantity: 0, StopLoss: ptr(405), Target: ptr(450), Score: 7.8},
		{Symbol: "TCS.NS", EntryPrice: 3900, Quantity: 5, StopLoss: ptr(3790), Target: ptr(4120), Score: 6.9},
		{Symbol: "HDFCBANK.NS", EntryPrice: 1650, Quantity: 200, StopLoss: ptr(1600), Target: ptr(1760), Score: 7.1},
		{Symbol: "ZOMATO.NS", EntryPrice: 240, Quantity: 40, Score: 5.6},
	}
}

func demoHeadlines() []string {
	return []string{
		"Taiwan strait crisis escalates after naval standoff",
		"OPEC weighs deeper production cut at next meeting",
		"Quarterly earnings season opens with IT bellwethers",
		"PLA drills around Taiwan enter third day",
	}
}
