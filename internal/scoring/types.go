// Package scoring ranks instruments with a five-factor composite score
// built from fundamentals and technicals.
package scoring

import "time"

// RiskProfile selects the factor weight table applied to the raw scores
type RiskProfile string

const (
	ProfileConservative RiskProfile = "conservative"
	ProfileModerate     RiskProfile = "moderate"
	ProfileAggressive   RiskProfile = "aggressive"
)

// Trend classifies the technical price trend
type Trend string

const (
	TrendStrongUptrend   Trend = "STRONG_UPTREND"
	TrendUptrend         Trend = "UPTREND"
	TrendMixed           Trend = "MIXED"
	TrendDowntrend       Trend = "DOWNTREND"
	TrendStrongDowntrend Trend = "STRONG_DOWNTREND"
)

// RSISignal buckets the RSI reading
type RSISignal string

const (
	RSIOversold   RSISignal = "OVERSOLD"
	RSINeutral    RSISignal = "NEUTRAL"
	RSIOverbought RSISignal = "OVERBOUGHT"
)

// MACDTrend is the MACD crossover direction
type MACDTrend string

const (
	MACDBullish MACDTrend = "BULLISH"
	MACDBearish MACDTrend = "BEARISH"
)

// Recommendation is the advisory verdict derived from the composite score
type Recommendation string

const (
	StrongBuy Recommendation = "STRONG_BUY"
	Buy       Recommendation = "BUY"
	Hold      Recommendation = "HOLD"
	Sell      Recommendation = "SELL"
)

// Exchange identifies the venue inferred from the symbol suffix
type Exchange string

const (
	ExchangeNSE    Exchange = "NSE"
	ExchangeBSE    Exchange = "BSE"
	ExchangeLSE    Exchange = "LSE"
	ExchangeCrypto Exchange = "CRYPTO"
	ExchangeNasdaq Exchange = "NASDAQ"
)

// Fundamentals carries the valuation and quality inputs for one instrument
type Fundamentals struct {
	PERatio       float64 `json:"pe_ratio"`
	PBRatio       float64 `json:"pb_ratio"`
	DividendYield float64 `json:"dividend_yield"` // percent
	ROE           float64 `json:"roe"`            // percent
	ProfitMargin  float64 `json:"profit_margin"`  // percent
	DebtToEquity  float64 `json:"debt_to_equity"`
	Beta          float64 `json:"beta"`
}

// Technicals carries the momentum and chart inputs for one instrument.
// SMA20 doubles as the current-price proxy when compared against SMA50.
type Technicals struct {
	RSI       float64   `json:"rsi"`
	Trend     Trend     `json:"trend"`
	RSISignal RSISignal `json:"rsi_signal"`
	MACDTrend MACDTrend `json:"macd_trend"`
	SMA20     float64   `json:"sma20"`
	SMA50     float64   `json:"sma50"`
}

// FactorScores holds the raw per-factor sub-scores before weighting
type FactorScores struct {
	Value     float64 `json:"value"`     // 0-30
	Quality   float64 `json:"quality"`   // 0-30
	Momentum  float64 `json:"momentum"`  // 0-20
	Technical float64 `json:"technical"` // 0-30
	Risk      float64 `json:"risk"`      // 0-15
}

// StockScore is the ranking result for one instrument
type StockScore struct {
	Symbol         string         `json:"symbol"`
	Exchange       Exchange       `json:"exchange"`
	Score          float64        `json:"score"` // 0-10, two decimals
	Recommendation Recommendation `json:"recommendation"`
	FactorScores   FactorScores   `json:"factor_scores"`
	BullSignals    []string       `json:"bull_signals"`
	BearSignals    []string       `json:"bear_signals"`
	Timestamp      time.Time      `json:"timestamp"`
}

// Candidate bundles one instrument's inputs for batch scoring
type Candidate struct {
	Symbol       string       `json:"symbol"`
	Fundamentals Fundamentals `json:"fundamentals"`
	Technicals   Technicals   `json:"technicals"`
}
