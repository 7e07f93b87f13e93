package scoring

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"
)

// Weights is the per-profile weighting of the five factors. Each row
// sums to 1.0.
type Weights struct {
	Value     float64
	Quality   float64
	Momentum  float64
	Technical float64
	Risk      float64
}

var profileWeights = map[RiskProfile]Weights{
	ProfileConservative: {Value: 0.30, Quality: 0.30, Momentum: 0.10, Technical: 0.10, Risk: 0.20},
	ProfileModerate:     {Value: 0.25, Quality: 0.25, Momentum: 0.20, Technical: 0.20, Risk: 0.10},
	ProfileAggressive:   {Value: 0.15, Quality: 0.15, Momentum: 0.30, Technical: 0.30, Risk: 0.10},
}

// Recommendation thresholds on the 0-10 composite score.
const (
	strongBuyThreshold = 6.5
	buyThreshold       = 5.5
	holdThreshold      = 4.5
)

// Scorer computes composite scores and rankings. Stateless and safe for
// concurrent use.
type Scorer struct {
	now func() time.Time
}

// NewScorer creates a scorer.
func NewScorer() *Scorer {
	return &Scorer{now: time.Now}
}

// Score computes the composite 0-10 score, recommendation, and advisory
// bull/bear signals for one instrument. Unknown risk profiles fall back
// to moderate weights.
func (s *Scorer) Score(symbol string, f Fundamentals, t Technicals, profile RiskProfile) StockScore {
	factors := FactorScores{
		Value:     valueScore(f),
		Quality:   qualityScore(f),
		Momentum:  momentumScore(t),
		Technical: technicalScore(t),
		Risk:      riskScore(f),
	}

	weights, ok := profileWeights[profile]
	if !ok {
		weights = profileWeights[ProfileModerate]
	}

	weightedSum := factors.Value*weights.Value +
		factors.Quality*weights.Quality +
		factors.Momentum*weights.Momentum +
		factors.Technical*weights.Technical +
		factors.Risk*weights.Risk

	score := round2(weightedSum / 3)

	return StockScore{
		Symbol:         symbol,
		Exchange:       InferExchange(symbol),
		Score:          score,
		Recommendation: recommend(score),
		FactorScores:   factors,
		BullSignals:    bullSignals(f, t),
		BearSignals:    bearSignals(f, t),
		Timestamp:      s.now(),
	}
}

// ScoreAndRank scores every candidate and sorts descending by score.
// The sort is stable: candidates with equal scores keep their input order.
func (s *Scorer) ScoreAndRank(batch []Candidate, profile RiskProfile) []StockScore {
	scores := make([]StockScore, len(batch))
	for i, candidate := range batch {
		scores[i] = s.Score(candidate.Symbol, candidate.Fundamentals, candidate.Technicals, profile)
	}
	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Score > scores[j].Score
	})
	return scores
}

// valueScore buckets valuation metrics, 0-30.
func valueScore(f Fundamentals) float64 {
	score := 0.0
	if f.PERatio < 15 {
		score += 10
	} else if f.PERatio < 25 {
		score += 5
	}
	if f.PBRatio < 2 {
		score += 10
	} else if f.PBRatio < 4 {
		score += 5
	}
	if f.DividendYield > 3 {
		score += 10
	} else if f.DividendYield > 1 {
		score += 5
	}
	return score
}

// qualityScore buckets profitability and leverage, 0-30.
func qualityScore(f Fundamentals) float64 {
	score := 0.0
	if f.ROE > 15 {
		score += 10
	} else if f.ROE > 10 {
		score += 5
	}
	if f.ProfitMargin > 10 {
		score += 10
	} else if f.ProfitMargin > 5 {
		score += 5
	}
	if f.DebtToEquity >= 0 && f.DebtToEquity < 1 {
		score += 10
	} else if f.DebtToEquity >= 1 && f.DebtToEquity < 2 {
		score += 5
	}
	return score
}

// momentumScore buckets RSI position and trend, 0-20.
func momentumScore(t Technicals) float64 {
	score := 0.0
	if t.RSI > 30 && t.RSI < 70 {
		score += 10
	} else {
		score += 5
	}
	switch t.Trend {
	case TrendStrongUptrend, TrendUptrend:
		score += 10
	case TrendMixed:
		score += 5
	}
	return score
}

// technicalScore buckets chart signals, 0-30.
func technicalScore(t Technicals) float64 {
	score := 0.0
	switch t.RSISignal {
	case RSIOversold:
		score += 10
	case RSINeutral:
		score += 5
	}
	if t.MACDTrend == MACDBullish {
		score += 10
	}
	if t.SMA20 > t.SMA50 {
		score += 10
	}
	return score
}

// riskScore buckets beta, 0-15. Lower beta earns more.
func riskScore(f Fundamentals) float64 {
	if f.Beta < 1.2 {
		return 15
	}
	if f.Beta < 1.5 {
		return 10
	}
	return 5
}

func recommend(score float64) Recommendation {
	switch {
	case score >= strongBuyThreshold:
		return StrongBuy
	case score >= buyThreshold:
		return Buy
	case score >= holdThreshold:
		return Hold
	default:
		return Sell
	}
}

// bullSignals derives advisory text from the raw inputs. These are not
// inputs to the numeric score.
func bullSignals(f Fundamentals, t Technicals) []string {
	signals := []string{}
	if f.PERatio > 0 && f.PERatio < 15 {
		signals = append(signals, fmt.Sprintf("low P/E %.1f", f.PERatio))
	}
	if f.DividendYield > 3 {
		signals = append(signals, fmt.Sprintf("high dividend yield %.1f%%", f.DividendYield))
	}
	if t.RSISignal == RSIOversold {
		signals = append(signals, "RSI oversold")
	}
	if t.MACDTrend == MACDBullish {
		signals = append(signals, "MACD bullish crossover")
	}
	if f.ROE > 15 {
		signals = append(signals, fmt.Sprintf("strong ROE %.1f%%", f.ROE))
	}
	return signals
}

func bearSignals(f Fundamentals, t Technicals) []string {
	signals := []string{}
	if f.PERatio >= 25 {
		signals = append(signals, fmt.Sprintf("high P/E %.1f", f.PERatio))
	}
	if t.RSISignal == RSIOverbought {
		signals = append(signals, "RSI overbought")
	}
	if f.DebtToEquity >= 2 {
		signals = append(signals, fmt.Sprintf("high debt/equity %.1f", f.DebtToEquity))
	}
	if f.Beta >= 1.5 {
		signals = append(signals, fmt.Sprintf("high beta %.1f", f.Beta))
	}
	return signals
}

// InferExchange maps a symbol suffix to its venue. Unsuffixed symbols
// default to NASDAQ.
func InferExchange(symbol string) Exchange {
	switch {
	case strings.HasSuffix(symbol, ".NS"):
		return ExchangeNSE
	case strings.HasSuffix(symbol, ".BO"):
		return ExchangeBSE
	case strings.HasSuffix(symbol, ".L"):
		return ExchangeLSE
	case strings.Contains(symbol, "-USD"):
		return ExchangeCrypto
	default:
		return ExchangeNasdaq
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
