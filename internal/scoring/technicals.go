package scoring

import (
	"fmt"

	"github.com/quantdesk/trading-advisor/internal/indicators"
)

// Standard indicator parameters used when deriving technicals.
const (
	rsiPeriod      = 14
	smaFastPeriod  = 20
	smaSlowPeriod  = 50
	macdFast       = 12
	macdSlow       = 26
	macdSignal     = 9
	strongTrendGap = 0.02 // SMA20 vs SMA50 gap marking a strong trend
)

// DeriveTechnicals computes the scorer's technical inputs from a
// close-price series (oldest first). Callers with a richer data source
// can build Technicals directly instead.
func DeriveTechnicals(closes []float64) (Technicals, error) {
	rsi := indicators.NewRSI(rsiPeriod)
	smaFast := indicators.NewSMA(smaFastPeriod)
	smaSlow := indicators.NewSMA(smaSlowPeriod)
	macd := indicators.NewMACD(macdFast, macdSlow, macdSignal)

	if len(closes) < smaSlowPeriod {
		return Technicals{}, fmt.Errorf("derive technicals: need %d closes, have %d", smaSlowPeriod, len(closes))
	}

	rsiValue, err := rsi.Calculate(closes)
	if err != nil {
		return Technicals{}, fmt.Errorf("derive technicals: %w", err)
	}
	fast, err := smaFast.Calculate(closes)
	if err != nil {
		return Technicals{}, fmt.Errorf("derive technicals: %w", err)
	}
	slow, err := smaSlow.Calculate(closes)
	if err != nil {
		return Technicals{}, fmt.Errorf("derive technicals: %w", err)
	}

	tech := Technicals{
		RSI:       rsiValue,
		RSISignal: classifyRSI(rsiValue),
		Trend:     classifyTrend(fast, slow),
		MACDTrend: MACDBearish,
		SMA20:     fast,
		SMA50:     slow,
	}

	if _, _, histogram, err := macd.Calculate(closes); err == nil && histogram > 0 {
		tech.MACDTrend = MACDBullish
	}

	return tech, nil
}

func classifyRSI(value float64) RSISignal {
	switch {
	case value < 30:
		return RSIOversold
	case value > 70:
		return RSIOverbought
	default:
		return RSINeutral
	}
}

func classifyTrend(fast, slow float64) Trend {
	if slow == 0 {
		return TrendMixed
	}
	gap := (fast - slow) / slow
	switch {
	case gap > strongTrendGap:
		return TrendStrongUptrend
	case gap > 0:
		return TrendUptrend
	case gap < -strongTrendGap:
		return TrendStrongDowntrend
	case gap < 0:
		return TrendDowntrend
	default:
		return TrendMixed
	}
}
