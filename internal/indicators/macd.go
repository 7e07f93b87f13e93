package indicators

import "errors"

// MACD computes the moving average convergence divergence
type MACD struct {
	fastPeriod   int
	slowPeriod   int
	signalPeriod int
}

// NewMACD creates a new MACD instance with fast, slow, and signal periods
func NewMACD(fast, slow, signal int) *MACD {
	return &MACD{
		fastPeriod:   fast,
		slowPeriod:   slow,
		signalPeriod: signal,
	}
}

// Calculate computes the MACD line, signal line, and histogram over the
// close-price series.
func (m *MACD) Calculate(closes []float64) (macdLine, signalLine, histogram float64, err error) {
	if len(closes) < m.slowPeriod+m.signalPeriod {
		return 0, 0, 0, errors.New("insufficient data for MACD calculation")
	}

	// Build the MACD series so the signal line EMA has history to
	// smooth over.
	series := make([]float64, 0, len(closes)-m.slowPeriod+1)
	for i := m.slowPeriod; i <= len(closes); i++ {
		window := closes[:i]
		fast := ema(window, m.fastPeriod)
		slow := ema(window, m.slowPeriod)
		series = append(series, fast-slow)
	}

	macdLine = series[len(series)-1]
	signalLine = ema(series, m.signalPeriod)
	histogram = macdLine - signalLine
	return macdLine, signalLine, histogram, nil
}

// RequiredPeriods returns the minimum number of closes needed
func (m *MACD) RequiredPeriods() int {
	return m.slowPeriod + m.signalPeriod
}

// ema computes an exponential moving average seeded with the SMA of the
// first period values.
func ema(values []float64, period int) float64 {
	if len(values) < period {
		return mean(values)
	}

	multiplier := 2.0 / (float64(period) + 1)
	current := mean(values[:period])
	for _, value := range values[period:] {
		current = (value-current)*multiplier + current
	}
	return current
}
