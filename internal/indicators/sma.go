package indicators

import "errors"

// SMA represents the Simple Moving Average technical indicator
type SMA struct {
	period int
}

// NewSMA creates a new SMA indicator
func NewSMA(period int) *SMA {
	return &SMA{period: period}
}

// Calculate computes the SMA over the trailing period of closes
func (s *SMA) Calculate(closes []float64) (float64, error) {
	if len(closes) < s.period {
		return 0, errors.New("insufficient data for SMA calculation")
	}
	return mean(closes[len(closes)-s.period:]), nil
}

// RequiredPeriods returns the minimum number of closes needed
func (s *SMA) RequiredPeriods() int {
	return s.period
}
