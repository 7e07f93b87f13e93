package safety

import (
	"fmt"
	"math"
	"strings"
)

// ValidationResult represents the result of a precondition check
type ValidationResult struct {
	Valid   bool
	Message string
	Code    string
}

// Err converts a failed result into an error; valid results yield nil.
func (r ValidationResult) Err() error {
	if r.Valid {
		return nil
	}
	return fmt.Errorf("%s: %s", r.Code, r.Message)
}

// Validator provides the engine's fail-fast precondition checks. The
// risk validator and position sizer refuse to divide by caller-supplied
// values before these pass; business rules never reach this layer.
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidatePrice validates an entry price supplied with a signal
func (v *Validator) ValidatePrice(price float64, symbol string) ValidationResult {
	if math.IsNaN(price) {
		return ValidationResult{
			Valid:   false,
			Message: fmt.Sprintf("invalid price for %s: price is NaN", symbol),
			Code:    "INVALID_PRICE_NAN",
		}
	}

	if math.IsInf(price, 0) {
		return ValidationResult{
			Valid:   false,
			Message: fmt.Sprintf("invalid price for %s: price is infinite", symbol),
			Code:    "INVALID_PRICE_INF",
		}
	}

	if price <= 0 {
		return ValidationResult{
			Valid:   false,
			Message: fmt.Sprintf("invalid price %.8f for %s: price must be positive", price, symbol),
			Code:    "INVALID_PRICE_NEGATIVE",
		}
	}

	return ValidationResult{Valid: true}
}

// ValidatePortfolioValue validates the total portfolio value used as the
// denominator in position and loss percentage math
func (v *Validator) ValidatePortfolioValue(value float64) ValidationResult {
	if math.IsNaN(value) {
		return ValidationResult{
			Valid:   false,
			Message: "invalid portfolio value: value is NaN",
			Code:    "INVALID_PORTFOLIO_NAN",
		}
	}

	if math.IsInf(value, 0) {
		return ValidationResult{
			Valid:   false,
			Message: "invalid portfolio value: value is infinite",
			Code:    "INVALID_PORTFOLIO_INF",
		}
	}

	if value <= 0 {
		return ValidationResult{
			Valid:   false,
			Message: fmt.Sprintf("invalid portfolio value %.2f: value must be positive", value),
			Code:    "INVALID_PORTFOLIO_NEGATIVE",
		}
	}

	return ValidationResult{Valid: true}
}

// ValidateQuantity validates a proposed trade quantity
func (v *Validator) ValidateQuantity(quantity float64, symbol string) ValidationResult {
	if math.IsNaN(quantity) || math.IsInf(quantity, 0) {
		return ValidationResult{
			Valid:   false,
			Message: fmt.Sprintf("invalid quantity for %s: quantity is not finite", symbol),
			Code:    "INVALID_QUANTITY_NOT_FINITE",
		}
	}

	if quantity <= 0 {
		return ValidationResult{
			Valid:   false,
			Message: fmt.Sprintf("invalid quantity %.8f for %s: quantity must be positive", quantity, symbol),
			Code:    "INVALID_QUANTITY_NEGATIVE",
		}
	}

	return ValidationResult{Valid: true}
}

// ValidateSymbol validates an instrument symbol. Exchange-suffixed
// symbols (RELIANCE.NS, HSBA.L) and crypto pairs (BTC-USD) are allowed.
func (v *Validator) ValidateSymbol(symbol string) ValidationResult {
	symbol = strings.TrimSpace(symbol)
	if symbol == "" {
		return ValidationResult{
			Valid:   false,
			Message: "symbol cannot be empty",
			Code:    "SYMBOL_EMPTY",
		}
	}

	if len(symbol) > 20 {
		return ValidationResult{
			Valid:   false,
			Message: fmt.Sprintf("symbol '%s' too long: maximum 20 characters allowed", symbol),
			Code:    "SYMBOL_TOO_LONG",
		}
	}

	for _, char := range symbol {
		ok := (char >= 'A' && char <= 'Z') || (char >= 'a' && char <= 'z') ||
			(char >= '0' && char <= '9') || char == '.' || char == '-' || char == '&'
		if !ok {
			return ValidationResult{
				Valid:   false,
				Message: fmt.Sprintf("symbol '%s' contains invalid characters", symbol),
				Code:    "SYMBOL_INVALID_CHARS",
			}
		}
	}

	return ValidationResult{Valid: true}
}
