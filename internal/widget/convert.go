package widget

import (
	"errors"

	"github.com/shopspring/decimal"

	"fxconvert/internal/domain"
)

var (
	ErrAmountRequired    = errors.New("amount is required")
	ErrAmountNotNumber   = errors.New("amount is not a valid number")
	ErrAmountNotPositive = errors.New("amount must be greater than zero")
	ErrTargetRequired    = errors.New("target currency is required")
	ErrTargetUnknown     = errors.New("target currency not available")
)

// Convert multiplies amount by rate and rounds to exactly two decimal
// places, half away from zero ("2.345" at rate 1 gives 2.35). The amount
// is parsed as an exact decimal so boundary values like "1.005" round the
// way the digits say, not the way a float64 happens to land.
func Convert(amount string, code string, rate float64) (domain.ConversionResult, error) {
	if amount == "" {
		return domain.ConversionResult{}, ErrAmountRequired
	}
	parsed, err := decimal.NewFromString(amount)
	if err != nil {
		return domain.ConversionResult{}, ErrAmountNotNumber
	}
	if !parsed.IsPositive() {
		return domain.ConversionResult{}, ErrAmountNotPositive
	}
	if code == "" {
		return domain.ConversionResult{}, ErrTargetRequired
	}

	value := parsed.Mul(decimal.NewFromFloat(rate)).Round(2)
	return domain.ConversionResult{Value: value, Currency: code}, nil
}
