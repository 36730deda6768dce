// Package moneypkg provides common money related functionality for apps.
package moneypkg

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Amount limits accepted by Parse.
const (
	MaxScale         = 2
	MaxIntegerDigits = 18
)

var (
	// ErrMalformedAmount indicates that the amount is not a decimal number.
	ErrMalformedAmount = errors.New("malformed amount")
	// ErrAmountOutOfRange indicates an amount with too many decimal places or integer digits.
	ErrAmountOutOfRange = errors.New("amount out of range")
)

// Parse converts s into a decimal amount. Negative values are returned as is.
//
// Amounts with more than MaxScale decimal places or more than
// MaxIntegerDigits integer digits are rejected with ErrAmountOutOfRange.
func Parse(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, ErrMalformedAmount
	}

	// The exponent is checked before anything that rescales d.
	exp := int64(d.Exponent())
	if exp < -MaxScale || exp > MaxIntegerDigits {
		return decimal.Zero, ErrAmountOutOfRange
	}

	digits := int64(len(d.Coefficient().Text(10)))
	if d.IsNegative() {
		digits--
	}

	if digits+exp > MaxIntegerDigits {
		return decimal.Zero, ErrAmountOutOfRange
	}

	return d, nil
}

// ValidAmount validates whether the field holds a non-negative decimal amount.
var ValidAmount validator.Func = func(fl validator.FieldLevel) bool {
	d, err := Parse(fl.Field().String())
	if err != nil {
		return false
	}

	return !d.IsNegative()
}
