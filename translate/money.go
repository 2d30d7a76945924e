package translate

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

const (
	// ProcessingFeeWidth is the digit width of signed fee fields, excluding the sign
	ProcessingFeeWidth = 8

	feeSignIndicators = "CD"
	defaultFeeSign    = "D"
)

var (
	ErrInvalidAmount  = errors.New("amount is not a valid decimal")
	ErrNegativeAmount = errors.New("amount cannot be negative")
	ErrAmountTooWide  = errors.New("amount does not fit in field width")

	hundred = decimal.NewFromInt(100)
)

// FromMinorUnits scales a legacy fixed-point amount (minor units) to a
// decimal major-unit string with two fractional digits: "00000070" -> "0.70".
func FromMinorUnits(minor string) (string, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(minor))
	if err != nil {
		return "", errors.Wrapf(ErrInvalidAmount, "'%s'", minor)
	}

	return d.Div(hundred).StringFixed(2), nil
}

// ToMinorUnits is the inverse of FromMinorUnits: "0.70" -> "70"
func ToMinorUnits(amount string) (string, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(amount))
	if err != nil {
		return "", errors.Wrapf(ErrInvalidAmount, "'%s'", amount)
	}

	return d.Mul(hundred).Round(0).String(), nil
}

// Pad left-pads a non-negative integer string with zeros to width
func Pad(value string, width int) (string, error) {
	if strings.HasPrefix(value, "-") {
		return "", errors.Wrapf(ErrNegativeAmount, "'%s'", value)
	}

	if len(value) > width {
		return "", errors.Wrapf(ErrAmountTooWide, "'%s' exceeds %d characters", value, width)
	}

	return strings.Repeat("0", width-len(value)) + value, nil
}

// stripSign removes a leading credit/debit indicator from a signed amount field
func stripSign(value string) string {
	if value != "" && strings.ContainsRune(feeSignIndicators, rune(value[0])) {
		return value[1:]
	}

	return value
}

// signedAmount renders a major-unit amount as a debit-signed fixed-width
// minor-unit field: "0.70" -> "D00000070".
func signedAmount(amount string) (string, error) {
	minor, err := ToMinorUnits(amount)
	if err != nil {
		return "", err
	}

	padded, err := Pad(minor, ProcessingFeeWidth)
	if err != nil {
		return "", err
	}

	return defaultFeeSign + padded, nil
}
