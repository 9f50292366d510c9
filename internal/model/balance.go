package model

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidAmount     = errors.New("invalid amount")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrInvalidOperation  = errors.New("invalid operation type")
	ErrInvalidMenuChoice = errors.New("invalid menu choice")
	ErrInvalidNumber     = errors.New("invalid number")
)

// Places is the number of fractional digits balances are kept at.
const Places = 2

// Amounts outside these bounds are refused before any rounding or formatting.
const (
	MaxIntegerDigits  = 15
	MaxFractionDigits = 18
)

var maxAmount = decimal.New(1, MaxIntegerDigits)

// DefaultInitialBalance is the balance a fresh store starts with.
var DefaultInitialBalance = decimal.New(100000, -Places)

type OperationType string

const (
	View   OperationType = "VIEW"
	Credit OperationType = "CREDIT"
	Debit  OperationType = "DEBIT"
)

// ParseOperationType accepts the operation name in any case.
func ParseOperationType(s string) (OperationType, error) {
	switch op := OperationType(strings.ToUpper(strings.TrimSpace(s))); op {
	case View, Credit, Debit:
		return op, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidOperation, s)
	}
}

// Operation is a single request against the balance. Amount is ignored for View.
type Operation struct {
	Type   OperationType
	Amount decimal.Decimal
}

// ParseAmount reads a decimal amount typed by the user. The value is returned
// unrounded and its sign is not checked here, so a negative sub-cent amount
// still reaches the operation rules as negative.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, fmt.Errorf("%w: empty input", ErrInvalidNumber)
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidNumber, s)
	}
	if !InRange(d) {
		return decimal.Zero, fmt.Errorf("%w: %q is out of range", ErrInvalidNumber, s)
	}

	return d, nil
}

// InRange reports whether |d| is below 10^MaxIntegerDigits and d carries no
// more than MaxFractionDigits fractional digits. The exponent is checked first
// so the comparison never has to expand an extreme one.
func InRange(d decimal.Decimal) bool {
	exp := d.Exponent()
	if exp < -MaxFractionDigits || exp > MaxIntegerDigits {
		return false
	}
	return d.Abs().LessThan(maxAmount)
}
