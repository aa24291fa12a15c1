package kernel

import (
	"fmt"

	"dishly/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// moneyScale is the number of fractional digits of the minor currency unit.
const moneyScale = 2

// Money is an amount of the platform currency with cent precision.
// Arithmetic is exact; values with sub-cent digits cannot be constructed.
type Money struct {
	amount decimal.Decimal
}

// ZeroMoney is the amount 0.
var ZeroMoney = Money{}

// NewMoney validates that amount carries no more than two fractional digits.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if !amount.Equal(amount.Round(moneyScale)) {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount",
			fmt.Errorf("%s has more than %d fractional digits", amount.String(), moneyScale),
		)
	}
	return Money{amount: amount}, nil
}

// MoneyFromString parses a decimal string such as "12.50".
func MoneyFromString(s string) (Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	return NewMoney(amount)
}

// MoneyFromCents builds Money from an integer number of cents.
func MoneyFromCents(cents int64) Money {
	return Money{amount: decimal.New(cents, -moneyScale)}
}

// MustMoney is NewMoney for literals known to be valid. It panics otherwise.
func MustMoney(s string) Money {
	m, err := MoneyFromString(s)
	if err != nil {
		panic(err)
	}
	return m
}

// Amount returns the decimal value.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Add returns m + other.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Mul returns m multiplied by an integer quantity.
func (m Money) Mul(quantity int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(quantity)))}
}

// IsNegative reports whether m < 0.
func (m Money) IsNegative() bool {
	return m.amount.IsNegative()
}

// GreaterThan reports whether m > other.
func (m Money) GreaterThan(other Money) bool {
	return m.amount.GreaterThan(other.amount)
}

// LessThan reports whether m < other.
func (m Money) LessThan(other Money) bool {
	return m.amount.LessThan(other.amount)
}

// IsEqual compares amounts numerically, so 12.5 equals 12.50.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// String renders the amount with exactly two fractional digits, e.g. "12.50".
func (m Money) String() string {
	return m.amount.StringFixed(moneyScale)
}

// Format renders the amount for display, e.g. "$12.50".
func (m Money) Format() string {
	return "$" + m.String()
}
