// Package money provides currency-safe arithmetic for the POS using
// the Fowler Money pattern. VND is a zero-decimal currency, so amounts
// are whole đồng; decimal bridges keep parser and report math exact.
package money

import (
	"errors"
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// VND is the default currency of the POS.
const VND = "VND"

var errCurrencyMismatch = errors.New("money: currency mismatch")

// Money wraps go-money for safe arithmetic.
type Money struct {
	m *money.Money
}

// New creates Money from minor units and a currency code. For VND the
// minor unit is the đồng itself.
func New(amount int64, currencyCode string) *Money {
	return &Money{m: money.New(amount, currencyCode)}
}

// NewVND creates a VND amount.
func NewVND(amount int64) *Money {
	return New(amount, VND)
}

// NewFromDecimal converts a decimal amount to Money, rounding to the
// currency's minor unit.
func NewFromDecimal(amount decimal.Decimal, currencyCode string) *Money {
	currency := money.GetCurrency(currencyCode)
	if currency == nil {
		currency = money.GetCurrency(VND)
	}
	multiplier := decimal.New(1, int32(currency.Fraction))
	return New(amount.Mul(multiplier).Round(0).IntPart(), currencyCode)
}

// Amount returns the value in minor units.
func (m *Money) Amount() int64 {
	if m == nil || m.m == nil {
		return 0
	}
	return m.m.Amount()
}

// Currency returns the ISO-4217 code.
func (m *Money) Currency() string {
	if m == nil || m.m == nil {
		return ""
	}
	return m.m.Currency().Code
}

// Decimal returns the amount as a decimal in major units.
func (m *Money) Decimal() decimal.Decimal {
	if m == nil || m.m == nil {
		return decimal.Zero
	}
	return decimal.New(m.m.Amount(), -int32(m.m.Currency().Fraction))
}

// IsZero reports whether the amount is zero.
func (m *Money) IsZero() bool {
	return m == nil || m.m == nil || m.m.IsZero()
}

// IsNegative reports whether the amount is below zero.
func (m *Money) IsNegative() bool {
	return m != nil && m.m != nil && m.m.IsNegative()
}

// Add returns m + other; both sides must share a currency.
func (m *Money) Add(other *Money) (*Money, error) {
	if m.Currency() != other.Currency() {
		return nil, fmt.Errorf("%w: %s vs %s", errCurrencyMismatch, m.Currency(), other.Currency())
	}
	sum, err := m.m.Add(other.m)
	if err != nil {
		return nil, err
	}
	return &Money{m: sum}, nil
}

// Sub returns m − other; both sides must share a currency.
func (m *Money) Sub(other *Money) (*Money, error) {
	if m.Currency() != other.Currency() {
		return nil, fmt.Errorf("%w: %s vs %s", errCurrencyMismatch, m.Currency(), other.Currency())
	}
	diff, err := m.m.Subtract(other.m)
	if err != nil {
		return nil, err
	}
	return &Money{m: diff}, nil
}

// Display formats the amount with its currency grapheme.
func (m *Money) Display() string {
	if m == nil || m.m == nil {
		return ""
	}
	return m.m.Display()
}
