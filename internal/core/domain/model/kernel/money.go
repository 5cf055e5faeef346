package kernel

import (
	"errors"
	"fmt"

	"ordermanagement/internal/pkg/errs"
	"ordermanagement/internal/pkg/guard"

	"github.com/govalues/decimal"
)

const currencyCodeLength = 3

var (
	// ErrMoneyIsNotConstructed is returned when validating a zero-value Money.
	ErrMoneyIsNotConstructed = errors.New("Money must be created via NewMoney or NewZeroMoney")

	// ErrCurrencyMismatch is returned when arithmetic is attempted across
	// two different currencies. Amounts are never converted implicitly.
	ErrCurrencyMismatch = errors.New("money currency mismatch")
)

// Money is an immutable amount in a specific currency. Arithmetic is
// currency-checked: combining two Money values with different currency codes
// fails with ErrCurrencyMismatch instead of silently converting.
//
// Amounts are exact decimals and never negative. Every operation returns a new
// value and leaves the receiver untouched.
type Money struct {
	amount   decimal.Decimal
	currency string
	guard    guard.ConstructorGuard
}

// NewMoney creates a Money value. The amount must be non-negative and the
// currency a 3-letter ISO code.
func NewMoney(amount decimal.Decimal, currency string) (Money, error) {
	if amount.IsNeg() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount",
			fmt.Errorf("%s is negative", amount),
		)
	}

	if err := validateCurrency(currency); err != nil {
		return Money{}, err
	}

	return Money{
		amount:   amount,
		currency: currency,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// NewMoneyFromFloat creates a Money value from a float64 amount, as received
// on API boundaries. The float is converted to an exact decimal first.
func NewMoneyFromFloat(amount float64, currency string) (Money, error) {
	dec, err := decimal.NewFromFloat64(amount)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	return NewMoney(dec, currency)
}

// NewZeroMoney creates the additive identity for a currency.
func NewZeroMoney(currency string) (Money, error) {
	return NewMoney(decimal.Zero, currency)
}

// Amount returns the decimal amount.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Currency returns the 3-letter currency code.
func (m Money) Currency() string {
	return m.currency
}

// IsZero reports whether the amount equals zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// Add returns the sum of two Money values. Both must carry the same currency.
func (m Money) Add(other Money) (Money, error) {
	if err := other.Validate(); err != nil {
		return Money{}, err
	}

	if m.currency != other.currency {
		return Money{}, fmt.Errorf("%w: %s and %s", ErrCurrencyMismatch, m.currency, other.currency)
	}

	sum, err := m.amount.Add(other.amount)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}

	return NewMoney(sum, m.currency)
}

// Multiply scales the amount by a non-negative integer factor.
// The currency is unchanged.
func (m Money) Multiply(factor int) (Money, error) {
	if factor < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"factor",
			fmt.Errorf("%d is negative", factor),
		)
	}

	dec, err := decimal.New(int64(factor), 0)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("factor", err)
	}

	product, err := m.amount.Mul(dec)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}

	return NewMoney(product, m.currency)
}

// IsEqual reports whether two Money values have the same currency and equal
// amounts. Equality is numeric: 10 and 10.00 compare equal.
func (m Money) IsEqual(other Money) bool {
	return m.currency == other.currency && m.amount.Cmp(other.amount) == 0
}

// String renders the value as "amount currency", e.g. "50.00 USD".
func (m Money) String() string {
	return fmt.Sprintf("%s %s", m.amount, m.currency)
}

// Validate returns ErrMoneyIsNotConstructed for a zero-value Money.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

func validateCurrency(currency string) error {
	if len(currency) != currencyCodeLength {
		return errs.NewValueIsInvalidErrorWithCause(
			"currency",
			fmt.Errorf("%q is not a 3-letter code", currency),
		)
	}

	for _, r := range currency {
		if r < 'A' || r > 'Z' {
			return errs.NewValueIsInvalidErrorWithCause(
				"currency",
				fmt.Errorf("%q is not an upper-case letter code", currency),
			)
		}
	}

	return nil
}
