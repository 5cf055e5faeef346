package guard_test

import (
	"errors"
	"testing"

	"ordermanagement/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("constructed_guard_passes_validation", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("not constructed")))
		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		var g guard.ConstructorGuard
		expectedError := errors.New("entity not constructed")

		err := g.Validate(expectedError)

		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})

	t.Run("default_error_has_meaningful_message", func(t *testing.T) {
		assert.Equal(t, "object must be created via its constructor", guard.ErrDefaultConstructorGuard.Error())
	})
}

// TestConstructorGuardUsage demonstrates the guard embedded in a value object.
func TestConstructorGuardUsage(t *testing.T) {
	type money struct {
		amount   int
		currency string
		guard    guard.ConstructorGuard
	}

	errMoneyNotConstructed := errors.New("Money must be created via NewMoney")

	newMoney := func(amount int, currency string) (money, error) {
		if amount < 0 {
			return money{}, errors.New("amount cannot be negative")
		}
		return money{amount: amount, currency: currency, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("constructed_value_passes", func(t *testing.T) {
		m, err := newMoney(100, "USD")

		require.NoError(t, err)
		require.NoError(t, m.guard.Validate(errMoneyNotConstructed))
	})

	t.Run("zero_value_fails", func(t *testing.T) {
		var m money

		err := m.guard.Validate(errMoneyNotConstructed)

		require.Error(t, err)
		assert.Equal(t, errMoneyNotConstructed, err)
	})
}

func TestConstructorGuard_PassedByValue(t *testing.T) {
	g := guard.NewConstructorGuard()
	gCopy := g

	require.NoError(t, g.Validate(errors.New("boom")))
	require.NoError(t, gCopy.Validate(errors.New("boom")))
}
