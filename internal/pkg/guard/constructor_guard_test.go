package guard_test

import (
	"errors"
	"testing"

	"deliveryfilter/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("constructed_guard_returns_nil", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("not constructed")))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		var g guard.ConstructorGuard
		expected := errors.New("window must be created via NewWindow")

		err := g.Validate(expected)

		require.Error(t, err)
		assert.Equal(t, expected, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

func TestConstructorGuard_EmbeddedInValue(t *testing.T) {
	errSeparatorNotConstructed := errors.New("separator must be created via newSeparator")

	type separator struct {
		value string
		guard guard.ConstructorGuard
	}

	newSeparator := func(v string) (separator, error) {
		if v == "" {
			return separator{}, errors.New("separator is required")
		}
		return separator{value: v, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("constructor_produces_valid_value", func(t *testing.T) {
		s, err := newSeparator(";")

		require.NoError(t, err)
		require.NoError(t, s.guard.Validate(errSeparatorNotConstructed))
		assert.Equal(t, ";", s.value)
	})

	t.Run("failed_construction_returns_zero_value", func(t *testing.T) {
		s, err := newSeparator("")

		require.Error(t, err)
		assert.ErrorIs(t, s.guard.Validate(errSeparatorNotConstructed), errSeparatorNotConstructed)
	})
}
