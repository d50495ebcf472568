package guard_test

import (
	"errors"
	"testing"

	"kitchen/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("constructed_guard_passes_with_custom_and_nil_error", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("ticket not constructed")))
		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard
		expected := errors.New("ticket not constructed")

		// When
		err := g.Validate(expected)

		// Then
		require.Error(t, err)
		assert.Equal(t, expected, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})

	t.Run("embedded_guard_detects_zero_value_owner", func(t *testing.T) {
		errTicketNotConstructed := errors.New("Ticket must be created via NewTicket")
		type ticket struct {
			number string
			guard  guard.ConstructorGuard
		}
		newTicket := func(number string) ticket {
			return ticket{number: number, guard: guard.NewConstructorGuard()}
		}

		built := newTicket("101")
		var zero ticket

		require.NoError(t, built.guard.Validate(errTicketNotConstructed))
		assert.Equal(t, "101", built.number)
		assert.ErrorIs(t, zero.guard.Validate(errTicketNotConstructed), errTicketNotConstructed)
	})
}
