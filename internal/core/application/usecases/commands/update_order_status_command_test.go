package commands_test

import (
	"strings"
	"testing"

	"kitchen/internal/core/application/usecases/commands"
	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUpdateOrderStatusCommand(t *testing.T) {
	t.Run("should keep the literal as received", func(t *testing.T) {
		cmd, err := commands.NewUpdateOrderStatusCommand("1", "cooking")

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, "1", cmd.OrderID().String())
		assert.Equal(t, "cooking", cmd.Status())
	})

	t.Run("should require id and status", func(t *testing.T) {
		_, err := commands.NewUpdateOrderStatusCommand("", "")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "id")
		assert.Contains(t, err.Error(), "status")
	})

	t.Run("should reject oversized ids", func(t *testing.T) {
		_, err := commands.NewUpdateOrderStatusCommand(strings.Repeat("x", 65), "ready")

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should reject the zero value", func(t *testing.T) {
		require.ErrorIs(t,
			commands.UpdateOrderStatusCommand{}.Validate(),
			commands.ErrUpdateOrderStatusCommandIsNotConstructed,
		)
	})
}

func TestNewToggleAndDeleteCommands(t *testing.T) {
	t.Run("should parse the order id", func(t *testing.T) {
		toggle, err := commands.NewToggleOrderStatusCommand("2")
		require.NoError(t, err)
		assert.True(t, toggle.OrderID().IsEqual(kernel.MustParseID("2")))

		del, err := commands.NewDeleteOrderCommand("3")
		require.NoError(t, err)
		assert.True(t, del.OrderID().IsEqual(kernel.MustParseID("3")))
	})

	t.Run("should reject empty ids", func(t *testing.T) {
		_, err := commands.NewToggleOrderStatusCommand("")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = commands.NewDeleteOrderCommand("")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject zero values", func(t *testing.T) {
		require.ErrorIs(t, commands.ToggleOrderStatusCommand{}.Validate(), commands.ErrToggleOrderStatusCommandIsNotConstructed)
		require.ErrorIs(t, commands.DeleteOrderCommand{}.Validate(), commands.ErrDeleteOrderCommandIsNotConstructed)
	})
}
