package commands_test

import (
	"testing"

	"washcubes/internal/core/application/usecases/commands"
	"washcubes/internal/core/domain/model/kernel"
	"washcubes/internal/core/domain/model/locker"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand(t *testing.T) {
	validItems := []commands.ItemSelection{{Name: "Shirt", Quantity: 2}}

	t.Run("should create valid command", func(t *testing.T) {
		cmd, err := commands.NewCreateOrderCommand(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			kernel.NewUUID(), kernel.NewUUID(), locker.SizeMedium, validItems)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, locker.SizeMedium, cmd.RequestedSize())
		assert.Equal(t, validItems, cmd.Items())
	})

	t.Run("should skip zero-quantity selections", func(t *testing.T) {
		cmd, err := commands.NewCreateOrderCommand(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			kernel.NewUUID(), kernel.NewUUID(), locker.SizeSmall,
			[]commands.ItemSelection{
				{Name: "Shirt", Quantity: 0},
				{Name: "Blanket", Quantity: 1},
			})

		require.NoError(t, err)
		assert.Equal(t, []commands.ItemSelection{{Name: "Blanket", Quantity: 1}}, cmd.Items())
	})

	t.Run("should fail when only zero-quantity selections remain", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			kernel.NewUUID(), kernel.NewUUID(), locker.SizeSmall,
			[]commands.ItemSelection{{Name: "Shirt", Quantity: 0}})

		require.ErrorIs(t, err, commands.ErrItemSelectionIsRequired)
	})

	t.Run("should fail with invalid size", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			kernel.NewUUID(), kernel.NewUUID(), locker.SizeUnknown, validItems)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "size is invalid")
	})

	t.Run("should fail with invalid order id", func(t *testing.T) {
		var invalidID kernel.UUID

		_, err := commands.NewCreateOrderCommand(
			invalidID, kernel.NewUUID(), kernel.NewUUID(),
			kernel.NewUUID(), kernel.NewUUID(), locker.SizeSmall, validItems)

		require.Error(t, err)
	})

	t.Run("should fail validation for zero value command", func(t *testing.T) {
		var cmd commands.CreateOrderCommand

		assert.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
	})
}
