package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shipsync/internal/core/application/usecases/commands"
	"shipsync/internal/pkg/errs"
)

func TestNewApproveOrderCommand(t *testing.T) {
	t.Run("valid id", func(t *testing.T) {
		cmd, err := commands.NewApproveOrderCommand(42)
		require.NoError(t, err)
		assert.Equal(t, int64(42), cmd.OrderID())
		assert.NoError(t, cmd.Validate())
	})

	t.Run("zero id", func(t *testing.T) {
		_, err := commands.NewApproveOrderCommand(0)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("negative id", func(t *testing.T) {
		_, err := commands.NewApproveOrderCommand(-7)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var cmd commands.ApproveOrderCommand
		assert.ErrorIs(t, cmd.Validate(), commands.ErrApproveOrderCommandIsNotConstructed)
	})
}
