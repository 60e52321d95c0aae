package order_test

import (
	"fmt"
	"testing"

	"shipsync/internal/core/domain/model/order"
	"shipsync/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate valid statuses", func(t *testing.T) {
		validStatuses := []order.Status{
			order.PendingApproval,
			order.PendingPalletProcessing,
			order.ReadyForProcessing,
			order.Processing,
			order.Error,
			order.Synced,
		}

		for _, status := range validStatuses {
			t.Run(fmt.Sprintf("should validate %s", status), func(t *testing.T) {
				require.NoError(t, status.Validate())
			})
		}
	})

	t.Run("should reject Unknown and out-of-range values", func(t *testing.T) {
		for _, status := range []order.Status{order.Unknown, order.Status(-1), order.Status(100)} {
			err := status.Validate()
			require.Error(t, err)
			assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		}
	})
}

func TestStatus_String(t *testing.T) {
	tests := map[order.Status]string{
		order.Unknown:                 "Unknown",
		order.PendingApproval:         "Pending Approval",
		order.PendingPalletProcessing: "Pending Pallet Processing",
		order.ReadyForProcessing:      "Ready for Processing",
		order.Processing:              "Processing",
		order.Error:                   "Error",
		order.Synced:                  "Synced",
		order.Status(42):              "Unknown",
	}

	for status, expected := range tests {
		assert.Equal(t, expected, status.String())
	}
}

func TestStatusFromName(t *testing.T) {
	t.Run("round-trips every valid status", func(t *testing.T) {
		for _, status := range []order.Status{
			order.PendingApproval,
			order.PendingPalletProcessing,
			order.ReadyForProcessing,
			order.Processing,
			order.Error,
			order.Synced,
		} {
			parsed, err := order.StatusFromName(status.String())
			require.NoError(t, err)
			assert.Equal(t, status, parsed)
		}
	})

	t.Run("rejects unknown names", func(t *testing.T) {
		_, err := order.StatusFromName("Shipped")
		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = order.StatusFromName("Unknown")
		require.Error(t, err)
	})
}

func TestStatus_Approve(t *testing.T) {
	t.Run("releases both pending queues", func(t *testing.T) {
		for _, from := range []order.Status{order.PendingApproval, order.PendingPalletProcessing} {
			next, err := from.Approve()
			require.NoError(t, err)
			assert.Equal(t, order.ReadyForProcessing, next)
		}
	})

	t.Run("repeat approval is a no-op success", func(t *testing.T) {
		next, err := order.ReadyForProcessing.Approve()
		require.NoError(t, err)
		assert.Equal(t, order.ReadyForProcessing, next)
	})

	t.Run("rejects terminal and in-flight statuses", func(t *testing.T) {
		for _, from := range []order.Status{order.Processing, order.Error, order.Synced, order.Unknown} {
			_, err := from.Approve()
			require.Error(t, err, "approve from %s must fail", from)
		}
	})
}

func TestStatus_BeginProcessing(t *testing.T) {
	next, err := order.ReadyForProcessing.BeginProcessing()
	require.NoError(t, err)
	assert.Equal(t, order.Processing, next)

	for _, from := range []order.Status{
		order.PendingApproval, order.PendingPalletProcessing, order.Processing, order.Error, order.Synced,
	} {
		_, err := from.BeginProcessing()
		require.Error(t, err, "begin processing from %s must fail", from)
	}
}

func TestStatus_MarkSynced(t *testing.T) {
	for _, from := range []order.Status{order.ReadyForProcessing, order.Processing} {
		next, err := from.MarkSynced()
		require.NoError(t, err)
		assert.Equal(t, order.Synced, next)
	}

	for _, from := range []order.Status{order.PendingApproval, order.PendingPalletProcessing, order.Error, order.Synced} {
		_, err := from.MarkSynced()
		require.Error(t, err, "mark synced from %s must fail", from)
	}
}

func TestStatus_MarkError(t *testing.T) {
	next, err := order.Processing.MarkError()
	require.NoError(t, err)
	assert.Equal(t, order.Error, next)

	for _, from := range []order.Status{order.PendingApproval, order.ReadyForProcessing, order.Synced} {
		_, err := from.MarkError()
		require.Error(t, err, "mark error from %s must fail", from)
	}
}
