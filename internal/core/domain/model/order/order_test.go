package order_test

import (
	"testing"
	"time"

	"shipsync/internal/core/domain/model/measure"
	"shipsync/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeDetails() order.Details {
	weight, _ := measure.NewWeight(32, "oz")
	return order.Details{
		CustomerEmail: "buyer@example.com",
		ShipTo: order.ShipTo{
			Name:       "Jordan Chase",
			City:       "Austin",
			State:      "TX",
			PostalCode: "78701",
			Country:    "US",
		},
		OrderDate:        time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
		Total:            decimal.NewFromFloat(49.90),
		RequestedService: "usps_priority_mail",
		Items: []order.Item{
			{SKU: "X1", Quantity: 1, UnitPrice: decimal.NewFromFloat(49.90), Weight: &weight},
		},
		TagIDs: []int64{101},
	}
}

func TestNewOrder(t *testing.T) {
	t.Run("creates order with valid inputs", func(t *testing.T) {
		o, err := order.NewOrder(1001, "A-1001", order.PendingPalletProcessing, makeDetails())
		require.NoError(t, err)

		assert.Equal(t, int64(1001), o.ID())
		assert.Equal(t, "A-1001", o.OrderNumber())
		assert.Equal(t, order.PendingPalletProcessing, o.Status())
		assert.Empty(t, o.ERPReference())
		assert.Empty(t, o.LabelURLs())
		assert.False(t, o.CreatedAt().IsZero())
		require.NoError(t, o.Validate())
	})

	t.Run("rejects non-positive platform id", func(t *testing.T) {
		for _, id := range []int64{0, -5} {
			_, err := order.NewOrder(id, "A-1", order.ReadyForProcessing, makeDetails())
			require.Error(t, err)
		}
	})

	t.Run("rejects empty order number", func(t *testing.T) {
		_, err := order.NewOrder(1, "", order.ReadyForProcessing, makeDetails())
		require.Error(t, err)
	})

	t.Run("rejects invalid status", func(t *testing.T) {
		_, err := order.NewOrder(1, "A-1", order.Unknown, makeDetails())
		require.Error(t, err)
	})
}

func TestRestoreOrder(t *testing.T) {
	createdAt := time.Date(2025, 5, 20, 8, 30, 0, 0, time.UTC)
	o, err := order.RestoreOrder(
		2002, "A-2002", order.ReadyForProcessing, makeDetails(),
		"SO-77", []string{"https://x/1.pdf"}, createdAt,
	)
	require.NoError(t, err)

	assert.Equal(t, "SO-77", o.ERPReference())
	assert.Equal(t, []string{"https://x/1.pdf"}, o.LabelURLs())
	assert.Equal(t, createdAt, o.CreatedAt())
}

func TestOrder_Validate(t *testing.T) {
	t.Run("zero value fails validation", func(t *testing.T) {
		var o order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})

	t.Run("nil order fails validation", func(t *testing.T) {
		var o *order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_Lifecycle(t *testing.T) {
	t.Run("pending approval through synced", func(t *testing.T) {
		o, err := order.NewOrder(1, "A-1", order.PendingApproval, makeDetails())
		require.NoError(t, err)

		require.NoError(t, o.Approve())
		assert.Equal(t, order.ReadyForProcessing, o.Status())

		// A second approval must not corrupt state.
		require.NoError(t, o.Approve())
		assert.Equal(t, order.ReadyForProcessing, o.Status())

		o.AttachLabelURLs([]string{"https://x/1.pdf"})
		require.NoError(t, o.MarkSynced())
		assert.Equal(t, order.Synced, o.Status())
		assert.Equal(t, []string{"https://x/1.pdf"}, o.LabelURLs())
	})

	t.Run("processing path records error", func(t *testing.T) {
		o, err := order.NewOrder(2, "A-2", order.ReadyForProcessing, makeDetails())
		require.NoError(t, err)

		require.NoError(t, o.BeginProcessing())
		require.NoError(t, o.MarkError())
		assert.Equal(t, order.Error, o.Status())
	})

	t.Run("synced is terminal", func(t *testing.T) {
		o, err := order.NewOrder(3, "A-3", order.ReadyForProcessing, makeDetails())
		require.NoError(t, err)
		require.NoError(t, o.MarkSynced())

		require.Error(t, o.Approve())
		require.Error(t, o.BeginProcessing())
		require.Error(t, o.MarkSynced())
	})
}

func TestItem(t *testing.T) {
	t.Run("effective quantity clamps to one", func(t *testing.T) {
		assert.Equal(t, 1, order.Item{Quantity: 0}.EffectiveQuantity())
		assert.Equal(t, 1, order.Item{Quantity: -2}.EffectiveQuantity())
		assert.Equal(t, 3, order.Item{Quantity: 3}.EffectiveQuantity())
	})

	t.Run("resolved sku prefers fulfillment sku", func(t *testing.T) {
		assert.Equal(t, "WH-1", order.Item{SKU: "X1", FulfillmentSKU: "WH-1"}.ResolvedSKU())
		assert.Equal(t, "X1", order.Item{SKU: "X1"}.ResolvedSKU())
	})
}

func TestOrder_IsEqual(t *testing.T) {
	a, _ := order.NewOrder(1, "A-1", order.ReadyForProcessing, makeDetails())
	b, _ := order.NewOrder(1, "A-1-dup", order.PendingApproval, makeDetails())
	c, _ := order.NewOrder(2, "A-2", order.ReadyForProcessing, makeDetails())

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
	assert.False(t, a.IsEqual(nil))
}
