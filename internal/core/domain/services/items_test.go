package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shipsync/internal/core/domain/model/measure"
	"shipsync/internal/core/domain/model/platform"
	"shipsync/internal/core/domain/model/product"
)

func catalogFixture() *product.Index {
	weight := measure.Weight{Value: 8, Unit: measure.Ounce}
	dims := measure.Dimensions{Length: 4, Width: 4, Height: 2, Unit: measure.DefaultDimensionUnit}

	return product.NewIndex([]*product.Product{
		{
			ID:             500,
			SKU:            "WIDGET-1",
			FulfillmentSKU: "WH-WIDGET-1",
			Weight:         &weight,
			Dimensions:     &dims,
			Aliases:        []string{"widget-alias"},
		},
	})
}

func TestMapItems_EnrichesGapsFromCatalog(t *testing.T) {
	items := MapItems([]platform.Item{
		{SKU: "WIDGET-1", Quantity: 2, UnitPrice: decimal.NewFromInt(10)},
	}, catalogFixture())

	require.Len(t, items, 1)
	assert.Equal(t, "WH-WIDGET-1", items[0].FulfillmentSKU)
	require.NotNil(t, items[0].Weight)
	assert.InDelta(t, 8.0, items[0].Weight.Value, 1e-9)
	require.NotNil(t, items[0].Dimensions)
	assert.InDelta(t, 4.0, items[0].Dimensions.Length, 1e-9)
}

func TestMapItems_ExplicitValuesWinOverCatalog(t *testing.T) {
	items := MapItems([]platform.Item{
		{
			SKU:            "WIDGET-1",
			FulfillmentSKU: "OVERRIDE-SKU",
			Quantity:       1,
			Weight:         &platform.ItemWeight{Value: 2, Units: "lb"},
			Dimensions:     &platform.ItemDimensions{Length: 9, Width: 9, Height: 9, Unit: "inch"},
		},
	}, catalogFixture())

	require.Len(t, items, 1)
	assert.Equal(t, "OVERRIDE-SKU", items[0].FulfillmentSKU)
	require.NotNil(t, items[0].Weight)
	assert.Equal(t, measure.Pound, items[0].Weight.Unit)
	assert.InDelta(t, 32.0, items[0].Weight.Ounces(), 1e-9)
	require.NotNil(t, items[0].Dimensions)
	assert.InDelta(t, 9.0, items[0].Dimensions.Height, 1e-9)
}

func TestMapItems_MatchesByAliasAndProductID(t *testing.T) {
	byAlias := MapItems([]platform.Item{{SKU: "Widget-Alias", Quantity: 1}}, catalogFixture())
	require.Len(t, byAlias, 1)
	assert.Equal(t, "WH-WIDGET-1", byAlias[0].FulfillmentSKU)

	byID := MapItems([]platform.Item{{SKU: "unknown", ProductID: 500, Quantity: 1}}, catalogFixture())
	require.Len(t, byID, 1)
	assert.Equal(t, "WH-WIDGET-1", byID[0].FulfillmentSKU)
}

func TestMapItems_WithoutCatalog(t *testing.T) {
	items := MapItems([]platform.Item{
		{SKU: "LONER", Quantity: 3, Weight: &platform.ItemWeight{Value: 5, Unit: "oz"}},
	}, nil)

	require.Len(t, items, 1)
	assert.Equal(t, "LONER", items[0].SKU)
	assert.Empty(t, items[0].FulfillmentSKU)
	require.NotNil(t, items[0].Weight)
	assert.InDelta(t, 5.0, items[0].Weight.Ounces(), 1e-9)
	assert.Nil(t, items[0].Dimensions)
}

func TestMapItems_DropsNonPositiveMeasures(t *testing.T) {
	items := MapItems([]platform.Item{
		{
			SKU:        "BROKEN",
			Quantity:   1,
			Weight:     &platform.ItemWeight{Value: -3, Unit: "oz"},
			Dimensions: &platform.ItemDimensions{Length: 0, Width: 4, Height: 4, Unit: "inch"},
		},
	}, nil)

	require.Len(t, items, 1)
	assert.Nil(t, items[0].Weight)
	assert.Nil(t, items[0].Dimensions)
}

func TestCollectItemIdentifiers(t *testing.T) {
	keys, ids := CollectItemIdentifiers([]platform.Item{
		{SKU: "A", FulfillmentSKU: "WH-A", UPC: "111", ProductID: 10},
		{SKU: "A", ProductID: 10},
		{SKU: "B", ProductID: 0},
		{UPC: "222", ProductID: 11},
	})

	assert.Equal(t, []string{"WH-A", "A", "111", "B", "222"}, keys)
	assert.Equal(t, []int64{10, 11}, ids)
}
