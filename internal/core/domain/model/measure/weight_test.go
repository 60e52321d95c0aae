package measure_test

import (
	"math"
	"testing"

	"shipsync/internal/core/domain/model/measure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeWeightUnit(t *testing.T) {
	tests := []struct {
		raw      string
		expected measure.WeightUnit
	}{
		{"oz", measure.Ounce},
		{"ounce", measure.Ounce},
		{"ounces", measure.Ounce},
		{"OZ", measure.Ounce},
		{"lb", measure.Pound},
		{"lbs", measure.Pound},
		{"pound", measure.Pound},
		{"pounds", measure.Pound},
		{"g", measure.Gram},
		{"gram", measure.Gram},
		{"grams", measure.Gram},
		{"kg", measure.Kilogram},
		{"kilogram", measure.Kilogram},
		{"kilograms", measure.Kilogram},
		{"", measure.WeightUnit("")},
		{"stone", measure.WeightUnit("stone")},
		{"  Lbs  ", measure.Pound},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.expected, measure.NormalizeWeightUnit(tt.raw))
		})
	}
}

func TestWeight_Ounces(t *testing.T) {
	t.Run("pound converts with factor 16", func(t *testing.T) {
		w, ok := measure.NewWeight(2, "lb")
		require.True(t, ok)
		assert.InDelta(t, 32.0, w.Ounces(), 1e-9)
	})

	t.Run("gram and kilogram use fixed factors", func(t *testing.T) {
		g, ok := measure.NewWeight(100, "g")
		require.True(t, ok)
		assert.InDelta(t, 3.527396, g.Ounces(), 1e-9)

		kg, ok := measure.NewWeight(1, "kg")
		require.True(t, ok)
		assert.InDelta(t, 35.27396, kg.Ounces(), 1e-9)
	})

	t.Run("conversion is idempotent once in ounces", func(t *testing.T) {
		w, ok := measure.NewWeight(32, "oz")
		require.True(t, ok)

		once := measure.Weight{Value: w.Ounces(), Unit: measure.Ounce}
		assert.InDelta(t, w.Ounces(), once.Ounces(), 1e-9)
	})

	t.Run("non-positive values contribute zero", func(t *testing.T) {
		_, ok := measure.NewWeight(0, "oz")
		assert.False(t, ok)

		_, ok = measure.NewWeight(-3, "lb")
		assert.False(t, ok)

		assert.Zero(t, measure.Weight{Value: -3, Unit: measure.Pound}.Ounces())
	})

	t.Run("missing unit contributes zero", func(t *testing.T) {
		_, ok := measure.NewWeight(5, "")
		assert.False(t, ok)
		assert.Zero(t, measure.Weight{Value: 5}.Ounces())
	})

	t.Run("unknown unit passes the value through", func(t *testing.T) {
		w, ok := measure.NewWeight(7, "stone")
		require.True(t, ok)
		assert.InDelta(t, 7.0, w.Ounces(), 1e-9)
	})
}

func TestNewDimensions(t *testing.T) {
	t.Run("accepts strictly positive triples", func(t *testing.T) {
		d, ok := measure.NewDimensions(10, 5, 2, "inch")
		require.True(t, ok)
		assert.True(t, d.Valid())
	})

	t.Run("defaults the unit", func(t *testing.T) {
		d, ok := measure.NewDimensions(1, 1, 1, "")
		require.True(t, ok)
		assert.Equal(t, measure.DefaultDimensionUnit, d.Unit)
	})

	t.Run("rejects non-positive and non-finite sides", func(t *testing.T) {
		for _, sides := range [][3]float64{
			{0, 5, 2},
			{10, -1, 2},
			{10, 5, 0},
			{math.NaN(), 5, 2},
			{10, math.Inf(1), 2},
		} {
			_, ok := measure.NewDimensions(sides[0], sides[1], sides[2], "inch")
			assert.False(t, ok)
		}
	})
}
