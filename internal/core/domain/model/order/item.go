package order

import (
	"github.com/shopspring/decimal"

	"shipsync/internal/core/domain/model/measure"
)

// Item is one order line as stored on the order record. Fields are
// exported because items round-trip through the JSON blob column on the
// order row and through the catalog enrichment step.
type Item struct {
	// SKU is the merchant SKU as it appeared on the platform order.
	SKU string `json:"sku"`

	// FulfillmentSKU is the resolved warehouse SKU, filled from the
	// product catalog when the platform did not supply one.
	FulfillmentSKU string `json:"fulfillmentSku,omitempty"`

	// Name is the display name of the line.
	Name string `json:"name,omitempty"`

	// Quantity is the ordered unit count as received. Use
	// EffectiveQuantity for label math.
	Quantity int `json:"quantity"`

	// UnitPrice is the per-unit sale price, used as the insured-value
	// fallback.
	UnitPrice decimal.Decimal `json:"unitPrice"`

	// Weight is the per-unit weight when known.
	Weight *measure.Weight `json:"weight,omitempty"`

	// Dimensions are the per-unit package dimensions when known.
	Dimensions *measure.Dimensions `json:"dimensions,omitempty"`

	// InsuredValue is the explicit declared value when the platform
	// supplied one.
	InsuredValue *measure.InsuredValue `json:"insuredValue,omitempty"`
}

// EffectiveQuantity returns the quantity clamped to a minimum of one, so a
// malformed zero-quantity line still yields a package.
func (i Item) EffectiveQuantity() int {
	if i.Quantity < 1 {
		return 1
	}
	return i.Quantity
}

// ResolvedSKU returns the fulfillment SKU when present, falling back to
// the merchant SKU. This is the identifier sent to the ERP.
func (i Item) ResolvedSKU() string {
	if i.FulfillmentSKU != "" {
		return i.FulfillmentSKU
	}
	return i.SKU
}
