package platform

import "github.com/shopspring/decimal"

// Item is one order line as delivered by the platform.
type Item struct {
	SKU            string `json:"sku"`
	FulfillmentSKU string `json:"fulfillmentSku"`
	Name           string `json:"name"`
	UPC            string `json:"upc"`
	ProductID      int64  `json:"productId"`

	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`

	Weight       *ItemWeight       `json:"weight"`
	Dimensions   *ItemDimensions   `json:"dimensions"`
	InsuredValue *ItemInsuredValue `json:"insuredValue"`
}

// ItemWeight is a line weight; the unit arrives as either "unit" or
// "units" depending on the endpoint.
type ItemWeight struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
	Units string  `json:"units"`
}

// UnitName resolves the unit across the synonym fields.
func (w *ItemWeight) UnitName() string {
	if w == nil {
		return ""
	}
	if w.Unit != "" {
		return w.Unit
	}
	return w.Units
}

// ItemDimensions is a line dimension triple with the same unit synonym
// situation as ItemWeight.
type ItemDimensions struct {
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Unit   string  `json:"unit"`
	Units  string  `json:"units"`
}

// UnitName resolves the unit across the synonym fields.
func (d *ItemDimensions) UnitName() string {
	if d == nil {
		return ""
	}
	if d.Unit != "" {
		return d.Unit
	}
	return d.Units
}

// ItemInsuredValue is the explicit declared value on a line.
type ItemInsuredValue struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
}
