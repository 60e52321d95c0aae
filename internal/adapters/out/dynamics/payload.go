package dynamics

import (
	"context"
	"encoding/json"

	"shipsync/internal/core/domain/model/order"
	"shipsync/internal/core/domain/model/platform"
)

// defaultUOM is the sales unit used when the lookup has no entry for a
// SKU.
const defaultUOM = "ea"

// SalesOrderHeader is the D365 sales order header entity payload.
type SalesOrderHeader struct {
	SalesOrderNumber string `json:"SalesOrderNumber"`
	AccountNumber    string `json:"AccountNumber"`
}

// SalesOrderLine is the D365 sales order line entity payload. The order
// number links the line to the header created in the same changeset.
type SalesOrderLine struct {
	SalesOrderNumber string `json:"SalesOrderNumber"`
	LineNumber       int    `json:"LineNumber"`
	ItemNumber       string `json:"ItemNumber"`
	QuantityOrdered  int    `json:"QuantityOrdered"`
	SalesUnitSymbol  string `json:"SalesUnitSymbol"`
}

type salesOrderPayload struct {
	Header SalesOrderHeader
	Lines  []SalesOrderLine
}

func (h SalesOrderHeader) encode() string {
	data, _ := json.Marshal(h)
	return string(data)
}

func (l SalesOrderLine) encode() string {
	data, _ := json.Marshal(l)
	return string(data)
}

// mapSalesOrder maps the stored aggregate into the header/lines payload.
// The remote detail supplies the customer account when the platform
// exposes a username; lines come from the stored item snapshot with the
// resolved fulfillment SKU as the item number.
func (c *Client) mapSalesOrder(ctx context.Context, aggregate *order.Order, remote *platform.Order) (salesOrderPayload, error) {
	account := aggregate.CustomerEmail()
	if remote != nil && remote.Customer != nil && remote.Customer.Username != "" {
		account = remote.Customer.Username
	}

	payload := salesOrderPayload{
		Header: SalesOrderHeader{
			SalesOrderNumber: aggregate.OrderNumber(),
			AccountNumber:    account,
		},
	}

	for index, item := range aggregate.Items() {
		sku := item.ResolvedSKU()
		uom, err := c.uom.UOMForSKU(ctx, sku)
		if err != nil {
			return salesOrderPayload{}, err
		}
		if uom == "" {
			uom = defaultUOM
		}

		payload.Lines = append(payload.Lines, SalesOrderLine{
			LineNumber:      index + 1,
			ItemNumber:      sku,
			QuantityOrdered: item.EffectiveQuantity(),
			SalesUnitSymbol: uom,
		})
	}

	return payload, nil
}
