package platform

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is a platform order as returned by the orders list and the
// per-order detail fetch.
type Order struct {
	OrderID     int64  `json:"orderId"`
	OrderNumber string `json:"orderNumber"`
	OrderStatus string `json:"orderStatus"`

	// OrderDate and CreateDate are platform timestamps in a vendor
	// format; use PlacedAt to resolve them.
	OrderDate  string `json:"orderDate"`
	CreateDate string `json:"createDate"`

	CustomerEmail string    `json:"customerEmail"`
	Customer      *Customer `json:"customer"`

	ShipTo   *Address `json:"shipTo"`
	ShipFrom *Address `json:"shipFrom"`

	Items []Item  `json:"items"`
	Tags  []int64 `json:"tagIds"`

	OrderTotal decimal.Decimal `json:"orderTotal"`
	AmountPaid decimal.Decimal `json:"amountPaid"`

	RequestedShippingService string `json:"requestedShippingService"`
	ServiceCode              string `json:"serviceCode"`
	CarrierCode              string `json:"carrierCode"`
	Confirmation             string `json:"confirmation"`
	ShipDate                 string `json:"shipDate"`

	InsuranceOptions *InsuranceOptions `json:"insuranceOptions"`
}

// Customer carries the buyer account fields the bridge cares about.
type Customer struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

// InsuranceOptions is the order-level insurance hint.
type InsuranceOptions struct {
	Provider       string          `json:"provider"`
	InsureShipment bool            `json:"insureShipment"`
	InsuredValue   decimal.Decimal `json:"insuredValue"`
}

// Email resolves the buyer email, preferring the customer record over the
// flat field.
func (o *Order) Email() string {
	if o.Customer != nil && o.Customer.Username != "" {
		return o.Customer.Username
	}
	return o.CustomerEmail
}

// Total resolves the monetary order total, falling back to the amount
// paid when the platform omitted the total.
func (o *Order) Total() decimal.Decimal {
	if !o.OrderTotal.IsZero() {
		return o.OrderTotal
	}
	return o.AmountPaid
}

// PlacedAt resolves the order date, trying the platform's timestamp
// formats and falling back to the given ingestion time when neither field
// parses.
func (o *Order) PlacedAt(fallback time.Time) time.Time {
	for _, raw := range []string{o.OrderDate, o.CreateDate} {
		if ts, ok := ParseTime(raw); ok {
			return ts
		}
	}
	return fallback
}

// timeLayouts are the timestamp shapes observed in platform payloads.
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05.0000000",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// ParseTime parses a platform timestamp, reporting false for empty or
// unrecognized input.
func ParseTime(raw string) (time.Time, bool) {
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range timeLayouts {
		if ts, err := time.Parse(layout, raw); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}
