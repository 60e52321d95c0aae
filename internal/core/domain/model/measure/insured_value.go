package measure

import "github.com/shopspring/decimal"

// DefaultCurrency is assumed when a payload supplies an amount without a
// currency code.
const DefaultCurrency = "USD"

// InsuredValue is the declared value of a line item for carrier insurance.
type InsuredValue struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
}

// NewInsuredValue builds an InsuredValue from an amount and currency. It
// returns false for non-positive amounts: insurance metadata is never
// fabricated from a zero or negative value.
func NewInsuredValue(amount decimal.Decimal, currency string) (InsuredValue, bool) {
	if amount.Sign() <= 0 {
		return InsuredValue{}, false
	}
	if currency == "" {
		currency = DefaultCurrency
	}
	return InsuredValue{Amount: amount, Currency: currency}, true
}
