package shipment

import (
	"shipsync/internal/core/domain/model/measure"
)

// Package is one canonical physical package of a shipment request.
type Package struct {
	Weight       measure.Weight      `json:"weight"`
	Dimensions   *measure.Dimensions `json:"dimensions,omitempty"`
	InsuredValue *InsuredAmount      `json:"insured_value,omitempty"`
}

// InsuredAmount is the declared package value as the carrier API expects
// it: a plain JSON number plus a currency code. Domain insured values use
// decimals; convert at payload-build time via NewInsuredAmount.
type InsuredAmount struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

// NewInsuredAmount converts a domain insured value into its payload form.
func NewInsuredAmount(v measure.InsuredValue) *InsuredAmount {
	return &InsuredAmount{
		Amount:   v.Amount.InexactFloat64(),
		Currency: v.Currency,
	}
}

// Shipment is the carrier label request body. String fields are omitted
// when empty so the payload arrives cleaned.
type Shipment struct {
	ServiceCode       string    `json:"service_code"`
	CarrierCode       string    `json:"carrier_code,omitempty"`
	Confirmation      string    `json:"confirmation,omitempty"`
	ShipTo            Address   `json:"ship_to"`
	ShipFrom          Address   `json:"ship_from"`
	Packages          []Package `json:"packages"`
	InsuranceProvider string    `json:"insurance_provider,omitempty"`
	ShipDate          string    `json:"ship_date,omitempty"`
}

// LabelRequest wraps a shipment for the label-creation endpoint.
type LabelRequest struct {
	Shipment  Shipment `json:"shipment"`
	TestLabel bool     `json:"test_label,omitempty"`
}
