package shipment

import "strings"

// Address is a cleaned carrier address. Empty fields are dropped from the
// encoded payload via omitempty.
type Address struct {
	Name        string `json:"name,omitempty"`
	CompanyName string `json:"company_name,omitempty"`
	Phone       string `json:"phone,omitempty"`

	AddressLine1 string `json:"address_line1,omitempty"`
	AddressLine2 string `json:"address_line2,omitempty"`
	AddressLine3 string `json:"address_line3,omitempty"`

	CityLocality  string `json:"city_locality,omitempty"`
	StateProvince string `json:"state_province,omitempty"`
	PostalCode    string `json:"postal_code,omitempty"`
	CountryCode   string `json:"country_code,omitempty"`

	// ResidentialIndicator is the carrier's binary "yes"/"no" token.
	ResidentialIndicator string `json:"address_residential_indicator,omitempty"`
}

// HasStreet reports whether the first address line is populated.
func (a Address) HasStreet() bool {
	return a.AddressLine1 != ""
}

// NormalizeYesNo converts the platform's loosely typed residential flag
// (bool, "true"/"false", "yes"/"no", or anything else truthy) into the
// carrier's binary token.
func NormalizeYesNo(value any) string {
	switch v := value.(type) {
	case string:
		switch strings.ToLower(v) {
		case "yes", "true":
			return "yes"
		case "no", "false", "":
			return "no"
		default:
			return "yes"
		}
	case bool:
		if v {
			return "yes"
		}
		return "no"
	case nil:
		return "no"
	case float64:
		if v != 0 {
			return "yes"
		}
		return "no"
	default:
		return "yes"
	}
}
