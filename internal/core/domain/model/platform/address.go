package platform

// Address is a platform address. Different endpoints name the street
// lines differently (street1 vs address1), so both sets are kept and
// resolved through the Line accessors.
type Address struct {
	Name    string `json:"name"`
	Company string `json:"company"`
	Phone   string `json:"phone"`

	Street1 string `json:"street1"`
	Street2 string `json:"street2"`
	Street3 string `json:"street3"`

	Address1 string `json:"address1"`
	Address2 string `json:"address2"`
	Address3 string `json:"address3"`

	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`

	// Residential arrives as a bool, "true"/"false", or "yes"/"no"
	// depending on the endpoint.
	Residential any `json:"residential"`
}

// Line1 resolves the first street line across the synonym fields.
func (a *Address) Line1() string {
	if a == nil {
		return ""
	}
	if a.Street1 != "" {
		return a.Street1
	}
	return a.Address1
}

// Line2 resolves the second street line across the synonym fields.
func (a *Address) Line2() string {
	if a == nil {
		return ""
	}
	if a.Street2 != "" {
		return a.Street2
	}
	return a.Address2
}

// Line3 resolves the third street line across the synonym fields.
func (a *Address) Line3() string {
	if a == nil {
		return ""
	}
	if a.Street3 != "" {
		return a.Street3
	}
	return a.Address3
}

// HasStreet reports whether the address carries a populated first street
// line, the minimum required for label creation.
func (a *Address) HasStreet() bool {
	return a.Line1() != ""
}
