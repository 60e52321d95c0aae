package platform

import "encoding/json"

// Tag is one entry of the account-level tag vocabulary.
type Tag struct {
	TagID int64  `json:"tagId"`
	Name  string `json:"name"`
}

// Product is one catalog entry from the paginated product list.
type Product struct {
	ProductID      int64           `json:"product_id"`
	SKU            string          `json:"sku"`
	Name           string          `json:"name"`
	FulfillmentSKU string          `json:"fulfillment_sku"`
	Weight         *ItemWeight     `json:"weight"`
	Dimensions     *ItemDimensions `json:"dimensions"`
	ModifyDate     string          `json:"modify_date"`
	Active         *bool           `json:"active"`
	Aliases        []ProductAlias  `json:"aliases"`
}

// IsActive treats a missing active flag as active; the catalog only
// marks products explicitly when they are retired.
func (p *Product) IsActive() bool {
	return p.Active == nil || *p.Active
}

// ProductAlias is an alternate SKU. The catalog delivers aliases either
// as bare strings or as objects carrying one of several alias fields.
type ProductAlias struct {
	Value string
}

// UnmarshalJSON accepts both alias shapes.
func (a *ProductAlias) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		a.Value = s
		return nil
	}

	var obj struct {
		SKUAlias string `json:"sku_alias"`
		SKU      string `json:"sku"`
		Alias    string `json:"alias"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}

	switch {
	case obj.SKUAlias != "":
		a.Value = obj.SKUAlias
	case obj.SKU != "":
		a.Value = obj.SKU
	default:
		a.Value = obj.Alias
	}
	return nil
}

// ProductPage is one page of the paginated catalog listing.
type ProductPage struct {
	Products []Product `json:"products"`
	Pages    int       `json:"pages"`
}
