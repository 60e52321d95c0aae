// Package product holds the locally cached product catalog: reference
// data used to resolve fulfillment SKUs and to size label packages for
// items whose platform payload omits weight or dimensions.
package product

import (
	"strings"

	"shipsync/internal/core/domain/model/measure"
	"shipsync/internal/core/domain/model/platform"
)

// Product is one catalog entry, keyed by the platform product id. SKU and
// aliases are unique across the catalog.
type Product struct {
	ID             int64
	SKU            string
	Name           string
	FulfillmentSKU string
	Weight         *measure.Weight
	Dimensions     *measure.Dimensions
	ModifyDate     string
	Active         bool
	Aliases        []string
}

// FromPlatform maps a catalog wire record into a Product. Records without
// a positive product id or a non-empty SKU are unusable as reference data
// and are reported as skipped rather than failing the refresh.
func FromPlatform(p platform.Product) (*Product, bool) {
	sku := strings.TrimSpace(p.SKU)
	if p.ProductID <= 0 || sku == "" {
		return nil, false
	}

	prod := &Product{
		ID:             p.ProductID,
		SKU:            sku,
		Name:           strings.TrimSpace(p.Name),
		FulfillmentSKU: strings.TrimSpace(p.FulfillmentSKU),
		ModifyDate:     strings.TrimSpace(p.ModifyDate),
		Active:         p.IsActive(),
		Aliases:        dedupeAliases(p.Aliases),
	}

	if p.Weight != nil {
		if w, ok := measure.NewWeight(p.Weight.Value, p.Weight.UnitName()); ok {
			prod.Weight = &w
		}
	}
	if p.Dimensions != nil {
		if d, ok := measure.NewDimensions(
			p.Dimensions.Length, p.Dimensions.Width, p.Dimensions.Height, p.Dimensions.UnitName(),
		); ok {
			prod.Dimensions = &d
		}
	}

	return prod, true
}

// dedupeAliases trims alias values and drops empties and case-insensitive
// duplicates, preserving first-seen order.
func dedupeAliases(aliases []platform.ProductAlias) []string {
	seen := make(map[string]struct{}, len(aliases))
	result := make([]string, 0, len(aliases))

	for _, alias := range aliases {
		value := strings.TrimSpace(alias.Value)
		if value == "" {
			continue
		}
		key := strings.ToLower(value)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		result = append(result, value)
	}
	return result
}

// Index is an in-memory lookup over a set of products, keyed by every
// identifier a line item might carry: SKU, fulfillment SKU, alias, and
// platform product id. Keys are matched case-insensitively.
type Index struct {
	byKey map[string]*Product
	byID  map[int64]*Product
}

// NewIndex builds an Index over the given products.
func NewIndex(products []*Product) *Index {
	ix := &Index{
		byKey: make(map[string]*Product),
		byID:  make(map[int64]*Product),
	}
	for _, p := range products {
		if p == nil {
			continue
		}
		ix.byID[p.ID] = p
		for _, key := range append([]string{p.SKU, p.FulfillmentSKU}, p.Aliases...) {
			normalized := strings.ToLower(strings.TrimSpace(key))
			if normalized != "" {
				ix.byKey[normalized] = p
			}
		}
	}
	return ix
}

// Find resolves a product by trying each candidate key in order, then
// each candidate product id. Returns nil when nothing matches.
func (ix *Index) Find(keys []string, ids []int64) *Product {
	if ix == nil {
		return nil
	}
	for _, key := range keys {
		normalized := strings.ToLower(strings.TrimSpace(key))
		if normalized == "" {
			continue
		}
		if p, ok := ix.byKey[normalized]; ok {
			return p
		}
	}
	for _, id := range ids {
		if id <= 0 {
			continue
		}
		if p, ok := ix.byID[id]; ok {
			return p
		}
	}
	return nil
}

// Len reports how many products the index holds.
func (ix *Index) Len() int {
	if ix == nil {
		return 0
	}
	return len(ix.byID)
}
