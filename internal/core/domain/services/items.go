package services

import (
	"shipsync/internal/core/domain/model/measure"
	"shipsync/internal/core/domain/model/order"
	"shipsync/internal/core/domain/model/platform"
	"shipsync/internal/core/domain/model/product"
)

// MapItems converts platform order lines into stored line items,
// enriching them from the product catalog index when one is supplied.
// Enrichment fills only the gaps: an explicit platform weight or
// dimension always wins over catalog reference data.
func MapItems(items []platform.Item, catalog *product.Index) []order.Item {
	result := make([]order.Item, 0, len(items))
	for _, pi := range items {
		result = append(result, mapItem(pi, catalog))
	}
	return result
}

func mapItem(pi platform.Item, catalog *product.Index) order.Item {
	item := order.Item{
		SKU:            pi.SKU,
		FulfillmentSKU: pi.FulfillmentSKU,
		Name:           pi.Name,
		Quantity:       pi.Quantity,
		UnitPrice:      pi.UnitPrice,
	}

	if pi.Weight != nil {
		if w, ok := measure.NewWeight(pi.Weight.Value, pi.Weight.UnitName()); ok {
			item.Weight = &w
		}
	}
	if pi.Dimensions != nil {
		if d, ok := measure.NewDimensions(
			pi.Dimensions.Length, pi.Dimensions.Width, pi.Dimensions.Height, pi.Dimensions.UnitName(),
		); ok {
			item.Dimensions = &d
		}
	}
	if pi.InsuredValue != nil {
		if iv, ok := measure.NewInsuredValue(pi.InsuredValue.Amount, pi.InsuredValue.Currency); ok {
			item.InsuredValue = &iv
		}
	}

	match := catalog.Find(
		[]string{pi.FulfillmentSKU, pi.SKU, pi.UPC},
		[]int64{pi.ProductID},
	)
	if match == nil {
		return item
	}

	if item.FulfillmentSKU == "" {
		item.FulfillmentSKU = match.FulfillmentSKU
	}
	if item.Weight == nil {
		item.Weight = match.Weight
	}
	if item.Dimensions == nil {
		item.Dimensions = match.Dimensions
	}
	return item
}

// CollectItemIdentifiers gathers every SKU-like key and product id across
// the given platform lines, for a single catalog lookup covering the
// whole order.
func CollectItemIdentifiers(items []platform.Item) ([]string, []int64) {
	keySet := make(map[string]struct{})
	idSet := make(map[int64]struct{})
	keys := make([]string, 0)
	ids := make([]int64, 0)

	for _, item := range items {
		for _, key := range []string{item.FulfillmentSKU, item.SKU, item.UPC} {
			if key == "" {
				continue
			}
			if _, ok := keySet[key]; ok {
				continue
			}
			keySet[key] = struct{}{}
			keys = append(keys, key)
		}
		if item.ProductID > 0 {
			if _, ok := idSet[item.ProductID]; !ok {
				idSet[item.ProductID] = struct{}{}
				ids = append(ids, item.ProductID)
			}
		}
	}
	return keys, ids
}
