// Package productrepo persists the cached product catalog, its alias
// SKUs and the unit-of-measure lookup consumed by the ERP mapping.
package productrepo

import (
	"encoding/json"
	"log/slog"

	"shipsync/internal/core/domain/model/measure"
	"shipsync/internal/core/domain/model/product"
)

// ProductDTO represents the database structure for catalog entries. The
// primary key is the platform product id; the SKU carries its own unique
// index because line items resolve by SKU far more often than by id.
type ProductDTO struct {
	ID             int64  `gorm:"primaryKey"`
	SKU            string `gorm:"column:sku;uniqueIndex"`
	Name           string
	FulfillmentSKU string `gorm:"column:fulfillment_sku"`
	Weight         []byte `gorm:"type:jsonb"`
	Dimensions     []byte `gorm:"type:jsonb"`
	ModifyDate     string `gorm:"column:modify_date"`
	Active         bool
}

// TableName specifies the database table name for catalog entries.
func (ProductDTO) TableName() string {
	return "products"
}

// ProductAliasDTO represents one alternate SKU. The alias itself is the
// primary key; re-inserting an alias under a different product reassigns
// it.
type ProductAliasDTO struct {
	Alias     string `gorm:"primaryKey"`
	ProductID int64  `gorm:"column:product_id;index"`
}

// TableName specifies the database table name for product aliases.
func (ProductAliasDTO) TableName() string {
	return "product_aliases"
}

// UOMLookupDTO maps a SKU to the ERP unit-of-measure symbol.
type UOMLookupDTO struct {
	SKU string `gorm:"primaryKey;column:sku"`
	UOM string `gorm:"column:uom"`
}

// TableName specifies the database table name for the UOM lookup.
func (UOMLookupDTO) TableName() string {
	return "uom_lookup"
}

func fromDomain(entry *product.Product) (ProductDTO, error) {
	weight, err := marshalMeasure(entry.Weight)
	if err != nil {
		return ProductDTO{}, err
	}
	dimensions, err := marshalMeasure(entry.Dimensions)
	if err != nil {
		return ProductDTO{}, err
	}

	return ProductDTO{
		ID:             entry.ID,
		SKU:            entry.SKU,
		Name:           entry.Name,
		FulfillmentSKU: entry.FulfillmentSKU,
		Weight:         weight,
		Dimensions:     dimensions,
		ModifyDate:     entry.ModifyDate,
		Active:         entry.Active,
	}, nil
}

func marshalMeasure[T any](value *T) ([]byte, error) {
	if value == nil {
		return nil, nil
	}
	return json.Marshal(value)
}

func toDomain(dto ProductDTO, aliases []string, logger *slog.Logger) *product.Product {
	entry := &product.Product{
		ID:             dto.ID,
		SKU:            dto.SKU,
		Name:           dto.Name,
		FulfillmentSKU: dto.FulfillmentSKU,
		ModifyDate:     dto.ModifyDate,
		Active:         dto.Active,
		Aliases:        aliases,
	}

	if len(dto.Weight) > 0 {
		var weight measure.Weight
		if err := json.Unmarshal(dto.Weight, &weight); err != nil {
			logger.Warn("corrupted product weight, restoring without it",
				"productId", dto.ID, "error", err)
		} else {
			entry.Weight = &weight
		}
	}
	if len(dto.Dimensions) > 0 {
		var dims measure.Dimensions
		if err := json.Unmarshal(dto.Dimensions, &dims); err != nil {
			logger.Warn("corrupted product dimensions, restoring without them",
				"productId", dto.ID, "error", err)
		} else {
			entry.Dimensions = &dims
		}
	}
	return entry
}
