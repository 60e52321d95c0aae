package productrepo

import (
	"context"
	"errors"
	"log/slog"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"shipsync/internal/core/domain/model/product"
	"shipsync/internal/pkg/errs"
)

// GormProductRepository implements the ProductRepository port on top of
// gorm.
type GormProductRepository struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewGormProductRepository creates a new catalog repository bound to the
// given database handle, which may be a transaction.
func NewGormProductRepository(db *gorm.DB, logger *slog.Logger) *GormProductRepository {
	return &GormProductRepository{
		db:     db,
		logger: logger.With("component", "product-repository"),
	}
}

// Upsert inserts or updates the given catalog entries and replaces the
// alias rows of each affected product. Entries already present keep their
// id and get the refreshed fields; aliases that moved to another product
// are reassigned. Products absent from the batch are left untouched so
// the refresh can commit page by page.
func (r *GormProductRepository) Upsert(ctx context.Context, products []*product.Product) error {
	if len(products) == 0 {
		return nil
	}

	rows := make([]ProductDTO, 0, len(products))
	ids := make([]int64, 0, len(products))
	aliases := make([]ProductAliasDTO, 0, len(products))
	for _, entry := range products {
		if entry == nil {
			return errs.NewValueIsRequiredError("product")
		}
		dto, err := fromDomain(entry)
		if err != nil {
			return errs.NewValueIsInvalidErrorWithCause("product", err)
		}
		rows = append(rows, dto)
		ids = append(ids, entry.ID)
		for _, alias := range entry.Aliases {
			aliases = append(aliases, ProductAliasDTO{Alias: alias, ProductID: entry.ID})
		}
	}

	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(&rows)
	if result.Error != nil {
		return result.Error
	}

	if err := r.db.WithContext(ctx).
		Where("product_id IN ?", ids).
		Delete(&ProductAliasDTO{}).Error; err != nil {
		return err
	}
	if len(aliases) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "alias"}},
		DoUpdates: clause.AssignmentColumns([]string{"product_id"}),
	}).Create(&aliases).Error
}

// GetAll returns every cached catalog entry with its aliases attached.
func (r *GormProductRepository) GetAll(ctx context.Context) ([]*product.Product, error) {
	var dtos []ProductDTO
	if err := r.db.WithContext(ctx).Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	var aliasRows []ProductAliasDTO
	if err := r.db.WithContext(ctx).Find(&aliasRows).Error; err != nil {
		return nil, err
	}
	aliasesByProduct := make(map[int64][]string, len(dtos))
	for _, row := range aliasRows {
		aliasesByProduct[row.ProductID] = append(aliasesByProduct[row.ProductID], row.Alias)
	}

	products := make([]*product.Product, 0, len(dtos))
	for _, dto := range dtos {
		products = append(products, toDomain(dto, aliasesByProduct[dto.ID], r.logger))
	}
	return products, nil
}

// UOMForSKU returns the configured unit-of-measure symbol for a SKU, or
// an empty string when the lookup has no row for it.
func (r *GormProductRepository) UOMForSKU(ctx context.Context, sku string) (string, error) {
	var row UOMLookupDTO
	err := r.db.WithContext(ctx).First(&row, "sku = ?", sku).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", err
	}
	return row.UOM, nil
}
