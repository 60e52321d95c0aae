package archiverepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"shipsync/internal/core/domain/model/order"
	"shipsync/internal/pkg/errs"
)

// uniqueViolation is the postgres error code for a unique constraint
// violation.
const uniqueViolation = "23505"

// GormArchiveRepository implements ports.ArchiveRepository using GORM.
type GormArchiveRepository struct {
	db *gorm.DB
}

// NewGormArchiveRepository creates a new GORM archive repository.
func NewGormArchiveRepository(db *gorm.DB) *GormArchiveRepository {
	return &GormArchiveRepository{db: db}
}

// Add writes the archive snapshot of a processed order, stamped with the
// archival time. Archiving the same order twice violates the primary key
// and is reported as a validation error rather than a raw driver error.
func (r *GormArchiveRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate, time.Now().UTC())
	if err != nil {
		return err
	}

	if err = r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return errs.NewValueIsInvalidErrorWithCause(
				"order id",
				fmt.Errorf("order %d is already archived", aggregate.ID()),
			)
		}
		return err
	}
	return nil
}
