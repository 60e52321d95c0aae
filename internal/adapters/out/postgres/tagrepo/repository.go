// Package tagrepo persists the cached platform tag vocabulary. The cache
// is tiny (tens of rows) and refreshed wholesale, so the repository
// replaces the full set inside the caller's transaction instead of
// diffing.
package tagrepo

import (
	"context"

	"gorm.io/gorm"

	"shipsync/internal/core/domain/model/platform"
)

// TagDTO represents the database structure for cached tags.
type TagDTO struct {
	TagID int64  `gorm:"primaryKey;column:tag_id"`
	Name  string `gorm:"index"`
}

// TableName specifies the database table name for cached tags.
func (TagDTO) TableName() string {
	return "tags"
}

// GormTagRepository implements ports.TagRepository using GORM.
type GormTagRepository struct {
	db *gorm.DB
}

// NewGormTagRepository creates a new GORM tag repository.
func NewGormTagRepository(db *gorm.DB) *GormTagRepository {
	return &GormTagRepository{db: db}
}

// ReplaceAll swaps the cached vocabulary for the given set. Run inside a
// transaction so readers never observe the cache half-swapped.
func (r *GormTagRepository) ReplaceAll(ctx context.Context, tags []platform.Tag) error {
	if err := r.db.WithContext(ctx).Where("1 = 1").Delete(&TagDTO{}).Error; err != nil {
		return err
	}
	if len(tags) == 0 {
		return nil
	}

	dtos := make([]TagDTO, 0, len(tags))
	for _, tag := range tags {
		dtos = append(dtos, TagDTO{TagID: tag.TagID, Name: tag.Name})
	}
	return r.db.WithContext(ctx).Create(&dtos).Error
}

// GetAll retrieves the cached vocabulary.
func (r *GormTagRepository) GetAll(ctx context.Context) ([]platform.Tag, error) {
	var dtos []TagDTO
	if err := r.db.WithContext(ctx).Order("tag_id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	tags := make([]platform.Tag, 0, len(dtos))
	for _, dto := range dtos {
		tags = append(tags, platform.Tag{TagID: dto.TagID, Name: dto.Name})
	}
	return tags, nil
}
