package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/shelfd-dev/shelfd/internal/models"
	"gorm.io/gorm"
)

type CreateItemParams struct {
	Title       string
	Description string
}

// CreateItem inserts an item owned by ownerID. Owner existence is not
// pre-checked; a dangling reference is rejected by the foreign key
// constraint and surfaces as ErrOwnerMissing.
func (s *Store) CreateItem(ctx context.Context, params CreateItemParams, ownerID uint) (*models.Item, error) {
	item := models.Item{
		Title:       params.Title,
		Description: params.Description,
		OwnerID:     ownerID,
	}

	if err := s.db.WithContext(ctx).Create(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return nil, fmt.Errorf("%w: %v", ErrOwnerMissing, err)
		}
		return nil, err
	}

	return &item, nil
}

func (s *Store) ListItems(ctx context.Context, skip, limit int) ([]models.Item, error) {
	skip, limit = normalizePage(skip, limit)

	var items []models.Item

	err := s.db.WithContext(ctx).
		Preload("Owner").
		Order("id").
		Offset(skip).
		Limit(limit).
		Find(&items).Error

	if err != nil {
		return nil, err
	}

	return items, nil
}
