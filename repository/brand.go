package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/RamonMR95/auto-api/entity"
)

// BrandRepository handles all database operations for the Brand entity.
type BrandRepository struct {
	db *gorm.DB
}

func NewBrandRepository(db *gorm.DB) *BrandRepository {
	return &BrandRepository{db: db}
}

func (r *BrandRepository) List(ctx context.Context) ([]entity.Brand, error) {
	var brands []entity.Brand
	if err := r.db.WithContext(ctx).Find(&brands).Error; err != nil {
		return nil, translate(err)
	}
	return brands, nil
}

func (r *BrandRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Brand, error) {
	var brand entity.Brand
	if err := r.db.WithContext(ctx).First(&brand, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &brand, nil
}

// GetByName is the natural-key lookup used to resolve car payloads. The name
// is matched as a case-insensitive pattern.
func (r *BrandRepository) GetByName(ctx context.Context, name string) (*entity.Brand, error) {
	var brand entity.Brand
	if err := r.db.WithContext(ctx).First(&brand, "name ILIKE ?", name).Error; err != nil {
		return nil, translate(err)
	}
	return &brand, nil
}

func (r *BrandRepository) Create(ctx context.Context, brand *entity.Brand) error {
	if brand == nil {
		return errors.New("brand cannot be nil")
	}
	return translate(r.db.WithContext(ctx).Create(brand).Error)
}

func (r *BrandRepository) Update(ctx context.Context, brand *entity.Brand) error {
	if brand == nil {
		return errors.New("brand cannot be nil")
	}
	return translate(r.db.WithContext(ctx).Save(brand).Error)
}

func (r *BrandRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&entity.Brand{}, "id = ?", id)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}
