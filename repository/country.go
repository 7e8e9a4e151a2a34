package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/RamonMR95/auto-api/entity"
)

// CountryRepository handles all database operations for the Country entity.
type CountryRepository struct {
	db *gorm.DB
}

func NewCountryRepository(db *gorm.DB) *CountryRepository {
	return &CountryRepository{db: db}
}

func (r *CountryRepository) List(ctx context.Context) ([]entity.Country, error) {
	var countries []entity.Country
	if err := r.db.WithContext(ctx).Find(&countries).Error; err != nil {
		return nil, translate(err)
	}
	return countries, nil
}

func (r *CountryRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Country, error) {
	var country entity.Country
	if err := r.db.WithContext(ctx).First(&country, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &country, nil
}

// GetByName is the natural-key lookup used to resolve car payloads.
func (r *CountryRepository) GetByName(ctx context.Context, name string) (*entity.Country, error) {
	var country entity.Country
	if err := r.db.WithContext(ctx).First(&country, "name ILIKE ?", name).Error; err != nil {
		return nil, translate(err)
	}
	return &country, nil
}

func (r *CountryRepository) GetByIsoCode(ctx context.Context, isoCode string) (*entity.Country, error) {
	var country entity.Country
	if err := r.db.WithContext(ctx).First(&country, "iso_code ILIKE ?", isoCode).Error; err != nil {
		return nil, translate(err)
	}
	return &country, nil
}

func (r *CountryRepository) Create(ctx context.Context, country *entity.Country) error {
	if country == nil {
		return errors.New("country cannot be nil")
	}
	return translate(r.db.WithContext(ctx).Create(country).Error)
}

func (r *CountryRepository) Update(ctx context.Context, country *entity.Country) error {
	if country == nil {
		return errors.New("country cannot be nil")
	}
	return translate(r.db.WithContext(ctx).Save(country).Error)
}

func (r *CountryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&entity.Country{}, "id = ?", id)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}
