package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/RamonMR95/auto-api/entity"
)

// CarRepository handles all database operations for the Car entity.
type CarRepository struct {
	db *gorm.DB
}

func NewCarRepository(db *gorm.DB) *CarRepository {
	return &CarRepository{db: db}
}

func carFilter(db *gorm.DB, filterBy string) *gorm.DB {
	if filterBy == "" {
		return db
	}
	pattern := "%" + strings.ToLower(filterBy) + "%"
	return db.
		Joins("JOIN brands ON brands.id = cars.brand_id").
		Where("LOWER(brands.name) LIKE ? OR LOWER(CAST(cars.registration AS TEXT)) LIKE ?", pattern, pattern)
}

// List runs the filtered, sorted, optionally paginated catalog query.
func (r *CarRepository) List(ctx context.Context, query CarQuery) ([]entity.Car, error) {
	db := r.db.WithContext(ctx).Model(&entity.Car{})
	db = carFilter(db, query.FilterBy)

	if clause, ok := query.orderClause(); ok {
		if query.FilterBy == "" && strings.HasPrefix(clause, "brands.") {
			db = db.Joins("JOIN brands ON brands.id = cars.brand_id")
		}
		db = db.Order(clause)
	}

	if query.Page >= 1 && query.Size >= 0 {
		db = db.Offset(query.Size*query.Page - query.Size).Limit(query.Size)
	}

	var cars []entity.Car
	err := db.Preload("Brand").Preload("Country").Find(&cars).Error
	if err != nil {
		return nil, translate(err)
	}
	return cars, nil
}

// Count reports how many rows match the filter predicate of List.
func (r *CarRepository) Count(ctx context.Context, filterBy string) (int64, error) {
	db := r.db.WithContext(ctx).Model(&entity.Car{})
	db = carFilter(db, filterBy)

	var count int64
	if err := db.Count(&count).Error; err != nil {
		return 0, translate(err)
	}
	return count, nil
}

func (r *CarRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Car, error) {
	var car entity.Car
	err := r.db.WithContext(ctx).
		Preload("Brand").
		Preload("Country").
		First(&car, "id = ?", id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &car, nil
}

func (r *CarRepository) Create(ctx context.Context, car *entity.Car) error {
	if car == nil {
		return errors.New("car cannot be nil")
	}
	return translate(r.db.WithContext(ctx).Create(car).Error)
}

func (r *CarRepository) Update(ctx context.Context, car *entity.Car) error {
	if car == nil {
		return errors.New("car cannot be nil")
	}
	return translate(r.db.WithContext(ctx).Save(car).Error)
}

// Delete removes the row outright. A zero row count means the car was gone
// already, which the purge worker treats as benign.
func (r *CarRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&entity.Car{}, "id = ?", id)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

// ListFlagged returns every car marked for the scheduled purge.
func (r *CarRepository) ListFlagged(ctx context.Context) ([]entity.Car, error) {
	var cars []entity.Car
	err := r.db.WithContext(ctx).
		Preload("Brand").
		Preload("Country").
		Where("delete_flag = ?", true).
		Find(&cars).Error
	if err != nil {
		return nil, translate(err)
	}
	return cars, nil
}
