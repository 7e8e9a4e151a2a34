package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/RamonMR95/auto-api/entity"
	"github.com/RamonMR95/auto-api/repository"
)

// Store interfaces mirror the gorm repositories so the services can be
// exercised against mocks. Implementations signal absence with
// repository.ErrRecordNotFound and key collisions with
// repository.ErrDuplicateKey.

type CarStore interface {
	List(ctx context.Context, query repository.CarQuery) ([]entity.Car, error)
	Count(ctx context.Context, filterBy string) (int64, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Car, error)
	Create(ctx context.Context, car *entity.Car) error
	Update(ctx context.Context, car *entity.Car) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListFlagged(ctx context.Context) ([]entity.Car, error)
}

type BrandStore interface {
	List(ctx context.Context) ([]entity.Brand, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Brand, error)
	GetByName(ctx context.Context, name string) (*entity.Brand, error)
	Create(ctx context.Context, brand *entity.Brand) error
	Update(ctx context.Context, brand *entity.Brand) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type CountryStore interface {
	List(ctx context.Context) ([]entity.Country, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Country, error)
	GetByName(ctx context.Context, name string) (*entity.Country, error)
	GetByIsoCode(ctx context.Context, isoCode string) (*entity.Country, error)
	Create(ctx context.Context, country *entity.Country) error
	Update(ctx context.Context, country *entity.Country) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// BrandLookup and CountryLookup are the natural-key resolution surfaces the
// car service needs from its sibling services.

type BrandLookup interface {
	GetByName(ctx context.Context, name string) (*entity.Brand, error)
}

type CountryLookup interface {
	GetByName(ctx context.Context, name string) (*entity.Country, error)
}

var (
	_ CarStore     = (*repository.CarRepository)(nil)
	_ BrandStore   = (*repository.BrandRepository)(nil)
	_ CountryStore = (*repository.CountryRepository)(nil)
)
