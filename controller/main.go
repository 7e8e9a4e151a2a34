package controller

import (
	"context"

	"github.com/RamonMR95/auto-api/config"
	"github.com/RamonMR95/auto-api/entity"
	"github.com/RamonMR95/auto-api/infra"
	"github.com/RamonMR95/auto-api/service"
)

// Service surfaces the controllers depend on, sliced so handler tests can
// run against mocks.

type CarAPI interface {
	ListPaginated(ctx context.Context, page, size int, filterBy, orderBy string) ([]entity.Car, error)
	CountFiltered(ctx context.Context, filterBy string) (int64, error)
	GetByID(ctx context.Context, rawID string) (*entity.Car, error)
	Create(ctx context.Context, input service.CarInput) (*entity.Car, error)
	Update(ctx context.Context, input service.CarInput, rawID string) (*entity.Car, error)
	MarkForDeletion(ctx context.Context, rawID string) error
	Delete(ctx context.Context, rawID string) error
}

type BrandAPI interface {
	List(ctx context.Context) ([]entity.Brand, error)
	GetByID(ctx context.Context, rawID string) (*entity.Brand, error)
	Create(ctx context.Context, brand *entity.Brand) (*entity.Brand, error)
	Update(ctx context.Context, brand *entity.Brand, rawID string) (*entity.Brand, error)
	Delete(ctx context.Context, rawID string) error
}

type CountryAPI interface {
	List(ctx context.Context) ([]entity.Country, error)
	GetByID(ctx context.Context, rawID string) (*entity.Country, error)
	Create(ctx context.Context, country *entity.Country) (*entity.Country, error)
	Update(ctx context.Context, country *entity.Country, rawID string) (*entity.Country, error)
	SetFlagURL(ctx context.Context, rawID string, flagURL string) (*entity.Country, error)
	Delete(ctx context.Context, rawID string) error
}

type Controller struct {
	Config         *config.Config
	Infra          *infra.Infra
	CarService     CarAPI
	BrandService   BrandAPI
	CountryService CountryAPI
}

func NewController(config *config.Config, infra *infra.Infra, cars CarAPI, brands BrandAPI, countries CountryAPI) *Controller {
	if cars == nil || brands == nil || countries == nil {
		panic("Failed to initialize Controller: missing services")
	}
	return &Controller{
		Config:         config,
		Infra:          infra,
		CarService:     cars,
		BrandService:   brands,
		CountryService: countries,
	}
}
