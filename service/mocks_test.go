package service_test

import (
	"context"

	"github.com/google/uuid"

	"github.com/RamonMR95/auto-api/config"
	"github.com/RamonMR95/auto-api/entity"
	"github.com/RamonMR95/auto-api/infra"
	"github.com/RamonMR95/auto-api/repository"
	"github.com/RamonMR95/auto-api/service"
)

func newTestLogger() *infra.LoggerClient {
	return infra.InitLoggerClient(&config.EnvConfig{})
}

// ---- mock CarStore ---------------------------------------------------------

type mockCarStore struct {
	listFn        func(ctx context.Context, query repository.CarQuery) ([]entity.Car, error)
	countFn       func(ctx context.Context, filterBy string) (int64, error)
	getByIDFn     func(ctx context.Context, id uuid.UUID) (*entity.Car, error)
	createFn      func(ctx context.Context, car *entity.Car) error
	updateFn      func(ctx context.Context, car *entity.Car) error
	deleteFn      func(ctx context.Context, id uuid.UUID) error
	listFlaggedFn func(ctx context.Context) ([]entity.Car, error)
}

func (m *mockCarStore) List(ctx context.Context, query repository.CarQuery) ([]entity.Car, error) {
	return m.listFn(ctx, query)
}
func (m *mockCarStore) Count(ctx context.Context, filterBy string) (int64, error) {
	return m.countFn(ctx, filterBy)
}
func (m *mockCarStore) GetByID(ctx context.Context, id uuid.UUID) (*entity.Car, error) {
	return m.getByIDFn(ctx, id)
}
func (m *mockCarStore) Create(ctx context.Context, car *entity.Car) error {
	return m.createFn(ctx, car)
}
func (m *mockCarStore) Update(ctx context.Context, car *entity.Car) error {
	return m.updateFn(ctx, car)
}
func (m *mockCarStore) Delete(ctx context.Context, id uuid.UUID) error {
	return m.deleteFn(ctx, id)
}
func (m *mockCarStore) ListFlagged(ctx context.Context) ([]entity.Car, error) {
	return m.listFlaggedFn(ctx)
}

var _ service.CarStore = (*mockCarStore)(nil)

// ---- mock BrandStore -------------------------------------------------------

type mockBrandStore struct {
	listFn      func(ctx context.Context) ([]entity.Brand, error)
	getByIDFn   func(ctx context.Context, id uuid.UUID) (*entity.Brand, error)
	getByNameFn func(ctx context.Context, name string) (*entity.Brand, error)
	createFn    func(ctx context.Context, brand *entity.Brand) error
	updateFn    func(ctx context.Context, brand *entity.Brand) error
	deleteFn    func(ctx context.Context, id uuid.UUID) error
}

func (m *mockBrandStore) List(ctx context.Context) ([]entity.Brand, error) {
	return m.listFn(ctx)
}
func (m *mockBrandStore) GetByID(ctx context.Context, id uuid.UUID) (*entity.Brand, error) {
	return m.getByIDFn(ctx, id)
}
func (m *mockBrandStore) GetByName(ctx context.Context, name string) (*entity.Brand, error) {
	return m.getByNameFn(ctx, name)
}
func (m *mockBrandStore) Create(ctx context.Context, brand *entity.Brand) error {
	return m.createFn(ctx, brand)
}
func (m *mockBrandStore) Update(ctx context.Context, brand *entity.Brand) error {
	return m.updateFn(ctx, brand)
}
func (m *mockBrandStore) Delete(ctx context.Context, id uuid.UUID) error {
	return m.deleteFn(ctx, id)
}

var _ service.BrandStore = (*mockBrandStore)(nil)

// ---- mock CountryStore -----------------------------------------------------

type mockCountryStore struct {
	listFn         func(ctx context.Context) ([]entity.Country, error)
	getByIDFn      func(ctx context.Context, id uuid.UUID) (*entity.Country, error)
	getByNameFn    func(ctx context.Context, name string) (*entity.Country, error)
	getByIsoCodeFn func(ctx context.Context, isoCode string) (*entity.Country, error)
	createFn       func(ctx context.Context, country *entity.Country) error
	updateFn       func(ctx context.Context, country *entity.Country) error
	deleteFn       func(ctx context.Context, id uuid.UUID) error
}

func (m *mockCountryStore) List(ctx context.Context) ([]entity.Country, error) {
	return m.listFn(ctx)
}
func (m *mockCountryStore) GetByID(ctx context.Context, id uuid.UUID) (*entity.Country, error) {
	return m.getByIDFn(ctx, id)
}
func (m *mockCountryStore) GetByName(ctx context.Context, name string) (*entity.Country, error) {
	return m.getByNameFn(ctx, name)
}
func (m *mockCountryStore) GetByIsoCode(ctx context.Context, isoCode string) (*entity.Country, error) {
	return m.getByIsoCodeFn(ctx, isoCode)
}
func (m *mockCountryStore) Create(ctx context.Context, country *entity.Country) error {
	return m.createFn(ctx, country)
}
func (m *mockCountryStore) Update(ctx context.Context, country *entity.Country) error {
	return m.updateFn(ctx, country)
}
func (m *mockCountryStore) Delete(ctx context.Context, id uuid.UUID) error {
	return m.deleteFn(ctx, id)
}

var _ service.CountryStore = (*mockCountryStore)(nil)

// ---- mock lookups ----------------------------------------------------------

type mockBrandLookup struct {
	getByNameFn func(ctx context.Context, name string) (*entity.Brand, error)
}

func (m *mockBrandLookup) GetByName(ctx context.Context, name string) (*entity.Brand, error) {
	return m.getByNameFn(ctx, name)
}

type mockCountryLookup struct {
	getByNameFn func(ctx context.Context, name string) (*entity.Country, error)
}

func (m *mockCountryLookup) GetByName(ctx context.Context, name string) (*entity.Country, error) {
	return m.getByNameFn(ctx, name)
}
