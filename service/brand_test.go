package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RamonMR95/auto-api/apperror"
	"github.com/RamonMR95/auto-api/entity"
	"github.com/RamonMR95/auto-api/repository"
	"github.com/RamonMR95/auto-api/service"
	"github.com/RamonMR95/auto-api/validator"
)

func TestBrandService_Create_AssignsIdentifier(t *testing.T) {
	var created *entity.Brand
	store := &mockBrandStore{
		getByNameFn: func(ctx context.Context, name string) (*entity.Brand, error) {
			return nil, repository.ErrRecordNotFound
		},
		createFn: func(ctx context.Context, brand *entity.Brand) error {
			created = brand
			return nil
		},
	}
	svc := service.NewBrandService(store, validator.New(), newTestLogger())

	brand, err := svc.Create(context.Background(), &entity.Brand{Name: "Audi"})
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.NotEqual(t, uuid.Nil, brand.ID)
	assert.Equal(t, "Audi", brand.Name)
}

func TestBrandService_Create_MissingName(t *testing.T) {
	store := &mockBrandStore{
		createFn: func(ctx context.Context, brand *entity.Brand) error {
			t.Fatal("store must not be written for an invalid brand")
			return nil
		},
	}
	svc := service.NewBrandService(store, validator.New(), newTestLogger())

	_, err := svc.Create(context.Background(), &entity.Brand{})
	require.Error(t, err)

	var validation *apperror.ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, []string{"The name is required"}, validation.Errors)
}

func TestBrandService_Create_DuplicateName(t *testing.T) {
	store := &mockBrandStore{
		getByNameFn: func(ctx context.Context, name string) (*entity.Brand, error) {
			return &entity.Brand{ID: uuid.New(), Name: name}, nil
		},
		createFn: func(ctx context.Context, brand *entity.Brand) error {
			t.Fatal("store must not be written for a duplicate name")
			return nil
		},
	}
	svc := service.NewBrandService(store, validator.New(), newTestLogger())

	_, err := svc.Create(context.Background(), &entity.Brand{Name: "Audi"})
	require.Error(t, err)

	var notUnique *apperror.NotUniqueKeyError
	require.ErrorAs(t, err, &notUnique)
	assert.Equal(t, []string{"Not unique name: Audi"}, notUnique.Errors)
}

func TestBrandService_Create_DuplicateCaughtByIndex(t *testing.T) {
	// The pre-check can lose the race; the unique index error still surfaces
	// as a not-unique-key error.
	store := &mockBrandStore{
		getByNameFn: func(ctx context.Context, name string) (*entity.Brand, error) {
			return nil, repository.ErrRecordNotFound
		},
		createFn: func(ctx context.Context, brand *entity.Brand) error {
			return repository.ErrDuplicateKey
		},
	}
	svc := service.NewBrandService(store, validator.New(), newTestLogger())

	_, err := svc.Create(context.Background(), &entity.Brand{Name: "Audi"})
	require.Error(t, err)

	var notUnique *apperror.NotUniqueKeyError
	require.ErrorAs(t, err, &notUnique)
	assert.Equal(t, []string{"Not unique name: Audi"}, notUnique.Errors)
}

func TestBrandService_Update_OverwritesOnlyName(t *testing.T) {
	id := uuid.New()
	var updated *entity.Brand
	store := &mockBrandStore{
		getByIDFn: func(ctx context.Context, got uuid.UUID) (*entity.Brand, error) {
			return &entity.Brand{ID: id, Name: "Old"}, nil
		},
		updateFn: func(ctx context.Context, brand *entity.Brand) error {
			updated = brand
			return nil
		},
	}
	svc := service.NewBrandService(store, validator.New(), newTestLogger())

	brand, err := svc.Update(context.Background(), &entity.Brand{Name: "Seat"}, id.String())
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, id, brand.ID)
	assert.Equal(t, "Seat", brand.Name)
}

func TestBrandService_Update_InvalidIdentifier(t *testing.T) {
	store := &mockBrandStore{
		getByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Brand, error) {
			t.Fatal("store must not be queried for a malformed id")
			return nil, nil
		},
	}
	svc := service.NewBrandService(store, validator.New(), newTestLogger())

	_, err := svc.Update(context.Background(), &entity.Brand{Name: "Seat"}, "xyz")
	require.Error(t, err)
	assert.True(t, apperror.IsInvalidID(err))
}

func TestBrandService_GetByName_NotFound(t *testing.T) {
	store := &mockBrandStore{
		getByNameFn: func(ctx context.Context, name string) (*entity.Brand, error) {
			return nil, repository.ErrRecordNotFound
		},
	}
	svc := service.NewBrandService(store, validator.New(), newTestLogger())

	_, err := svc.GetByName(context.Background(), "Yugo")
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
	assert.Equal(t, "Cannot find a brand with name: Yugo", err.Error())
}

func TestBrandService_Delete_NotFound(t *testing.T) {
	store := &mockBrandStore{
		deleteFn: func(ctx context.Context, id uuid.UUID) error {
			return repository.ErrRecordNotFound
		},
	}
	svc := service.NewBrandService(store, validator.New(), newTestLogger())

	rawID := uuid.NewString()
	err := svc.Delete(context.Background(), rawID)
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
	assert.Equal(t, "Cannot find a brand with id: "+rawID, err.Error())
}
