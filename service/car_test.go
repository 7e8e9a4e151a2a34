package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/RamonMR95/auto-api/apperror"
	"github.com/RamonMR95/auto-api/entity"
	"github.com/RamonMR95/auto-api/repository"
	"github.com/RamonMR95/auto-api/service"
	"github.com/RamonMR95/auto-api/validator"
)

func fixedBrand() *entity.Brand {
	return &entity.Brand{ID: uuid.MustParse("11111111-1111-1111-1111-111111111111"), Name: "Audi"}
}

func fixedCountry() *entity.Country {
	flag := "http://flags.example.com/de.png"
	return &entity.Country{
		ID:      uuid.MustParse("22222222-2222-2222-2222-222222222222"),
		Name:    "Germany",
		IsoCode: "DE",
		FlagURL: &flag,
	}
}

func resolvingLookups() (*mockBrandLookup, *mockCountryLookup) {
	brands := &mockBrandLookup{
		getByNameFn: func(ctx context.Context, name string) (*entity.Brand, error) {
			return fixedBrand(), nil
		},
	}
	countries := &mockCountryLookup{
		getByNameFn: func(ctx context.Context, name string) (*entity.Country, error) {
			return fixedCountry(), nil
		},
	}
	return brands, countries
}

func validCarInput() service.CarInput {
	return service.CarInput{
		BrandName:    "Audi",
		Model:        "A4",
		Color:        "black",
		Registration: time.Date(2020, time.March, 1, 0, 0, 0, 0, time.UTC),
		CountryName:  "Germany",
		Components:   []string{"GPS", "Bluetooth"},
	}
}

func TestCarService_Create_ResolvesNaturalKeys(t *testing.T) {
	var created *entity.Car
	store := &mockCarStore{
		createFn: func(ctx context.Context, car *entity.Car) error {
			created = car
			return nil
		},
		getByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Car, error) {
			require.NotNil(t, created)
			require.Equal(t, created.ID, id)
			return created, nil
		},
	}
	brands, countries := resolvingLookups()
	svc := service.NewCarService(store, brands, countries, validator.New(), newTestLogger())

	car, err := svc.Create(context.Background(), validCarInput())
	require.NoError(t, err)
	require.NotNil(t, car)

	assert.NotEqual(t, uuid.Nil, car.ID)
	assert.Equal(t, fixedBrand().ID, car.BrandID)
	assert.Equal(t, fixedCountry().ID, car.CountryID)
	assert.Equal(t, "A4", car.Model)
	assert.Equal(t, "black", car.Color)
	assert.Equal(t, datatypes.JSONSlice[string]{"GPS", "Bluetooth"}, car.Components)
	assert.False(t, car.DeleteFlag)
}

func TestCarService_Create_UnknownBrandIsNotFound(t *testing.T) {
	store := &mockCarStore{
		createFn: func(ctx context.Context, car *entity.Car) error {
			t.Fatal("store must not be written when the brand cannot be resolved")
			return nil
		},
	}
	brands := &mockBrandLookup{
		getByNameFn: func(ctx context.Context, name string) (*entity.Brand, error) {
			return nil, apperror.NewNotFound("Cannot find a brand with name: %s", name)
		},
	}
	_, countries := resolvingLookups()
	svc := service.NewCarService(store, brands, countries, validator.New(), newTestLogger())

	_, err := svc.Create(context.Background(), validCarInput())
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
	assert.Contains(t, err.Error(), "Cannot find a brand with name: Audi")
}

func TestCarService_Create_CollectsAllValidationErrors(t *testing.T) {
	store := &mockCarStore{
		createFn: func(ctx context.Context, car *entity.Car) error {
			t.Fatal("store must not be written for an invalid car")
			return nil
		},
	}
	brands, countries := resolvingLookups()
	svc := service.NewCarService(store, brands, countries, validator.New(), newTestLogger())

	// Empty names skip resolution so the required-field message surfaces
	// instead of a lookup failure. Nil components means the field was absent.
	_, err := svc.Create(context.Background(), service.CarInput{})
	require.Error(t, err)

	var validation *apperror.ValidationError
	require.ErrorAs(t, err, &validation)
	assert.ElementsMatch(t, []string{
		"The brand is required",
		"The model is required",
		"The color is required",
		"The registration date is required",
		"The country is required",
		"The car components are required",
	}, validation.Errors)
}

func TestCarService_Create_EmptyComponentsIsValid(t *testing.T) {
	var created *entity.Car
	store := &mockCarStore{
		createFn: func(ctx context.Context, car *entity.Car) error {
			created = car
			return nil
		},
		getByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Car, error) {
			return created, nil
		},
	}
	brands, countries := resolvingLookups()
	svc := service.NewCarService(store, brands, countries, validator.New(), newTestLogger())

	input := validCarInput()
	input.Components = []string{}

	car, err := svc.Create(context.Background(), input)
	require.NoError(t, err)
	assert.NotNil(t, car.Components)
	assert.Empty(t, car.Components)
}

func TestCarService_GetByID_InvalidIdentifier(t *testing.T) {
	store := &mockCarStore{
		getByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Car, error) {
			t.Fatal("store must not be queried for a malformed id")
			return nil, nil
		},
	}
	brands, countries := resolvingLookups()
	svc := service.NewCarService(store, brands, countries, validator.New(), newTestLogger())

	_, err := svc.GetByID(context.Background(), "not-a-uuid")
	require.Error(t, err)
	assert.True(t, apperror.IsInvalidID(err))
	assert.False(t, apperror.IsNotFound(err))
}

func TestCarService_GetByID_NotFound(t *testing.T) {
	store := &mockCarStore{
		getByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Car, error) {
			return nil, repository.ErrRecordNotFound
		},
	}
	brands, countries := resolvingLookups()
	svc := service.NewCarService(store, brands, countries, validator.New(), newTestLogger())

	rawID := uuid.NewString()
	_, err := svc.GetByID(context.Background(), rawID)
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
	assert.Equal(t, "Cannot find a car with id: "+rawID, err.Error())
}

func TestCarService_Update_ReplacesAllMutableFields(t *testing.T) {
	existingID := uuid.New()
	existingCreatedAt := time.Date(2019, time.June, 1, 12, 0, 0, 0, time.UTC)
	existing := &entity.Car{
		ID:           existingID,
		BrandID:      uuid.New(),
		Model:        "Old model",
		Color:        "white",
		Registration: time.Date(2015, time.January, 1, 0, 0, 0, 0, time.UTC),
		CountryID:    uuid.New(),
		Components:   datatypes.JSONSlice[string]{"Radio"},
		CreatedAt:    existingCreatedAt,
	}

	var updated *entity.Car
	store := &mockCarStore{
		getByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Car, error) {
			require.Equal(t, existingID, id)
			return existing, nil
		},
		updateFn: func(ctx context.Context, car *entity.Car) error {
			updated = car
			return nil
		},
	}
	brands, countries := resolvingLookups()
	svc := service.NewCarService(store, brands, countries, validator.New(), newTestLogger())

	input := validCarInput()
	car, err := svc.Update(context.Background(), input, existingID.String())
	require.NoError(t, err)
	require.NotNil(t, updated)

	assert.Equal(t, existingID, car.ID)
	assert.Equal(t, existingCreatedAt, car.CreatedAt)
	assert.Equal(t, fixedBrand().ID, car.BrandID)
	assert.Equal(t, fixedCountry().ID, car.CountryID)
	assert.Equal(t, input.Model, car.Model)
	assert.Equal(t, input.Color, car.Color)
	assert.True(t, input.Registration.Equal(car.Registration))
	assert.Equal(t, datatypes.JSONSlice[string]{"GPS", "Bluetooth"}, car.Components)
}

func TestCarService_Update_UnknownIdentifier(t *testing.T) {
	store := &mockCarStore{
		getByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Car, error) {
			return nil, repository.ErrRecordNotFound
		},
		updateFn: func(ctx context.Context, car *entity.Car) error {
			t.Fatal("store must not be written for an unknown id")
			return nil
		},
	}
	brands, countries := resolvingLookups()
	svc := service.NewCarService(store, brands, countries, validator.New(), newTestLogger())

	_, err := svc.Update(context.Background(), validCarInput(), uuid.NewString())
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}

func TestCarService_MarkForDeletion_SetsFlag(t *testing.T) {
	id := uuid.New()
	var updated *entity.Car
	store := &mockCarStore{
		getByIDFn: func(ctx context.Context, got uuid.UUID) (*entity.Car, error) {
			return &entity.Car{ID: id}, nil
		},
		updateFn: func(ctx context.Context, car *entity.Car) error {
			updated = car
			return nil
		},
	}
	brands, countries := resolvingLookups()
	svc := service.NewCarService(store, brands, countries, validator.New(), newTestLogger())

	require.NoError(t, svc.MarkForDeletion(context.Background(), id.String()))
	require.NotNil(t, updated)
	assert.Equal(t, id, updated.ID)
	assert.True(t, updated.DeleteFlag)
}

func TestCarService_Delete_SecondCallIsNotFound(t *testing.T) {
	id := uuid.New()
	deleted := map[uuid.UUID]bool{}
	store := &mockCarStore{
		deleteFn: func(ctx context.Context, got uuid.UUID) error {
			if deleted[got] {
				return repository.ErrRecordNotFound
			}
			deleted[got] = true
			return nil
		},
	}
	brands, countries := resolvingLookups()
	svc := service.NewCarService(store, brands, countries, validator.New(), newTestLogger())

	require.NoError(t, svc.Delete(context.Background(), id.String()))

	err := svc.Delete(context.Background(), id.String())
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}

func TestCarService_ListPaginated_BuildsQuery(t *testing.T) {
	var captured repository.CarQuery
	store := &mockCarStore{
		listFn: func(ctx context.Context, query repository.CarQuery) ([]entity.Car, error) {
			captured = query
			return nil, nil
		},
	}
	brands, countries := resolvingLookups()
	svc := service.NewCarService(store, brands, countries, validator.New(), newTestLogger())

	_, err := svc.ListPaginated(context.Background(), 3, 10, "audi", "-registration")
	require.NoError(t, err)
	assert.Equal(t, repository.CarQuery{
		FilterBy: "audi",
		OrderBy:  "-registration",
		Page:     3,
		Size:     10,
	}, captured)
}

func TestCarService_ListFlaggedForDeletion_PropagatesStoreError(t *testing.T) {
	storeErr := errors.New("connection reset")
	store := &mockCarStore{
		listFlaggedFn: func(ctx context.Context) ([]entity.Car, error) {
			return nil, storeErr
		},
	}
	brands, countries := resolvingLookups()
	svc := service.NewCarService(store, brands, countries, validator.New(), newTestLogger())

	_, err := svc.ListFlaggedForDeletion(context.Background())
	assert.ErrorIs(t, err, storeErr)
}
