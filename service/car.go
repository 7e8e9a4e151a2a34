package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/RamonMR95/auto-api/apperror"
	"github.com/RamonMR95/auto-api/entity"
	"github.com/RamonMR95/auto-api/infra"
	"github.com/RamonMR95/auto-api/repository"
	"github.com/RamonMR95/auto-api/utils"
	"github.com/RamonMR95/auto-api/validator"
)

// CarInput is the payload shape both ingress paths (REST and queue) hand to
// the car service. Brand and country come as natural-key names and are
// resolved against their services before anything is persisted.
type CarInput struct {
	BrandName    string
	Model        string
	Color        string
	Registration time.Time
	CountryName  string
	// Components is nil when the payload omitted the field; an empty,
	// non-nil slice is a valid empty set.
	Components []string
}

// CarService owns the car lifecycle: create, read, update, the delete-flag
// soft delete, and the hard delete used by the purge worker.
type CarService struct {
	store     CarStore
	brands    BrandLookup
	countries CountryLookup
	validator *validator.EntityValidator
	logger    *infra.LoggerClient
}

func NewCarService(store CarStore, brands BrandLookup, countries CountryLookup, v *validator.EntityValidator, logger *infra.LoggerClient) *CarService {
	return &CarService{
		store:     store,
		brands:    brands,
		countries: countries,
		validator: v,
		logger:    logger,
	}
}

// List returns the filtered and sorted catalog without a pagination window.
func (s *CarService) List(ctx context.Context, filterBy, orderBy string) ([]entity.Car, error) {
	return s.store.List(ctx, repository.CarQuery{
		FilterBy: filterBy,
		OrderBy:  orderBy,
	})
}

// ListPaginated applies the List query plus an offset/limit window. Callers
// are responsible for rejecting page < 1 or size < 0 at the ingress layer.
func (s *CarService) ListPaginated(ctx context.Context, page, size int, filterBy, orderBy string) ([]entity.Car, error) {
	return s.store.List(ctx, repository.CarQuery{
		FilterBy: filterBy,
		OrderBy:  orderBy,
		Page:     page,
		Size:     size,
	})
}

// CountFiltered reports the number of cars matching the List filter.
func (s *CarService) CountFiltered(ctx context.Context, filterBy string) (int64, error) {
	return s.store.Count(ctx, filterBy)
}

func (s *CarService) GetByID(ctx context.Context, rawID string) (*entity.Car, error) {
	id, err := utils.ParseUUID(rawID)
	if err != nil {
		return nil, err
	}
	car, err := s.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			s.logger.ErrorWithContextf(ctx, err, "[Car] Cannot find a car with id: %s", rawID)
			return nil, apperror.NewNotFound("Cannot find a car with id: %s", rawID)
		}
		return nil, err
	}
	return car, nil
}

// Create resolves the brand and country names, validates the assembled car
// and persists it. The stored row is re-fetched so the caller gets the
// canonical representation, timestamps included.
func (s *CarService) Create(ctx context.Context, input CarInput) (*entity.Car, error) {
	car, err := s.resolve(ctx, input)
	if err != nil {
		return nil, err
	}

	if errs := s.validator.Validate(car); len(errs) > 0 {
		s.logger.ErrorWithContextf(ctx, nil, "[Car] The car does not fulfill all of the validations: %v", errs)
		return nil, &apperror.ValidationError{Errors: errs}
	}

	car.ID = uuid.New()
	if err := s.store.Create(ctx, car); err != nil {
		return nil, err
	}

	created, err := s.store.GetByID(ctx, car.ID)
	if err != nil {
		return nil, err
	}

	s.logger.InfoWithContextf(ctx, "[Car] Created car with id: %s", created.ID)
	return created, nil
}

// Update fully replaces the five mutable fields (brand, country, model,
// color, registration) plus the component set from the incoming payload.
// Fetch-then-save across two store calls: last writer wins, there is no
// optimistic locking.
func (s *CarService) Update(ctx context.Context, input CarInput, rawID string) (*entity.Car, error) {
	if _, err := utils.ParseUUID(rawID); err != nil {
		return nil, err
	}

	incoming, err := s.resolve(ctx, input)
	if err != nil {
		return nil, err
	}

	existing, err := s.GetByID(ctx, rawID)
	if err != nil {
		return nil, err
	}

	if errs := s.validator.Validate(incoming); len(errs) > 0 {
		s.logger.ErrorWithContextf(ctx, nil, "[Car] The car does not fulfill all of the validations: %v", errs)
		return nil, &apperror.ValidationError{Errors: errs}
	}

	existing.BrandID = incoming.BrandID
	existing.Brand = incoming.Brand
	existing.CountryID = incoming.CountryID
	existing.Country = incoming.Country
	existing.Model = incoming.Model
	existing.Color = incoming.Color
	existing.Registration = incoming.Registration
	existing.Components = incoming.Components

	if err := s.store.Update(ctx, existing); err != nil {
		return nil, err
	}

	s.logger.InfoWithContextf(ctx, "[Car] Updated car with id: %s", existing.ID)
	return existing, nil
}

// MarkForDeletion flags the car for the scheduled purge without removing the
// row.
func (s *CarService) MarkForDeletion(ctx context.Context, rawID string) error {
	car, err := s.GetByID(ctx, rawID)
	if err != nil {
		return err
	}

	car.DeleteFlag = true
	if err := s.store.Update(ctx, car); err != nil {
		return err
	}

	s.logger.InfoWithContextf(ctx, "[Car] Marked car with id: %s for deletion", rawID)
	return nil
}

// Delete removes the row outright. Deleting an id that is already gone
// yields NotFound; the purge worker treats that as benign when it loses the
// race against a direct delete.
func (s *CarService) Delete(ctx context.Context, rawID string) error {
	id, err := utils.ParseUUID(rawID)
	if err != nil {
		return err
	}

	if err := s.store.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			s.logger.ErrorWithContextf(ctx, err, "[Car] Cannot find a car with id: %s", rawID)
			return apperror.NewNotFound("Cannot find a car with id: %s", rawID)
		}
		return err
	}

	s.logger.InfoWithContextf(ctx, "[Car] Deleted car with id: %s", rawID)
	return nil
}

// ListFlaggedForDeletion returns every car whose delete flag is set.
func (s *CarService) ListFlaggedForDeletion(ctx context.Context) ([]entity.Car, error) {
	return s.store.ListFlagged(ctx)
}

// resolve turns the payload into a car entity with resolved brand and
// country references. An unresolvable name propagates as NotFound.
func (s *CarService) resolve(ctx context.Context, input CarInput) (*entity.Car, error) {
	car := &entity.Car{
		Model:        input.Model,
		Color:        input.Color,
		Registration: input.Registration,
	}

	if input.Components != nil {
		car.Components = datatypes.JSONSlice[string](input.Components)
	}

	if input.BrandName != "" {
		brand, err := s.brands.GetByName(ctx, input.BrandName)
		if err != nil {
			return nil, err
		}
		car.BrandID = brand.ID
		car.Brand = *brand
	}

	if input.CountryName != "" {
		country, err := s.countries.GetByName(ctx, input.CountryName)
		if err != nil {
			return nil, err
		}
		car.CountryID = country.ID
		car.Country = *country
	}

	return car, nil
}
