package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/RamonMR95/auto-api/apperror"
	"github.com/RamonMR95/auto-api/entity"
	"github.com/RamonMR95/auto-api/infra"
	"github.com/RamonMR95/auto-api/repository"
	"github.com/RamonMR95/auto-api/utils"
	"github.com/RamonMR95/auto-api/validator"
)

// CountryService implements the country CRUD plus the natural-key lookup used
// to resolve car payloads. Countries carry two natural keys (name, isoCode);
// create checks and reports both, not just the first collision.
type CountryService struct {
	store     CountryStore
	validator *validator.EntityValidator
	logger    *infra.LoggerClient
}

func NewCountryService(store CountryStore, v *validator.EntityValidator, logger *infra.LoggerClient) *CountryService {
	return &CountryService{
		store:     store,
		validator: v,
		logger:    logger,
	}
}

func (s *CountryService) List(ctx context.Context) ([]entity.Country, error) {
	return s.store.List(ctx)
}

func (s *CountryService) GetByID(ctx context.Context, rawID string) (*entity.Country, error) {
	id, err := utils.ParseUUID(rawID)
	if err != nil {
		return nil, err
	}
	country, err := s.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			s.logger.ErrorWithContextf(ctx, err, "[Country] Cannot find a country with id: %s", rawID)
			return nil, apperror.NewNotFound("Cannot find a country with id: %s", rawID)
		}
		return nil, err
	}
	return country, nil
}

func (s *CountryService) GetByName(ctx context.Context, name string) (*entity.Country, error) {
	country, err := s.store.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			s.logger.ErrorWithContextf(ctx, err, "[Country] Cannot find a country with name: %s", name)
			return nil, apperror.NewNotFound("Cannot find a country with name: %s", name)
		}
		return nil, err
	}
	return country, nil
}

func (s *CountryService) Create(ctx context.Context, country *entity.Country) (*entity.Country, error) {
	if errs := s.validator.Validate(country); len(errs) > 0 {
		s.logger.ErrorWithContextf(ctx, nil, "[Country] The country does not fulfill all of the validations: %v", errs)
		return nil, &apperror.ValidationError{Errors: errs}
	}

	// Both natural keys are checked and reported together, not
	// short-circuited. The unique indexes are the backstop on insert.
	var collisions []string
	if _, err := s.store.GetByName(ctx, country.Name); err == nil {
		collisions = append(collisions, fmt.Sprintf("Not unique name: %s", country.Name))
	} else if !errors.Is(err, repository.ErrRecordNotFound) {
		return nil, err
	}
	if _, err := s.store.GetByIsoCode(ctx, country.IsoCode); err == nil {
		collisions = append(collisions, fmt.Sprintf("Not unique isoCode: %s", country.IsoCode))
	} else if !errors.Is(err, repository.ErrRecordNotFound) {
		return nil, err
	}
	if len(collisions) > 0 {
		s.logger.ErrorWithContextf(ctx, nil, "[Country] Not unique keys: %v", collisions)
		return nil, &apperror.NotUniqueKeyError{Errors: collisions}
	}

	country.ID = uuid.New()
	if err := s.store.Create(ctx, country); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, &apperror.NotUniqueKeyError{Errors: []string{
				fmt.Sprintf("Not unique name: %s", country.Name),
				fmt.Sprintf("Not unique isoCode: %s", country.IsoCode),
			}}
		}
		return nil, err
	}

	s.logger.InfoWithContextf(ctx, "[Country] Created country with id: %s", country.ID)
	return country, nil
}

func (s *CountryService) Update(ctx context.Context, country *entity.Country, rawID string) (*entity.Country, error) {
	if _, err := utils.ParseUUID(rawID); err != nil {
		return nil, err
	}

	existing, err := s.GetByID(ctx, rawID)
	if err != nil {
		return nil, err
	}

	if errs := s.validator.Validate(country); len(errs) > 0 {
		s.logger.ErrorWithContextf(ctx, nil, "[Country] The country does not fulfill all of the validations: %v", errs)
		return nil, &apperror.ValidationError{Errors: errs}
	}

	// Mutable fields only; id and created_at stay intact.
	existing.Name = country.Name
	existing.IsoCode = country.IsoCode
	existing.FlagURL = country.FlagURL
	if err := s.store.Update(ctx, existing); err != nil {
		return nil, err
	}

	s.logger.InfoWithContextf(ctx, "[Country] Updated country with id: %s", existing.ID)
	return existing, nil
}

// SetFlagURL rewrites only the flag_url column after a flag image upload.
func (s *CountryService) SetFlagURL(ctx context.Context, rawID string, flagURL string) (*entity.Country, error) {
	existing, err := s.GetByID(ctx, rawID)
	if err != nil {
		return nil, err
	}

	existing.FlagURL = &flagURL
	if err := s.store.Update(ctx, existing); err != nil {
		return nil, err
	}

	s.logger.InfoWithContextf(ctx, "[Country] Updated flag of country with id: %s", existing.ID)
	return existing, nil
}

func (s *CountryService) Delete(ctx context.Context, rawID string) error {
	id, err := utils.ParseUUID(rawID)
	if err != nil {
		return err
	}

	if err := s.store.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			s.logger.ErrorWithContextf(ctx, err, "[Country] Cannot find a country with id: %s", rawID)
			return apperror.NewNotFound("Cannot find a country with id: %s", rawID)
		}
		return err
	}

	s.logger.InfoWithContextf(ctx, "[Country] Deleted country with id: %s", rawID)
	return nil
}
