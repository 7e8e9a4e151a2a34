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

// BrandService implements the brand CRUD plus the natural-key lookup used to
// resolve car payloads.
type BrandService struct {
	store     BrandStore
	validator *validator.EntityValidator
	logger    *infra.LoggerClient
}

func NewBrandService(store BrandStore, v *validator.EntityValidator, logger *infra.LoggerClient) *BrandService {
	return &BrandService{
		store:     store,
		validator: v,
		logger:    logger,
	}
}

func (s *BrandService) List(ctx context.Context) ([]entity.Brand, error) {
	return s.store.List(ctx)
}

func (s *BrandService) GetByID(ctx context.Context, rawID string) (*entity.Brand, error) {
	id, err := utils.ParseUUID(rawID)
	if err != nil {
		return nil, err
	}
	brand, err := s.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			s.logger.ErrorWithContextf(ctx, err, "[Brand] Cannot find a brand with id: %s", rawID)
			return nil, apperror.NewNotFound("Cannot find a brand with id: %s", rawID)
		}
		return nil, err
	}
	return brand, nil
}

func (s *BrandService) GetByName(ctx context.Context, name string) (*entity.Brand, error) {
	brand, err := s.store.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			s.logger.ErrorWithContextf(ctx, err, "[Brand] Cannot find a brand with name: %s", name)
			return nil, apperror.NewNotFound("Cannot find a brand with name: %s", name)
		}
		return nil, err
	}
	return brand, nil
}

func (s *BrandService) Create(ctx context.Context, brand *entity.Brand) (*entity.Brand, error) {
	if errs := s.validator.Validate(brand); len(errs) > 0 {
		s.logger.ErrorWithContextf(ctx, nil, "[Brand] The brand does not fulfill all of the validations: %v", errs)
		return nil, &apperror.ValidationError{Errors: errs}
	}

	// Fast-path pre-check for a friendly error message. The unique index is
	// the authoritative backstop, caught below on insert.
	if _, err := s.store.GetByName(ctx, brand.Name); err == nil {
		s.logger.ErrorWithContextf(ctx, nil, "[Brand] Not unique name: %s", brand.Name)
		return nil, &apperror.NotUniqueKeyError{Errors: []string{fmt.Sprintf("Not unique name: %s", brand.Name)}}
	} else if !errors.Is(err, repository.ErrRecordNotFound) {
		return nil, err
	}

	brand.ID = uuid.New()
	if err := s.store.Create(ctx, brand); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, &apperror.NotUniqueKeyError{Errors: []string{fmt.Sprintf("Not unique name: %s", brand.Name)}}
		}
		return nil, err
	}

	s.logger.InfoWithContextf(ctx, "[Brand] Created brand with id: %s", brand.ID)
	return brand, nil
}

func (s *BrandService) Update(ctx context.Context, brand *entity.Brand, rawID string) (*entity.Brand, error) {
	if _, err := utils.ParseUUID(rawID); err != nil {
		return nil, err
	}

	existing, err := s.GetByID(ctx, rawID)
	if err != nil {
		return nil, err
	}

	if errs := s.validator.Validate(brand); len(errs) > 0 {
		s.logger.ErrorWithContextf(ctx, nil, "[Brand] The brand does not fulfill all of the validations: %v", errs)
		return nil, &apperror.ValidationError{Errors: errs}
	}

	// Only the mutable field is overwritten; id and created_at stay intact.
	existing.Name = brand.Name
	if err := s.store.Update(ctx, existing); err != nil {
		return nil, err
	}

	s.logger.InfoWithContextf(ctx, "[Brand] Updated brand with id: %s", existing.ID)
	return existing, nil
}

func (s *BrandService) Delete(ctx context.Context, rawID string) error {
	id, err := utils.ParseUUID(rawID)
	if err != nil {
		return err
	}

	if err := s.store.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			s.logger.ErrorWithContextf(ctx, err, "[Brand] Cannot find a brand with id: %s", rawID)
			return apperror.NewNotFound("Cannot find a brand with id: %s", rawID)
		}
		return err
	}

	s.logger.InfoWithContextf(ctx, "[Brand] Deleted brand with id: %s", rawID)
	return nil
}
