package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/RamonMR95/auto-api/infra"
)

// Store-agnostic sentinels. Services translate them into the API error
// taxonomy so no gorm type leaks past this package.
var (
	ErrRecordNotFound = errors.New("record not found")
	ErrDuplicateKey   = errors.New("duplicate key")
)

type Repository struct {
	Db          *gorm.DB
	CarRepo     *CarRepository
	BrandRepo   *BrandRepository
	CountryRepo *CountryRepository
}

var repository *Repository

func InitRepository(infra *infra.Infra) *Repository {
	if infra.Postgres == nil || infra.Postgres.DB == nil {
		panic("database connection is nil")
	}
	repository = &Repository{
		Db:          infra.Postgres.DB,
		CarRepo:     NewCarRepository(infra.Postgres.DB),
		BrandRepo:   NewBrandRepository(infra.Postgres.DB),
		CountryRepo: NewCountryRepository(infra.Postgres.DB),
	}
	return repository
}

func GetRepository() *Repository {
	if repository == nil {
		panic("repository not initialized")
	}
	return repository
}

func translate(err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrRecordNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicateKey
	default:
		return err
	}
}
