package infra

import (
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/RamonMR95/auto-api/config"
	"github.com/RamonMR95/auto-api/entity"
)

type PostgresClient struct {
	DB *gorm.DB
}

func InitPostgresClient(cfg *config.EnvConfig) *PostgresClient {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.Postgres.Host,
		cfg.Postgres.Username,
		cfg.Postgres.Password,
		cfg.Postgres.Database,
		cfg.Postgres.Port,
	)

	// TranslateError surfaces unique-constraint violations as
	// gorm.ErrDuplicatedKey, the backstop behind the natural-key pre-checks.
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		log.Printf("Failed to connect to Postgres: %v", err)
		return nil
	}

	if err := db.AutoMigrate(&entity.Brand{}, &entity.Country{}, &entity.Car{}); err != nil {
		log.Printf("Failed to migrate database schema: %v", err)
		return nil
	}

	return &PostgresClient{DB: db}
}
