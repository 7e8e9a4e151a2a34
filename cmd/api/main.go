package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"github.com/RamonMR95/auto-api/config"
	"github.com/RamonMR95/auto-api/controller"
	infraPkg "github.com/RamonMR95/auto-api/infra"
	"github.com/RamonMR95/auto-api/repository"
	routes "github.com/RamonMR95/auto-api/route"
	"github.com/RamonMR95/auto-api/scheduler"
	"github.com/RamonMR95/auto-api/service"
	"github.com/RamonMR95/auto-api/validator"
)

func main() {
	err := godotenv.Load(".env")
	if err != nil {
		log.Println("No .env file found, continuing with environment variables")
	}

	cfg := config.NewConfig()
	infra := infraPkg.InitInfra(cfg)
	repo := repository.InitRepository(infra)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := infra.Minio.EnsureFlagBucket(ctx); err != nil {
		infra.Logger.ErrorWithContextf(ctx, err, "Failed to ensure flag bucket: %v", err)
		log.Fatalf("Failed to ensure flag bucket: %v", err)
	}

	entityValidator := validator.New()
	brandService := service.NewBrandService(repo.BrandRepo, entityValidator, infra.Logger)
	countryService := service.NewCountryService(repo.CountryRepo, entityValidator, infra.Logger)
	carService := service.NewCarService(repo.CarRepo, brandService, countryService, entityValidator, infra.Logger)

	purgeScheduler, err := scheduler.NewCarPurgeScheduler(cfg.EnvConfig.Scheduler.CarPurgeCron, carService, infra.Logger)
	if err != nil {
		infra.Logger.ErrorWithContextf(ctx, err, "Failed to initialize purge scheduler: %v", err)
		log.Fatalf("Failed to initialize purge scheduler: %v", err)
	}
	purgeScheduler.Start(ctx)

	ctrl := controller.NewController(cfg, infra, carService, brandService, countryService)

	router := routes.SetupRouter(ctrl)
	if err := router.Run(":" + cfg.EnvConfig.Server.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
