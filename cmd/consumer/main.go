package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/RamonMR95/auto-api/config"
	"github.com/RamonMR95/auto-api/consumer/worker"
	infraPkg "github.com/RamonMR95/auto-api/infra"
	"github.com/RamonMR95/auto-api/infra/produce"
	"github.com/RamonMR95/auto-api/repository"
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

	// Declares the cars queue before the consumer binds to it.
	produce.InitProduce(infra.RabbitMQ.Channel)

	entityValidator := validator.New()
	brandService := service.NewBrandService(repo.BrandRepo, entityValidator, infra.Logger)
	countryService := service.NewCountryService(repo.CountryRepo, entityValidator, infra.Logger)
	carService := service.NewCarService(repo.CarRepo, brandService, countryService, entityValidator, infra.Logger)

	carConsumer := worker.NewCarConsumer(infra.RabbitMQ.Channel, infra, carService)
	if err := carConsumer.Start(ctx); err != nil {
		infra.Logger.ErrorWithContextf(ctx, err, "Failed to start Car consumer: %v", err)
		log.Fatalf("Failed to start Car consumer: %v", err)
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	infra.Logger.InfoWithContextf(ctx, "Shutting down consumer...")
	cancel()

	infra.RabbitMQ.Close()

	infra.Logger.InfoWithContextf(ctx, "Consumer exited properly")
	_ = infra.Logger.Shutdown(context.Background())
}
