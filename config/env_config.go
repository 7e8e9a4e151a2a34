package config

import (
	"os"
	"strconv"
)

type EnvConfig struct {
	Postgres struct {
		Host     string
		Database string
		Username string
		Password string
		Port     string
	}
	JWT struct {
		SecretKey string
		Expire    int
	}
	CORS struct {
		AllowDomains string
	}
	RabbitMQ struct {
		Host     string
		Port     string
		Username string
		Password string
	}
	Minio struct {
		Endpoint     string
		RootUser     string
		RootPassword string
		FlagBucket   string
		UseSSL       bool
	}
	Scheduler struct {
		// Six-field cron expression (seconds minutes hours dom month dow)
		// driving the car purge worker.
		CarPurgeCron string
	}
	Grafana struct {
		OTLPEndpoint string
		ServiceName  string
	}
	Server struct {
		Port string
	}
	Environment struct {
		Mode string
	}
}

func LoadEnvConfig() *EnvConfig {
	var config EnvConfig

	// Postgres
	config.Postgres.Host = os.Getenv("POSTGRES_HOST")
	config.Postgres.Database = os.Getenv("POSTGRES_DB")
	config.Postgres.Username = os.Getenv("POSTGRES_USER")
	config.Postgres.Password = os.Getenv("POSTGRES_PASSWORD")
	config.Postgres.Port = os.Getenv("POSTGRES_PORT")

	// JWT
	config.JWT.SecretKey = os.Getenv("JWT_SECRET_KEY")
	if val := os.Getenv("JWT_EXPIRE"); val != "" {
		if expire, err := strconv.Atoi(val); err == nil {
			config.JWT.Expire = expire
		}
	}
	if config.JWT.Expire == 0 {
		config.JWT.Expire = 3600
	}

	// CORS
	config.CORS.AllowDomains = os.Getenv("CORS_ALLOW_DOMAINS")

	// RabbitMQ
	config.RabbitMQ.Host = os.Getenv("RABBITMQ_HOST")
	config.RabbitMQ.Port = os.Getenv("RABBITMQ_PORT")
	config.RabbitMQ.Username = os.Getenv("RABBITMQ_USER")
	config.RabbitMQ.Password = os.Getenv("RABBITMQ_PASSWORD")

	// MinIO
	config.Minio.Endpoint = os.Getenv("MINIO_ENDPOINT")
	config.Minio.RootUser = os.Getenv("MINIO_ROOT_USER")
	config.Minio.RootPassword = os.Getenv("MINIO_ROOT_PASSWORD")
	config.Minio.FlagBucket = os.Getenv("MINIO_FLAG_BUCKET")
	if config.Minio.FlagBucket == "" {
		config.Minio.FlagBucket = "flags"
	}
	if val := os.Getenv("MINIO_USE_SSL"); val != "" {
		if useSSL, err := strconv.ParseBool(val); err == nil {
			config.Minio.UseSSL = useSSL
		}
	}

	// Scheduler
	config.Scheduler.CarPurgeCron = os.Getenv("CARS_DELETION_CRON_EXPRESSION")
	if config.Scheduler.CarPurgeCron == "" {
		config.Scheduler.CarPurgeCron = "0 */15 * * * *"
	}

	// Observability
	config.Grafana.OTLPEndpoint = os.Getenv("OTLP_ENDPOINT")
	config.Grafana.ServiceName = os.Getenv("OTLP_SERVICE_NAME")
	if config.Grafana.ServiceName == "" {
		config.Grafana.ServiceName = "auto-api"
	}

	// Server
	config.Server.Port = os.Getenv("SERVER_PORT")
	if config.Server.Port == "" {
		config.Server.Port = "8080"
	}

	config.Environment.Mode = os.Getenv("ENVIRONMENT_MODE")

	return &config
}
