package main

import (
	seeder "VCS_Server_Manager/internal/server-seeder"
	"VCS_Server_Manager/internal/server-service/config"
	"VCS_Server_Manager/internal/server-service/event"
	"VCS_Server_Manager/internal/server-service/model"
	"VCS_Server_Manager/internal/server-service/repository"
	"VCS_Server_Manager/internal/server-service/service"
	"VCS_Server_Manager/pkg/infra"
	"VCS_Server_Manager/pkg/logger"
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"
)

func saveServers(ctx context.Context, envPath string, servers []model.Server) ([]model.Server, error) {
	appConfig, err := config.LoadConfig(envPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	zapLogger := logger.NewLogger(appConfig.Server.LogLevel, nil).With(zap.String("service.name", "server-seeder"))
	defer zapLogger.Sync()

	db, err := infra.NewPostgresConnection(ctx, infra.PostgresConfig{
		Host:     appConfig.Postgres.Host,
		Port:     appConfig.Postgres.Port,
		User:     appConfig.Postgres.User,
		Password: appConfig.Postgres.Password,
		DBName:   appConfig.Postgres.DBName,
	})
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	defer sqlDB.Close()

	publisher := event.NewNoopPublisher()
	if appConfig.Kafka.Enabled() {
		writer := infra.NewKafkaWriter(infra.KafkaConfig{
			Brokers:      appConfig.Kafka.Brokers,
			Topic:        appConfig.Kafka.ServerEventsTopic,
			WriteTimeout: appConfig.Kafka.WriteTimeout,
		})
		defer writer.Close()
		publisher = event.NewKafkaPublisher(writer)
	}

	serverService := service.NewServerService(repository.NewServerRepository(db), nil, publisher, nil, nil, zapLogger)
	return serverService.CreateServers(ctx, servers)
}

func main() {
	if err := seeder.NewCommand(saveServers).Execute(); err != nil {
		os.Exit(1)
	}
}
