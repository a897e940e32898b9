package main

import (
	"VCS_Server_Manager/internal/server-service/api/handler"
	"VCS_Server_Manager/internal/server-service/api/routes"
	"VCS_Server_Manager/internal/server-service/config"
	"VCS_Server_Manager/internal/server-service/event"
	"VCS_Server_Manager/internal/server-service/metrics"
	"VCS_Server_Manager/internal/server-service/prober"
	"VCS_Server_Manager/internal/server-service/repository"
	"VCS_Server_Manager/internal/server-service/service"
	"VCS_Server_Manager/internal/server-service/sweeper"
	"VCS_Server_Manager/pkg/infra"
	"VCS_Server_Manager/pkg/logger"
	"VCS_Server_Manager/pkg/mail"
	"VCS_Server_Manager/pkg/middleware"
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	appConfig, err := config.LoadConfig("./.env")
	if err != nil {
		log.Fatalf("load config error: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// set up logger
	var fileSyncer zapcore.WriteSyncer
	if appConfig.Server.LogFile != "" {
		ws, e := logger.NewReopenableWriteSyncer(appConfig.Server.LogFile)
		if e != nil {
			log.Fatalf("open log file error: %v", e)
		}
		defer ws.Close()
		fileSyncer = ws
	}
	zapLogger := logger.NewLogger(appConfig.Server.LogLevel, fileSyncer).With(zap.String("service.name", "server-service"))
	defer zapLogger.Sync()
	if ws, ok := fileSyncer.(*logger.ReopenableWriteSyncer); ok {
		ws.ReloadOnSignal(ctx, zapLogger)
	}

	// set up database
	db, err := infra.NewPostgresConnection(ctx, infra.PostgresConfig{
		Host:            appConfig.Postgres.Host,
		Port:            appConfig.Postgres.Port,
		User:            appConfig.Postgres.User,
		Password:        appConfig.Postgres.Password,
		DBName:          appConfig.Postgres.DBName,
		MaxOpenConns:    appConfig.Postgres.MaxOpenConns,
		MaxIdleConns:    appConfig.Postgres.MaxIdleConns,
		ConnMaxLifetime: appConfig.Postgres.ConnMaxLifetime,
	})
	if err != nil {
		zapLogger.Fatal("failed to connect to postgres", zap.Error(err))
	}
	zapLogger.Info("connected to postgres successfully")
	sqlDB, err := db.DB()
	if err != nil {
		zapLogger.Fatal("failed to get sql.DB from gorm", zap.Error(err))
	}
	defer sqlDB.Close()

	// set up event publisher
	publisher := event.NewNoopPublisher()
	if appConfig.Kafka.Enabled() {
		writer := infra.NewKafkaWriter(infra.KafkaConfig{
			Brokers:      appConfig.Kafka.Brokers,
			Topic:        appConfig.Kafka.ServerEventsTopic,
			WriteTimeout: appConfig.Kafka.WriteTimeout,
		})
		defer writer.Close()
		publisher = event.NewKafkaPublisher(writer)
		zapLogger.Info("publishing server events", zap.Strings("brokers", appConfig.Kafka.Brokers), zap.String("topic", appConfig.Kafka.ServerEventsTopic))
	} else {
		zapLogger.Info("kafka brokers not configured, server events are disabled")
	}

	var mailSender mail.Sender
	mailConfig := mail.Config{
		Email:    appConfig.Mail.Email,
		Password: appConfig.Mail.Password,
		Host:     appConfig.Mail.Host,
		Port:     appConfig.Mail.Port,
	}
	if mailConfig.Enabled() {
		mailSender = mail.NewMailSender(mailConfig)
	}

	// set up dependencies
	registry := metrics.NewRegistry()
	serviceMetrics := metrics.NewMetrics(registry)
	serverRepo := repository.NewServerRepository(db)
	serverProber := prober.NewICMPProber(appConfig.Server.PingTimeout, appConfig.Server.PingPrivileged)
	serverService := service.NewServerService(serverRepo, serverProber, publisher, mailSender, serviceMetrics, zapLogger)
	serverHandler := handler.NewServerHandler(handler.NewLogger(zapLogger), serverService)

	// create cronjob for daily report
	cronJob := cron.New()
	if mailSender != nil && appConfig.Report.AdminEmail != "" {
		_, err = cronJob.AddFunc(appConfig.Report.Cron, func() {
			reportCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			zapLogger.Info("cronjob called")
			if e := serverService.ReportServersStatus(reportCtx, appConfig.Report.AdminEmail); e != nil {
				zapLogger.Error("failed to send daily report", zap.Error(e))
			}
		})
		if err != nil {
			zapLogger.Fatal("failed to create cron job for daily report", zap.Error(err))
		}
		cronJob.Start()
		defer cronJob.Stop()
	} else {
		zapLogger.Info("mail or admin email not configured, daily report is disabled")
	}

	if appConfig.Sweep.Interval > 0 {
		pingSweeper := sweeper.NewSweeper(serverService, appConfig.Sweep.Interval, appConfig.Sweep.Workers, appConfig.Sweep.PageSize, zapLogger)
		pingSweeper.Start()
		defer pingSweeper.Stop()
		zapLogger.Info("ping sweep enabled", zap.Duration("interval", appConfig.Sweep.Interval))
	}

	// set up http server
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID(), serviceMetrics.Middleware())
	r.GET("/metrics", gin.WrapH(metrics.Handler(registry)))
	routes.SetUpHealthRoutes(r, infra.PostgresHealthCheck(db))
	routes.SetUpServerRoutes(r, serverHandler)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", appConfig.Server.Port),
		Handler: r,
	}
	go func() {
		zapLogger.Info(fmt.Sprintf("starting server on %s", srv.Addr))
		if e := srv.ListenAndServe(); e != nil && !errors.Is(e, http.ErrServerClosed) {
			zapLogger.Fatal("failed to start server", zap.Error(e))
		}
	}()

	<-ctx.Done()
	zapLogger.Info("shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("server forced to shutdown", zap.Error(err))
	}
	zapLogger.Info("server exiting")
}
