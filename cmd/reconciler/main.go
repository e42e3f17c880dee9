package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/cryda/reconciler/internal/pkg/config"
	"github.com/cryda/reconciler/internal/pkg/database"
	"github.com/cryda/reconciler/internal/pkg/health"
	"github.com/cryda/reconciler/internal/pkg/logger"
	"github.com/cryda/reconciler/internal/pkg/middleware"
	natspkg "github.com/cryda/reconciler/internal/pkg/nats"
	"github.com/cryda/reconciler/internal/pkg/scheduler"
	"github.com/cryda/reconciler/internal/pkg/server"
	"github.com/cryda/reconciler/services/reconciler/gateway"
	"github.com/cryda/reconciler/services/reconciler/handler"
	"github.com/cryda/reconciler/services/reconciler/repository"
	"github.com/cryda/reconciler/services/reconciler/txbuilder"
	"github.com/cryda/reconciler/services/reconciler/usecase"
	"github.com/cryda/reconciler/services/reconciler/wallet"
)

func main() {
	appName := "reconciler-service"
	configPath := "config/reconciler.env"
	configs := config.InitConfig(configPath)

	// New Relic is optional; a nil application disables log forwarding.
	var nrApp *newrelic.Application
	if configs.NewRelic.Enabled && configs.NewRelic.LicenseKey != "" {
		var err error
		nrApp, err = newrelic.NewApplication(
			newrelic.ConfigAppName(configs.NewRelic.AppName),
			newrelic.ConfigLicense(configs.NewRelic.LicenseKey),
			newrelic.ConfigAppLogForwardingEnabled(true),
		)
		if err != nil {
			log.Printf("Failed to initialize New Relic: %v", err)
		}
	}

	zapLogger, err := logger.NewZapLogger(configs.Logger, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()

	logger.SetGlobalLogger(zapLogger)

	logger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	defer postgresClient.Close()

	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	defer redisClient.Close()

	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", logger.Err(err))
	}
	defer natsClient.Close()

	// Chain-facing dependencies
	walletSession, err := wallet.NewLocalWallet(configs.Chain.PrivateKey)
	if err != nil {
		zapLogger.Fatal("Failed to load wallet key", logger.Err(err))
	}
	if !walletSession.Connected() {
		logger.Warn("No signing key configured, chain submissions will be rejected")
	}

	chainGW, err := gateway.NewChainGateway(configs.Chain)
	if err != nil {
		zapLogger.Fatal("Failed to connect to chain RPC", logger.Err(err))
	}
	defer chainGW.Close()

	builder, err := txbuilder.NewBuilder(configs.Chain)
	if err != nil {
		zapLogger.Fatal("Failed to initialize transaction builder", logger.Err(err))
	}

	// Service layers
	ledgerRepo := repository.NewLedgerRepository(configs, postgresClient.GetDB())
	eventsGW := gateway.NewEventsGateway(natsClient)

	reconcilerUC, err := usecase.NewReconcilerUC(configs, ledgerRepo, chainGW, eventsGW, redisClient, builder)
	if err != nil {
		zapLogger.Fatal("Failed to initialize reconciler use case", logger.Err(err))
	}

	reconcilerHandler := handler.NewHandler(reconcilerUC, walletSession, configs)

	// HTTP server
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	healthService := health.NewService(zapLogger)
	healthService.AddChecker("postgres", postgresClient.Ping)
	healthService.AddChecker("redis", redisClient.Ping)
	healthService.AddChecker("nats", func(ctx context.Context) error {
		if !natsClient.IsConnected() {
			return fmt.Errorf("nats connection down")
		}
		return nil
	})
	healthService.AddChecker("chain", chainGW.Ping)
	health.RegisterEndpoints(e, appName, configs.App.Version, healthService)

	reconcilerHandler.RegisterRoutes(e)

	// Background sweep of stale provisional records
	sched := scheduler.NewScheduler()
	if err := sched.AddJob(configs.Scheduler.SweepProvisional, "sweep-provisional", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()
		if _, err := reconcilerUC.SweepProvisional(ctx); err != nil {
			logger.Error("Provisional sweep failed", logger.Err(err))
		}
	}); err != nil {
		zapLogger.Fatal("Failed to schedule provisional sweep", logger.Err(err))
	}
	sched.Start()
	defer sched.Stop()

	gracefulServer := server.NewGracefulServer(e, zapLogger, configs.Server.Port)
	if err := gracefulServer.Start(); err != nil {
		zapLogger.Fatal("Server error", logger.Err(err))
	}
}
