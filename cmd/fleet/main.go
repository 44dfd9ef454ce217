package main

import (
	"log"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/ncastellanos/flotilla/internal/pkg/config"
	"github.com/ncastellanos/flotilla/internal/pkg/database"
	"github.com/ncastellanos/flotilla/internal/pkg/health"
	"github.com/ncastellanos/flotilla/internal/pkg/logger"
	"github.com/ncastellanos/flotilla/internal/pkg/middleware"
	natspkg "github.com/ncastellanos/flotilla/internal/pkg/nats"
	nrpkg "github.com/ncastellanos/flotilla/internal/pkg/newrelic"
	"github.com/ncastellanos/flotilla/internal/pkg/server"
	wspkg "github.com/ncastellanos/flotilla/internal/pkg/websocket"

	fleethandler "github.com/ncastellanos/flotilla/services/fleet/handler"
	fleethttp "github.com/ncastellanos/flotilla/services/fleet/handler/http"
	fleetrepo "github.com/ncastellanos/flotilla/services/fleet/repository"
	fleetuc "github.com/ncastellanos/flotilla/services/fleet/usecase"

	schedulehandler "github.com/ncastellanos/flotilla/services/schedule/handler"
	schedulehttp "github.com/ncastellanos/flotilla/services/schedule/handler/http"
	schedulerepo "github.com/ncastellanos/flotilla/services/schedule/repository"
	scheduleuc "github.com/ncastellanos/flotilla/services/schedule/usecase"

	"github.com/ncastellanos/flotilla/services/tracking/gateway"
	trackinghandler "github.com/ncastellanos/flotilla/services/tracking/handler"
	trackinghttp "github.com/ncastellanos/flotilla/services/tracking/handler/http"
	trackingnats "github.com/ncastellanos/flotilla/services/tracking/handler/nats"
	trackingws "github.com/ncastellanos/flotilla/services/tracking/handler/websocket"
	trackingrepo "github.com/ncastellanos/flotilla/services/tracking/repository"
	trackinguc "github.com/ncastellanos/flotilla/services/tracking/usecase"
)

func main() {
	appName := "fleet-server"
	configPath := os.Getenv("CONFIG_PATH")
	configs := config.InitConfig(configPath)

	nrApp := nrpkg.InitNewRelic(configs)
	if nrApp != nil {
		if err := nrApp.WaitForConnection(10 * time.Second); err != nil {
			log.Printf("Warning: New Relic connection timeout: %v", err)
		}
	}

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		zap.String("app", appName),
		zap.String("version", configs.App.Version),
		zap.String("environment", configs.App.Environment),
	)

	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer postgresClient.Close()

	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()

	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", zap.Error(err))
	}
	defer natsClient.Close()

	// Fleet service: accounts, routes, buses
	fleetRepo := fleetrepo.NewFleetRepo(configs, postgresClient)
	authUC := fleetuc.NewAuthUC(configs, fleetRepo)
	fleetUC := fleetuc.NewFleetUC(configs, fleetRepo, fleetRepo, fleetRepo)
	fleetHandler := fleethandler.NewHandler(
		fleethttp.NewAuthHandler(authUC),
		fleethttp.NewFleetHandler(fleetUC),
		configs,
	)

	// Schedule service: assignments and shift resolution
	scheduleRepo := schedulerepo.NewScheduleRepo(configs, postgresClient)
	scheduleUC, err := scheduleuc.NewScheduleUC(configs, scheduleRepo)
	if err != nil {
		zapLogger.Fatal("Failed to initialize schedule service", zap.Error(err))
	}
	scheduleHandler := schedulehandler.NewHandler(
		schedulehttp.NewScheduleHandler(scheduleUC),
		configs,
	)

	// Tracking service: location ledger and live fan-out
	trackingRepo := trackingrepo.NewTrackingRepo(configs, redisClient)
	trackingGW := gateway.NewTrackingGW(natsClient)
	trackingUC := trackinguc.NewTrackingUC(configs, trackingRepo, trackingGW)

	wsManager := wspkg.NewManager(configs.JWT)
	wsHandler := trackingws.NewWebSocketHandler(wsManager, trackingUC)
	natsHandler := trackingnats.NewNatsHandler(natsClient, wsManager)
	trackingHandler := trackinghandler.NewHandler(
		trackinghttp.NewTrackingHandler(trackingUC),
		wsHandler,
		natsHandler,
		configs,
	)
	defer trackingHandler.Stop()

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.PanicRecoveryMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	health.RegisterHealthEndpoints(e, appName)

	fleetHandler.RegisterRoutes(e)
	scheduleHandler.RegisterRoutes(e)
	if err := trackingHandler.RegisterRoutes(e); err != nil {
		zapLogger.Fatal("Failed to register tracking routes", zap.Error(err))
	}

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port)
	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server exited with error",
			zap.String("app", appName),
			zap.Error(err),
		)
	}
}
