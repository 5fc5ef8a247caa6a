package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/anqasa/smarttaxi/internal/pkg/config"
	"github.com/anqasa/smarttaxi/internal/pkg/health"
	"github.com/anqasa/smarttaxi/internal/pkg/logger"
	"github.com/anqasa/smarttaxi/internal/pkg/middleware"
	wspkg "github.com/anqasa/smarttaxi/internal/pkg/websocket"
	"github.com/anqasa/smarttaxi/services/client"
	gatewayhttp "github.com/anqasa/smarttaxi/services/client/gateway/http"
	"github.com/anqasa/smarttaxi/services/client/handler"
	httpHandler "github.com/anqasa/smarttaxi/services/client/handler/http"
	"github.com/anqasa/smarttaxi/services/client/repository"
	"github.com/anqasa/smarttaxi/services/client/usecase"
)

func main() {
	appName := "taxi-client"
	configPath := ".env"
	configs := config.InitConfig(configPath)

	// Initialize Zap logger
	zapLogger, err := logger.NewZapLogger(logger.Config{
		Level:    configs.Logger.Level,
		FilePath: configs.Logger.FilePath,
	})
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()

	// Set global logger for application-wide access
	logger.SetGlobalLogger(zapLogger)

	// Log startup with global logger
	logger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	// Initialize local durable store
	stateRepo, err := repository.NewStateRepo(configs)
	if err != nil {
		zapLogger.Fatal("Failed to open local store", logger.Err(err))
	}
	defer stateRepo.Close()

	// Shared bearer credential: the session store writes it, the backend
	// gateway reads it on every authenticated request
	cred := &client.Credential{}

	// Initialize backend gateway
	backendGW := gatewayhttp.NewBackendClient(configs, cred)

	// Initialize WebSocket manager for UI push events
	wsManager := wspkg.NewManager()
	defer wsManager.Close()

	// Initialize the client runtime core
	clientUC := usecase.NewClientUC(configs, cred, backendGW, stateRepo, wsManager)
	defer clientUC.Close()

	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// Restore a previous session from the persisted credential, if any
	if err := clientUC.Restore(startupCtx); err != nil {
		logger.Warn("Session restore failed, starting anonymous", logger.Err(err))
	}

	// Obtain an initial device position and fetch reference data
	clientUC.PrimePosition(startupCtx, usecase.EnvPositionProvider{})
	clientUC.LoadCustomerServiceInfo(startupCtx)

	// Initialize handlers
	bridgeHandler := httpHandler.NewBridgeHandler(clientUC)
	h := handler.NewHandler(bridgeHandler, wsManager)

	// Initialize Echo server
	e := echo.New()
	e.HideBanner = true

	// Add middlewares (panic recovery should be first)
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	// Register health endpoints
	health.RegisterHealthEndpoints(e, appName)

	// Register bridge routes
	h.RegisterRoutes(e)

	// Start server in goroutine
	go func() {
		addr := fmt.Sprintf(":%d", configs.Bridge.Port)
		zapLogger.Info("Starting UI bridge",
			logger.String("address", addr),
			logger.String("app", appName))

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("Failed to start UI bridge", logger.Err(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	sig := <-quit
	zapLogger.Info("Received shutdown signal", logger.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Shutdown HTTP server
	zapLogger.Info("Shutting down UI bridge...")
	if err := e.Shutdown(ctx); err != nil {
		zapLogger.Error("Bridge forced to shutdown", logger.Err(err))
	}

	// Stop polling loops
	zapLogger.Info("Stopping polling loops...")
	clientUC.Close()

	// Close WebSocket connections
	wsManager.Close()

	// Close local store
	zapLogger.Info("Closing local store...")
	if err := stateRepo.Close(); err != nil {
		zapLogger.Error("Error closing local store", logger.Err(err))
	}

	zapLogger.Info("Client exiting gracefully")
	_ = zapLogger.Sync()
}
