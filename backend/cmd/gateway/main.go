package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"sirms/backend/internal/auth"
	"sirms/backend/internal/gateway"
	"sirms/backend/internal/shared"
)

func main() {
	logger := shared.BootstrapLogger()
	defer logger.Sync() //nolint:errcheck

	if err := run(logger); err != nil {
		logger.Fatal("gateway failed", zap.Error(err))
	}
}

func run(logger *zap.Logger) error {
	logger.Info("starting gateway")

	if err := shared.LoadEnv(".env"); err != nil {
		logger.Info(".env file not found, using system environment variables")
	}

	config, err := shared.LoadGatewayConfig()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}
	if shared.IsDevelopment(&config.ServiceConfig) {
		shared.PrintGatewayConfig(logger, config)
	}

	// 1. Initialize gRPC Clients
	serviceClients, err := gateway.NewServiceClients(config.RecordsServiceAddr)
	if err != nil {
		return err
	}
	defer serviceClients.Close()

	// 2. Setup Routes and Middleware
	router := gateway.SetupRoutes(gateway.Deps{
		Clients:  serviceClients,
		Config:   config,
		Sessions: auth.NewSessionManager(config.Security.SessionSecret, config.Security.SessionTTL),
		Logger:   logger,
	})

	// 3. Configure Server
	server := &http.Server{
		Addr:         ":" + config.HTTPPort,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 4. Serve until a signal arrives, then drain
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("gateway listening", zap.String("port", config.HTTPPort))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down gateway")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("gateway stopped")
	return nil
}
