// ============================================================================
// backend/cmd/records/main.go
// Entry point for the Records Service
// ============================================================================

package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	pb "sirms/backend/internal/pb/records"
	"sirms/backend/internal/records"
	"sirms/backend/internal/shared"
)

func main() {
	logger := shared.BootstrapLogger()
	defer logger.Sync() //nolint:errcheck

	if err := run(logger); err != nil {
		logger.Fatal("records service failed", zap.Error(err))
	}
}

func run(logger *zap.Logger) error {
	// Load environment variables
	if err := shared.LoadEnv(".env"); err != nil {
		logger.Info(".env file not found, using system environment variables")
	}

	config, err := shared.LoadRecordsConfig()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}
	if shared.IsDevelopment(&config.ServiceConfig) {
		shared.PrintRecordsConfig(logger, config)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Select the record store
	var store records.Store
	switch config.StoreBackend {
	case shared.StoreMongo:
		mongoClient, db, err := shared.ConnectMongoDB(ctx, &config.MongoDB)
		if err != nil {
			return err
		}
		defer func() {
			if err := shared.DisconnectMongoDB(mongoClient); err != nil {
				logger.Warn("error disconnecting from MongoDB", zap.Error(err))
			}
		}()
		store = records.NewMongoStore(db)
	default:
		store = records.NewMemoryStore()
	}
	logger.Info("record store ready", zap.String("backend", config.StoreBackend))

	if config.SeedFile != "" {
		seed, err := records.LoadSeedFile(config.SeedFile)
		if err != nil {
			return err
		}
		n, err := records.Seed(ctx, store, seed, logger)
		if err != nil {
			return fmt.Errorf("seed records: %w", err)
		}
		logger.Info("seed loaded", zap.String("file", config.SeedFile), zap.Int("students", n))
	}

	// Create gRPC server with configuration
	grpcServer := grpc.NewServer(
		grpc.MaxRecvMsgSize(config.GRPC.MaxRecvMsgSize),
		grpc.MaxSendMsgSize(config.GRPC.MaxSendMsgSize),
		grpc.UnaryInterceptor(records.LoggingInterceptor(logger)),
	)

	registry := records.NewRegistry(store, logger)
	pb.RegisterRecordServiceServer(grpcServer, records.NewRecordService(registry, logger))

	// Register health check service
	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus(pb.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	if shared.IsDevelopment(&config.ServiceConfig) {
		reflection.Register(grpcServer)
	}

	listener, err := net.Listen("tcp", ":"+config.ServicePort)
	if err != nil {
		return fmt.Errorf("listen on port %s: %w", config.ServicePort, err)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("records service listening", zap.String("port", config.ServicePort))
		if err := grpcServer.Serve(listener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down records service")
		healthServer.SetServingStatus(pb.ServiceName, grpc_health_v1.HealthCheckResponse_NOT_SERVING)
		grpcServer.GracefulStop()
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("records service stopped")
	return nil
}
