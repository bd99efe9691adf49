// seeder loads a YAML seed file straight into the MongoDB record store, for
// deployments that run the Records Service with STORE_BACKEND=mongo.
package main

import (
	"context"
	"flag"
	"time"

	"go.uber.org/zap"

	"sirms/backend/internal/records"
	"sirms/backend/internal/shared"
)

func main() {
	logger := shared.BootstrapLogger()
	defer logger.Sync() //nolint:errcheck

	reset := flag.Bool("reset", false, "drop the students collection before seeding")
	flag.Parse()

	if err := shared.LoadEnv(".env"); err != nil {
		logger.Info(".env file not found, using system environment variables")
	}

	cfg, err := shared.LoadRecordsConfig()
	if err != nil {
		logger.Fatal("failed to load configuration", zap.Error(err))
	}

	path := cfg.SeedFile
	if flag.NArg() > 0 {
		path = flag.Arg(0)
	}
	if path == "" {
		logger.Fatal("no seed file: pass a path or set SEED_FILE")
	}

	seed, err := records.LoadSeedFile(path)
	if err != nil {
		logger.Fatal("failed to read seed file", zap.String("file", path), zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	client, db, err := shared.ConnectMongoDB(ctx, &cfg.MongoDB)
	if err != nil {
		logger.Fatal("failed to connect to MongoDB", zap.Error(err))
	}
	defer func() {
		if err := shared.DisconnectMongoDB(client); err != nil {
			logger.Warn("error disconnecting from MongoDB", zap.Error(err))
		}
	}()

	if *reset {
		logger.Info("dropping students collection")
		if err := records.NewMongoStore(db).Drop(ctx); err != nil {
			logger.Fatal("failed to drop students collection", zap.Error(err))
		}
	}

	n, err := records.Seed(ctx, records.NewMongoStore(db), seed, logger)
	if err != nil {
		logger.Fatal("seeding failed", zap.Int("written", n), zap.Error(err))
	}
	logger.Info("seeding complete",
		zap.String("file", path),
		zap.Int("written", n),
		zap.Int("skipped", len(seed.Students)-n))
}
