// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"
	"fmt"

	filestore "github.com/dalemusser/tilehub/internal/app/store/files"
	modulestore "github.com/dalemusser/tilehub/internal/app/store/modules"
	prefstore "github.com/dalemusser/tilehub/internal/app/store/prefs"
	settingsstore "github.com/dalemusser/tilehub/internal/app/store/settings"
	userstore "github.com/dalemusser/tilehub/internal/app/store/users"
	"github.com/dalemusser/tilehub/internal/app/system/timeouts"
	"github.com/dalemusser/tilehub/internal/app/system/validators"
	"github.com/dalemusser/waffle/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// ConnectDB establishes the MongoDB connection and verifies it with a ping.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	opts := options.Client().
		ApplyURI(appCfg.MongoURI).
		SetMaxPoolSize(appCfg.MongoMaxPoolSize).
		SetMinPoolSize(appCfg.MongoMinPoolSize)

	connectCtx, cancel := context.WithTimeout(ctx, timeouts.Medium())
	defer cancel()

	client, err := mongo.Connect(connectCtx, opts)
	if err != nil {
		return DBDeps{}, fmt.Errorf("mongo connect: %w", err)
	}

	pingCtx, cancelPing := context.WithTimeout(ctx, timeouts.Ping())
	defer cancelPing()
	if err := client.Ping(pingCtx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return DBDeps{}, fmt.Errorf("mongo ping: %w", err)
	}

	logger.Info("connected to MongoDB",
		zap.String("database", appCfg.MongoDatabase))

	return DBDeps{
		MongoClient:   client,
		MongoDatabase: client.Database(appCfg.MongoDatabase),
	}, nil
}

// EnsureSchema creates indexes and collection validators on startup.
// All operations are idempotent, so redeploys are safe.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	schemaCtx, cancel := context.WithTimeout(ctx, timeouts.Long())
	defer cancel()

	db := deps.MongoDatabase

	type indexer interface {
		EnsureIndexes(ctx context.Context) error
	}
	for name, s := range map[string]indexer{
		"plugin_settings": settingsstore.New(db),
		"course_modules":  modulestore.New(db),
		"stored_files":    filestore.New(db),
		"user_prefs":      prefstore.New(db),
		"users":           userstore.New(db),
	} {
		if err := s.EnsureIndexes(schemaCtx); err != nil {
			return fmt.Errorf("ensure indexes for %s: %w", name, err)
		}
	}

	if err := validators.EnsureAll(schemaCtx, db, logger); err != nil {
		return fmt.Errorf("ensure collection validators: %w", err)
	}

	logger.Info("schema ensured")
	return nil
}
