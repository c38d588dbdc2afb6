// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	settingsstore "github.com/dalemusser/tilehub/internal/app/store/settings"
	"github.com/dalemusser/tilehub/internal/app/system/release"
	"github.com/dalemusser/tilehub/internal/app/system/timeouts"
	"github.com/dalemusser/tilehub/internal/domain/models"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization after DB connections and
// schema setup are complete, but before the HTTP handler is built.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	logger.Info("tilehub starting",
		zap.String("release", release.Release),
		zap.String("database", appCfg.MongoDatabase),
		zap.String("storage", appCfg.StorageType))

	if n := timeouts.ConfigureFromEnv(); n > 0 {
		logger.Info("timeout overrides applied", zap.Int("count", n))
	}

	checkCtx, cancel := context.WithTimeout(ctx, timeouts.Short())
	defer cancel()
	host := release.HostMajorMinor(checkCtx, settingsstore.New(deps.MongoDatabase), models.CoreScope)
	if !release.SupportsHost(host) {
		logger.Warn("host platform release is older than this service supports",
			zap.Float64("host_release", host),
			zap.Float64("min_supported", release.MinHostRelease),
			zap.Float64("service_release", release.ServiceMajorMinor()))
	}
	return nil
}
