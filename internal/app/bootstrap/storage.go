// internal/app/bootstrap/storage.go
package bootstrap

import (
	"errors"
	"fmt"

	"github.com/dalemusser/waffle/pantry/storage"
	"go.uber.org/zap"
)

var errMissingSessionKey = errors.New("session_key is required in production")

// newStorageBackend builds the file storage backend from app config.
// ValidateConfig already rejected unsupported types; the switch stays so a
// future backend slots in here.
func newStorageBackend(appCfg AppConfig, logger *zap.Logger) (storage.Store, error) {
	switch appCfg.StorageType {
	case "local":
		backend, err := storage.NewLocal(storage.LocalConfig{
			BasePath: appCfg.StorageLocalPath,
			BaseURL:  appCfg.StorageLocalURL,
		})
		if err != nil {
			return nil, fmt.Errorf("local storage at %s: %w", appCfg.StorageLocalPath, err)
		}
		logger.Info("local file storage ready",
			zap.String("path", appCfg.StorageLocalPath),
			zap.String("url", appCfg.StorageLocalURL))
		return backend, nil
	default:
		return nil, fmt.Errorf("unsupported storage_type %q", appCfg.StorageType)
	}
}
