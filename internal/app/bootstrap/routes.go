// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	errorsfeature "github.com/dalemusser/tilehub/internal/app/features/errors"
	healthfeature "github.com/dalemusser/tilehub/internal/app/features/health"
	loginfeature "github.com/dalemusser/tilehub/internal/app/features/login"
	logoutfeature "github.com/dalemusser/tilehub/internal/app/features/logout"
	settingsfeature "github.com/dalemusser/tilehub/internal/app/features/settings"
	tilesfeature "github.com/dalemusser/tilehub/internal/app/features/tiles"
	"github.com/dalemusser/tilehub/internal/app/policy/modulepolicy"
	coursestore "github.com/dalemusser/tilehub/internal/app/store/courses"
	filestore "github.com/dalemusser/tilehub/internal/app/store/files"
	modulestore "github.com/dalemusser/tilehub/internal/app/store/modules"
	prefstore "github.com/dalemusser/tilehub/internal/app/store/prefs"
	settingsstore "github.com/dalemusser/tilehub/internal/app/store/settings"
	userstore "github.com/dalemusser/tilehub/internal/app/store/users"
	"github.com/dalemusser/tilehub/internal/app/system/auth"
	"github.com/dalemusser/tilehub/internal/app/system/htmlformat"
	"github.com/dalemusser/tilehub/internal/app/system/sessionstate"
	"github.com/dalemusser/tilehub/internal/app/tiles"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. tilehub mounts the tile display
// endpoints, the admin settings API, credential sign-in, and health checks,
// plus a static file mount for locally stored module content.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Create the session manager using app config.
	// Secure cookies are enabled in production mode.
	secure := coreCfg.Env == "prod"
	sessionKey := appCfg.SessionKey
	if sessionKey == "" {
		if secure {
			logger.Error("session_key must be set in production")
			return nil, errMissingSessionKey
		}
		// Dev convenience: sessions won't survive a restart.
		sessionKey = auth.NewRandomSessionKey()
		logger.Warn("session_key not set; generated a random dev key")
	}
	sessionMgr, err := auth.NewSessionManager(sessionKey, appCfg.SessionName, appCfg.SessionDomain, secure, logger)
	if err != nil {
		logger.Error("session manager init failed", zap.Error(err))
		return nil, err
	}

	db := deps.MongoDatabase

	// Fresh user data per request so role changes and disabled accounts take
	// effect immediately.
	sessionMgr.SetUserFetcher(userstore.NewFetcher(db))

	backend, err := newStorageBackend(appCfg, logger)
	if err != nil {
		logger.Error("storage backend init failed", zap.Error(err))
		return nil, err
	}

	// Stores and the tile display service.
	settingsStore := settingsstore.New(db)
	courseStore := coursestore.New(db)
	moduleStore := modulestore.New(db)
	fileStore := filestore.New(db)
	prefStore := prefstore.New(db)
	userStore := userstore.New(db)

	policy := modulepolicy.New(moduleStore)
	formatter := htmlformat.New(appCfg.FileURL)
	svc := tiles.New(settingsStore, courseStore, moduleStore, fileStore, prefStore, policy, formatter, logger)

	sessionState := sessionstate.NewManager(sessionMgr.Store(), sessionMgr.SessionName(), logger)
	errLog := errorsfeature.NewErrorLogger(logger)

	r := chi.NewRouter()

	// Global auth middleware: loads SessionUser into context if logged in.
	r.Use(sessionMgr.LoadSessionUser)

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Locally stored module content, with pre-compressed file support
	r.Handle(appCfg.StorageLocalURL+"/*", fileserver.Handler(appCfg.StorageLocalURL, appCfg.StorageLocalPath))

	// Authentication
	loginHandler := loginfeature.NewHandler(userStore, sessionMgr, errLog, logger)
	r.Mount("/login", loginfeature.Routes(loginHandler))

	logoutHandler := logoutfeature.NewHandler(sessionMgr, logger)
	r.Mount("/logout", logoutfeature.Routes(logoutHandler))

	// Tile display endpoints
	tilesHandler := tilesfeature.NewHandler(svc, moduleStore, fileStore, backend, prefStore, sessionState, errLog, logger)
	r.Mount("/tiles", tilesfeature.Routes(tilesHandler))

	// Admin settings API
	settingsHandler := settingsfeature.NewHandler(settingsStore, errLog, logger)
	r.Mount("/settings", settingsfeature.Routes(settingsHandler))

	return r, nil
}
