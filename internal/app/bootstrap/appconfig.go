// internal/app/bootstrap/appconfig.go
package bootstrap

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// WAFFLE's CoreConfig handles framework-level settings (ports, TLS, logging
// level, CORS, timeouts). AppConfig is everything specific to tilehub:
// backing stores, session cookies, and where module content files live and
// get served from.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64 // Max connection pool size
	MongoMinPoolSize uint64 // Min connection pool size

	// Session management configuration
	SessionKey    string // Secret key for signing session cookies (must be strong in production)
	SessionName   string // Cookie name for sessions (default: tilehub-session)
	SessionDomain string // Cookie domain (blank means current host)

	// File storage configuration
	StorageType      string // Storage backend: "local" is the only supported value
	StorageLocalPath string // Local storage path (e.g., "./uploads/content")
	StorageLocalURL  string // URL prefix for serving local files (e.g., "/files/content")

	// FileURL is the serving prefix substituted for file placeholders in
	// authored module HTML (e.g., "/pluginfile").
	FileURL string
}
