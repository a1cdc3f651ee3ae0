package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API. Empty disables auth.
	ApiKey string `mapstructure:"api_key" default:""`
	// CORSOrigin is the allowed origin for cross-origin requests.
	CORSOrigin string `mapstructure:"cors_origin" default:"*"`
	// StaticDir is the directory the client bundle is served from.
	StaticDir string `mapstructure:"static_dir" default:"./public"`
	// Backend selects where snapshots and blobs are persisted (storage, database).
	Backend string `mapstructure:"backend" default:"storage"`
}

const (
	BackendStorage  = "storage"
	BackendDatabase = "database"
)

// IsValidBackend checks if the configured persistence backend is valid.
func (c Config) IsValidBackend() bool {
	switch c.Backend {
	case BackendStorage, BackendDatabase:
		return true
	default:
		return false
	}
}
