// Package config loads the service configuration from the environment.
// An optional .env file is honoured for local development; every field
// carries a default so a bare environment still yields a runnable service.
package config

import (
	"fmt"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
)

// Config aggregates every tunable the service reads at startup. It is
// immutable after Load returns.
type Config struct {
	HTTP HTTPConfig
	DB   DBConfig
	Log  LogConfig
}

// HTTPConfig drives the API server: where to listen and how routes are
// prefixed as {path}/{version}/{suffix}.
type HTTPConfig struct {
	Address string `env:"HTTP_ADDRESS,default=localhost:8082"`
	Path    string `env:"API_PATH,default=/api"`
	Version string `env:"API_VERSION,default=1.0"`
	CORS    CORSConfig
	TLS     TLSConfig
}

// CORSConfig controls whether and how the allow-origin policy is installed.
// Slice values are semicolon-separated in the environment.
type CORSConfig struct {
	Enabled          bool     `env:"CORS_ENABLED,default=false"`
	Origins          []string `env:"CORS_ORIGINS,default=*"`
	Methods          []string `env:"CORS_METHODS,default=GET;OPTIONS"`
	Headers          []string `env:"CORS_HEADERS,default=Content-Type"`
	AllowCredentials bool     `env:"CORS_ALLOW_CREDENTIALS,default=false"`
}

// TLSConfig is carried for deployments that terminate TLS in front of the
// service; the server itself does not terminate TLS.
type TLSConfig struct {
	CertFile string `env:"TLS_CERT_FILE,default="`
	KeyFile  string `env:"TLS_KEY_FILE,default="`
}

// DBConfig locates the backing store.
type DBConfig struct {
	Path string `env:"DB_PATH,default=postgresql://localhost:5432/postgres"`
}

// LogConfig selects the process-wide logging behaviour.
type LogConfig struct {
	Level  string `env:"LOG_LEVEL,default=info"`
	Format string `env:"LOG_FORMAT,default=text"`
}

// Load reads an optional .env file, then decodes the configuration from the
// environment. Call once at startup.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("decode config from environment: %w", err)
	}
	return &cfg, nil
}
