// Package config provides functionality for managing configuration options
// for the portal server and the login client using command-line flags,
// an optional JSON config file and environment variables.
//
// Precedence, lowest to highest: flag defaults and values, config file, environment.
package config

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"
)

// ServerOptions holds the configuration values for the portal API server.
type ServerOptions struct {
	// Addr defines the server's listening address (ip:port).
	Addr string `json:"addr"`

	// DatabaseDSN holds the PostgreSQL connection string.
	DatabaseDSN string `json:"database_dsn"`

	// JWTSecret signs access tokens.
	JWTSecret string `json:"jwt_secret"`

	// AccessTTL is the lifetime of issued access tokens.
	AccessTTL time.Duration `json:"access_ttl"`

	// RefreshTTL is the lifetime of issued refresh tokens.
	RefreshTTL time.Duration `json:"refresh_ttl"`

	// CleanupInterval is how often expired refresh tokens are purged.
	CleanupInterval time.Duration `json:"cleanup_interval"`

	// TLSCert and TLSKey enable HTTPS when both are set.
	TLSCert string `json:"tls_cert"`
	TLSKey  string `json:"tls_key"`

	// LogLevel is passed to logger.Init.
	LogLevel string `json:"log_level"`

	// Seed inserts a demo seller and store on startup.
	Seed bool `json:"seed"`

	// Config is the path to the Config file.
	Config string `json:"-"`
}

// ClientOptions holds the configuration values for the login client.
type ClientOptions struct {
	// BaseURL is the portal API root, e.g. https://portal.example.com.
	BaseURL string `json:"base_url"`

	// CAFile is an optional PEM bundle trusted in addition to system roots.
	CAFile string `json:"ca_file"`

	// Timeout bounds every HTTP request.
	Timeout time.Duration `json:"timeout"`

	// SessionBackend selects where session keys are written: "file" or "redis".
	SessionBackend string `json:"session_backend"`

	// SessionFile is the path used by the file backend.
	SessionFile string `json:"session_file"`

	// RedisAddr is the address used by the redis backend.
	RedisAddr string `json:"redis_addr"`

	// RedisPrefix namespaces session keys in redis.
	RedisPrefix string `json:"redis_prefix"`

	// LogLevel is passed to logger.Init.
	LogLevel string `json:"log_level"`

	// Config is the path to the Config file.
	Config string `json:"-"`
}

// Session backends understood by the client.
const (
	BackendFile  = "file"
	BackendRedis = "redis"
)

// ParseServer parses server flags from args into fs, then applies the
// config file and environment overrides.
func ParseServer(fs *flag.FlagSet, args []string) (*ServerOptions, error) {
	opts := &ServerOptions{}
	fs.StringVar(&opts.Addr, "a", "localhost:8080", "run on ip:port server")
	fs.StringVar(&opts.DatabaseDSN, "d", "", "db address")
	fs.StringVar(&opts.JWTSecret, "jwt-secret", "", "secret used to sign access tokens")
	fs.DurationVar(&opts.AccessTTL, "access-ttl", 15*time.Minute, "access token lifetime")
	fs.DurationVar(&opts.RefreshTTL, "refresh-ttl", 30*24*time.Hour, "refresh token lifetime")
	fs.DurationVar(&opts.CleanupInterval, "cleanup-interval", time.Hour, "expired refresh token cleanup interval")
	fs.StringVar(&opts.TLSCert, "tls-cert", "", "path to TLS certificate")
	fs.StringVar(&opts.TLSKey, "tls-key", "", "path to TLS key")
	fs.StringVar(&opts.LogLevel, "log-level", "info", "log level")
	fs.BoolVar(&opts.Seed, "seed", false, "insert a demo seller and store")
	fs.StringVar(&opts.Config, "config", "config.json", "path to config file")
	fs.StringVar(&opts.Config, "c", "config.json", "path to config file (shorthand)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if configPath := os.Getenv("CONFIG"); configPath != "" {
		opts.Config = configPath
	}
	if err := loadFile(opts.Config, opts); err != nil {
		return nil, err
	}

	if v := os.Getenv("SERVER_ADDRESS"); v != "" {
		opts.Addr = v
	}
	if v := os.Getenv("DATABASE_DSN"); v != "" {
		opts.DatabaseDSN = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		opts.JWTSecret = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		opts.LogLevel = v
	}

	if opts.JWTSecret == "" {
		return nil, errors.New("jwt secret is required")
	}
	if opts.AccessTTL <= 0 || opts.RefreshTTL <= 0 {
		return nil, errors.New("token lifetimes must be positive")
	}
	return opts, nil
}

// ParseClient parses client flags from args into fs, then applies the
// config file and environment overrides.
func ParseClient(fs *flag.FlagSet, args []string) (*ClientOptions, error) {
	opts := &ClientOptions{}
	fs.StringVar(&opts.BaseURL, "url", "https://localhost:8080", "portal API base URL")
	fs.StringVar(&opts.CAFile, "ca", "", "path to CA cert")
	fs.DurationVar(&opts.Timeout, "timeout", 10*time.Second, "HTTP request timeout")
	fs.StringVar(&opts.SessionBackend, "session", BackendFile, "session backend: file | redis")
	fs.StringVar(&opts.SessionFile, "session-file", "session.json", "session file path")
	fs.StringVar(&opts.RedisAddr, "redis", "localhost:6379", "redis address")
	fs.StringVar(&opts.RedisPrefix, "redis-prefix", "portal:session", "redis key prefix")
	fs.StringVar(&opts.LogLevel, "log-level", "warn", "log level")
	fs.StringVar(&opts.Config, "config", "client.json", "path to config file")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if configPath := os.Getenv("CONFIG"); configPath != "" {
		opts.Config = configPath
	}
	if err := loadFile(opts.Config, opts); err != nil {
		return nil, err
	}

	if v := os.Getenv("PORTAL_URL"); v != "" {
		opts.BaseURL = v
	}
	if v := os.Getenv("SESSION_BACKEND"); v != "" {
		opts.SessionBackend = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		opts.RedisAddr = v
	}

	switch opts.SessionBackend {
	case BackendFile, BackendRedis:
	default:
		return nil, fmt.Errorf("unknown session backend %q", opts.SessionBackend)
	}
	return opts, nil
}

// loadFile decodes path into dst when the file exists. A missing file is not an error.
func loadFile(path string, dst any) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("error while reading config file: %w", err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("error while parsing config file: %w", err)
	}
	return nil
}
