package config

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlagSet() *flag.FlagSet {
	return flag.NewFlagSet("test", flag.ContinueOnError)
}

func TestParseServer_Defaults(t *testing.T) {
	t.Setenv("CONFIG", "")
	t.Setenv("SERVER_ADDRESS", "")
	t.Setenv("LOG_LEVEL", "")

	opts, err := ParseServer(newFlagSet(), []string{"-jwt-secret", "s3cr3t", "-c", ""})
	require.NoError(t, err)

	assert.Equal(t, "localhost:8080", opts.Addr)
	assert.Equal(t, 15*time.Minute, opts.AccessTTL)
	assert.Equal(t, 30*24*time.Hour, opts.RefreshTTL)
	assert.Equal(t, "info", opts.LogLevel)
	assert.False(t, opts.Seed)
}

func TestParseServer_MissingSecret(t *testing.T) {
	t.Setenv("CONFIG", "")
	t.Setenv("JWT_SECRET", "")

	_, err := ParseServer(newFlagSet(), []string{"-c", ""})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "jwt secret")
}

func TestParseServer_FileThenEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "server.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"addr":":9000","database_dsn":"postgres://file","jwt_secret":"fromfile"}`), 0o600))

	t.Setenv("CONFIG", path)
	t.Setenv("SERVER_ADDRESS", ":9100")
	t.Setenv("DATABASE_DSN", "")
	t.Setenv("JWT_SECRET", "")

	opts, err := ParseServer(newFlagSet(), []string{"-a", ":7000"})
	require.NoError(t, err)

	assert.Equal(t, ":9100", opts.Addr, "env overrides file and flags")
	assert.Equal(t, "postgres://file", opts.DatabaseDSN)
	assert.Equal(t, "fromfile", opts.JWTSecret)
}

func TestParseServer_BadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{not json`), 0o600))
	t.Setenv("CONFIG", path)

	_, err := ParseServer(newFlagSet(), []string{"-jwt-secret", "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config file")
}

func TestParseClient(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		env     map[string]string
		wantErr bool
		check   func(t *testing.T, o *ClientOptions)
	}{
		{
			name: "defaults",
			args: []string{"-config", ""},
			check: func(t *testing.T, o *ClientOptions) {
				assert.Equal(t, "https://localhost:8080", o.BaseURL)
				assert.Equal(t, BackendFile, o.SessionBackend)
				assert.Equal(t, "session.json", o.SessionFile)
				assert.Equal(t, 10*time.Second, o.Timeout)
			},
		},
		{
			name: "redis via env",
			args: []string{"-config", ""},
			env:  map[string]string{"SESSION_BACKEND": "redis", "REDIS_ADDR": "cache:6379", "PORTAL_URL": "http://api"},
			check: func(t *testing.T, o *ClientOptions) {
				assert.Equal(t, BackendRedis, o.SessionBackend)
				assert.Equal(t, "cache:6379", o.RedisAddr)
				assert.Equal(t, "http://api", o.BaseURL)
			},
		},
		{
			name:    "unknown backend",
			args:    []string{"-config", "", "-session", "sqlite"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, k := range []string{"CONFIG", "SESSION_BACKEND", "REDIS_ADDR", "PORTAL_URL"} {
				t.Setenv(k, tt.env[k])
			}
			opts, err := ParseClient(newFlagSet(), tt.args)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.check(t, opts)
		})
	}
}
