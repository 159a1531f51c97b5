package config

import (
	"testing"
	"time"

	"github.com/slighter12/go-lib/database/postgres"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, StorageDriverPostgres, cfg.Storage.Driver)
	assert.Equal(t, defaultSQLitePath, cfg.Storage.SQLitePath)
	require.NotNil(t, cfg.Auth)
	assert.Equal(t, 360000*time.Second, cfg.Auth.TokenTTL)
	assert.Equal(t, "x-auth-token", cfg.Auth.TokenHeader)
	assert.Equal(t, "lobby", cfg.Auth.Issuer)
	require.NotNil(t, cfg.Avatar)
	assert.Equal(t, 200, cfg.Avatar.Size)
	assert.Equal(t, "pg", cfg.Avatar.Rating)
	assert.Equal(t, "mm", cfg.Avatar.Fallback)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		Storage: StorageConfig{Driver: " SQLite "},
		Auth:    &AuthConfig{TokenTTL: time.Hour, TokenHeader: "x-token", Issuer: "test"},
	}
	cfg.applyDefaults()

	assert.Equal(t, StorageDriverSQLite, cfg.Storage.Driver)
	assert.Equal(t, time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, "x-token", cfg.Auth.TokenHeader)
	assert.Equal(t, "test", cfg.Auth.Issuer)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *Config)
		wantErr string
	}{
		{
			name:   "valid sqlite config",
			mutate: func(cfg *Config) {},
		},
		{
			name:    "missing secret",
			mutate:  func(cfg *Config) { cfg.SecretKey.Access = "  " },
			wantErr: "secretKey.access",
		},
		{
			name:    "unknown driver",
			mutate:  func(cfg *Config) { cfg.Storage.Driver = "mysql" },
			wantErr: "unknown storage driver",
		},
		{
			name:    "postgres without section",
			mutate:  func(cfg *Config) { cfg.Storage.Driver = StorageDriverPostgres },
			wantErr: "postgres section",
		},
		{
			name: "postgres with section",
			mutate: func(cfg *Config) {
				cfg.Storage.Driver = StorageDriverPostgres
				cfg.Postgres = &postgres.DBConn{}
			},
		},
		{
			name: "rate limit without rate",
			mutate: func(cfg *Config) {
				cfg.HTTP.RateLimit.Enabled = true
			},
			wantErr: "requestsPerSecond",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{
				Storage:   StorageConfig{Driver: StorageDriverSQLite},
				SecretKey: SecretKeyConfig{Access: "secret"},
			}
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
