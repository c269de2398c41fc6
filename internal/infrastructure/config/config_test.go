package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	assert.Equal(t, "bridallink-backend", cfg.App.Name)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, "sqlite", cfg.Store.Driver)
	assert.Equal(t, "bridallink.db", cfg.Store.SQLitePath)
	assert.Equal(t, 15*time.Second, cfg.HTTP.ReadTimeout)
	assert.Equal(t, int64(5<<20), cfg.Upload.MaxFileBytes)
	assert.Contains(t, cfg.Upload.AllowedExtensions, ".pdf")
}

func TestApplyDefaultsProductionLogFormat(t *testing.T) {
	cfg := &Config{App: AppConfig{Env: "production"}}
	applyDefaults(cfg)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.True(t, cfg.IsProduction())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "defaults are valid",
			mutate: func(cfg *Config) {},
		},
		{
			name:    "unknown store driver",
			mutate:  func(cfg *Config) { cfg.Store.Driver = "dynamo" },
			wantErr: "invalid store driver",
		},
		{
			name:    "unknown log level",
			mutate:  func(cfg *Config) { cfg.Log.Level = "verbose" },
			wantErr: "invalid log level",
		},
		{
			name:    "unknown log format",
			mutate:  func(cfg *Config) { cfg.Log.Format = "xml" },
			wantErr: "invalid log format",
		},
		{
			name:    "storage enabled without bucket",
			mutate:  func(cfg *Config) { cfg.Storage.Enabled = true },
			wantErr: "storage.bucket is required",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			applyDefaults(cfg)
			tt.mutate(cfg)
			err := cfg.validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestDatabaseDSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "db.local",
		Port:     5433,
		User:     "bridal",
		Password: "secret",
		DBName:   "bridallink",
		SSLMode:  "require",
	}
	assert.Equal(t,
		"host=db.local port=5433 user=bridal password=secret dbname=bridallink sslmode=require",
		cfg.DSN())
}
