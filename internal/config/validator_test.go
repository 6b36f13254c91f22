package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWarnings(t *testing.T) {
	base := func() *Config {
		return &Config{
			Environment:        "dev",
			StorageBackend:     BackendPostgres,
			SessionBackend:     BackendMemory,
			DBPassword:         "s3cret",
			CORSAllowedOrigins: []string{"*"},
		}
	}

	tests := []struct {
		name     string
		mutate   func(c *Config)
		contains []string
	}{
		{"clean dev config", func(c *Config) {}, nil},
		{"example password", func(c *Config) { c.DBPassword = exampleDBPassword }, []string{"DB_PASSWORD"}},
		{"example password ignored for memory backends", func(c *Config) {
			c.DBPassword = exampleDBPassword
			c.StorageBackend = BackendMemory
		}, nil},
		{"default password in prod", func(c *Config) {
			c.Environment = envProduction
			c.DBPassword = defaultDBPassword
			c.CORSAllowedOrigins = []string{"https://casino.example"}
		}, []string{"DB_PASSWORD"}},
		{"wildcard cors in prod", func(c *Config) { c.Environment = envProduction }, []string{"CORS_ALLOWED_ORIGINS"}},
		{"fixed seed in prod", func(c *Config) {
			c.Environment = envProduction
			c.RNGSeed = 42
			c.CORSAllowedOrigins = []string{"https://casino.example"}
		}, []string{"RNG_SEED"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(cfg)

			warnings := cfg.Warnings()

			assert.Len(t, warnings, len(tt.contains))
			for i, want := range tt.contains {
				if i < len(warnings) {
					assert.Contains(t, warnings[i], want)
				}
			}
		})
	}
}
