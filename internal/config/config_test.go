package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func mapLookup(env map[string]string) func(string) string {
	return func(key string) string {
		return env[key]
	}
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name        string
		env         map[string]string
		environment string
		version     string
	}{
		{
			name:        "unset",
			env:         map[string]string{},
			environment: "unknown",
			version:     "dev",
		},
		{
			name:        "empty",
			env:         map[string]string{"ENV": "", "VERSION": ""},
			environment: "unknown",
			version:     "dev",
		},
		{
			name:        "production",
			env:         map[string]string{"ENV": "production"},
			environment: "production",
			version:     "dev",
		},
		{
			name:        "version only",
			env:         map[string]string{"VERSION": "1.2.3"},
			environment: "unknown",
			version:     "1.2.3",
		},
		{
			name:        "both",
			env:         map[string]string{"ENV": "staging", "VERSION": "2.0.0"},
			environment: "staging",
			version:     "2.0.0",
		},
		{
			name:        "unrelated variables ignored",
			env:         map[string]string{"PORT": "9090", "APP_ENV": "prod"},
			environment: "unknown",
			version:     "dev",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Load(mapLookup(tt.env))
			assert.Equal(t, tt.environment, cfg.Environment)
			assert.Equal(t, tt.version, cfg.Version)
			assert.Equal(t, ":8080", cfg.Addr)
		})
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("VERSION", "")

	cfg := FromEnv()
	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, DefaultVersion, cfg.Version)
}
