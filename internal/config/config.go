package config

import (
	"os"
	"strconv"
)

const (
	// Port is fixed; nothing in the environment can change it.
	Port = 8080

	DefaultEnvironment = "unknown"
	DefaultVersion     = "dev"
)

// Config is the snapshot of process settings taken once at startup.
type Config struct {
	Addr        string
	Environment string
	Version     string
}

// Load builds a Config using lookup to resolve environment variables.
// Unset and empty values both fall back to the defaults.
func Load(lookup func(string) string) Config {
	return Config{
		Addr:        ":" + strconv.Itoa(Port),
		Environment: getEnv(lookup, "ENV", DefaultEnvironment),
		Version:     getEnv(lookup, "VERSION", DefaultVersion),
	}
}

// FromEnv loads the Config from the process environment.
func FromEnv() Config {
	return Load(os.Getenv)
}

func getEnv(lookup func(string) string, key, defaultValue string) string {
	if value := lookup(key); value != "" {
		return value
	}
	return defaultValue
}
