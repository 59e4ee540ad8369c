// Package config loads dashboard configuration from the environment.
// An optional .env file is applied first so local development can keep
// credentials out of the shell profile.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Defaults used when the environment does not override them.
const (
	DefaultAPIURL  = "http://localhost:8000/api"
	DefaultTimeout = 15 * time.Second
)

// Config holds everything the dashboard needs to reach the backend.
type Config struct {
	APIURL   string        // base URL of the admin backend API
	APIToken string        // bearer token; empty means unauthenticated
	Timeout  time.Duration // client-side timeout for a single API call
}

// Load reads configuration from the environment. If envFile is non-empty the
// file is loaded first; a missing file is an error since the user asked for it.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return Config{}, fmt.Errorf("load env file %s: %w", envFile, err)
		}
	}

	cfg := Config{
		APIURL:   getenv("DRDASH_API_URL", DefaultAPIURL),
		APIToken: os.Getenv("DRDASH_API_TOKEN"),
		Timeout:  DefaultTimeout,
	}
	if v := os.Getenv("DRDASH_TIMEOUT_SECONDS"); v != "" {
		secs, err := strconv.Atoi(v)
		if err != nil || secs <= 0 {
			return Config{}, fmt.Errorf("invalid DRDASH_TIMEOUT_SECONDS %q", v)
		}
		cfg.Timeout = time.Duration(secs) * time.Second
	}
	return cfg, nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
