// Package config loads runtime settings from the environment.
//
// LOOKUP ORDER:
//  1. Real environment variables
//  2. A .env file in the working directory, if present (godotenv never
//     overrides variables that are already set)
//  3. The defaults below
//
// Both binaries (cmd/server and cmd/showcase) call Load, so they agree on
// which account and API endpoint to use.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Defaults.
const (
	DefaultPort         = 8080
	DefaultAccount      = "weo-soft"
	DefaultGitHubAPIURL = "https://api.github.com/"
)

// Config holds all configuration for the application.
type Config struct {
	Port         int
	Account      string        // account shown when none is given
	GitHubAPIURL string        // REST API root
	HTTPTimeout  time.Duration // 0 means no client-side timeout
	LogLevel     slog.Level
}

// Load reads ./.env (optional) and then the environment.
func Load() (*Config, error) {
	return LoadFile(".env")
}

// LoadFile is Load with an explicit dotenv path. A missing file is not an
// error; an unreadable or malformed one is.
func LoadFile(path string) (*Config, error) {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}

	cfg := &Config{
		Account:      getEnv("SHOWCASE_ACCOUNT", DefaultAccount),
		GitHubAPIURL: getEnv("GITHUB_API_URL", DefaultGitHubAPIURL),
	}

	var err error
	if cfg.Port, err = getEnvAsInt("PORT", DefaultPort); err != nil {
		return nil, err
	}
	if cfg.HTTPTimeout, err = getEnvAsDuration("SHOWCASE_HTTP_TIMEOUT", 0); err != nil {
		return nil, err
	}
	if err := cfg.LogLevel.UnmarshalText([]byte(getEnv("SHOWCASE_LOG_LEVEL", "info"))); err != nil {
		return nil, fmt.Errorf("SHOWCASE_LOG_LEVEL: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks values that parsed but make no sense.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535, got %d", c.Port)
	}
	if c.HTTPTimeout < 0 {
		return fmt.Errorf("SHOWCASE_HTTP_TIMEOUT must not be negative, got %s", c.HTTPTimeout)
	}
	u, err := url.Parse(c.GitHubAPIURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("GITHUB_API_URL must be an absolute URL, got %q", c.GitHubAPIURL)
	}
	return nil
}

// HTTPClient returns the client used for GitHub calls.
func (c *Config) HTTPClient() *http.Client {
	return &http.Client{Timeout: c.HTTPTimeout}
}

// NewLogger builds the process logger: text on stdout at the configured level.
func (c *Config) NewLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: c.LogLevel}))
}

func getEnv(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid integer %q", key, value)
	}
	return n, nil
}

func getEnvAsDuration(key string, fallback time.Duration) (time.Duration, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid duration %q", key, value)
	}
	return d, nil
}
