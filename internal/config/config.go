// Package config loads service configuration from the environment, with
// optional .env support for local development.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all runtime configuration.
type Config struct {
	// HTTP server
	Port string

	// Suggestion collaborator
	GeminiModel    string
	SuggestTimeout time.Duration

	// Suggestion job queue
	JobQueueSize int
	JobWorkers   int
}

// Load reads configuration from the environment. A .env file in the
// working directory is loaded first if present; real environment
// variables win over .env entries.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:           getEnv("PORT", "8080"),
		GeminiModel:    getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		SuggestTimeout: getEnvDuration("SUGGEST_TIMEOUT", 10*time.Second),
		JobQueueSize:   getEnvInt("JOB_QUEUE_SIZE", 100),
		JobWorkers:     getEnvInt("JOB_WORKERS", 2),
	}
}

// Validate checks the configuration and returns an error describing every
// invalid field.
func (c *Config) Validate() error {
	var errs []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		errs = append(errs, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errs = append(errs, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	if c.SuggestTimeout < time.Second {
		errs = append(errs, fmt.Sprintf("invalid suggest timeout %v: must be at least 1 second", c.SuggestTimeout))
	} else if c.SuggestTimeout > time.Minute {
		errs = append(errs, fmt.Sprintf("invalid suggest timeout %v: must be at most 1 minute", c.SuggestTimeout))
	}

	if c.JobQueueSize < 1 {
		errs = append(errs, fmt.Sprintf("invalid job queue size %d: must be at least 1", c.JobQueueSize))
	}
	if c.JobWorkers < 1 {
		errs = append(errs, fmt.Sprintf("invalid job worker count %d: must be at least 1", c.JobWorkers))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
