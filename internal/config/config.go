// Package config loads process settings from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the server settings.
type Config struct {
	Port          int
	RedisAddr     string // empty keeps snapshots in memory
	RedisDB       int
	Variant       string
	LogLevel      string
	PromptTimeout time.Duration // 0 waits forever
	Dev           bool
}

func Default() Config {
	return Config{
		Port:     8080,
		Variant:  "standard",
		LogLevel: "info",
	}
}

// Load reads an optional .env file, then the JEST_* variables.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil && len(files) > 0 {
		return Config{}, fmt.Errorf("load env: %w", err)
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from a lookup function; unset values keep their
// defaults.
func FromEnv(getenv func(string) string) (Config, error) {
	c := Default()
	var err error
	if v := getenv("JEST_PORT"); v != "" {
		if c.Port, err = strconv.Atoi(v); err != nil {
			return Config{}, fmt.Errorf("JEST_PORT: %w", err)
		}
	}
	c.RedisAddr = getenv("JEST_REDIS_ADDR")
	if v := getenv("JEST_REDIS_DB"); v != "" {
		if c.RedisDB, err = strconv.Atoi(v); err != nil {
			return Config{}, fmt.Errorf("JEST_REDIS_DB: %w", err)
		}
	}
	if v := getenv("JEST_VARIANT"); v != "" {
		c.Variant = v
	}
	if v := getenv("JEST_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := getenv("JEST_PROMPT_TIMEOUT"); v != "" {
		if c.PromptTimeout, err = time.ParseDuration(v); err != nil {
			return Config{}, fmt.Errorf("JEST_PROMPT_TIMEOUT: %w", err)
		}
	}
	if v := getenv("JEST_DEV"); v != "" {
		if c.Dev, err = strconv.ParseBool(v); err != nil {
			return Config{}, fmt.Errorf("JEST_DEV: %w", err)
		}
	}
	return c, nil
}
