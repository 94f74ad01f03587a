// Package config loads microcombo settings from the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/rcliao/microcombo/internal/cost"
	"github.com/rcliao/microcombo/internal/logger"
	"github.com/rcliao/microcombo/internal/optimizer"
	"github.com/rcliao/microcombo/internal/tolerance"
)

const (
	EnvDB               = "MICROCOMBO_DB"
	EnvPercentAllowance = "MICROCOMBO_PERCENT_ALLOWANCE"
	EnvBaseAllowance    = "MICROCOMBO_BASE_ALLOWANCE"
	EnvMoveTime         = "MICROCOMBO_MOVE_TIME"
)

// Config holds all configuration for the application
type Config struct {
	DBPath           string
	PercentAllowance float64
	BaseAllowance    int
	MoveTime         float64
}

// Load reads an optional .env file, then the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logger.Global.Warn("loading .env file: %v", err)
	}
	return FromEnv()
}

// FromEnv builds a Config from environment variables, falling back to defaults.
func FromEnv() (*Config, error) {
	cfg := &Config{DBPath: getEnvWithDefault(EnvDB, defaultDBPath())}

	var err error
	cfg.PercentAllowance, err = floatEnv(EnvPercentAllowance, tolerance.DefaultPercent)
	if err != nil {
		return nil, err
	}
	cfg.BaseAllowance, err = intEnv(EnvBaseAllowance, tolerance.DefaultBase)
	if err != nil {
		return nil, err
	}
	cfg.MoveTime, err = floatEnv(EnvMoveTime, cost.DefaultMoveTime)
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger.Global.Debug("configuration loaded: %+v", *cfg)
	return cfg, nil
}

// Validate rejects negative or non-finite allowances and non-positive move times.
func (c *Config) Validate() error {
	if err := c.Options().Validate(); err != nil {
		return err
	}
	if c.MoveTime <= 0 {
		return fmt.Errorf("move time must be positive, got %v", c.MoveTime)
	}
	return nil
}

// Options converts the config into optimizer options.
func (c *Config) Options() optimizer.Options {
	return optimizer.Options{
		Allowance: tolerance.Allowance{Percent: c.PercentAllowance, Base: c.BaseAllowance},
		MoveTime:  c.MoveTime,
	}
}

func defaultDBPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".microcombo", "history.db")
}

// getEnvWithDefault returns the value of the environment variable or the default value
func getEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func floatEnv(key string, def float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return f, nil
}

func intEnv(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}
