package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the application configuration
type Config struct {
	Port                string `yaml:"port"`
	DBPath              string `yaml:"db_path"`
	JWTSecret           string `yaml:"jwt_secret"`
	AbsenceThresholdMin int    `yaml:"absence_threshold_min"` // gap length treated as absence, minutes
	WorkdayStartHour    int    `yaml:"workday_start_hour"`    // earliest hour that can open a workday
}

// Load reads configuration from environment variables with defaults
func Load() *Config {
	cfg := &Config{
		Port:                ":8080",
		DBPath:              "./data/worktrace.db",
		JWTSecret:           "your-secret-key-change-in-production",
		AbsenceThresholdMin: 20,
		WorkdayStartHour:    7,
	}

	if port := os.Getenv("PORT"); port != "" {
		cfg.Port = port
	}
	if dbPath := os.Getenv("DB_PATH"); dbPath != "" {
		cfg.DBPath = dbPath
	}
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		cfg.JWTSecret = secret
	}
	if v := os.Getenv("ABSENCE_THRESHOLD_MIN"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.AbsenceThresholdMin = n
		}
	}
	if v := os.Getenv("WORKDAY_START_HOUR"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 && n < 24 {
			cfg.WorkdayStartHour = n
		}
	}

	return cfg
}

// ApplyFile overlays values from a YAML config file onto the current config.
// Fields absent from the file keep their current values.
func (c *Config) ApplyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

// AbsenceThreshold returns the configured absence threshold as a duration
func (c *Config) AbsenceThreshold() time.Duration {
	return time.Duration(c.AbsenceThresholdMin) * time.Minute
}

// StartFloor returns the workday start floor as an offset from midnight
func (c *Config) StartFloor() time.Duration {
	return time.Duration(c.WorkdayStartHour) * time.Hour
}
