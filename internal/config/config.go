package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	DatabaseURL string
	Port        string

	// Celebration capture flow timings
	FacingMode        string
	CountdownFrom     int
	CountdownTick     time.Duration
	CaptureRetry      time.Duration
	CaptureTimeout    time.Duration
	CameraStartWindow time.Duration
}

func Load() *Config {
	return &Config{
		DatabaseURL: getEnv("DATABASE_URL", "mygoals.db"),
		Port:        getEnv("PORT", "8080"),

		FacingMode:        getEnv("CAPTURE_FACING_MODE", "user"),
		CountdownFrom:     getEnvInt("CAPTURE_COUNTDOWN_FROM", 3),
		CountdownTick:     getEnvDuration("CAPTURE_COUNTDOWN_TICK", time.Second),
		CaptureRetry:      getEnvDuration("CAPTURE_RETRY_INTERVAL", 250*time.Millisecond),
		CaptureTimeout:    getEnvDuration("CAPTURE_TIMEOUT", 8*time.Second),
		CameraStartWindow: getEnvDuration("CAMERA_START_WINDOW", 15*time.Second),
	}
}

// Validate checks the configuration and returns an error describing every
// invalid field.
func (c *Config) Validate() error {
	var problems []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		problems = append(problems, fmt.Sprintf("invalid port %q: must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		problems = append(problems, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	if c.FacingMode != "user" && c.FacingMode != "environment" {
		problems = append(problems, fmt.Sprintf("invalid facing mode %q: must be user or environment", c.FacingMode))
	}

	if c.CountdownFrom < 1 {
		problems = append(problems, "countdown must start at 1 or higher")
	}
	if c.CountdownTick <= 0 || c.CaptureRetry <= 0 || c.CaptureTimeout <= 0 || c.CameraStartWindow <= 0 {
		problems = append(problems, "capture timings must be positive")
	}
	if c.CaptureRetry >= c.CaptureTimeout {
		problems = append(problems, "capture retry interval must be shorter than the capture timeout")
	}

	if len(problems) > 0 {
		return fmt.Errorf("config: %s", strings.Join(problems, "; "))
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
