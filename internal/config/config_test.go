package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.DatabaseURL != "mygoals.db" {
		t.Errorf("DatabaseURL = %q, want mygoals.db", cfg.DatabaseURL)
	}
	if cfg.FacingMode != "user" {
		t.Errorf("FacingMode = %q, want user", cfg.FacingMode)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("CAPTURE_TIMEOUT", "2s")
	t.Setenv("CAPTURE_COUNTDOWN_FROM", "5")

	cfg := Load()
	if cfg.Port != "9000" {
		t.Errorf("Port = %q, want 9000", cfg.Port)
	}
	if cfg.CaptureTimeout != 2*time.Second {
		t.Errorf("CaptureTimeout = %v, want 2s", cfg.CaptureTimeout)
	}
	if cfg.CountdownFrom != 5 {
		t.Errorf("CountdownFrom = %d, want 5", cfg.CountdownFrom)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults are valid", mutate: func(c *Config) {}},
		{name: "bad port", mutate: func(c *Config) { c.Port = "http" }, wantErr: true},
		{name: "port out of range", mutate: func(c *Config) { c.Port = "70000" }, wantErr: true},
		{name: "bad facing mode", mutate: func(c *Config) { c.FacingMode = "selfie" }, wantErr: true},
		{name: "zero countdown", mutate: func(c *Config) { c.CountdownFrom = 0 }, wantErr: true},
		{name: "negative timing", mutate: func(c *Config) { c.CaptureRetry = -time.Second }, wantErr: true},
		{
			name: "retry slower than timeout",
			mutate: func(c *Config) {
				c.CaptureRetry = 10 * time.Second
				c.CaptureTimeout = time.Second
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Load()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
