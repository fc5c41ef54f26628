package config

import (
	"strings"
	"testing"
	"time"
)

func productionConfig() *Config {
	return &Config{
		Environment:          EnvProduction,
		LogLevel:             "info",
		SessionAuthKey:       strings.Repeat("a", 32),
		SessionEncryptionKey: strings.Repeat("b", 16),
		CORSAllowedOrigins:   "https://orders.example.com",
		NumberingMaxRetries:  3,
		SessionTTL:           24 * time.Hour,
		TraceSampleRatio:     0.1,
	}
}

func TestValidateForProduction_NonProductionSkipsChecks(t *testing.T) {
	cfg := &Config{Environment: EnvDevelopment, LogLevel: "debug"}
	if err := ValidateForProduction(cfg); err != nil {
		t.Fatalf("expected nil for development config, got %v", err)
	}
}

func TestValidateForProduction_Valid(t *testing.T) {
	if err := ValidateForProduction(productionConfig()); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}

func TestValidateForProduction_Failures(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"short auth key", func(c *Config) { c.SessionAuthKey = "short" }, "SESSION_AUTH_KEY"},
		{"short encryption key", func(c *Config) { c.SessionEncryptionKey = "short" }, "SESSION_ENCRYPTION_KEY"},
		{"debug level", func(c *Config) { c.LogLevel = "debug" }, "LOG_LEVEL"},
		{"wildcard cors", func(c *Config) { c.CORSAllowedOrigins = " * " }, "CORS_ALLOWED_ORIGINS"},
		{"zero session ttl", func(c *Config) { c.SessionTTL = 0 }, "SESSION_TTL"},
		{"sample ratio above one", func(c *Config) { c.TraceSampleRatio = 1.5 }, "TRACE_SAMPLE_RATIO"},
		{"zero numbering retries", func(c *Config) { c.NumberingMaxRetries = 0 }, "NUMBERING_MAX_RETRIES"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := productionConfig()
			tt.mutate(cfg)
			err := ValidateForProduction(cfg)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("expected error mentioning %s, got %q", tt.want, err.Error())
			}
		})
	}
}
