package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Env            string `mapstructure:"ENV"`
	APIBaseURL     string `mapstructure:"API_BASE_URL"`
	AuthBaseURL    string `mapstructure:"AUTH_BASE_URL"`
	HTTPTimeoutMS  int    `mapstructure:"HTTP_TIMEOUT_MS"`
	DevServerPort  string `mapstructure:"DEV_SERVER_PORT"`
	SessionSecret  string `mapstructure:"SESSION_SECRET"`
	SessionTTLMin  int    `mapstructure:"SESSION_TTL_MIN"`
	MockLatencyMS  int    `mapstructure:"MOCK_LATENCY_MS"`
	CORSOrigins    string `mapstructure:"CORS_ORIGINS"`
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("ENV", "development")
	v.SetDefault("API_BASE_URL", "http://localhost:5157")
	v.SetDefault("AUTH_BASE_URL", "http://localhost:5157")
	v.SetDefault("HTTP_TIMEOUT_MS", 15000)
	v.SetDefault("DEV_SERVER_PORT", "5157")
	v.SetDefault("SESSION_TTL_MIN", 60)
	v.SetDefault("MOCK_LATENCY_MS", 0)
	v.SetDefault("CORS_ORIGINS", "http://localhost:5173")

	// Bind env vars explicitly so Unmarshal picks them up
	v.BindEnv("ENV")
	v.BindEnv("API_BASE_URL")
	v.BindEnv("AUTH_BASE_URL")
	v.BindEnv("HTTP_TIMEOUT_MS")
	v.BindEnv("DEV_SERVER_PORT")
	v.BindEnv("SESSION_SECRET")
	v.BindEnv("SESSION_TTL_MIN")
	v.BindEnv("MOCK_LATENCY_MS")
	v.BindEnv("CORS_ORIGINS")

	// Try reading .env file, but don't fail if missing
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return cfg, nil
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// HTTPTimeout returns the per-request timeout for the API client.
func (c *Config) HTTPTimeout() time.Duration {
	return time.Duration(c.HTTPTimeoutMS) * time.Millisecond
}

// SessionTTL returns the lifetime of a dev-server session cookie.
func (c *Config) SessionTTL() time.Duration {
	return time.Duration(c.SessionTTLMin) * time.Minute
}

// MockLatency returns the simulated network latency the dev server injects
// into every response. Zero disables the delay.
func (c *Config) MockLatency() time.Duration {
	return time.Duration(c.MockLatencyMS) * time.Millisecond
}

// Validate checks that the configuration is safe to run. Outside development
// the dev server refuses to sign session cookies with the built-in secret.
func (c *Config) Validate() error {
	if c.APIBaseURL == "" {
		return fmt.Errorf("API_BASE_URL is required")
	}
	if !c.IsDev() && c.SessionSecret == "" {
		return fmt.Errorf("SESSION_SECRET is required when ENV is not development")
	}
	if c.HTTPTimeoutMS <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT_MS must be positive")
	}
	return nil
}
