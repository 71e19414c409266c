// Package config provides environment-based configuration.
//
// Loads an optional .env file (godotenv), maps environment variables to the
// Config struct via envconfig tags, then validates required fields.
package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	AppEnv             string `envconfig:"APP_ENV" default:"development"`
	Port               string `envconfig:"PORT" default:"8080"`
	LogLevel           string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat          string `envconfig:"LOG_FORMAT" default:"text"`
	SlackBotToken      string `envconfig:"SLACK_BOT_TOKEN"`
	SlackSigningSecret string `envconfig:"SLACK_SIGNING_SECRET"`

	// DatabaseURL empty means the in-memory store (local development only).
	DatabaseURL string `envconfig:"DATABASE_URL"`

	// StatsAllowListRaw is a comma-separated list of Slack user IDs allowed to
	// run the stats command. Empty means unrestricted.
	StatsAllowListRaw string   `envconfig:"STATS_ALLOW_LIST"`
	StatsAllowList    []string `ignored:"true"`
}

func Load() (*Config, error) {
	// Missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment: %w", err)
	}

	// Empty counts as missing; envconfig only rejects fully unset variables.
	if cfg.SlackBotToken == "" {
		return nil, fmt.Errorf("SLACK_BOT_TOKEN is required")
	}
	if cfg.SlackSigningSecret == "" {
		return nil, fmt.Errorf("SLACK_SIGNING_SECRET is required")
	}
	if cfg.AppEnv == "production" && cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required in production")
	}

	cfg.StatsAllowList = splitAllowList(cfg.StatsAllowListRaw)

	return &cfg, nil
}

func splitAllowList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	ids := make([]string, 0, len(parts))
	for _, p := range parts {
		if id := strings.TrimSpace(p); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}
