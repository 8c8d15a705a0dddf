package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

// Secrets are never kept in the TOML file, only in the environment.
type Secrets struct {
	DBURL       string `env:"FITX_DB_URL, required"`
	TokenSecret string `env:"FITX_SECRET_KEY, required"`
	// provisioned for the video provider integration, not used by any route yet
	VideoClientID     string `env:"FITX_VIDEO_CLIENT_ID, required"`
	VideoClientSecret string `env:"FITX_VIDEO_CLIENT_SECRET, required"`

	RedisPassword    string `env:"FITX_REDIS_PASS"`
	SentryDSN        string `env:"SENTRY_DSN"`
	HoneycombEnabled bool   `env:"HONEYCOMB_ENABLED, default=false"`
}

func LoadSecrets(ctx context.Context) (*Secrets, error) {
	return LoadSecretsWith(ctx, envconfig.OsLookuper())
}

func LoadSecretsWith(ctx context.Context, lookuper envconfig.Lookuper) (*Secrets, error) {
	var s Secrets
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &s,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("load secrets from env: %w", err)
	}
	return &s, nil
}
