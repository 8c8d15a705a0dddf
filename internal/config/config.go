package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/ali-ismaeel564/fitxAPI/pkg"
)

const (
	StoreBackendPostgres = "postgres"
	StoreBackendMongo    = "mongo"

	defaultLeaderboardLimit    = 1000
	defaultStoreTimeoutSeconds = 10
	defaultLoginRateLimit      = 15
)

type Config struct {
	Host        string `toml:"host"`
	Port        int    `toml:"port"`
	Environment string `toml:"environment"`

	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	SentryEnabled bool   `toml:"sentry_enabled"`

	// store
	StoreBackend        string `toml:"store_backend"`
	MongoDatabase       string `toml:"mongo_database"`
	RunMigrations       bool   `toml:"run_migrations"`
	StoreTimeoutSeconds int    `toml:"store_timeout_seconds"`

	// redis
	RedisHost string `toml:"redis_host"`
	RedisPort string `toml:"redis_port"`

	// metrics
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`

	// api
	LoginRateLimitAllowedPerMin int      `toml:"login_rate_limit_allowed_per_min"`
	LeaderboardDefaultLimit     int      `toml:"leaderboard_default_limit"`
	LeaderboardCacheTTLSeconds  int      `toml:"leaderboard_cache_ttl_seconds"`
	TokenTTLMinutes             int      `toml:"token_ttl_minutes"`
	EnforceGoodRepsLeAttempted  bool     `toml:"enforce_good_reps_le_attempted"`
	AllowedOrigins              []string `toml:"allowed_origins"`
	// reverse proxies whose X-Real-Ip / X-Forwarded-For headers are honored
	TrustedProxies []string `toml:"trusted_proxies"`
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	switch strings.ToLower(env) {
	case "dev", "development":
		return t.Development, nil
	case "prod", "production":
		return t.Production, nil
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
}

// Load reads the TOML file at path and returns the section for env,
// with defaults applied to unset values.
func Load(env, path string) (*Config, error) {
	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode config file %s: %w", path, err)
	}
	return fromToml(&t, env)
}

// Parse is Load for an in-memory TOML document.
func Parse(env, data string) (*Config, error) {
	var t Toml
	if _, err := toml.Decode(data, &t); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return fromToml(&t, env)
}

func fromToml(t *Toml, env string) (*Config, error) {
	cfg, err := t.Get(env)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, fmt.Errorf("config section for env [%s] missing", env)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.StoreBackend == "" {
		c.StoreBackend = StoreBackendPostgres
	}
	if c.MongoDatabase == "" {
		c.MongoDatabase = "fitX"
	}
	if c.StoreTimeoutSeconds <= 0 {
		c.StoreTimeoutSeconds = defaultStoreTimeoutSeconds
	}
	if c.LeaderboardDefaultLimit <= 0 {
		c.LeaderboardDefaultLimit = defaultLeaderboardLimit
	}
	if c.LoginRateLimitAllowedPerMin <= 0 {
		c.LoginRateLimitAllowedPerMin = defaultLoginRateLimit
	}
}

func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	switch c.StoreBackend {
	case StoreBackendPostgres, StoreBackendMongo:
	default:
		return fmt.Errorf("unknown store backend: %s", c.StoreBackend)
	}
	if c.TokenTTLMinutes < 0 {
		return errors.New("token ttl cannot be negative")
	}
	if c.LeaderboardCacheTTLSeconds < 0 {
		return errors.New("leaderboard cache ttl cannot be negative")
	}
	if _, err := pkg.ParseTrustedProxies(c.TrustedProxies); err != nil {
		return fmt.Errorf("invalid trusted proxies: %w", err)
	}
	return nil
}
