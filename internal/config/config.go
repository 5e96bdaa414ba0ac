package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Environment string `toml:"environment"`
	Host        string `toml:"host"`
	Port        int    `toml:"port"`
	// web clients allowed by CORS; the native app is always allowed
	AllowedOrigins []string `toml:"allowed_origins"`
	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	SentryEnabled bool   `toml:"sentry_enabled"`
	// metrics
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`
	// postgres
	PostgresHost   string `toml:"postgres_host"`
	PostgresPort   string `toml:"postgres_port"`
	PostgresDBName string `toml:"postgres_db_name"`
	// redis
	RedisHost string `toml:"redis_host"`
	RedisPort string `toml:"redis_port"`
	// tracker
	Timezone              string `toml:"timezone"`
	DisplayWeightUnit     string `toml:"display_weight_unit"`
	PhotosRootPath        string `toml:"photos_root_path"`
	PhotosCacheSizeMB     int    `toml:"photos_cache_size_mb"`
	UploadRateLimitPerMin int    `toml:"upload_rate_limit_per_min"`
	SummaryCacheTTL       string `toml:"summary_cache_ttl"`
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

// Load reads the TOML file at path and returns the config section for env.
func Load(env, path string) (*Config, error) {
	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode config %s: %w", path, err)
	}

	cfg, err := t.Get(env)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, fmt.Errorf("config section for env [%s] missing", env)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config for env [%s]: %w", env, err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	var errs []error
	if c.Port <= 0 {
		errs = append(errs, errors.New("port must be positive"))
	}
	if c.PostgresDBName == "" {
		errs = append(errs, errors.New("postgres_db_name missing"))
	}
	if c.PhotosRootPath == "" {
		errs = append(errs, errors.New("photos_root_path missing"))
	}
	if _, err := c.Location(); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.SummaryTTL(); err != nil {
		errs = append(errs, err)
	}
	switch strings.ToLower(c.DisplayWeightUnit) {
	case "", "kg", "lb", "lbs":
	default:
		errs = append(errs, fmt.Errorf("unknown display_weight_unit: %s", c.DisplayWeightUnit))
	}
	return errors.Join(errs...)
}

// Location is the timezone day boundaries are computed in; UTC when unset.
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %s: %w", c.Timezone, err)
	}
	return loc, nil
}

// SummaryTTL returns 0 when unset, meaning the default.
func (c *Config) SummaryTTL() (time.Duration, error) {
	if c.SummaryCacheTTL == "" {
		return 0, nil
	}
	ttl, err := time.ParseDuration(c.SummaryCacheTTL)
	if err != nil {
		return 0, fmt.Errorf("parse summary_cache_ttl: %w", err)
	}
	return ttl, nil
}
