package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the application configuration.
type Config struct {
	CatalogFile string `mapstructure:"CATALOG_FILE"`
	AtomicWrite bool   `mapstructure:"CATALOG_ATOMIC_WRITE"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	PostgresURL string `mapstructure:"POSTGRES_URL"`

	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	RedisPassword  string `mapstructure:"REDIS_PASSWORD"`
	RedisDB        int    `mapstructure:"REDIS_DB"`
	CrawlQueueKey  string `mapstructure:"CRAWL_QUEUE_KEY"`
	SeedDedupHours int    `mapstructure:"SEED_DEDUP_HOURS"`

	SinkTimeoutSeconds int `mapstructure:"SINK_TIMEOUT_SECONDS"`

	MetricsTextfile string `mapstructure:"METRICS_TEXTFILE"`
	PushgatewayURL  string `mapstructure:"PUSHGATEWAY_URL"`
}

var defaults = map[string]any{
	"CATALOG_FILE":         "esg_sources.json",
	"CATALOG_ATOMIC_WRITE": false,
	"LOG_LEVEL":            "info",
	"POSTGRES_URL":         "",
	"REDIS_ADDR":           "",
	"REDIS_PASSWORD":       "",
	"REDIS_DB":             0,
	"CRAWL_QUEUE_KEY":      "crawler:queue",
	"SEED_DEDUP_HOURS":     48,
	"SINK_TIMEOUT_SECONDS": 10,
	"METRICS_TEXTFILE":     "",
	"PUSHGATEWAY_URL":      "",
}

// Load reads configuration from the environment, after loading an optional
// .env file that never overrides variables already set.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}
	if err := cfg.validateSinks(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// validateSinks checks the sink settings only when a sink is enabled, so a
// file-only run never fails on them.
func (c *Config) validateSinks() error {
	if c.PostgresURL == "" && c.RedisAddr == "" {
		if c.SinkTimeoutSeconds <= 0 {
			c.SinkTimeoutSeconds = defaults["SINK_TIMEOUT_SECONDS"].(int)
		}
		return nil
	}
	if c.SinkTimeoutSeconds <= 0 {
		return fmt.Errorf("SINK_TIMEOUT_SECONDS must be > 0, got %d", c.SinkTimeoutSeconds)
	}
	if c.RedisAddr != "" && c.SeedDedupHours < 0 {
		return fmt.Errorf("SEED_DEDUP_HOURS must be >= 0, got %d", c.SeedDedupHours)
	}
	return nil
}

// SeedDedupWindow is how long a seeded URL is kept out of the crawl queue.
func (c *Config) SeedDedupWindow() time.Duration {
	return time.Duration(c.SeedDedupHours) * time.Hour
}

// SinkTimeout bounds the time spent publishing to all sinks.
func (c *Config) SinkTimeout() time.Duration {
	return time.Duration(c.SinkTimeoutSeconds) * time.Second
}
