package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all runtime configuration for Opsdeck
type Config struct {
	AppEnv        string
	HTTPPort      int
	SessionSecret string
	Postgres      PostgresConfig
	Redis         RedisConfig
	Cache         CacheConfig
	Jobs          JobsConfig
}

// PostgresConfig holds database connection settings
type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// RedisConfig holds redis connection settings
type RedisConfig struct {
	Host     string
	Port     int
	Password string
}

// CacheConfig selects the cache backend. "memory" keeps everything in
// process; "redis" shares the cache across instances at the cost of a JSON
// round-trip per value.
type CacheConfig struct {
	Backend string
}

// JobsConfig holds background job settings
type JobsConfig struct {
	StatusRollIntervalMinutes int
}

// DSN renders the postgres connection string used by both sqlx and GORM.
func (p PostgresConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		p.User, p.Password, p.Host, p.Port, p.DBName, p.SSLMode)
}

// Addr renders the host:port pair for the redis client.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// Load reads configuration from the environment (OPSDECK_ prefix) with an
// optional config.yaml. Env vars win over file values, file over defaults.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("app_env", "development")
	v.SetDefault("http_port", 8080)
	v.SetDefault("session_secret", "")
	v.SetDefault("pg.host", "localhost")
	v.SetDefault("pg.port", 5432)
	v.SetDefault("pg.user", "opsdeck")
	v.SetDefault("pg.password", "")
	v.SetDefault("pg.db", "opsdeck")
	v.SetDefault("pg.sslmode", "disable")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("cache.backend", "memory")
	v.SetDefault("jobs.status_roll_interval_minutes", 5)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("/etc/opsdeck")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// No config file is fine, defaults + env vars apply
	}

	v.SetEnvPrefix("OPSDECK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{
		AppEnv:        v.GetString("app_env"),
		HTTPPort:      v.GetInt("http_port"),
		SessionSecret: v.GetString("session_secret"),
		Postgres: PostgresConfig{
			Host:     v.GetString("pg.host"),
			Port:     v.GetInt("pg.port"),
			User:     v.GetString("pg.user"),
			Password: v.GetString("pg.password"),
			DBName:   v.GetString("pg.db"),
			SSLMode:  v.GetString("pg.sslmode"),
		},
		Redis: RedisConfig{
			Host:     v.GetString("redis.host"),
			Port:     v.GetInt("redis.port"),
			Password: v.GetString("redis.password"),
		},
		Cache: CacheConfig{
			Backend: v.GetString("cache.backend"),
		},
		Jobs: JobsConfig{
			StatusRollIntervalMinutes: v.GetInt("jobs.status_roll_interval_minutes"),
		},
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.HTTPPort <= 0 || cfg.HTTPPort > 65535 {
		return fmt.Errorf("http_port out of range: %d", cfg.HTTPPort)
	}
	if cfg.Postgres.Host == "" {
		return fmt.Errorf("pg.host is required")
	}
	if cfg.Cache.Backend != "memory" && cfg.Cache.Backend != "redis" {
		return fmt.Errorf("cache.backend must be memory or redis, got %q", cfg.Cache.Backend)
	}
	if cfg.Jobs.StatusRollIntervalMinutes <= 0 {
		return fmt.Errorf("jobs.status_roll_interval_minutes must be greater than 0")
	}
	return nil
}
