package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Log       LogConfig       `mapstructure:"log"`
	Mail      MailConfig      `mapstructure:"mail"`
	RateLimit RateLimitConfig `mapstructure:"ratelimit"`
	Retention RetentionConfig `mapstructure:"retention"`
}

// ServerConfig represents HTTP server configuration
type ServerConfig struct {
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

// DatabaseConfig represents database configuration
type DatabaseConfig struct {
	SQLite SQLiteConfig `mapstructure:"sqlite"`
	Redis  RedisConfig  `mapstructure:"redis"`
}

// SQLiteConfig represents the embedded SQLite configuration
type SQLiteConfig struct {
	Path string `mapstructure:"path"`
}

// RedisConfig represents the optional Redis cache configuration.
// An empty Addr disables the cache entirely.
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// LogConfig represents logging configuration
type LogConfig struct {
	Level string        `mapstructure:"level"`
	File  LogFileConfig `mapstructure:"file"`
}

// LogFileConfig represents rotating log file configuration
type LogFileConfig struct {
	Enable     bool   `mapstructure:"enable"`
	Path       string `mapstructure:"path"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
	Compress   bool   `mapstructure:"compress"`
}

// MailConfig represents outbound notification email configuration
type MailConfig struct {
	Enabled    bool   `mapstructure:"enabled"`
	Host       string `mapstructure:"host"`
	Port       int    `mapstructure:"port"`
	Username   string `mapstructure:"username"`
	Password   string `mapstructure:"password"`
	From       string `mapstructure:"from"`
	AdminEmail string `mapstructure:"admin_email"`
}

// RateLimitConfig represents the per-IP rate limit applied to public
// form-submission endpoints
type RateLimitConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Period  string `mapstructure:"period"`
	Limit   int64  `mapstructure:"limit"`
}

// RetentionConfig represents the periodic purge of old visit rows
type RetentionConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Days     int    `mapstructure:"days"`
	Schedule string `mapstructure:"schedule"`
}

// Global config instance
var cfg *Config

// Load loads configuration from file
func Load(configPath string) (*Config, error) {
	v := viper.New()

	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	// Set defaults
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg = &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Expand environment variables
	cfg.Database.Redis.Password = expandEnv(cfg.Database.Redis.Password)
	cfg.Mail.Password = expandEnv(cfg.Mail.Password)

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Get returns the global config instance
func Get() *Config {
	return cfg
}

// RateLimitPeriod parses the configured rate limit period
func (c *Config) RateLimitPeriod() (time.Duration, error) {
	return time.ParseDuration(c.RateLimit.Period)
}

// validate checks the configuration for errors
func (c *Config) validate() error {
	if c.Database.SQLite.Path == "" {
		return fmt.Errorf("database.sqlite.path is required")
	}
	if c.RateLimit.Enabled {
		if _, err := time.ParseDuration(c.RateLimit.Period); err != nil {
			return fmt.Errorf("invalid ratelimit.period: %w", err)
		}
	}
	if c.Retention.Enabled && c.Retention.Days <= 0 {
		return fmt.Errorf("retention.days must be positive when retention is enabled")
	}
	return nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("database.sqlite.path", "storage/kayan.db")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file.max_size_mb", 20)
	v.SetDefault("log.file.max_backups", 10)
	v.SetDefault("log.file.max_age_days", 30)
	v.SetDefault("ratelimit.period", "1m")
	v.SetDefault("ratelimit.limit", 10)
	v.SetDefault("retention.days", 365)
	v.SetDefault("retention.schedule", "0 3 * * *")
}

// expandEnv expands a ${VAR} reference in the string
func expandEnv(s string) string {
	if strings.HasPrefix(s, "${") && strings.HasSuffix(s, "}") {
		return os.Getenv(s[2 : len(s)-1])
	}
	return s
}
