package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

const (
	DriverSQLite   = "sqlite"
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
)

// Config holds the application's configuration values.
type Config struct {
	AppName string `mapstructure:"APPNAME"`
	AppEnv  string `mapstructure:"APPENV"`
	AppPort uint16 `mapstructure:"APPPORT"`
	GinMode string `mapstructure:"GINMODE"`

	DBDriver string `mapstructure:"DBDRIVER"`
	DBPath   string `mapstructure:"DBPATH"`
	DBHost   string `mapstructure:"DBHOST"`
	DBPort   uint16 `mapstructure:"DBPORT"`
	DBName   string `mapstructure:"DBNAME"`
	DBUser   string `mapstructure:"DBUSER"`
	DBPass   string `mapstructure:"DBPASS"`

	LogLevel          string `mapstructure:"LOG_LEVEL"`
	LogPretty         bool   `mapstructure:"LOG_PRETTY"`
	RequestLogPersist bool   `mapstructure:"REQUEST_LOG_PERSIST"`
	MetricsEnabled    bool   `mapstructure:"METRICS_ENABLED"`
	GeoIPDBPath       string `mapstructure:"GEOIP_DB_PATH"`

	RateLimit       int           `mapstructure:"RATE_LIMIT"`
	RateLimitWindow time.Duration `mapstructure:"RATE_LIMIT_WINDOW"`
	RedisAddr       string        `mapstructure:"REDIS_ADDR"`
	RedisPass       string        `mapstructure:"REDIS_PASS"`
	RedisDB         int           `mapstructure:"REDIS_DB"`

	CORSOrigins     []string      `mapstructure:"CORS_ORIGINS"`
	ShutdownTimeout time.Duration `mapstructure:"SHUTDOWN_TIMEOUT"`
}

var defaults = map[string]interface{}{
	"APPNAME":             "INET Clinic",
	"APPENV":              "development",
	"APPPORT":             3000,
	"GINMODE":             "release",
	"DBDRIVER":            DriverSQLite,
	"DBPATH":              "./Database/clinic.sqlite",
	"DBHOST":              "localhost",
	"DBPORT":              3306,
	"DBNAME":              "clinic",
	"DBUSER":              "",
	"DBPASS":              "",
	"LOG_LEVEL":           "info",
	"LOG_PRETTY":          false,
	"REQUEST_LOG_PERSIST": false,
	"METRICS_ENABLED":     true,
	"GEOIP_DB_PATH":       "",
	"RATE_LIMIT":          0,
	"RATE_LIMIT_WINDOW":   "1m",
	"REDIS_ADDR":          "",
	"REDIS_PASS":          "",
	"REDIS_DB":            0,
	"CORS_ORIGINS":        "*",
	"SHUTDOWN_TIMEOUT":    "10s",
}

// LoadConfig reads the given .env files (".env" when none are given) into the
// environment and builds a Config from environment variables and defaults.
// A missing .env file is not an error.
func LoadConfig(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				log.Debug().Str("file", f).Msg("No .env file found, using environment")
				continue
			}
			return nil, fmt.Errorf("error loading %s: %w", f, err)
		}
	}

	v := viper.New()
	v.AutomaticEnv()
	for key, value := range defaults {
		v.SetDefault(key, value)
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", key, err)
		}
	}
	// PORT is what most hosting platforms inject.
	if err := v.BindEnv("APPPORT", "APPPORT", "PORT"); err != nil {
		return nil, fmt.Errorf("bind env APPPORT: %w", err)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.CORSOrigins = splitList(cfg.CORSOrigins)
	cfg.DBDriver = strings.ToLower(strings.TrimSpace(cfg.DBDriver))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values that cannot be defaulted sensibly.
func (c *Config) Validate() error {
	switch c.DBDriver {
	case DriverSQLite:
		if c.DBPath == "" {
			return fmt.Errorf("DBPATH is required for the %s driver", c.DBDriver)
		}
	case DriverMySQL, DriverPostgres:
		if c.DBHost == "" || c.DBName == "" {
			return fmt.Errorf("DBHOST and DBNAME are required for the %s driver", c.DBDriver)
		}
	default:
		return fmt.Errorf("unsupported DBDRIVER %q", c.DBDriver)
	}
	if c.AppPort == 0 {
		return fmt.Errorf("APPPORT must be a valid port")
	}
	if c.RateLimit < 0 {
		return fmt.Errorf("RATE_LIMIT must not be negative")
	}
	return nil
}

// IsTest reports whether the application runs under APPENV=test.
func (c *Config) IsTest() bool {
	return c.AppEnv == "test"
}

// splitList flattens comma separated entries, env values arrive as one string.
func splitList(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if p := strings.TrimSpace(part); p != "" {
				out = append(out, p)
			}
		}
	}
	return out
}
