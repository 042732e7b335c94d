package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	StoreMemory   = "memory"
	StoreSQLite   = "sqlite"
	StorePostgres = "postgres"

	ModelSimplified = "simplified"
	ModelEphemeris  = "ephemeris"
)

// Config aggregates runtime configuration for the server, CLI and dbtool.
type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	Airports AirportsConfig `yaml:"airports"`
	Solar    SolarConfig    `yaml:"solar"`
	LogLevel string         `yaml:"logLevel"`
}

type HTTPConfig struct {
	Address        string        `yaml:"address"`
	ReadTimeout    time.Duration `yaml:"readTimeout"`
	WriteTimeout   time.Duration `yaml:"writeTimeout"`
	Gzip           bool          `yaml:"gzip"`
	AllowedOrigins []string      `yaml:"allowedOrigins"`
}

// AirportsConfig selects the airport registry backend.
type AirportsConfig struct {
	Store       string `yaml:"store"`
	SQLitePath  string `yaml:"sqlitePath"`
	DatabaseURL string `yaml:"databaseUrl"`
	SeedPath    string `yaml:"seedPath"`
}

type SolarConfig struct {
	Model string `yaml:"model"`
}

// Load reads .env, an optional YAML file and environment overrides, in that order.
func Load() (*Config, error) {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	cfg := defaultConfig()

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := hydrateFromFile(cfg, path); err != nil {
			return nil, err
		}
	} else if _, err := os.Stat("configs/config.yaml"); err == nil {
		if err := hydrateFromFile(cfg, "configs/config.yaml"); err != nil {
			return nil, err
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Get returns the environment value for key, or fallback when unset.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func hydrateFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("HTTP_ADDRESS"); v != "" {
		cfg.HTTP.Address = v
	}
	if v := os.Getenv("PORT"); v != "" && os.Getenv("HTTP_ADDRESS") == "" {
		cfg.HTTP.Address = ":" + v
	}
	if v := os.Getenv("HTTP_READ_TIMEOUT"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.HTTP.ReadTimeout = parsed
		}
	}
	if v := os.Getenv("HTTP_WRITE_TIMEOUT"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.HTTP.WriteTimeout = parsed
		}
	}
	if v := os.Getenv("HTTP_GZIP"); v != "" {
		if parsed, err := strconv.ParseBool(v); err == nil {
			cfg.HTTP.Gzip = parsed
		}
	}
	if v := os.Getenv("CORS_ALLOWED_ORIGINS"); v != "" {
		cfg.HTTP.AllowedOrigins = splitList(v)
	}
	if v := os.Getenv("AIRPORT_STORE"); v != "" {
		cfg.Airports.Store = strings.ToLower(strings.TrimSpace(v))
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Airports.SQLitePath = v
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.Airports.DatabaseURL = v
	}
	if v := os.Getenv("AIRPORT_SEED_PATH"); v != "" {
		cfg.Airports.SeedPath = v
	}
	if v := os.Getenv("SOLAR_MODEL"); v != "" {
		cfg.Solar.Model = strings.ToLower(strings.TrimSpace(v))
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func defaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Address:      ":8080",
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 15 * time.Second,
			Gzip:         true,
		},
		Airports: AirportsConfig{
			Store:      StoreMemory,
			SQLitePath: "data/airports.db",
		},
		Solar: SolarConfig{
			Model: ModelSimplified,
		},
		LogLevel: "info",
	}
}

// Validate ensures the configuration is safe to use.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.HTTP.Address) == "" {
		return errors.New("http.address cannot be empty")
	}
	if c.HTTP.ReadTimeout <= 0 {
		return errors.New("http.readTimeout must be positive")
	}
	if c.HTTP.WriteTimeout <= 0 {
		return errors.New("http.writeTimeout must be positive")
	}

	switch c.Airports.Store {
	case StoreMemory:
	case StoreSQLite:
		if strings.TrimSpace(c.Airports.SQLitePath) == "" {
			return errors.New("airports.sqlitePath cannot be empty when store is sqlite")
		}
	case StorePostgres:
		if strings.TrimSpace(c.Airports.DatabaseURL) == "" {
			return errors.New("airports.databaseUrl cannot be empty when store is postgres")
		}
	default:
		return fmt.Errorf("airports.store %q is not one of memory, sqlite, postgres", c.Airports.Store)
	}

	switch c.Solar.Model {
	case ModelSimplified, ModelEphemeris:
	default:
		return fmt.Errorf("solar.model %q is not one of simplified, ephemeris", c.Solar.Model)
	}

	return nil
}
