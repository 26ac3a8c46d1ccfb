package config

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v10"

	applog "github.com/janisto/catalog-lambda/internal/platform/logging"
)

// Product store backends.
const (
	StoreDynamoDB = "dynamodb"
	StoreMemory   = "memory"
)

// Config is the process configuration read from the environment.
type Config struct {
	Environment      string `env:"APP_ENVIRONMENT"   envDefault:"production"`
	Port             string `env:"PORT"              envDefault:"8080"`
	LogLevel         string `env:"LOG_LEVEL"         envDefault:"info"`
	AWSRegion        string `env:"AWS_REGION"`
	ProductsTable    string `env:"PRODUCTS_TABLE"`
	DynamoDBEndpoint string `env:"DYNAMODB_ENDPOINT"`
	ProductStore     string `env:"PRODUCT_STORE"     envDefault:"dynamodb"`
}

var (
	ErrUnknownStore = errors.New("unknown product store")
	ErrMissingTable = errors.New("PRODUCTS_TABLE is required for the dynamodb store")
)

// Load reads the configuration from the process environment.
func Load() (Config, error) {
	return parse(env.Options{})
}

// LoadFrom reads the configuration from the given variables only.
func LoadFrom(vars map[string]string) (Config, error) {
	return parse(env.Options{Environment: vars})
}

func parse(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks cross-field constraints.
func (c Config) Validate() error {
	switch c.ProductStore {
	case StoreMemory:
	case StoreDynamoDB:
		if c.ProductsTable == "" {
			return ErrMissingTable
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownStore, c.ProductStore)
	}
	return nil
}

// IsDevelopment reports whether the process runs in local development.
func (c Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// SlogLevel returns the configured log level.
func (c Config) SlogLevel() slog.Level {
	return applog.ParseLevel(c.LogLevel)
}
