package config

import (
	"errors"
	"log/slog"
	"testing"
)

func TestLoadFrom_Defaults(t *testing.T) {
	cfg, err := LoadFrom(map[string]string{"PRODUCTS_TABLE": "catalog"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "8080" {
		t.Fatalf("expected default port 8080, got %q", cfg.Port)
	}
	if cfg.ProductStore != StoreDynamoDB {
		t.Fatalf("expected dynamodb store, got %q", cfg.ProductStore)
	}
	if cfg.Environment != "production" || cfg.IsDevelopment() {
		t.Fatalf("expected production environment, got %q", cfg.Environment)
	}
	if cfg.SlogLevel() != slog.LevelInfo {
		t.Fatalf("expected info level, got %v", cfg.SlogLevel())
	}
}

func TestLoadFrom_AllValues(t *testing.T) {
	cfg, err := LoadFrom(map[string]string{
		"APP_ENVIRONMENT":   "development",
		"PORT":              "9000",
		"LOG_LEVEL":         "debug",
		"AWS_REGION":        "sa-east-1",
		"PRODUCTS_TABLE":    "catalog",
		"DYNAMODB_ENDPOINT": "http://localhost:8000",
		"PRODUCT_STORE":     "memory",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.IsDevelopment() {
		t.Fatal("expected development environment")
	}
	if cfg.Port != "9000" || cfg.AWSRegion != "sa-east-1" || cfg.DynamoDBEndpoint != "http://localhost:8000" {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if cfg.SlogLevel() != slog.LevelDebug {
		t.Fatalf("expected debug level, got %v", cfg.SlogLevel())
	}
}

func TestLoadFrom_MemoryStoreNeedsNoTable(t *testing.T) {
	if _, err := LoadFrom(map[string]string{"PRODUCT_STORE": "memory"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLoadFrom_MissingTable(t *testing.T) {
	_, err := LoadFrom(map[string]string{"PRODUCT_STORE": "dynamodb"})
	if !errors.Is(err, ErrMissingTable) {
		t.Fatalf("expected ErrMissingTable, got %v", err)
	}
}

func TestLoadFrom_UnknownStore(t *testing.T) {
	_, err := LoadFrom(map[string]string{"PRODUCT_STORE": "postgres"})
	if !errors.Is(err, ErrUnknownStore) {
		t.Fatalf("expected ErrUnknownStore, got %v", err)
	}
}

func TestLoad_ProcessEnvironment(t *testing.T) {
	t.Setenv("PRODUCT_STORE", "memory")
	t.Setenv("PORT", "7070")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "7070" {
		t.Fatalf("expected port 7070, got %q", cfg.Port)
	}
}
