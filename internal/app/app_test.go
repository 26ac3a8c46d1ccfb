package app

import (
	"context"
	"testing"

	"github.com/janisto/catalog-lambda/internal/config"
	"github.com/janisto/catalog-lambda/internal/service/product"
)

func TestNewProductService_Memory(t *testing.T) {
	svc, err := NewProductService(context.Background(), config.Config{ProductStore: config.StoreMemory})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := svc.(*product.MockStore); !ok {
		t.Fatalf("expected *product.MockStore, got %T", svc)
	}

	page, err := svc.List(context.Background(), 100, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(page.Items) != len(SampleProducts()) {
		t.Fatalf("expected %d seeded products, got %d", len(SampleProducts()), len(page.Items))
	}
}

func TestNewProductService_DynamoDB(t *testing.T) {
	svc, err := NewProductService(context.Background(), config.Config{
		ProductStore:     config.StoreDynamoDB,
		ProductsTable:    "catalog",
		AWSRegion:        "us-east-1",
		DynamoDBEndpoint: "http://localhost:8000",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := svc.(*product.DynamoStore); !ok {
		t.Fatalf("expected *product.DynamoStore, got %T", svc)
	}
}
