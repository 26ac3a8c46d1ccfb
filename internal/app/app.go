// Package app wires configuration into the services shared by the binaries.
package app

import (
	"context"
	"log/slog"

	"github.com/janisto/catalog-lambda/internal/config"
	"github.com/janisto/catalog-lambda/internal/platform/dynamo"
	applog "github.com/janisto/catalog-lambda/internal/platform/logging"
	"github.com/janisto/catalog-lambda/internal/service/product"
)

// NewProductService returns the product store selected by cfg.
func NewProductService(ctx context.Context, cfg config.Config) (product.Service, error) {
	if cfg.ProductStore == config.StoreMemory {
		applog.LogWarn(ctx, "using in-memory product store")
		return product.NewMockStore(SampleProducts()...), nil
	}

	client, err := dynamo.NewClient(ctx, dynamo.Config{
		Region:   cfg.AWSRegion,
		Endpoint: cfg.DynamoDBEndpoint,
	})
	if err != nil {
		return nil, err
	}

	applog.LogInfo(ctx, "using dynamodb product store",
		slog.String("table", cfg.ProductsTable),
		slog.String("region", client.Options().Region),
	)
	return product.NewDynamoStore(client, cfg.ProductsTable), nil
}

// SampleProducts is the seed catalog of the in-memory store.
func SampleProducts() []product.Product {
	return []product.Product{
		{ID: "prd-001", Name: "Caneca de cerâmica", Description: "Caneca azul 300ml", PriceCents: 3990, SellerID: "seller-1", CreatedAt: "2025-01-10T09:00:00.000Z"},
		{ID: "prd-002", Name: "Camiseta básica", Description: "Algodão, tamanho M", PriceCents: 5990, SellerID: "seller-1", CreatedAt: "2025-01-11T09:00:00.000Z"},
		{ID: "prd-003", Name: "Boné bordado", Description: "Aba curva, ajustável", PriceCents: 4490, SellerID: "seller-2", CreatedAt: "2025-01-12T09:00:00.000Z"},
		{ID: "prd-004", Name: "Caderno pautado", Description: "96 folhas", PriceCents: 1990, SellerID: "seller-2", CreatedAt: "2025-01-13T09:00:00.000Z"},
		{ID: "prd-005", Name: "Garrafa térmica", Description: "Inox 500ml", PriceCents: 8990, SellerID: "seller-3", CreatedAt: "2025-01-14T09:00:00.000Z"},
	}
}
