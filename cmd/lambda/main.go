package main

import (
	"context"
	"log/slog"

	"github.com/aws/aws-lambda-go/lambda"
	_ "github.com/joho/godotenv/autoload"

	"github.com/janisto/catalog-lambda/internal/app"
	"github.com/janisto/catalog-lambda/internal/config"
	"github.com/janisto/catalog-lambda/internal/lambdaapi"
	applog "github.com/janisto/catalog-lambda/internal/platform/logging"
)

// Version can be overridden at build time: -ldflags "-X main.Version=1.2.3"
var Version = "dev"

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		applog.LogFatal(ctx, "config load failed", err)
	}
	applog.SetLevel(cfg.SlogLevel())

	productService, err := app.NewProductService(ctx, cfg)
	if err != nil {
		applog.LogFatal(ctx, "product store init failed", err)
	}

	router := lambdaapi.NewRouter(productService)

	applog.LogInfo(ctx, "lambda starting",
		slog.String("store", cfg.ProductStore),
		slog.String("version", Version))

	lambda.Start(router.Handle)
}
