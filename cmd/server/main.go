package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/labstack/echo/v5"
	"github.com/labstack/echo/v5/middleware"

	"github.com/janisto/catalog-lambda/internal/app"
	"github.com/janisto/catalog-lambda/internal/config"
	"github.com/janisto/catalog-lambda/internal/http/docs"
	"github.com/janisto/catalog-lambda/internal/http/health"
	"github.com/janisto/catalog-lambda/internal/http/v1/routes"
	applog "github.com/janisto/catalog-lambda/internal/platform/logging"
	appmiddleware "github.com/janisto/catalog-lambda/internal/platform/middleware"
	"github.com/janisto/catalog-lambda/internal/platform/respond"
	"github.com/janisto/catalog-lambda/internal/platform/validate"
)

// Version can be overridden at build time: -ldflags "-X main.Version=1.2.3"
var Version = "dev"

//	@title			Catalog API
//	@version		1.0
//	@description	Product catalog backend: health check and paginated product listing.
//	@BasePath		/
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

	e := echo.New()
	e.Validator = validate.New()
	e.HTTPErrorHandler = respond.NewHTTPErrorHandler()
	e.IPExtractor = echo.ExtractIPFromRealIPHeader()
	e.Logger = applog.Logger()

	e.Use(
		appmiddleware.Security("/api-docs"),
		appmiddleware.CORS(),
		appmiddleware.RequestID(),
		middleware.BodyLimit(1<<20),
		applog.RequestLogger(),
		applog.AccessLogger(),
		respond.Recoverer(),
	)

	e.GET("/health", health.Handler)
	if cfg.IsDevelopment() {
		docs.Register(e, "api/openapi.json")
	}

	v1 := e.Group("/v1")
	routes.Register(v1, productService)

	applog.LogInfo(ctx, "server starting",
		slog.String("addr", ":"+cfg.Port),
		slog.String("store", cfg.ProductStore),
		slog.String("version", Version))

	sc := echo.StartConfig{
		Address:         ":" + cfg.Port,
		GracefulTimeout: 10 * time.Second,
		BeforeServeFunc: func(s *http.Server) error {
			s.ReadTimeout = 5 * time.Second
			s.ReadHeaderTimeout = 2 * time.Second
			s.WriteTimeout = 10 * time.Second
			s.IdleTimeout = 60 * time.Second
			s.MaxHeaderBytes = 64 << 10
			return nil
		},
	}

	sigCtx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := sc.Start(sigCtx, e); err != nil {
		log.Fatal(err)
	}

	applog.LogInfo(ctx, "server exited")
}
