package routes

import (
	"github.com/labstack/echo/v5"

	"github.com/janisto/catalog-lambda/internal/http/v1/products"
	"github.com/janisto/catalog-lambda/internal/platform/auth"
	"github.com/janisto/catalog-lambda/internal/service/product"
)

// Register wires all v1 routes into the provided group.
// Identity is read from the authorizer headers set by the fronting gateway.
func Register(v1 *echo.Group, svc product.Service) {
	protected := v1.Group("", auth.Middleware())
	products.Register(protected, svc)
}
