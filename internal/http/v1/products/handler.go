package products

import (
	"context"
	"log/slog"
	"runtime/debug"

	"github.com/labstack/echo/v5"

	"github.com/janisto/catalog-lambda/internal/platform/auth"
	applog "github.com/janisto/catalog-lambda/internal/platform/logging"
	"github.com/janisto/catalog-lambda/internal/platform/respond"
	"github.com/janisto/catalog-lambda/internal/service/product"
)

// Handler serves the product listing.
type Handler struct {
	svc product.Service
}

// NewHandler creates a Handler backed by svc.
func NewHandler(svc product.Service) *Handler {
	return &Handler{svc: svc}
}

// Register wires product routes into the provided group.
func Register(g *echo.Group, svc product.Service) {
	h := NewHandler(svc)
	g.GET("/products", h.listHandler)
}

// List validates query, fetches one page of products and shapes the outcome.
// It produces exactly one result: 200 with the page, 400 with field errors,
// or 500 with a generic message. Panics are recovered into the 500 outcome.
func (h *Handler) List(ctx context.Context, identity auth.Identity, query map[string]string) (result respond.Result) {
	defer func() {
		if rec := recover(); rec != nil {
			applog.LoggerFromContext(ctx).LogAttrs(ctx, slog.LevelError, "panic recovered",
				slog.Any("error", rec),
				slog.String("stack", string(debug.Stack())),
			)
			result = respond.Internal()
		}
	}()

	applog.LogInfo(ctx, "listing products",
		slog.String("user_id", identity.UserID),
		slog.String("email", identity.Email),
		slog.String("role", identity.Role),
	)

	q, err := ParseListQuery(query)
	if err != nil {
		h.audit(ctx, identity, "invalid", nil)
		return respond.Failure(ctx, err)
	}

	page, err := h.svc.List(ctx, q.Limit, q.Cursor)
	if err != nil {
		h.audit(ctx, identity, "error", nil)
		return respond.Failure(ctx, err)
	}
	if page.Items == nil {
		page.Items = []product.Product{}
	}

	h.audit(ctx, identity, "success", map[string]any{
		"limit": q.Limit,
		"count": len(page.Items),
	})
	return respond.OK(page)
}

func (h *Handler) audit(ctx context.Context, identity auth.Identity, result string, details map[string]any) {
	applog.LogAuditEvent(ctx, applog.AuditEvent{
		Action:       "list",
		UserID:       identity.UserID,
		Email:        identity.Email,
		Role:         identity.Role,
		ResourceType: "product",
		Result:       result,
		Details:      details,
	})
}

// listHandler godoc
//
//	@Summary		List products
//	@Description	Returns a page of products, newest first
//	@Tags			products
//	@Produce		json,cbor
//	@Param			limit	query		int		false	"Page size"	minimum(1)	maximum(100)	default(20)
//	@Param			cursor	query		string	false	"Opaque cursor from a previous page"
//	@Success		200		{object}	product.Page
//	@Failure		400		{object}	respond.ErrorBody
//	@Failure		500		{object}	respond.ErrorBody
//	@Router			/v1/products [get]
func (h *Handler) listHandler(c *echo.Context) error {
	ctx := c.Request().Context()
	return respond.Write(c, h.List(ctx, auth.FromContext(ctx), queryMap(c.QueryParams())))
}

// queryMap keeps the first value of each query parameter.
func queryMap(values map[string][]string) map[string]string {
	m := make(map[string]string, len(values))
	for k, v := range values {
		if len(v) > 0 {
			m[k] = v[0]
		}
	}
	return m
}

