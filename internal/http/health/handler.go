package health

import (
	"context"
	"log/slog"
	"time"

	"github.com/labstack/echo/v5"

	applog "github.com/janisto/catalog-lambda/internal/platform/logging"
	"github.com/janisto/catalog-lambda/internal/platform/respond"
	"github.com/janisto/catalog-lambda/internal/platform/timeutil"
)

// Message is the fixed health check message.
const Message = "API está operacional!"

// Response is the payload for the health endpoint.
type Response struct {
	Message   string        `json:"message"   cbor:"message"   example:"API está operacional!"`
	Timestamp timeutil.Time `json:"timestamp" cbor:"timestamp" swaggertype:"string" format:"date-time" example:"2025-01-15T10:30:00.000Z"`
}

// Check logs the request and reports the service as operational at now.
func Check(ctx context.Context, method, path string, now time.Time) respond.Result {
	applog.LogInfo(ctx, "health check received",
		slog.String("method", method),
		slog.String("path", path),
	)
	return respond.OK(Response{Message: Message, Timestamp: timeutil.NewTime(now)})
}

// Handler is the health check endpoint.
//
//	@Summary		Health check
//	@Description	Reports that the API is operational
//	@Tags			health
//	@Produce		json,cbor
//	@Success		200	{object}	Response
//	@Router			/health [get]
func Handler(c *echo.Context) error {
	r := c.Request()
	return respond.Write(c, Check(r.Context(), r.Method, r.URL.Path, time.Now()))
}
