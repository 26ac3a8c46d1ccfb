// Package lambdaapi adapts API Gateway HTTP API events to the catalog handlers.
package lambdaapi

import (
	"context"
	"encoding/base64"
	"log/slog"
	"net/http"
	"os"
	"runtime/debug"
	"strings"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambdacontext"

	"github.com/janisto/catalog-lambda/internal/http/health"
	"github.com/janisto/catalog-lambda/internal/http/v1/products"
	"github.com/janisto/catalog-lambda/internal/platform/auth"
	applog "github.com/janisto/catalog-lambda/internal/platform/logging"
	appmiddleware "github.com/janisto/catalog-lambda/internal/platform/middleware"
	"github.com/janisto/catalog-lambda/internal/platform/respond"
	"github.com/janisto/catalog-lambda/internal/service/product"
)

// Route keys served by the router.
const (
	RouteHealth   = "GET /health"
	RouteProducts = "GET /products"
)

// envTraceID is set by the Lambda runtime for each invocation.
const envTraceID = "_X_AMZN_TRACE_ID"

type routeFunc func(ctx context.Context, req events.APIGatewayV2HTTPRequest) respond.Result

// Router dispatches API Gateway requests by route key.
type Router struct {
	routes map[string]routeFunc
	paths  map[string]struct{}
	now    func() time.Time
}

// NewRouter creates a Router serving the health check and the product listing.
func NewRouter(svc product.Service) *Router {
	r := &Router{
		routes: make(map[string]routeFunc),
		paths:  make(map[string]struct{}),
		now:    time.Now,
	}

	h := products.NewHandler(svc)
	r.add(RouteHealth, func(ctx context.Context, req events.APIGatewayV2HTTPRequest) respond.Result {
		return health.Check(ctx, req.RequestContext.HTTP.Method, req.RawPath, r.now())
	})
	r.add(RouteProducts, func(ctx context.Context, req events.APIGatewayV2HTTPRequest) respond.Result {
		return h.List(ctx, auth.FromLambdaContext(req.RequestContext), req.QueryStringParameters)
	})
	return r
}

func (r *Router) add(key string, fn routeFunc) {
	r.routes[key] = fn
	if _, path, ok := strings.Cut(key, " "); ok {
		r.paths[path] = struct{}{}
	}
}

// Handle serves a single invocation. It always returns a response and a nil
// error so that API Gateway never substitutes its own error body.
func (r *Router) Handle(ctx context.Context, req events.APIGatewayV2HTTPRequest) (resp events.APIGatewayV2HTTPResponse, err error) {
	start := time.Now()

	var awsRequestID string
	if lc, ok := lambdacontext.FromContext(ctx); ok {
		awsRequestID = lc.AwsRequestID
	}
	requestID := appmiddleware.ResolveRequestID(
		header(req.Headers, appmiddleware.HeaderXRequestID),
		awsRequestID,
		req.RequestContext.RequestID,
	)

	traceHeader := header(req.Headers, applog.TraceHeader)
	if traceHeader == "" {
		traceHeader = os.Getenv(envTraceID)
	}
	ctx = applog.WithRequest(ctx, traceHeader, requestID)

	method, path := routeParts(req)

	defer func() {
		if rec := recover(); rec != nil {
			applog.LoggerFromContext(ctx).LogAttrs(ctx, slog.LevelError, "panic recovered",
				slog.Any("error", rec),
				slog.String("stack", string(debug.Stack())),
			)
			resp = r.encode(ctx, respond.Internal(), req, requestID)
			err = nil
		}
		applog.LoggerFromContext(ctx).LogAttrs(ctx, slog.LevelInfo, "request completed",
			slog.String("method", method),
			slog.String("path", path),
			slog.Int("status", resp.StatusCode),
			slog.Int("bytes", len(resp.Body)),
			slog.Duration("duration", time.Since(start)),
		)
	}()

	return r.encode(ctx, r.dispatch(ctx, req, method, path), req, requestID), nil
}

func (r *Router) dispatch(ctx context.Context, req events.APIGatewayV2HTTPRequest, method, path string) respond.Result {
	if fn, ok := r.routes[method+" "+path]; ok {
		return fn(ctx, req)
	}
	if _, ok := r.paths[path]; ok {
		return respond.Error(http.StatusMethodNotAllowed, respond.MessageMethodNotAllowed)
	}
	return respond.Error(http.StatusNotFound, respond.MessageNotFound)
}

func (r *Router) encode(ctx context.Context, result respond.Result, req events.APIGatewayV2HTTPRequest, requestID string) events.APIGatewayV2HTTPResponse {
	enc := respond.Encode(ctx, result, header(req.Headers, "Accept"))

	headers := appmiddleware.SecurityHeaders()
	for k, v := range enc.Headers {
		headers[k] = v
	}
	headers["Vary"] = "Accept"
	headers[appmiddleware.HeaderXRequestID] = requestID

	resp := events.APIGatewayV2HTTPResponse{
		StatusCode: enc.Status,
		Headers:    headers,
		Body:       string(enc.Body),
	}
	if enc.Binary {
		resp.Body = base64.StdEncoding.EncodeToString(enc.Body)
		resp.IsBase64Encoded = true
	}
	return resp
}

// routeParts returns the method and path of req. The route key is used when
// API Gateway matched an explicit route, otherwise the raw request line.
func routeParts(req events.APIGatewayV2HTTPRequest) (method, path string) {
	if m, p, ok := strings.Cut(req.RouteKey, " "); ok {
		return m, p
	}
	method = req.RequestContext.HTTP.Method
	path = req.RawPath
	if path == "" {
		path = req.RequestContext.HTTP.Path
	}
	return method, path
}

// header looks up a header by name. API Gateway HTTP APIs lowercase header
// names, but test events and other proxies may not.
func header(headers map[string]string, name string) string {
	if v, ok := headers[strings.ToLower(name)]; ok {
		return v
	}
	for k, v := range headers {
		if strings.EqualFold(k, name) {
			return v
		}
	}
	return ""
}
