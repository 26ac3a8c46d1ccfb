package auth

import (
	"context"

	"github.com/labstack/echo/v5"
)

// Trust-boundary headers set by the gateway that fronts the local server.
const (
	HeaderUserID = "X-Authorizer-User-Id"
	HeaderEmail  = "X-Authorizer-Email"
	HeaderRole   = "X-Authorizer-Role"
)

// identityContextKey is the context key for the caller identity.
type identityContextKey struct{}

// Middleware returns Echo middleware that copies the authorizer headers into
// an Identity on the request context. It never rejects a request.
func Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			h := c.Request().Header
			identity := Identity{
				UserID: h.Get(HeaderUserID),
				Email:  h.Get(HeaderEmail),
				Role:   h.Get(HeaderRole),
			}

			c.SetRequest(c.Request().WithContext(WithIdentity(c.Request().Context(), identity)))

			return next(c)
		}
	}
}

// WithIdentity returns ctx carrying identity.
func WithIdentity(ctx context.Context, identity Identity) context.Context {
	return context.WithValue(ctx, identityContextKey{}, identity)
}

// FromContext retrieves the identity stored by Middleware or WithIdentity.
// The zero Identity is returned when neither ran.
func FromContext(ctx context.Context) Identity {
	identity, _ := ctx.Value(identityContextKey{}).(Identity)
	return identity
}
