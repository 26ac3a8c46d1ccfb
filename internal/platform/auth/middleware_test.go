package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v5"
)

func TestMiddleware_ReadsHeaders(t *testing.T) {
	e := echo.New()
	e.Use(Middleware())

	e.GET("/test", func(c *echo.Context) error {
		return c.JSON(http.StatusOK, FromContext(c.Request().Context()))
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set(HeaderUserID, "user-1")
	req.Header.Set(HeaderEmail, "seller@example.com")
	req.Header.Set(HeaderRole, "seller")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d; body: %s", rec.Code, rec.Body.String())
	}

	var got Identity
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}
	want := Identity{UserID: "user-1", Email: "seller@example.com", Role: "seller"}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestMiddleware_MissingHeadersDoesNotReject(t *testing.T) {
	e := echo.New()
	e.Use(Middleware())
	e.GET("/test", func(c *echo.Context) error {
		return c.JSON(http.StatusOK, FromContext(c.Request().Context()))
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestFromContext_WithoutMiddleware(t *testing.T) {
	e := echo.New()
	var got Identity
	e.GET("/test", func(c *echo.Context) error {
		got = FromContext(c.Request().Context())
		return c.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	e.ServeHTTP(httptest.NewRecorder(), req)

	if got != (Identity{}) {
		t.Fatalf("expected zero identity, got %+v", got)
	}
}

func TestFromContext_Empty(t *testing.T) {
	if got := FromContext(context.Background()); got != (Identity{}) {
		t.Fatalf("expected zero identity, got %+v", got)
	}
}

func TestWithIdentity(t *testing.T) {
	id := Identity{UserID: "u", Email: "e", Role: "admin"}
	if got := FromContext(WithIdentity(context.Background(), id)); got != id {
		t.Fatalf("expected %+v, got %+v", id, got)
	}
}
