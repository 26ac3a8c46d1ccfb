package logging

import (
	"context"
	"log/slog"
)

// AuditEvent describes who touched which resource and with what outcome.
type AuditEvent struct {
	Action       string
	UserID       string
	Email        string
	Role         string
	ResourceType string
	ResourceID   string
	Result       string
	Details      map[string]any
}

// LogAuditEvent logs a structured audit event.
func LogAuditEvent(ctx context.Context, ev AuditEvent) {
	attrs := []slog.Attr{
		slog.String("audit.action", ev.Action),
		slog.String("audit.user_id", ev.UserID),
		slog.String("audit.email", ev.Email),
		slog.String("audit.role", ev.Role),
		slog.String("audit.resource_type", ev.ResourceType),
		slog.String("audit.result", ev.Result),
	}
	if ev.ResourceID != "" {
		attrs = append(attrs, slog.String("audit.resource_id", ev.ResourceID))
	}
	if len(ev.Details) > 0 {
		attrs = append(attrs, slog.Any("audit.details", ev.Details))
	}
	LoggerFromContext(ctx).LogAttrs(ctx, slog.LevelInfo, "audit event", attrs...)
}
