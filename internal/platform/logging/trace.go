package logging

import (
	"log/slog"
	"os"
	"regexp"
	"strings"
)

// TraceHeader is the AWS X-Ray propagation header set by API Gateway.
const TraceHeader = "X-Amzn-Trace-Id"

// Root=1-{8 hex epoch}-{24 hex id}
var traceRootRe = regexp.MustCompile(`^1-[0-9a-fA-F]{8}-[0-9a-fA-F]{24}$`)

// parseTraceHeader splits "Root=...;Parent=...;Sampled=1" into its fields.
// Unknown keys are ignored.
func parseTraceHeader(header string) (root, parent, sampled string) {
	for field := range strings.SplitSeq(header, ";") {
		key, value, ok := strings.Cut(strings.TrimSpace(field), "=")
		if !ok {
			continue
		}
		switch key {
		case "Root":
			root = value
		case "Parent":
			parent = value
		case "Sampled":
			sampled = value
		}
	}
	return root, parent, sampled
}

func traceRoot(header string) string {
	root, _, _ := parseTraceHeader(header)
	if !traceRootRe.MatchString(root) {
		return ""
	}
	return root
}

func traceAttrs(header string) []slog.Attr {
	root, parent, sampled := parseTraceHeader(header)
	if !traceRootRe.MatchString(root) {
		return nil
	}
	attrs := []slog.Attr{slog.String("xray_trace_id", root)}
	if parent != "" {
		attrs = append(attrs, slog.String("xray_parent_id", parent))
	}
	if sampled != "" {
		attrs = append(attrs, slog.Bool("xray_sampled", sampled == "1"))
	}
	return attrs
}

func loggerWithTrace(base *slog.Logger, header, requestID string) *slog.Logger {
	if base == nil {
		base = slog.New(slog.NewJSONHandler(os.Stdout, nil))
	}
	attrs := traceAttrs(header)
	if requestID != "" {
		attrs = append(attrs, slog.String("requestId", requestID))
	}
	if len(attrs) == 0 {
		return base
	}
	args := make([]any, len(attrs))
	for i, a := range attrs {
		args[i] = a
	}
	return base.With(args...)
}
