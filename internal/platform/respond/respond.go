package respond

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"strconv"
	"strings"

	"github.com/fxamacker/cbor/v2"
	"github.com/labstack/echo/v5"

	applog "github.com/janisto/catalog-lambda/internal/platform/logging"
	"github.com/janisto/catalog-lambda/internal/platform/validate"
)

const (
	ContentTypeJSON = "application/json"
	ContentTypeCBOR = "application/cbor"
)

// Result is the transport-neutral outcome of a handler invocation.
type Result struct {
	Status  int
	Headers map[string]string
	Body    any
}

// OK returns a 200 result with the given body.
func OK(body any) Result {
	return Result{Status: http.StatusOK, Body: body}
}

// Encoded is a Result rendered for the wire.
type Encoded struct {
	Status  int
	Headers map[string]string
	Body    []byte
	// Binary is set when Body is not UTF-8 text (CBOR).
	Binary bool
}

// internalBody is written when a result cannot be encoded.
var internalBody = []byte(`{"message":"` + MessageInternal + `"}`)

// Encode renders r as JSON, or CBOR when the Accept header prefers it.
// Encoding failures are logged and degrade to the generic 500 JSON body.
func Encode(ctx context.Context, r Result, accept string) Encoded {
	useCBOR := selectFormat(accept)

	var (
		body []byte
		err  error
	)
	if useCBOR {
		body, err = cbor.Marshal(r.Body)
	} else {
		body, err = marshalJSON(r.Body)
	}
	if err != nil {
		applog.LogError(ctx, "response encoding failed", err)
		return Encoded{
			Status:  http.StatusInternalServerError,
			Headers: map[string]string{"Content-Type": ContentTypeJSON},
			Body:    internalBody,
		}
	}

	headers := make(map[string]string, len(r.Headers)+1)
	for k, v := range r.Headers {
		headers[k] = v
	}
	if useCBOR {
		headers["Content-Type"] = ContentTypeCBOR
	} else {
		headers["Content-Type"] = ContentTypeJSON
	}

	return Encoded{
		Status:  r.Status,
		Headers: headers,
		Body:    body,
		Binary:  useCBOR,
	}
}

// marshalJSON encodes v without HTML escaping and without a trailing newline.
func marshalJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// Write sends r through Echo honoring content negotiation.
func Write(c *echo.Context, r Result) error {
	enc := Encode(c.Request().Context(), r, c.Request().Header.Get("Accept"))

	h := c.Response().Header()
	ensureVary(h, "Accept")
	contentType := enc.Headers["Content-Type"]
	for k, v := range enc.Headers {
		if k != "Content-Type" {
			h.Set(k, v)
		}
	}
	return c.Blob(enc.Status, contentType, enc.Body)
}

// mediaRange represents a parsed Accept header media range with quality value.
type mediaRange struct {
	typ     string
	subtype string
	q       float64
}

// parseAccept parses an Accept header value into media ranges per RFC 9110.
func parseAccept(header string) []mediaRange {
	if header == "" {
		return nil
	}

	var ranges []mediaRange
	for part := range strings.SplitSeq(header, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		mr := mediaRange{q: 1.0}
		mediaType := part
		if before, after, ok := strings.Cut(part, ";"); ok {
			mediaType = strings.TrimSpace(before)
			for param := range strings.SplitSeq(after, ";") {
				param = strings.TrimSpace(param)
				if strings.HasPrefix(strings.ToLower(param), "q=") {
					if qval, err := strconv.ParseFloat(param[2:], 64); err == nil && qval >= 0 && qval <= 1 {
						mr.q = qval
					}
				}
			}
		}

		if before, after, ok := strings.Cut(mediaType, "/"); ok {
			mr.typ = strings.ToLower(strings.TrimSpace(before))
			mr.subtype = strings.ToLower(strings.TrimSpace(after))
		} else {
			mr.typ = strings.ToLower(strings.TrimSpace(mediaType))
			mr.subtype = "*"
		}
		ranges = append(ranges, mr)
	}
	return ranges
}

// selectFormat reports whether CBOR is preferred over JSON.
// q-value ranks first, specificity breaks ties, JSON wins when undecided.
func selectFormat(header string) bool {
	ranges := parseAccept(header)
	if len(ranges) == 0 {
		return false
	}

	var cborQ, jsonQ float64 = -1, -1
	cborSpecificity, jsonSpecificity := 0, 0

	for _, mr := range ranges {
		if mr.q == 0 {
			continue
		}

		specificity := 0
		matchesCBOR, matchesJSON := false, false

		switch {
		case mr.typ == "application" && mr.subtype == "cbor":
			matchesCBOR = true
			specificity = 3
		case mr.typ == "application" && mr.subtype == "json":
			matchesJSON = true
			specificity = 3
		case mr.typ == "application" && strings.HasSuffix(mr.subtype, "+cbor"):
			matchesCBOR = true
			specificity = 3
		case mr.typ == "application" && strings.HasSuffix(mr.subtype, "+json"):
			matchesJSON = true
			specificity = 3
		case mr.typ == "application" && mr.subtype == "*":
			matchesCBOR = true
			matchesJSON = true
			specificity = 2
		case mr.typ == "*" && mr.subtype == "*":
			matchesCBOR = true
			matchesJSON = true
			specificity = 1
		}

		if matchesCBOR && (specificity > cborSpecificity || (specificity == cborSpecificity && mr.q > cborQ)) {
			cborQ = mr.q
			cborSpecificity = specificity
		}
		if matchesJSON && (specificity > jsonSpecificity || (specificity == jsonSpecificity && mr.q > jsonQ)) {
			jsonQ = mr.q
			jsonSpecificity = specificity
		}
	}

	if cborQ <= 0 && jsonQ <= 0 {
		return false
	}
	if cborQ > jsonQ {
		return true
	}
	if jsonQ > cborQ {
		return false
	}
	return cborSpecificity > jsonSpecificity
}

// ensureVary adds values to the Vary header without duplicating existing entries.
func ensureVary(h http.Header, values ...string) {
	existing := make(map[string]struct{})
	for _, v := range h.Values("Vary") {
		for part := range strings.SplitSeq(v, ",") {
			existing[strings.TrimSpace(part)] = struct{}{}
		}
	}
	for _, v := range values {
		if _, ok := existing[v]; !ok {
			h.Add("Vary", v)
			existing[v] = struct{}{}
		}
	}
}

// Recoverer returns Echo middleware that turns panics into the generic 500 response.
// Re-panics on http.ErrAbortHandler to preserve net/http abort semantics.
func Recoverer() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) (err error) {
			defer func() {
				if rec := recover(); rec != nil {
					if recErr, ok := rec.(error); ok && errors.Is(recErr, http.ErrAbortHandler) {
						panic(rec)
					}

					applog.LoggerFromContext(c.Request().Context()).LogAttrs(
						c.Request().Context(), slog.LevelError, "panic recovered",
						slog.Any("error", rec),
						slog.String("stack", string(debug.Stack())),
					)

					resp, unwrapErr := echo.UnwrapResponse(c.Response())
					if unwrapErr == nil && resp.Committed {
						return
					}
					err = Write(c, Internal())
				}
			}()
			return next(c)
		}
	}
}

// NewHTTPErrorHandler returns an Echo HTTPErrorHandler that writes ErrorBody responses.
func NewHTTPErrorHandler() echo.HTTPErrorHandler {
	return func(c *echo.Context, err error) {
		resp, unwrapErr := echo.UnwrapResponse(c.Response())
		if unwrapErr == nil && resp.Committed {
			return
		}

		ctx := c.Request().Context()

		var result Result
		var he *echo.HTTPError
		var ve *validate.ValidationError

		switch {
		case errors.As(err, &ve):
			result = Invalid(ve)
		case errors.Is(err, echo.ErrNotFound):
			result = Error(http.StatusNotFound, MessageNotFound)
		case errors.Is(err, echo.ErrMethodNotAllowed):
			result = Error(http.StatusMethodNotAllowed, MessageMethodNotAllowed)
		case errors.As(err, &he) && he.Code < http.StatusInternalServerError:
			result = Error(he.Code, fmt.Sprint(he.Message))
		default:
			result = Failure(ctx, err)
		}

		if writeErr := Write(c, result); writeErr != nil {
			applog.LogError(ctx, "error response write failed", writeErr)
		}
	}
}
