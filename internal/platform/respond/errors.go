package respond

import (
	"context"
	"errors"
	"net/http"

	applog "github.com/janisto/catalog-lambda/internal/platform/logging"
	"github.com/janisto/catalog-lambda/internal/platform/validate"
)

// Client-facing messages.
const (
	MessageInvalidQuery     = "Erro nos parâmetros da query."
	MessageInternal         = "Erro interno do servidor."
	MessageNotFound         = "Recurso não encontrado."
	MessageMethodNotAllowed = "Método não permitido."
)

// ErrorBody is the JSON body of every non-2xx response.
type ErrorBody struct {
	Message string        `json:"message"          cbor:"message"          example:"Erro nos parâmetros da query."`
	Errors  []ErrorDetail `json:"errors,omitempty" cbor:"errors,omitempty"`
}

// ErrorDetail is a single field-level validation failure.
type ErrorDetail struct {
	Message string   `json:"message" cbor:"message" example:"limit must be at least 1"`
	Path    []string `json:"path"    cbor:"path"`
}

// Error returns a result carrying only a message.
func Error(status int, message string) Result {
	return Result{Status: status, Body: ErrorBody{Message: message}}
}

// Internal returns the generic 500 result.
func Internal() Result {
	return Error(http.StatusInternalServerError, MessageInternal)
}

// Failure maps err to a result. Validation failures become 400 with
// itemized field errors; everything else is logged and becomes a generic 500
// so internal detail never reaches the caller.
func Failure(ctx context.Context, err error) Result {
	var ve *validate.ValidationError
	if errors.As(err, &ve) {
		return Invalid(ve)
	}

	applog.LogError(ctx, "unexpected error", err)
	return Internal()
}

// Invalid returns the 400 result for a validation failure.
func Invalid(ve *validate.ValidationError) Result {
	details := make([]ErrorDetail, len(ve.Fields))
	for i, f := range ve.Fields {
		details[i] = ErrorDetail{Message: f.Message, Path: f.Path}
	}
	return Result{
		Status: http.StatusBadRequest,
		Body:   ErrorBody{Message: MessageInvalidQuery, Errors: details},
	}
}
