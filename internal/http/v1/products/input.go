package products

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/janisto/catalog-lambda/internal/platform/pagination"
	"github.com/janisto/catalog-lambda/internal/platform/validate"
)

// ListQuery is the validated query of a product listing request.
// Cursor is opaque here; the product service decides whether it is usable.
type ListQuery struct {
	Limit  int     `query:"limit"  validate:"min=1,max=100"`
	Cursor *string `query:"cursor"`
}

var queryValidator = validate.New()

// ParseListQuery coerces and validates raw query parameters.
// A missing limit defaults to pagination.DefaultLimit; a present one must be
// numerically an integer between 1 and pagination.MaxLimit ("5", " 5 ",
// "5.0" and "5e0" are all 5). Any present cursor string is passed through
// unchanged. Unknown keys are ignored. On failure the error is a
// *validate.ValidationError.
func ParseListQuery(raw map[string]string) (ListQuery, error) {
	q := ListQuery{Limit: pagination.DefaultLimit}

	if v, ok := raw["limit"]; ok {
		n, ok := coerceInt(v)
		if !ok {
			return ListQuery{}, validate.Failed(validate.Field("limit", "limit must be an integer", v))
		}
		q.Limit = n
	}
	if v, ok := raw["cursor"]; ok {
		q.Cursor = &v
	}

	if err := queryValidator.Validate(q); err != nil {
		return ListQuery{}, err
	}
	return q, nil
}

// limitBound keeps coerced values inside int range while still failing the
// min/max rules for anything far outside them.
const limitBound = 1 << 30

// coerceInt converts s to an integer the way numeric coercion does:
// surrounding whitespace is ignored, a blank string is zero, and decimal or
// exponent forms are accepted when they denote a whole number.
func coerceInt(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	return int(max(min(f, limitBound), -limitBound)), true
}
