package util

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	srvErrors "github.com/unison/inventory-manager/pkg/errors"
)

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}

// OptionalDecimal parses an optional filter bound. Blank input yields nil;
// anything unparsable is a ValidationError naming field.
func OptionalDecimal(field, raw string) (*decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, srvErrors.NewValidationErrorf("invalid %s %q", field, raw)
	}
	return &d, nil
}

// OptionalInt64 is OptionalDecimal for whole numbers.
func OptionalInt64(field, raw string) (*int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, srvErrors.NewValidationErrorf("invalid %s %q", field, raw)
	}
	return &n, nil
}
