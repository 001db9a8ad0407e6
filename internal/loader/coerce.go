package loader

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformedRow marks a serialized row that is missing an expected column.
// It aborts the current table's load and rolls back the whole ingestion.
var ErrMalformedRow = errors.New("malformed row")

// Kind selects the coercion applied to a text field before insertion.
// KindText passes the value through unchanged.
type Kind int

const (
	KindText Kind = iota
	KindInt
	KindFloat
	KindBool
)

var truthyTokens = map[string]bool{"1": true, "true": true, "t": true, "yes": true, "y": true}
var falsyTokens = map[string]bool{"0": true, "false": true, "f": true, "no": true, "n": true}

// Coerce maps a text field to the store's native type. Numeric parse failures
// are errors. Boolean tokens are lenient: anything outside the recognized
// truthy/falsy sets, including the empty string, coerces to nil rather than
// failing — an unrecognized token is a data-quality signal, not an ingestion
// failure.
func Coerce(value string, kind Kind) (interface{}, error) {
	switch kind {
	case KindText:
		return value, nil
	case KindInt:
		n, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("cannot coerce %q to integer: %w", value, err)
		}
		return n, nil
	case KindFloat:
		f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return nil, fmt.Errorf("cannot coerce %q to float: %w", value, err)
		}
		return f, nil
	case KindBool:
		token := strings.ToLower(strings.TrimSpace(value))
		if truthyTokens[token] {
			return int64(1), nil
		}
		if falsyTokens[token] {
			return int64(0), nil
		}
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown coercion kind %d", kind)
	}
}
