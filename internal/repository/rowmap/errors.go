package rowmap

import (
	"errors"
	"fmt"
)

var (
	// ErrColumnAccess means the column is absent from the row or holds a
	// value that cannot be converted to the requested type.
	ErrColumnAccess = errors.New("column access failed")
	// ErrNullValue means a column that must not be null was null.
	ErrNullValue = errors.New("required column is null")
	// ErrEnumDecode means the stored code matches no enum member.
	ErrEnumDecode = errors.New("enum decode failed")
)

// Failure kinds, as reported by Kind.
const (
	KindColumnAccess = "column_access"
	KindNullValue    = "null_value"
	KindEnumDecode   = "enum_decode"
	KindUnknown      = "unknown"
)

// ColumnError identifies the column, and the offending value when there
// is one, behind a mapping failure.
type ColumnError struct {
	Column string
	Value  any
	Err    error
}

func (e *ColumnError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("column %q value %v: %v", e.Column, e.Value, e.Err)
	}
	return fmt.Sprintf("column %q: %v", e.Column, e.Err)
}

func (e *ColumnError) Unwrap() error {
	return e.Err
}

// MappingError is returned by every Map function. No entity is returned
// alongside it.
type MappingError struct {
	Entity string
	Err    error
}

func (e *MappingError) Error() string {
	return fmt.Sprintf("map %s row: %v", e.Entity, e.Err)
}

func (e *MappingError) Unwrap() error {
	return e.Err
}

// Kind classifies a mapping failure for logs and metrics.
func Kind(err error) string {
	switch {
	case errors.Is(err, ErrNullValue):
		return KindNullValue
	case errors.Is(err, ErrEnumDecode):
		return KindEnumDecode
	case errors.Is(err, ErrColumnAccess):
		return KindColumnAccess
	default:
		return KindUnknown
	}
}
