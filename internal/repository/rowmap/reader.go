package rowmap

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/civil"
)

var (
	dateLayouts = []string{
		"2006-01-02",
	}
	timestampLayouts = []string{
		"2006-01-02",
		"2006-01-02 15:04:05.999999999",
		"2006-01-02T15:04:05.999999999",
		"2006-01-02 15:04:05.999999999-07",
		"2006-01-02 15:04:05.999999999-07:00",
		time.RFC3339Nano,
	}
	timeLayouts = []string{
		"15:04:05.999999999",
		"15:04",
	}
)

// reader performs typed column reads on a Row. The first failure is kept
// and every later read becomes a no-op, so a mapper checks err once.
//
// Optional reads return nil for a stored NULL; required reads record
// ErrNullValue instead.
type reader struct {
	row Row
	err error
}

func newReader(row Row) *reader {
	return &reader{row: row}
}

func (r *reader) fail(column string, value any, err error) {
	if r.err == nil {
		r.err = &ColumnError{Column: column, Value: value, Err: err}
	}
}

// value fetches the raw driver value; ok is false after a failure.
func (r *reader) value(column string) (v any, ok bool) {
	if r.err != nil {
		return nil, false
	}
	v, err := r.row.Value(column)
	if err != nil {
		if !errors.Is(err, ErrColumnAccess) {
			err = fmt.Errorf("%w: %w", ErrColumnAccess, err)
		}
		r.fail(column, nil, err)
		return nil, false
	}
	return v, true
}

func (r *reader) required(column string, present bool) bool {
	if !present && r.err == nil {
		r.fail(column, nil, ErrNullValue)
	}
	return present
}

func (r *reader) convErr(column string, v any, err error) {
	r.fail(column, v, fmt.Errorf("%w: %v", ErrColumnAccess, err))
}

func (r *reader) text(column string) *string {
	v, ok := r.value(column)
	if !ok {
		return nil
	}
	var ns sql.NullString
	if err := ns.Scan(v); err != nil {
		r.convErr(column, v, err)
		return nil
	}
	if !ns.Valid {
		return nil
	}
	return &ns.String
}

func (r *reader) integer(column string) *int64 {
	v, ok := r.value(column)
	if !ok {
		return nil
	}
	var n sql.NullInt64
	if err := n.Scan(v); err != nil {
		r.convErr(column, v, err)
		return nil
	}
	if !n.Valid {
		return nil
	}
	return &n.Int64
}

func (r *reader) number(column string) *float64 {
	v, ok := r.value(column)
	if !ok {
		return nil
	}
	var f sql.NullFloat64
	if err := f.Scan(v); err != nil {
		r.convErr(column, v, err)
		return nil
	}
	if !f.Valid {
		return nil
	}
	return &f.Float64
}

func (r *reader) boolean(column string) *bool {
	v, ok := r.value(column)
	if !ok {
		return nil
	}
	var b sql.NullBool
	if err := b.Scan(v); err != nil {
		r.convErr(column, v, err)
		return nil
	}
	if !b.Valid {
		return nil
	}
	return &b.Bool
}

// temporal accepts driver time.Time values as well as ISO text. The wall
// clock of the value is kept as is.
func (r *reader) temporal(column string, layouts []string) *time.Time {
	v, ok := r.value(column)
	if !ok {
		return nil
	}
	var s string
	switch t := v.(type) {
	case nil:
		return nil
	case time.Time:
		return &t
	case string:
		s = t
	case []byte:
		s = string(t)
	default:
		r.convErr(column, v, fmt.Errorf("unsupported type %T", v))
		return nil
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	r.convErr(column, v, fmt.Errorf("unparsable value %q", s))
	return nil
}

func (r *reader) date(column string) *civil.Date {
	t := r.temporal(column, dateLayouts)
	if t == nil {
		return nil
	}
	d := civil.DateOf(*t)
	return &d
}

func (r *reader) dateTime(column string) *civil.DateTime {
	t := r.temporal(column, timestampLayouts)
	if t == nil {
		return nil
	}
	dt := civil.DateTimeOf(*t)
	return &dt
}

func (r *reader) timeOfDay(column string) *civil.Time {
	t := r.temporal(column, timeLayouts)
	if t == nil {
		return nil
	}
	tod := civil.TimeOf(*t)
	return &tod
}

func (r *reader) requiredInt64(column string) int64 {
	n := r.integer(column)
	if !r.required(column, n != nil) {
		return 0
	}
	return *n
}

func (r *reader) requiredBool(column string) bool {
	b := r.boolean(column)
	if !r.required(column, b != nil) {
		return false
	}
	return *b
}

func (r *reader) requiredDate(column string) civil.Date {
	d := r.date(column)
	if !r.required(column, d != nil) {
		return civil.Date{}
	}
	return *d
}

func (r *reader) requiredTime(column string) civil.Time {
	t := r.timeOfDay(column)
	if !r.required(column, t != nil) {
		return civil.Time{}
	}
	return *t
}

// id reads the mandatory identifier column.
func (r *reader) id() *int64 {
	n := r.integer("id")
	if !r.required("id", n != nil) {
		return nil
	}
	return n
}

// enum decodes a required string-coded enum column.
func enum[T ~string](r *reader, column string, parse func(string) (T, error)) T {
	var zero T
	code := r.text(column)
	if !r.required(column, code != nil) {
		return zero
	}
	m, err := parse(*code)
	if err != nil {
		r.fail(column, *code, fmt.Errorf("%w: %w", ErrEnumDecode, err))
		return zero
	}
	return m
}

// optionalEnum decodes an enum column that may be null.
func optionalEnum[T ~string](r *reader, column string, parse func(string) (T, error)) *T {
	code := r.text(column)
	if code == nil {
		return nil
	}
	m, err := parse(*code)
	if err != nil {
		r.fail(column, *code, fmt.Errorf("%w: %w", ErrEnumDecode, err))
		return nil
	}
	return &m
}

// done wraps the first failure for entity, if any.
func (r *reader) done(entity string) error {
	if r.err == nil {
		return nil
	}
	return &MappingError{Entity: entity, Err: r.err}
}
