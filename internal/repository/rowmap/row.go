// Package rowmap turns single result rows into entities.
//
// Every Map function is pure: it reads the columns it needs from one Row,
// converts them and returns a new entity, or fails without returning one.
// Related entities are attached as model.Ref stand-ins carrying only the
// foreign key. Hydrating them is left to the repositories.
package rowmap

import (
	"fmt"
)

// Row is one already-fetched result row with access by column name.
//
// Value returns nil for a stored NULL. It returns an error when the
// column is not part of the row.
type Row interface {
	Value(column string) (any, error)
}

// MapRow is a Row backed by a map, the shape produced by sqlx MapScan.
type MapRow map[string]any

func (m MapRow) Value(column string) (any, error) {
	v, ok := m[column]
	if !ok {
		return nil, fmt.Errorf("%w: not in result set", ErrColumnAccess)
	}
	return v, nil
}
