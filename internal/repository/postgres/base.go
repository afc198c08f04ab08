package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/jwalitptl/dental-tech/internal/repository/rowmap"
	apperrors "github.com/jwalitptl/dental-tech/pkg/errors"
	"github.com/jwalitptl/dental-tech/pkg/logger"
	"github.com/jwalitptl/dental-tech/pkg/metrics"
)

// Options tunes the repositories.
type Options struct {
	// SkipMalformedRows drops rows that fail to map from multi-row results
	// instead of failing the whole query. Single-row lookups always fail.
	SkipMalformedRows bool
}

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	db      *sqlx.DB
	log     *logger.Logger
	metrics *metrics.Metrics
	opts    Options
}

// NewBaseRepository creates a new base repository
func NewBaseRepository(db *sqlx.DB, log *logger.Logger, m *metrics.Metrics, opts Options) *BaseRepository {
	if log == nil {
		log = logger.Nop()
	}
	return &BaseRepository{db: db, log: log, metrics: m, opts: opts}
}

// GetDB returns the database instance
func (r *BaseRepository) GetDB() *sqlx.DB {
	return r.db
}

// Logger returns the repository logger
func (r *BaseRepository) Logger() *logger.Logger {
	return r.log
}

func (r *BaseRepository) observe(operation string, start time.Time, err error) {
	if r.metrics != nil {
		r.metrics.ObserveQuery(operation, start, err)
	}
}

func (r *BaseRepository) mappingFailed(entity string, err error) {
	if r.metrics != nil {
		r.metrics.MappingFailed(entity, rowmap.Kind(err))
	}
}

func (r *BaseRepository) rowMapped(entity string) {
	if r.metrics != nil {
		r.metrics.RowMapped(entity)
	}
}

// queryRows runs a statement and maps every row with mapFn. The cursor is
// owned and closed here; mapFn only sees buffered column values.
func queryRows[T any](ctx context.Context, r *BaseRepository, entity, operation string, skip bool, mapFn func(rowmap.Row) (*T, error), stmt string, args ...interface{}) (items []*T, err error) {
	start := time.Now()
	defer func() { r.observe(operation, start, err) }()

	rows, err := r.db.QueryxContext(ctx, stmt, args...)
	if err != nil {
		r.log.Error(err, "query failed", "operation", operation)
		return nil, apperrors.Internal(fmt.Errorf("failed to %s: %w", operation, err))
	}
	defer rows.Close()

	for rows.Next() {
		row := rowmap.MapRow{}
		if err := rows.MapScan(row); err != nil {
			return nil, apperrors.Internal(fmt.Errorf("failed to scan %s row: %w", entity, err))
		}

		item, err := mapFn(row)
		if err != nil {
			r.mappingFailed(entity, err)
			if skip {
				r.log.Warn(err, "skipping malformed row", "entity", entity, "operation", operation)
				continue
			}
			r.log.Error(err, "row mapping failed", "entity", entity, "operation", operation)
			return nil, apperrors.Mapping(entity, err)
		}
		r.rowMapped(entity)
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Internal(fmt.Errorf("failed to %s: %w", operation, err))
	}

	return items, nil
}

// selectAll maps every row, honouring Options.SkipMalformedRows.
func selectAll[T any](ctx context.Context, r *BaseRepository, entity, operation string, mapFn func(rowmap.Row) (*T, error), stmt string, args ...interface{}) ([]*T, error) {
	return queryRows(ctx, r, entity, operation, r.opts.SkipMalformedRows, mapFn, stmt, args...)
}

// selectOne maps exactly one row; no row is a NotFound error.
func selectOne[T any](ctx context.Context, r *BaseRepository, entity, operation string, mapFn func(rowmap.Row) (*T, error), stmt string, args ...interface{}) (*T, error) {
	items, err := queryRows(ctx, r, entity, operation, false, mapFn, stmt, args...)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, apperrors.NotFound(entity, sql.ErrNoRows)
	}
	return items[0], nil
}

// columns renders a quoted, optionally alias-qualified column list. The
// schema uses camelCase names, which Postgres folds unless quoted.
func columns(alias string, names ...string) string {
	quoted := make([]string, len(names))
	for i, name := range names {
		quoted[i] = `"` + name + `"`
		if alias != "" {
			quoted[i] = alias + "." + quoted[i]
		}
	}
	return strings.Join(quoted, ", ")
}
