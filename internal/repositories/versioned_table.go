package repositories

import (
	"context"

	"github.com/jackc/pgx/v4"
)

// versionedTable reads single rows of one table by id and runs
// optimistic updates against them.
type versionedTable[T EntityWithVersion] struct {
	db         DB
	selectByID string
	scan       func(pgx.Row) (T, error)
	update     UpdateIfVersionFunc[T]
	retries    int
}

func newVersionedTable[T EntityWithVersion](
	db DB,
	selectByID string,
	scan func(pgx.Row) (T, error),
	update UpdateIfVersionFunc[T],
	retries int,
) *versionedTable[T] {
	return &versionedTable[T]{
		db:         db,
		selectByID: selectByID,
		scan:       scan,
		update:     update,
		retries:    retries,
	}
}

func (v *versionedTable[T]) byID(ctx context.Context, id int64) (T, error) {
	return v.scan(v.db.QueryRow(ctx, v.selectByID, id))
}

func (v *versionedTable[T]) updateWithRetry(ctx context.Context, id int64, mutate func(T) error) error {
	return WithRetry(ctx, v.retries, id, v.byID, v.update, mutate)
}
