package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"

	"github.com/poofware/mono-repo/backend/services/housekeeping-service/internal/utils"
)

// EntityWithVersion is a row guarded by a row_version counter. T must be
// comparable so a missing row (nil pointer) can be detected.
type EntityWithVersion interface {
	comparable
	GetID() int64
	GetRowVersion() int64
	SetRowVersion(int64)
}

// UpdateIfVersionFunc writes entity only while its stored version still
// equals expectedVersion; zero rows affected means someone got there first.
type UpdateIfVersionFunc[T EntityWithVersion] func(ctx context.Context, entity T, expectedVersion int64) (pgconn.CommandTag, error)

type GetByIDFunc[T EntityWithVersion] func(ctx context.Context, id int64) (T, error)

// WithRetry reloads the row, applies mutate and writes it back, retrying
// on version conflicts up to attempts times. A missing row yields
// pgx.ErrNoRows; exhausting the attempts wraps utils.ErrRowVersionConflict.
func WithRetry[T EntityWithVersion](
	ctx context.Context,
	attempts int,
	id int64,
	load GetByIDFunc[T],
	write UpdateIfVersionFunc[T],
	mutate func(T) error,
) error {
	var missing T
	for i := 1; i <= attempts; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		current, err := load(ctx, id)
		if err != nil {
			return err
		}
		if current == missing {
			return pgx.ErrNoRows
		}

		seen := current.GetRowVersion()
		if err := mutate(current); err != nil {
			return err
		}

		tag, err := write(ctx, current, seen)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 1 {
			current.SetRowVersion(seen + 1)
			return nil
		}
		utils.Logger.WithField("id", id).Debugf("Row version %d stale on attempt %d/%d", seen, i, attempts)
	}
	return fmt.Errorf("row %d still contended after %d attempts: %w", id, attempts, utils.ErrRowVersionConflict)
}
