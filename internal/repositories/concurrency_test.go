package repositories

import (
	"context"
	"testing"

	"github.com/jackc/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poofware/mono-repo/backend/services/housekeeping-service/internal/models"
	"github.com/poofware/mono-repo/backend/services/housekeeping-service/internal/utils"
)

func TestWithRetry_GivesUpOnContention(t *testing.T) {
	calls := 0
	get := func(_ context.Context, id int64) (*models.House, error) {
		return &models.House{ID: id, Versioned: models.Versioned{RowVersion: 7}}, nil
	}
	update := func(context.Context, *models.House, int64) (pgconn.CommandTag, error) {
		calls++
		return pgconn.CommandTag("UPDATE 0"), nil
	}

	err := WithRetry(context.Background(), 3, 1, get, update, func(*models.House) error { return nil })
	require.Error(t, err)
	assert.ErrorIs(t, err, utils.ErrRowVersionConflict)
	assert.Equal(t, 3, calls)
}

func TestWithRetry_SucceedsAfterConflict(t *testing.T) {
	calls := 0
	get := func(_ context.Context, id int64) (*models.House, error) {
		return &models.House{ID: id, Versioned: models.Versioned{RowVersion: int64(calls + 1)}}, nil
	}
	update := func(_ context.Context, _ *models.House, expected int64) (pgconn.CommandTag, error) {
		calls++
		if calls < 2 {
			return pgconn.CommandTag("UPDATE 0"), nil
		}
		return pgconn.CommandTag("UPDATE 1"), nil
	}

	var last *models.House
	err := WithRetry(context.Background(), 3, 1, get, update, func(h *models.House) error {
		last = h
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	assert.Equal(t, int64(3), last.RowVersion)
}

func TestWithRetry_MutateErrorStopsLoop(t *testing.T) {
	get := func(_ context.Context, id int64) (*models.House, error) { return &models.House{ID: id}, nil }
	update := func(context.Context, *models.House, int64) (pgconn.CommandTag, error) {
		t.Fatal("update must not run")
		return nil, nil
	}

	err := WithRetry(context.Background(), 3, 1, get, update, func(*models.House) error {
		return utils.ErrInvalidStatus
	})
	assert.ErrorIs(t, err, utils.ErrInvalidStatus)
}
