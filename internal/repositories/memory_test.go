package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poofware/mono-repo/backend/services/housekeeping-service/internal/models"
)

func newHouse(t models.HouseType, n int) *models.House {
	return &models.House{
		Name:           models.HouseName(t, n),
		Number:         n,
		Type:           t,
		Classification: models.ClassificationFor(t, n),
	}
}

func TestMemoryStore_CreateDefaults(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	h := newHouse(models.HouseTypeIndoor, 1)
	require.NoError(t, s.Houses().Create(ctx, h))
	assert.Equal(t, int64(1), h.ID)
	assert.Equal(t, models.HouseStatusClean, h.Status)
	assert.Equal(t, models.CheckStateNone, h.CheckState)
	assert.Equal(t, int64(1), h.RowVersion)

	n := &models.Note{HouseID: h.ID, Category: models.NoteCategoryMinor, Content: "x"}
	require.NoError(t, s.Notes().Create(ctx, n))
	assert.Equal(t, models.DefaultNoteAuthor, n.CreatedBy)
	assert.Equal(t, models.NoteAreaOther, n.Area)
	assert.False(t, n.CreatedAt.IsZero())
}

func TestMemoryStore_NoteRequiresHouse(t *testing.T) {
	s := NewMemoryStore()
	err := s.Notes().Create(context.Background(), &models.Note{HouseID: 42, Category: models.NoteCategoryOther, Content: "x"})
	assert.ErrorIs(t, err, ErrParentNotFound)

	count, err := s.Notes().Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestMemoryStore_NotesNewestFirst(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	h := newHouse(models.HouseTypeOutdoor, 5)
	require.NoError(t, s.Houses().Create(ctx, h))

	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	for i, off := range []time.Duration{-2 * time.Hour, -24 * time.Hour, -time.Minute} {
		require.NoError(t, s.Notes().Create(ctx, &models.Note{
			HouseID:   h.ID,
			Category:  models.NoteCategoryCritical,
			Content:   string(rune('a' + i)),
			CreatedAt: base.Add(off),
		}))
	}

	got, err := s.Houses().GetWithNotes(ctx, h.ID)
	require.NoError(t, err)
	require.Len(t, got.Notes, 3)
	assert.Equal(t, "c", got.Notes[0].Content)
	assert.Equal(t, "a", got.Notes[1].Content)
	assert.Equal(t, "b", got.Notes[2].Content)
}

func TestMemoryStore_ListWithNotesReturnsCopies(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	require.NoError(t, s.Houses().CreateMany(ctx, []*models.House{
		newHouse(models.HouseTypeIndoor, 1),
		newHouse(models.HouseTypeIndoor, 2),
	}))

	list, err := s.Houses().ListWithNotes(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, int64(1), list[0].ID)
	assert.NotNil(t, list[0].Notes)

	list[0].Status = models.HouseStatusDirty
	again, err := s.Houses().GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, models.HouseStatusClean, again.Status)
}

func TestMemoryStore_UpdateWithRetry(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	h := newHouse(models.HouseTypeIndoor, 3)
	require.NoError(t, s.Houses().Create(ctx, h))

	err := s.Houses().UpdateWithRetry(ctx, h.ID, func(cur *models.House) error {
		cur.Status = models.HouseStatusOccupied
		return nil
	})
	require.NoError(t, err)

	got, err := s.Houses().GetByID(ctx, h.ID)
	require.NoError(t, err)
	assert.Equal(t, models.HouseStatusOccupied, got.Status)
	assert.Equal(t, int64(2), got.RowVersion)

	err = s.Houses().UpdateWithRetry(ctx, 999, func(*models.House) error { return nil })
	assert.ErrorIs(t, err, pgx.ErrNoRows)
}

func TestMemoryStore_ResetCheckStates(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	a := newHouse(models.HouseTypeIndoor, 1)
	a.CheckState = models.CheckStateCheckIn
	b := newHouse(models.HouseTypeIndoor, 2)
	require.NoError(t, s.Houses().CreateMany(ctx, []*models.House{a, b}))

	changed, err := s.Houses().ResetCheckStates(ctx, models.CheckStateNone)
	require.NoError(t, err)
	assert.Equal(t, int64(1), changed)

	got, err := s.Houses().GetByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, models.CheckStateNone, got.CheckState)
}

func TestMemoryStore_DeleteCascades(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	h := newHouse(models.HouseTypeIndoor, 1)
	require.NoError(t, s.Houses().Create(ctx, h))
	require.NoError(t, s.Notes().Create(ctx, &models.Note{HouseID: h.ID, Category: models.NoteCategoryOther, Content: "x"}))

	require.NoError(t, s.Houses().Delete(ctx, h.ID))
	count, err := s.Notes().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	assert.ErrorIs(t, s.Houses().Delete(ctx, h.ID), pgx.ErrNoRows)
	assert.ErrorIs(t, s.Notes().Delete(ctx, 1), pgx.ErrNoRows)
}
