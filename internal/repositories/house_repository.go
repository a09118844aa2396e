package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"

	"github.com/poofware/mono-repo/backend/services/housekeeping-service/internal/constants"
	"github.com/poofware/mono-repo/backend/services/housekeeping-service/internal/models"
)

/* ------------------------------------------------------------------
   Public interface
------------------------------------------------------------------ */

type HouseRepository interface {
	Create(ctx context.Context, h *models.House) error
	CreateMany(ctx context.Context, houses []*models.House) error

	GetByID(ctx context.Context, id int64) (*models.House, error)
	GetWithNotes(ctx context.Context, id int64) (*models.House, error)
	ListWithNotes(ctx context.Context) ([]*models.House, error)
	Count(ctx context.Context) (int, error)

	UpdateIfVersion(ctx context.Context, h *models.House, expected int64) (pgconn.CommandTag, error)
	UpdateWithRetry(ctx context.Context, id int64, mutate func(*models.House) error) error
	ResetCheckStates(ctx context.Context, state models.CheckStateType) (int64, error)

	Delete(ctx context.Context, id int64) error
}

/* ------------------------------------------------------------------
   Implementation
------------------------------------------------------------------ */

type houseRepo struct {
	db   DB
	rows *versionedTable[*models.House]
}

func NewHouseRepository(db DB) HouseRepository {
	r := &houseRepo{db: db}
	r.rows = newVersionedTable(
		db,
		baseSelectHouse()+" WHERE id=$1",
		r.scanHouse,
		r.UpdateIfVersion,
		constants.HouseUpdateMaxRetries,
	)
	return r
}

/* ---------- Create ---------- */

func (r *houseRepo) Create(ctx context.Context, h *models.House) error {
	if h.Status == "" {
		h.Status = models.HouseStatusClean
	}
	if h.CheckState == "" {
		h.CheckState = models.CheckStateNone
	}
	err := r.db.QueryRow(ctx, `
        INSERT INTO houses (
            name, number, type, classification, status, check_state,
            created_at, updated_at, row_version
        ) VALUES ($1,$2,$3,$4,$5,$6,NOW(),NOW(),1)
        RETURNING id, created_at, updated_at, row_version
    `,
		h.Name, h.Number, h.Type, h.Classification, h.Status, h.CheckState,
	).Scan(&h.ID, &h.CreatedAt, &h.UpdatedAt, &h.RowVersion)
	if isUniqueViolation(err) {
		return ErrDuplicateHouse
	}
	return err
}

func (r *houseRepo) CreateMany(ctx context.Context, houses []*models.House) error {
	for _, h := range houses {
		if err := r.Create(ctx, h); err != nil {
			return err
		}
	}
	return nil
}

/* ---------- Reads ---------- */

func (r *houseRepo) GetByID(ctx context.Context, id int64) (*models.House, error) {
	return r.rows.byID(ctx, id)
}

func (r *houseRepo) GetWithNotes(ctx context.Context, id int64) (*models.House, error) {
	h, err := r.GetByID(ctx, id)
	if err != nil || h == nil {
		return h, err
	}

	rows, err := r.db.Query(ctx, baseSelectNote()+" WHERE house_id=$1 ORDER BY created_at DESC, id DESC", id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	h.Notes = []*models.Note{}
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			return nil, err
		}
		h.Notes = append(h.Notes, n)
	}
	return h, rows.Err()
}

// ListWithNotes loads every house and every note in two queries and
// attaches notes newest first.
func (r *houseRepo) ListWithNotes(ctx context.Context) ([]*models.House, error) {
	rows, err := r.db.Query(ctx, baseSelectHouse()+" ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*models.House{}
	byID := make(map[int64]*models.House)
	for rows.Next() {
		h, err := r.scanHouse(rows)
		if err != nil {
			return nil, err
		}
		h.Notes = []*models.Note{}
		byID[h.ID] = h
		out = append(out, h)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	rows.Close()

	noteRows, err := r.db.Query(ctx, baseSelectNote()+" ORDER BY created_at DESC, id DESC")
	if err != nil {
		return nil, err
	}
	defer noteRows.Close()

	for noteRows.Next() {
		n, err := scanNote(noteRows)
		if err != nil {
			return nil, err
		}
		if h, ok := byID[n.HouseID]; ok {
			h.Notes = append(h.Notes, n)
		}
	}
	return out, noteRows.Err()
}

func (r *houseRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM houses`).Scan(&n)
	return n, err
}

/* ---------- Updates ---------- */

func (r *houseRepo) UpdateIfVersion(ctx context.Context, h *models.House, expected int64) (pgconn.CommandTag, error) {
	return r.db.Exec(ctx, `
        UPDATE houses SET
            status=$1,
            check_state=$2,
            updated_at=NOW(),
            row_version=row_version+1
        WHERE id=$3 AND row_version=$4
    `,
		h.Status, h.CheckState, h.ID, expected,
	)
}

func (r *houseRepo) UpdateWithRetry(ctx context.Context, id int64, mutate func(*models.House) error) error {
	return r.rows.updateWithRetry(ctx, id, mutate)
}

// ResetCheckStates sets every house whose check state differs from state
// and reports how many rows changed.
func (r *houseRepo) ResetCheckStates(ctx context.Context, state models.CheckStateType) (int64, error) {
	tag, err := r.db.Exec(ctx, `
        UPDATE houses SET
            check_state=$1,
            updated_at=NOW(),
            row_version=row_version+1
        WHERE check_state<>$1
    `, state)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

/* ---------- Delete ---------- */

// Delete removes a house; its notes go with it through ON DELETE CASCADE.
func (r *houseRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM houses WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

/* ------------------------------------------------------------------
   Internal helpers
------------------------------------------------------------------ */

func baseSelectHouse() string {
	return `
        SELECT
            id, name, number, type, classification, status, check_state,
            created_at, updated_at, row_version
        FROM houses
    `
}

func (r *houseRepo) scanHouse(row pgx.Row) (*models.House, error) {
	h := &models.House{}
	err := row.Scan(
		&h.ID, &h.Name, &h.Number, &h.Type, &h.Classification, &h.Status, &h.CheckState,
		&h.CreatedAt, &h.UpdatedAt, &h.RowVersion,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return h, err
}
