package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgtype"
	"github.com/jackc/pgx/v4"

	"github.com/poofware/mono-repo/backend/services/housekeeping-service/internal/models"
)

type NoteRepository interface {
	Create(ctx context.Context, n *models.Note) error
	GetByID(ctx context.Context, id int64) (*models.Note, error)
	ListByHouseID(ctx context.Context, houseID int64) ([]*models.Note, error)
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int, error)
}

type noteRepo struct {
	db DB
}

func NewNoteRepository(db DB) NoteRepository {
	return &noteRepo{db: db}
}

// Create inserts n and fills in its id. A zero CreatedAt takes the
// database clock; an empty CreatedBy is stored as the default author.
func (r *noteRepo) Create(ctx context.Context, n *models.Note) error {
	if n.CreatedBy == "" {
		n.CreatedBy = models.DefaultNoteAuthor
	}
	if n.Area == "" {
		n.Area = models.NoteAreaOther
	}

	var createdAt pgtype.Timestamptz
	if n.CreatedAt.IsZero() {
		createdAt.Status = pgtype.Null
	} else {
		createdAt = pgtype.Timestamptz{Time: n.CreatedAt, Status: pgtype.Present}
	}

	err := r.db.QueryRow(ctx, `
        INSERT INTO notes (house_id, category, area, content, created_by, created_at)
        VALUES ($1,$2,$3,$4,$5,COALESCE($6, NOW()))
        RETURNING id, created_at
    `,
		n.HouseID, n.Category, n.Area, n.Content, n.CreatedBy, createdAt,
	).Scan(&n.ID, &n.CreatedAt)
	if isForeignKeyViolation(err) {
		return ErrParentNotFound
	}
	return err
}

func (r *noteRepo) GetByID(ctx context.Context, id int64) (*models.Note, error) {
	row := r.db.QueryRow(ctx, baseSelectNote()+" WHERE id=$1", id)
	n, err := scanNote(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return n, err
}

func (r *noteRepo) ListByHouseID(ctx context.Context, houseID int64) ([]*models.Note, error) {
	rows, err := r.db.Query(ctx, baseSelectNote()+" WHERE house_id=$1 ORDER BY created_at DESC, id DESC", houseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*models.Note{}
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

func (r *noteRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM notes WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *noteRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM notes`).Scan(&n)
	return n, err
}

func baseSelectNote() string {
	return `
        SELECT
            id, house_id, category, area, content, created_by, created_at
        FROM notes
    `
}

// scanNote maps a NULL author to the default one.
func scanNote(row pgx.Row) (*models.Note, error) {
	n := &models.Note{}
	var createdBy pgtype.Text
	if err := row.Scan(
		&n.ID, &n.HouseID, &n.Category, &n.Area, &n.Content, &createdBy, &n.CreatedAt,
	); err != nil {
		return nil, err
	}
	if createdBy.Status == pgtype.Present && createdBy.String != "" {
		n.CreatedBy = createdBy.String
	} else {
		n.CreatedBy = models.DefaultNoteAuthor
	}
	return n, nil
}
