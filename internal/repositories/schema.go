package repositories

import (
	"context"
	"fmt"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS houses (
        id             BIGSERIAL PRIMARY KEY,
        name           TEXT        NOT NULL,
        number         INTEGER     NOT NULL DEFAULT 0,
        type           TEXT        NOT NULL CHECK (type IN ('indoor','outdoor')),
        classification TEXT        NOT NULL CHECK (classification IN ('gold_standard','gold_premium')),
        status         TEXT        NOT NULL DEFAULT 'clean' CHECK (status IN ('clean','dirty','occupied')),
        check_state    TEXT        NOT NULL DEFAULT 'Nada'
                                   CHECK (check_state IN ('Check-in','Check-out','Check-in Check-out','Nada')),
        created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW(),
        updated_at     TIMESTAMPTZ NOT NULL DEFAULT NOW(),
        row_version    BIGINT      NOT NULL DEFAULT 1
    )`,
	`CREATE UNIQUE INDEX IF NOT EXISTS houses_type_number_key
        ON houses (type, number) WHERE number > 0`,
	`CREATE TABLE IF NOT EXISTS notes (
        id         BIGSERIAL PRIMARY KEY,
        house_id   BIGINT      NOT NULL REFERENCES houses(id) ON DELETE CASCADE,
        category   TEXT        NOT NULL CHECK (category IN ('critical','minor','other')),
        area       TEXT        NOT NULL DEFAULT 'otro'
                               CHECK (area IN ('gasfiteria','electricidad','reposicion','otro')),
        content    TEXT        NOT NULL CHECK (length(btrim(content)) > 0),
        created_by TEXT        DEFAULT 'system',
        created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
    )`,
	`CREATE INDEX IF NOT EXISTS notes_house_created_idx
        ON notes (house_id, created_at DESC)`,
}

// EnsureSchema creates the houses and notes tables when missing. Every
// statement is idempotent so it runs on each boot.
func EnsureSchema(ctx context.Context, db DB) error {
	for i, stmt := range schemaStatements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("schema statement %d: %w", i, err)
		}
	}
	return nil
}
