package reports

import (
	"time"

	"github.com/poofware/mono-repo/backend/services/housekeeping-service/internal/aggregation"
)

// NoteRow is one line of the notes report.
type NoteRow struct {
	ID        int64     `json:"id"`
	HouseID   int64     `json:"house_id"`
	Casa      string    `json:"casa"`
	Categoria string    `json:"categoria"`
	Area      string    `json:"area"`
	Contenido string    `json:"contenido"`
	Autor     string    `json:"autor"`
	Fecha     time.Time `json:"fecha"`
	Hace      string    `json:"hace"`
}

func NotesTable(entries []aggregation.NoteEntry, now time.Time) []NoteRow {
	rows := make([]NoteRow, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, NoteRow{
			ID:        e.ID,
			HouseID:   e.HouseID,
			Casa:      e.HouseName,
			Categoria: CategoryLabel(e.Category),
			Area:      AreaLabel(e.Area),
			Contenido: e.Content,
			Autor:     e.CreatedBy,
			Fecha:     e.CreatedAt,
			Hace:      RelativeAge(e.CreatedAt, now),
		})
	}
	return rows
}
