package aggregation

import (
	"github.com/poofware/mono-repo/backend/services/housekeeping-service/internal/models"
)

// Filter selector values. An empty selector behaves like FilterAll.
const (
	FilterAll      = "all"
	NotesWithNotes = "with-notes"
	NotesNoNotes   = "no-notes"
	NotesCritical  = "critical"
	NotesMinor     = "minor"
)

// Filter is the board's multi-field AND predicate.
type Filter struct {
	Type   models.HouseType
	Status models.HouseStatusType
	Notes  string
}

func isAll(v string) bool { return v == "" || v == FilterAll }

// Matches reports whether h passes every populated field of f.
func (f Filter) Matches(h *models.House) bool {
	if !isAll(string(f.Type)) && h.Type != f.Type {
		return false
	}
	if !isAll(string(f.Status)) && h.Status != f.Status {
		return false
	}
	switch f.Notes {
	case NotesWithNotes:
		return len(h.Notes) > 0
	case NotesNoNotes:
		return len(h.Notes) == 0
	case NotesCritical:
		return hasCategory(h, models.NoteCategoryCritical)
	case NotesMinor:
		return hasCategory(h, models.NoteCategoryMinor)
	}
	return true
}

func hasCategory(h *models.House, c models.NoteCategoryType) bool {
	for _, n := range h.Notes {
		if n.Category == c {
			return true
		}
	}
	return false
}

// Apply keeps the houses matching f in their input order.
func (f Filter) Apply(houses []*models.House) []*models.House {
	out := []*models.House{}
	for _, h := range houses {
		if f.Matches(h) {
			out = append(out, h)
		}
	}
	return out
}

// HouseReportFilter is the single selector of the house report.
type HouseReportFilter string

const (
	ReportAll       HouseReportFilter = "all"
	ReportClean     HouseReportFilter = "clean"
	ReportDirty     HouseReportFilter = "dirty"
	ReportOccupied  HouseReportFilter = "occupied"
	ReportWithNotes HouseReportFilter = "with-notes"
	ReportNoNotes   HouseReportFilter = "no-notes"
)

// Filter converts the selector into the general predicate.
func (r HouseReportFilter) Filter() Filter {
	switch r {
	case ReportClean, ReportDirty, ReportOccupied:
		return Filter{Status: models.HouseStatusType(r)}
	case ReportWithNotes:
		return Filter{Notes: NotesWithNotes}
	case ReportNoNotes:
		return Filter{Notes: NotesNoNotes}
	}
	return Filter{}
}
