package aggregation

import (
	"github.com/poofware/mono-repo/backend/services/housekeeping-service/internal/models"
)

// GroupByCategory buckets notes by category keeping their input order.
// Categories with no notes are absent from the map.
func GroupByCategory(notes []*models.Note) map[models.NoteCategoryType][]*models.Note {
	out := make(map[models.NoteCategoryType][]*models.Note)
	for _, n := range notes {
		out[n.Category] = append(out[n.Category], n)
	}
	return out
}

// CategoryBadge is one indicator on a house card.
type CategoryBadge struct {
	Category  models.NoteCategoryType `json:"category"`
	Count     int                     `json:"count"`
	ShowCount bool                    `json:"show_count"`
}

// CategoryBadges returns the indicators for notes in critical, minor,
// other order. The count is only shown when a category has more than one note.
func CategoryBadges(notes []*models.Note) []CategoryBadge {
	groups := GroupByCategory(notes)
	out := []CategoryBadge{}
	for _, c := range models.AllNoteCategories {
		if n := len(groups[c]); n > 0 {
			out = append(out, CategoryBadge{Category: c, Count: n, ShowCount: n > 1})
		}
	}
	return out
}

// NoteEntry is a note flattened out of its house for the notes report.
type NoteEntry struct {
	*models.Note
	HouseName   string           `json:"house_name"`
	HouseNumber int              `json:"house_number"`
	HouseType   models.HouseType `json:"house_type"`
}

// NotesListing flattens the notes of houses, in house order and newest
// first within a house. A zero area or houseID disables that filter.
func NotesListing(houses []*models.House, area models.NoteAreaType, houseID int64) []NoteEntry {
	out := []NoteEntry{}
	for _, h := range houses {
		if houseID != 0 && h.ID != houseID {
			continue
		}
		for _, n := range h.Notes {
			if area != "" && n.Area != area {
				continue
			}
			out = append(out, NoteEntry{
				Note:        n,
				HouseName:   h.DisplayName(),
				HouseNumber: h.EffectiveNumber(),
				HouseType:   h.Type,
			})
		}
	}
	return out
}
