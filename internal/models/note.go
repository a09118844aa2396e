package models

import (
	"slices"
	"time"
)

// NoteCategoryType drives the indicator shown on a house.
type NoteCategoryType string

const (
	NoteCategoryCritical NoteCategoryType = "critical"
	NoteCategoryMinor    NoteCategoryType = "minor"
	NoteCategoryOther    NoteCategoryType = "other"
)

// NoteAreaType is the maintenance trade a note is addressed to.
type NoteAreaType string

const (
	NoteAreaPlumbing   NoteAreaType = "gasfiteria"
	NoteAreaElectrical NoteAreaType = "electricidad"
	NoteAreaRestocking NoteAreaType = "reposicion"
	NoteAreaOther      NoteAreaType = "otro"
)

// DefaultNoteAuthor is recorded when a note is created without an author.
const DefaultNoteAuthor = "system"

var (
	AllNoteCategories = []NoteCategoryType{NoteCategoryCritical, NoteCategoryMinor, NoteCategoryOther}
	AllNoteAreas      = []NoteAreaType{NoteAreaPlumbing, NoteAreaElectrical, NoteAreaRestocking, NoteAreaOther}
)

func (c NoteCategoryType) Valid() bool { return slices.Contains(AllNoteCategories, c) }
func (a NoteAreaType) Valid() bool     { return slices.Contains(AllNoteAreas, a) }

type Note struct {
	ID        int64            `json:"id"`
	HouseID   int64            `json:"house_id"`
	Category  NoteCategoryType `json:"category"`
	Area      NoteAreaType     `json:"area"`
	Content   string           `json:"content"`
	CreatedBy string           `json:"created_by"`
	CreatedAt time.Time        `json:"created_at"`
}
