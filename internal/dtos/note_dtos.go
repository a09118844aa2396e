package dtos

import (
	"github.com/poofware/mono-repo/backend/services/housekeeping-service/internal/models"
)

type CreateNoteRequest struct {
	Category  models.NoteCategoryType `json:"category" validate:"required,oneof=critical minor other"`
	Area      models.NoteAreaType     `json:"area,omitempty" validate:"omitempty,oneof=gasfiteria electricidad reposicion otro"`
	Content   string                  `json:"content" validate:"required"`
	CreatedBy *string                 `json:"created_by,omitempty" validate:"omitempty,max=100"`
}

type BulkDeleteNotesRequest struct {
	IDs []int64 `json:"ids" validate:"required,min=1,dive,gt=0"`
}

// BulkDeleteNotesResponse reports which ids were removed and which did not exist.
type BulkDeleteNotesResponse struct {
	Deleted  []int64 `json:"deleted"`
	NotFound []int64 `json:"not_found"`
}
