package controllers

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/poofware/mono-repo/backend/services/housekeeping-service/internal/dtos"
	"github.com/poofware/mono-repo/backend/services/housekeeping-service/internal/middleware"
	"github.com/poofware/mono-repo/backend/services/housekeeping-service/internal/services"
	"github.com/poofware/mono-repo/backend/services/housekeeping-service/internal/utils"
)

type NotesController struct {
	service  *services.HousekeepingService
	validate *validator.Validate
}

func NewNotesController(s *services.HousekeepingService) *NotesController {
	return &NotesController{
		service:  s,
		validate: newValidator(),
	}
}

// DELETE /api/v1/notes/{id}
func (c *NotesController) DeleteNoteHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	if err := c.service.DeleteNote(r.Context(), id); err != nil {
		utils.HandleAppError(w, err)
		return
	}
	middleware.RecordNotesDeleted(1)
	markInvalidated(w)
	w.WriteHeader(http.StatusNoContent)
}

// POST /api/v1/notes/bulk-delete
func (c *NotesController) BulkDeleteHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.BulkDeleteNotesRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := c.validate.Struct(req); err != nil {
		respondValidation(w, err)
		return
	}

	resp, err := c.service.DeleteNotes(r.Context(), req.IDs)
	if resp != nil && len(resp.Deleted) > 0 {
		middleware.RecordNotesDeleted(len(resp.Deleted))
		markInvalidated(w)
	}
	if err != nil {
		var appErr *utils.AppError
		if resp != nil && errors.As(err, &appErr) {
			// partial progress is reported with the failure
			utils.RespondErrorWithCode(w, appErr.StatusCode, appErr.Code, appErr.Message, resp, appErr.Err)
			return
		}
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}
