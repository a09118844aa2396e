package controllers

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/poofware/mono-repo/backend/services/housekeeping-service/internal/dtos"
	"github.com/poofware/mono-repo/backend/services/housekeeping-service/internal/middleware"
	"github.com/poofware/mono-repo/backend/services/housekeeping-service/internal/services"
	"github.com/poofware/mono-repo/backend/services/housekeeping-service/internal/utils"
)

type HousesController struct {
	service  *services.HousekeepingService
	validate *validator.Validate
}

func NewHousesController(s *services.HousekeepingService) *HousesController {
	return &HousesController{
		service:  s,
		validate: newValidator(),
	}
}

// GET /api/v1/houses?type=&status=&notes=
func (c *HousesController) ListHousesHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	query := dtos.HouseListQuery{
		Type:   q.Get("type"),
		Status: q.Get("status"),
		Notes:  q.Get("notes"),
	}
	if err := c.validate.Struct(query); err != nil {
		respondValidation(w, err)
		return
	}

	houses, err := c.service.ListHouses(r.Context())
	if err != nil {
		utils.Logger.WithError(err).Error("ListHouses failed")
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.NewHouseListResponse(query.Filter().Apply(houses)))
}

// GET /api/v1/houses/{id}
func (c *HousesController) GetHouseHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	house, err := c.service.GetHouse(r.Context(), id)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.NewHouseResponse(house))
}

// PATCH /api/v1/houses/{id}/status
func (c *HousesController) UpdateStatusHandler(w http.ResponseWriter, r *http.Request) {
	logger := utils.Logger.WithField("handler", "UpdateStatusHandler")

	id, err := pathID(r)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}

	var req dtos.UpdateHouseStatusRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := c.validate.Struct(req); err != nil {
		respondValidation(w, err)
		return
	}

	house, err := c.service.SetHouseStatus(r.Context(), id, req)
	if err != nil {
		logger.WithError(err).WithField("houseID", id).Warn("Service call failed")
		utils.HandleAppError(w, err)
		return
	}
	if req.Status != nil {
		middleware.RecordStatusChange("status", string(*req.Status))
	}
	if req.CheckState != nil {
		middleware.RecordStatusChange("check_state", string(*req.CheckState))
	}
	markInvalidated(w)
	utils.RespondWithJSON(w, http.StatusOK, dtos.NewHouseResponse(house))
}

// GET /api/v1/houses/{id}/notes
func (c *HousesController) ListNotesHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	notes, err := c.service.ListNotes(r.Context(), id)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, notes)
}

// POST /api/v1/houses/{id}/notes
func (c *HousesController) AddNoteHandler(w http.ResponseWriter, r *http.Request) {
	logger := utils.Logger.WithField("handler", "AddNoteHandler")

	id, err := pathID(r)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}

	var req dtos.CreateNoteRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := c.validate.Struct(req); err != nil {
		respondValidation(w, err)
		return
	}

	note, err := c.service.AddNote(r.Context(), id, req)
	if err != nil {
		logger.WithError(err).WithField("houseID", id).Warn("Service call failed")
		utils.HandleAppError(w, err)
		return
	}
	middleware.RecordNoteCreated(string(note.Category))
	markInvalidated(w)
	utils.RespondWithJSON(w, http.StatusCreated, note)
}
