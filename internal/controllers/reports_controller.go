package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/poofware/mono-repo/backend/services/housekeeping-service/internal/aggregation"
	"github.com/poofware/mono-repo/backend/services/housekeeping-service/internal/dtos"
	"github.com/poofware/mono-repo/backend/services/housekeeping-service/internal/models"
	"github.com/poofware/mono-repo/backend/services/housekeeping-service/internal/reports"
	"github.com/poofware/mono-repo/backend/services/housekeeping-service/internal/services"
	"github.com/poofware/mono-repo/backend/services/housekeeping-service/internal/utils"
)

const (
	contentTypeText = "text/plain; charset=utf-8"
	contentTypeHTML = "text/html; charset=utf-8"
)

type ReportsController struct {
	reportService *services.ReportService
	delivery      *services.ReportDeliveryService
	validate      *validator.Validate
}

func NewReportsController(r *services.ReportService, d *services.ReportDeliveryService) *ReportsController {
	return &ReportsController{
		reportService: r,
		delivery:      d,
		validate:      newValidator(),
	}
}

// GET /api/v1/reports/houses?filter=&format=
func (c *ReportsController) HousesReportHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	query := dtos.HouseReportQuery{Filter: q.Get("filter"), Format: q.Get("format")}
	if err := c.validate.Struct(query); err != nil {
		respondValidation(w, err)
		return
	}
	filter := aggregation.HouseReportFilter(query.Filter)
	if filter == "" {
		filter = aggregation.ReportAll
	}

	rows, err := c.reportService.HouseReport(r.Context(), filter)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	if query.Format == dtos.ReportFormatText {
		utils.RespondWithText(w, http.StatusOK, contentTypeText, reports.RenderHouseTable(rows))
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.HouseReportResponse{Filter: string(filter), Rows: rows})
}

// GET /api/v1/reports/notes?area=&house_id=
func (c *ReportsController) NotesReportHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	query := dtos.NotesReportQuery{Area: q.Get("area")}
	if raw := q.Get("house_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			utils.HandleAppError(w, utils.NewValidationError("Invalid house_id", utils.ErrInvalidID))
			return
		}
		query.HouseID = id
	}
	if err := c.validate.Struct(query); err != nil {
		respondValidation(w, err)
		return
	}
	area := models.NoteAreaType(query.Area)
	if query.Area == aggregation.FilterAll {
		area = ""
	}

	rows, err := c.reportService.NotesReport(r.Context(), area, query.HouseID)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.NotesReportResponse{Rows: rows})
}

// GET /api/v1/reports/occupancy
func (c *ReportsController) OccupancyHandler(w http.ResponseWriter, r *http.Request) {
	text, err := c.reportService.OccupancyText(r.Context())
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithText(w, http.StatusOK, contentTypeText, text)
}

// GET /api/v1/reports/occupancy/print
func (c *ReportsController) OccupancyPrintHandler(w http.ResponseWriter, r *http.Request) {
	page, err := c.reportService.OccupancyPrint(r.Context())
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithText(w, http.StatusOK, contentTypeHTML, page)
}

// GET /api/v1/reports/summary
func (c *ReportsController) SummaryHandler(w http.ResponseWriter, r *http.Request) {
	summary, err := c.reportService.Summary(r.Context())
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, summary)
}

// POST /api/v1/reports/occupancy/send
func (c *ReportsController) SendOccupancyHandler(w http.ResponseWriter, r *http.Request) {
	resp, err := c.delivery.SendOccupancyReport(r.Context())
	if err != nil {
		var appErr *utils.AppError
		if resp != nil && errors.As(err, &appErr) {
			utils.RespondErrorWithCode(w, appErr.StatusCode, appErr.Code, appErr.Message, resp, appErr.Err)
			return
		}
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}
