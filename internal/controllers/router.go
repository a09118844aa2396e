package controllers

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/poofware/mono-repo/backend/services/housekeeping-service/internal/middleware"
	"github.com/poofware/mono-repo/backend/services/housekeeping-service/internal/routes"
)

// Controllers groups every handler set the router mounts.
type Controllers struct {
	Health  *HealthController
	Houses  *HousesController
	Notes   *NotesController
	Reports *ReportsController
}

// NewRouter mounts the full route table with request logging and metrics.
func NewRouter(c Controllers) *mux.Router {
	router := mux.NewRouter()
	router.Use(middleware.RequestLogger, middleware.PrometheusMiddleware)

	router.HandleFunc(routes.Health, c.Health.HealthCheckHandler).Methods(http.MethodGet)
	router.Handle(routes.Metrics, promhttp.Handler()).Methods(http.MethodGet)

	// Houses
	router.HandleFunc(routes.HousesBase, c.Houses.ListHousesHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.HouseByID, c.Houses.GetHouseHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.HouseStatus, c.Houses.UpdateStatusHandler).Methods(http.MethodPatch)
	router.HandleFunc(routes.HouseNotes, c.Houses.ListNotesHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.HouseNotes, c.Houses.AddNoteHandler).Methods(http.MethodPost)

	// Notes
	router.HandleFunc(routes.NotesBulkDelete, c.Notes.BulkDeleteHandler).Methods(http.MethodPost)
	router.HandleFunc(routes.NoteByID, c.Notes.DeleteNoteHandler).Methods(http.MethodDelete)

	// Reports
	router.HandleFunc(routes.ReportsHouses, c.Reports.HousesReportHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.ReportsNotes, c.Reports.NotesReportHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.ReportsOccupancy, c.Reports.OccupancyHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.ReportsOccupancyPrint, c.Reports.OccupancyPrintHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.ReportsOccupancySend, c.Reports.SendOccupancyHandler).Methods(http.MethodPost)
	router.HandleFunc(routes.ReportsSummary, c.Reports.SummaryHandler).Methods(http.MethodGet)

	return router
}
