package dtos

import (
	"github.com/poofware/mono-repo/backend/services/housekeeping-service/internal/aggregation"
	"github.com/poofware/mono-repo/backend/services/housekeeping-service/internal/reports"
)

const (
	ReportFormatJSON = "json"
	ReportFormatText = "text"
)

type HouseReportQuery struct {
	Filter string `query:"filter" validate:"omitempty,oneof=all clean dirty occupied with-notes no-notes"`
	Format string `query:"format" validate:"omitempty,oneof=json text"`
}

type NotesReportQuery struct {
	Area    string `query:"area" validate:"omitempty,oneof=all gasfiteria electricidad reposicion otro"`
	HouseID int64  `query:"house_id" validate:"omitempty,gt=0"`
}

type HouseReportResponse struct {
	Filter string             `json:"filter"`
	Rows   []reports.HouseRow `json:"rows"`
}

type NotesReportResponse struct {
	Rows []reports.NoteRow `json:"rows"`
}

// BoardSummaryResponse is everything the board header shows.
type BoardSummaryResponse struct {
	aggregation.BoardSummary
	ClassificationHeader string                     `json:"classification_header"`
	Occupancy            aggregation.OccupancyTally `json:"occupancy"`
	CheckStates          []reports.RosterLine       `json:"check_states"`
	Statuses             []reports.RosterLine       `json:"statuses"`
}

// ReportDeliveryResponse lists the recipients each sink accepted.
type ReportDeliveryResponse struct {
	Emailed []string `json:"emailed"`
	Texted  []string `json:"texted"`
	Failed  []string `json:"failed"`
}
