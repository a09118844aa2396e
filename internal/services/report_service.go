package services

import (
	"context"
	"time"

	"github.com/poofware/mono-repo/backend/services/housekeeping-service/internal/aggregation"
	"github.com/poofware/mono-repo/backend/services/housekeeping-service/internal/constants"
	"github.com/poofware/mono-repo/backend/services/housekeeping-service/internal/dtos"
	"github.com/poofware/mono-repo/backend/services/housekeeping-service/internal/models"
	"github.com/poofware/mono-repo/backend/services/housekeeping-service/internal/reports"
	"github.com/poofware/mono-repo/backend/services/housekeeping-service/internal/repositories"
	"github.com/poofware/mono-repo/backend/services/housekeeping-service/internal/utils"
)

// ReportService recomputes every report from a fresh read of the board.
type ReportService struct {
	houseRepo repositories.HouseRepository
	loc       *time.Location
	now       func() time.Time
}

func NewReportService(houseRepo repositories.HouseRepository) *ReportService {
	loc, err := time.LoadLocation(constants.ReportTimezone)
	if err != nil {
		utils.Logger.WithError(err).Warnf("Unknown report timezone %s, using UTC", constants.ReportTimezone)
		loc = time.UTC
	}
	return &ReportService{houseRepo: houseRepo, loc: loc, now: time.Now}
}

func (s *ReportService) load(ctx context.Context) ([]*models.House, error) {
	houses, err := s.houseRepo.ListWithNotes(ctx)
	if err != nil {
		return nil, storeFailure("Failed to load houses for report", err)
	}
	return houses, nil
}

// Today is the report date in the property's timezone.
func (s *ReportService) Today() time.Time {
	return s.now().In(s.loc)
}

func (s *ReportService) HouseReport(ctx context.Context, filter aggregation.HouseReportFilter) ([]reports.HouseRow, error) {
	houses, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return reports.HouseTable(houses, filter), nil
}

func (s *ReportService) NotesReport(ctx context.Context, area models.NoteAreaType, houseID int64) ([]reports.NoteRow, error) {
	houses, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return reports.NotesTable(aggregation.NotesListing(houses, area, houseID), s.now()), nil
}

func (s *ReportService) OccupancyText(ctx context.Context) (string, error) {
	houses, err := s.load(ctx)
	if err != nil {
		return "", err
	}
	return reports.OccupancyText(aggregation.Occupancy(houses)), nil
}

func (s *ReportService) OccupancyPrint(ctx context.Context) (string, error) {
	houses, err := s.load(ctx)
	if err != nil {
		return "", err
	}
	page, err := reports.OccupancyPrint(houses, s.Today())
	if err != nil {
		return "", storeFailure("Failed to render occupancy sheet", err)
	}
	return page, nil
}

func (s *ReportService) Summary(ctx context.Context) (*dtos.BoardSummaryResponse, error) {
	houses, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	summary := aggregation.Summarize(houses)
	return &dtos.BoardSummaryResponse{
		BoardSummary:         summary,
		ClassificationHeader: reports.ClassificationHeader(summary),
		Occupancy:            aggregation.Occupancy(houses),
		CheckStates:          reports.CheckStateLines(aggregation.CheckStateRoster(houses)),
		Statuses:             reports.StatusLines(aggregation.StatusRoster(houses)),
	}, nil
}
