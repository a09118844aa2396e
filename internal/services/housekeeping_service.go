package services

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/jackc/pgx/v4"
	"github.com/sirupsen/logrus"

	"github.com/poofware/mono-repo/backend/services/housekeeping-service/internal/dtos"
	"github.com/poofware/mono-repo/backend/services/housekeeping-service/internal/models"
	"github.com/poofware/mono-repo/backend/services/housekeeping-service/internal/repositories"
	"github.com/poofware/mono-repo/backend/services/housekeeping-service/internal/utils"
)

// HousekeepingService owns every command and query on houses and notes.
type HousekeepingService struct {
	houseRepo repositories.HouseRepository
	noteRepo  repositories.NoteRepository
	now       func() time.Time
}

func NewHousekeepingService(
	houseRepo repositories.HouseRepository,
	noteRepo repositories.NoteRepository,
) *HousekeepingService {
	return &HousekeepingService{
		houseRepo: houseRepo,
		noteRepo:  noteRepo,
		now:       time.Now,
	}
}

func storeFailure(msg string, err error) *utils.AppError {
	return &utils.AppError{
		StatusCode: http.StatusInternalServerError,
		Code:       utils.ErrCodeInternal,
		Message:    msg,
		Err:        err,
	}
}

func houseNotFound(id int64) *utils.AppError {
	utils.Logger.WithField("houseID", id).Debug("House not found")
	return utils.NewNotFoundError("House not found", utils.ErrHouseNotFound)
}

// ListHouses returns every house with its notes, unfiltered.
func (s *HousekeepingService) ListHouses(ctx context.Context) ([]*models.House, error) {
	houses, err := s.houseRepo.ListWithNotes(ctx)
	if err != nil {
		return nil, storeFailure("Failed to list houses", err)
	}
	return houses, nil
}

func (s *HousekeepingService) GetHouse(ctx context.Context, id int64) (*models.House, error) {
	h, err := s.houseRepo.GetWithNotes(ctx, id)
	if err != nil {
		return nil, storeFailure("Failed to load house", err)
	}
	if h == nil {
		return nil, houseNotFound(id)
	}
	return h, nil
}

// SetHouseStatus applies whichever of status and check state the request
// carries and returns the refreshed house.
func (s *HousekeepingService) SetHouseStatus(
	ctx context.Context,
	id int64,
	req dtos.UpdateHouseStatusRequest,
) (*models.House, error) {
	if req.Status == nil && req.CheckState == nil {
		return nil, utils.NewValidationError("Either status or check_state is required", utils.ErrMissingStatusFields)
	}
	if req.Status != nil && !req.Status.Valid() {
		return nil, utils.NewValidationError("Invalid status", utils.ErrInvalidStatus)
	}
	if req.CheckState != nil && !req.CheckState.Valid() {
		return nil, utils.NewValidationError("Invalid check_state", utils.ErrInvalidCheckState)
	}

	err := s.houseRepo.UpdateWithRetry(ctx, id, func(h *models.House) error {
		if req.Status != nil {
			h.Status = *req.Status
		}
		if req.CheckState != nil {
			h.CheckState = *req.CheckState
		}
		return nil
	})
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		return nil, houseNotFound(id)
	case errors.Is(err, utils.ErrRowVersionConflict):
		return nil, &utils.AppError{
			StatusCode: http.StatusConflict,
			Code:       utils.ErrCodeConflict,
			Message:    "House was modified concurrently, please retry",
			Err:        err,
		}
	case err != nil:
		return nil, storeFailure("Failed to update house", err)
	}

	utils.Logger.WithFields(logrus.Fields{
		"houseID":    id,
		"status":     utils.Val(req.Status),
		"checkState": utils.Val(req.CheckState),
	}).Info("House status updated")

	return s.GetHouse(ctx, id)
}

// ListNotes returns a house's notes newest first.
func (s *HousekeepingService) ListNotes(ctx context.Context, houseID int64) ([]*models.Note, error) {
	h, err := s.houseRepo.GetByID(ctx, houseID)
	if err != nil {
		return nil, storeFailure("Failed to load house", err)
	}
	if h == nil {
		return nil, houseNotFound(houseID)
	}
	notes, err := s.noteRepo.ListByHouseID(ctx, houseID)
	if err != nil {
		return nil, storeFailure("Failed to list notes", err)
	}
	return notes, nil
}

// AddNote validates the request fully before touching the store.
func (s *HousekeepingService) AddNote(
	ctx context.Context,
	houseID int64,
	req dtos.CreateNoteRequest,
) (*models.Note, error) {
	if strings.TrimSpace(req.Content) == "" {
		return nil, utils.NewValidationError("Note content must not be empty", utils.ErrEmptyNoteContent)
	}
	if !req.Category.Valid() {
		return nil, utils.NewValidationError("Invalid note category", utils.ErrInvalidCategory)
	}
	area := req.Area
	if area == "" {
		area = models.NoteAreaOther
	}
	if !area.Valid() {
		return nil, utils.NewValidationError("Invalid note area", utils.ErrInvalidArea)
	}
	createdBy := strings.TrimSpace(utils.Val(req.CreatedBy))
	if createdBy == "" {
		createdBy = models.DefaultNoteAuthor
	}

	h, err := s.houseRepo.GetByID(ctx, houseID)
	if err != nil {
		return nil, storeFailure("Failed to load house", err)
	}
	if h == nil {
		return nil, houseNotFound(houseID)
	}

	note := &models.Note{
		HouseID:   houseID,
		Category:  req.Category,
		Area:      area,
		Content:   req.Content,
		CreatedBy: createdBy,
		CreatedAt: s.now().UTC(),
	}
	if err := s.noteRepo.Create(ctx, note); err != nil {
		if errors.Is(err, repositories.ErrParentNotFound) {
			return nil, houseNotFound(houseID)
		}
		return nil, storeFailure("Failed to create note", err)
	}

	utils.Logger.WithFields(logrus.Fields{
		"houseID":  houseID,
		"noteID":   note.ID,
		"category": note.Category,
	}).Info("Note added")
	return note, nil
}

func (s *HousekeepingService) DeleteNote(ctx context.Context, id int64) error {
	err := s.noteRepo.Delete(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return utils.NewNotFoundError("Note not found", utils.ErrNoteNotFound)
	}
	if err != nil {
		return storeFailure("Failed to delete note", err)
	}
	utils.Logger.WithField("noteID", id).Info("Note deleted")
	return nil
}

// DeleteNotes removes each id independently; repeated ids count once.
// Missing ids are reported, not fatal. A store failure stops the batch;
// ids already removed stay removed and the partial result is returned
// alongside the error.
func (s *HousekeepingService) DeleteNotes(ctx context.Context, ids []int64) (*dtos.BulkDeleteNotesResponse, error) {
	if len(ids) == 0 {
		return nil, utils.NewValidationError("At least one note id is required", utils.ErrEmptyNoteIDs)
	}

	resp := &dtos.BulkDeleteNotesResponse{Deleted: []int64{}, NotFound: []int64{}}
	seen := make(map[int64]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		err := s.noteRepo.Delete(ctx, id)
		switch {
		case err == nil:
			resp.Deleted = append(resp.Deleted, id)
		case errors.Is(err, pgx.ErrNoRows):
			resp.NotFound = append(resp.NotFound, id)
		default:
			utils.Logger.WithError(err).WithField("noteID", id).Error("Bulk note delete aborted")
			return resp, storeFailure("Failed to delete notes", err)
		}
	}

	utils.Logger.WithFields(logrus.Fields{
		"deleted":  len(resp.Deleted),
		"notFound": len(resp.NotFound),
	}).Info("Bulk note delete finished")
	return resp, nil
}
