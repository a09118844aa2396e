package utils

import (
	"errors"
	"net/http"
)

// Domain-level errors used by the service layer to provide
// fine-grained failure reasons.
var (
	ErrHouseNotFound       = errors.New("house_not_found")
	ErrNoteNotFound        = errors.New("note_not_found")
	ErrMissingStatusFields = errors.New("status_or_check_state_required")
	ErrInvalidStatus       = errors.New("invalid_status")
	ErrInvalidCheckState   = errors.New("invalid_check_state")
	ErrEmptyNoteContent    = errors.New("empty_note_content")
	ErrInvalidCategory     = errors.New("invalid_note_category")
	ErrInvalidArea         = errors.New("invalid_note_area")
	ErrEmptyNoteIDs        = errors.New("empty_note_ids")
	ErrInvalidID           = errors.New("invalid_id")

	// For concurrency conflicts
	ErrRowVersionConflict = errors.New("row_version_conflict")

	// For report sinks (SendGrid, Twilio)
	ErrExternalServiceFailure = errors.New("external_service_failure")
	ErrNoReportSinks          = errors.New("no_report_sinks_configured")
)

// AppError carries a failure from services to controllers with the
// HTTP status and public code already decided.
type AppError struct {
	StatusCode int
	Code       string
	Message    string
	Err        error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

// NewValidationError wraps err as a 400 validation failure.
func NewValidationError(message string, err error) *AppError {
	return &AppError{StatusCode: http.StatusBadRequest, Code: ErrCodeValidation, Message: message, Err: err}
}

// NewNotFoundError wraps err as a 404.
func NewNotFoundError(message string, err error) *AppError {
	return &AppError{StatusCode: http.StatusNotFound, Code: ErrCodeNotFound, Message: message, Err: err}
}

// IsValidation reports whether err is (or wraps) a validation AppError.
func IsValidation(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == ErrCodeValidation
}

// IsNotFound reports whether err is (or wraps) a not-found AppError.
func IsNotFound(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == ErrCodeNotFound
}

// HandleAppError centralizes responding to AppErrors.
func HandleAppError(w http.ResponseWriter, err error) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		RespondErrorWithCode(w, appErr.StatusCode, appErr.Code, appErr.Message, nil, appErr.Err)
	} else {
		// Store failures and anything else unexpected
		RespondErrorWithCode(w, http.StatusInternalServerError, ErrCodeInternal, "An unexpected error occurred", nil, err)
	}
}
