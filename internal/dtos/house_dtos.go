package dtos

import (
	"github.com/poofware/mono-repo/backend/services/housekeeping-service/internal/aggregation"
	"github.com/poofware/mono-repo/backend/services/housekeeping-service/internal/models"
)

// UpdateHouseStatusRequest changes status, check state, or both.
type UpdateHouseStatusRequest struct {
	Status     *models.HouseStatusType `json:"status,omitempty" validate:"omitempty,oneof=clean dirty occupied"`
	CheckState *models.CheckStateType  `json:"check_state,omitempty" validate:"omitempty,oneof='Check-in' 'Check-out' 'Check-in Check-out' Nada"`
}

// HouseListQuery carries the board filters from the query string.
type HouseListQuery struct {
	Type   string `query:"type" validate:"omitempty,oneof=all indoor outdoor"`
	Status string `query:"status" validate:"omitempty,oneof=all clean dirty occupied"`
	Notes  string `query:"notes" validate:"omitempty,oneof=all with-notes no-notes critical minor"`
}

func (q HouseListQuery) Filter() aggregation.Filter {
	return aggregation.Filter{
		Type:   models.HouseType(q.Type),
		Status: models.HouseStatusType(q.Status),
		Notes:  q.Notes,
	}
}

// HouseResponse is a house with its notes and per-category indicators.
type HouseResponse struct {
	*models.House
	Badges []aggregation.CategoryBadge `json:"badges"`
}

func NewHouseResponse(h *models.House) HouseResponse {
	return HouseResponse{House: h, Badges: aggregation.CategoryBadges(h.Notes)}
}

func NewHouseListResponse(houses []*models.House) []HouseResponse {
	out := make([]HouseResponse, 0, len(houses))
	for _, h := range houses {
		out = append(out, NewHouseResponse(h))
	}
	return out
}
