package reports

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/poofware/mono-repo/backend/services/housekeeping-service/internal/aggregation"
	"github.com/poofware/mono-repo/backend/services/housekeeping-service/internal/constants"
	"github.com/poofware/mono-repo/backend/services/housekeeping-service/internal/models"
)

// RosterLine is one labelled line of the board summary.
type RosterLine struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

func joinNumbers(nums []int) string {
	parts := make([]string, len(nums))
	for i, n := range nums {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ", ")
}

// FormatRoster renders "1, 4 Interior y 2 Exterior", dropping an empty
// side, or "Ninguna" when both sides are empty.
func FormatRoster(r aggregation.Roster) string {
	if r.Empty() {
		return constants.EmptyListLiteral
	}
	var parts []string
	if len(r.Indoor) > 0 {
		parts = append(parts, fmt.Sprintf("%s %s", joinNumbers(r.Indoor), TypeLabel(models.HouseTypeIndoor)))
	}
	if len(r.Outdoor) > 0 {
		parts = append(parts, fmt.Sprintf("%s %s", joinNumbers(r.Outdoor), TypeLabel(models.HouseTypeOutdoor)))
	}
	return strings.Join(parts, " y ")
}

// CheckStateLines renders the check-state roster in check-in, check-out,
// both, none order.
func CheckStateLines(roster map[models.CheckStateType]aggregation.Roster) []RosterLine {
	out := make([]RosterLine, 0, len(models.AllCheckStates))
	for _, cs := range models.AllCheckStates {
		out = append(out, RosterLine{Label: checkStateRosterLabels[cs], Value: FormatRoster(roster[cs])})
	}
	return out
}

// StatusLines renders the status roster as occupied, clean, dirty.
func StatusLines(roster map[models.HouseStatusType]aggregation.Roster) []RosterLine {
	order := []models.HouseStatusType{models.HouseStatusOccupied, models.HouseStatusClean, models.HouseStatusDirty}
	out := make([]RosterLine, 0, len(order))
	for _, st := range order {
		out = append(out, RosterLine{Label: statusRosterLabels[st], Value: FormatRoster(roster[st])})
	}
	return out
}

// ClassificationHeader is the outdoor header, e.g. "8 Gold Standard, 3 Gold Premium".
func ClassificationHeader(s aggregation.BoardSummary) string {
	return fmt.Sprintf("%d %s, %d %s",
		s.OutdoorStandard, ClassificationLabel(models.ClassificationGoldStandard),
		s.OutdoorPremium, ClassificationLabel(models.ClassificationGoldPremium))
}
