package reports

import (
	"fmt"
	"strings"

	"github.com/poofware/mono-repo/backend/services/housekeeping-service/internal/aggregation"
	"github.com/poofware/mono-repo/backend/services/housekeeping-service/internal/constants"
)

func namesOrNone(names []string) string {
	if len(names) == 0 {
		return constants.EmptyListLiteral
	}
	return strings.Join(names, ", ")
}

// OccupancyText is the plain-text handoff staff paste into chat. The
// layout is fixed; do not reflow it.
func OccupancyText(t aggregation.OccupancyTally) string {
	return fmt.Sprintf("%s\n\nCasas Interiores (%d)\nOcupadas: %s\n\nCasas Exteriores (%d)\nOcupadas: %s",
		constants.OccupancyReportTitle,
		t.IndoorOccupiedCount(), namesOrNone(t.IndoorOccupied),
		t.OutdoorOccupiedCount(), namesOrNone(t.OutdoorOccupied),
	)
}
