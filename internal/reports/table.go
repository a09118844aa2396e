package reports

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/poofware/mono-repo/backend/services/housekeeping-service/internal/aggregation"
	"github.com/poofware/mono-repo/backend/services/housekeeping-service/internal/models"
)

// HouseRow is one line of the house report.
type HouseRow struct {
	Casa   string `json:"casa"`
	Tipo   string `json:"tipo"`
	Estado string `json:"estado"`
	Notas  int    `json:"notas"`
}

var houseTableHeader = []string{"Casa", "Tipo", "Estado", "Notas"}

// HouseTable filters houses with the report selector and returns
// number-sorted rows.
func HouseTable(houses []*models.House, filter aggregation.HouseReportFilter) []HouseRow {
	selected := aggregation.SortByNumber(filter.Filter().Apply(houses))
	rows := make([]HouseRow, 0, len(selected))
	for _, h := range selected {
		rows = append(rows, HouseRow{
			Casa:   h.Name,
			Tipo:   TypeLabel(h.Type),
			Estado: StatusLabel(h.Status),
			Notas:  len(h.Notes),
		})
	}
	return rows
}

// RenderHouseTable lays the rows out as a space-aligned plain-text table.
func RenderHouseTable(rows []HouseRow) string {
	var b strings.Builder
	tw := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(houseTableHeader, "\t"))
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\n", r.Casa, r.Tipo, r.Estado, r.Notas)
	}
	_ = tw.Flush()
	return b.String()
}
