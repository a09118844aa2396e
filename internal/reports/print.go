package reports

import (
	"bytes"
	"html/template"
	"strconv"
	"time"

	"github.com/poofware/mono-repo/backend/services/housekeeping-service/internal/constants"
	"github.com/poofware/mono-repo/backend/services/housekeeping-service/internal/models"
)

// GridCell is one side of a printed row. A blank cell has an empty Number.
type GridCell struct {
	Number string
	Estado string
	Check  string
}

type GridRow struct {
	Indoor  GridCell
	Outdoor GridCell
}

type printPage struct {
	Title    string
	Date     string
	Rows     []GridRow
	ObsLines []int
}

var printTemplate = template.Must(template.New("occupancy").Parse(`<!DOCTYPE html>
<html lang="es">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
  body { font-family: Arial, sans-serif; font-size: 11px; margin: 12mm; }
  h1 { font-size: 16px; margin: 0 0 4px 0; }
  .date { margin-bottom: 8px; }
  table { border-collapse: collapse; width: 100%; }
  th, td { border: 1px solid #000; padding: 2px 4px; height: 14px; }
  th { background: #eee; }
  .gap { border: none; width: 12px; }
  .obs { margin-top: 12px; border: 1px solid #000; padding: 4px 8px; }
  .obs .line { border-bottom: 1px solid #999; height: 18px; }
  @media print { body { margin: 0; } }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<div class="date">Fecha: {{.Date}}</div>
<table>
  <thead>
    <tr>
      <th>Casa</th><th>Estado</th><th>Check</th>
      <th class="gap"></th>
      <th>Casa EXT</th><th>Estado</th><th>Check</th>
    </tr>
  </thead>
  <tbody>
{{- range .Rows}}
    <tr>
      <td>{{.Indoor.Number}}</td><td>{{.Indoor.Estado}}</td><td>{{.Indoor.Check}}</td>
      <td class="gap"></td>
      <td>{{.Outdoor.Number}}</td><td>{{.Outdoor.Estado}}</td><td>{{.Outdoor.Check}}</td>
    </tr>
{{- end}}
  </tbody>
</table>
<div class="obs">
  <strong>Observaciones</strong>
{{- range .ObsLines}}
  <div class="line"></div>
{{- end}}
</div>
</body>
</html>
`))

func gridCell(h *models.House) GridCell {
	if h == nil {
		return GridCell{}
	}
	c := GridCell{Number: strconv.Itoa(h.EffectiveNumber()), Estado: StatusLabel(h.Status)}
	if h.CheckState != models.CheckStateNone {
		c.Check = string(h.CheckState)
	}
	return c
}

// OccupancyGrid lays houses out on the fixed printed sheet: row i holds
// indoor house i beside outdoor house i. Positions with no house stay blank.
func OccupancyGrid(houses []*models.House) []GridRow {
	indoor := make(map[int]*models.House)
	outdoor := make(map[int]*models.House)
	for _, h := range houses {
		n := h.EffectiveNumber()
		if n == 0 {
			continue
		}
		if h.Type == models.HouseTypeOutdoor {
			outdoor[n] = h
		} else {
			indoor[n] = h
		}
	}

	rows := make([]GridRow, constants.OccupancyGridRows)
	for i := range rows {
		n := i + 1
		if n <= constants.IndoorHouseCount {
			rows[i].Indoor = gridCell(indoor[n])
		}
		if n <= constants.OutdoorHouseCount {
			rows[i].Outdoor = gridCell(outdoor[n])
		}
	}
	return rows
}

// OccupancyPrint renders the printable daily occupancy sheet for day.
func OccupancyPrint(houses []*models.House, day time.Time) (string, error) {
	page := printPage{
		Title:    constants.OccupancyPrintTitle,
		Date:     day.Format("02-01-2006"),
		Rows:     OccupancyGrid(houses),
		ObsLines: make([]int, constants.OccupancyGridObsLines),
	}
	var buf bytes.Buffer
	if err := printTemplate.Execute(&buf, page); err != nil {
		return "", err
	}
	return buf.String(), nil
}
