package reports

import (
	"github.com/poofware/mono-repo/backend/services/housekeeping-service/internal/models"
)

var (
	typeLabels = map[models.HouseType]string{
		models.HouseTypeIndoor:  "Interior",
		models.HouseTypeOutdoor: "Exterior",
	}
	statusLabels = map[models.HouseStatusType]string{
		models.HouseStatusClean:    "Limpia",
		models.HouseStatusDirty:    "Sucia",
		models.HouseStatusOccupied: "Ocupada",
	}
	statusRosterLabels = map[models.HouseStatusType]string{
		models.HouseStatusOccupied: "Ocupadas",
		models.HouseStatusClean:    "Limpias",
		models.HouseStatusDirty:    "Sucias",
	}
	checkStateRosterLabels = map[models.CheckStateType]string{
		models.CheckStateCheckIn:         "Llegadas hoy",
		models.CheckStateCheckOut:        "Salidas hoy",
		models.CheckStateCheckInCheckOut: "Check-in Check-out",
		models.CheckStateNone:            "Sin movimiento",
	}
	categoryLabels = map[models.NoteCategoryType]string{
		models.NoteCategoryCritical: "Grave",
		models.NoteCategoryMinor:    "Leve",
		models.NoteCategoryOther:    "Otra",
	}
	areaLabels = map[models.NoteAreaType]string{
		models.NoteAreaPlumbing:   "Gasfitería",
		models.NoteAreaElectrical: "Electricidad",
		models.NoteAreaRestocking: "Reposición",
		models.NoteAreaOther:      "Otro",
	}
)

func TypeLabel(t models.HouseType) string { return typeLabels[t] }

// StatusLabel falls back to "Ocupada" like the board does for anything
// that is neither clean nor dirty.
func StatusLabel(s models.HouseStatusType) string {
	if l, ok := statusLabels[s]; ok {
		return l
	}
	return statusLabels[models.HouseStatusOccupied]
}

func CategoryLabel(c models.NoteCategoryType) string { return categoryLabels[c] }

func AreaLabel(a models.NoteAreaType) string {
	if l, ok := areaLabels[a]; ok {
		return l
	}
	return areaLabels[models.NoteAreaOther]
}

// ClassificationLabel renders the tier shown on each card.
func ClassificationLabel(c models.ClassificationType) string {
	if c == models.ClassificationGoldPremium {
		return "Gold Premium"
	}
	return "Gold Standard"
}
