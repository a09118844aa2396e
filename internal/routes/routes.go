package routes

const (
	// Health
	Health  = "/health"
	Metrics = "/metrics"

	// Houses
	HousesBase  = "/api/v1/houses"
	HouseByID   = "/api/v1/houses/{id}"
	HouseStatus = "/api/v1/houses/{id}/status"
	HouseNotes  = "/api/v1/houses/{id}/notes"

	// Notes
	NoteByID        = "/api/v1/notes/{id}"
	NotesBulkDelete = "/api/v1/notes/bulk-delete"

	// Reports
	ReportsHouses         = "/api/v1/reports/houses"
	ReportsNotes          = "/api/v1/reports/notes"
	ReportsOccupancy      = "/api/v1/reports/occupancy"
	ReportsOccupancyPrint = "/api/v1/reports/occupancy/print"
	ReportsOccupancySend  = "/api/v1/reports/occupancy/send"
	ReportsSummary        = "/api/v1/reports/summary"
)

// InvalidateHeader names the collection a client must refetch after a
// successful mutation.
const InvalidateHeader = "X-Invalidate"
