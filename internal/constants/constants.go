package constants

import "time"

// Provisioning
const (
	IndoorHouseCount  = 34
	OutdoorHouseCount = 11
)

// Printable occupancy grid
const (
	OccupancyGridRows        = 44
	OccupancyGridObsLines    = 8
	ReportTimezone           = "America/Santiago"
	OccupancyReportTitle     = "REPORTE DE OCUPACIÓN"
	OccupancyPrintTitle      = "Reporte Diario de Ocupación"
	EmptyListLiteral         = "Ninguna"
	ReportEmailSubjectFormat = "Reporte de ocupación %s"
)

// Scheduling
const (
	DefaultCheckStateResetCron = "0 4 * * *" // 04:00 daily, after late check-outs
	CheckStateResetJobTimeout  = 30 * time.Second
)

// Optimistic locking
const HouseUpdateMaxRetries = 3
