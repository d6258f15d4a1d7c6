package repository

import (
	"farmtwin/entities"
	"farmtwin/pkg/export"
)

type ExportRepository interface {
	// PlotRows returns one row per plot with the latest reading per sensor
	// type, plus the distinct sensor types seen across the set in
	// first-encountered order.
	PlotRows() ([]export.PlotRow, []entities.SensorType, error)
}
