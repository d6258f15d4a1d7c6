package repository

import (
	"time"

	"farmtwin/entities"
)

// SensorReading rows are append-only: there is no update path.
type ReadingRepository interface {
	Create(r *entities.SensorReading) error
	BulkInsert(rs []entities.SensorReading) error
	FindByID(id string) (*entities.SensorReading, error)
	ListBySensor(sensorID string) ([]entities.SensorReading, error)
	ListByPlot(plotID string) ([]entities.SensorReading, error)
	ListByTimeRange(sensorID string, start, end time.Time) ([]entities.SensorReading, error)
	Delete(id string) error
}
