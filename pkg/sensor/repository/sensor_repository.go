package repository

import "farmtwin/entities"

type SensorRepository interface {
	Create(s *entities.Sensor) error
	FindByID(id string) (*entities.Sensor, error)
	List() ([]entities.Sensor, error)
	ListByPlot(plotID string) ([]entities.Sensor, error)
	ListByFarm(farmID string) ([]entities.Sensor, error)
	// ListForSimulation returns sensors with their plot, farm and crop loaded,
	// filtered by farm and/or plot, capped at limit. Used by the live-readings
	// generator.
	ListForSimulation(farmID, plotID string, limit int) ([]entities.Sensor, error)
	Update(s *entities.Sensor) error
	Delete(id string) error
}
