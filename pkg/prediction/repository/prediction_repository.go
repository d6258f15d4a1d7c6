package repository

import "farmtwin/entities"

// Predictions are an append-only log; there is no update or delete path.
type PredictionRepository interface {
	Create(p *entities.Prediction) error
	ListByPlot(plotID string, typ entities.PredictionType) ([]entities.Prediction, error)
	ListByFarm(farmID string) ([]entities.Prediction, error)
}
