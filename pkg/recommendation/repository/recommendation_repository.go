package repository

import "farmtwin/entities"

type RecommendationRepository interface {
	Create(rec *entities.Recommendation) error
	FindByID(id string) (*entities.Recommendation, error)
	List() ([]entities.Recommendation, error)
	ListByPlot(plotID string) ([]entities.Recommendation, error)
	Update(rec *entities.Recommendation) error
	Delete(id string) error
}
