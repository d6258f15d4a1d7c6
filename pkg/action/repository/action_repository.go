package repository

import "farmtwin/entities"

type ActionRepository interface {
	Create(a *entities.Action) error
	FindByID(id string) (*entities.Action, error)
	List() ([]entities.Action, error)
	ListByPlot(plotID string) ([]entities.Action, error)
	Update(a *entities.Action) error
	Delete(id string) error
}
