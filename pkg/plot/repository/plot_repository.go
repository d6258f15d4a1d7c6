package repository

import "farmtwin/entities"

type PlotRepository interface {
	Create(p *entities.Plot) error
	FindByID(id string) (*entities.Plot, error)
	List() ([]entities.Plot, error)
	ListByFarm(farmID string) ([]entities.Plot, error)
	ListByCrop(cropID string) ([]entities.Plot, error)
	Update(p *entities.Plot) error
	Delete(id string) error
}
