package repository

import "farmtwin/entities"

type FarmRepository interface {
	Create(f *entities.Farm) error
	FindByID(id string) (*entities.Farm, error)
	List() ([]entities.Farm, error)
	Update(f *entities.Farm) error
	Delete(id string) error
}
