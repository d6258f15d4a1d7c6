package repository

import "farmtwin/entities"

type CropRepository interface {
	Create(cr *entities.Crop) error
	FindByID(id string) (*entities.Crop, error)
	List() ([]entities.Crop, error)
	Update(cr *entities.Crop) error
	Delete(id string) error
}
