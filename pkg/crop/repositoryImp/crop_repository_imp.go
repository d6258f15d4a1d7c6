package repositoryImp

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"farmtwin/entities"
	"farmtwin/pkg/apperr"
	"farmtwin/pkg/crop/repository"
)

type cropRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.CropRepository { return &cropRepo{db} }

func (r *cropRepo) Create(cr *entities.Crop) error {
	if err := r.db.Create(cr).Error; err != nil {
		return apperr.Wrap(apperr.Storage, "create crop", err)
	}
	return nil
}

func (r *cropRepo) FindByID(id string) (*entities.Crop, error) {
	var cr entities.Crop
	if err := r.db.Preload("Plots").First(&cr, "id = ?", id).Error; err != nil {
		return nil, apperr.Gorm(err, "crop")
	}
	return &cr, nil
}

func (r *cropRepo) List() ([]entities.Crop, error) {
	var crs []entities.Crop
	if err := r.db.Preload("Plots").Order("created_at DESC").Find(&crs).Error; err != nil {
		return nil, apperr.Wrap(apperr.Storage, "list crops", err)
	}
	return crs, nil
}

func (r *cropRepo) Update(cr *entities.Crop) error {
	if err := r.db.Omit(clause.Associations).Save(cr).Error; err != nil {
		return apperr.Wrap(apperr.Storage, "update crop", err)
	}
	return nil
}

func (r *cropRepo) Delete(id string) error {
	res := r.db.Delete(&entities.Crop{}, "id = ?", id)
	if res.Error != nil {
		return apperr.Wrap(apperr.Storage, "delete crop", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.New(apperr.NotFound, "crop not found")
	}
	return nil
}
