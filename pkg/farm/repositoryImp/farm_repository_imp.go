package repositoryImp

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"farmtwin/entities"
	"farmtwin/pkg/apperr"
	"farmtwin/pkg/farm/repository"
)

type farmRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.FarmRepository { return &farmRepo{db} }

func (r *farmRepo) Create(f *entities.Farm) error {
	if err := r.db.Create(f).Error; err != nil {
		return apperr.Wrap(apperr.Storage, "create farm", err)
	}
	return nil
}

func (r *farmRepo) FindByID(id string) (*entities.Farm, error) {
	var f entities.Farm
	err := r.db.
		Preload("Plots.Crop").
		Preload("Plots.Sensors").
		Preload("Sensors").
		First(&f, "id = ?", id).Error
	if err != nil {
		return nil, apperr.Gorm(err, "farm")
	}
	return &f, nil
}

func (r *farmRepo) List() ([]entities.Farm, error) {
	var fs []entities.Farm
	err := r.db.
		Preload("Plots.Sensors").
		Preload("Plots.Crop").
		Order("created_at DESC").
		Find(&fs).Error
	if err != nil {
		return nil, apperr.Wrap(apperr.Storage, "list farms", err)
	}
	return fs, nil
}

func (r *farmRepo) Update(f *entities.Farm) error {
	if err := r.db.Omit(clause.Associations).Save(f).Error; err != nil {
		return apperr.Wrap(apperr.Storage, "update farm", err)
	}
	return nil
}

func (r *farmRepo) Delete(id string) error {
	res := r.db.Delete(&entities.Farm{}, "id = ?", id)
	if res.Error != nil {
		return apperr.Wrap(apperr.Storage, "delete farm", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.New(apperr.NotFound, "farm not found")
	}
	return nil
}
