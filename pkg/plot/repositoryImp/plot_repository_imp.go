package repositoryImp

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"farmtwin/entities"
	"farmtwin/pkg/apperr"
	"farmtwin/pkg/plot/repository"
)

type plotRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.PlotRepository { return &plotRepo{db} }

func (r *plotRepo) Create(p *entities.Plot) error {
	if err := r.db.First(&entities.Farm{}, "id = ?", p.FarmID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.Newf(apperr.Validation, "farm %s does not exist", p.FarmID)
		}
		return apperr.Wrap(apperr.Storage, "create plot", err)
	}
	if p.CropID != nil {
		if err := r.db.First(&entities.Crop{}, "id = ?", *p.CropID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.Newf(apperr.Validation, "crop %s does not exist", *p.CropID)
			}
			return apperr.Wrap(apperr.Storage, "create plot", err)
		}
	}
	if err := r.db.Create(p).Error; err != nil {
		return apperr.Wrap(apperr.Storage, "create plot", err)
	}
	return nil
}

func (r *plotRepo) FindByID(id string) (*entities.Plot, error) {
	var p entities.Plot
	err := r.db.
		Preload("Crop").
		Preload("Farm").
		Preload("Sensors").
		Preload("Actions").
		Preload("Recommendations").
		First(&p, "id = ?", id).Error
	if err != nil {
		return nil, apperr.Gorm(err, "plot")
	}
	return &p, nil
}

func (r *plotRepo) List() ([]entities.Plot, error) {
	var ps []entities.Plot
	err := r.db.Preload("Crop").Preload("Farm").Order("created_at DESC").Find(&ps).Error
	if err != nil {
		return nil, apperr.Wrap(apperr.Storage, "list plots", err)
	}
	return ps, nil
}

func (r *plotRepo) ListByFarm(farmID string) ([]entities.Plot, error) {
	var ps []entities.Plot
	err := r.db.Preload("Crop").Where("farm_id = ?", farmID).
		Order("row ASC, `column` ASC").Find(&ps).Error
	if err != nil {
		return nil, apperr.Wrap(apperr.Storage, "list plots by farm", err)
	}
	return ps, nil
}

func (r *plotRepo) ListByCrop(cropID string) ([]entities.Plot, error) {
	var ps []entities.Plot
	err := r.db.Preload("Farm").Where("crop_id = ?", cropID).
		Order("created_at DESC").Find(&ps).Error
	if err != nil {
		return nil, apperr.Wrap(apperr.Storage, "list plots by crop", err)
	}
	return ps, nil
}

func (r *plotRepo) Update(p *entities.Plot) error {
	if err := r.db.Omit(clause.Associations).Save(p).Error; err != nil {
		return apperr.Wrap(apperr.Storage, "update plot", err)
	}
	return nil
}

func (r *plotRepo) Delete(id string) error {
	res := r.db.Delete(&entities.Plot{}, "id = ?", id)
	if res.Error != nil {
		return apperr.Wrap(apperr.Storage, "delete plot", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.New(apperr.NotFound, "plot not found")
	}
	return nil
}
