package repositoryImp

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"farmtwin/entities"
	"farmtwin/pkg/action/repository"
	"farmtwin/pkg/apperr"
)

type actionRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.ActionRepository { return &actionRepo{db} }

func (r *actionRepo) Create(a *entities.Action) error {
	if err := r.db.First(&entities.Plot{}, "id = ?", a.PlotID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.Newf(apperr.Validation, "plot %s does not exist", a.PlotID)
		}
		return apperr.Wrap(apperr.Storage, "create action", err)
	}
	if err := r.db.Create(a).Error; err != nil {
		return apperr.Wrap(apperr.Storage, "create action", err)
	}
	return nil
}

func (r *actionRepo) FindByID(id string) (*entities.Action, error) {
	var a entities.Action
	if err := r.db.Preload("Plot").First(&a, "id = ?", id).Error; err != nil {
		return nil, apperr.Gorm(err, "action")
	}
	return &a, nil
}

func (r *actionRepo) List() ([]entities.Action, error) {
	var as []entities.Action
	err := r.db.Preload("Plot").Order("performed_at DESC").Find(&as).Error
	if err != nil {
		return nil, apperr.Wrap(apperr.Storage, "list actions", err)
	}
	return as, nil
}

func (r *actionRepo) ListByPlot(plotID string) ([]entities.Action, error) {
	var as []entities.Action
	err := r.db.Where("plot_id = ?", plotID).Order("performed_at DESC").Find(&as).Error
	if err != nil {
		return nil, apperr.Wrap(apperr.Storage, "list actions by plot", err)
	}
	return as, nil
}

func (r *actionRepo) Update(a *entities.Action) error {
	if err := r.db.Omit(clause.Associations).Save(a).Error; err != nil {
		return apperr.Wrap(apperr.Storage, "update action", err)
	}
	return nil
}

func (r *actionRepo) Delete(id string) error {
	res := r.db.Delete(&entities.Action{}, "id = ?", id)
	if res.Error != nil {
		return apperr.Wrap(apperr.Storage, "delete action", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.New(apperr.NotFound, "action not found")
	}
	return nil
}
