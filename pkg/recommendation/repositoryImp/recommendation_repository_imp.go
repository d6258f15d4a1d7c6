package repositoryImp

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"farmtwin/entities"
	"farmtwin/pkg/apperr"
	"farmtwin/pkg/recommendation/repository"
)

type recRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.RecommendationRepository { return &recRepo{db} }

func (r *recRepo) Create(rec *entities.Recommendation) error {
	if err := r.db.First(&entities.Plot{}, "id = ?", rec.PlotID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.Newf(apperr.Validation, "plot %s does not exist", rec.PlotID)
		}
		return apperr.Wrap(apperr.Storage, "create recommendation", err)
	}
	if err := r.db.Create(rec).Error; err != nil {
		return apperr.Wrap(apperr.Storage, "create recommendation", err)
	}
	return nil
}

func (r *recRepo) FindByID(id string) (*entities.Recommendation, error) {
	var rec entities.Recommendation
	if err := r.db.Preload("Plot").First(&rec, "id = ?", id).Error; err != nil {
		return nil, apperr.Gorm(err, "recommendation")
	}
	return &rec, nil
}

func (r *recRepo) List() ([]entities.Recommendation, error) {
	var recs []entities.Recommendation
	err := r.db.Preload("Plot").Order("created_at DESC").Find(&recs).Error
	if err != nil {
		return nil, apperr.Wrap(apperr.Storage, "list recommendations", err)
	}
	return recs, nil
}

func (r *recRepo) ListByPlot(plotID string) ([]entities.Recommendation, error) {
	var recs []entities.Recommendation
	err := r.db.Where("plot_id = ?", plotID).Order("created_at DESC").Find(&recs).Error
	if err != nil {
		return nil, apperr.Wrap(apperr.Storage, "list recommendations by plot", err)
	}
	return recs, nil
}

func (r *recRepo) Update(rec *entities.Recommendation) error {
	if err := r.db.Omit(clause.Associations).Save(rec).Error; err != nil {
		return apperr.Wrap(apperr.Storage, "update recommendation", err)
	}
	return nil
}

func (r *recRepo) Delete(id string) error {
	res := r.db.Delete(&entities.Recommendation{}, "id = ?", id)
	if res.Error != nil {
		return apperr.Wrap(apperr.Storage, "delete recommendation", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.New(apperr.NotFound, "recommendation not found")
	}
	return nil
}
