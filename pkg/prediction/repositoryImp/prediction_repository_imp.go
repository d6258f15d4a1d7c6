package repositoryImp

import (
	"gorm.io/gorm"

	"farmtwin/entities"
	"farmtwin/pkg/apperr"
	"farmtwin/pkg/prediction/repository"
)

type predictionRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.PredictionRepository { return &predictionRepo{db} }

func (r *predictionRepo) Create(p *entities.Prediction) error {
	if err := r.db.Create(p).Error; err != nil {
		return apperr.Wrap(apperr.Storage, "store prediction", err)
	}
	return nil
}

func (r *predictionRepo) ListByPlot(plotID string, typ entities.PredictionType) ([]entities.Prediction, error) {
	q := r.db.Where("plot_id = ?", plotID)
	if typ != "" {
		q = q.Where("type = ?", typ)
	}
	var ps []entities.Prediction
	if err := q.Order("created_at ASC").Find(&ps).Error; err != nil {
		return nil, apperr.Wrap(apperr.Storage, "list predictions by plot", err)
	}
	return ps, nil
}

func (r *predictionRepo) ListByFarm(farmID string) ([]entities.Prediction, error) {
	var ps []entities.Prediction
	err := r.db.
		Where("plot_id IN (?)", r.db.Model(&entities.Plot{}).Select("id").Where("farm_id = ?", farmID)).
		Order("created_at ASC").Find(&ps).Error
	if err != nil {
		return nil, apperr.Wrap(apperr.Storage, "list predictions by farm", err)
	}
	return ps, nil
}
