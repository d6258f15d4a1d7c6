package repositoryImp

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"farmtwin/entities"
	"farmtwin/pkg/apperr"
	"farmtwin/pkg/sensor/repository"
)

type sensorRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.SensorRepository { return &sensorRepo{db} }

func (r *sensorRepo) Create(s *entities.Sensor) error {
	if s.PlotID != nil {
		if err := r.db.First(&entities.Plot{}, "id = ?", *s.PlotID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.Newf(apperr.Validation, "plot %s does not exist", *s.PlotID)
			}
			return apperr.Wrap(apperr.Storage, "create sensor", err)
		}
	}
	if s.FarmID != nil {
		if err := r.db.First(&entities.Farm{}, "id = ?", *s.FarmID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.Newf(apperr.Validation, "farm %s does not exist", *s.FarmID)
			}
			return apperr.Wrap(apperr.Storage, "create sensor", err)
		}
	}
	if err := r.db.Create(s).Error; err != nil {
		return apperr.Wrap(apperr.Storage, "create sensor", err)
	}
	return nil
}

func (r *sensorRepo) FindByID(id string) (*entities.Sensor, error) {
	var s entities.Sensor
	err := r.db.
		Preload("Plot").
		Preload("Farm").
		Preload("Readings", func(db *gorm.DB) *gorm.DB {
			return db.Order("timestamp DESC")
		}).
		First(&s, "id = ?", id).Error
	if err != nil {
		return nil, apperr.Gorm(err, "sensor")
	}
	return &s, nil
}

func (r *sensorRepo) List() ([]entities.Sensor, error) {
	var ss []entities.Sensor
	err := r.db.Preload("Plot").Preload("Farm").
		Order("installed_at DESC").Find(&ss).Error
	if err != nil {
		return nil, apperr.Wrap(apperr.Storage, "list sensors", err)
	}
	return ss, nil
}

func (r *sensorRepo) ListByPlot(plotID string) ([]entities.Sensor, error) {
	var ss []entities.Sensor
	if err := r.db.Where("plot_id = ?", plotID).Find(&ss).Error; err != nil {
		return nil, apperr.Wrap(apperr.Storage, "list sensors by plot", err)
	}
	return ss, nil
}

func (r *sensorRepo) ListByFarm(farmID string) ([]entities.Sensor, error) {
	var ss []entities.Sensor
	err := r.db.
		Where("farm_id = ?", farmID).
		Or("plot_id IN (?)", r.db.Model(&entities.Plot{}).Select("id").Where("farm_id = ?", farmID)).
		Find(&ss).Error
	if err != nil {
		return nil, apperr.Wrap(apperr.Storage, "list sensors by farm", err)
	}
	return ss, nil
}

func (r *sensorRepo) ListForSimulation(farmID, plotID string, limit int) ([]entities.Sensor, error) {
	q := r.db.Preload("Plot.Farm").Preload("Plot.Crop")
	if plotID != "" {
		q = q.Where("plot_id = ?", plotID)
	} else if farmID != "" {
		q = q.Where("plot_id IN (?)",
			r.db.Model(&entities.Plot{}).Select("id").Where("farm_id = ?", farmID))
	}
	var ss []entities.Sensor
	if err := q.Limit(limit).Find(&ss).Error; err != nil {
		return nil, apperr.Wrap(apperr.Storage, "list sensors for simulation", err)
	}
	return ss, nil
}

func (r *sensorRepo) Update(s *entities.Sensor) error {
	if err := r.db.Omit(clause.Associations).Save(s).Error; err != nil {
		return apperr.Wrap(apperr.Storage, "update sensor", err)
	}
	return nil
}

func (r *sensorRepo) Delete(id string) error {
	res := r.db.Delete(&entities.Sensor{}, "id = ?", id)
	if res.Error != nil {
		return apperr.Wrap(apperr.Storage, "delete sensor", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.New(apperr.NotFound, "sensor not found")
	}
	return nil
}
