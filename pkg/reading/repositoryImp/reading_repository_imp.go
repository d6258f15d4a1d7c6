package repositoryImp

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"farmtwin/entities"
	"farmtwin/pkg/apperr"
	"farmtwin/pkg/reading/repository"
)

type readingRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.ReadingRepository { return &readingRepo{db} }

func (r *readingRepo) Create(reading *entities.SensorReading) error {
	if err := r.db.First(&entities.Sensor{}, "id = ?", reading.SensorID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.Newf(apperr.Validation, "sensor %s does not exist", reading.SensorID)
		}
		return apperr.Wrap(apperr.Storage, "create reading", err)
	}
	if err := r.db.Create(reading).Error; err != nil {
		return apperr.Wrap(apperr.Storage, "create reading", err)
	}
	return nil
}

func (r *readingRepo) BulkInsert(rs []entities.SensorReading) error {
	if len(rs) == 0 {
		return nil
	}

	seen := map[string]struct{}{}
	var ids []string
	for i := range rs {
		if _, ok := seen[rs[i].SensorID]; !ok {
			seen[rs[i].SensorID] = struct{}{}
			ids = append(ids, rs[i].SensorID)
		}
	}
	var found int64
	if err := r.db.Model(&entities.Sensor{}).Where("id IN ?", ids).Count(&found).Error; err != nil {
		return apperr.Wrap(apperr.Storage, "bulk insert readings", err)
	}
	if found != int64(len(ids)) {
		return apperr.New(apperr.Validation, "one or more sensors do not exist")
	}

	if err := r.db.CreateInBatches(rs, 1000).Error; err != nil {
		return apperr.Wrap(apperr.Storage, "bulk insert readings", err)
	}
	return nil
}

func (r *readingRepo) FindByID(id string) (*entities.SensorReading, error) {
	var reading entities.SensorReading
	err := r.db.Preload("Sensor").Preload("Plot").First(&reading, "id = ?", id).Error
	if err != nil {
		return nil, apperr.Gorm(err, "sensor reading")
	}
	return &reading, nil
}

func (r *readingRepo) ListBySensor(sensorID string) ([]entities.SensorReading, error) {
	var rs []entities.SensorReading
	err := r.db.Where("sensor_id = ?", sensorID).
		Order("timestamp DESC").Find(&rs).Error
	if err != nil {
		return nil, apperr.Wrap(apperr.Storage, "list readings by sensor", err)
	}
	return rs, nil
}

func (r *readingRepo) ListByPlot(plotID string) ([]entities.SensorReading, error) {
	var rs []entities.SensorReading
	err := r.db.Where("plot_id = ?", plotID).
		Order("timestamp DESC").Find(&rs).Error
	if err != nil {
		return nil, apperr.Wrap(apperr.Storage, "list readings by plot", err)
	}
	return rs, nil
}

func (r *readingRepo) ListByTimeRange(sensorID string, start, end time.Time) ([]entities.SensorReading, error) {
	var rs []entities.SensorReading
	err := r.db.Where("sensor_id = ? AND timestamp >= ? AND timestamp <= ?", sensorID, start, end).
		Order("timestamp ASC").Find(&rs).Error
	if err != nil {
		return nil, apperr.Wrap(apperr.Storage, "list readings by time range", err)
	}
	return rs, nil
}

func (r *readingRepo) Delete(id string) error {
	res := r.db.Delete(&entities.SensorReading{}, "id = ?", id)
	if res.Error != nil {
		return apperr.Wrap(apperr.Storage, "delete reading", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.New(apperr.NotFound, "sensor reading not found")
	}
	return nil
}
