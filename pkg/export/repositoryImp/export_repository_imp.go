package repositoryImp

import (
	"errors"

	"gorm.io/gorm"

	"farmtwin/entities"
	"farmtwin/pkg/apperr"
	"farmtwin/pkg/export"
	"farmtwin/pkg/export/repository"
)

type exportRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.ExportRepository { return &exportRepo{db} }

func (r *exportRepo) PlotRows() ([]export.PlotRow, []entities.SensorType, error) {
	var plots []entities.Plot
	err := r.db.Preload("Farm").Preload("Crop").Preload("Sensors").
		Order("created_at ASC").Find(&plots).Error
	if err != nil {
		return nil, nil, apperr.Wrap(apperr.Storage, "export plots", err)
	}

	var types []entities.SensorType
	seen := map[entities.SensorType]struct{}{}

	rows := make([]export.PlotRow, 0, len(plots))
	for _, p := range plots {
		row := export.PlotRow{
			PlotID:   p.ID,
			AreaSqM:  p.AreaSqM,
			SoilType: p.SoilType,
			Readings: map[entities.SensorType]float64{},
		}
		if p.Farm != nil {
			row.FarmName = p.Farm.Name
			row.State = p.Farm.State
			row.District = p.Farm.District
		}
		if p.Crop != nil {
			row.Crop = p.Crop.CommonName
			if row.Crop == "" {
				row.Crop = p.Crop.Name
			}
		}
		for _, s := range p.Sensors {
			if _, ok := seen[s.Type]; !ok {
				seen[s.Type] = struct{}{}
				types = append(types, s.Type)
			}
			var latest entities.SensorReading
			err := r.db.Where("sensor_id = ?", s.ID).
				Order("timestamp DESC").First(&latest).Error
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					continue // no readings yet; cell stays blank
				}
				return nil, nil, apperr.Wrap(apperr.Storage, "export readings", err)
			}
			row.Readings[s.Type] = latest.Value
		}
		rows = append(rows, row)
	}
	return rows, types, nil
}
