package seed

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"farmtwin/entities"
	"farmtwin/pkg/simulate"
)

const (
	plotsPerFarm = 5
	historyDays  = 7
	batchSize    = 1000
)

// Run loads a small demo dataset: two farms with crops, plots, a full sensor
// suite per plot and a week of hourly readings. Safe to re-run; existing rows
// are reused and readings are only generated once.
func Run(db *gorm.DB, logger *zap.Logger) error {
	crops := []entities.Crop{
		{CommonName: "Wheat", Name: "Wheat", Variety: "Hard Red"},
		{CommonName: "Corn", Name: "Corn", Variety: "Sweet"},
		{CommonName: "Soybean", Name: "Soybean", Variety: "Glycine max"},
	}
	for i := range crops {
		if err := db.Where(entities.Crop{CommonName: crops[i].CommonName}).
			FirstOrCreate(&crops[i]).Error; err != nil {
			return fmt.Errorf("seed crop %s: %w", crops[i].CommonName, err)
		}
	}

	farms := []entities.Farm{
		{Name: "Green Valley", State: "Karnataka", District: "Mandya"},
		{Name: "Sunny Acres", State: "Punjab", District: "Ludhiana"},
	}
	for i := range farms {
		if err := db.Where(entities.Farm{
			Name: farms[i].Name, State: farms[i].State, District: farms[i].District,
		}).FirstOrCreate(&farms[i]).Error; err != nil {
			return fmt.Errorf("seed farm %s: %w", farms[i].Name, err)
		}
	}

	soils := []string{"Loam", "Clay", "Sandy", "Silt", "Peat"}
	for fi := range farms {
		for pi := 0; pi < plotsPerFarm; pi++ {
			crop := crops[(fi*plotsPerFarm+pi)%len(crops)]
			area := 2500.0
			soil := soils[pi%len(soils)]
			plot := entities.Plot{
				FarmID: farms[fi].ID,
				Row:    pi / 3,
				Column: pi % 3,
			}
			if err := db.Where(entities.Plot{
				FarmID: plot.FarmID, Row: plot.Row, Column: plot.Column,
			}).Attrs(entities.Plot{
				CropID: &crop.ID, AreaSqM: &area, SoilType: &soil,
			}).FirstOrCreate(&plot).Error; err != nil {
				return fmt.Errorf("seed plot: %w", err)
			}
			if err := seedPlot(db, logger, plot); err != nil {
				return err
			}
		}
	}

	logger.Info("seed complete",
		zap.Int("farms", len(farms)),
		zap.Int("crops", len(crops)))
	return nil
}

func seedPlot(db *gorm.DB, logger *zap.Logger, plot entities.Plot) error {
	var sensors []entities.Sensor
	for _, typ := range entities.SensorTypes() {
		if typ == entities.SensorCustom {
			continue
		}
		s := entities.Sensor{PlotID: &plot.ID, Type: typ}
		if err := db.Where(entities.Sensor{PlotID: &plot.ID, Type: typ}).
			Attrs(entities.Sensor{
				Name:        fmt.Sprintf("%s sensor", typ),
				InstalledAt: time.Now().AddDate(0, -1, 0),
			}).FirstOrCreate(&s).Error; err != nil {
			return fmt.Errorf("seed sensor %s: %w", typ, err)
		}
		sensors = append(sensors, s)
	}

	if err := seedReadings(db, sensors, plot.ID); err != nil {
		return err
	}

	action := entities.Action{PlotID: plot.ID, Type: entities.ActionIrrigation}
	if err := db.Where(entities.Action{PlotID: plot.ID, Type: entities.ActionIrrigation}).
		Attrs(entities.Action{PerformedAt: time.Now().AddDate(0, 0, -2)}).
		FirstOrCreate(&action).Error; err != nil {
		return fmt.Errorf("seed action: %w", err)
	}

	rec := entities.Recommendation{PlotID: plot.ID, ActionType: entities.ActionFertilization}
	if err := db.Where(entities.Recommendation{
		PlotID: plot.ID, ActionType: entities.ActionFertilization,
	}).Attrs(entities.Recommendation{
		Details: "Apply nitrogen-rich fertilizer based on recent soil readings",
		Status:  entities.StatusPending,
	}).FirstOrCreate(&rec).Error; err != nil {
		return fmt.Errorf("seed recommendation: %w", err)
	}
	return nil
}

func seedReadings(db *gorm.DB, sensors []entities.Sensor, plotID string) error {
	if len(sensors) == 0 {
		return nil
	}
	var count int64
	if err := db.Model(&entities.SensorReading{}).
		Where("sensor_id = ?", sensors[0].ID).Count(&count).Error; err != nil {
		return fmt.Errorf("count readings: %w", err)
	}
	if count > 0 {
		return nil
	}

	start := time.Now().Truncate(time.Hour).AddDate(0, 0, -historyDays)
	var rows []entities.SensorReading
	for h := 0; h < historyDays*24; h++ {
		ts := start.Add(time.Duration(h) * time.Hour)
		for _, r := range simulate.LiveReadings(sensors, ts) {
			rows = append(rows, entities.SensorReading{
				SensorID:  r.SensorID,
				PlotID:    &plotID,
				Value:     r.Value,
				Timestamp: ts,
			})
		}
	}
	if err := db.CreateInBatches(rows, batchSize).Error; err != nil {
		return fmt.Errorf("seed readings: %w", err)
	}
	return nil
}
