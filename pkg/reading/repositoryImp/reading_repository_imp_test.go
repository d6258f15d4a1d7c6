package repositoryImp

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"farmtwin/database"
	"farmtwin/entities"
	"farmtwin/pkg/apperr"
)

func newTestRepo(t *testing.T) (*readingRepo, *entities.Sensor) {
	t.Helper()
	db, err := database.Open(":memory:")
	require.NoError(t, err)

	farm := entities.Farm{Name: "F", State: "S", District: "D"}
	require.NoError(t, db.Create(&farm).Error)
	plot := entities.Plot{FarmID: farm.ID, Row: 0, Column: 0}
	require.NoError(t, db.Create(&plot).Error)
	sensor := entities.Sensor{PlotID: &plot.ID, Type: entities.SensorTemperature}
	require.NoError(t, db.Create(&sensor).Error)

	return &readingRepo{db}, &sensor
}

func TestBulkInsertStoresAllRows(t *testing.T) {
	repo, sensor := newTestRepo(t)

	base := time.Now().Truncate(time.Hour)
	rs := make([]entities.SensorReading, 5)
	for i := range rs {
		rs[i] = entities.SensorReading{
			SensorID:  sensor.ID,
			Value:     float64(20 + i),
			Timestamp: base.Add(time.Duration(i) * time.Hour),
		}
	}
	require.NoError(t, repo.BulkInsert(rs))

	got, err := repo.ListBySensor(sensor.ID)
	require.NoError(t, err)
	assert.Len(t, got, 5)
}

func TestBulkInsertRejectsUnknownSensor(t *testing.T) {
	repo, sensor := newTestRepo(t)

	rs := []entities.SensorReading{
		{SensorID: sensor.ID, Value: 21, Timestamp: time.Now()},
		{SensorID: "ghost", Value: 22, Timestamp: time.Now()},
	}
	err := repo.BulkInsert(rs)
	require.Error(t, err)
	assert.Equal(t, apperr.Validation, apperr.KindOf(err))

	// nothing written for the valid rows either
	got, lerr := repo.ListBySensor(sensor.ID)
	require.NoError(t, lerr)
	assert.Empty(t, got)
}

func TestBulkInsertEmptyIsNoop(t *testing.T) {
	repo, _ := newTestRepo(t)
	require.NoError(t, repo.BulkInsert(nil))
}

func TestListByTimeRangeAscending(t *testing.T) {
	repo, sensor := newTestRepo(t)

	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	var rs []entities.SensorReading
	for i := 0; i < 4; i++ {
		rs = append(rs, entities.SensorReading{
			SensorID:  sensor.ID,
			Value:     float64(i),
			Timestamp: base.Add(time.Duration(i) * time.Hour),
		})
	}
	require.NoError(t, repo.BulkInsert(rs))

	got, err := repo.ListByTimeRange(sensor.ID, base, base.Add(2*time.Hour))
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, 0.0, got[0].Value)
	assert.Equal(t, 2.0, got[2].Value)
}
