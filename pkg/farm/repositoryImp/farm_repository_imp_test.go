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

func newTestRepo(t *testing.T) *farmRepo {
	t.Helper()
	db, err := database.Open(":memory:")
	require.NoError(t, err)
	return &farmRepo{db}
}

func makeFarm(t *testing.T, repo *farmRepo, name string) *entities.Farm {
	t.Helper()
	f := &entities.Farm{Name: name, State: "Karnataka", District: "Mandya"}
	require.NoError(t, repo.Create(f))
	return f
}

func TestFarmCreateAndFind(t *testing.T) {
	repo := newTestRepo(t)

	farm := makeFarm(t, repo, "Green Valley")
	assert.NotEmpty(t, farm.ID)

	got, err := repo.FindByID(farm.ID)
	require.NoError(t, err)
	assert.Equal(t, "Green Valley", got.Name)
	assert.Equal(t, "Mandya", got.District)
}

func TestFarmFindMissingIsNotFound(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.FindByID("nope")
	require.Error(t, err)
	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))
}

func TestFarmListNewestFirst(t *testing.T) {
	repo := newTestRepo(t)

	a := makeFarm(t, repo, "A")
	// shift created_at so ordering is deterministic
	require.NoError(t, repo.db.Model(a).
		Update("created_at", time.Now().Add(-time.Hour)).Error)
	makeFarm(t, repo, "B")

	fs, err := repo.List()
	require.NoError(t, err)
	require.Len(t, fs, 2)
	assert.Equal(t, "B", fs[0].Name)
	assert.Equal(t, "A", fs[1].Name)
}

func TestFarmUpdateDoesNotTouchAssociations(t *testing.T) {
	repo := newTestRepo(t)
	farm := makeFarm(t, repo, "Old Name")

	plot := entities.Plot{FarmID: farm.ID, Row: 0, Column: 0}
	require.NoError(t, repo.db.Create(&plot).Error)

	loaded, err := repo.FindByID(farm.ID)
	require.NoError(t, err)
	require.Len(t, loaded.Plots, 1)

	loaded.Name = "New Name"
	require.NoError(t, repo.Update(loaded))

	got, err := repo.FindByID(farm.ID)
	require.NoError(t, err)
	assert.Equal(t, "New Name", got.Name)
	assert.Len(t, got.Plots, 1)
}

func TestFarmDeleteCascades(t *testing.T) {
	repo := newTestRepo(t)
	farm := makeFarm(t, repo, "Doomed")

	plot := entities.Plot{FarmID: farm.ID, Row: 0, Column: 0}
	require.NoError(t, repo.db.Create(&plot).Error)
	sensor := entities.Sensor{PlotID: &plot.ID, FarmID: &farm.ID, Type: entities.SensorTemperature}
	require.NoError(t, repo.db.Create(&sensor).Error)
	reading := entities.SensorReading{SensorID: sensor.ID, PlotID: &plot.ID, Value: 21.5, Timestamp: time.Now()}
	require.NoError(t, repo.db.Create(&reading).Error)
	action := entities.Action{PlotID: plot.ID, Type: entities.ActionIrrigation, PerformedAt: time.Now()}
	require.NoError(t, repo.db.Create(&action).Error)
	rec := entities.Recommendation{PlotID: plot.ID, ActionType: entities.ActionPlanting, Details: "d", Status: entities.StatusPending}
	require.NoError(t, repo.db.Create(&rec).Error)
	pred := entities.Prediction{PlotID: plot.ID, Type: entities.PredictionYield, Result: 1}
	require.NoError(t, repo.db.Create(&pred).Error)
	grid := entities.ActualGrid{GridCell: entities.GridCell{FarmID: farm.ID, CropType: "Wheat", GrowthStage: entities.StageSeedling}}
	require.NoError(t, repo.db.Create(&grid).Error)

	require.NoError(t, repo.Delete(farm.ID))

	counts := map[string]any{
		"plots":           &entities.Plot{},
		"sensors":         &entities.Sensor{},
		"sensor_readings": &entities.SensorReading{},
		"actions":         &entities.Action{},
		"recommendations": &entities.Recommendation{},
		"predictions":     &entities.Prediction{},
		"actual_grids":    &entities.ActualGrid{},
	}
	for name, model := range counts {
		var n int64
		require.NoError(t, repo.db.Model(model).Count(&n).Error)
		assert.Zero(t, n, name)
	}
}

func TestCropDeleteDetachesPlots(t *testing.T) {
	repo := newTestRepo(t)
	farm := makeFarm(t, repo, "Keeps Plots")

	crop := entities.Crop{CommonName: "Wheat", Name: "Wheat"}
	require.NoError(t, repo.db.Create(&crop).Error)
	plot := entities.Plot{FarmID: farm.ID, CropID: &crop.ID, Row: 0, Column: 0}
	require.NoError(t, repo.db.Create(&plot).Error)

	require.NoError(t, repo.db.Delete(&entities.Crop{}, "id = ?", crop.ID).Error)

	var got entities.Plot
	require.NoError(t, repo.db.First(&got, "id = ?", plot.ID).Error)
	assert.Nil(t, got.CropID)
}

func TestFarmDeleteMissingIsNotFound(t *testing.T) {
	repo := newTestRepo(t)

	err := repo.Delete("missing")
	require.Error(t, err)
	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))
}
