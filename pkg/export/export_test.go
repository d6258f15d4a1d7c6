package export

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"farmtwin/entities"
)

func sampleRows() ([]PlotRow, []entities.SensorType) {
	area := 2500.0
	soil := "Loam"
	rows := []PlotRow{
		{
			FarmName: "Green Valley", State: "Karnataka", District: "Mandya",
			PlotID: "p1", Crop: "Wheat", AreaSqM: &area, SoilType: &soil,
			Readings: map[entities.SensorType]float64{
				entities.SensorTemperature: 27.35,
				entities.SensorHumidity:    61.2,
			},
		},
		{
			FarmName: "Green Valley", State: "Karnataka", District: "Mandya",
			PlotID: "p2", Crop: "",
			Readings: map[entities.SensorType]float64{
				entities.SensorHumidity: 58,
			},
		},
	}
	types := []entities.SensorType{entities.SensorTemperature, entities.SensorHumidity}
	return rows, types
}

func TestFarmCSVLayout(t *testing.T) {
	rows, types := sampleRows()

	out, err := FarmCSV(rows, types)
	require.NoError(t, err)

	recs, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, recs, 3)

	assert.Equal(t, []string{
		"farm_name", "state", "district", "plot_id", "crop", "areaSqM", "soil_type",
		"Temperature", "Humidity",
	}, recs[0])
	assert.Equal(t, []string{
		"Green Valley", "Karnataka", "Mandya", "p1", "Wheat", "2500", "Loam",
		"27.35", "61.2",
	}, recs[1])
	// missing area, soil and temperature render as empty cells
	assert.Equal(t, []string{
		"Green Valley", "Karnataka", "Mandya", "p2", "", "", "",
		"", "58",
	}, recs[2])
}

func TestFarmCSVEmpty(t *testing.T) {
	out, err := FarmCSV(nil, nil)
	require.NoError(t, err)

	recs, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, identityHeader(), recs[0])
}

func TestFarmXLSXMatchesCSVLayout(t *testing.T) {
	rows, types := sampleRows()

	out, err := FarmXLSX(rows, types)
	require.NoError(t, err)

	x, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer x.Close()

	got, err := x.GetRows("Sheet1")
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "farm_name", got[0][0])
	assert.Equal(t, "Temperature", got[0][7])
	assert.Equal(t, "p1", got[1][3])
	assert.Equal(t, "27.35", got[1][7])
}

func TestPredictionsCSV(t *testing.T) {
	created := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	ps := []entities.Prediction{{
		ID:        "pr1",
		PlotID:    "p1",
		Type:      entities.PredictionYield,
		Input:     map[string]any{"rainfall": 120.0},
		Result:    1234.5,
		CreatedAt: created,
	}}

	out, err := PredictionsCSV(ps)
	require.NoError(t, err)

	recs, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, []string{"id", "plotId", "type", "result", "createdAt", "input"}, recs[0])
	assert.Equal(t, "pr1", recs[1][0])
	assert.Equal(t, "yield", recs[1][2])
	assert.Equal(t, "1234.5", recs[1][3])
	assert.Equal(t, "2026-08-30T10:00:00Z", recs[1][4])
	assert.JSONEq(t, `{"rainfall":120}`, recs[1][5])
}
