package simulate

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"farmtwin/entities"
)

func sensorOf(typ entities.SensorType, name string) entities.Sensor {
	return entities.Sensor{ID: "s-" + string(typ), Type: typ, Name: name}
}

func TestLiveReadingsValueRanges(t *testing.T) {
	now := time.Now()
	cases := []struct {
		typ      entities.SensorType
		min, max float64
		unit     string
	}{
		{entities.SensorTemperature, 25 - 2.5, 25 + 10 + 2.5, "°C"},
		{entities.SensorHumidity, 60 - 5, 60 + 20 + 5, "%"},
		{entities.SensorSoilMoisture, 40 - 7.5, 40 + 30 + 7.5, "%"},
		{entities.SensorSoilN, 100, 140, "kg/ha"},
		{entities.SensorSoilP, 20, 30, "kg/ha"},
		{entities.SensorSoilK, 150, 210, "kg/ha"},
		{entities.SensorSoilPH, 6.0, 7.0, "pH"},
		{entities.SensorRainfall, 0, 5, "mm"},
		{entities.SensorSolarRadiation, 0, 100, "units"},
		{entities.SensorChlorophyll, 0, 100, "units"},
	}
	for _, tc := range cases {
		t.Run(string(tc.typ), func(t *testing.T) {
			for i := 0; i < 50; i++ {
				out := LiveReadings([]entities.Sensor{sensorOf(tc.typ, "x")}, now)
				require.Len(t, out, 1)
				r := out[0]
				assert.Equal(t, tc.unit, r.Unit)
				assert.GreaterOrEqual(t, r.Value, tc.min)
				assert.LessOrEqual(t, r.Value, tc.max)
			}
		})
	}
}

func TestLiveReadingsRoundsToTwoDecimals(t *testing.T) {
	for i := 0; i < 20; i++ {
		out := LiveReadings([]entities.Sensor{sensorOf(entities.SensorTemperature, "t")}, time.Now())
		v := out[0].Value
		assert.InDelta(t, v, math.Round(v*100)/100, 1e-9)
	}
}

func TestLiveReadingsIDAndMetadata(t *testing.T) {
	plotID := "plot-1"
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	s := entities.Sensor{ID: "abc", Type: entities.SensorHumidity, PlotID: &plotID}
	out := LiveReadings([]entities.Sensor{s}, now)
	require.Len(t, out, 1)

	assert.True(t, strings.HasPrefix(out[0].ID, "sim_abc_"))
	assert.Equal(t, "abc", out[0].SensorID)
	require.NotNil(t, out[0].PlotID)
	assert.Equal(t, plotID, *out[0].PlotID)
	assert.Equal(t, now, out[0].Timestamp)
}

func TestCustomSensorUsesNameHint(t *testing.T) {
	now := time.Now()
	for i := 0; i < 30; i++ {
		out := LiveReadings([]entities.Sensor{sensorOf(entities.SensorCustom, "Soil PH probe")}, now)
		assert.Equal(t, "pH", out[0].Unit)
		assert.GreaterOrEqual(t, out[0].Value, 6.0)
		assert.LessOrEqual(t, out[0].Value, 7.0)
	}
	out := LiveReadings([]entities.Sensor{sensorOf(entities.SensorCustom, "Rainfall gauge")}, now)
	assert.Equal(t, "mm", out[0].Unit)

	out = LiveReadings([]entities.Sensor{sensorOf(entities.SensorCustom, "mystery")}, now)
	assert.Equal(t, "units", out[0].Unit)
}

func TestLiveReadingsDailyCycle(t *testing.T) {
	s := []entities.Sensor{sensorOf(entities.SensorTemperature, "t")}
	midnight := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	noon := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	// jitter is ±2.5 so the 10° swing between midnight and noon dominates
	for i := 0; i < 20; i++ {
		low := LiveReadings(s, midnight)[0].Value
		high := LiveReadings(s, noon)[0].Value
		assert.Less(t, low, high)
	}
}
