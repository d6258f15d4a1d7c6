// Package simulate generates synthetic "live" sensor readings in place of real
// hardware telemetry. Values are ephemeral: nothing here touches storage.
package simulate

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"

	"farmtwin/entities"
)

// Reading is one synthetic measurement for display. The ID combines the sensor
// id and the generation instant, so repeated polls produce distinct ids.
type Reading struct {
	ID        string           `json:"id"`
	SensorID  string           `json:"sensorId"`
	PlotID    *string          `json:"plotId,omitempty"`
	Value     float64          `json:"value"`
	Unit      string           `json:"unit"`
	Timestamp time.Time        `json:"timestamp"`
	Sensor    *entities.Sensor `json:"sensor,omitempty"`
	Plot      *entities.Plot   `json:"plot,omitempty"`
}

// LiveReadings produces one synthetic reading per sensor for the given instant.
// The value depends on the sensor type and the hour of day plus bounded random
// jitter; units follow the type. Values are rounded to two decimals.
func LiveReadings(sensors []entities.Sensor, now time.Time) []Reading {
	out := make([]Reading, 0, len(sensors))
	for i := range sensors {
		s := &sensors[i]
		value, unit := generate(s, now)
		out = append(out, Reading{
			ID:        fmt.Sprintf("sim_%s_%d", s.ID, now.UnixMilli()),
			SensorID:  s.ID,
			PlotID:    s.PlotID,
			Value:     round2(value),
			Unit:      unit,
			Timestamp: now,
			Sensor:    s,
			Plot:      s.Plot,
		})
	}
	return out
}

func generate(s *entities.Sensor, now time.Time) (float64, string) {
	daily := math.Sin(float64(now.Hour()) / 24 * math.Pi)

	switch s.Type {
	case entities.SensorTemperature:
		return 25 + daily*10 + jitter(2.5), "°C"
	case entities.SensorHumidity:
		return 60 + daily*20 + jitter(5), "%"
	case entities.SensorSoilMoisture:
		return 40 + daily*30 + jitter(7.5), "%"
	case entities.SensorSoilN:
		return 120 + jitter(20), "kg/ha"
	case entities.SensorSoilP:
		return 25 + jitter(5), "kg/ha"
	case entities.SensorSoilK:
		return 180 + jitter(30), "kg/ha"
	case entities.SensorSoilPH:
		return ph()
	case entities.SensorRainfall:
		return rainfall()
	case entities.SensorCustom:
		// type carries no signal; pick a generator from the sensor's name
		if strings.Contains(s.Name, "PH") {
			return ph()
		}
		if strings.Contains(s.Name, "Rainfall") {
			return rainfall()
		}
		return rand.Float64() * 100, "units"
	default:
		return rand.Float64() * 100, "units"
	}
}

func ph() (float64, string) { return 6.5 + jitter(0.5), "pH" }

func rainfall() (float64, string) {
	if rand.Float64() > 0.7 {
		return rand.Float64() * 5, "mm"
	}
	return 0, "mm"
}

// jitter returns a uniform value in [-amp, amp].
func jitter(amp float64) float64 { return (rand.Float64() - 0.5) * 2 * amp }

func round2(v float64) float64 { return math.Round(v*100) / 100 }
