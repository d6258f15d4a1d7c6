package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Sensor is attached to a plot and/or directly to a farm. At most one sensor of
// a given type per plot.
type Sensor struct {
	ID          string     `gorm:"primaryKey;size:36" json:"id"`
	PlotID      *string    `gorm:"index;uniqueIndex:idx_sensor_plot_type" json:"plotId,omitempty"`
	FarmID      *string    `gorm:"index" json:"farmId,omitempty"`
	Type        SensorType `gorm:"uniqueIndex:idx_sensor_plot_type" json:"type"`
	Name        string     `json:"name"`
	Location    *string    `json:"location,omitempty"`
	InstalledAt time.Time  `json:"installedAt"`

	Plot *Plot `json:"plot,omitempty"`
	Farm *Farm `json:"farm,omitempty"`

	Readings []SensorReading `gorm:"constraint:OnDelete:CASCADE" json:"readings,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (s *Sensor) BeforeCreate(*gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

// SensorReading is append-only; rows are never updated once written.
type SensorReading struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	SensorID  string    `gorm:"index" json:"sensorId"`
	PlotID    *string   `gorm:"index" json:"plotId,omitempty"`
	Value     float64   `json:"value"`
	Timestamp time.Time `gorm:"index" json:"timestamp"`

	Sensor *Sensor `json:"sensor,omitempty"`
	Plot   *Plot   `json:"plot,omitempty"`
}

func (r *SensorReading) BeforeCreate(*gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
