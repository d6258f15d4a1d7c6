package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Plot is one cell of a farm; (farm_id, row, column) identifies it uniquely.
type Plot struct {
	ID        string   `gorm:"primaryKey;size:36" json:"id"`
	FarmID    string   `gorm:"index;uniqueIndex:idx_plot_cell" json:"farmId"`
	CropID    *string  `gorm:"index" json:"cropId,omitempty"`
	Row       int      `gorm:"uniqueIndex:idx_plot_cell" json:"row"`
	Column    int      `gorm:"uniqueIndex:idx_plot_cell" json:"column"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	AreaSqM   *float64 `json:"areaSqM,omitempty"`
	SoilType  *string  `json:"soilType,omitempty"`

	// FK actions live on the has-many side: Farm.Plots and Crop.Plots own
	// these relations, so tags here would be ignored.
	Farm *Farm `json:"farm,omitempty"`
	Crop *Crop `json:"crop,omitempty"`

	Sensors         []Sensor         `gorm:"constraint:OnDelete:CASCADE" json:"sensors,omitempty"`
	Readings        []SensorReading  `gorm:"constraint:OnDelete:CASCADE" json:"readings,omitempty"`
	Actions         []Action         `gorm:"constraint:OnDelete:CASCADE" json:"actions,omitempty"`
	Recommendations []Recommendation `gorm:"constraint:OnDelete:CASCADE" json:"recommendations,omitempty"`
	Predictions     []Prediction     `gorm:"constraint:OnDelete:CASCADE" json:"predictions,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (p *Plot) BeforeCreate(*gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
