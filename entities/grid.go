package entities

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GridCell holds the columns shared by the actual and experimental grid tables.
type GridCell struct {
	ID            string      `gorm:"primaryKey;size:36" json:"id"`
	FarmID        string      `gorm:"index" json:"farmId"`
	Row           int         `json:"row"`
	Column        int         `json:"column"`
	CropType      string      `json:"cropType"`
	CropCount     int         `json:"cropCount"`
	WaterLevel    float64     `json:"waterLevel"`
	MoistureLevel float64     `json:"moistureLevel"`
	GrowthStage   GrowthStage `json:"growthStage"`
}

// ActualGrid mirrors the real state of a farm's plots.
type ActualGrid struct {
	GridCell
	Farm *Farm `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

func (g *ActualGrid) BeforeCreate(*gorm.DB) error {
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	return nil
}

// ExperimentalGrid is the what-if sandbox copy of ActualGrid. It is rebuilt
// wholesale from ActualGrid on reset.
type ExperimentalGrid struct {
	GridCell
	Farm *Farm `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

func (g *ExperimentalGrid) BeforeCreate(*gorm.DB) error {
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	return nil
}
