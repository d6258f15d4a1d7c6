package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Prediction is an append-only log of external model inferences per plot.
type Prediction struct {
	ID     string         `gorm:"primaryKey;size:36" json:"id"`
	PlotID string         `gorm:"index" json:"plotId"`
	Type   PredictionType `json:"type"`
	Input  map[string]any `gorm:"serializer:json" json:"input"`
	Result float64        `json:"result"`

	Plot *Plot `json:"plot,omitempty"`

	CreatedAt time.Time `gorm:"index" json:"createdAt"`
}

func (p *Prediction) BeforeCreate(*gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
