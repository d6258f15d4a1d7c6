package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Action struct {
	ID          string     `gorm:"primaryKey;size:36" json:"id"`
	PlotID      string     `gorm:"index" json:"plotId"`
	Type        ActionType `json:"type"`
	Description *string    `json:"description,omitempty"`
	PerformedBy *string    `json:"performedBy,omitempty"`
	PerformedAt time.Time  `gorm:"index" json:"performedAt"`

	Plot *Plot `json:"plot,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (a *Action) BeforeCreate(*gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

type Recommendation struct {
	ID         string               `gorm:"primaryKey;size:36" json:"id"`
	PlotID     string               `gorm:"index" json:"plotId"`
	ActionType ActionType           `json:"actionType"`
	Details    string               `json:"details"`
	Status     RecommendationStatus `json:"status"`
	Feedback   *string              `json:"feedback,omitempty"`

	Plot *Plot `json:"plot,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (r *Recommendation) BeforeCreate(*gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
