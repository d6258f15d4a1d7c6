package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Farm struct {
	ID       string `gorm:"primaryKey;size:36" json:"id"`
	Name     string `gorm:"uniqueIndex:idx_farm_name_location" json:"name"`
	State    string `gorm:"uniqueIndex:idx_farm_name_location" json:"state"`
	District string `gorm:"uniqueIndex:idx_farm_name_location" json:"district"`

	Plots   []Plot   `gorm:"constraint:OnDelete:CASCADE" json:"plots,omitempty"`
	Sensors []Sensor `gorm:"constraint:OnDelete:CASCADE" json:"sensors,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (f *Farm) BeforeCreate(*gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}

type Crop struct {
	ID          string `gorm:"primaryKey;size:36" json:"id"`
	CommonName  string `gorm:"uniqueIndex" json:"commonName"`
	Name        string `json:"name"`
	Variety     string `json:"variety,omitempty"`
	Description string `json:"description,omitempty"`

	Plots []Plot `gorm:"constraint:OnDelete:SET NULL" json:"plots,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (c *Crop) BeforeCreate(*gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
