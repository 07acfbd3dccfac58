package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TourImage struct {
	ID      uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	TourID  uuid.UUID `json:"tourId" gorm:"type:uuid;not null;index"`
	Image   string    `json:"image" gorm:"not null"`
	Caption string    `json:"caption" gorm:"type:varchar(150)"`
}

func (i *TourImage) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
