package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Review struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name      string    `json:"name" gorm:"type:varchar(100)"`
	Content   string    `json:"content" gorm:"type:varchar(300);not null"`
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`
}

func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// DisplayName is what listings and emails show for the reviewer.
func (r *Review) DisplayName() string {
	if strings.TrimSpace(r.Name) == "" {
		return "Anonymous"
	}
	return r.Name
}
