package models

import (
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

type Tour struct {
	ID           uuid.UUID   `json:"id" gorm:"type:uuid;primaryKey"`
	Name         string      `json:"name" gorm:"type:varchar(200);not null"`
	Slug         string      `json:"slug" gorm:"type:varchar(200);uniqueIndex"`
	Location     string      `json:"location" gorm:"type:varchar(200)"`
	Description  string      `json:"description"`
	DetailedInfo string      `json:"detailedInfo"`
	Image        string      `json:"image"`
	Duration     string      `json:"duration" gorm:"type:varchar(100)"`
	Price        *float64    `json:"price" gorm:"type:decimal(10,2)"`
	IsFeatured   bool        `json:"isFeatured" gorm:"default:false"`
	CreatedAt    time.Time   `json:"createdAt" gorm:"autoCreateTime"`
	Gallery      []TourImage `json:"gallery" gorm:"foreignKey:TourID;constraint:OnDelete:CASCADE"`
}

// PriceDisplay formats the price for templates; empty when no price is set.
func (t Tour) PriceDisplay() string {
	if t.Price == nil {
		return ""
	}
	return strconv.FormatFloat(*t.Price, 'f', 2, 64)
}

func (t *Tour) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// BeforeSave derives the slug from the name when none was supplied. An
// explicitly set slug is never overwritten, and re-deriving from an unchanged
// name yields the same slug. Uniqueness is enforced by the store's index.
func (t *Tour) BeforeSave(tx *gorm.DB) error {
	if t.Slug == "" {
		t.Slug = slug.Make(t.Name)
	}
	return nil
}
