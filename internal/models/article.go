package models

import (
	"time"

	"gorm.io/gorm"
)

// Article: artikl iz skladišta/cjenika
type Article struct {
	ID         uint    `gorm:"primaryKey"`
	Name       string  `gorm:"size:255;not null"`
	Code       string  `gorm:"size:50;index"`
	Unit       string  `gorm:"size:20"`
	UnitPrice  float64 `gorm:"not null;default:0"`
	TaxPercent float64 `gorm:"not null;default:25"`
	Stock      float64 `gorm:"not null;default:0"` // trenutna zaliha
	Notes      string  `gorm:"size:2000"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}
