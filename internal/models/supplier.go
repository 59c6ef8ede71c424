package models

import (
	"time"

	"gorm.io/gorm"
)

// Supplier: dobavljač
type Supplier struct {
	ID            uint   `gorm:"primaryKey"`
	Name          string `gorm:"size:200;not null"`
	OIB           string `gorm:"size:20;index"`
	Address       string `gorm:"size:255"`
	City          string `gorm:"size:100"`
	PostalCode    string `gorm:"size:20"`
	Phone         string `gorm:"size:50"`
	Email         string `gorm:"size:100"`
	ContactPerson string `gorm:"size:100"`
	Notes         string `gorm:"size:2000"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}
