package models

import (
	"time"

	"gorm.io/gorm"
)

// MosquitoNetProduct: tip komarnika iz kataloga (fiksni, rolo, plise, ...)
type MosquitoNetProduct struct {
	ID           uint    `gorm:"primaryKey"`
	Name         string  `gorm:"size:200;not null"`
	PricePerM2   float64 `gorm:"not null;default:0"`
	MinimumPrice float64 `gorm:"not null;default:0"` // naplaćuje se ako je cijena po m2 ispod minimuma
	Notes        string  `gorm:"size:500"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

// MosquitoNetLocation: pozicija ugradnje (npr. "kuhinja", "spavaća soba")
type MosquitoNetLocation struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:100;not null"`
	SortOrder int    `gorm:"not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// MosquitoNetQuoteItem: izmjera za ponudu komarnika, vezana uz dokument
type MosquitoNetQuoteItem struct {
	ID         uint `gorm:"primaryKey"`
	DocumentID uint `gorm:"index;not null"`
	ProductID  uint `gorm:"index;not null"`
	Product    MosquitoNetProduct
	LocationID *uint
	Location   *MosquitoNetLocation

	WidthCM  float64 `gorm:"not null"`
	HeightCM float64 `gorm:"not null"`
	Quantity int     `gorm:"not null;default:1"`
	Price    float64 `gorm:"not null"` // izračunato iz površine i cjenika

	CreatedAt time.Time
	UpdatedAt time.Time
}
