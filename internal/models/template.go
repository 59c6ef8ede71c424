package models

import "time"

// DocumentTemplate: postavke prikaza po tipu dokumenta (koje kolone/sekcije prikazati)
type DocumentTemplate struct {
	ID           uint         `gorm:"primaryKey"`
	Name         string       `gorm:"size:100;not null"`
	DocumentType DocumentType `gorm:"size:20;index;not null"`
	IsDefault    bool         `gorm:"default:false"` // najviše jedan default po tipu

	ShowDiscountColumn bool `gorm:"default:true"`  // kolona rabata u tablici stavki
	ShowTaxBreakdown   bool `gorm:"default:true"`  // PDV redak u bloku ukupnog iznosa
	ShowItemCodes      bool `gorm:"default:false"` // kolona šifre artikla
	ShowNotes          bool `gorm:"default:true"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Oblik tokena u tijelu predloška ugovora. Dvostruke vitičaste zagrade
// koriste predlošci preneseni iz starijih Word dokumenata gdje jednostruka
// zagrada dolazi i u običnom tekstu.
const (
	TokenStyleSingle = "single" // {ukupna_cijena}
	TokenStyleDouble = "double" // {{ukupna_cijena}}
)

// ContractLayoutTemplate: puni HTML predložak ugovora s placeholder tokenima
type ContractLayoutTemplate struct {
	ID         uint   `gorm:"primaryKey"`
	Name       string `gorm:"size:100;not null"`
	Body       string `gorm:"type:text;not null"`
	TokenStyle string `gorm:"size:10;not null;default:'single'"`
	IsDefault  bool   `gorm:"default:false"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
