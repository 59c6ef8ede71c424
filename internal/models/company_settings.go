package models

import "time"

// CompanySettings: jedan red s podacima prodavatelja i postavkama ispisa.
// Svaki renderer ga čita, zapis se kreira s default vrijednostima pri prvom dohvatu.
type CompanySettings struct {
	ID uint `gorm:"primaryKey"`

	Name       string `gorm:"size:200;not null"`
	Address    string `gorm:"size:255"`
	City       string `gorm:"size:100"`
	PostalCode string `gorm:"size:20"`
	OIB        string `gorm:"size:20"`
	IBAN       string `gorm:"size:40"`
	BankName   string `gorm:"size:100"`
	SWIFT      string `gorm:"size:20"`
	Phone      string `gorm:"size:50"`
	Mobile     string `gorm:"size:50"`
	Email      string `gorm:"size:100"`
	Web        string `gorm:"size:100"`
	Director   string `gorm:"size:100"`
	CourtReg   string `gorm:"size:255"` // podaci o registraciji (trgovački sud)

	// SVG zaglavlje/podnožje za memorandum, sanitizirano prije spremanja
	HeaderSVG string `gorm:"type:text"`
	FooterSVG string `gorm:"type:text"`

	// Postavke ispisa u milimetrima
	HeaderPaddingMM float64 `gorm:"not null;default:10"`
	FooterPaddingMM float64 `gorm:"not null;default:10"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
