package models

import (
	"time"

	"gorm.io/gorm"
)

// Employee: radnik
type Employee struct {
	ID            uint   `gorm:"primaryKey"`
	FirstName     string `gorm:"size:100;not null"`
	LastName      string `gorm:"size:100;not null"`
	OIB           string `gorm:"size:20;index"`
	Address       string `gorm:"size:255"`
	Phone         string `gorm:"size:50"`
	Email         string `gorm:"size:100"`
	Position      string `gorm:"size:100"` // radno mjesto
	WorksSaturday bool   `gorm:"default:false"` // radi li subotom (utječe na obračun radnih dana)
	HiredAt       *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`

	LeaveRequests []LeaveRequest     `gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE"`
	SickLeaves    []SickLeave        `gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE"`
	WorkClothing  []WorkClothing     `gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE"`
	Documents     []EmployeeDocument `gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE"`
}

type LeaveStatus string

const (
	LeavePending  LeaveStatus = "pending"
	LeaveApproved LeaveStatus = "approved"
	LeaveRejected LeaveStatus = "rejected"
)

// LeaveRequest: zahtjev za godišnji odmor
type LeaveRequest struct {
	ID         uint `gorm:"primaryKey"`
	EmployeeID uint `gorm:"index;not null"`
	Employee   Employee

	StartDate   time.Time   `gorm:"not null"`
	EndDate     time.Time   `gorm:"not null"`
	WorkingDays int         `gorm:"not null"` // obračunato bez vikenda i praznika
	Status      LeaveStatus `gorm:"size:20;not null;default:'pending'"`
	Note        string      `gorm:"size:500"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// SickLeave: bolovanje
type SickLeave struct {
	ID         uint `gorm:"primaryKey"`
	EmployeeID uint `gorm:"index;not null"`
	Employee   Employee

	StartDate   time.Time `gorm:"not null"`
	EndDate     time.Time `gorm:"not null"`
	WorkingDays int       `gorm:"not null"`
	Note        string    `gorm:"size:500"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// WorkClothing: zaduženje radne odjeće i obuće
type WorkClothing struct {
	ID         uint `gorm:"primaryKey"`
	EmployeeID uint `gorm:"index;not null"`
	Employee   Employee

	ItemName string    `gorm:"size:200;not null"` // npr. "Zaštitne cipele"
	Size     string    `gorm:"size:20"`
	Quantity int       `gorm:"not null;default:1"`
	IssuedAt time.Time `gorm:"not null"`
	Note     string    `gorm:"size:500"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// EmployeeDocument: učitani dokument radnika (ugovor o radu, certifikat, ...)
type EmployeeDocument struct {
	ID         uint `gorm:"primaryKey"`
	EmployeeID uint `gorm:"index;not null"`
	Employee   Employee

	Name       string `gorm:"size:255;not null"` // naziv koji je korisnik upisao
	FileName   string `gorm:"size:255;not null"` // generirano ime na disku (uuid + ekstenzija)
	OriginalName string `gorm:"size:255"`
	MimeType   string `gorm:"size:100"`
	SizeBytes  int64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// PublicHoliday: državni praznik, isključuje se iz obračuna radnih dana
type PublicHoliday struct {
	ID        uint      `gorm:"primaryKey"`
	Date      time.Time `gorm:"uniqueIndex;not null"`
	Name      string    `gorm:"size:100;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
