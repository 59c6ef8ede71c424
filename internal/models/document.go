package models

import (
	"time"

	"gorm.io/gorm"
)

type DocumentType string

const (
	DocPonuda      DocumentType = "ponuda"      // ponuda / predračun
	DocRacun       DocumentType = "racun"       // račun
	DocOtpremnica  DocumentType = "otpremnica"  // otpremnica
	DocRadniNalog  DocumentType = "radni_nalog" // radni nalog za montažu
	DocUgovor      DocumentType = "ugovor"      // ugovor o izradi i montaži
	DocReklamacija DocumentType = "reklamacija" // reklamacijski zapisnik
)

// AllDocumentTypes: zatvoren skup tipova dokumenata
var AllDocumentTypes = []DocumentType{
	DocPonuda, DocRacun, DocOtpremnica, DocRadniNalog, DocUgovor, DocReklamacija,
}

func (t DocumentType) Valid() bool {
	for _, dt := range AllDocumentTypes {
		if t == dt {
			return true
		}
	}
	return false
}

// HasPrices: prikazuju li se cijene i blok ukupnog iznosa za ovaj tip
func (t DocumentType) HasPrices() bool {
	return t == DocPonuda || t == DocRacun || t == DocUgovor
}

type DocumentStatus string

const (
	StatusDraft     DocumentStatus = "draft"
	StatusSent      DocumentStatus = "sent"
	StatusAccepted  DocumentStatus = "accepted"
	StatusCompleted DocumentStatus = "completed"
	StatusCancelled DocumentStatus = "cancelled"
)

func (s DocumentStatus) Valid() bool {
	switch s {
	case StatusDraft, StatusSent, StatusAccepted, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Document: jedan poslovni dokument (ponuda, račun, otpremnica, ...)
type Document struct {
	ID     uint         `gorm:"primaryKey"`
	Type   DocumentType `gorm:"size:20;index;not null"`
	Number int          `gorm:"not null"` // redni broj unutar tipa, dodjeljuje se iz brojača
	Date   time.Time    `gorm:"index;not null"`
	Status DocumentStatus `gorm:"size:20;not null;default:'draft'"`

	// Podaci o kupcu (denormalizirano, snimka u trenutku izrade)
	BuyerName         string `gorm:"size:200;not null"`
	BuyerAddress      string `gorm:"size:255"`
	BuyerOIB          string `gorm:"size:20;index"`
	BuyerPhone        string `gorm:"size:50"`
	BuyerEmail        string `gorm:"size:100"`
	BuyerContact      string `gorm:"size:100"` // kontakt osoba
	DeliveryAddress   string `gorm:"size:255"` // adresa isporuke ako je različita

	// Polja za ugovor
	AdvanceAmount  *float64 // avans (ako ga nema, preview koristi 30% ukupnog iznosa)
	WarrantyMonths int      `gorm:"default:24"` // jamstveni rok u mjesecima
	Place          string   `gorm:"size:100"`   // mjesto sklapanja

	// Polja za reklamaciju
	ComplaintSupplier string `gorm:"size:200"` // dobavljač na kojeg se reklamacija odnosi
	PickupLocation    string `gorm:"size:255"` // mjesto preuzimanja

	TotalAmount float64 `gorm:"not null;default:0"` // Σ stavki (Item.Total), ažurira se pri svakoj izmjeni stavki
	Notes       string  `gorm:"size:2000"`
	PreparedBy  string  `gorm:"size:100"` // izradio

	TemplateID *uint
	Template   *DocumentTemplate

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"` // kanta za smeće

	Items    []DocumentItem    `gorm:"foreignKey:DocumentID;constraint:OnDelete:CASCADE"`
	Articles []ContractArticle `gorm:"foreignKey:DocumentID;constraint:OnDelete:CASCADE"`
}

// DocumentItem: jedna stavka dokumenta
type DocumentItem struct {
	ID         uint `gorm:"primaryKey"`
	DocumentID uint `gorm:"index;not null"`

	Name            string  `gorm:"size:255;not null"`
	Code            string  `gorm:"size:50"` // šifra artikla, opcionalno
	Unit            string  `gorm:"size:20"` // jedinica mjere (kom, m2, h, ...)
	Quantity        float64 `gorm:"not null"`
	UnitPrice       float64 `gorm:"not null"`
	DiscountPercent float64 `gorm:"not null;default:0"`
	TaxPercent      float64 `gorm:"not null;default:25"` // PDV
	Subtotal        float64 `gorm:"not null"`            // Quantity * UnitPrice, zaokruženo
	Total           float64 `gorm:"not null"`            // nakon rabata i PDV-a
	SortOrder       int     `gorm:"not null;default:0"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DocumentCounter: brojač po tipu dokumenta, red se zaključava pri dodjeli broja
// (SELECT ... FOR UPDATE) pa dva istovremena kreiranja ne mogu dobiti isti broj
type DocumentCounter struct {
	Type       DocumentType `gorm:"primaryKey;size:20"`
	LastNumber int          `gorm:"not null;default:0"`
	UpdatedAt  time.Time
}
