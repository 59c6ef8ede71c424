package models

import "time"

// ContractArticle: članak ugovora vezan uz konkretan dokument.
// ArticleNumber je uvijek gust niz 1..N unutar dokumenta; brisanje ili
// promjena redoslijeda renumerira preostale članke.
type ContractArticle struct {
	ID         uint `gorm:"primaryKey"`
	DocumentID uint `gorm:"index;not null"`

	ArticleNumber int    `gorm:"not null"`
	Title         string `gorm:"size:255"`
	Body          string `gorm:"type:text;not null"` // može sadržavati {placeholder} tokene
	Selected      bool   `gorm:"default:true"`       // koristi se samo tijekom sastavljanja ugovora

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ContractArticleTemplate: globalni predložak članka, neovisan o dokumentima
type ContractArticleTemplate struct {
	ID        uint   `gorm:"primaryKey"`
	Title     string `gorm:"size:255"`
	Body      string `gorm:"type:text;not null"`
	SortOrder int    `gorm:"not null;default:0"`
	IsActive  bool   `gorm:"default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
