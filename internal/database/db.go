package database

import (
	"log"

	"stolarija-backend/internal/config"
	"stolarija-backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init(cfg *config.Config) {
	var err error

	DB, err = gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		log.Fatalf("Nije moguće spojiti se na bazu: %v", err)
	}

	err = DB.AutoMigrate(
		&models.User{},
		&models.CompanySettings{},
		&models.Client{},
		&models.Supplier{},
		&models.Article{},
		&models.Document{},
		&models.DocumentItem{},
		&models.DocumentCounter{},
		&models.ContractArticle{},
		&models.ContractArticleTemplate{},
		&models.DocumentTemplate{},
		&models.ContractLayoutTemplate{},
		&models.Employee{},
		&models.LeaveRequest{},
		&models.SickLeave{},
		&models.WorkClothing{},
		&models.EmployeeDocument{},
		&models.PublicHoliday{},
		&models.MosquitoNetProduct{},
		&models.MosquitoNetLocation{},
		&models.MosquitoNetQuoteItem{},
		&models.AuditLog{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate greška: %v", err)
	}

	// Brojač dokumenata mora postojati za svaki tip, inače FOR UPDATE nema što zaključati
	for _, t := range models.AllDocumentTypes {
		var counter models.DocumentCounter
		if err := DB.FirstOrCreate(&counter, models.DocumentCounter{Type: t}).Error; err != nil {
			log.Fatalf("Inicijalizacija brojača za tip %s nije uspjela: %v", t, err)
		}
	}

	log.Println("Veza s bazom uspostavljena. Migracija dovršena.")
}
