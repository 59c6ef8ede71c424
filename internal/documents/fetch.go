package documents

import (
	"stolarija-backend/internal/database"
	"stolarija-backend/internal/models"
	"stolarija-backend/internal/placeholder"
	"stolarija-backend/internal/settings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// FetchWithRelations: dokument sa stavkama, člancima i predloškom,
// za renderiranje i PDF izvoz
func FetchWithRelations(id uint) (*models.Document, error) {
	var doc models.Document
	if err := database.DB.
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order asc") }).
		Preload("Articles", func(db *gorm.DB) *gorm.DB { return db.Order("article_number asc") }).
		Preload("Template").
		First(&doc, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &doc, nil
}

// AdvancePolicyFromFlow: ?flow=editor koristi sirovu korisničku vrijednost
// (zadano 0), sve ostalo je pregled sa zadanih 30%
func AdvancePolicyFromFlow(flow string) placeholder.AdvancePolicy {
	if flow == "editor" {
		return placeholder.AdvanceDefaultZero
	}
	return placeholder.AdvanceDefault30
}

// GET /api/documents/:id/render?flow=preview|editor
// Vraća opis ispisa kakav koristi i PDF izvoz, za ekranski pregled.
func RenderHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		doc, err := loadDocument(c)
		if err != nil {
			return err
		}

		companySettings, err := settings.GetOrCreate()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Postavke tvrtke se ne mogu dohvatiti")
		}

		policy := AdvancePolicyFromFlow(c.Query("flow"))
		model := BuildRenderModel(doc, companySettings, doc.Template, policy)
		return c.JSON(model)
	}
}
