package documents

import (
	"stolarija-backend/internal/audit"
	"stolarija-backend/internal/auth"
	"stolarija-backend/internal/database"
	"stolarija-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// PUT /api/documents/:id/items — zamjenjuje cijeli skup stavki.
// Iznosi stavki i ukupni iznos dokumenta računaju se na serveru i spremaju
// u istoj transakciji, pa TotalAmount uvijek odgovara zbroju stavki.
func ReplaceItemsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, userName, err := auth.UserInfo(c)
		if err != nil {
			return err
		}

		doc, err := loadDocument(c)
		if err != nil {
			return err
		}

		var body struct {
			Items []ItemRequest `json:"items"`
		}
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Neispravno tijelo zahtjeva")
		}

		for _, it := range body.Items {
			if it.Name == "" {
				return fiber.NewError(fiber.StatusBadRequest, "Naziv stavke je obavezan")
			}
			if it.Quantity < 0 || it.UnitPrice < 0 || it.DiscountPercent < 0 || it.TaxPercent < 0 {
				return fiber.NewError(fiber.StatusBadRequest, "Količina, cijena i postoci ne smiju biti negativni")
			}
			if it.DiscountPercent > 100 {
				return fiber.NewError(fiber.StatusBadRequest, "Rabat ne može biti veći od 100%")
			}
		}

		items, total := buildItems(doc.ID, body.Items)

		err = database.DB.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("document_id = ?", doc.ID).Delete(&models.DocumentItem{}).Error; err != nil {
				return err
			}
			if len(items) > 0 {
				if err := tx.Create(&items).Error; err != nil {
					return err
				}
			}
			return tx.Model(&models.Document{}).
				Where("id = ?", doc.ID).
				Update("total_amount", total).Error
		})
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Stavke se ne mogu spremiti")
		}

		_ = audit.WriteLog(audit.LogOptions{
			UserID: userID, UserName: userName,
			EntityType: "document", EntityID: doc.ID,
			Action:      models.AuditActionUpdate,
			Description: "izmjena stavki",
		})

		doc.Items = items
		doc.TotalAmount = total
		return c.JSON(documentDetailResponse(doc))
	}
}
