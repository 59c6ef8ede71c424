package documents

import (
	"stolarija-backend/internal/audit"
	"stolarija-backend/internal/auth"
	"stolarija-backend/internal/database"
	"stolarija-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// DELETE /api/documents/:id — premještanje u kantu (soft delete).
// Stavke i članci ostaju netaknuti pa se dokument vraćanjem pojavljuje
// identičan, s istim stavkama i iznosom.
func DeleteDocumentHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, userName, err := auth.UserInfo(c)
		if err != nil {
			return err
		}

		doc, err := loadDocument(c)
		if err != nil {
			return err
		}

		if err := database.DB.Delete(doc).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Dokument se ne može obrisati")
		}

		_ = audit.WriteLog(audit.LogOptions{
			UserID: userID, UserName: userName,
			EntityType: "document", EntityID: doc.ID,
			Action: models.AuditActionDelete,
			Before: doc,
		})

		return c.JSON(fiber.Map{"message": "Dokument je premješten u kantu"})
	}
}

// GET /api/documents/trash
func ListTrashedDocumentsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var docs []models.Document
		if err := database.DB.Unscoped().
			Where("deleted_at IS NOT NULL").
			Order("deleted_at desc").
			Find(&docs).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Kanta se ne može dohvatiti")
		}

		res := make([]fiber.Map, 0, len(docs))
		for i := range docs {
			m := documentResponse(&docs[i])
			m["deleted_at"] = docs[i].DeletedAt.Time.Format("2006-01-02 15:04:05")
			res = append(res, m)
		}
		return c.JSON(res)
	}
}

// POST /api/documents/:id/restore
func RestoreDocumentHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, userName, err := auth.UserInfo(c)
		if err != nil {
			return err
		}

		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Neispravan ID dokumenta")
		}

		var doc models.Document
		if err := database.DB.Unscoped().First(&doc, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Dokument nije pronađen")
		}
		if !doc.DeletedAt.Valid {
			return fiber.NewError(fiber.StatusBadRequest, "Dokument nije u kanti")
		}

		if err := database.DB.Unscoped().Model(&doc).
			Update("deleted_at", nil).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Dokument se ne može vratiti")
		}

		_ = audit.WriteLog(audit.LogOptions{
			UserID: userID, UserName: userName,
			EntityType: "document", EntityID: doc.ID,
			Action: models.AuditActionRestore,
		})

		return c.JSON(fiber.Map{"message": "Dokument je vraćen iz kante"})
	}
}

// DELETE /api/documents/:id/purge — trajno brisanje sa stavkama i člancima
func PurgeDocumentHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, userName, err := auth.UserInfo(c)
		if err != nil {
			return err
		}

		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Neispravan ID dokumenta")
		}

		var doc models.Document
		if err := database.DB.Unscoped().First(&doc, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Dokument nije pronađen")
		}
		if !doc.DeletedAt.Valid {
			return fiber.NewError(fiber.StatusBadRequest, "Dokument prije trajnog brisanja mora biti u kanti")
		}

		err = database.DB.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("document_id = ?", doc.ID).Delete(&models.DocumentItem{}).Error; err != nil {
				return err
			}
			if err := tx.Where("document_id = ?", doc.ID).Delete(&models.ContractArticle{}).Error; err != nil {
				return err
			}
			if err := tx.Where("document_id = ?", doc.ID).Delete(&models.MosquitoNetQuoteItem{}).Error; err != nil {
				return err
			}
			return tx.Unscoped().Delete(&doc).Error
		})
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Dokument se ne može trajno obrisati")
		}

		_ = audit.WriteLog(audit.LogOptions{
			UserID: userID, UserName: userName,
			EntityType: "document", EntityID: doc.ID,
			Action: models.AuditActionPurge,
			Before: doc,
		})

		return c.JSON(fiber.Map{"message": "Dokument je trajno obrisan"})
	}
}
