package documents

import (
	"time"

	"stolarija-backend/internal/audit"
	"stolarija-backend/internal/auth"
	"stolarija-backend/internal/database"
	"stolarija-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// duplicate: novi dokument istog sadržaja, s novim brojem unutar ciljnog tipa
func duplicate(src *models.Document, targetType models.DocumentType) (*models.Document, error) {
	doc := *src
	doc.ID = 0
	doc.Type = targetType
	doc.Status = models.StatusDraft
	doc.Date = time.Now()
	doc.CreatedAt = time.Time{}
	doc.UpdatedAt = time.Time{}
	doc.Items = nil
	doc.Articles = nil

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		number, err := NextNumber(tx, targetType)
		if err != nil {
			return err
		}
		doc.Number = number

		if err := tx.Create(&doc).Error; err != nil {
			return err
		}

		for _, it := range src.Items {
			item := it
			item.ID = 0
			item.DocumentID = doc.ID
			item.CreatedAt = time.Time{}
			item.UpdatedAt = time.Time{}
			if err := tx.Create(&item).Error; err != nil {
				return err
			}
		}

		for _, a := range src.Articles {
			article := a
			article.ID = 0
			article.DocumentID = doc.ID
			article.CreatedAt = time.Time{}
			article.UpdatedAt = time.Time{}
			if err := tx.Create(&article).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// POST /api/documents/:id/copy
func CopyDocumentHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, userName, err := auth.UserInfo(c)
		if err != nil {
			return err
		}

		src, err := loadDocument(c)
		if err != nil {
			return err
		}

		doc, err := duplicate(src, src.Type)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Dokument se ne može kopirati")
		}

		_ = audit.WriteLog(audit.LogOptions{
			UserID: userID, UserName: userName,
			EntityType: "document", EntityID: doc.ID,
			Action:      models.AuditActionCreate,
			Description: "kopija dokumenta " + DisplayNumber(src),
		})

		return c.Status(fiber.StatusCreated).JSON(documentResponse(doc))
	}
}

// POST /api/documents/:id/convert — npr. ponuda -> račun
func ConvertDocumentHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, userName, err := auth.UserInfo(c)
		if err != nil {
			return err
		}

		src, err := loadDocument(c)
		if err != nil {
			return err
		}

		var body struct {
			TargetType models.DocumentType `json:"target_type"`
		}
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Neispravno tijelo zahtjeva")
		}
		if !body.TargetType.Valid() {
			return fiber.NewError(fiber.StatusBadRequest, "Nepoznat ciljni tip dokumenta")
		}
		if body.TargetType == src.Type {
			return fiber.NewError(fiber.StatusBadRequest, "Dokument je već tog tipa, koristi kopiranje")
		}

		doc, err := duplicate(src, body.TargetType)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Dokument se ne može pretvoriti")
		}

		_ = audit.WriteLog(audit.LogOptions{
			UserID: userID, UserName: userName,
			EntityType: "document", EntityID: doc.ID,
			Action:      models.AuditActionCreate,
			Description: "pretvorba iz " + DisplayNumber(src),
		})

		return c.Status(fiber.StatusCreated).JSON(documentResponse(doc))
	}
}
