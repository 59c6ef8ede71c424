package documents

import (
	"stolarija-backend/internal/database"
	"stolarija-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// PUT /api/documents/:id/articles — zamjenjuje članke ugovora.
// Redoslijed iz zahtjeva postaje konačan, brojevi članaka su uvijek 1..N.
func ReplaceArticlesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		doc, err := loadDocument(c)
		if err != nil {
			return err
		}
		if doc.Type != models.DocUgovor {
			return fiber.NewError(fiber.StatusBadRequest, "Članci postoje samo na ugovorima")
		}

		var body struct {
			Articles []ArticleRequest `json:"articles"`
		}
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Neispravno tijelo zahtjeva")
		}
		for _, a := range body.Articles {
			if a.Body == "" {
				return fiber.NewError(fiber.StatusBadRequest, "Tekst članka je obavezan")
			}
		}

		articles := buildArticles(doc.ID, body.Articles)

		err = database.DB.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("document_id = ?", doc.ID).Delete(&models.ContractArticle{}).Error; err != nil {
				return err
			}
			if len(articles) > 0 {
				return tx.Create(&articles).Error
			}
			return nil
		})
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Članci se ne mogu spremiti")
		}

		doc.Articles = articles
		return c.JSON(documentDetailResponse(doc))
	}
}

// POST /api/documents/:id/articles/reorder — {"ordered_ids":[5,3,4]}
// Postojeći članci dobivaju nove brojeve prema zadanom redoslijedu.
func ReorderArticlesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		doc, err := loadDocument(c)
		if err != nil {
			return err
		}

		var body struct {
			OrderedIDs []uint `json:"ordered_ids"`
		}
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Neispravno tijelo zahtjeva")
		}

		if len(body.OrderedIDs) != len(doc.Articles) {
			return fiber.NewError(fiber.StatusBadRequest, "Redoslijed mora sadržavati sve članke dokumenta")
		}

		byID := make(map[uint]*models.ContractArticle, len(doc.Articles))
		for i := range doc.Articles {
			byID[doc.Articles[i].ID] = &doc.Articles[i]
		}
		seen := make(map[uint]bool, len(body.OrderedIDs))
		for _, id := range body.OrderedIDs {
			if _, ok := byID[id]; !ok {
				return fiber.NewError(fiber.StatusBadRequest, "Redoslijed sadrži nepoznat članak")
			}
			if seen[id] {
				return fiber.NewError(fiber.StatusBadRequest, "Redoslijed sadrži dupli članak")
			}
			seen[id] = true
		}

		err = database.DB.Transaction(func(tx *gorm.DB) error {
			for i, id := range body.OrderedIDs {
				if err := tx.Model(&models.ContractArticle{}).
					Where("id = ? AND document_id = ?", id, doc.ID).
					Update("article_number", i+1).Error; err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Redoslijed se ne može spremiti")
		}

		reloaded, err := loadDocument(c)
		if err != nil {
			return err
		}
		return c.JSON(documentDetailResponse(reloaded))
	}
}
