package articles

import (
	"stolarija-backend/internal/audit"
	"stolarija-backend/internal/auth"
	"stolarija-backend/internal/database"
	"stolarija-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type articleBody struct {
	Name       *string  `json:"name"`
	Code       *string  `json:"code"`
	Unit       *string  `json:"unit"`
	UnitPrice  *float64 `json:"unit_price"`
	TaxPercent *float64 `json:"tax_percent"`
	Stock      *float64 `json:"stock"`
	Notes      *string  `json:"notes"`
}

func (b *articleBody) apply(article *models.Article) error {
	if b.Name != nil {
		article.Name = *b.Name
	}
	if b.Code != nil {
		article.Code = *b.Code
	}
	if b.Unit != nil {
		article.Unit = *b.Unit
	}
	if b.UnitPrice != nil {
		if *b.UnitPrice < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Cijena ne može biti negativna")
		}
		article.UnitPrice = *b.UnitPrice
	}
	if b.TaxPercent != nil {
		if *b.TaxPercent < 0 || *b.TaxPercent > 100 {
			return fiber.NewError(fiber.StatusBadRequest, "Stopa PDV-a mora biti između 0 i 100")
		}
		article.TaxPercent = *b.TaxPercent
	}
	if b.Stock != nil {
		article.Stock = *b.Stock
	}
	if b.Notes != nil {
		article.Notes = *b.Notes
	}
	return nil
}

// POST /api/articles
func CreateArticleHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, userName, err := auth.UserInfo(c)
		if err != nil {
			return err
		}

		var body articleBody
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Neispravan zahtjev")
		}
		if body.Name == nil || *body.Name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Naziv artikla je obavezan")
		}

		article := models.Article{TaxPercent: 25}
		if err := body.apply(&article); err != nil {
			return err
		}

		if err := database.DB.Create(&article).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Artikl se ne može spremiti")
		}

		_ = audit.WriteLog(audit.LogOptions{
			UserID: userID, UserName: userName,
			EntityType: "article", EntityID: article.ID,
			Action: models.AuditActionCreate,
			After:  article,
		})

		return c.Status(fiber.StatusCreated).JSON(article)
	}
}

// GET /api/articles?q=ploča
func ListArticlesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		dbq := database.DB.Model(&models.Article{})
		if q := c.Query("q"); q != "" {
			like := "%" + q + "%"
			dbq = dbq.Where("name ILIKE ? OR code ILIKE ?", like, like)
		}

		var articles []models.Article
		if err := dbq.Order("name asc").Find(&articles).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Artikli se ne mogu dohvatiti")
		}
		return c.JSON(articles)
	}
}

// GET /api/articles/:id
func GetArticleHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Neispravan ID")
		}
		var article models.Article
		if err := database.DB.First(&article, id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Artikl nije pronađen")
		}
		return c.JSON(article)
	}
}

// PUT /api/articles/:id
func UpdateArticleHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, userName, err := auth.UserInfo(c)
		if err != nil {
			return err
		}

		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Neispravan ID")
		}

		var article models.Article
		if err := database.DB.First(&article, id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Artikl nije pronađen")
		}
		before := article

		var body articleBody
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Neispravan zahtjev")
		}
		if body.Name != nil && *body.Name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Naziv artikla ne može biti prazan")
		}
		if err := body.apply(&article); err != nil {
			return err
		}

		if err := database.DB.Save(&article).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Artikl se ne može spremiti")
		}

		_ = audit.WriteLog(audit.LogOptions{
			UserID: userID, UserName: userName,
			EntityType: "article", EntityID: article.ID,
			Action: models.AuditActionUpdate,
			Before: before, After: article,
		})

		return c.JSON(article)
	}
}

// DELETE /api/articles/:id (soft delete)
func DeleteArticleHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, userName, err := auth.UserInfo(c)
		if err != nil {
			return err
		}

		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Neispravan ID")
		}

		var article models.Article
		if err := database.DB.First(&article, id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Artikl nije pronađen")
		}

		if err := database.DB.Delete(&article).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Artikl se ne može obrisati")
		}

		_ = audit.WriteLog(audit.LogOptions{
			UserID: userID, UserName: userName,
			EntityType: "article", EntityID: article.ID,
			Action: models.AuditActionDelete,
			Before: article,
		})

		return c.JSON(fiber.Map{"message": "Artikl premješten u koš"})
	}
}

// GET /api/articles/trash
func ListTrashedArticlesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var articles []models.Article
		if err := database.DB.Unscoped().
			Where("deleted_at IS NOT NULL").
			Order("deleted_at desc").
			Find(&articles).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Koš se ne može dohvatiti")
		}
		return c.JSON(articles)
	}
}

// POST /api/articles/:id/restore
func RestoreArticleHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, userName, err := auth.UserInfo(c)
		if err != nil {
			return err
		}

		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Neispravan ID")
		}

		var article models.Article
		if err := database.DB.Unscoped().
			Where("deleted_at IS NOT NULL").
			First(&article, id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Artikl nije pronađen u košu")
		}

		if err := database.DB.Unscoped().Model(&article).
			Update("deleted_at", nil).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Artikl se ne može vratiti")
		}

		_ = audit.WriteLog(audit.LogOptions{
			UserID: userID, UserName: userName,
			EntityType: "article", EntityID: article.ID,
			Action: models.AuditActionRestore,
		})

		return c.JSON(fiber.Map{"message": "Artikl vraćen iz koša"})
	}
}
