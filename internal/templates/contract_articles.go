package templates

import (
	"stolarija-backend/internal/audit"
	"stolarija-backend/internal/auth"
	"stolarija-backend/internal/database"
	"stolarija-backend/internal/models"
	"stolarija-backend/internal/sanitize"

	"github.com/gofiber/fiber/v2"
)

type contractArticleBody struct {
	Title     *string `json:"title"`
	Body      *string `json:"body"`
	SortOrder *int    `json:"sort_order"`
	IsActive  *bool   `json:"is_active"`
}

func (b *contractArticleBody) apply(t *models.ContractArticleTemplate) {
	if b.Title != nil {
		t.Title = *b.Title
	}
	if b.Body != nil {
		t.Body = sanitize.HTML(*b.Body)
	}
	if b.SortOrder != nil {
		t.SortOrder = *b.SortOrder
	}
	if b.IsActive != nil {
		t.IsActive = *b.IsActive
	}
}

// POST /api/contract-articles
func CreateContractArticleHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, userName, err := auth.UserInfo(c)
		if err != nil {
			return err
		}

		var body contractArticleBody
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Neispravan zahtjev")
		}
		if body.Body == nil || *body.Body == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Tekst članka je obavezan")
		}

		tmpl := models.ContractArticleTemplate{IsActive: true}
		body.apply(&tmpl)

		if err := database.DB.Create(&tmpl).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Članak se ne može spremiti")
		}

		_ = audit.WriteLog(audit.LogOptions{
			UserID: userID, UserName: userName,
			EntityType: "contract_article_template", EntityID: tmpl.ID,
			Action: models.AuditActionCreate,
			After:  tmpl,
		})

		return c.Status(fiber.StatusCreated).JSON(tmpl)
	}
}

// GET /api/contract-articles?active=true
func ListContractArticlesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		dbq := database.DB.Model(&models.ContractArticleTemplate{})
		if c.Query("active") == "true" {
			dbq = dbq.Where("is_active = true")
		}

		var templates []models.ContractArticleTemplate
		if err := dbq.Order("sort_order asc, id asc").Find(&templates).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Članci se ne mogu dohvatiti")
		}
		return c.JSON(templates)
	}
}

// PUT /api/contract-articles/:id
func UpdateContractArticleHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, userName, err := auth.UserInfo(c)
		if err != nil {
			return err
		}

		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Neispravan ID")
		}

		var tmpl models.ContractArticleTemplate
		if err := database.DB.First(&tmpl, id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Članak nije pronađen")
		}
		before := tmpl

		var body contractArticleBody
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Neispravan zahtjev")
		}
		if body.Body != nil && *body.Body == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Tekst članka ne može biti prazan")
		}
		body.apply(&tmpl)

		if err := database.DB.Save(&tmpl).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Članak se ne može spremiti")
		}

		_ = audit.WriteLog(audit.LogOptions{
			UserID: userID, UserName: userName,
			EntityType: "contract_article_template", EntityID: tmpl.ID,
			Action: models.AuditActionUpdate,
			Before: before, After: tmpl,
		})

		return c.JSON(tmpl)
	}
}

// DELETE /api/contract-articles/:id
func DeleteContractArticleHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, userName, err := auth.UserInfo(c)
		if err != nil {
			return err
		}

		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Neispravan ID")
		}

		var tmpl models.ContractArticleTemplate
		if err := database.DB.First(&tmpl, id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Članak nije pronađen")
		}

		if err := database.DB.Delete(&tmpl).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Članak se ne može obrisati")
		}

		_ = audit.WriteLog(audit.LogOptions{
			UserID: userID, UserName: userName,
			EntityType: "contract_article_template", EntityID: tmpl.ID,
			Action: models.AuditActionDelete,
			Before: tmpl,
		})

		return c.JSON(fiber.Map{"message": "Članak obrisan"})
	}
}
