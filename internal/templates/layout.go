package templates

import (
	"stolarija-backend/internal/audit"
	"stolarija-backend/internal/auth"
	"stolarija-backend/internal/database"
	"stolarija-backend/internal/documents"
	"stolarija-backend/internal/models"
	"stolarija-backend/internal/placeholder"
	"stolarija-backend/internal/sanitize"
	"stolarija-backend/internal/settings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type layoutBody struct {
	Name       *string `json:"name"`
	Body       *string `json:"body"`
	TokenStyle *string `json:"token_style"`
	IsDefault  *bool   `json:"is_default"`
}

func validTokenStyle(s string) bool {
	return s == models.TokenStyleSingle || s == models.TokenStyleDouble
}

// LayoutStyle: oblik tokena za zamjenu u tijelu predloška. Stariji zapisi
// bez token_style kolone padaju na jednostruke zagrade.
func LayoutStyle(layout *models.ContractLayoutTemplate) placeholder.Style {
	if layout.TokenStyle == models.TokenStyleDouble {
		return placeholder.StyleDoubleBrace
	}
	return placeholder.StyleSingleBrace
}

func saveLayout(t *models.ContractLayoutTemplate) error {
	return database.DB.Transaction(func(tx *gorm.DB) error {
		if t.IsDefault {
			if err := tx.Model(&models.ContractLayoutTemplate{}).
				Where("id <> ?", t.ID).
				Update("is_default", false).Error; err != nil {
				return err
			}
		}
		return tx.Save(t).Error
	})
}

// POST /api/contract-layouts
func CreateLayoutHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, userName, err := auth.UserInfo(c)
		if err != nil {
			return err
		}

		var body layoutBody
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Neispravan zahtjev")
		}
		if body.Name == nil || *body.Name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Naziv predloška je obavezan")
		}
		if body.Body == nil || *body.Body == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Sadržaj predloška je obavezan")
		}

		layout := models.ContractLayoutTemplate{
			Name:       *body.Name,
			Body:       *body.Body,
			TokenStyle: models.TokenStyleSingle,
		}
		if body.TokenStyle != nil {
			if !validTokenStyle(*body.TokenStyle) {
				return fiber.NewError(fiber.StatusBadRequest, "Oblik tokena mora biti single ili double")
			}
			layout.TokenStyle = *body.TokenStyle
		}
		if body.IsDefault != nil {
			layout.IsDefault = *body.IsDefault
		}

		if err := saveLayout(&layout); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Predložak se ne može spremiti")
		}

		_ = audit.WriteLog(audit.LogOptions{
			UserID: userID, UserName: userName,
			EntityType: "contract_layout", EntityID: layout.ID,
			Action: models.AuditActionCreate,
			After:  layout,
		})

		return c.Status(fiber.StatusCreated).JSON(layout)
	}
}

// GET /api/contract-layouts
func ListLayoutsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var layouts []models.ContractLayoutTemplate
		if err := database.DB.Order("name asc").Find(&layouts).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Predlošci se ne mogu dohvatiti")
		}
		return c.JSON(layouts)
	}
}

// PUT /api/contract-layouts/:id
func UpdateLayoutHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, userName, err := auth.UserInfo(c)
		if err != nil {
			return err
		}

		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Neispravan ID")
		}

		var layout models.ContractLayoutTemplate
		if err := database.DB.First(&layout, id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Predložak nije pronađen")
		}
		before := layout

		var body layoutBody
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Neispravan zahtjev")
		}
		if body.Name != nil {
			if *body.Name == "" {
				return fiber.NewError(fiber.StatusBadRequest, "Naziv predloška ne može biti prazan")
			}
			layout.Name = *body.Name
		}
		if body.Body != nil {
			if *body.Body == "" {
				return fiber.NewError(fiber.StatusBadRequest, "Sadržaj predloška ne može biti prazan")
			}
			layout.Body = *body.Body
		}
		if body.TokenStyle != nil {
			if !validTokenStyle(*body.TokenStyle) {
				return fiber.NewError(fiber.StatusBadRequest, "Oblik tokena mora biti single ili double")
			}
			layout.TokenStyle = *body.TokenStyle
		}
		if body.IsDefault != nil {
			layout.IsDefault = *body.IsDefault
		}

		if err := saveLayout(&layout); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Predložak se ne može spremiti")
		}

		_ = audit.WriteLog(audit.LogOptions{
			UserID: userID, UserName: userName,
			EntityType: "contract_layout", EntityID: layout.ID,
			Action: models.AuditActionUpdate,
			Before: before, After: layout,
		})

		return c.JSON(layout)
	}
}

// DELETE /api/contract-layouts/:id
func DeleteLayoutHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, userName, err := auth.UserInfo(c)
		if err != nil {
			return err
		}

		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Neispravan ID")
		}

		var layout models.ContractLayoutTemplate
		if err := database.DB.First(&layout, id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Predložak nije pronađen")
		}

		if err := database.DB.Delete(&layout).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Predložak se ne može obrisati")
		}

		_ = audit.WriteLog(audit.LogOptions{
			UserID: userID, UserName: userName,
			EntityType: "contract_layout", EntityID: layout.ID,
			Action: models.AuditActionDelete,
			Before: layout,
		})

		return c.JSON(fiber.Map{"message": "Predložak obrisan"})
	}
}

// POST /api/contract-layouts/:id/preview {"document_id": 12}
// Zamjenjuje tokene stvarnim podacima dokumenta. Bez document_id
// tokeni ostaju u tekstu, korisno za pregled samog predloška.
func PreviewLayoutHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Neispravan ID")
		}

		var layout models.ContractLayoutTemplate
		if err := database.DB.First(&layout, id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Predložak nije pronađen")
		}

		var body struct {
			DocumentID uint `json:"document_id"`
		}
		_ = c.BodyParser(&body)

		rendered := layout.Body
		if body.DocumentID != 0 {
			doc, err := documents.FetchWithRelations(body.DocumentID)
			if err != nil {
				return fiber.NewError(fiber.StatusNotFound, "Dokument nije pronađen")
			}
			companySettings, err := settings.GetOrCreate()
			if err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Postavke tvrtke se ne mogu dohvatiti")
			}
			values := placeholder.TokenValues(doc, companySettings, placeholder.AdvanceDefault30)
			rendered = placeholder.Substitute(rendered, values, LayoutStyle(&layout), placeholder.FallbackPassThrough)
		}

		return c.JSON(fiber.Map{"html": sanitize.HTML(rendered)})
	}
}
