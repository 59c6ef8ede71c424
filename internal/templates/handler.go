package templates

import (
	"stolarija-backend/internal/audit"
	"stolarija-backend/internal/auth"
	"stolarija-backend/internal/database"
	"stolarija-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type templateBody struct {
	Name               *string              `json:"name"`
	DocumentType       *models.DocumentType `json:"document_type"`
	IsDefault          *bool                `json:"is_default"`
	ShowDiscountColumn *bool                `json:"show_discount_column"`
	ShowTaxBreakdown   *bool                `json:"show_tax_breakdown"`
	ShowItemCodes      *bool                `json:"show_item_codes"`
	ShowNotes          *bool                `json:"show_notes"`
}

func (b *templateBody) apply(t *models.DocumentTemplate) error {
	if b.Name != nil {
		t.Name = *b.Name
	}
	if b.DocumentType != nil {
		if !b.DocumentType.Valid() {
			return fiber.NewError(fiber.StatusBadRequest, "Nepoznat tip dokumenta")
		}
		t.DocumentType = *b.DocumentType
	}
	if b.IsDefault != nil {
		t.IsDefault = *b.IsDefault
	}
	if b.ShowDiscountColumn != nil {
		t.ShowDiscountColumn = *b.ShowDiscountColumn
	}
	if b.ShowTaxBreakdown != nil {
		t.ShowTaxBreakdown = *b.ShowTaxBreakdown
	}
	if b.ShowItemCodes != nil {
		t.ShowItemCodes = *b.ShowItemCodes
	}
	if b.ShowNotes != nil {
		t.ShowNotes = *b.ShowNotes
	}
	return nil
}

// saveTemplate: spremanje s održavanjem pravila "najviše jedan default po
// tipu". Skidanje starog defaulta i spremanje novog ide u istoj transakciji.
func saveTemplate(t *models.DocumentTemplate) error {
	return database.DB.Transaction(func(tx *gorm.DB) error {
		if t.IsDefault {
			if err := tx.Model(&models.DocumentTemplate{}).
				Where("document_type = ? AND id <> ?", t.DocumentType, t.ID).
				Update("is_default", false).Error; err != nil {
				return err
			}
		}
		return tx.Save(t).Error
	})
}

// POST /api/templates
func CreateTemplateHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, userName, err := auth.UserInfo(c)
		if err != nil {
			return err
		}

		var body templateBody
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Neispravan zahtjev")
		}
		if body.Name == nil || *body.Name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Naziv predloška je obavezan")
		}
		if body.DocumentType == nil {
			return fiber.NewError(fiber.StatusBadRequest, "Tip dokumenta je obavezan")
		}

		tmpl := models.DocumentTemplate{
			ShowDiscountColumn: true,
			ShowTaxBreakdown:   true,
			ShowNotes:          true,
		}
		if err := body.apply(&tmpl); err != nil {
			return err
		}

		if err := saveTemplate(&tmpl); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Predložak se ne može spremiti")
		}

		_ = audit.WriteLog(audit.LogOptions{
			UserID: userID, UserName: userName,
			EntityType: "document_template", EntityID: tmpl.ID,
			Action: models.AuditActionCreate,
			After:  tmpl,
		})

		return c.Status(fiber.StatusCreated).JSON(tmpl)
	}
}

// GET /api/templates?type=ponuda
func ListTemplatesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		dbq := database.DB.Model(&models.DocumentTemplate{})
		if t := c.Query("type"); t != "" {
			dbq = dbq.Where("document_type = ?", t)
		}

		var templates []models.DocumentTemplate
		if err := dbq.Order("document_type asc, name asc").Find(&templates).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Predlošci se ne mogu dohvatiti")
		}
		return c.JSON(templates)
	}
}

// PUT /api/templates/:id
func UpdateTemplateHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, userName, err := auth.UserInfo(c)
		if err != nil {
			return err
		}

		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Neispravan ID")
		}

		var tmpl models.DocumentTemplate
		if err := database.DB.First(&tmpl, id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Predložak nije pronađen")
		}
		before := tmpl

		var body templateBody
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Neispravan zahtjev")
		}
		if body.Name != nil && *body.Name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Naziv predloška ne može biti prazan")
		}
		if err := body.apply(&tmpl); err != nil {
			return err
		}

		if err := saveTemplate(&tmpl); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Predložak se ne može spremiti")
		}

		_ = audit.WriteLog(audit.LogOptions{
			UserID: userID, UserName: userName,
			EntityType: "document_template", EntityID: tmpl.ID,
			Action: models.AuditActionUpdate,
			Before: before, After: tmpl,
		})

		return c.JSON(tmpl)
	}
}

// DELETE /api/templates/:id
func DeleteTemplateHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, userName, err := auth.UserInfo(c)
		if err != nil {
			return err
		}

		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Neispravan ID")
		}

		var tmpl models.DocumentTemplate
		if err := database.DB.First(&tmpl, id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Predložak nije pronađen")
		}

		var inUse int64
		if err := database.DB.Model(&models.Document{}).
			Where("template_id = ?", tmpl.ID).Count(&inUse).Error; err == nil && inUse > 0 {
			return fiber.NewError(fiber.StatusConflict, "Predložak se koristi na postojećim dokumentima")
		}

		if err := database.DB.Delete(&tmpl).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Predložak se ne može obrisati")
		}

		_ = audit.WriteLog(audit.LogOptions{
			UserID: userID, UserName: userName,
			EntityType: "document_template", EntityID: tmpl.ID,
			Action: models.AuditActionDelete,
			Before: tmpl,
		})

		return c.JSON(fiber.Map{"message": "Predložak obrisan"})
	}
}
