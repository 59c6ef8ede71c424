package pdf

import (
	"fmt"

	"stolarija-backend/internal/database"
	"stolarija-backend/internal/documents"
	"stolarija-backend/internal/employees"
	"stolarija-backend/internal/models"
	"stolarija-backend/internal/settings"

	"github.com/gofiber/fiber/v2"
)

// GET /api/documents/:id/pdf?flow=preview|editor
func DocumentPDFHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Neispravan ID")
		}

		doc, err := documents.FetchWithRelations(uint(id))
		if err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Dokument nije pronađen")
		}

		companySettings, err := settings.GetOrCreate()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Postavke tvrtke se ne mogu dohvatiti")
		}

		policy := documents.AdvancePolicyFromFlow(c.Query("flow"))
		model := documents.BuildRenderModel(doc, companySettings, doc.Template, policy)

		data, err := GenerateDocumentPDF(model, companySettings)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "PDF se ne može generirati")
		}

		c.Set(fiber.HeaderContentType, "application/pdf")
		c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, documents.PDFFileName(doc)))
		return c.Send(data)
	}
}

// GET /api/leave-requests/:id/pdf
func LeavePDFHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Neispravan ID")
		}

		var req models.LeaveRequest
		if err := database.DB.Preload("Employee").First(&req, id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Zahtjev nije pronađen")
		}

		companySettings, err := settings.GetOrCreate()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Postavke tvrtke se ne mogu dohvatiti")
		}

		holidays, err := employees.LoadHolidaySet()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Praznici se ne mogu dohvatiti")
		}

		data, err := GenerateLeavePDF(&req, &req.Employee, companySettings, holidays)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "PDF se ne može generirati")
		}

		c.Set(fiber.HeaderContentType, "application/pdf")
		c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="godisnji-%d.pdf"`, req.ID))
		return c.Send(data)
	}
}
