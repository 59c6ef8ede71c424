package employees

import (
	"os"
	"path/filepath"
	"strings"

	"stolarija-backend/internal/audit"
	"stolarija-backend/internal/auth"
	"stolarija-backend/internal/config"
	"stolarija-backend/internal/database"
	"stolarija-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// allowedDocumentExt: dopuštene ekstenzije dokumenata radnika
var allowedDocumentExt = map[string]bool{
	".pdf": true, ".png": true, ".jpg": true, ".jpeg": true,
	".doc": true, ".docx": true, ".xls": true, ".xlsx": true,
}

// POST /api/employees/:id/documents
// Multipart polja "file" i "name". Datoteka se sprema pod generiranim
// uuid imenom, izvorni naziv ostaje u bazi.
func UploadEmployeeDocumentHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, userName, err := auth.UserInfo(c)
		if err != nil {
			return err
		}

		employeeID, err := c.ParamsInt("id")
		if err != nil || employeeID <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Neispravan ID")
		}

		var employee models.Employee
		if err := database.DB.First(&employee, employeeID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Radnik nije pronađen")
		}

		fileHeader, err := c.FormFile("file")
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Datoteka nije učitana")
		}

		ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
		if !allowedDocumentExt[ext] {
			return fiber.NewError(fiber.StatusBadRequest, "Nepodržan tip datoteke")
		}

		name := c.FormValue("name")
		if name == "" {
			name = fileHeader.Filename
		}

		if err := os.MkdirAll(cfg.DocumentStorage, 0755); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Mapa za dokumente se ne može stvoriti")
		}

		fileName := uuid.New().String() + ext
		if err := c.SaveFile(fileHeader, filepath.Join(cfg.DocumentStorage, fileName)); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Datoteka se ne može spremiti")
		}

		doc := models.EmployeeDocument{
			EmployeeID:   employee.ID,
			Name:         name,
			FileName:     fileName,
			OriginalName: fileHeader.Filename,
			MimeType:     fileHeader.Header.Get("Content-Type"),
			SizeBytes:    fileHeader.Size,
		}
		if err := database.DB.Create(&doc).Error; err != nil {
			_ = os.Remove(filepath.Join(cfg.DocumentStorage, fileName))
			return fiber.NewError(fiber.StatusInternalServerError, "Dokument se ne može spremiti")
		}

		_ = audit.WriteLog(audit.LogOptions{
			UserID: userID, UserName: userName,
			EntityType: "employee_document", EntityID: doc.ID,
			Action:      models.AuditActionCreate,
			Description: doc.Name,
		})

		return c.Status(fiber.StatusCreated).JSON(doc)
	}
}

// GET /api/employees/:id/documents
func ListEmployeeDocumentsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		employeeID, err := c.ParamsInt("id")
		if err != nil || employeeID <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Neispravan ID")
		}

		var docs []models.EmployeeDocument
		if err := database.DB.
			Where("employee_id = ?", employeeID).
			Order("created_at desc").
			Find(&docs).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Dokumenti se ne mogu dohvatiti")
		}
		return c.JSON(docs)
	}
}

// GET /api/employee-documents/:id/download
func DownloadEmployeeDocumentHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Neispravan ID")
		}

		var doc models.EmployeeDocument
		if err := database.DB.First(&doc, id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Dokument nije pronađen")
		}

		path := filepath.Join(cfg.DocumentStorage, doc.FileName)
		if _, err := os.Stat(path); err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Datoteka ne postoji na disku")
		}

		downloadName := doc.OriginalName
		if downloadName == "" {
			downloadName = doc.FileName
		}
		return c.Download(path, downloadName)
	}
}

// DELETE /api/employee-documents/:id
func DeleteEmployeeDocumentHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, userName, err := auth.UserInfo(c)
		if err != nil {
			return err
		}

		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Neispravan ID")
		}

		var doc models.EmployeeDocument
		if err := database.DB.First(&doc, id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Dokument nije pronađen")
		}

		if err := database.DB.Delete(&doc).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Dokument se ne može obrisati")
		}
		_ = os.Remove(filepath.Join(cfg.DocumentStorage, doc.FileName))

		_ = audit.WriteLog(audit.LogOptions{
			UserID: userID, UserName: userName,
			EntityType: "employee_document", EntityID: doc.ID,
			Action:      models.AuditActionDelete,
			Description: doc.Name,
		})

		return c.JSON(fiber.Map{"message": "Dokument obrisan"})
	}
}
