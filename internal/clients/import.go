package clients

import (
	"fmt"

	"stolarija-backend/internal/audit"
	"stolarija-backend/internal/auth"
	"stolarija-backend/internal/database"
	"stolarija-backend/internal/importer"
	"stolarija-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

// POST /api/clients/import
// Multipart polje "file" (.xlsx), opcionalno polje "mapping" oblika "name=0,oib=2".
func ImportClientsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, userName, err := auth.UserInfo(c)
		if err != nil {
			return err
		}

		fileHeader, err := c.FormFile("file")
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Datoteka nije učitana")
		}

		sheet, err := importer.OpenUpload(fileHeader)
		if err != nil {
			return err
		}

		mapping := importer.MapColumns(sheet.Header, importer.ParseManual(c.FormValue("mapping")))
		if _, ok := mapping["name"]; !ok {
			return fiber.NewError(fiber.StatusBadRequest, "Stupac s nazivom nije prepoznat")
		}

		result := importer.Result{Errors: []string{}}
		for i, row := range sheet.Rows {
			name := mapping.Cell(row, "name")
			if name == "" {
				result.Fail(fmt.Sprintf("red %d: naziv je prazan", i+2))
				continue
			}

			client := models.Client{
				Name:          name,
				OIB:           mapping.Cell(row, "oib"),
				Address:       mapping.Cell(row, "address"),
				City:          mapping.Cell(row, "city"),
				Phone:         mapping.Cell(row, "phone"),
				Email:         mapping.Cell(row, "email"),
				ContactPerson: mapping.Cell(row, "contact"),
				Notes:         mapping.Cell(row, "note"),
			}
			if err := database.DB.Create(&client).Error; err != nil {
				result.Fail(fmt.Sprintf("red %d: %v", i+2, err))
				continue
			}
			result.Imported++
		}

		_ = audit.WriteLog(audit.LogOptions{
			UserID: userID, UserName: userName,
			EntityType:  "client",
			Action:      models.AuditActionCreate,
			Description: fmt.Sprintf("uvoz iz Excela: %d uvezeno, %d neuspjelo", result.Imported, result.Failed),
		})

		return c.JSON(result)
	}
}
