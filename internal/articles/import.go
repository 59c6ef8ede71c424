package articles

import (
	"fmt"
	"strconv"
	"strings"

	"stolarija-backend/internal/audit"
	"stolarija-backend/internal/auth"
	"stolarija-backend/internal/database"
	"stolarija-backend/internal/importer"
	"stolarija-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

// parsePrice: prihvaća i hrvatski zapis decimala ("1.234,56" ili "12,50")
func parsePrice(raw string) (float64, error) {
	if raw == "" {
		return 0, nil
	}
	s := strings.TrimSpace(raw)
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	}
	return strconv.ParseFloat(s, 64)
}

// POST /api/articles/import
func ImportArticlesHandler() fiber.Handler {
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

			price, err := parsePrice(mapping.Cell(row, "price"))
			if err != nil {
				result.Fail(fmt.Sprintf("red %d: neispravna cijena %q", i+2, mapping.Cell(row, "price")))
				continue
			}

			taxPercent := 25.0
			if rawTax := mapping.Cell(row, "tax"); rawTax != "" {
				taxPercent, err = parsePrice(rawTax)
				if err != nil || taxPercent < 0 || taxPercent > 100 {
					result.Fail(fmt.Sprintf("red %d: neispravna stopa PDV-a %q", i+2, rawTax))
					continue
				}
			}

			article := models.Article{
				Name:       name,
				Code:       mapping.Cell(row, "code"),
				Unit:       mapping.Cell(row, "unit"),
				UnitPrice:  price,
				TaxPercent: taxPercent,
				Notes:      mapping.Cell(row, "note"),
			}
			if err := database.DB.Create(&article).Error; err != nil {
				result.Fail(fmt.Sprintf("red %d: %v", i+2, err))
				continue
			}
			result.Imported++
		}

		_ = audit.WriteLog(audit.LogOptions{
			UserID: userID, UserName: userName,
			EntityType:  "article",
			Action:      models.AuditActionCreate,
			Description: fmt.Sprintf("uvoz iz Excela: %d uvezeno, %d neuspjelo", result.Imported, result.Failed),
		})

		return c.JSON(result)
	}
}
