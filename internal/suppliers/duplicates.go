package suppliers

import (
	"fmt"

	"stolarija-backend/internal/audit"
	"stolarija-backend/internal/auth"
	"stolarija-backend/internal/database"
	"stolarija-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type duplicateGroup struct {
	OIB        string            `json:"oib"`
	Canonical  models.Supplier   `json:"canonical"`
	Duplicates []models.Supplier `json:"duplicates"`
}

func findDuplicateGroups() ([]duplicateGroup, error) {
	var suppliers []models.Supplier
	if err := database.DB.
		Where("oib <> ''").
		Order("created_at asc").
		Find(&suppliers).Error; err != nil {
		return nil, err
	}

	byOIB := make(map[string][]models.Supplier)
	order := []string{}
	for _, s := range suppliers {
		if len(byOIB[s.OIB]) == 0 {
			order = append(order, s.OIB)
		}
		byOIB[s.OIB] = append(byOIB[s.OIB], s)
	}

	groups := []duplicateGroup{}
	for _, oib := range order {
		list := byOIB[oib]
		if len(list) < 2 {
			continue
		}
		groups = append(groups, duplicateGroup{
			OIB:        oib,
			Canonical:  list[0],
			Duplicates: list[1:],
		})
	}
	return groups, nil
}

// GET /api/suppliers/duplicates
func FindDuplicatesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		groups, err := findDuplicateGroups()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Duplikati se ne mogu pronaći")
		}
		return c.JSON(fiber.Map{"groups": groups, "count": len(groups)})
	}
}

// POST /api/suppliers/duplicates/cleanup
func CleanupDuplicatesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, userName, err := auth.UserInfo(c)
		if err != nil {
			return err
		}

		groups, err := findDuplicateGroups()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Duplikati se ne mogu pronaći")
		}

		removed := 0
		err = database.DB.Transaction(func(tx *gorm.DB) error {
			for _, group := range groups {
				for _, dup := range group.Duplicates {
					if err := tx.Delete(&models.Supplier{}, dup.ID).Error; err != nil {
						return err
					}
					removed++
				}
			}
			return nil
		})
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Duplikati se ne mogu ukloniti")
		}

		_ = audit.WriteLog(audit.LogOptions{
			UserID: userID, UserName: userName,
			EntityType:  "supplier",
			Action:      models.AuditActionDelete,
			Description: fmt.Sprintf("čišćenje duplikata, uklonjeno %d zapisa", removed),
		})

		return c.JSON(fiber.Map{"removed": removed})
	}
}
