package clients

import (
	"fmt"

	"stolarija-backend/internal/audit"
	"stolarija-backend/internal/auth"
	"stolarija-backend/internal/database"
	"stolarija-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// duplicateGroup: jedan OIB s više zapisa, najstariji je kanonski
type duplicateGroup struct {
	OIB        string          `json:"oib"`
	Canonical  models.Client   `json:"canonical"`
	Duplicates []models.Client `json:"duplicates"`
}

func findDuplicateGroups() ([]duplicateGroup, error) {
	var clients []models.Client
	if err := database.DB.
		Where("oib <> ''").
		Order("created_at asc").
		Find(&clients).Error; err != nil {
		return nil, err
	}

	byOIB := make(map[string][]models.Client)
	order := []string{}
	for _, cl := range clients {
		if len(byOIB[cl.OIB]) == 0 {
			order = append(order, cl.OIB)
		}
		byOIB[cl.OIB] = append(byOIB[cl.OIB], cl)
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

// GET /api/clients/duplicates
func FindDuplicatesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		groups, err := findDuplicateGroups()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Duplikati se ne mogu pronaći")
		}
		return c.JSON(fiber.Map{"groups": groups, "count": len(groups)})
	}
}

// POST /api/clients/duplicates/cleanup
// Najstariji zapis po OIB-u ostaje, noviji duplikati idu u koš.
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
					if err := tx.Delete(&models.Client{}, dup.ID).Error; err != nil {
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
			EntityType: "client",
			Action:     models.AuditActionDelete,
			Description: fmt.Sprintf("čišćenje duplikata, uklonjeno %d zapisa", removed),
		})

		return c.JSON(fiber.Map{"removed": removed})
	}
}
