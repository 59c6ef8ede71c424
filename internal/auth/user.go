package auth

import (
	"stolarija-backend/internal/database"
	"stolarija-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

// UserInfo: id i ime prijavljenog korisnika, za audit zapise
func UserInfo(c *fiber.Ctx) (uint, string, error) {
	userIDVal := c.Locals(CtxUserIDKey)
	userID, ok := userIDVal.(uint)
	if !ok {
		return 0, "", fiber.NewError(fiber.StatusForbidden, "Podatak o korisniku nije dostupan")
	}

	var user models.User
	if err := database.DB.First(&user, "id = ?", userID).Error; err != nil {
		return 0, "", fiber.NewError(fiber.StatusInternalServerError, "Korisnik nije pronađen")
	}

	return userID, user.Name, nil
}
