package employees

import (
	"time"

	"stolarija-backend/internal/calendar"
	"stolarija-backend/internal/database"
	"stolarija-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

// LoadHolidaySet: svi praznici iz baze kao skup za obračun radnih dana
func LoadHolidaySet() (calendar.HolidaySet, error) {
	var holidays []models.PublicHoliday
	if err := database.DB.Find(&holidays).Error; err != nil {
		return nil, err
	}
	dates := make([]time.Time, len(holidays))
	for i, h := range holidays {
		dates[i] = h.Date
	}
	return calendar.NewHolidaySet(dates), nil
}

// GET /api/holidays
func ListHolidaysHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var holidays []models.PublicHoliday
		if err := database.DB.Order("date asc").Find(&holidays).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Praznici se ne mogu dohvatiti")
		}
		return c.JSON(holidays)
	}
}

// POST /api/holidays
func CreateHolidayHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req struct {
			Date string `json:"date"` // YYYY-MM-DD
			Name string `json:"name"`
		}
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Neispravan zahtjev")
		}
		if req.Name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Naziv praznika je obavezan")
		}
		date, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Neispravan datum, očekuje se YYYY-MM-DD")
		}

		holiday := models.PublicHoliday{Date: date, Name: req.Name}
		if err := database.DB.Create(&holiday).Error; err != nil {
			return fiber.NewError(fiber.StatusConflict, "Praznik za taj datum već postoji")
		}
		return c.Status(fiber.StatusCreated).JSON(holiday)
	}
}

// DELETE /api/holidays/:id
func DeleteHolidayHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Neispravan ID")
		}
		result := database.DB.Delete(&models.PublicHoliday{}, id)
		if result.Error != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Praznik se ne može obrisati")
		}
		if result.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Praznik nije pronađen")
		}
		return c.JSON(fiber.Map{"message": "Praznik obrisan"})
	}
}
