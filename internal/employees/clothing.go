package employees

import (
	"time"

	"stolarija-backend/internal/audit"
	"stolarija-backend/internal/auth"
	"stolarija-backend/internal/database"
	"stolarija-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

// POST /api/employees/:id/clothing
func CreateClothingHandler() fiber.Handler {
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

		var body struct {
			ItemName string `json:"item_name"`
			Size     string `json:"size"`
			Quantity int    `json:"quantity"`
			IssuedAt string `json:"issued_at"` // YYYY-MM-DD, prazno = danas
			Note     string `json:"note"`
		}
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Neispravan zahtjev")
		}
		if body.ItemName == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Naziv artikla je obavezan")
		}
		if body.Quantity <= 0 {
			body.Quantity = 1
		}

		issuedAt := time.Now()
		if body.IssuedAt != "" {
			issuedAt, err = time.Parse("2006-01-02", body.IssuedAt)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Neispravan datum zaduženja, očekuje se YYYY-MM-DD")
			}
		}

		item := models.WorkClothing{
			EmployeeID: employee.ID,
			ItemName:   body.ItemName,
			Size:       body.Size,
			Quantity:   body.Quantity,
			IssuedAt:   issuedAt,
			Note:       body.Note,
		}
		if err := database.DB.Create(&item).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Zaduženje se ne može spremiti")
		}

		_ = audit.WriteLog(audit.LogOptions{
			UserID: userID, UserName: userName,
			EntityType: "work_clothing", EntityID: item.ID,
			Action: models.AuditActionCreate,
			After:  item,
		})

		return c.Status(fiber.StatusCreated).JSON(item)
	}
}

// GET /api/employees/:id/clothing
func ListClothingHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		employeeID, err := c.ParamsInt("id")
		if err != nil || employeeID <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Neispravan ID")
		}

		var items []models.WorkClothing
		if err := database.DB.
			Where("employee_id = ?", employeeID).
			Order("issued_at desc").
			Find(&items).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Zaduženja se ne mogu dohvatiti")
		}
		return c.JSON(items)
	}
}

// DELETE /api/clothing/:id
func DeleteClothingHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, userName, err := auth.UserInfo(c)
		if err != nil {
			return err
		}

		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Neispravan ID")
		}

		var item models.WorkClothing
		if err := database.DB.First(&item, id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Zaduženje nije pronađeno")
		}

		if err := database.DB.Delete(&item).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Zaduženje se ne može obrisati")
		}

		_ = audit.WriteLog(audit.LogOptions{
			UserID: userID, UserName: userName,
			EntityType: "work_clothing", EntityID: item.ID,
			Action: models.AuditActionDelete,
			Before: item,
		})

		return c.JSON(fiber.Map{"message": "Zaduženje obrisano"})
	}
}
