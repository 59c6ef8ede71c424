package employees

import (
	"time"

	"stolarija-backend/internal/audit"
	"stolarija-backend/internal/auth"
	"stolarija-backend/internal/database"
	"stolarija-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type employeeBody struct {
	FirstName     *string `json:"first_name"`
	LastName      *string `json:"last_name"`
	OIB           *string `json:"oib"`
	Address       *string `json:"address"`
	Phone         *string `json:"phone"`
	Email         *string `json:"email"`
	Position      *string `json:"position"`
	WorksSaturday *bool   `json:"works_saturday"`
	HiredAt       *string `json:"hired_at"` // YYYY-MM-DD
}

func (b *employeeBody) apply(e *models.Employee) error {
	if b.FirstName != nil {
		e.FirstName = *b.FirstName
	}
	if b.LastName != nil {
		e.LastName = *b.LastName
	}
	if b.OIB != nil {
		e.OIB = *b.OIB
	}
	if b.Address != nil {
		e.Address = *b.Address
	}
	if b.Phone != nil {
		e.Phone = *b.Phone
	}
	if b.Email != nil {
		e.Email = *b.Email
	}
	if b.Position != nil {
		e.Position = *b.Position
	}
	if b.WorksSaturday != nil {
		e.WorksSaturday = *b.WorksSaturday
	}
	if b.HiredAt != nil {
		if *b.HiredAt == "" {
			e.HiredAt = nil
		} else {
			t, err := time.Parse("2006-01-02", *b.HiredAt)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Neispravan datum zaposlenja, očekuje se YYYY-MM-DD")
			}
			e.HiredAt = &t
		}
	}
	return nil
}

// POST /api/employees
func CreateEmployeeHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, userName, err := auth.UserInfo(c)
		if err != nil {
			return err
		}

		var body employeeBody
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Neispravan zahtjev")
		}
		if body.FirstName == nil || *body.FirstName == "" || body.LastName == nil || *body.LastName == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Ime i prezime radnika su obavezni")
		}

		var employee models.Employee
		if err := body.apply(&employee); err != nil {
			return err
		}

		if err := database.DB.Create(&employee).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Radnik se ne može spremiti")
		}

		_ = audit.WriteLog(audit.LogOptions{
			UserID: userID, UserName: userName,
			EntityType: "employee", EntityID: employee.ID,
			Action: models.AuditActionCreate,
			After:  employee,
		})

		return c.Status(fiber.StatusCreated).JSON(employee)
	}
}

// GET /api/employees?q=ivan
func ListEmployeesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		dbq := database.DB.Model(&models.Employee{})
		if q := c.Query("q"); q != "" {
			like := "%" + q + "%"
			dbq = dbq.Where("first_name ILIKE ? OR last_name ILIKE ? OR oib ILIKE ?", like, like, like)
		}

		var employees []models.Employee
		if err := dbq.Order("last_name asc, first_name asc").Find(&employees).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Radnici se ne mogu dohvatiti")
		}
		return c.JSON(employees)
	}
}

// GET /api/employees/:id (s evidencijama)
func GetEmployeeHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Neispravan ID")
		}

		var employee models.Employee
		if err := database.DB.
			Preload("LeaveRequests").
			Preload("SickLeaves").
			Preload("WorkClothing").
			Preload("Documents").
			First(&employee, id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Radnik nije pronađen")
		}
		return c.JSON(employee)
	}
}

// PUT /api/employees/:id
func UpdateEmployeeHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, userName, err := auth.UserInfo(c)
		if err != nil {
			return err
		}

		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Neispravan ID")
		}

		var employee models.Employee
		if err := database.DB.First(&employee, id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Radnik nije pronađen")
		}
		before := employee

		var body employeeBody
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Neispravan zahtjev")
		}
		if err := body.apply(&employee); err != nil {
			return err
		}

		if err := database.DB.Save(&employee).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Radnik se ne može spremiti")
		}

		_ = audit.WriteLog(audit.LogOptions{
			UserID: userID, UserName: userName,
			EntityType: "employee", EntityID: employee.ID,
			Action: models.AuditActionUpdate,
			Before: before, After: employee,
		})

		return c.JSON(employee)
	}
}

// DELETE /api/employees/:id (soft delete)
func DeleteEmployeeHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, userName, err := auth.UserInfo(c)
		if err != nil {
			return err
		}

		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Neispravan ID")
		}

		var employee models.Employee
		if err := database.DB.First(&employee, id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Radnik nije pronađen")
		}

		if err := database.DB.Delete(&employee).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Radnik se ne može obrisati")
		}

		_ = audit.WriteLog(audit.LogOptions{
			UserID: userID, UserName: userName,
			EntityType: "employee", EntityID: employee.ID,
			Action: models.AuditActionDelete,
			Before: employee,
		})

		return c.JSON(fiber.Map{"message": "Radnik premješten u koš"})
	}
}
