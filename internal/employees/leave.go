package employees

import (
	"time"

	"stolarija-backend/internal/audit"
	"stolarija-backend/internal/auth"
	"stolarija-backend/internal/calendar"
	"stolarija-backend/internal/database"
	"stolarija-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

func parseDateRange(startRaw, endRaw string) (time.Time, time.Time, error) {
	start, err := time.Parse("2006-01-02", startRaw)
	if err != nil {
		return time.Time{}, time.Time{}, fiber.NewError(fiber.StatusBadRequest, "Neispravan početni datum, očekuje se YYYY-MM-DD")
	}
	end, err := time.Parse("2006-01-02", endRaw)
	if err != nil {
		return time.Time{}, time.Time{}, fiber.NewError(fiber.StatusBadRequest, "Neispravan završni datum, očekuje se YYYY-MM-DD")
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, fiber.NewError(fiber.StatusBadRequest, "Završni datum ne može biti prije početnog")
	}
	return start, end, nil
}

// POST /api/employees/:id/leave-requests
// Radni dani se obračunavaju na poslužitelju iz kalendara praznika
// i radnikove subote.
func CreateLeaveRequestHandler() fiber.Handler {
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
			StartDate string `json:"start_date"`
			EndDate   string `json:"end_date"`
			Note      string `json:"note"`
		}
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Neispravan zahtjev")
		}

		start, end, err := parseDateRange(body.StartDate, body.EndDate)
		if err != nil {
			return err
		}

		holidays, err := LoadHolidaySet()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Praznici se ne mogu dohvatiti")
		}

		req := models.LeaveRequest{
			EmployeeID:  employee.ID,
			StartDate:   start,
			EndDate:     end,
			WorkingDays: calendar.WorkingDays(start, end, employee.WorksSaturday, holidays),
			Status:      models.LeavePending,
			Note:        body.Note,
		}
		if err := database.DB.Create(&req).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Zahtjev se ne može spremiti")
		}

		_ = audit.WriteLog(audit.LogOptions{
			UserID: userID, UserName: userName,
			EntityType: "leave_request", EntityID: req.ID,
			Action: models.AuditActionCreate,
			After:  req,
		})

		return c.Status(fiber.StatusCreated).JSON(req)
	}
}

// GET /api/employees/:id/leave-requests
func ListLeaveRequestsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		employeeID, err := c.ParamsInt("id")
		if err != nil || employeeID <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Neispravan ID")
		}

		var requests []models.LeaveRequest
		if err := database.DB.
			Where("employee_id = ?", employeeID).
			Order("start_date desc").
			Find(&requests).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Zahtjevi se ne mogu dohvatiti")
		}
		return c.JSON(requests)
	}
}

// PUT /api/leave-requests/:id/status {"status": "approved"}
func ChangeLeaveStatusHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, userName, err := auth.UserInfo(c)
		if err != nil {
			return err
		}

		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Neispravan ID")
		}

		var body struct {
			Status models.LeaveStatus `json:"status"`
		}
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Neispravan zahtjev")
		}
		switch body.Status {
		case models.LeavePending, models.LeaveApproved, models.LeaveRejected:
		default:
			return fiber.NewError(fiber.StatusBadRequest, "Nepoznat status zahtjeva")
		}

		var req models.LeaveRequest
		if err := database.DB.First(&req, id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Zahtjev nije pronađen")
		}
		before := req

		req.Status = body.Status
		if err := database.DB.Save(&req).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Status se ne može promijeniti")
		}

		_ = audit.WriteLog(audit.LogOptions{
			UserID: userID, UserName: userName,
			EntityType: "leave_request", EntityID: req.ID,
			Action:      models.AuditActionUpdate,
			Description: string(body.Status),
			Before:      before, After: req,
		})

		return c.JSON(req)
	}
}

// DELETE /api/leave-requests/:id
func DeleteLeaveRequestHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, userName, err := auth.UserInfo(c)
		if err != nil {
			return err
		}

		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Neispravan ID")
		}

		var req models.LeaveRequest
		if err := database.DB.First(&req, id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Zahtjev nije pronađen")
		}

		if err := database.DB.Delete(&req).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Zahtjev se ne može obrisati")
		}

		_ = audit.WriteLog(audit.LogOptions{
			UserID: userID, UserName: userName,
			EntityType: "leave_request", EntityID: req.ID,
			Action: models.AuditActionDelete,
			Before: req,
		})

		return c.JSON(fiber.Map{"message": "Zahtjev obrisan"})
	}
}

// POST /api/employees/:id/sick-leaves
func CreateSickLeaveHandler() fiber.Handler {
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
			StartDate string `json:"start_date"`
			EndDate   string `json:"end_date"`
			Note      string `json:"note"`
		}
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Neispravan zahtjev")
		}

		start, end, err := parseDateRange(body.StartDate, body.EndDate)
		if err != nil {
			return err
		}

		holidays, err := LoadHolidaySet()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Praznici se ne mogu dohvatiti")
		}

		sick := models.SickLeave{
			EmployeeID:  employee.ID,
			StartDate:   start,
			EndDate:     end,
			WorkingDays: calendar.WorkingDays(start, end, employee.WorksSaturday, holidays),
			Note:        body.Note,
		}
		if err := database.DB.Create(&sick).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Bolovanje se ne može spremiti")
		}

		_ = audit.WriteLog(audit.LogOptions{
			UserID: userID, UserName: userName,
			EntityType: "sick_leave", EntityID: sick.ID,
			Action: models.AuditActionCreate,
			After:  sick,
		})

		return c.Status(fiber.StatusCreated).JSON(sick)
	}
}

// GET /api/employees/:id/sick-leaves
func ListSickLeavesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		employeeID, err := c.ParamsInt("id")
		if err != nil || employeeID <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Neispravan ID")
		}

		var leaves []models.SickLeave
		if err := database.DB.
			Where("employee_id = ?", employeeID).
			Order("start_date desc").
			Find(&leaves).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Bolovanja se ne mogu dohvatiti")
		}
		return c.JSON(leaves)
	}
}

// DELETE /api/sick-leaves/:id
func DeleteSickLeaveHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, userName, err := auth.UserInfo(c)
		if err != nil {
			return err
		}

		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Neispravan ID")
		}

		var sick models.SickLeave
		if err := database.DB.First(&sick, id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Bolovanje nije pronađeno")
		}

		if err := database.DB.Delete(&sick).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Bolovanje se ne može obrisati")
		}

		_ = audit.WriteLog(audit.LogOptions{
			UserID: userID, UserName: userName,
			EntityType: "sick_leave", EntityID: sick.ID,
			Action: models.AuditActionDelete,
			Before: sick,
		})

		return c.JSON(fiber.Map{"message": "Bolovanje obrisano"})
	}
}
