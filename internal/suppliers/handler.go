package suppliers

import (
	"stolarija-backend/internal/audit"
	"stolarija-backend/internal/auth"
	"stolarija-backend/internal/database"
	"stolarija-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type supplierBody struct {
	Name          *string `json:"name"`
	OIB           *string `json:"oib"`
	Address       *string `json:"address"`
	City          *string `json:"city"`
	PostalCode    *string `json:"postal_code"`
	Phone         *string `json:"phone"`
	Email         *string `json:"email"`
	ContactPerson *string `json:"contact_person"`
	Notes         *string `json:"notes"`
}

func (b *supplierBody) apply(supplier *models.Supplier) {
	if b.Name != nil {
		supplier.Name = *b.Name
	}
	if b.OIB != nil {
		supplier.OIB = *b.OIB
	}
	if b.Address != nil {
		supplier.Address = *b.Address
	}
	if b.City != nil {
		supplier.City = *b.City
	}
	if b.PostalCode != nil {
		supplier.PostalCode = *b.PostalCode
	}
	if b.Phone != nil {
		supplier.Phone = *b.Phone
	}
	if b.Email != nil {
		supplier.Email = *b.Email
	}
	if b.ContactPerson != nil {
		supplier.ContactPerson = *b.ContactPerson
	}
	if b.Notes != nil {
		supplier.Notes = *b.Notes
	}
}

// POST /api/suppliers
func CreateSupplierHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, userName, err := auth.UserInfo(c)
		if err != nil {
			return err
		}

		var body supplierBody
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Neispravan zahtjev")
		}
		if body.Name == nil || *body.Name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Naziv dobavljača je obavezan")
		}

		var supplier models.Supplier
		body.apply(&supplier)

		if err := database.DB.Create(&supplier).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Dobavljač se ne može spremiti")
		}

		_ = audit.WriteLog(audit.LogOptions{
			UserID: userID, UserName: userName,
			EntityType: "supplier", EntityID: supplier.ID,
			Action: models.AuditActionCreate,
			After:  supplier,
		})

		return c.Status(fiber.StatusCreated).JSON(supplier)
	}
}

// GET /api/suppliers?q=drvo
func ListSuppliersHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		dbq := database.DB.Model(&models.Supplier{})
		if q := c.Query("q"); q != "" {
			like := "%" + q + "%"
			dbq = dbq.Where("name ILIKE ? OR oib ILIKE ? OR city ILIKE ?", like, like, like)
		}

		var suppliers []models.Supplier
		if err := dbq.Order("name asc").Find(&suppliers).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Dobavljači se ne mogu dohvatiti")
		}
		return c.JSON(suppliers)
	}
}

// GET /api/suppliers/:id
func GetSupplierHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Neispravan ID")
		}
		var supplier models.Supplier
		if err := database.DB.First(&supplier, id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Dobavljač nije pronađen")
		}
		return c.JSON(supplier)
	}
}

// PUT /api/suppliers/:id
func UpdateSupplierHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, userName, err := auth.UserInfo(c)
		if err != nil {
			return err
		}

		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Neispravan ID")
		}

		var supplier models.Supplier
		if err := database.DB.First(&supplier, id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Dobavljač nije pronađen")
		}
		before := supplier

		var body supplierBody
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Neispravan zahtjev")
		}
		if body.Name != nil && *body.Name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Naziv dobavljača ne može biti prazan")
		}
		body.apply(&supplier)

		if err := database.DB.Save(&supplier).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Dobavljač se ne može spremiti")
		}

		_ = audit.WriteLog(audit.LogOptions{
			UserID: userID, UserName: userName,
			EntityType: "supplier", EntityID: supplier.ID,
			Action: models.AuditActionUpdate,
			Before: before, After: supplier,
		})

		return c.JSON(supplier)
	}
}

// DELETE /api/suppliers/:id (soft delete)
func DeleteSupplierHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, userName, err := auth.UserInfo(c)
		if err != nil {
			return err
		}

		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Neispravan ID")
		}

		var supplier models.Supplier
		if err := database.DB.First(&supplier, id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Dobavljač nije pronađen")
		}

		if err := database.DB.Delete(&supplier).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Dobavljač se ne može obrisati")
		}

		_ = audit.WriteLog(audit.LogOptions{
			UserID: userID, UserName: userName,
			EntityType: "supplier", EntityID: supplier.ID,
			Action: models.AuditActionDelete,
			Before: supplier,
		})

		return c.JSON(fiber.Map{"message": "Dobavljač premješten u koš"})
	}
}

// GET /api/suppliers/trash
func ListTrashedSuppliersHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var suppliers []models.Supplier
		if err := database.DB.Unscoped().
			Where("deleted_at IS NOT NULL").
			Order("deleted_at desc").
			Find(&suppliers).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Koš se ne može dohvatiti")
		}
		return c.JSON(suppliers)
	}
}

// POST /api/suppliers/:id/restore
func RestoreSupplierHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, userName, err := auth.UserInfo(c)
		if err != nil {
			return err
		}

		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Neispravan ID")
		}

		var supplier models.Supplier
		if err := database.DB.Unscoped().
			Where("deleted_at IS NOT NULL").
			First(&supplier, id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Dobavljač nije pronađen u košu")
		}

		if err := database.DB.Unscoped().Model(&supplier).
			Update("deleted_at", nil).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Dobavljač se ne može vratiti")
		}

		_ = audit.WriteLog(audit.LogOptions{
			UserID: userID, UserName: userName,
			EntityType: "supplier", EntityID: supplier.ID,
			Action: models.AuditActionRestore,
		})

		return c.JSON(fiber.Map{"message": "Dobavljač vraćen iz koša"})
	}
}
