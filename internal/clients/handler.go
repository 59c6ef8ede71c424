package clients

import (
	"stolarija-backend/internal/audit"
	"stolarija-backend/internal/auth"
	"stolarija-backend/internal/database"
	"stolarija-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type clientBody struct {
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

func (b *clientBody) apply(client *models.Client) {
	if b.Name != nil {
		client.Name = *b.Name
	}
	if b.OIB != nil {
		client.OIB = *b.OIB
	}
	if b.Address != nil {
		client.Address = *b.Address
	}
	if b.City != nil {
		client.City = *b.City
	}
	if b.PostalCode != nil {
		client.PostalCode = *b.PostalCode
	}
	if b.Phone != nil {
		client.Phone = *b.Phone
	}
	if b.Email != nil {
		client.Email = *b.Email
	}
	if b.ContactPerson != nil {
		client.ContactPerson = *b.ContactPerson
	}
	if b.Notes != nil {
		client.Notes = *b.Notes
	}
}

// POST /api/clients
func CreateClientHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, userName, err := auth.UserInfo(c)
		if err != nil {
			return err
		}

		var body clientBody
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Neispravan zahtjev")
		}
		if body.Name == nil || *body.Name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Naziv kupca je obavezan")
		}

		var client models.Client
		body.apply(&client)

		if err := database.DB.Create(&client).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Kupac se ne može spremiti")
		}

		_ = audit.WriteLog(audit.LogOptions{
			UserID: userID, UserName: userName,
			EntityType: "client", EntityID: client.ID,
			Action: models.AuditActionCreate,
			After:  client,
		})

		return c.Status(fiber.StatusCreated).JSON(client)
	}
}

// GET /api/clients?q=horvat
func ListClientsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		dbq := database.DB.Model(&models.Client{})
		if q := c.Query("q"); q != "" {
			like := "%" + q + "%"
			dbq = dbq.Where("name ILIKE ? OR oib ILIKE ? OR city ILIKE ?", like, like, like)
		}

		var clients []models.Client
		if err := dbq.Order("name asc").Find(&clients).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Kupci se ne mogu dohvatiti")
		}
		return c.JSON(clients)
	}
}

// GET /api/clients/:id
func GetClientHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Neispravan ID")
		}
		var client models.Client
		if err := database.DB.First(&client, id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Kupac nije pronađen")
		}
		return c.JSON(client)
	}
}

// PUT /api/clients/:id
func UpdateClientHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, userName, err := auth.UserInfo(c)
		if err != nil {
			return err
		}

		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Neispravan ID")
		}

		var client models.Client
		if err := database.DB.First(&client, id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Kupac nije pronađen")
		}
		before := client

		var body clientBody
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Neispravan zahtjev")
		}
		if body.Name != nil && *body.Name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Naziv kupca ne može biti prazan")
		}
		body.apply(&client)

		if err := database.DB.Save(&client).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Kupac se ne može spremiti")
		}

		_ = audit.WriteLog(audit.LogOptions{
			UserID: userID, UserName: userName,
			EntityType: "client", EntityID: client.ID,
			Action: models.AuditActionUpdate,
			Before: before, After: client,
		})

		return c.JSON(client)
	}
}

// DELETE /api/clients/:id (soft delete, zapis ide u koš)
func DeleteClientHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, userName, err := auth.UserInfo(c)
		if err != nil {
			return err
		}

		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Neispravan ID")
		}

		var client models.Client
		if err := database.DB.First(&client, id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Kupac nije pronađen")
		}

		if err := database.DB.Delete(&client).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Kupac se ne može obrisati")
		}

		_ = audit.WriteLog(audit.LogOptions{
			UserID: userID, UserName: userName,
			EntityType: "client", EntityID: client.ID,
			Action: models.AuditActionDelete,
			Before: client,
		})

		return c.JSON(fiber.Map{"message": "Kupac premješten u koš"})
	}
}

// GET /api/clients/trash
func ListTrashedClientsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var clients []models.Client
		if err := database.DB.Unscoped().
			Where("deleted_at IS NOT NULL").
			Order("deleted_at desc").
			Find(&clients).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Koš se ne može dohvatiti")
		}
		return c.JSON(clients)
	}
}

// POST /api/clients/:id/restore
func RestoreClientHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, userName, err := auth.UserInfo(c)
		if err != nil {
			return err
		}

		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Neispravan ID")
		}

		var client models.Client
		if err := database.DB.Unscoped().
			Where("deleted_at IS NOT NULL").
			First(&client, id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Kupac nije pronađen u košu")
		}

		if err := database.DB.Unscoped().Model(&client).
			Update("deleted_at", nil).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Kupac se ne može vratiti")
		}

		_ = audit.WriteLog(audit.LogOptions{
			UserID: userID, UserName: userName,
			EntityType: "client", EntityID: client.ID,
			Action: models.AuditActionRestore,
		})

		return c.JSON(fiber.Map{"message": "Kupac vraćen iz koša"})
	}
}
