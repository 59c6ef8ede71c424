package settings

import (
	"io"

	"stolarija-backend/internal/database"
	"stolarija-backend/internal/models"
	"stolarija-backend/internal/sanitize"

	"github.com/gofiber/fiber/v2"
)

// GetOrCreate: postavke tvrtke su jedan red; kreira se s default
// vrijednostima pri prvom dohvatu
func GetOrCreate() (*models.CompanySettings, error) {
	var s models.CompanySettings
	err := database.DB.First(&s).Error
	if err == nil {
		return &s, nil
	}

	s = models.CompanySettings{
		Name:            "Moja tvrtka d.o.o.",
		HeaderPaddingMM: 10,
		FooterPaddingMM: 10,
	}
	if err := database.DB.Create(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

type UpdateSettingsRequest struct {
	Name       *string `json:"name"`
	Address    *string `json:"address"`
	City       *string `json:"city"`
	PostalCode *string `json:"postal_code"`
	OIB        *string `json:"oib"`
	IBAN       *string `json:"iban"`
	BankName   *string `json:"bank_name"`
	SWIFT      *string `json:"swift"`
	Phone      *string `json:"phone"`
	Mobile     *string `json:"mobile"`
	Email      *string `json:"email"`
	Web        *string `json:"web"`
	Director   *string `json:"director"`
	CourtReg   *string `json:"court_reg"`

	HeaderPaddingMM *float64 `json:"header_padding_mm"`
	FooterPaddingMM *float64 `json:"footer_padding_mm"`
}

// GET /api/settings
func GetSettingsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		s, err := GetOrCreate()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Postavke se ne mogu dohvatiti")
		}
		return c.JSON(s)
	}
}

// PUT /api/settings
func UpdateSettingsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		s, err := GetOrCreate()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Postavke se ne mogu dohvatiti")
		}

		var body UpdateSettingsRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Neispravno tijelo zahtjeva")
		}

		if body.Name != nil {
			if *body.Name == "" {
				return fiber.NewError(fiber.StatusBadRequest, "Naziv tvrtke je obavezan")
			}
			s.Name = *body.Name
		}
		if body.Address != nil {
			s.Address = *body.Address
		}
		if body.City != nil {
			s.City = *body.City
		}
		if body.PostalCode != nil {
			s.PostalCode = *body.PostalCode
		}
		if body.OIB != nil {
			s.OIB = *body.OIB
		}
		if body.IBAN != nil {
			s.IBAN = *body.IBAN
		}
		if body.BankName != nil {
			s.BankName = *body.BankName
		}
		if body.SWIFT != nil {
			s.SWIFT = *body.SWIFT
		}
		if body.Phone != nil {
			s.Phone = *body.Phone
		}
		if body.Mobile != nil {
			s.Mobile = *body.Mobile
		}
		if body.Email != nil {
			s.Email = *body.Email
		}
		if body.Web != nil {
			s.Web = *body.Web
		}
		if body.Director != nil {
			s.Director = *body.Director
		}
		if body.CourtReg != nil {
			s.CourtReg = *body.CourtReg
		}
		if body.HeaderPaddingMM != nil {
			s.HeaderPaddingMM = *body.HeaderPaddingMM
		}
		if body.FooterPaddingMM != nil {
			s.FooterPaddingMM = *body.FooterPaddingMM
		}

		if err := database.DB.Save(s).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Postavke se ne mogu spremiti")
		}

		return c.JSON(s)
	}
}

// POST /api/settings/branding — SVG zaglavlje ili podnožje memoranduma.
// Prima datoteku (multipart polje "file") ili zalijepljeni markup u JSON-u.
func UploadBrandingHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		target := c.Query("target", "header")
		if target != "header" && target != "footer" {
			return fiber.NewError(fiber.StatusBadRequest, "target mora biti 'header' ili 'footer'")
		}

		var raw string

		if fileHeader, err := c.FormFile("file"); err == nil {
			f, err := fileHeader.Open()
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Datoteka se ne može otvoriti")
			}
			defer f.Close()

			buf, err := io.ReadAll(f)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Datoteka se ne može pročitati")
			}
			raw = string(buf)
		} else {
			var body struct {
				SVG string `json:"svg"`
			}
			if err := c.BodyParser(&body); err != nil || body.SVG == "" {
				return fiber.NewError(fiber.StatusBadRequest, "Nedostaje SVG sadržaj")
			}
			raw = body.SVG
		}

		clean, err := sanitize.SVG(raw)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Sadržaj nije valjan SVG")
		}

		s, err := GetOrCreate()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Postavke se ne mogu dohvatiti")
		}

		if target == "header" {
			s.HeaderSVG = clean
		} else {
			s.FooterSVG = clean
		}

		if err := database.DB.Save(s).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "SVG se ne može spremiti")
		}

		return c.JSON(fiber.Map{"message": "SVG je spremljen", "target": target})
	}
}
