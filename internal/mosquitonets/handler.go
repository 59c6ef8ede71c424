package mosquitonets

import (
	"stolarija-backend/internal/database"
	"stolarija-backend/internal/models"
	"stolarija-backend/internal/money"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ItemPrice: površina u m2 puta cjenik, po komadu, uz minimalnu cijenu
func ItemPrice(widthCM, heightCM float64, quantity int, product *models.MosquitoNetProduct) float64 {
	area := (widthCM / 100) * (heightCM / 100)
	perPiece := money.Round2(area * product.PricePerM2)
	if perPiece < product.MinimumPrice {
		perPiece = product.MinimumPrice
	}
	return money.Round2(perPiece * float64(quantity))
}

// POST /api/mosquito-nets/products
func CreateProductHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body struct {
			Name         string  `json:"name"`
			PricePerM2   float64 `json:"price_per_m2"`
			MinimumPrice float64 `json:"minimum_price"`
			Notes        string  `json:"notes"`
		}
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Neispravan zahtjev")
		}
		if body.Name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Naziv proizvoda je obavezan")
		}
		if body.PricePerM2 < 0 || body.MinimumPrice < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Cijena ne može biti negativna")
		}

		product := models.MosquitoNetProduct{
			Name:         body.Name,
			PricePerM2:   body.PricePerM2,
			MinimumPrice: body.MinimumPrice,
			Notes:        body.Notes,
		}
		if err := database.DB.Create(&product).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Proizvod se ne može spremiti")
		}
		return c.Status(fiber.StatusCreated).JSON(product)
	}
}

// GET /api/mosquito-nets/products
func ListProductsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var products []models.MosquitoNetProduct
		if err := database.DB.Order("name asc").Find(&products).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Proizvodi se ne mogu dohvatiti")
		}
		return c.JSON(products)
	}
}

// PUT /api/mosquito-nets/products/:id
func UpdateProductHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Neispravan ID")
		}

		var product models.MosquitoNetProduct
		if err := database.DB.First(&product, id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Proizvod nije pronađen")
		}

		var body struct {
			Name         *string  `json:"name"`
			PricePerM2   *float64 `json:"price_per_m2"`
			MinimumPrice *float64 `json:"minimum_price"`
			Notes        *string  `json:"notes"`
		}
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Neispravan zahtjev")
		}
		if body.Name != nil {
			if *body.Name == "" {
				return fiber.NewError(fiber.StatusBadRequest, "Naziv proizvoda ne može biti prazan")
			}
			product.Name = *body.Name
		}
		if body.PricePerM2 != nil {
			product.PricePerM2 = *body.PricePerM2
		}
		if body.MinimumPrice != nil {
			product.MinimumPrice = *body.MinimumPrice
		}
		if body.Notes != nil {
			product.Notes = *body.Notes
		}

		if err := database.DB.Save(&product).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Proizvod se ne može spremiti")
		}
		return c.JSON(product)
	}
}

// DELETE /api/mosquito-nets/products/:id
func DeleteProductHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Neispravan ID")
		}
		result := database.DB.Delete(&models.MosquitoNetProduct{}, id)
		if result.Error != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Proizvod se ne može obrisati")
		}
		if result.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Proizvod nije pronađen")
		}
		return c.JSON(fiber.Map{"message": "Proizvod obrisan"})
	}
}

// GET /api/mosquito-nets/locations
func ListLocationsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var locations []models.MosquitoNetLocation
		if err := database.DB.Order("sort_order asc, name asc").Find(&locations).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Pozicije se ne mogu dohvatiti")
		}
		return c.JSON(locations)
	}
}

// POST /api/mosquito-nets/locations
func CreateLocationHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body struct {
			Name      string `json:"name"`
			SortOrder int    `json:"sort_order"`
		}
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Neispravan zahtjev")
		}
		if body.Name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Naziv pozicije je obavezan")
		}

		location := models.MosquitoNetLocation{Name: body.Name, SortOrder: body.SortOrder}
		if err := database.DB.Create(&location).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Pozicija se ne može spremiti")
		}
		return c.Status(fiber.StatusCreated).JSON(location)
	}
}

// DELETE /api/mosquito-nets/locations/:id
func DeleteLocationHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Neispravan ID")
		}
		result := database.DB.Delete(&models.MosquitoNetLocation{}, id)
		if result.Error != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Pozicija se ne može obrisati")
		}
		if result.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Pozicija nije pronađena")
		}
		return c.JSON(fiber.Map{"message": "Pozicija obrisana"})
	}
}

type quoteItemBody struct {
	ProductID  uint    `json:"product_id"`
	LocationID *uint   `json:"location_id"`
	WidthCM    float64 `json:"width_cm"`
	HeightCM   float64 `json:"height_cm"`
	Quantity   int     `json:"quantity"`
}

// PUT /api/documents/:id/mosquito-items
// Zamjenjuje sve izmjere dokumenta, cijene se računaju na poslužitelju.
func ReplaceQuoteItemsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		documentID, err := c.ParamsInt("id")
		if err != nil || documentID <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Neispravan ID")
		}

		var doc models.Document
		if err := database.DB.First(&doc, documentID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Dokument nije pronađen")
		}

		var body struct {
			Items []quoteItemBody `json:"items"`
		}
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Neispravan zahtjev")
		}

		items := make([]models.MosquitoNetQuoteItem, 0, len(body.Items))
		for _, in := range body.Items {
			if in.WidthCM <= 0 || in.HeightCM <= 0 {
				return fiber.NewError(fiber.StatusBadRequest, "Dimenzije moraju biti veće od nule")
			}
			quantity := in.Quantity
			if quantity <= 0 {
				quantity = 1
			}

			var product models.MosquitoNetProduct
			if err := database.DB.First(&product, in.ProductID).Error; err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Proizvod nije pronađen")
			}

			items = append(items, models.MosquitoNetQuoteItem{
				DocumentID: doc.ID,
				ProductID:  product.ID,
				LocationID: in.LocationID,
				WidthCM:    in.WidthCM,
				HeightCM:   in.HeightCM,
				Quantity:   quantity,
				Price:      ItemPrice(in.WidthCM, in.HeightCM, quantity, &product),
			})
		}

		err = database.DB.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("document_id = ?", doc.ID).
				Delete(&models.MosquitoNetQuoteItem{}).Error; err != nil {
				return err
			}
			if len(items) > 0 {
				return tx.Create(&items).Error
			}
			return nil
		})
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Izmjere se ne mogu spremiti")
		}

		return c.JSON(items)
	}
}

// GET /api/documents/:id/mosquito-items
func ListQuoteItemsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		documentID, err := c.ParamsInt("id")
		if err != nil || documentID <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Neispravan ID")
		}

		var items []models.MosquitoNetQuoteItem
		if err := database.DB.
			Preload("Product").
			Preload("Location").
			Where("document_id = ?", documentID).
			Order("id asc").
			Find(&items).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Izmjere se ne mogu dohvatiti")
		}
		return c.JSON(items)
	}
}
