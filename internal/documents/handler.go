package documents

import (
	"time"

	"stolarija-backend/internal/audit"
	"stolarija-backend/internal/auth"
	"stolarija-backend/internal/database"
	"stolarija-backend/internal/models"
	"stolarija-backend/internal/money"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ItemRequest struct {
	Name            string  `json:"name"`
	Code            string  `json:"code"`
	Unit            string  `json:"unit"`
	Quantity        float64 `json:"quantity"`
	UnitPrice       float64 `json:"unit_price"`
	DiscountPercent float64 `json:"discount_percent"`
	TaxPercent      float64 `json:"tax_percent"`
}

type ArticleRequest struct {
	Title    string `json:"title"`
	Body     string `json:"body"`
	Selected *bool  `json:"selected"`
}

type CreateDocumentRequest struct {
	Type            models.DocumentType `json:"type"`
	Date            string              `json:"date"` // "2026-03-15"
	BuyerName       string              `json:"buyer_name"`
	BuyerAddress    string              `json:"buyer_address"`
	BuyerOIB        string              `json:"buyer_oib"`
	BuyerPhone      string              `json:"buyer_phone"`
	BuyerEmail      string              `json:"buyer_email"`
	BuyerContact    string              `json:"buyer_contact"`
	DeliveryAddress string              `json:"delivery_address"`

	AdvanceAmount  *float64 `json:"advance_amount"`
	WarrantyMonths *int     `json:"warranty_months"`
	Place          string   `json:"place"`

	ComplaintSupplier string `json:"complaint_supplier"`
	PickupLocation    string `json:"pickup_location"`

	Notes      string `json:"notes"`
	PreparedBy string `json:"prepared_by"`
	TemplateID *uint  `json:"template_id"`

	Items    []ItemRequest    `json:"items"`
	Articles []ArticleRequest `json:"articles"`
}

type UpdateDocumentRequest struct {
	Date            *string `json:"date"`
	BuyerName       *string `json:"buyer_name"`
	BuyerAddress    *string `json:"buyer_address"`
	BuyerOIB        *string `json:"buyer_oib"`
	BuyerPhone      *string `json:"buyer_phone"`
	BuyerEmail      *string `json:"buyer_email"`
	BuyerContact    *string `json:"buyer_contact"`
	DeliveryAddress *string `json:"delivery_address"`

	AdvanceAmount  *float64 `json:"advance_amount"`
	WarrantyMonths *int     `json:"warranty_months"`
	Place          *string  `json:"place"`

	ComplaintSupplier *string `json:"complaint_supplier"`
	PickupLocation    *string `json:"pickup_location"`

	Notes      *string `json:"notes"`
	PreparedBy *string `json:"prepared_by"`
	TemplateID *uint   `json:"template_id"`
}

// buildItems: preračunava stavke na serveru, klijentske iznose ignoriramo
func buildItems(docID uint, reqs []ItemRequest) ([]models.DocumentItem, float64) {
	items := make([]models.DocumentItem, 0, len(reqs))
	total := 0.0
	for i, r := range reqs {
		lt := money.ComputeLine(r.Quantity, r.UnitPrice, r.DiscountPercent, r.TaxPercent)
		items = append(items, models.DocumentItem{
			DocumentID:      docID,
			Name:            r.Name,
			Code:            r.Code,
			Unit:            r.Unit,
			Quantity:        r.Quantity,
			UnitPrice:       r.UnitPrice,
			DiscountPercent: r.DiscountPercent,
			TaxPercent:      r.TaxPercent,
			Subtotal:        lt.Subtotal,
			Total:           lt.Total,
			SortOrder:       i + 1,
		})
		total += lt.Total
	}
	return items, money.Round2(total)
}

// buildArticles: članci ugovora uvijek dobivaju gust niz brojeva 1..N
func buildArticles(docID uint, reqs []ArticleRequest) []models.ContractArticle {
	articles := make([]models.ContractArticle, 0, len(reqs))
	n := 0
	for _, r := range reqs {
		selected := true
		if r.Selected != nil {
			selected = *r.Selected
		}
		n++
		articles = append(articles, models.ContractArticle{
			DocumentID:    docID,
			ArticleNumber: n,
			Title:         r.Title,
			Body:          r.Body,
			Selected:      selected,
		})
	}
	return articles
}

func parseDate(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}

// POST /api/documents
// Dokument, stavke i članci spremaju se u jednoj transakciji zajedno s
// dodjelom broja: ili prođe sve ili ništa.
func CreateDocumentHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, userName, err := auth.UserInfo(c)
		if err != nil {
			return err
		}

		var body CreateDocumentRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Neispravno tijelo zahtjeva")
		}

		if !body.Type.Valid() {
			return fiber.NewError(fiber.StatusBadRequest, "Nepoznat tip dokumenta")
		}
		if body.BuyerName == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Ime kupca je obavezno")
		}

		date := time.Now()
		if body.Date != "" {
			parsed, err := parseDate(body.Date)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Neispravan datum, očekivan oblik YYYY-MM-DD")
			}
			date = parsed
		}

		warranty := 24
		if body.WarrantyMonths != nil {
			warranty = *body.WarrantyMonths
		}

		doc := models.Document{
			Type:              body.Type,
			Date:              date,
			Status:            models.StatusDraft,
			BuyerName:         body.BuyerName,
			BuyerAddress:      body.BuyerAddress,
			BuyerOIB:          body.BuyerOIB,
			BuyerPhone:        body.BuyerPhone,
			BuyerEmail:        body.BuyerEmail,
			BuyerContact:      body.BuyerContact,
			DeliveryAddress:   body.DeliveryAddress,
			AdvanceAmount:     body.AdvanceAmount,
			WarrantyMonths:    warranty,
			Place:             body.Place,
			ComplaintSupplier: body.ComplaintSupplier,
			PickupLocation:    body.PickupLocation,
			Notes:             body.Notes,
			PreparedBy:        body.PreparedBy,
			TemplateID:        body.TemplateID,
		}

		err = database.DB.Transaction(func(tx *gorm.DB) error {
			number, err := NextNumber(tx, body.Type)
			if err != nil {
				return err
			}
			doc.Number = number

			items, total := buildItems(0, body.Items)
			doc.TotalAmount = total

			if err := tx.Create(&doc).Error; err != nil {
				return err
			}

			for i := range items {
				items[i].DocumentID = doc.ID
			}
			if len(items) > 0 {
				if err := tx.Create(&items).Error; err != nil {
					return err
				}
			}

			articles := buildArticles(doc.ID, body.Articles)
			if len(articles) > 0 {
				if err := tx.Create(&articles).Error; err != nil {
					return err
				}
			}

			return nil
		})
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Dokument se ne može spremiti")
		}

		_ = audit.WriteLog(audit.LogOptions{
			UserID: userID, UserName: userName,
			EntityType: "document", EntityID: doc.ID,
			Action:      models.AuditActionCreate,
			Description: string(doc.Type),
			After:       doc,
		})

		return c.Status(fiber.StatusCreated).JSON(documentResponse(&doc))
	}
}

// GET /api/documents?type=ponuda&status=draft&q=horvat
func ListDocumentsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		dbq := database.DB.Model(&models.Document{})

		if t := c.Query("type"); t != "" {
			dbq = dbq.Where("type = ?", t)
		}
		if s := c.Query("status"); s != "" {
			dbq = dbq.Where("status = ?", s)
		}
		if q := c.Query("q"); q != "" {
			dbq = dbq.Where("buyer_name ILIKE ?", "%"+q+"%")
		}

		var docs []models.Document
		if err := dbq.Order("date desc, number desc").Find(&docs).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Dokumenti se ne mogu dohvatiti")
		}

		res := make([]fiber.Map, 0, len(docs))
		for i := range docs {
			res = append(res, documentResponse(&docs[i]))
		}
		return c.JSON(res)
	}
}

// GET /api/documents/:id
func GetDocumentHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		doc, err := loadDocument(c)
		if err != nil {
			return err
		}
		return c.JSON(documentDetailResponse(doc))
	}
}

// PUT /api/documents/:id
func UpdateDocumentHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, userName, err := auth.UserInfo(c)
		if err != nil {
			return err
		}

		doc, err := loadDocument(c)
		if err != nil {
			return err
		}
		before := *doc

		var body UpdateDocumentRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Neispravno tijelo zahtjeva")
		}

		if body.Date != nil {
			parsed, err := parseDate(*body.Date)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Neispravan datum, očekivan oblik YYYY-MM-DD")
			}
			doc.Date = parsed
		}
		if body.BuyerName != nil {
			if *body.BuyerName == "" {
				return fiber.NewError(fiber.StatusBadRequest, "Ime kupca je obavezno")
			}
			doc.BuyerName = *body.BuyerName
		}
		if body.BuyerAddress != nil {
			doc.BuyerAddress = *body.BuyerAddress
		}
		if body.BuyerOIB != nil {
			doc.BuyerOIB = *body.BuyerOIB
		}
		if body.BuyerPhone != nil {
			doc.BuyerPhone = *body.BuyerPhone
		}
		if body.BuyerEmail != nil {
			doc.BuyerEmail = *body.BuyerEmail
		}
		if body.BuyerContact != nil {
			doc.BuyerContact = *body.BuyerContact
		}
		if body.DeliveryAddress != nil {
			doc.DeliveryAddress = *body.DeliveryAddress
		}
		if body.AdvanceAmount != nil {
			doc.AdvanceAmount = body.AdvanceAmount
		}
		if body.WarrantyMonths != nil {
			doc.WarrantyMonths = *body.WarrantyMonths
		}
		if body.Place != nil {
			doc.Place = *body.Place
		}
		if body.ComplaintSupplier != nil {
			doc.ComplaintSupplier = *body.ComplaintSupplier
		}
		if body.PickupLocation != nil {
			doc.PickupLocation = *body.PickupLocation
		}
		if body.Notes != nil {
			doc.Notes = *body.Notes
		}
		if body.PreparedBy != nil {
			doc.PreparedBy = *body.PreparedBy
		}
		if body.TemplateID != nil {
			doc.TemplateID = body.TemplateID
		}

		if err := database.DB.Save(doc).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Dokument se ne može ažurirati")
		}

		_ = audit.WriteLog(audit.LogOptions{
			UserID: userID, UserName: userName,
			EntityType: "document", EntityID: doc.ID,
			Action: models.AuditActionUpdate,
			Before: before, After: doc,
		})

		return c.JSON(documentResponse(doc))
	}
}

// PATCH /api/documents/:id/status
func ChangeStatusHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		doc, err := loadDocument(c)
		if err != nil {
			return err
		}

		var body struct {
			Status models.DocumentStatus `json:"status"`
		}
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Neispravno tijelo zahtjeva")
		}
		if !body.Status.Valid() {
			return fiber.NewError(fiber.StatusBadRequest, "Nepoznat status")
		}

		doc.Status = body.Status
		if err := database.DB.Save(doc).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Status se ne može promijeniti")
		}

		return c.JSON(documentResponse(doc))
	}
}

// loadDocument: dohvat po :id, bez dokumenata u kanti
func loadDocument(c *fiber.Ctx) (*models.Document, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Neispravan ID dokumenta")
	}

	var doc models.Document
	if err := database.DB.
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order asc") }).
		Preload("Articles", func(db *gorm.DB) *gorm.DB { return db.Order("article_number asc") }).
		Preload("Template").
		First(&doc, "id = ?", id).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Dokument nije pronađen")
	}
	return &doc, nil
}

func documentResponse(doc *models.Document) fiber.Map {
	return fiber.Map{
		"id":           doc.ID,
		"type":         doc.Type,
		"number":       doc.Number,
		"display_number": DisplayNumber(doc),
		"date":         doc.Date.Format("2006-01-02"),
		"status":       doc.Status,
		"buyer_name":   doc.BuyerName,
		"buyer_oib":    doc.BuyerOIB,
		"total_amount": doc.TotalAmount,
		"prepared_by":  doc.PreparedBy,
	}
}

func documentDetailResponse(doc *models.Document) fiber.Map {
	res := documentResponse(doc)
	res["buyer_address"] = doc.BuyerAddress
	res["buyer_phone"] = doc.BuyerPhone
	res["buyer_email"] = doc.BuyerEmail
	res["buyer_contact"] = doc.BuyerContact
	res["delivery_address"] = doc.DeliveryAddress
	res["advance_amount"] = doc.AdvanceAmount
	res["warranty_months"] = doc.WarrantyMonths
	res["place"] = doc.Place
	res["complaint_supplier"] = doc.ComplaintSupplier
	res["pickup_location"] = doc.PickupLocation
	res["notes"] = doc.Notes
	res["template_id"] = doc.TemplateID

	items := make([]fiber.Map, 0, len(doc.Items))
	for _, it := range doc.Items {
		items = append(items, fiber.Map{
			"id":               it.ID,
			"name":             it.Name,
			"code":             it.Code,
			"unit":             it.Unit,
			"quantity":         it.Quantity,
			"unit_price":       it.UnitPrice,
			"discount_percent": it.DiscountPercent,
			"tax_percent":      it.TaxPercent,
			"subtotal":         it.Subtotal,
			"total":            it.Total,
		})
	}
	res["items"] = items

	articles := make([]fiber.Map, 0, len(doc.Articles))
	for _, a := range doc.Articles {
		articles = append(articles, fiber.Map{
			"id":             a.ID,
			"article_number": a.ArticleNumber,
			"title":          a.Title,
			"body":           a.Body,
			"selected":       a.Selected,
		})
	}
	res["articles"] = articles

	return res
}
