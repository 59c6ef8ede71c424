package main

import (
	"log"
	"strings"

	"stolarija-backend/internal/articles"
	"stolarija-backend/internal/audit"
	"stolarija-backend/internal/auth"
	"stolarija-backend/internal/clients"
	"stolarija-backend/internal/config"
	"stolarija-backend/internal/database"
	"stolarija-backend/internal/documents"
	"stolarija-backend/internal/employees"
	"stolarija-backend/internal/models"
	"stolarija-backend/internal/mosquitonets"
	"stolarija-backend/internal/pdf"
	"stolarija-backend/internal/settings"
	"stolarija-backend/internal/suppliers"
	"stolarija-backend/internal/templates"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	cfg := config.Load()
	database.Init(cfg)

	app := fiber.New(fiber.Config{
		BodyLimit: 20 * 1024 * 1024, // učitavanje Excel datoteka i dokumenata radnika
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"error": e.Message,
				})
			}
			log.Println("Neočekivana greška:", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Neočekivana greška poslužitelja",
			})
		},
	})

	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	api := app.Group("/api")

	// Public auth
	api.Post("/auth/register-admin", auth.RegisterAdminHandler(cfg))
	api.Post("/auth/login", auth.LoginHandler(cfg))

	// Protected
	protected := api.Group("")
	protected.Use(auth.JWTMiddleware(cfg))

	protected.Get("/auth/me", auth.MeHandler())

	// Admin
	adminRoutes := protected.Group("/admin")
	adminRoutes.Use(auth.RequireRole(models.RoleAdmin))
	adminRoutes.Post("/users", auth.CreateUserHandler())
	adminRoutes.Get("/audit-logs", audit.ListAuditLogsHandler())

	// Kupci
	protected.Post("/clients", clients.CreateClientHandler())
	protected.Get("/clients", clients.ListClientsHandler())
	protected.Get("/clients/trash", clients.ListTrashedClientsHandler())
	protected.Get("/clients/duplicates", clients.FindDuplicatesHandler())
	protected.Post("/clients/duplicates/cleanup", clients.CleanupDuplicatesHandler())
	protected.Post("/clients/import", clients.ImportClientsHandler())
	protected.Get("/clients/:id", clients.GetClientHandler())
	protected.Put("/clients/:id", clients.UpdateClientHandler())
	protected.Delete("/clients/:id", clients.DeleteClientHandler())
	protected.Post("/clients/:id/restore", clients.RestoreClientHandler())

	// Dobavljači
	protected.Post("/suppliers", suppliers.CreateSupplierHandler())
	protected.Get("/suppliers", suppliers.ListSuppliersHandler())
	protected.Get("/suppliers/trash", suppliers.ListTrashedSuppliersHandler())
	protected.Get("/suppliers/duplicates", suppliers.FindDuplicatesHandler())
	protected.Post("/suppliers/duplicates/cleanup", suppliers.CleanupDuplicatesHandler())
	protected.Post("/suppliers/import", suppliers.ImportSuppliersHandler())
	protected.Get("/suppliers/:id", suppliers.GetSupplierHandler())
	protected.Put("/suppliers/:id", suppliers.UpdateSupplierHandler())
	protected.Delete("/suppliers/:id", suppliers.DeleteSupplierHandler())
	protected.Post("/suppliers/:id/restore", suppliers.RestoreSupplierHandler())

	// Artikli
	protected.Post("/articles", articles.CreateArticleHandler())
	protected.Get("/articles", articles.ListArticlesHandler())
	protected.Get("/articles/trash", articles.ListTrashedArticlesHandler())
	protected.Post("/articles/import", articles.ImportArticlesHandler())
	protected.Get("/articles/:id", articles.GetArticleHandler())
	protected.Put("/articles/:id", articles.UpdateArticleHandler())
	protected.Delete("/articles/:id", articles.DeleteArticleHandler())
	protected.Post("/articles/:id/restore", articles.RestoreArticleHandler())

	// Dokumenti
	protected.Post("/documents", documents.CreateDocumentHandler())
	protected.Get("/documents", documents.ListDocumentsHandler())
	protected.Get("/documents/trash", documents.ListTrashedDocumentsHandler())
	protected.Get("/documents/:id", documents.GetDocumentHandler())
	protected.Put("/documents/:id", documents.UpdateDocumentHandler())
	protected.Delete("/documents/:id", documents.DeleteDocumentHandler())
	protected.Post("/documents/:id/restore", documents.RestoreDocumentHandler())
	protected.Delete("/documents/:id/purge", documents.PurgeDocumentHandler())
	protected.Put("/documents/:id/status", documents.ChangeStatusHandler())
	protected.Put("/documents/:id/items", documents.ReplaceItemsHandler())
	protected.Put("/documents/:id/articles", documents.ReplaceArticlesHandler())
	protected.Post("/documents/:id/articles/reorder", documents.ReorderArticlesHandler())
	protected.Post("/documents/:id/copy", documents.CopyDocumentHandler())
	protected.Post("/documents/:id/convert", documents.ConvertDocumentHandler())
	protected.Get("/documents/:id/render", documents.RenderHandler())
	protected.Get("/documents/:id/pdf", pdf.DocumentPDFHandler())
	protected.Put("/documents/:id/mosquito-items", mosquitonets.ReplaceQuoteItemsHandler())
	protected.Get("/documents/:id/mosquito-items", mosquitonets.ListQuoteItemsHandler())

	// Predlošci dokumenata
	protected.Post("/templates", templates.CreateTemplateHandler())
	protected.Get("/templates", templates.ListTemplatesHandler())
	protected.Put("/templates/:id", templates.UpdateTemplateHandler())
	protected.Delete("/templates/:id", templates.DeleteTemplateHandler())

	// Predlošci članaka ugovora
	protected.Post("/contract-articles", templates.CreateContractArticleHandler())
	protected.Get("/contract-articles", templates.ListContractArticlesHandler())
	protected.Put("/contract-articles/:id", templates.UpdateContractArticleHandler())
	protected.Delete("/contract-articles/:id", templates.DeleteContractArticleHandler())

	// Predlošci izgleda ugovora
	protected.Post("/contract-layouts", templates.CreateLayoutHandler())
	protected.Get("/contract-layouts", templates.ListLayoutsHandler())
	protected.Put("/contract-layouts/:id", templates.UpdateLayoutHandler())
	protected.Delete("/contract-layouts/:id", templates.DeleteLayoutHandler())
	protected.Post("/contract-layouts/:id/preview", templates.PreviewLayoutHandler())

	// Radnici
	protected.Post("/employees", employees.CreateEmployeeHandler())
	protected.Get("/employees", employees.ListEmployeesHandler())
	protected.Get("/employees/:id", employees.GetEmployeeHandler())
	protected.Put("/employees/:id", employees.UpdateEmployeeHandler())
	protected.Delete("/employees/:id", employees.DeleteEmployeeHandler())
	protected.Post("/employees/:id/leave-requests", employees.CreateLeaveRequestHandler())
	protected.Get("/employees/:id/leave-requests", employees.ListLeaveRequestsHandler())
	protected.Post("/employees/:id/sick-leaves", employees.CreateSickLeaveHandler())
	protected.Get("/employees/:id/sick-leaves", employees.ListSickLeavesHandler())
	protected.Post("/employees/:id/clothing", employees.CreateClothingHandler())
	protected.Get("/employees/:id/clothing", employees.ListClothingHandler())
	protected.Post("/employees/:id/documents", employees.UploadEmployeeDocumentHandler(cfg))
	protected.Get("/employees/:id/documents", employees.ListEmployeeDocumentsHandler())

	protected.Put("/leave-requests/:id/status", employees.ChangeLeaveStatusHandler())
	protected.Delete("/leave-requests/:id", employees.DeleteLeaveRequestHandler())
	protected.Get("/leave-requests/:id/pdf", pdf.LeavePDFHandler())
	protected.Delete("/sick-leaves/:id", employees.DeleteSickLeaveHandler())
	protected.Delete("/clothing/:id", employees.DeleteClothingHandler())
	protected.Get("/employee-documents/:id/download", employees.DownloadEmployeeDocumentHandler(cfg))
	protected.Delete("/employee-documents/:id", employees.DeleteEmployeeDocumentHandler(cfg))

	// Praznici
	protected.Get("/holidays", employees.ListHolidaysHandler())
	protected.Post("/holidays", employees.CreateHolidayHandler())
	protected.Delete("/holidays/:id", employees.DeleteHolidayHandler())

	// Komarnici
	protected.Post("/mosquito-nets/products", mosquitonets.CreateProductHandler())
	protected.Get("/mosquito-nets/products", mosquitonets.ListProductsHandler())
	protected.Put("/mosquito-nets/products/:id", mosquitonets.UpdateProductHandler())
	protected.Delete("/mosquito-nets/products/:id", mosquitonets.DeleteProductHandler())
	protected.Get("/mosquito-nets/locations", mosquitonets.ListLocationsHandler())
	protected.Post("/mosquito-nets/locations", mosquitonets.CreateLocationHandler())
	protected.Delete("/mosquito-nets/locations/:id", mosquitonets.DeleteLocationHandler())

	// Postavke tvrtke
	protected.Get("/settings", settings.GetSettingsHandler())
	protected.Put("/settings", settings.UpdateSettingsHandler())
	protected.Post("/settings/branding", settings.UploadBrandingHandler())

	log.Printf("Poslužitelj sluša na portu %s", cfg.HTTPPort)
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		log.Fatalf("Poslužitelj se ne može pokrenuti: %v", err)
	}
}
