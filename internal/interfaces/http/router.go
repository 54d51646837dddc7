package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/datco/erp-demo-api/internal/application/auth"
	"github.com/datco/erp-demo-api/internal/application/dataset"
	"github.com/datco/erp-demo-api/internal/application/report"
	"github.com/datco/erp-demo-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	DatasetUC *dataset.UseCase
	ReportUC  *report.UseCase
	AuthUC    *auth.UseCase
	JWTSecret string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Dataset (protegido)
	datasetHandler := NewDatasetHandler(deps.DatasetUC)
	protected.Get("/customers", datasetHandler.Customers)
	protected.Get("/sales-orders", datasetHandler.SalesOrders)
	protected.Get("/production-orders", datasetHandler.ProductionOrders)
	protected.Get("/shipments", datasetHandler.Shipments)
	protected.Get("/material-inbounds", datasetHandler.MaterialInbounds)
	protected.Get("/inventory", datasetHandler.Inventory)
	protected.Get("/suppliers", datasetHandler.Suppliers)
	protected.Get("/purchase-orders", datasetHandler.PurchaseOrders)

	ds := protected.Group("/dataset")
	ds.Get("/summary", datasetHandler.Summary)
	ds.Post("/regenerate", RequireRole(entity.RoleAdmin), datasetHandler.Regenerate)

	// Nómina y contabilidad solo para admin y manager
	sensitive := RequireRole(entity.RoleAdmin, entity.RoleManager)
	protected.Get("/payroll", sensitive, datasetHandler.Payroll)
	protected.Get("/accounting", sensitive, datasetHandler.Accounting)

	// Reportes (protegido)
	reports := protected.Group("/reports")
	timelineHandler := NewTimelineHandler(deps.ReportUC)
	reports.Get("/timeline", timelineHandler.Timeline)
	reports.Get("/range", timelineHandler.Range)

	// Consultas puntuales (protegido)
	q := protected.Group("/query")
	queryHandler := NewQueryHandler(deps.DatasetUC)
	q.Get("/by-company", queryHandler.ByCompany)
	q.Get("/by-date", queryHandler.ByDate)
	q.Get("/by-product", queryHandler.ByProduct)

	// Permisos (solo admin)
	protected.Get("/permissions", RequireRole(entity.RoleAdmin), authHandler.ListUsers)
}
