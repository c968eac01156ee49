package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/jhoicas/picking-api/internal/application/inventory"
	"github.com/jhoicas/picking-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	MoveUC    *inventory.MoveUseCase
	StockUC   *usecase.StockUseCase
	AuditUC   *usecase.AuditUseCase
	ProductUC *usecase.ProductUseCase // nil = sin rutas de catálogo
	JWTSecret string
	JWTIssuer string
	Logger    zerolog.Logger
	Gatherer  prometheus.Gatherer // nil = sin /metrics
}

// Router registra middlewares de observabilidad y las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Use(TracingMiddleware(), LoggingMiddleware(deps.Logger))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	if deps.Gatherer != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})))
	}

	// Rutas protegidas (requieren Bearer Token)
	api := app.Group("/api", AuthMiddleware(deps.JWTSecret, deps.JWTIssuer), RequireRole(RoleOperator))

	moveHandler := NewMoveHandler(deps.MoveUC)
	moves := api.Group("/moves")
	moves.Post("/", moveHandler.Create)
	moves.Get("/", moveHandler.List)
	moves.Get("/:id", moveHandler.GetByID)
	moves.Post("/:id/confirm", moveHandler.Confirm)

	stockHandler := NewStockHandler(deps.StockUC)
	stock := api.Group("/stock")
	stock.Get("/", stockHandler.List)
	stock.Get("/:item_code/:location", stockHandler.Get)

	auditHandler := NewAuditHandler(deps.AuditUC)
	api.Get("/audit", RequireRole(RoleSupervisor), auditHandler.List)

	if deps.ProductUC != nil {
		productHandler := NewProductHandler(deps.ProductUC)
		products := api.Group("/products")
		products.Put("/", RequireRole(RoleAdmin), productHandler.Register)
		products.Get("/:item_code", productHandler.Get)
	}
}
