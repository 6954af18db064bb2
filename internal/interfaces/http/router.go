package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/cobranzas-api/internal/application/auth"
	"github.com/jhoicas/cobranzas-api/internal/application/clients"
	"github.com/jhoicas/cobranzas-api/internal/application/collections"
	"github.com/jhoicas/cobranzas-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	SummaryUC   *collections.SummaryUseCase
	DashboardUC *collections.DashboardUseCase
	StatementUC *collections.StatementUseCase
	ClientUC    *clients.ClientUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Usuarios (solo admin)
	protected.Post("/users", RequireRole(entity.RoleAdmin), authHandler.CreateUser)

	// Cartera: todas las rutas se acotan al alcance de vendedores del token
	scoped := protected.Group("/", ScopeMiddleware())

	collectionsHandler := NewCollectionsHandler(deps.SummaryUC)
	scoped.Get("/collections/summary", collectionsHandler.Summary)
	scoped.Get("/collections/documents", collectionsHandler.Documents)
	scoped.Get("/collections/documents/overdue", collectionsHandler.Overdue)
	scoped.Get("/collections/documents/:id", collectionsHandler.Document)

	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	scoped.Get("/dashboard/trend", dashboardHandler.Trend)

	clientHandler := NewClientHandler(deps.ClientUC)
	statementHandler := NewStatementHandler(deps.StatementUC)
	scoped.Get("/clients", clientHandler.Search)
	scoped.Get("/clients/:id", clientHandler.GetByID)
	scoped.Get("/clients/:id/summary", clientHandler.Summary)
	scoped.Get("/clients/:id/statement", statementHandler.ClientStatement)
	scoped.Get("/sellers/statement", statementHandler.SellerStatement)
}
