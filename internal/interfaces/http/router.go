package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/openmes/mes-api/internal/application/auth"
	"github.com/openmes/mes-api/internal/application/production"
	"github.com/openmes/mes-api/internal/application/reports"
	"github.com/openmes/mes-api/internal/application/usecase"
	"github.com/openmes/mes-api/internal/domain/entity"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	ProductUC   *usecase.ProductUseCase
	OperationUC *usecase.OperationUseCase
	EmployeeUC  *usecase.EmployeeUseCase
	BOMUC       *usecase.BOMUseCase
	PlanUC      *production.PlanUseCase
	OutputUC    *production.OutputUseCase
	ReportUC    *reports.ReportUseCase
	JWTSecret   string
}

// Router registers the API routes.
//
// Reads on product, operation and BOM master data are public; everything else
// requires a Bearer token. Write access per area: master data and plans need
// Admin or Planner, ledger writes also admit Operator, and the start
// transition is open to all three roles.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	planners := RequireRole(entity.RoleAdmin, entity.RolePlanner)
	producers := RequireRole(entity.RoleAdmin, entity.RolePlanner, entity.RoleOperator)

	// Auth (public)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	authed := AuthMiddleware(deps.JWTSecret)

	// Products (public reads, Admin/Planner writes)
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.Search)
	products.Get("/:code", productHandler.Get)
	products.Post("/", authed, planners, productHandler.Create)
	products.Put("/:code", authed, planners, productHandler.Update)
	products.Delete("/:code", authed, planners, productHandler.Delete)

	// Operations (public reads, Admin/Planner writes)
	operations := api.Group("/operations")
	operationHandler := NewOperationHandler(deps.OperationUC)
	operations.Get("/", operationHandler.List)
	operations.Get("/:code", operationHandler.Get)
	operations.Post("/", authed, planners, operationHandler.Create)
	operations.Put("/:code", authed, planners, operationHandler.Update)
	operations.Delete("/:code", authed, planners, operationHandler.Delete)

	// BOMs (public reads, Admin/Planner writes)
	boms := api.Group("/boms")
	bomHandler := NewBOMHandler(deps.BOMUC)
	boms.Get("/", bomHandler.List)
	boms.Get("/:id", bomHandler.Get)
	boms.Post("/", authed, planners, bomHandler.Create)
	boms.Put("/:id", authed, planners, bomHandler.Update)
	boms.Delete("/:id", authed, planners, bomHandler.Delete)

	// Employees (fully protected)
	employees := api.Group("/employees", authed)
	employeeHandler := NewEmployeeHandler(deps.EmployeeUC)
	employees.Get("/", employeeHandler.List)
	employees.Get("/:code", employeeHandler.Get)
	employees.Post("/", planners, employeeHandler.Create)
	employees.Put("/:code", planners, employeeHandler.Update)
	employees.Delete("/:code", planners, employeeHandler.Delete)

	// Production plans (protected)
	plans := api.Group("/plans", authed)
	planHandler := NewPlanHandler(deps.PlanUC)
	plans.Get("/", planHandler.List)
	plans.Get("/:id", planHandler.Get)
	plans.Get("/:id/progress", planHandler.Progress)
	plans.Post("/", planners, planHandler.Create)
	plans.Put("/:id", planners, planHandler.Update)
	plans.Delete("/:id", planners, planHandler.Delete)
	plans.Post("/:id/start", producers, planHandler.Start)
	plans.Post("/:id/complete", planners, planHandler.Complete)

	// Output ledger (protected)
	outputs := api.Group("/outputs", authed)
	outputHandler := NewOutputHandler(deps.OutputUC)
	outputs.Get("/", outputHandler.List)
	outputs.Post("/", producers, outputHandler.Add)
	outputs.Put("/:id", producers, outputHandler.Update)
	outputs.Delete("/:id", producers, outputHandler.Delete)

	// Reports (protected, any authenticated user)
	reportsGroup := api.Group("/reports", authed)
	reportHandler := NewReportHandler(deps.ReportUC)
	reportsGroup.Get("/plans.xlsx", reportHandler.ExportPlans)
}
