package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/openmes/mes-api/internal/application/auth"
	"github.com/openmes/mes-api/internal/application/production"
	"github.com/openmes/mes-api/internal/application/reports"
	"github.com/openmes/mes-api/internal/application/usecase"
	"github.com/openmes/mes-api/internal/infrastructure/postgres"
	httpRouter "github.com/openmes/mes-api/internal/interfaces/http"
	"github.com/openmes/mes-api/pkg/config"
	"github.com/openmes/mes-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("PostgreSQL connection")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	operationRepo := postgres.NewOperationRepository(pool)
	employeeRepo := postgres.NewEmployeeRepository(pool)
	bomRepo := postgres.NewBOMRepository(pool)
	planRepo := postgres.NewPlanRepository(pool)
	outputRepo := postgres.NewOutputRepository(pool)

	progressSvc := production.NewProgressService(planRepo, outputRepo)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	productUC := usecase.NewProductUseCase(productRepo)
	operationUC := usecase.NewOperationUseCase(operationRepo)
	employeeUC := usecase.NewEmployeeUseCase(employeeRepo)
	bomUC := usecase.NewBOMUseCase(bomRepo, productRepo, operationRepo)
	planUC := production.NewPlanUseCase(planRepo, productRepo, progressSvc)
	outputUC := production.NewOutputUseCase(outputRepo, planRepo, productRepo, operationRepo, progressSvc, log)
	reportUC := reports.NewReportUseCase(planRepo, outputRepo)

	created, err := authUC.EnsureDefaultAdmin(ctx, cfg.Admin.Username, cfg.Admin.Password, cfg.Admin.Roles)
	if err != nil {
		log.Fatal().Err(err).Msg("default admin bootstrap")
	}
	if created {
		log.Info().Str("username", cfg.Admin.Username).Msg("default admin account created")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "MES API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		ProductUC:   productUC,
		OperationUC: operationUC,
		EmployeeUC:  employeeUC,
		BOMUC:       bomUC,
		PlanUC:      planUC,
		OutputUC:    outputUC,
		ReportUC:    reportUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
