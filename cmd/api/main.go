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

	"github.com/jhoicas/cobranzas-api/internal/application/auth"
	"github.com/jhoicas/cobranzas-api/internal/application/clients"
	"github.com/jhoicas/cobranzas-api/internal/application/collections"
	"github.com/jhoicas/cobranzas-api/internal/application/ports"
	infrapdf "github.com/jhoicas/cobranzas-api/internal/infrastructure/pdf"
	"github.com/jhoicas/cobranzas-api/internal/infrastructure/postgres"
	infraxlsx "github.com/jhoicas/cobranzas-api/internal/infrastructure/xlsx"
	httpRouter "github.com/jhoicas/cobranzas-api/internal/interfaces/http"
	"github.com/jhoicas/cobranzas-api/pkg/config"
	"github.com/jhoicas/cobranzas-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("timezone", cfg.Cobranza.Timezone).
		Msg("iniciando aplicación")

	if cfg.Cobranza.MigrateOnStart {
		if err := postgres.Migrate(cfg.DB.ConnectionString()); err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
		log.Info().Msg("migraciones aplicadas")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	log.Component("db").Info().
		Int32("max_conns", pool.Config().MaxConns).
		Dur("statement_timeout", cfg.DB.StatementTimeout).
		Msg("pool listo")
	defer pool.Close()

	// Location ya fue validada en config.Load
	loc, _ := cfg.Cobranza.Location()
	clock := ports.NewLocationClock(loc)

	docRepo := postgres.NewDocumentRepository(pool)
	clientRepo := postgres.NewClientRepository(pool, clock)
	statementRepo := postgres.NewStatementRepository(postgres.NewTxRunner(pool), clock)
	userRepo := postgres.NewUserRepository(pool)

	companyName := cfg.Cobranza.CompanyName
	if companyName == "" {
		companyName = cfg.App.Name
	}

	summaryUC := collections.NewSummaryUseCase(docRepo, clock)
	dashboardUC := collections.NewDashboardUseCase(docRepo, clock, cfg.Cobranza.TrendMonths)
	statementUC := collections.NewStatementUseCase(statementRepo, clientRepo, clock,
		infrapdf.NewStatementRenderer(companyName),
		infraxlsx.NewStatementExporter(companyName),
	)
	clientUC := clients.NewClientUseCase(clientRepo, docRepo, clock)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestID())
	app.Use(httpRouter.AccessLog(log.Component("http")))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Cobranzas API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		if err := pool.Ping(c.UserContext()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "degraded", "service": cfg.App.Name})
		}
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		SummaryUC:   summaryUC,
		DashboardUC: dashboardUC,
		StatementUC: statementUC,
		ClientUC:    clientUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
