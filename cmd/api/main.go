package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jhoicas/Gimnasio-api/internal/application/auth"
	"github.com/jhoicas/Gimnasio-api/internal/application/payments"
	approutine "github.com/jhoicas/Gimnasio-api/internal/application/routine"
	"github.com/jhoicas/Gimnasio-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/Gimnasio-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Gimnasio-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Gimnasio-api/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/Gimnasio-api/internal/interfaces/http"
	"github.com/jhoicas/Gimnasio-api/pkg/config"
	"github.com/jhoicas/Gimnasio-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	avatars, err := storage.NewAvatarStore(cfg.Uploads.AvatarDir)
	if err != nil {
		log.Fatal().Err(err).Msg("directorio de avatares")
	}

	adminRepo := postgres.NewAdminRepository(pool)
	memberRepo := postgres.NewMemberRepository(pool)
	paymentRepo := postgres.NewPaymentRepository(pool)
	routineRepo := postgres.NewRoutineTemplateRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(adminRepo, memberRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	memberUC := usecase.NewMemberUseCase(memberRepo)
	renewUC := payments.NewRenewUseCase(txRunner)
	historyUC := payments.NewHistoryUseCase(paymentRepo)

	// PDF: recibo descargable de cada pago del ledger
	receiptGenerator := infrapdf.NewMarotoReceiptGenerator(cfg.App.Name)
	receiptUC := payments.NewReceiptPDFUseCase(paymentRepo, memberRepo, receiptGenerator)

	routineUC := approutine.NewRoutineUseCase(routineRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Gimnasio API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:    authUC,
		MemberUC:  memberUC,
		RenewUC:   renewUC,
		HistoryUC: historyUC,
		ReceiptUC: receiptUC,
		RoutineUC: routineUC,
		Avatars:   avatars,
		JWTSecret: cfg.JWT.Secret,
	})

	// Dashboards estáticos (admin y miembro) + avatares subidos
	app.Static("/", cfg.Uploads.PublicDir)

	// Fallback SPA: cualquier ruta que no sea /api sirve index.html
	app.Use(func(c *fiber.Ctx) error {
		if strings.HasPrefix(c.Path(), "/api/") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "API not found"})
		}
		return c.SendFile(filepath.Join(cfg.Uploads.PublicDir, "index.html"))
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
