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

	"github.com/oz-oblik/assets-backend/internal/application/assets"
	"github.com/oz-oblik/assets-backend/internal/application/auth"
	"github.com/oz-oblik/assets-backend/internal/application/depreciation"
	"github.com/oz-oblik/assets-backend/internal/application/inventorycount"
	"github.com/oz-oblik/assets-backend/internal/application/references"
	"github.com/oz-oblik/assets-backend/internal/infrastructure/postgres"
	httpRouter "github.com/oz-oblik/assets-backend/internal/interfaces/http"
	"github.com/oz-oblik/assets-backend/internal/scheduler"
	"github.com/oz-oblik/assets-backend/pkg/config"
	"github.com/oz-oblik/assets-backend/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("завантаження конфігурації: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("запуск застосунку")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("підключення до PostgreSQL")
	}
	defer pool.Close()

	// Репозиторії
	assetRepo := postgres.NewAssetRepository(pool)
	groupRepo := postgres.NewAssetGroupRepository(pool)
	locationRepo := postgres.NewLocationRepository(pool)
	positionRepo := postgres.NewPositionRepository(pool)
	personRepo := postgres.NewResponsiblePersonRepository(pool)
	orgRepo := postgres.NewOrganizationRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	receiptRepo := postgres.NewAssetReceiptRepository(pool)
	disposalRepo := postgres.NewAssetDisposalRepository(pool)
	revalRepo := postgres.NewAssetRevaluationRepository(pool)
	imprRepo := postgres.NewAssetImprovementRepository(pool)
	transferRepo := postgres.NewAssetTransferRepository(pool)
	recordRepo := postgres.NewDepreciationRecordRepository(pool)
	entryRepo := postgres.NewAccountEntryRepository(pool)
	inventoryRepo := postgres.NewInventoryRepository(pool)
	notifRepo := postgres.NewNotificationRepository(pool)
	auditRepo := postgres.NewAuditLogRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)

	assetTxRunner := postgres.NewAssetTxRunner(pool)
	depTxRunner := postgres.NewDepreciationTxRunner(pool)

	// Юзкейси
	assetUC := assets.NewAssetUseCase(assetRepo, groupRepo, analyticsRepo, auditRepo, log)
	lifecycleUC := assets.NewLifecycleUseCase(
		assetTxRunner, assetRepo, groupRepo, locationRepo,
		receiptRepo, disposalRepo, revalRepo, imprRepo, transferRepo,
		auditRepo, log,
	)
	accrualUC := depreciation.NewAccrualUseCase(
		depTxRunner, assetRepo, groupRepo, recordRepo,
		userRepo, notifRepo, auditRepo, log,
	)
	inventoryUC := inventorycount.NewInventoryUseCase(
		inventoryRepo, assetRepo, userRepo, notifRepo, auditRepo, log,
	)
	referencesUC := references.NewUseCase(
		groupRepo, locationRepo, positionRepo, personRepo, orgRepo, log,
	)
	authUC := auth.NewAuthUseCase(userRepo, cfg.JWT, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Облік основних засобів — API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AssetUC:       assetUC,
		LifecycleUC:   lifecycleUC,
		AccrualUC:     accrualUC,
		InventoryUC:   inventoryUC,
		ReferencesUC:  referencesUC,
		AuthUC:        authUC,
		EntryRepo:     entryRepo,
		Notifications: notifRepo,
		AuditRepo:     auditRepo,
		AssetRepo:     assetRepo,
		GroupRepo:     groupRepo,
		PersonRepo:    personRepo,
		LocationRepo:  locationRepo,
		OrgRepo:       orgRepo,
		InventoryRepo: inventoryRepo,
		RecordRepo:    recordRepo,
		JWTSecret:     cfg.JWT.Secret,
	})

	sched := scheduler.New(cfg.Scheduler, accrualUC, assetRepo, recordRepo, userRepo, notifRepo, log)
	sched.Start(ctx)

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP-сервер завершився")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("отримано сигнал зупинки, закриваємо сервер...")

	sched.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("зупинка сервера")
	}

	log.Info().Msg("застосунок зупинено")
}
