package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/oz-oblik/assets-backend/internal/application/assets"
	"github.com/oz-oblik/assets-backend/internal/application/auth"
	"github.com/oz-oblik/assets-backend/internal/application/depreciation"
	"github.com/oz-oblik/assets-backend/internal/application/inventorycount"
	"github.com/oz-oblik/assets-backend/internal/application/references"
	"github.com/oz-oblik/assets-backend/internal/domain/entity"
	"github.com/oz-oblik/assets-backend/internal/domain/repository"
)

// RouterDeps залежності маршрутизатора.
type RouterDeps struct {
	AssetUC       *assets.AssetUseCase
	LifecycleUC   *assets.LifecycleUseCase
	AccrualUC     *depreciation.AccrualUseCase
	InventoryUC   *inventorycount.InventoryUseCase
	ReferencesUC  *references.UseCase
	AuthUC        *auth.AuthUseCase
	EntryRepo     repository.AccountEntryRepository
	Notifications repository.NotificationRepository
	AuditRepo     repository.AuditLogRepository
	AssetRepo     repository.AssetRepository
	GroupRepo     repository.AssetGroupRepository
	PersonRepo    repository.ResponsiblePersonRepository
	LocationRepo  repository.LocationRepository
	OrgRepo       repository.OrganizationRepository
	InventoryRepo repository.InventoryRepository
	RecordRepo    repository.DepreciationRecordRepository
	JWTSecret     string
}

// Router реєструє маршрути API.
//
// Ролі: запис у картотеку та операції — admin і accountant; інвентаризація —
// додатково inventory_manager; реєстрація користувачів і аудит — лише admin.
// Читання доступне будь-якому автентифікованому користувачеві.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	writers := RequireRole(entity.RoleAdmin, entity.RoleAccountant)
	counters := RequireRole(entity.RoleAdmin, entity.RoleAccountant, entity.RoleInventoryManager)
	adminOnly := RequireRole(entity.RoleAdmin)

	// Auth: login публічний, решта — під токеном.
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	protected.Post("/auth/register", adminOnly, authHandler.Register)
	protected.Get("/auth/me", authHandler.Me)
	protected.Put("/auth/password", authHandler.ChangePassword)

	// Довідники
	refHandler := NewReferenceHandler(deps.ReferencesUC)
	groups := protected.Group("/groups")
	groups.Post("/", writers, refHandler.CreateGroup)
	groups.Get("/", refHandler.ListGroups)
	groups.Put("/:id", writers, refHandler.UpdateGroup)
	groups.Delete("/:id", adminOnly, refHandler.DeleteGroup)

	locations := protected.Group("/locations")
	locations.Post("/", writers, refHandler.CreateLocation)
	locations.Get("/", refHandler.ListLocations)
	locations.Put("/:id", writers, refHandler.UpdateLocation)

	positions := protected.Group("/positions")
	positions.Post("/", writers, refHandler.CreatePosition)
	positions.Get("/", refHandler.ListPositions)

	persons := protected.Group("/persons")
	persons.Post("/", writers, refHandler.CreatePerson)
	persons.Get("/", refHandler.ListPersons)
	persons.Put("/:id", writers, refHandler.UpdatePerson)

	orgs := protected.Group("/organizations")
	orgs.Post("/", writers, refHandler.CreateOrganization)
	orgs.Get("/", refHandler.ListOrganizations)
	orgs.Get("/own", refHandler.GetOwnOrganization)

	// Картотека основних засобів
	assetHandler := NewAssetHandler(deps.AssetUC)
	lifecycleHandler := NewLifecycleHandler(deps.LifecycleUC)
	depreciationHandler := NewDepreciationHandler(deps.AccrualUC)
	entryHandler := NewEntryHandler(deps.EntryRepo)
	reportHandler := NewReportHandler(
		deps.AssetRepo, deps.GroupRepo, deps.PersonRepo, deps.LocationRepo,
		deps.OrgRepo, deps.InventoryRepo, deps.RecordRepo,
	)

	assetsGroup := protected.Group("/assets")
	assetsGroup.Post("/", writers, assetHandler.Create)
	assetsGroup.Get("/", assetHandler.List)
	assetsGroup.Get("/statistics", assetHandler.Statistics)
	assetsGroup.Get("/:id", assetHandler.Get)
	assetsGroup.Put("/:id", writers, assetHandler.Update)
	assetsGroup.Delete("/:id", adminOnly, assetHandler.Delete)

	assetsGroup.Post("/:id/receipt", writers, lifecycleHandler.Receipt)
	assetsGroup.Get("/:id/receipt", lifecycleHandler.GetReceipt)
	assetsGroup.Post("/:id/disposal", writers, lifecycleHandler.Disposal)
	assetsGroup.Get("/:id/disposal", lifecycleHandler.GetDisposal)
	assetsGroup.Post("/:id/revaluations", writers, lifecycleHandler.Revaluate)
	assetsGroup.Get("/:id/revaluations", lifecycleHandler.ListRevaluations)
	assetsGroup.Post("/:id/improvements", writers, lifecycleHandler.Improve)
	assetsGroup.Get("/:id/improvements", lifecycleHandler.ListImprovements)

	assetsGroup.Post("/:id/depreciation", writers, depreciationHandler.AccrueAsset)
	assetsGroup.Get("/:id/depreciation", depreciationHandler.ListByAsset)
	assetsGroup.Get("/:id/entries", entryHandler.ListByAsset)
	assetsGroup.Get("/:id/card", reportHandler.AssetCard)

	transfers := protected.Group("/transfers")
	transfers.Post("/", writers, lifecycleHandler.Transfer)
	transfers.Get("/", lifecycleHandler.ListTransfers)

	// Амортизація
	depGroup := protected.Group("/depreciation")
	depGroup.Post("/accrue", writers, depreciationHandler.AccruePeriod)
	depGroup.Post("/calculate", depreciationHandler.Calculate)
	depGroup.Get("/summary", depreciationHandler.Summary)
	depGroup.Get("/statement", reportHandler.DepreciationStatement)

	// Журнал проводок
	entries := protected.Group("/entries")
	entries.Get("/", entryHandler.List)
	entries.Get("/journal", entryHandler.Journal)

	// Інвентаризації
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	inventories := protected.Group("/inventories")
	inventories.Post("/", counters, inventoryHandler.Create)
	inventories.Get("/", inventoryHandler.List)
	inventories.Get("/:id", inventoryHandler.Get)
	inventories.Post("/:id/populate", counters, inventoryHandler.Populate)
	inventories.Put("/:id/items/:asset_id", counters, inventoryHandler.UpdateItem)
	inventories.Post("/:id/complete", counters, inventoryHandler.Complete)
	inventories.Get("/:id/result", inventoryHandler.Result)
	inventories.Get("/:id/export", reportHandler.ExportInventory)

	// Сповіщення та аудит
	notificationHandler := NewNotificationHandler(deps.Notifications, deps.AuditRepo)
	notifications := protected.Group("/notifications")
	notifications.Get("/", notificationHandler.List)
	notifications.Get("/unread-count", notificationHandler.UnreadCount)
	notifications.Post("/read-all", notificationHandler.MarkAllRead)
	notifications.Post("/:id/read", notificationHandler.MarkRead)

	protected.Get("/audit", adminOnly, notificationHandler.AuditLog)
}
