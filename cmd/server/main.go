package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	budgetapp "github.com/bridallink/backend/internal/application/budget"
	documentapp "github.com/bridallink/backend/internal/application/document"
	guestapp "github.com/bridallink/backend/internal/application/guest"
	identityapp "github.com/bridallink/backend/internal/application/identity"
	playlistapp "github.com/bridallink/backend/internal/application/playlist"
	registryapp "github.com/bridallink/backend/internal/application/registry"
	scheduleapp "github.com/bridallink/backend/internal/application/schedule"
	seatingapp "github.com/bridallink/backend/internal/application/seating"
	syncapp "github.com/bridallink/backend/internal/application/sync"
	taskapp "github.com/bridallink/backend/internal/application/task"
	vendorapp "github.com/bridallink/backend/internal/application/vendors"
	"github.com/bridallink/backend/internal/domain/budget"
	"github.com/bridallink/backend/internal/domain/document"
	"github.com/bridallink/backend/internal/domain/guest"
	"github.com/bridallink/backend/internal/domain/identity"
	"github.com/bridallink/backend/internal/domain/playlist"
	"github.com/bridallink/backend/internal/domain/registry"
	"github.com/bridallink/backend/internal/domain/schedule"
	"github.com/bridallink/backend/internal/domain/seating"
	"github.com/bridallink/backend/internal/domain/task"
	vendordomain "github.com/bridallink/backend/internal/domain/vendors"
	"github.com/bridallink/backend/internal/infrastructure/config"
	"github.com/bridallink/backend/internal/infrastructure/logger"
	"github.com/bridallink/backend/internal/infrastructure/persistence"
	"github.com/bridallink/backend/internal/infrastructure/storage"
	"github.com/bridallink/backend/internal/infrastructure/store"
	"github.com/bridallink/backend/internal/interfaces/http/handler"
	"github.com/bridallink/backend/internal/interfaces/http/middleware"
	"github.com/bridallink/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting BridalLink Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
		zap.String("store", cfg.Store.Driver),
	)

	kv, cleanup, err := openStore(cfg, log)
	if err != nil {
		log.Fatal("Failed to open key-value store", zap.Error(err))
	}
	defer cleanup()

	var objects storage.ObjectStorage
	if cfg.Storage.Enabled {
		s3, err := storage.NewS3Storage(&cfg.Storage, storage.WithLogger(log))
		if err != nil {
			log.Fatal("Failed to configure object storage", zap.Error(err))
		}
		objects = s3
		log.Info("Object storage enabled", zap.String("bucket", cfg.Storage.Bucket))
	}

	// Repositories, one per storage key
	expenses := persistence.NewCollection[budget.Expense](kv, budget.ExpensesKey,
		persistence.WithLogger[budget.Expense](log))
	categories := persistence.NewCollection[budget.Category](kv, budget.CategoriesKey,
		persistence.WithLogger[budget.Category](log),
		persistence.WithSeed(budget.DefaultCategories))
	totals := persistence.NewValue(kv, budget.TotalsKey,
		func() budget.Totals { return budget.Totals{} }, log)
	guests := persistence.NewCollection[guest.Guest](kv, guest.Key,
		persistence.WithLogger[guest.Guest](log))
	tasks := persistence.NewCollection[task.Task](kv, task.Key,
		persistence.WithLogger[task.Task](log))
	vendors := persistence.NewCollection[vendordomain.Vendor](kv, vendordomain.Key,
		persistence.WithLogger[vendordomain.Vendor](log))
	documents := persistence.NewCollection[document.Document](kv, document.Key,
		persistence.WithLogger[document.Document](log))
	tables := persistence.NewCollection[seating.Table](kv, seating.ReceptionTablesKey,
		persistence.WithLogger[seating.Table](log))
	seats := persistence.NewCollection[seating.Seat](kv, seating.CeremonySeatingKey,
		persistence.WithLogger[seating.Seat](log))
	funds := persistence.NewCollection[registry.CashFund](kv, registry.CashFundsKey,
		persistence.WithLogger[registry.CashFund](log))
	registries := persistence.NewCollection[registry.GiftRegistry](kv, registry.GiftRegistriesKey,
		persistence.WithLogger[registry.GiftRegistry](log))
	playlists := persistence.NewCollection[playlist.Playlist](kv, playlist.Key,
		persistence.WithLogger[playlist.Playlist](log))
	events := persistence.NewCollection[schedule.Event](kv, schedule.Key,
		persistence.WithLogger[schedule.Event](log))
	accounts := persistence.NewCollection[identity.Account](kv, identity.AccountsKey,
		persistence.WithLogger[identity.Account](log))
	session := persistence.NewValue(kv, identity.ActiveSessionKey,
		func() *identity.Session { return nil }, log)
	premium := persistence.NewValue(kv, identity.PremiumKey,
		func() identity.Premium { return identity.Premium{} }, log)
	wedding := persistence.NewValue(kv, identity.WeddingDateKey,
		func() *identity.WeddingDate { return nil }, log)

	// Services
	bridge := syncapp.NewBridge(expenses, log)
	budgetService := budgetapp.NewService(expenses, categories, totals)
	guestService := guestapp.NewService(guests)
	taskService := taskapp.NewService(tasks, bridge)
	vendorService := vendorapp.NewService(vendors, bridge)
	documentService := documentapp.NewService(documents, objects, bridge, documentapp.Limits{
		MaxFileBytes:          cfg.Upload.MaxFileBytes,
		AllowedExtensions:     cfg.Upload.AllowedExtensions,
		OffloadThresholdBytes: cfg.Storage.OffloadThresholdBytes,
	}, log)
	seatingService := seatingapp.NewService(tables, seats, guests)
	registryService := registryapp.NewService(funds, registries)
	playlistService := playlistapp.NewService(playlists)
	scheduleService := scheduleapp.NewService(events)
	identityService := identityapp.NewService(accounts, session, premium, wedding)

	// HTTP engine
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Fatal("Failed to set trusted proxies", zap.Error(err))
		}
	}

	corsConfig := middleware.DefaultCORSConfig()
	if len(cfg.HTTP.CORSAllowOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	}
	if len(cfg.HTTP.CORSAllowMethods) > 0 {
		corsConfig.AllowMethods = cfg.HTTP.CORSAllowMethods
	}
	if len(cfg.HTTP.CORSAllowHeaders) > 0 {
		corsConfig.AllowHeaders = cfg.HTTP.CORSAllowHeaders
	}

	engine.Use(
		middleware.RequestID(),
		logger.GinMiddleware(log),
		gin.Recovery(),
		middleware.Secure(),
		middleware.CORSWithConfig(corsConfig),
		middleware.BodyLimit(cfg.HTTP.MaxBodySize),
	)

	router.NewRouter(engine).
		Register(handler.NewSystemHandler()).
		Register(handler.NewBudgetHandler(budgetService)).
		Register(handler.NewGuestHandler(guestService)).
		Register(handler.NewTaskHandler(taskService)).
		Register(handler.NewVendorHandler(vendorService)).
		Register(handler.NewDocumentHandler(documentService)).
		Register(handler.NewSeatingHandler(seatingService)).
		Register(handler.NewRegistryHandler(registryService)).
		Register(handler.NewPlaylistHandler(playlistService)).
		Register(handler.NewScheduleHandler(scheduleService)).
		Register(handler.NewAccountHandler(identityService)).
		Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

// openStore opens the key-value store named by the configured driver
func openStore(cfg *config.Config, log *zap.Logger) (store.Store, func(), error) {
	noop := func() {}
	switch cfg.Store.Driver {
	case "memory":
		return store.NewMemoryStore(), noop, nil
	case "sqlite":
		db, err := store.OpenSQLite(cfg.Store.SQLitePath)
		if err != nil {
			return nil, noop, err
		}
		return newGormStore(db, log)
	case "postgres":
		db, err := store.OpenPostgres(&cfg.Database)
		if err != nil {
			return nil, noop, err
		}
		return newGormStore(db, log)
	case "redis":
		rs, err := store.NewRedisStore(&cfg.Redis)
		if err != nil {
			return nil, noop, err
		}
		return rs, noop, nil
	default:
		return store.NewMemoryStore(), noop, nil
	}
}

func newGormStore(db *gorm.DB, log *zap.Logger) (store.Store, func(), error) {
	gs, err := store.NewGormStore(db)
	if err != nil {
		return nil, func() {}, err
	}
	cleanup := func() {
		if err := store.Close(db); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}
	return gs, cleanup, nil
}
