package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"logo-banner/app/controller"
	"logo-banner/app/router"
	"logo-banner/config"
	"logo-banner/db"
	"logo-banner/repository"
	"logo-banner/service"
	"logo-banner/utils"
)

// App holds the wired services of a running instance
type App struct {
	Config   *config.Config
	Catalog  *service.CatalogStore
	Presets  *service.PresetProvider
	Sessions *service.SessionService
	Exports  *service.ExportService
	Renderer *service.BannerRenderer

	exportStore repository.ExportStoreInterface
}

// Initialize initializes the application
func Initialize(ctx context.Context, cfg *config.Config) (*App, error) {
	catalog, err := LoadCatalog(ctx, cfg)
	if err != nil {
		return nil, err
	}

	exportStore, err := newExportStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	renderer, err := service.NewBannerRenderer(cfg.Export.Width, cfg.Export.Height)
	if err != nil {
		exportStore.Close()
		return nil, err
	}

	// Drive archive is optional; a nil interface disables it
	var drive service.DriveUploaderInterface
	if cfg.Export.DriveFolderID != "" {
		driveService, err := service.NewDriveService(ctx, cfg.Export.DriveCredentials, cfg.Export.DriveFolderID)
		if err != nil {
			exportStore.Close()
			return nil, err
		}
		drive = driveService
		utils.Log().Infof("✓ Drive archive enabled (folder %s)", cfg.Export.DriveFolderID)
	}

	presets := service.NewPresetProvider(cfg.Preset.Prefixes)
	notifier := service.NewLogNotifier()

	exports := service.NewExportService(
		renderer,
		service.NewChromeRasterizer(cfg.Export.ChromePath),
		exportStore,
		drive,
		service.ExportSettings{
			Filename: cfg.Export.Filename,
			Timeout:  cfg.Export.Timeout,
			TTL:      cfg.Export.TTL,
			BaseURL:  cfg.Server.BaseURL,
		},
	)

	return &App{
		Config:      cfg,
		Catalog:     catalog,
		Presets:     presets,
		Sessions:    service.NewSessionService(catalog, presets, notifier, cfg.Search.Debounce, cfg.Session.TTL),
		Exports:     exports,
		Renderer:    renderer,
		exportStore: exportStore,
	}, nil
}

// LoadCatalog reads the configured catalog source once.
// The database connection is only held while loading.
func LoadCatalog(ctx context.Context, cfg *config.Config) (*service.CatalogStore, error) {
	var repo repository.CatalogRepositoryInterface
	switch cfg.Catalog.Source {
	case "postgres":
		if err := db.InitDB(ctx, cfg.Database.URL); err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		defer func() {
			if err := db.CloseDB(); err != nil {
				utils.Log().Warnf("⚠️  Failed to close database: %v", err)
			}
		}()
		utils.Log().Infof("📦 Loading catalog from postgres")
		repo = repository.NewPostgresCatalogRepository(db.DB)
	default:
		utils.Log().Infof("📦 Loading catalog from %s", cfg.Catalog.Path)
		repo = repository.NewFileCatalogRepository(cfg.Catalog.Path)
	}

	return service.LoadCatalog(ctx, repo, service.NewSVGLoader(cfg.Catalog.AssetsDir))
}

func newExportStore(ctx context.Context, cfg *config.Config) (repository.ExportStoreInterface, error) {
	if cfg.Export.Store == "redis" {
		store, err := repository.NewRedisExportStore(ctx, cfg.Redis.URL)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize export store: %w", err)
		}
		utils.Log().Infof("💾 Exports stored in redis")
		return store, nil
	}
	return repository.NewMemoryExportStore(time.Minute), nil
}

// Handler builds the HTTP API
func (a *App) Handler() http.Handler {
	controllers := &router.Controllers{
		Catalog: controller.NewCatalogController(a.Catalog),
		Session: controller.NewSessionController(a.Sessions, a.Renderer),
		Export:  controller.NewExportController(a.Sessions, a.Exports),
	}
	return router.SetupRoutes(controllers)
}

// Close releases everything Initialize acquired
func (a *App) Close() {
	a.Sessions.Close()
	if err := a.exportStore.Close(); err != nil {
		utils.Log().Warnf("⚠️  Failed to close export store: %v", err)
	}
}
