package container

import (
	"context"
	"log/slog"

	"bildpdf/internal/batch"
	"bildpdf/internal/config"
	conversionDomain "bildpdf/internal/domain/conversion"
	imagingDomain "bildpdf/internal/domain/imaging"
	optimizationDomain "bildpdf/internal/domain/optimization"
	preferencesDomain "bildpdf/internal/domain/preferences"
	statisticsDomain "bildpdf/internal/domain/statistics"
	"bildpdf/internal/services"

	"gorm.io/gorm"
)

// Container holds all dependencies for the application
type Container struct {
	config *config.Config
	db     *gorm.DB
	logger *slog.Logger

	// Services
	preferencesRepo     preferencesDomain.Repository
	conversionService   conversionDomain.Service
	imagingService      imagingDomain.Service
	optimizationService optimizationDomain.Service
	statisticsService   statisticsDomain.Service
}

// New creates a new dependency injection container
func New(ctx context.Context, cfg *config.Config, db *gorm.DB) *Container {
	c := &Container{
		config: cfg,
		db:     db,
		logger: cfg.Logger,
	}

	c.initServices(ctx)
	return c
}

// initServices initializes all services with their dependencies
func (c *Container) initServices(ctx context.Context) {
	// Infrastructure services
	prefsService := services.NewPreferencesService(c.db)
	saver := services.NewFileSaver(prefsService)
	decoder := services.NewImageDecoder()
	notifier := &WailsNotifier{ctx: ctx}

	c.preferencesRepo = &PreferencesRepositoryAdapter{service: prefsService}

	// Domain services
	c.statisticsService = &StatisticsServiceImpl{
		ctx:    ctx,
		config: c.config,
	}

	c.conversionService = &ConversionServiceImpl{
		batch:     batch.New(),
		decoder:   decoder,
		saver:     saver,
		notifier:  notifier,
		prefsRepo: c.preferencesRepo,
		stats:     c.statisticsService,
		config:    c.config,
		newComposer: func() batch.Composer {
			return services.NewComposer()
		},
	}

	c.imagingService = &ImagingServiceImpl{
		recompressor: services.NewRecompressor(),
		saver:        saver,
		notifier:     notifier,
		prefsRepo:    c.preferencesRepo,
		stats:        c.statisticsService,
		config:       c.config,
	}

	c.optimizationService = &OptimizationServiceImpl{
		optimizer: services.NewOptimizer(),
		saver:     saver,
		notifier:  notifier,
		stats:     c.statisticsService,
		config:    c.config,
	}
}

// GetConversionService returns the image-to-document conversion service
func (c *Container) GetConversionService() conversionDomain.Service {
	return c.conversionService
}

// GetImagingService returns the raster recompression service
func (c *Container) GetImagingService() imagingDomain.Service {
	return c.imagingService
}

// GetOptimizationService returns the document optimization service
func (c *Container) GetOptimizationService() optimizationDomain.Service {
	return c.optimizationService
}

// GetStatisticsService returns the statistics service
func (c *Container) GetStatisticsService() statisticsDomain.Service {
	return c.statisticsService
}

// GetPreferencesRepository returns the preferences repository
func (c *Container) GetPreferencesRepository() preferencesDomain.Repository {
	return c.preferencesRepo
}

// GetConfig returns the application configuration
func (c *Container) GetConfig() *config.Config {
	return c.config
}
