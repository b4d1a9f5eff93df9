package application

import (
	"context"

	"bildpdf/internal/config"
	"bildpdf/internal/container"
	"bildpdf/internal/database"
	preferencesDomain "bildpdf/internal/domain/preferences"
	"bildpdf/internal/transport"
)

type App struct {
	ctx       context.Context
	container *container.Container
	wailsApp  *transport.WailsApp
	config    *config.Config
}

func NewApp() *App {
	return &App{}
}

func (a *App) OnStartup(ctx context.Context) {
	a.ctx = ctx

	// Initialize configuration
	cfg := config.New()
	a.config = cfg

	// Initialize database
	db, err := database.Initialize(cfg.DatabasePath)
	if err != nil {
		cfg.Logger.Error("Failed to initialize database", "error", err)
		return
	}

	// Initialize dependency container
	a.container = container.New(ctx, cfg, db)

	// Initialize transport layer
	a.wailsApp = transport.NewWailsApp(
		ctx,
		a.container.GetConversionService(),
		a.container.GetImagingService(),
		a.container.GetOptimizationService(),
		a.container.GetPreferencesRepository(),
		a.container.GetStatisticsService(),
	)

	cfg.Logger.Info("Wails app initialized successfully")
	cfg.Logger.Info("Application configuration",
		"working_directory", cfg.WorkingDir,
		"database_path", cfg.DatabasePath)
}

func (a *App) AddImages(uploads []transport.FileUpload) transport.AddResponse {
	return a.wailsApp.AddImages(uploads)
}

func (a *App) RemoveImage(index int) error {
	return a.wailsApp.RemoveImage(index)
}

func (a *App) ClearImages() {
	a.wailsApp.ClearImages()
}

func (a *App) ImageCount() int {
	return a.wailsApp.ImageCount()
}

func (a *App) RenderPreviews() transport.PreviewResponse {
	return a.wailsApp.RenderPreviews()
}

func (a *App) ConvertToPDF(request transport.ConversionRequest) transport.ConversionResponse {
	return a.wailsApp.ConvertToPDF(request)
}

func (a *App) RecompressImage(request transport.RecompressRequest) transport.RecompressResponse {
	return a.wailsApp.RecompressImage(request)
}

func (a *App) OptimizePDF(request transport.OptimizeRequest) transport.OptimizeResponse {
	return a.wailsApp.OptimizePDF(request)
}

func (a *App) GetPreferences() (*preferencesDomain.UserPreferencesData, error) {
	return a.wailsApp.GetPreferences()
}

func (a *App) UpdatePreferences(data map[string]interface{}) error {
	return a.wailsApp.UpdatePreferences(data)
}

func (a *App) OpenImagesDialog() ([]string, error) {
	return a.wailsApp.OpenImagesDialog()
}

func (a *App) OpenPDFDialog() (string, error) {
	return a.wailsApp.OpenPDFDialog()
}

func (a *App) OpenDirectoryDialog() (string, error) {
	return a.wailsApp.OpenDirectoryDialog()
}

func (a *App) ShowSaveDialog(filename string) (string, error) {
	return a.wailsApp.ShowSaveDialog(filename)
}

func (a *App) OpenFile(filePath string) error {
	return a.wailsApp.OpenFile(filePath)
}

func (a *App) GetAppStatus() map[string]interface{} {
	return a.wailsApp.GetAppStatus()
}

func (a *App) GetStats() *transport.AppStats {
	return a.wailsApp.GetStats()
}
