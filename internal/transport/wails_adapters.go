package transport

import (
	"context"

	conversionDomain "bildpdf/internal/domain/conversion"
	imagingDomain "bildpdf/internal/domain/imaging"
	optimizationDomain "bildpdf/internal/domain/optimization"
	preferencesDomain "bildpdf/internal/domain/preferences"
	statisticsDomain "bildpdf/internal/domain/statistics"
)

// WailsApp is the transport layer the frontend talks to
type WailsApp struct {
	ctx                 context.Context
	conversionService   conversionDomain.Service
	imagingService      imagingDomain.Service
	optimizationService optimizationDomain.Service
	preferencesRepo     preferencesDomain.Repository
	statisticsService   statisticsDomain.Service
	dialogsHandler      DialogHandler
}

func NewWailsApp(
	ctx context.Context,
	conversionService conversionDomain.Service,
	imagingService imagingDomain.Service,
	optimizationService optimizationDomain.Service,
	preferencesRepo preferencesDomain.Repository,
	statisticsService statisticsDomain.Service,
) *WailsApp {
	return &WailsApp{
		ctx:                 ctx,
		conversionService:   conversionService,
		imagingService:      imagingService,
		optimizationService: optimizationService,
		preferencesRepo:     preferencesRepo,
		statisticsService:   statisticsService,
		dialogsHandler:      NewDialogsHandler(ctx),
	}
}

func (a *WailsApp) AddImages(uploads []FileUpload) AddResponse {
	domainUploads := make([]conversionDomain.FileUpload, len(uploads))
	for i, upload := range uploads {
		domainUploads[i] = conversionDomain.FileUpload{
			Name: upload.Name,
			Data: upload.Data,
			Size: upload.Size,
		}
	}

	domainResponse := a.conversionService.AddImages(a.ctx, domainUploads)

	return AddResponse{
		Success: domainResponse.Success,
		Added:   domainResponse.Added,
		Total:   domainResponse.Total,
		Error:   domainResponse.Error,
	}
}

func (a *WailsApp) RemoveImage(index int) error {
	return a.conversionService.RemoveImage(index)
}

func (a *WailsApp) ClearImages() {
	a.conversionService.ClearImages()
}

func (a *WailsApp) ImageCount() int {
	return a.conversionService.Count()
}

func (a *WailsApp) RenderPreviews() PreviewResponse {
	domainResponse := a.conversionService.RenderPreviews(a.ctx)

	items := make([]PreviewItem, len(domainResponse.Items))
	for i, item := range domainResponse.Items {
		items[i] = PreviewItem{
			Position:  item.Position,
			Name:      item.Name,
			Thumbnail: item.Thumbnail,
			Error:     item.Error,
		}
	}

	return PreviewResponse{
		Empty: domainResponse.Empty,
		Items: items,
	}
}

func (a *WailsApp) ConvertToPDF(request ConversionRequest) ConversionResponse {
	domainResponse := a.conversionService.Convert(a.ctx, conversionDomain.ConversionRequest{
		FileName:       request.FileName,
		PageWidthMm:    request.PageWidthMm,
		PageHeightMm:   request.PageHeightMm,
		MarginMm:       request.MarginMm,
		DownloadFolder: request.DownloadFolder,
	})

	return ConversionResponse{
		Success:    domainResponse.Success,
		FileName:   domainResponse.FileName,
		SavedPath:  domainResponse.SavedPath,
		PageCount:  domainResponse.PageCount,
		OutputSize: domainResponse.OutputSize,
		Error:      domainResponse.Error,
	}
}

func (a *WailsApp) RecompressImage(request RecompressRequest) RecompressResponse {
	domainResponse := a.imagingService.Recompress(a.ctx, imagingDomain.RecompressRequest{
		Name:           request.Name,
		Data:           request.Data,
		Quality:        request.Quality,
		DownloadFolder: request.DownloadFolder,
	})

	return RecompressResponse{
		Success:          domainResponse.Success,
		FileName:         domainResponse.FileName,
		SavedPath:        domainResponse.SavedPath,
		OriginalSize:     domainResponse.OriginalSize,
		CompressedSize:   domainResponse.CompressedSize,
		CompressionRatio: domainResponse.CompressionRatio,
		Error:            domainResponse.Error,
	}
}

func (a *WailsApp) OptimizePDF(request OptimizeRequest) OptimizeResponse {
	domainResponse := a.optimizationService.Optimize(a.ctx, optimizationDomain.OptimizeRequest{
		Path:           request.Path,
		DownloadFolder: request.DownloadFolder,
	})

	return OptimizeResponse{
		Success:          domainResponse.Success,
		FileName:         domainResponse.FileName,
		SavedPath:        domainResponse.SavedPath,
		OriginalSize:     domainResponse.OriginalSize,
		OptimizedSize:    domainResponse.OptimizedSize,
		CompressionRatio: domainResponse.CompressionRatio,
		Error:            domainResponse.Error,
	}
}

func (a *WailsApp) GetPreferences() (*preferencesDomain.UserPreferencesData, error) {
	return a.preferencesRepo.GetPreferences()
}

func (a *WailsApp) UpdatePreferences(data map[string]interface{}) error {
	anyData := make(map[string]any, len(data))
	for k, v := range data {
		anyData[k] = v
	}
	return a.preferencesRepo.UpdatePreferences(anyData)
}

func (a *WailsApp) OpenImagesDialog() ([]string, error) {
	return a.dialogsHandler.OpenImagesDialog()
}

func (a *WailsApp) OpenPDFDialog() (string, error) {
	return a.dialogsHandler.OpenPDFDialog()
}

func (a *WailsApp) OpenDirectoryDialog() (string, error) {
	return a.dialogsHandler.OpenDirectoryDialog()
}

func (a *WailsApp) ShowSaveDialog(filename string) (string, error) {
	return a.dialogsHandler.ShowSaveDialog(filename)
}

func (a *WailsApp) OpenFile(filePath string) error {
	return a.dialogsHandler.OpenFile(filePath)
}

func (a *WailsApp) GetAppStatus() map[string]interface{} {
	return a.statisticsService.GetAppStatus()
}

func (a *WailsApp) GetStats() *AppStats {
	domainStats := a.statisticsService.GetStats()
	return &AppStats{
		TotalFilesProcessed:     domainStats.TotalFilesProcessed,
		TotalDataSaved:          domainStats.TotalDataSaved,
		SessionFilesProcessed:   domainStats.SessionFilesProcessed,
		SessionDataSaved:        domainStats.SessionDataSaved,
		SessionDocumentsCreated: domainStats.SessionDocumentsCreated,
	}
}
