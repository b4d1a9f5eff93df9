package container

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"bildpdf/internal/batch"
	"bildpdf/internal/common"
	"bildpdf/internal/config"
	conversionDomain "bildpdf/internal/domain/conversion"
	imagingDomain "bildpdf/internal/domain/imaging"
	optimizationDomain "bildpdf/internal/domain/optimization"
	preferencesDomain "bildpdf/internal/domain/preferences"
	statisticsDomain "bildpdf/internal/domain/statistics"
	"bildpdf/internal/services"

	wailsruntime "github.com/wailsapp/wails/v2/pkg/runtime"
)

// PreferencesRepositoryAdapter adapts services.PreferencesService to preferencesDomain.Repository
type PreferencesRepositoryAdapter struct {
	service *services.PreferencesService
}

func (a *PreferencesRepositoryAdapter) GetPreferences() (*preferencesDomain.UserPreferencesData, error) {
	prefs, err := a.service.GetPreferences()
	if err != nil {
		return nil, err
	}

	// Convert service model to domain model
	return &preferencesDomain.UserPreferencesData{
		DefaultDownloadFolder: prefs.DefaultDownloadFolder,
		DefaultJPEGQuality:    prefs.DefaultJPEGQuality,
		PageSize:              prefs.PageSize,
		MarginMm:              prefs.MarginMm,
		AutoDownloadEnabled:   prefs.AutoDownloadEnabled,
	}, nil
}

func (a *PreferencesRepositoryAdapter) UpdatePreferences(data map[string]any) error {
	return a.service.UpdatePreferences(data)
}

func (a *PreferencesRepositoryAdapter) GetDownloadFolder() (string, error) {
	return a.service.GetDownloadFolder()
}

// WailsNotifier reports terminal outcomes to the frontend as status events
type WailsNotifier struct {
	ctx context.Context
}

func (n *WailsNotifier) Success(message string) {
	wailsruntime.EventsEmit(n.ctx, common.EventStatusUpdate, map[string]string{
		"message":  message,
		"severity": "success",
	})
}

func (n *WailsNotifier) Error(message string) {
	wailsruntime.EventsEmit(n.ctx, common.EventStatusUpdate, map[string]string{
		"message":  message,
		"severity": "error",
	})
}

// ConversionServiceImpl implements the conversion domain service. It is the
// sole owner of the pending-image batch.
type ConversionServiceImpl struct {
	batch       *batch.Batch
	decoder     *services.ImageDecoder
	saver       conversionDomain.Saver
	notifier    conversionDomain.Notifier
	prefsRepo   preferencesDomain.Repository
	stats       statisticsDomain.Service
	config      *config.Config
	newComposer func() batch.Composer
}

func (s *ConversionServiceImpl) AddImages(ctx context.Context, uploads []conversionDomain.FileUpload) conversionDomain.AddResponse {
	if len(uploads) == 0 {
		return conversionDomain.AddResponse{
			Success: false,
			Total:   s.batch.Len(),
			Error:   common.ErrNoData.Error(),
		}
	}

	items := make([]batch.PendingImage, 0, len(uploads))
	for _, upload := range uploads {
		subtype, err := s.decoder.Subtype(upload.Data)
		if err != nil {
			// Undecodable payloads still enter the batch; the failure
			// surfaces at preview/conversion time naming the item.
			subtype = subtypeFromName(upload.Name)
		}

		items = append(items, batch.PendingImage{
			ID:      common.GenerateUUID(),
			Name:    upload.Name,
			Subtype: subtype,
			Data:    upload.Data,
		})
	}

	added, total, err := s.batch.Add(items)
	if err != nil {
		s.config.Logger.Warn("Rejected batch add", "requested", len(items), "current", total, "error", err)
		s.notifier.Error(fmt.Sprintf("Cannot add %d images: the batch holds at most %d", len(items), common.MaxBatchSize))
		return conversionDomain.AddResponse{
			Success: false,
			Total:   total,
			Error:   err.Error(),
		}
	}

	s.notifier.Success(fmt.Sprintf("Added %d images (%d total)", added, total))
	return conversionDomain.AddResponse{
		Success: true,
		Added:   added,
		Total:   total,
	}
}

func (s *ConversionServiceImpl) RemoveImage(index int) error {
	if err := s.batch.RemoveAt(index); err != nil {
		s.config.Logger.Warn("Rejected image removal", "index", index, "size", s.batch.Len(), "error", err)
		return err
	}
	return nil
}

func (s *ConversionServiceImpl) ClearImages() {
	s.batch.Clear()
}

func (s *ConversionServiceImpl) Count() int {
	return s.batch.Len()
}

func (s *ConversionServiceImpl) RenderPreviews(ctx context.Context) conversionDomain.PreviewResponse {
	previews := s.batch.RenderPreviews(ctx, s.decoder)
	if previews == nil {
		return conversionDomain.PreviewResponse{Empty: true}
	}

	items := make([]conversionDomain.PreviewItem, len(previews))
	for i, p := range previews {
		items[i] = conversionDomain.PreviewItem{
			Position:  p.Position,
			Name:      p.Name,
			Thumbnail: p.Thumbnail,
			Error:     p.Error,
		}
	}

	return conversionDomain.PreviewResponse{Items: items}
}

func (s *ConversionServiceImpl) Convert(ctx context.Context, request conversionDomain.ConversionRequest) conversionDomain.ConversionResponse {
	page := s.resolvePageSetup(request)
	pageCount := s.batch.Len()

	data, err := s.batch.Convert(ctx, s.decoder, s.newComposer(), page)
	if err != nil {
		message := conversionFailureMessage(err)
		s.config.Logger.Error("Conversion failed", "items", pageCount, "error", err)
		s.notifier.Error(message)
		return conversionDomain.ConversionResponse{
			Success: false,
			Error:   message,
		}
	}

	filename := resolveFileName(request.FileName)
	savedPath, err := s.saver.Save(data, filename, request.DownloadFolder)
	if err != nil {
		s.config.Logger.Error("Failed to save document", "file", filename, "error", err)
		s.notifier.Error(fmt.Sprintf("Could not save %s: %v", filename, err))
		return conversionDomain.ConversionResponse{
			Success: false,
			Error:   err.Error(),
		}
	}

	s.stats.RecordDocument()
	s.stats.UpdateStats(pageCount, 0)
	s.notifier.Success(fmt.Sprintf("Created %s with %d pages (%s)",
		filepath.Base(savedPath), pageCount, common.FormatBytes(int64(len(data)))))

	return conversionDomain.ConversionResponse{
		Success:    true,
		FileName:   filepath.Base(savedPath),
		SavedPath:  savedPath,
		PageCount:  pageCount,
		OutputSize: int64(len(data)),
	}
}

func (s *ConversionServiceImpl) resolvePageSetup(request conversionDomain.ConversionRequest) batch.PageSetup {
	page := batch.DefaultPageSetup()

	if prefs, err := s.prefsRepo.GetPreferences(); err == nil && prefs != nil {
		page.WidthMm, page.HeightMm = pageDims(prefs.PageSize)
		if prefs.MarginMm > 0 {
			page.MarginMm = prefs.MarginMm
		}
	}

	if request.PageWidthMm > 0 && request.PageHeightMm > 0 {
		page.WidthMm = request.PageWidthMm
		page.HeightMm = request.PageHeightMm
	}
	if request.MarginMm > 0 {
		page.MarginMm = request.MarginMm
	}

	return page
}

func conversionFailureMessage(err error) string {
	var decodeErr *common.DecodeError
	switch {
	case errors.Is(err, common.ErrEmptyBatch):
		return "Add at least one image before converting"
	case errors.As(err, &decodeErr):
		return fmt.Sprintf("Could not decode %q (image %d of the batch); nothing was produced",
			decodeErr.Name, decodeErr.Index+1)
	default:
		return fmt.Sprintf("Conversion failed: %v", err)
	}
}

func resolveFileName(requested string) string {
	if requested == "" {
		return fmt.Sprintf("images_%s.pdf", time.Now().UTC().Format("20060102_150405"))
	}
	if !strings.HasSuffix(strings.ToLower(requested), ".pdf") {
		return requested + ".pdf"
	}
	return requested
}

func subtypeFromName(name string) string {
	subtype := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	if subtype == "jpg" {
		return "jpeg"
	}
	return subtype
}

func pageDims(size string) (float64, float64) {
	switch size {
	case "Letter":
		return 215.9, 279.4
	default: // A4
		return common.DefaultPageWidthMm, common.DefaultPageHeightMm
	}
}

// ImagingServiceImpl implements the raster recompression domain service
type ImagingServiceImpl struct {
	recompressor *services.Recompressor
	saver        conversionDomain.Saver
	notifier     conversionDomain.Notifier
	prefsRepo    preferencesDomain.Repository
	stats        statisticsDomain.Service
	config       *config.Config
}

func (s *ImagingServiceImpl) Recompress(ctx context.Context, request imagingDomain.RecompressRequest) imagingDomain.RecompressResponse {
	if len(request.Data) == 0 {
		return imagingDomain.RecompressResponse{
			Success: false,
			Error:   common.ErrNoData.Error(),
		}
	}

	quality := request.Quality
	if quality == 0 {
		if prefs, err := s.prefsRepo.GetPreferences(); err == nil && prefs != nil {
			quality = prefs.DefaultJPEGQuality
		}
	}

	data, err := s.recompressor.Recompress(request.Data, quality)
	if err != nil {
		s.config.Logger.Error("Recompression failed", "file", request.Name, "error", err)
		s.notifier.Error(fmt.Sprintf("Could not recompress %s: %v", request.Name, err))
		return imagingDomain.RecompressResponse{
			Success: false,
			Error:   err.Error(),
		}
	}

	timestamp := time.Now().UTC().Format("20060102_150405")
	baseName := strings.TrimSuffix(request.Name, filepath.Ext(request.Name))
	filename := fmt.Sprintf("%s_%s_compressed.jpg", baseName, timestamp)

	savedPath, err := s.saver.Save(data, filename, request.DownloadFolder)
	if err != nil {
		s.config.Logger.Error("Failed to save recompressed image", "file", filename, "error", err)
		s.notifier.Error(fmt.Sprintf("Could not save %s: %v", filename, err))
		return imagingDomain.RecompressResponse{
			Success: false,
			Error:   err.Error(),
		}
	}

	originalSize := int64(len(request.Data))
	compressedSize := int64(len(data))
	ratio := float64(originalSize-compressedSize) / float64(originalSize) * 100

	s.stats.UpdateStats(1, originalSize-compressedSize)
	s.notifier.Success(fmt.Sprintf("Recompressed %s: %s -> %s",
		request.Name, common.FormatBytes(originalSize), common.FormatBytes(compressedSize)))

	return imagingDomain.RecompressResponse{
		Success:          true,
		FileName:         filepath.Base(savedPath),
		SavedPath:        savedPath,
		OriginalSize:     originalSize,
		CompressedSize:   compressedSize,
		CompressionRatio: ratio,
	}
}

// OptimizationServiceImpl implements the document optimization domain service
type OptimizationServiceImpl struct {
	optimizer *services.Optimizer
	saver     conversionDomain.Saver
	notifier  conversionDomain.Notifier
	stats     statisticsDomain.Service
	config    *config.Config
}

func (s *OptimizationServiceImpl) Optimize(ctx context.Context, request optimizationDomain.OptimizeRequest) optimizationDomain.OptimizeResponse {
	input, err := os.ReadFile(request.Path)
	if err != nil {
		s.config.Logger.Error("Failed to read document", "path", request.Path, "error", err)
		s.notifier.Error(fmt.Sprintf("Could not read %s: %v", filepath.Base(request.Path), err))
		return optimizationDomain.OptimizeResponse{
			Success: false,
			Error:   err.Error(),
		}
	}

	data, err := s.optimizer.Optimize(input)
	if err != nil {
		s.config.Logger.Error("Optimization failed", "path", request.Path, "error", err)
		s.notifier.Error(fmt.Sprintf("Could not optimize %s: %v", filepath.Base(request.Path), err))
		return optimizationDomain.OptimizeResponse{
			Success: false,
			Error:   err.Error(),
		}
	}

	name := filepath.Base(request.Path)
	timestamp := time.Now().UTC().Format("20060102_150405")
	baseName := strings.TrimSuffix(name, ".pdf")
	filename := fmt.Sprintf("%s_%s_optimized.pdf", baseName, timestamp)

	savedPath, err := s.saver.Save(data, filename, request.DownloadFolder)
	if err != nil {
		s.config.Logger.Error("Failed to save optimized document", "file", filename, "error", err)
		s.notifier.Error(fmt.Sprintf("Could not save %s: %v", filename, err))
		return optimizationDomain.OptimizeResponse{
			Success: false,
			Error:   err.Error(),
		}
	}

	originalSize := int64(len(input))
	optimizedSize := int64(len(data))
	ratio := float64(originalSize-optimizedSize) / float64(originalSize) * 100

	s.stats.UpdateStats(1, originalSize-optimizedSize)
	s.notifier.Success(fmt.Sprintf("Optimized %s: %s -> %s",
		name, common.FormatBytes(originalSize), common.FormatBytes(optimizedSize)))

	return optimizationDomain.OptimizeResponse{
		Success:          true,
		FileName:         filepath.Base(savedPath),
		SavedPath:        savedPath,
		OriginalSize:     originalSize,
		OptimizedSize:    optimizedSize,
		CompressionRatio: ratio,
	}
}

// StatisticsServiceImpl implements the statistics domain service
type StatisticsServiceImpl struct {
	ctx    context.Context
	config *config.Config
	stats  statisticsDomain.AppStats
}

func (s *StatisticsServiceImpl) UpdateStats(filesProcessed int, dataSaved int64) {
	s.stats.SessionFilesProcessed += filesProcessed
	s.stats.SessionDataSaved += dataSaved
	s.stats.TotalFilesProcessed += int64(filesProcessed)
	s.stats.TotalDataSaved += dataSaved

	// Emit stats update
	wailsruntime.EventsEmit(s.ctx, common.EventStatsUpdate, s.stats)
}

func (s *StatisticsServiceImpl) RecordDocument() {
	s.stats.SessionDocumentsCreated++
	wailsruntime.EventsEmit(s.ctx, common.EventStatsUpdate, s.stats)
}

func (s *StatisticsServiceImpl) GetStats() *statisticsDomain.AppStats {
	return &s.stats
}

func (s *StatisticsServiceImpl) GetAppStatus() map[string]interface{} {
	return map[string]interface{}{
		"status":            "running",
		"framework":         "Wails + Preact",
		"app_name":          "BildPDF",
		"batch_capacity":    common.MaxBatchSize,
		"working_directory": s.config.WorkingDir,
	}
}
