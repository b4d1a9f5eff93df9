package common

const (
	// Batch constants
	MaxBatchSize = 100

	// Page geometry defaults (millimeters, A4 portrait)
	DefaultPageWidthMm  = 210.0
	DefaultPageHeightMm = 297.0
	DefaultMarginMm     = 10.0

	// Recompression constants
	DefaultJPEGQuality = 85
	MinJPEGQuality     = 1
	MaxJPEGQuality     = 100

	// Preview constants
	ThumbnailMaxEdge   = 160
	PreviewWorkerLimit = 4

	// File operation constants
	DefaultFilePermissions = 0755

	// Event names
	EventStatusUpdate = "status:update"
	EventStatsUpdate  = "stats:update"
)
