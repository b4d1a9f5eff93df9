package conversion

import (
	"context"
)

// Service owns the pending-image batch and the conversion pipeline.
// It is the only component allowed to read or write the batch.
type Service interface {
	AddImages(ctx context.Context, uploads []FileUpload) AddResponse
	RemoveImage(index int) error
	ClearImages()
	Count() int
	RenderPreviews(ctx context.Context) PreviewResponse
	Convert(ctx context.Context, request ConversionRequest) ConversionResponse
}

// Saver performs the platform-specific persistence of result bytes.
type Saver interface {
	Save(data []byte, filename, folder string) (string, error)
}

// Notifier reports terminal outcomes to the user.
type Notifier interface {
	Success(message string)
	Error(message string)
}
