package optimization

// OptimizeRequest asks for a PDF on disk to be recompressed losslessly.
type OptimizeRequest struct {
	Path           string `json:"path"`
	DownloadFolder string `json:"downloadFolder"`
}

type OptimizeResponse struct {
	Success          bool    `json:"success"`
	FileName         string  `json:"file_name"`
	SavedPath        string  `json:"saved_path"`
	OriginalSize     int64   `json:"original_size"`
	OptimizedSize    int64   `json:"optimized_size"`
	CompressionRatio float64 `json:"compression_ratio"`
	Error            string  `json:"error,omitempty"`
}
