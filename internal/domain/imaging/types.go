package imaging

// RecompressRequest asks for a raster image to be re-encoded as JPEG
// at the given quality (1-100; 0 means "use the preferred default").
type RecompressRequest struct {
	Name           string `json:"name"`
	Data           []byte `json:"data"`
	Quality        int    `json:"quality"`
	DownloadFolder string `json:"downloadFolder"`
}

type RecompressResponse struct {
	Success          bool    `json:"success"`
	FileName         string  `json:"file_name"`
	SavedPath        string  `json:"saved_path"`
	OriginalSize     int64   `json:"original_size"`
	CompressedSize   int64   `json:"compressed_size"`
	CompressionRatio float64 `json:"compression_ratio"`
	Error            string  `json:"error,omitempty"`
}
