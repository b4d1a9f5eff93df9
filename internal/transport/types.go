package transport

// Transport layer types for the Wails API

type FileUpload struct {
	Name string `json:"name"`
	Data []byte `json:"data"`
	Size int64  `json:"size"`
}

type AddResponse struct {
	Success bool   `json:"success"`
	Added   int    `json:"added"`
	Total   int    `json:"total"`
	Error   string `json:"error,omitempty"`
}

type PreviewItem struct {
	Position  int    `json:"position"`
	Name      string `json:"name"`
	Thumbnail string `json:"thumbnail,omitempty"`
	Error     string `json:"error,omitempty"`
}

type PreviewResponse struct {
	Empty bool          `json:"empty"`
	Items []PreviewItem `json:"items"`
}

type ConversionRequest struct {
	FileName       string  `json:"fileName"`
	PageWidthMm    float64 `json:"pageWidthMm"`
	PageHeightMm   float64 `json:"pageHeightMm"`
	MarginMm       float64 `json:"marginMm"`
	DownloadFolder string  `json:"downloadFolder"`
}

type ConversionResponse struct {
	Success    bool   `json:"success"`
	FileName   string `json:"file_name"`
	SavedPath  string `json:"saved_path"`
	PageCount  int    `json:"page_count"`
	OutputSize int64  `json:"output_size"`
	Error      string `json:"error,omitempty"`
}

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

type AppStats struct {
	TotalFilesProcessed     int64 `json:"total_files_processed"`
	TotalDataSaved          int64 `json:"total_data_saved"`
	SessionFilesProcessed   int   `json:"session_files_processed"`
	SessionDataSaved        int64 `json:"session_data_saved"`
	SessionDocumentsCreated int   `json:"session_documents_created"`
}

// DialogHandler abstracts the system dialogs
type DialogHandler interface {
	OpenImagesDialog() ([]string, error)
	OpenPDFDialog() (string, error)
	OpenDirectoryDialog() (string, error)
	ShowSaveDialog(filename string) (string, error)
	OpenFile(filePath string) error
}
