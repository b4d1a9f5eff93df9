package conversion

// FileUpload carries one raw user-supplied file across the API boundary
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

// PreviewResponse lists one item per pending image in batch order.
// Empty is the distinguished empty-state indicator.
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
