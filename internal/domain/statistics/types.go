package statistics

// AppStats tracks per-session and cumulative processing counters
type AppStats struct {
	TotalFilesProcessed     int64 `json:"total_files_processed"`
	TotalDataSaved          int64 `json:"total_data_saved"`
	SessionFilesProcessed   int   `json:"session_files_processed"`
	SessionDataSaved        int64 `json:"session_data_saved"`
	SessionDocumentsCreated int   `json:"session_documents_created"`
}

type Service interface {
	UpdateStats(filesProcessed int, dataSaved int64)
	RecordDocument()
	GetStats() *AppStats
	GetAppStatus() map[string]interface{}
}
