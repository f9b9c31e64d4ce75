package models

// ImportRun records one ingestion of a history export file
type ImportRun struct {
	ID          string `json:"id" db:"id"`
	SourceFile  string `json:"sourceFile" db:"source_file"`
	RowCount    int64  `json:"rowCount" db:"row_count"`
	SkippedRows int64  `json:"skippedRows" db:"skipped_rows"`
	CreatedAt   string `json:"createdAt,omitempty" db:"created_at"`
}
