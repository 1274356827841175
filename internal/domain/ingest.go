package domain

import "context"

// CourseRow is one row of the source course catalog as supplied by the
// spreadsheet reader. Rows flagged as cancelled upstream never reach the core.
type CourseRow struct {
	CourseID    string
	CourseName  string
	Professor   string
	RawSchedule string
}

// CatalogReader reads a course catalog spreadsheet. It returns the usable rows
// and the number of rows it filtered out as cancelled.
type CatalogReader interface {
	Read(path string) (rows []CourseRow, cancelled int, err error)
}

// IngestSummary reports the outcome of one ingestion batch. Row-scoped
// failures surface here as warnings; they never abort the batch.
type IngestSummary struct {
	BatchID       string   `json:"batch_id"`
	Rows          int      `json:"rows"`
	Cancelled     int      `json:"cancelled"`
	Records       int      `json:"records"`
	Duplicates    int      `json:"duplicates"`
	DroppedTokens int      `json:"dropped_tokens"`
	Inserted      int      `json:"inserted"`
	Buildings     []int    `json:"buildings"`
	Warnings      []string `json:"warnings"`
}

// IngestService defines the business logic of the ingestion pipeline.
type IngestService interface {
	// IngestFile reads the catalog at path, parses and normalizes every row,
	// and replaces the stored schedule of each building found in the batch.
	IngestFile(ctx context.Context, path string) (*IngestSummary, error)
}
