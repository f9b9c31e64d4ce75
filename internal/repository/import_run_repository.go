package repository

import (
	"database/sql"
	"fmt"

	"github.com/worktrace/worktrace/internal/models"
)

// ImportRunRepository handles database operations for import runs
type ImportRunRepository struct {
	db *sql.DB
}

// NewImportRunRepository creates a new import run repository
func NewImportRunRepository(db *sql.DB) *ImportRunRepository {
	return &ImportRunRepository{db: db}
}

// Create records a completed import run
func (r *ImportRunRepository) Create(run models.ImportRun) error {
	query := `INSERT INTO import_runs (id, source_file, row_count, skipped_rows)
		VALUES (?, ?, ?, ?)`
	if _, err := r.db.Exec(query, run.ID, run.SourceFile, run.RowCount, run.SkippedRows); err != nil {
		return fmt.Errorf("failed to insert import run: %w", err)
	}
	return nil
}

// List returns import runs, newest first
func (r *ImportRunRepository) List() ([]models.ImportRun, error) {
	rows, err := r.db.Query(`SELECT id, source_file, row_count, skipped_rows, created_at
		FROM import_runs ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query import runs: %w", err)
	}
	defer rows.Close()

	var runs []models.ImportRun
	for rows.Next() {
		var run models.ImportRun
		if err := rows.Scan(&run.ID, &run.SourceFile, &run.RowCount, &run.SkippedRows, &run.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan import run: %w", err)
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}
