package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/worktrace/worktrace/internal/database"
	"github.com/worktrace/worktrace/internal/models"
)

// VisitRepository handles database operations for browsing visits
type VisitRepository struct {
	db *sql.DB
}

// NewVisitRepository creates a new visit repository
func NewVisitRepository(db *sql.DB) *VisitRepository {
	return &VisitRepository{db: db}
}

// GetVisits retrieves visits with filtering and pagination, newest first
func (r *VisitRepository) GetVisits(filter models.VisitFilter) ([]models.Visit, int64, error) {
	query := `SELECT id, visit_time, title, url, visit_count, typed_count,
		transition, import_id, created_at
		FROM visits`

	var conditions []string
	var args []interface{}

	if filter.StartTime > 0 {
		conditions = append(conditions, "visit_time >= ?")
		args = append(args, filter.StartTime)
	}
	if filter.EndTime > 0 {
		conditions = append(conditions, "visit_time <= ?")
		args = append(args, filter.EndTime)
	}
	if filter.URLContains != "" {
		conditions = append(conditions, "url LIKE ?")
		args = append(args, "%"+filter.URLContains+"%")
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	countQuery := "SELECT COUNT(*) FROM visits"
	if len(conditions) > 0 {
		countQuery += " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int64
	if err := r.db.QueryRow(countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count visits: %w", err)
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 100
	}
	if filter.PageSize > 1000 {
		filter.PageSize = 1000
	}

	offset := (filter.Page - 1) * filter.PageSize
	query += " ORDER BY visit_time DESC LIMIT ? OFFSET ?"
	args = append(args, filter.PageSize, offset)

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query visits: %w", err)
	}
	defer rows.Close()

	visits, err := scanVisits(rows)
	if err != nil {
		return nil, 0, err
	}

	return visits, total, nil
}

// ListAll returns every visit in ascending timestamp order, the order the
// inference pipeline requires
func (r *VisitRepository) ListAll(ctx context.Context) ([]models.Visit, error) {
	query := `SELECT id, visit_time, title, url, visit_count, typed_count,
		transition, import_id, created_at
		FROM visits
		ORDER BY visit_time ASC, id ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query visits: %w", err)
	}
	defer rows.Close()

	return scanVisits(rows)
}

// InsertBatch inserts visits in a single transaction, stamping each with the
// given import run id
func (r *VisitRepository) InsertBatch(visits []models.Visit, importID string) error {
	return database.Transaction(r.db, func(tx *sql.Tx) error {
		stmt, err := tx.Prepare(`INSERT INTO visits
			(visit_time, title, url, visit_count, typed_count, transition, import_id)
			VALUES (?, ?, ?, ?, ?, ?, ?)`)
		if err != nil {
			return fmt.Errorf("failed to prepare insert: %w", err)
		}
		defer stmt.Close()

		for _, v := range visits {
			if _, err := stmt.Exec(v.VisitTime, v.Title, v.URL,
				v.VisitCount, v.TypedCount, v.Transition, importID); err != nil {
				return fmt.Errorf("failed to insert visit at %d: %w", v.VisitTime, err)
			}
		}
		return nil
	})
}

func scanVisits(rows *sql.Rows) ([]models.Visit, error) {
	var visits []models.Visit
	for rows.Next() {
		var v models.Visit
		if err := rows.Scan(&v.ID, &v.VisitTime, &v.Title, &v.URL,
			&v.VisitCount, &v.TypedCount, &v.Transition, &v.ImportID, &v.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan visit: %w", err)
		}
		visits = append(visits, v)
	}
	return visits, rows.Err()
}
