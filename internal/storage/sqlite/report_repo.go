package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

type ReportRecord struct {
	ID        int64
	Filename  string
	CreatedAt time.Time
	SizeBytes int64
	Sections  int
}

// ReportRepository indexes generated report files. The index is
// advisory: the files in the log directory stay the source of truth.
type ReportRepository struct {
	db *sql.DB
}

func NewReportRepository(db *sql.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

func (r *ReportRepository) Record(ctx context.Context, rec ReportRecord) error {
	query := "INSERT INTO reports (filename, created_at, size_bytes, sections) VALUES (?, ?, ?, ?)"

	_, err := r.db.ExecContext(ctx, query,
		rec.Filename,
		rec.CreatedAt.UTC().Format(time.RFC3339),
		rec.SizeBytes,
		rec.Sections,
	)
	if err != nil {
		return fmt.Errorf("failed to record report: %w", err)
	}
	return nil
}

// Forget drops index rows for report files the sweeper removed.
func (r *ReportRepository) Forget(ctx context.Context, filenames []string) error {
	for _, name := range filenames {
		if _, err := r.db.ExecContext(ctx, "DELETE FROM reports WHERE filename = ?", name); err != nil {
			return fmt.Errorf("failed to forget report %s: %w", name, err)
		}
	}
	return nil
}

func (r *ReportRepository) List(ctx context.Context) ([]ReportRecord, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT id, filename, created_at, size_bytes, sections FROM reports ORDER BY filename")
	if err != nil {
		return nil, fmt.Errorf("failed to query reports: %w", err)
	}
	defer rows.Close()

	var records []ReportRecord
	for rows.Next() {
		var rec ReportRecord
		var createdAt string
		if err := rows.Scan(&rec.ID, &rec.Filename, &createdAt, &rec.SizeBytes, &rec.Sections); err != nil {
			return nil, err
		}
		rec.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}
