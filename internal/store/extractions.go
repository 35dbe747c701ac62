package store

import (
	"context"
	"time"

	"jobextract-engine/internal/domain"
)

// ExtractionRow is one journaled pipeline run.
type ExtractionRow struct {
	ID              int64           `json:"id"`
	URL             string          `json:"url"`
	Company         string          `json:"company"`
	JobTitle        string          `json:"job_title"`
	AdSource        domain.AdSource `json:"ad_source"`
	HiringManager   string          `json:"hiring_manager"`
	Method          string          `json:"extractionMethod"`
	Success         bool            `json:"success"`
	NeedsManualHTML bool            `json:"needs_manual_html"`
	RequestedBy     string          `json:"requested_by,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
}

func (d *DB) InsertExtraction(ctx context.Context, rec domain.ReconciledRecord, requestedBy string) error {
	_, err := d.Pool.ExecContext(ctx, `
INSERT INTO extractions(url, company, job_title, ad_source, full_description, hiring_manager, method, success, needs_manual_html, requested_by, created_at)
VALUES(?,?,?,?,?,?,?,?,?,?,?);`,
		rec.URL,
		rec.Company,
		rec.JobTitle,
		string(rec.AdSource),
		rec.FullDescription,
		rec.HiringManager,
		rec.Method,
		boolToInt(rec.Success),
		boolToInt(rec.NeedsManualHTML),
		requestedBy,
		time.Now().UTC().Format(time.RFC3339),
	)
	return err
}

// ListRecent returns the newest runs, description omitted to keep the
// listing light.
func (d *DB) ListRecent(ctx context.Context, limit int) ([]ExtractionRow, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	rows, err := d.Pool.QueryContext(ctx, `
SELECT id, url, company, job_title, ad_source, hiring_manager, method, success, needs_manual_html, requested_by, created_at
FROM extractions
ORDER BY created_at DESC, id DESC
LIMIT ?;`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ExtractionRow
	for rows.Next() {
		var (
			r         ExtractionRow
			success   int
			manual    int
			createdAt string
		)
		if err := rows.Scan(&r.ID, &r.URL, &r.Company, &r.JobTitle, &r.AdSource, &r.HiringManager, &r.Method, &success, &manual, &r.RequestedBy, &createdAt); err != nil {
			return nil, err
		}
		r.Success = success != 0
		r.NeedsManualHTML = manual != 0
		r.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		out = append(out, r)
	}
	return out, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
