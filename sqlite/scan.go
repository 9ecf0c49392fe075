package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/shopgrep"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ shopgrep.ScanService = (*ScanService)(nil)

// ScanService implements shopgrep.ScanService using SQLite.
type ScanService struct {
	db *DB
}

// NewScanService creates a new ScanService.
func NewScanService(db *DB) *ScanService {
	return &ScanService{db: db}
}

// CreateScan creates a new scan.
func (s *ScanService) CreateScan(ctx context.Context, scan *shopgrep.Scan) error {
	if err := scan.Validate(); err != nil {
		return err
	}

	if scan.ID == "" {
		scan.ID = uuid.New().String()
	}
	if scan.CreatedAt.IsZero() {
		scan.CreatedAt = time.Now().UTC()
	}

	queryJSON, err := json.Marshal(scan.Query)
	if err != nil {
		return fmt.Errorf("failed to encode query: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO scans (id, site, query, created_at)
		VALUES (?, ?, ?, ?)
	`, scan.ID, scan.Site, string(queryJSON), scan.CreatedAt.Format(time.RFC3339))

	return err
}

// FindScanByID retrieves a scan by ID.
func (s *ScanService) FindScanByID(ctx context.Context, id string) (*shopgrep.Scan, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, site, query, created_at
		FROM scans
		WHERE id = ?
	`, id)

	scan, err := scanScanRow(row.Scan)
	if err == sql.ErrNoRows {
		return nil, shopgrep.Errorf(shopgrep.ENOTFOUND, "scan not found")
	}
	if err != nil {
		return nil, err
	}
	return scan, nil
}

// FindScans retrieves scans matching the filter, newest first.
func (s *ScanService) FindScans(ctx context.Context, filter shopgrep.ScanFilter) ([]*shopgrep.Scan, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, site, query, created_at FROM scans WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Site != nil {
		query.WriteString(" AND site = ?")
		args = append(args, *filter.Site)
	}

	query.WriteString(" ORDER BY created_at DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var scans []*shopgrep.Scan
	for rows.Next() {
		scan, err := scanScanRow(rows.Scan)
		if err != nil {
			return nil, err
		}
		scans = append(scans, scan)
	}

	return scans, rows.Err()
}

// DeleteScan permanently removes a scan. Associated products go with it
// through the foreign key cascade.
func (s *ScanService) DeleteScan(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM scans WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return shopgrep.Errorf(shopgrep.ENOTFOUND, "scan not found")
	}

	return nil
}

// scanScanRow decodes one scans row via the given Scan function, which
// works for both *sql.Row and *sql.Rows.
func scanScanRow(scanFn func(dest ...any) error) (*shopgrep.Scan, error) {
	var scan shopgrep.Scan
	var queryJSON, createdAt string

	if err := scanFn(&scan.ID, &scan.Site, &queryJSON, &createdAt); err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(queryJSON), &scan.Query); err != nil {
		return nil, fmt.Errorf("failed to decode query: %w", err)
	}

	var err error
	scan.CreatedAt, err = parseRFC3339(createdAt, "created_at")
	if err != nil {
		return nil, err
	}

	return &scan, nil
}
