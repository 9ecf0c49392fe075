package shopgrep

import (
	"context"
	"time"
)

// Scan represents one search request: the query that drove it and where it
// ran. Products reference the scan that produced them.
type Scan struct {
	ID        string    `json:"id"`
	Site      string    `json:"site"`
	Query     Query     `json:"query"`
	CreatedAt time.Time `json:"createdAt"`
}

// Validate returns an error if the scan contains invalid fields.
func (s *Scan) Validate() error {
	if s.Site == "" {
		return Errorf(EINVALID, "scan site required")
	}
	return s.Query.Validate()
}

// ScanService represents a service for managing scans.
type ScanService interface {
	// CreateScan creates a new scan.
	CreateScan(ctx context.Context, scan *Scan) error

	// FindScanByID retrieves a scan by ID.
	// Returns ENOTFOUND if the scan does not exist.
	FindScanByID(ctx context.Context, id string) (*Scan, error)

	// FindScans retrieves scans matching the filter, newest first.
	FindScans(ctx context.Context, filter ScanFilter) ([]*Scan, error)

	// DeleteScan permanently removes a scan and all associated products.
	// Returns ENOTFOUND if the scan does not exist.
	DeleteScan(ctx context.Context, id string) error
}

// ScanFilter represents a filter for FindScans.
type ScanFilter struct {
	ID   *string `json:"id"`
	Site *string `json:"site"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// ProductService represents a service for managing extracted products.
type ProductService interface {
	// CreateProducts stores products for a scan in a single batch,
	// preserving their order.
	CreateProducts(ctx context.Context, scanID string, products []*Product) error

	// FindProducts retrieves products matching the filter, ordered by
	// position within their scan.
	FindProducts(ctx context.Context, filter ProductFilter) ([]*Product, error)

	// DeleteProductsByScan removes all products for a scan.
	DeleteProductsByScan(ctx context.Context, scanID string) error
}

// ProductFilter represents a filter for FindProducts.
type ProductFilter struct {
	ID     *string `json:"id"`
	ScanID *string `json:"scanId"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
