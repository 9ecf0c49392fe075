package mock

import (
	"context"

	"github.com/fwojciec/shopgrep"
)

var _ shopgrep.ScanService = (*ScanService)(nil)

// ScanService is a mock implementation of shopgrep.ScanService.
type ScanService struct {
	CreateScanFn   func(ctx context.Context, scan *shopgrep.Scan) error
	FindScanByIDFn func(ctx context.Context, id string) (*shopgrep.Scan, error)
	FindScansFn    func(ctx context.Context, filter shopgrep.ScanFilter) ([]*shopgrep.Scan, error)
	DeleteScanFn   func(ctx context.Context, id string) error
}

func (s *ScanService) CreateScan(ctx context.Context, scan *shopgrep.Scan) error {
	return s.CreateScanFn(ctx, scan)
}

func (s *ScanService) FindScanByID(ctx context.Context, id string) (*shopgrep.Scan, error) {
	return s.FindScanByIDFn(ctx, id)
}

func (s *ScanService) FindScans(ctx context.Context, filter shopgrep.ScanFilter) ([]*shopgrep.Scan, error) {
	return s.FindScansFn(ctx, filter)
}

func (s *ScanService) DeleteScan(ctx context.Context, id string) error {
	return s.DeleteScanFn(ctx, id)
}

var _ shopgrep.ProductService = (*ProductService)(nil)

// ProductService is a mock implementation of shopgrep.ProductService.
type ProductService struct {
	CreateProductsFn       func(ctx context.Context, scanID string, products []*shopgrep.Product) error
	FindProductsFn         func(ctx context.Context, filter shopgrep.ProductFilter) ([]*shopgrep.Product, error)
	DeleteProductsByScanFn func(ctx context.Context, scanID string) error
}

func (s *ProductService) CreateProducts(ctx context.Context, scanID string, products []*shopgrep.Product) error {
	return s.CreateProductsFn(ctx, scanID, products)
}

func (s *ProductService) FindProducts(ctx context.Context, filter shopgrep.ProductFilter) ([]*shopgrep.Product, error) {
	return s.FindProductsFn(ctx, filter)
}

func (s *ProductService) DeleteProductsByScan(ctx context.Context, scanID string) error {
	return s.DeleteProductsByScanFn(ctx, scanID)
}
