package sqlite

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fwojciec/shopgrep"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ shopgrep.ProductService = (*ProductService)(nil)

// ProductService implements shopgrep.ProductService using SQLite.
type ProductService struct {
	db *DB
}

// NewProductService creates a new ProductService.
func NewProductService(db *DB) *ProductService {
	return &ProductService{db: db}
}

// CreateProducts stores products for a scan in a single transaction,
// preserving their order.
func (s *ProductService) CreateProducts(ctx context.Context, scanID string, products []*shopgrep.Product) error {
	if scanID == "" {
		return shopgrep.Errorf(shopgrep.EINVALID, "scan ID required")
	}
	for _, p := range products {
		if err := p.Validate(); err != nil {
			return err
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO products (id, scan_id, title, price, rating, discount, offers,
			link, image, availability, quantity, tags, properties, position)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, p := range products {
		if p.ID == "" {
			p.ID = uuid.New().String()
		}
		p.ScanID = scanID
		p.Position = i

		tagsJSON, err := json.Marshal(p.Tags)
		if err != nil {
			return fmt.Errorf("failed to encode tags: %w", err)
		}
		propsJSON, err := json.Marshal(p.Properties)
		if err != nil {
			return fmt.Errorf("failed to encode properties: %w", err)
		}

		var price any
		if p.Price != nil {
			price = *p.Price
		}

		if _, err := stmt.ExecContext(ctx, p.ID, p.ScanID, p.Title, price,
			p.Rating, p.Discount, p.Offers, p.Link, p.Image, p.Availability,
			p.Quantity, string(tagsJSON), string(propsJSON), p.Position); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// FindProducts retrieves products matching the filter, ordered by position
// within their scan.
func (s *ProductService) FindProducts(ctx context.Context, filter shopgrep.ProductFilter) ([]*shopgrep.Product, error) {
	var query strings.Builder
	var args []any

	query.WriteString(`SELECT id, scan_id, title, price, rating, discount, offers,
		link, image, availability, quantity, tags, properties, position
		FROM products WHERE 1=1`)

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.ScanID != nil {
		query.WriteString(" AND scan_id = ?")
		args = append(args, *filter.ScanID)
	}

	query.WriteString(" ORDER BY scan_id, position")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []*shopgrep.Product
	for rows.Next() {
		var p shopgrep.Product
		var price *int
		var tagsJSON, propsJSON string

		if err := rows.Scan(&p.ID, &p.ScanID, &p.Title, &price, &p.Rating,
			&p.Discount, &p.Offers, &p.Link, &p.Image, &p.Availability,
			&p.Quantity, &tagsJSON, &propsJSON, &p.Position); err != nil {
			return nil, err
		}
		p.Price = price

		if err := json.Unmarshal([]byte(tagsJSON), &p.Tags); err != nil {
			return nil, fmt.Errorf("failed to decode tags: %w", err)
		}
		if err := json.Unmarshal([]byte(propsJSON), &p.Properties); err != nil {
			return nil, fmt.Errorf("failed to decode properties: %w", err)
		}

		products = append(products, &p)
	}

	return products, rows.Err()
}

// DeleteProductsByScan removes all products for a scan.
func (s *ProductService) DeleteProductsByScan(ctx context.Context, scanID string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM products WHERE scan_id = ?", scanID)
	return err
}
