package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"vitrine/internal/catalog"
	"vitrine/internal/database"
)

var ErrProductNotFound = errors.New("product not found")

type ProductRepository interface {
	ListActive(ctx context.Context) ([]catalog.Product, error)
	FindByID(ctx context.Context, id uuid.UUID) (catalog.Product, error)
}

type PostgresProductRepository struct {
	db database.DB
}

func NewPostgresProductRepository(db database.DB) *PostgresProductRepository {
	return &PostgresProductRepository{db: db}
}

const productColumns = `id, name, description, price, promotional_price,
	category_id, subcategory_id, colors, sizes, stock, images, created_at`

// ListActive returns the catalog snapshot in load order (newest first).
// Localized display fields and numeric coercions are applied here, exactly
// once; the search engine never re-derives them.
func (r *PostgresProductRepository) ListActive(ctx context.Context) ([]catalog.Product, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+productColumns+`
		 FROM products
		 WHERE status = 'active'
		 ORDER BY created_at DESC, id`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]catalog.Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresProductRepository) FindByID(ctx context.Context, id uuid.UUID) (catalog.Product, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+productColumns+` FROM products WHERE id = $1 AND status = 'active'`,
		id,
	)
	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return catalog.Product{}, ErrProductNotFound
		}
		return catalog.Product{}, err
	}
	return p, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanProduct(s scanner) (catalog.Product, error) {
	var (
		p        catalog.Product
		nameRaw  []byte
		descRaw  []byte
		catID    *uuid.UUID
		subID    *uuid.UUID
		promo    *float64
		colors   []string
		sizes    []string
		images   []string
		created  time.Time
	)

	err := s.Scan(
		&p.ID, &nameRaw, &descRaw, &p.Price, &promo,
		&catID, &subID, &colors, &sizes, &p.Stock, &images, &created,
	)
	if err != nil {
		return catalog.Product{}, err
	}

	p.Name = decodeLocalized(nameRaw)
	p.Description = decodeLocalized(descRaw)
	p.DisplayName = p.Name.Resolve(catalog.NamePlaceholder)
	p.DisplayDescription = p.Description.Resolve("")
	p.PromotionalPrice = promo
	p.CategoryID = catID
	p.SubcategoryID = subID
	p.Colors = colors
	p.Sizes = sizes
	p.Images = images
	p.CreatedAt = created
	if p.Price < 0 {
		p.Price = 0
	}
	if p.Stock < 0 {
		p.Stock = 0
	}
	return p, nil
}

func decodeLocalized(raw []byte) catalog.LocalizedText {
	if len(raw) == 0 {
		return catalog.LocalizedText{}
	}
	var m map[string]string
	if err := json.Unmarshal(raw, &m); err != nil || m == nil {
		return catalog.LocalizedText{}
	}
	return catalog.LocalizedText(m)
}
