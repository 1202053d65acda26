package repository

import (
	"context"

	"vitrine/internal/catalog"
	"vitrine/internal/database"
)

type CategoryRepository interface {
	ListAll(ctx context.Context) ([]catalog.Category, error)
}

type PostgresCategoryRepository struct {
	db database.DB
}

func NewPostgresCategoryRepository(db database.DB) *PostgresCategoryRepository {
	return &PostgresCategoryRepository{db: db}
}

func (r *PostgresCategoryRepository) ListAll(ctx context.Context) ([]catalog.Category, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, COALESCE(name, ''), COALESCE(icon, ''), COALESCE(slug, ''), parent_id
		 FROM categories
		 ORDER BY parent_id NULLS FIRST, name`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]catalog.Category, 0)
	for rows.Next() {
		var c catalog.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Icon, &c.Slug, &c.ParentID); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
