package seeder

import (
	"context"

	"vitrine/internal/database"
)

type SchemaSeeder struct{}

func (SchemaSeeder) Name() string { return "schema" }

func (SchemaSeeder) Run(ctx context.Context, db database.DB) error {
	stmts := []string{
		`CREATE EXTENSION IF NOT EXISTS pgcrypto`,
		`CREATE TABLE IF NOT EXISTS categories (
			id         uuid PRIMARY KEY DEFAULT gen_random_uuid(),
			name       text NOT NULL,
			icon       text NOT NULL DEFAULT '',
			slug       text NOT NULL UNIQUE,
			parent_id  uuid REFERENCES categories(id),
			created_at timestamptz NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS products (
			id                 uuid PRIMARY KEY DEFAULT gen_random_uuid(),
			name               jsonb NOT NULL DEFAULT '{}',
			description        jsonb NOT NULL DEFAULT '{}',
			price              numeric(12,2) NOT NULL DEFAULT 0 CHECK (price >= 0),
			promotional_price  numeric(12,2) CHECK (promotional_price >= 0),
			category_id        uuid REFERENCES categories(id),
			subcategory_id     uuid REFERENCES categories(id),
			colors             text[] NOT NULL DEFAULT '{}',
			sizes              text[] NOT NULL DEFAULT '{}',
			stock              integer NOT NULL DEFAULT 0 CHECK (stock >= 0),
			images             text[] NOT NULL DEFAULT '{}',
			status             text NOT NULL DEFAULT 'active',
			created_at         timestamptz NOT NULL DEFAULT now()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_products_category ON products(category_id)`,
		`CREATE INDEX IF NOT EXISTS idx_products_status ON products(status)`,
	}

	for _, stmt := range stmts {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
