package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// EnsureSchema creates the flyer tables if they do not exist yet.
// Project-owned rows (groups, membership, product links) carry
// ON DELETE CASCADE so deleting a project row takes its aggregate with
// it; the config row is removed explicitly by the lifecycle service.
// Shared products are never cascaded.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool, tables *TableNames) error {
	statements := []string{
		fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				id UUID PRIMARY KEY,
				title TEXT NOT NULL DEFAULT '',
				header_text TEXT NOT NULL DEFAULT '',
				footer_text TEXT NOT NULL DEFAULT '',
				header_image_url TEXT NOT NULL DEFAULT '',
				footer_image_url TEXT NOT NULL DEFAULT '',
				background_color TEXT NOT NULL DEFAULT '',
				primary_color TEXT NOT NULL DEFAULT '',
				secondary_color TEXT NOT NULL DEFAULT ''
			)`, tables.Configs),
		fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				id UUID PRIMARY KEY,
				code TEXT NOT NULL UNIQUE,
				description TEXT NOT NULL DEFAULT '',
				price NUMERIC(12,2) NOT NULL DEFAULT 0,
				category TEXT NOT NULL DEFAULT '',
				specifications TEXT NOT NULL DEFAULT ''
			)`, tables.Products),
		fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				id UUID PRIMARY KEY,
				name TEXT NOT NULL,
				config_id UUID NOT NULL REFERENCES %s(id),
				created_at TIMESTAMPTZ NOT NULL,
				updated_at TIMESTAMPTZ NOT NULL
			)`, tables.Projects, tables.Configs),
		fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				id UUID PRIMARY KEY,
				project_id UUID NOT NULL REFERENCES %s(id) ON DELETE CASCADE,
				group_type TEXT NOT NULL,
				title TEXT NOT NULL DEFAULT '',
				image TEXT NOT NULL DEFAULT '',
				position INTEGER NOT NULL,
				page INTEGER
			)`, tables.Groups, tables.Projects),
		fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				group_id UUID NOT NULL REFERENCES %s(id) ON DELETE CASCADE,
				product_id UUID NOT NULL REFERENCES %s(id),
				ordinal INTEGER NOT NULL,
				PRIMARY KEY (group_id, ordinal)
			)`, tables.GroupMembers, tables.Groups, tables.Products),
		fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				project_id UUID NOT NULL REFERENCES %s(id) ON DELETE CASCADE,
				product_id UUID NOT NULL REFERENCES %s(id),
				PRIMARY KEY (project_id, product_id)
			)`, tables.ProjectProducts, tables.Projects, tables.Products),
		fmt.Sprintf(`
			CREATE INDEX IF NOT EXISTS %s_updated_at_idx ON %s (updated_at DESC)
		`, tables.Projects, tables.Projects),
	}

	for _, stmt := range statements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}

	return nil
}
