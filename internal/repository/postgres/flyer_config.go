package postgres

import (
	"context"
	"fmt"

	"flyerstudio/internal/domain"
	"flyerstudio/internal/domain/models"
	"flyerstudio/internal/domain/repositories"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresConfigRepository implements the ConfigRepository interface
type PostgresConfigRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewConfigRepository creates a new flyer config repository
func NewConfigRepository(config *RepositoryConfig) repositories.ConfigRepository {
	return &PostgresConfigRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

// Create inserts a flyer config row
func (r *PostgresConfigRepository) Create(ctx context.Context, cfg *models.FlyerConfig) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (id, title, header_text, footer_text,
		                header_image_url, footer_image_url,
		                background_color, primary_color, secondary_color)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, r.tables.Configs)

	executor := GetExecutor(ctx, r.pool)
	_, err := executor.Exec(ctx, query,
		cfg.ID,
		cfg.Title,
		cfg.HeaderText,
		cfg.FooterText,
		cfg.HeaderImageURL,
		cfg.FooterImageURL,
		cfg.BackgroundColor,
		cfg.PrimaryColor,
		cfg.SecondaryColor,
	)
	if err != nil {
		return fmt.Errorf("create flyer config: %w", err)
	}

	return nil
}

// Update rewrites every presentation field in place, keeping the id
func (r *PostgresConfigRepository) Update(ctx context.Context, cfg *models.FlyerConfig) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET title = $1, header_text = $2, footer_text = $3,
		    header_image_url = $4, footer_image_url = $5,
		    background_color = $6, primary_color = $7, secondary_color = $8
		WHERE id = $9
	`, r.tables.Configs)

	executor := GetExecutor(ctx, r.pool)
	result, err := executor.Exec(ctx, query,
		cfg.Title,
		cfg.HeaderText,
		cfg.FooterText,
		cfg.HeaderImageURL,
		cfg.FooterImageURL,
		cfg.BackgroundColor,
		cfg.PrimaryColor,
		cfg.SecondaryColor,
		cfg.ID,
	)
	if err != nil {
		return fmt.Errorf("update flyer config: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("flyer config %s: %w", cfg.ID, domain.ErrNotFound)
	}

	return nil
}

// Delete removes a flyer config row
func (r *PostgresConfigRepository) Delete(ctx context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, r.tables.Configs)

	executor := GetExecutor(ctx, r.pool)
	if _, err := executor.Exec(ctx, query, id); err != nil {
		return fmt.Errorf("delete flyer config: %w", err)
	}

	return nil
}
