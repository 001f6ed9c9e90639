package postgres

import (
	"context"
	"fmt"

	"flyerstudio/internal/domain"
	"flyerstudio/internal/domain/models"
	"flyerstudio/internal/domain/repositories"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresProjectRepository implements the ProjectRepository interface
type PostgresProjectRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(config *RepositoryConfig) repositories.ProjectRepository {
	return &PostgresProjectRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

// Create inserts a project row referencing its already-persisted config
func (r *PostgresProjectRepository) Create(ctx context.Context, project *models.Project) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (id, name, config_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`, r.tables.Projects)

	executor := GetExecutor(ctx, r.pool)
	_, err := executor.Exec(ctx, query,
		project.ID,
		project.Name,
		project.Config.ID,
		project.CreatedAt,
		project.UpdatedAt,
	)
	if err != nil {
		if IsPgDuplicateError(err) {
			return &domain.ConflictError{
				Message:      fmt.Sprintf("project %s already exists", project.ID),
				ResourceType: "project",
				ResourceID:   project.ID,
			}
		}
		return fmt.Errorf("create project: %w", err)
	}

	return nil
}

// GetByID retrieves a project row with its config hydrated in one join
func (r *PostgresProjectRepository) GetByID(ctx context.Context, id string) (*models.Project, error) {
	query := fmt.Sprintf(`
		SELECT p.id, p.name, p.created_at, p.updated_at,
		       c.id, c.title, c.header_text, c.footer_text,
		       c.header_image_url, c.footer_image_url,
		       c.background_color, c.primary_color, c.secondary_color
		FROM %s p
		JOIN %s c ON c.id = p.config_id
		WHERE p.id = $1
	`, r.tables.Projects, r.tables.Configs)

	var project models.Project
	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query, id).Scan(
		&project.ID,
		&project.Name,
		&project.CreatedAt,
		&project.UpdatedAt,
		&project.Config.ID,
		&project.Config.Title,
		&project.Config.HeaderText,
		&project.Config.FooterText,
		&project.Config.HeaderImageURL,
		&project.Config.FooterImageURL,
		&project.Config.BackgroundColor,
		&project.Config.PrimaryColor,
		&project.Config.SecondaryColor,
	)
	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, fmt.Errorf("project %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get project: %w", err)
	}

	return &project, nil
}

// Update rewrites the project's name and updated_at timestamp
func (r *PostgresProjectRepository) Update(ctx context.Context, project *models.Project) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET name = $1, updated_at = $2
		WHERE id = $3
	`, r.tables.Projects)

	executor := GetExecutor(ctx, r.pool)
	result, err := executor.Exec(ctx, query,
		project.Name,
		project.UpdatedAt,
		project.ID,
	)
	if err != nil {
		return fmt.Errorf("update project: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("project %s: %w", project.ID, domain.ErrNotFound)
	}

	return nil
}

// Delete removes the project row and reports the orphaned config id.
// Groups, membership and product links fall away via ON DELETE CASCADE.
func (r *PostgresProjectRepository) Delete(ctx context.Context, id string) (string, error) {
	query := fmt.Sprintf(`
		DELETE FROM %s
		WHERE id = $1
		RETURNING config_id
	`, r.tables.Projects)

	var configID string
	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query, id).Scan(&configID)
	if err != nil {
		if IsPgNoRowsError(err) {
			return "", fmt.Errorf("project %s: %w", id, domain.ErrNotFound)
		}
		return "", fmt.Errorf("delete project: %w", err)
	}

	return configID, nil
}

// ListPage returns one page of summaries ordered by updated_at DESC
func (r *PostgresProjectRepository) ListPage(ctx context.Context, limit, offset int) ([]models.ProjectSummary, error) {
	query := fmt.Sprintf(`
		SELECT id, name, updated_at
		FROM %s
		ORDER BY updated_at DESC
		LIMIT $1 OFFSET $2
	`, r.tables.Projects)

	executor := GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	var summaries []models.ProjectSummary
	for rows.Next() {
		var s models.ProjectSummary
		if err := rows.Scan(&s.ID, &s.Name, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan project summary: %w", err)
		}
		summaries = append(summaries, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate projects: %w", err)
	}

	// Return empty slice instead of nil if no projects
	if summaries == nil {
		summaries = []models.ProjectSummary{}
	}

	return summaries, nil
}

// Count returns the total number of projects
func (r *PostgresProjectRepository) Count(ctx context.Context) (int64, error) {
	query := fmt.Sprintf(`SELECT COUNT(*) FROM %s`, r.tables.Projects)

	var count int64
	executor := GetExecutor(ctx, r.pool)
	if err := executor.QueryRow(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("count projects: %w", err)
	}

	return count, nil
}

// SetProducts replaces the project's product association rows
func (r *PostgresProjectRepository) SetProducts(ctx context.Context, projectID string, productIDs []string) error {
	executor := GetExecutor(ctx, r.pool)

	deleteQuery := fmt.Sprintf(`DELETE FROM %s WHERE project_id = $1`, r.tables.ProjectProducts)
	if _, err := executor.Exec(ctx, deleteQuery, projectID); err != nil {
		return fmt.Errorf("clear project products: %w", err)
	}

	insertQuery := fmt.Sprintf(`
		INSERT INTO %s (project_id, product_id)
		VALUES ($1, $2)
	`, r.tables.ProjectProducts)

	for _, productID := range productIDs {
		if _, err := executor.Exec(ctx, insertQuery, projectID, productID); err != nil {
			return fmt.Errorf("link product %s: %w", productID, err)
		}
	}

	return nil
}
