package repositories

import (
	"context"

	"flyerstudio/internal/domain/models"
)

// ProjectRepository persists flyer project rows and their product links.
// Aggregate assembly (config, groups, product union) is the service's
// job; each method here touches exactly one table apart from the join
// used to hydrate the owned config.
type ProjectRepository interface {
	// Create inserts a project row. The config referenced by
	// project.Config.ID must already exist.
	Create(ctx context.Context, project *models.Project) error

	// GetByID retrieves a project row with its config hydrated.
	// Groups and Products are left empty.
	GetByID(ctx context.Context, id string) (*models.Project, error)

	// Update rewrites the project's name and updated_at timestamp.
	Update(ctx context.Context, project *models.Project) error

	// Delete removes the project row and returns the id of its owned
	// config so the caller can remove it in the same transaction.
	// Group and link rows are removed by cascading foreign keys.
	Delete(ctx context.Context, id string) (configID string, err error)

	// ListPage returns one page of summaries ordered by updated_at DESC.
	ListPage(ctx context.Context, limit, offset int) ([]models.ProjectSummary, error)

	// Count returns the total number of projects.
	Count(ctx context.Context) (int64, error)

	// SetProducts replaces the project's product association rows with
	// the given product ids.
	SetProducts(ctx context.Context, projectID string, productIDs []string) error
}
