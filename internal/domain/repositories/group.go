package repositories

import (
	"context"

	"flyerstudio/internal/domain/models"
)

// GroupRepository persists product groups and their ordered membership.
// Groups are owned by exactly one project and are never deduplicated:
// every save creates fresh rows.
type GroupRepository interface {
	// Create inserts a group row plus one membership row per product,
	// preserving the order of group.Products.
	Create(ctx context.Context, projectID string, group *models.ProductGroup) error

	// ListByProject returns the project's groups ordered by position,
	// each with its products in membership order.
	ListByProject(ctx context.Context, projectID string) ([]models.ProductGroup, error)

	// DeleteByProject removes all of the project's groups. Membership
	// rows go with them via cascading foreign keys.
	DeleteByProject(ctx context.Context, projectID string) error
}
