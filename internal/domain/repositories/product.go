package repositories

import (
	"context"

	"flyerstudio/internal/domain/models"
)

// ProductRepository persists shared catalog products. The code column
// carries a unique constraint; it is the natural key for upserts.
type ProductRepository interface {
	// GetByCode retrieves a product by its natural key.
	// Returns domain.ErrNotFound (wrapped) when no product has the code.
	GetByCode(ctx context.Context, code string) (*models.Product, error)

	// Create inserts a new product.
	Create(ctx context.Context, product *models.Product) error

	// Update rewrites a product's mutable fields in place.
	Update(ctx context.Context, product *models.Product) error

	// List returns every catalog product ordered by code.
	List(ctx context.Context) ([]models.Product, error)

	// ListByProject returns the products linked to a project.
	ListByProject(ctx context.Context, projectID string) ([]models.Product, error)
}
