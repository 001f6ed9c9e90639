package postgres

import (
	"context"
	"fmt"

	"flyerstudio/internal/domain"
	"flyerstudio/internal/domain/models"
	"flyerstudio/internal/domain/repositories"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresProductRepository implements the ProductRepository interface
type PostgresProductRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewProductRepository creates a new product repository
func NewProductRepository(config *RepositoryConfig) repositories.ProductRepository {
	return &PostgresProductRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

// GetByCode retrieves a product by its natural key
func (r *PostgresProductRepository) GetByCode(ctx context.Context, code string) (*models.Product, error) {
	query := fmt.Sprintf(`
		SELECT id, code, description, price, category, specifications
		FROM %s
		WHERE code = $1
	`, r.tables.Products)

	var product models.Product
	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query, code).Scan(
		&product.ID,
		&product.Code,
		&product.Description,
		&product.Price,
		&product.Category,
		&product.Specifications,
	)
	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, fmt.Errorf("product %s: %w", code, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get product by code: %w", err)
	}

	return &product, nil
}

// Create inserts a new product
func (r *PostgresProductRepository) Create(ctx context.Context, product *models.Product) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (id, code, description, price, category, specifications)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, r.tables.Products)

	executor := GetExecutor(ctx, r.pool)
	_, err := executor.Exec(ctx, query,
		product.ID,
		product.Code,
		product.Description,
		product.Price,
		product.Category,
		product.Specifications,
	)
	if err != nil {
		if IsPgDuplicateError(err) {
			return &domain.ConflictError{
				Message:      fmt.Sprintf("product with code %s already exists", product.Code),
				ResourceType: "product",
				ResourceID:   product.ID,
			}
		}
		return fmt.Errorf("create product: %w", err)
	}

	return nil
}

// Update rewrites a product's mutable fields in place
func (r *PostgresProductRepository) Update(ctx context.Context, product *models.Product) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET description = $1, price = $2, category = $3, specifications = $4
		WHERE id = $5
	`, r.tables.Products)

	executor := GetExecutor(ctx, r.pool)
	result, err := executor.Exec(ctx, query,
		product.Description,
		product.Price,
		product.Category,
		product.Specifications,
		product.ID,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("product %s: %w", product.ID, domain.ErrNotFound)
	}

	return nil
}

// List returns every catalog product ordered by code
func (r *PostgresProductRepository) List(ctx context.Context) ([]models.Product, error) {
	query := fmt.Sprintf(`
		SELECT id, code, description, price, category, specifications
		FROM %s
		ORDER BY code
	`, r.tables.Products)

	executor := GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	return scanProducts(rows)
}

// ListByProject returns the products linked to a project
func (r *PostgresProductRepository) ListByProject(ctx context.Context, projectID string) ([]models.Product, error) {
	query := fmt.Sprintf(`
		SELECT p.id, p.code, p.description, p.price, p.category, p.specifications
		FROM %s l
		JOIN %s p ON p.id = l.product_id
		WHERE l.project_id = $1
		ORDER BY p.code
	`, r.tables.ProjectProducts, r.tables.Products)

	executor := GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("list project products: %w", err)
	}
	defer rows.Close()

	return scanProducts(rows)
}

func scanProducts(rows pgx.Rows) ([]models.Product, error) {
	var products []models.Product
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.Code, &p.Description, &p.Price, &p.Category, &p.Specifications); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate products: %w", err)
	}

	if products == nil {
		products = []models.Product{}
	}

	return products, nil
}
