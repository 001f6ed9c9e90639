package postgres

import (
	"context"
	"fmt"

	"flyerstudio/internal/domain/models"
	"flyerstudio/internal/domain/repositories"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresGroupRepository implements the GroupRepository interface
type PostgresGroupRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewGroupRepository creates a new product group repository
func NewGroupRepository(config *RepositoryConfig) repositories.GroupRepository {
	return &PostgresGroupRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

// Create inserts a group row plus one ordered membership row per product
func (r *PostgresGroupRepository) Create(ctx context.Context, projectID string, group *models.ProductGroup) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (id, project_id, group_type, title, image, position, page)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, r.tables.Groups)

	executor := GetExecutor(ctx, r.pool)
	_, err := executor.Exec(ctx, query,
		group.ID,
		projectID,
		group.Type,
		group.Title,
		group.Image,
		group.Position,
		group.Page,
	)
	if err != nil {
		return fmt.Errorf("create product group: %w", err)
	}

	memberQuery := fmt.Sprintf(`
		INSERT INTO %s (group_id, product_id, ordinal)
		VALUES ($1, $2, $3)
	`, r.tables.GroupMembers)

	for ordinal, product := range group.Products {
		if _, err := executor.Exec(ctx, memberQuery, group.ID, product.ID, ordinal); err != nil {
			return fmt.Errorf("add group member %s: %w", product.Code, err)
		}
	}

	return nil
}

// ListByProject returns the project's groups ordered by position, each
// with its products in membership order
func (r *PostgresGroupRepository) ListByProject(ctx context.Context, projectID string) ([]models.ProductGroup, error) {
	groupQuery := fmt.Sprintf(`
		SELECT id, group_type, title, image, position, page
		FROM %s
		WHERE project_id = $1
		ORDER BY position
	`, r.tables.Groups)

	executor := GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, groupQuery, projectID)
	if err != nil {
		return nil, fmt.Errorf("list product groups: %w", err)
	}
	defer rows.Close()

	var groups []models.ProductGroup
	for rows.Next() {
		var g models.ProductGroup
		if err := rows.Scan(&g.ID, &g.Type, &g.Title, &g.Image, &g.Position, &g.Page); err != nil {
			return nil, fmt.Errorf("scan product group: %w", err)
		}
		groups = append(groups, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate product groups: %w", err)
	}

	memberQuery := fmt.Sprintf(`
		SELECT p.id, p.code, p.description, p.price, p.category, p.specifications
		FROM %s m
		JOIN %s p ON p.id = m.product_id
		WHERE m.group_id = $1
		ORDER BY m.ordinal
	`, r.tables.GroupMembers, r.tables.Products)

	for i := range groups {
		products, err := r.listMembers(ctx, executor, memberQuery, groups[i].ID)
		if err != nil {
			return nil, err
		}
		groups[i].Products = products
	}

	if groups == nil {
		groups = []models.ProductGroup{}
	}

	return groups, nil
}

// DeleteByProject removes all of the project's groups
func (r *PostgresGroupRepository) DeleteByProject(ctx context.Context, projectID string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE project_id = $1`, r.tables.Groups)

	executor := GetExecutor(ctx, r.pool)
	if _, err := executor.Exec(ctx, query, projectID); err != nil {
		return fmt.Errorf("delete product groups: %w", err)
	}

	return nil
}

func (r *PostgresGroupRepository) listMembers(ctx context.Context, executor repositories.DBTX, query, groupID string) ([]models.Product, error) {
	rows, err := executor.Query(ctx, query, groupID)
	if err != nil {
		return nil, fmt.Errorf("list group members: %w", err)
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.Code, &p.Description, &p.Price, &p.Category, &p.Specifications); err != nil {
			return nil, fmt.Errorf("scan group member: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate group members: %w", err)
	}

	if products == nil {
		products = []models.Product{}
	}

	return products, nil
}
