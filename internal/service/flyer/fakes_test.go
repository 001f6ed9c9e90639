package flyer

import (
	"context"
	"fmt"
	"sort"
	"time"

	"flyerstudio/internal/domain"
	"flyerstudio/internal/domain/models"
	"flyerstudio/internal/domain/repositories"
)

// fakeTxManager runs the function directly; the in-memory store has no
// transactional semantics to enforce.
type fakeTxManager struct{}

func (fakeTxManager) ExecTx(ctx context.Context, fn repositories.TxFn) error {
	return fn(ctx)
}

type projectRow struct {
	id        string
	name      string
	configID  string
	createdAt time.Time
	updatedAt time.Time
}

// fakeStore backs all fake repositories with shared in-memory state,
// mirroring the relational layout: project rows, config rows, groups
// owned per project, shared products and project-product links.
type fakeStore struct {
	projects map[string]*projectRow
	configs  map[string]*models.FlyerConfig
	groups   map[string][]models.ProductGroup // project id -> groups
	products map[string]*models.Product       // product id -> product
	links    map[string][]string              // project id -> product ids
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		projects: make(map[string]*projectRow),
		configs:  make(map[string]*models.FlyerConfig),
		groups:   make(map[string][]models.ProductGroup),
		products: make(map[string]*models.Product),
		links:    make(map[string][]string),
	}
}

func (s *fakeStore) productByCode(code string) *models.Product {
	for _, p := range s.products {
		if p.Code == code {
			return p
		}
	}
	return nil
}

type fakeProjectRepo struct{ store *fakeStore }

func (r *fakeProjectRepo) Create(_ context.Context, project *models.Project) error {
	r.store.projects[project.ID] = &projectRow{
		id:        project.ID,
		name:      project.Name,
		configID:  project.Config.ID,
		createdAt: project.CreatedAt,
		updatedAt: project.UpdatedAt,
	}
	return nil
}

func (r *fakeProjectRepo) GetByID(_ context.Context, id string) (*models.Project, error) {
	row, ok := r.store.projects[id]
	if !ok {
		return nil, fmt.Errorf("project %s: %w", id, domain.ErrNotFound)
	}
	cfg := r.store.configs[row.configID]
	return &models.Project{
		ID:        row.id,
		Name:      row.name,
		Config:    *cfg,
		CreatedAt: row.createdAt,
		UpdatedAt: row.updatedAt,
	}, nil
}

func (r *fakeProjectRepo) Update(_ context.Context, project *models.Project) error {
	row, ok := r.store.projects[project.ID]
	if !ok {
		return fmt.Errorf("project %s: %w", project.ID, domain.ErrNotFound)
	}
	row.name = project.Name
	row.updatedAt = project.UpdatedAt
	return nil
}

func (r *fakeProjectRepo) Delete(_ context.Context, id string) (string, error) {
	row, ok := r.store.projects[id]
	if !ok {
		return "", fmt.Errorf("project %s: %w", id, domain.ErrNotFound)
	}
	delete(r.store.projects, id)
	// Cascades performed by foreign keys in the real schema.
	delete(r.store.groups, id)
	delete(r.store.links, id)
	return row.configID, nil
}

func (r *fakeProjectRepo) ListPage(_ context.Context, limit, offset int) ([]models.ProjectSummary, error) {
	rows := make([]*projectRow, 0, len(r.store.projects))
	for _, row := range r.store.projects {
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].updatedAt.After(rows[j].updatedAt)
	})

	summaries := []models.ProjectSummary{}
	for i := offset; i < len(rows) && i < offset+limit; i++ {
		summaries = append(summaries, models.ProjectSummary{
			ID:        rows[i].id,
			Name:      rows[i].name,
			UpdatedAt: rows[i].updatedAt,
		})
	}
	return summaries, nil
}

func (r *fakeProjectRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.store.projects)), nil
}

func (r *fakeProjectRepo) SetProducts(_ context.Context, projectID string, productIDs []string) error {
	r.store.links[projectID] = append([]string(nil), productIDs...)
	return nil
}

type fakeConfigRepo struct{ store *fakeStore }

func (r *fakeConfigRepo) Create(_ context.Context, cfg *models.FlyerConfig) error {
	copied := *cfg
	r.store.configs[cfg.ID] = &copied
	return nil
}

func (r *fakeConfigRepo) Update(_ context.Context, cfg *models.FlyerConfig) error {
	if _, ok := r.store.configs[cfg.ID]; !ok {
		return fmt.Errorf("flyer config %s: %w", cfg.ID, domain.ErrNotFound)
	}
	copied := *cfg
	r.store.configs[cfg.ID] = &copied
	return nil
}

func (r *fakeConfigRepo) Delete(_ context.Context, id string) error {
	delete(r.store.configs, id)
	return nil
}

type fakeGroupRepo struct{ store *fakeStore }

func (r *fakeGroupRepo) Create(_ context.Context, projectID string, group *models.ProductGroup) error {
	copied := *group
	copied.Products = append([]models.Product(nil), group.Products...)
	r.store.groups[projectID] = append(r.store.groups[projectID], copied)
	return nil
}

func (r *fakeGroupRepo) ListByProject(_ context.Context, projectID string) ([]models.ProductGroup, error) {
	groups := append([]models.ProductGroup(nil), r.store.groups[projectID]...)
	sort.Slice(groups, func(i, j int) bool {
		return groups[i].Position < groups[j].Position
	})
	if groups == nil {
		groups = []models.ProductGroup{}
	}
	return groups, nil
}

func (r *fakeGroupRepo) DeleteByProject(_ context.Context, projectID string) error {
	delete(r.store.groups, projectID)
	return nil
}

type fakeProductRepo struct{ store *fakeStore }

func (r *fakeProductRepo) GetByCode(_ context.Context, code string) (*models.Product, error) {
	if product := r.store.productByCode(code); product != nil {
		copied := *product
		return &copied, nil
	}
	return nil, fmt.Errorf("product %s: %w", code, domain.ErrNotFound)
}

func (r *fakeProductRepo) Create(_ context.Context, product *models.Product) error {
	if r.store.productByCode(product.Code) != nil {
		return &domain.ConflictError{
			Message:      fmt.Sprintf("product with code %s already exists", product.Code),
			ResourceType: "product",
			ResourceID:   product.ID,
		}
	}
	copied := *product
	r.store.products[product.ID] = &copied
	return nil
}

func (r *fakeProductRepo) Update(_ context.Context, product *models.Product) error {
	if _, ok := r.store.products[product.ID]; !ok {
		return fmt.Errorf("product %s: %w", product.ID, domain.ErrNotFound)
	}
	copied := *product
	r.store.products[product.ID] = &copied
	return nil
}

func (r *fakeProductRepo) List(_ context.Context) ([]models.Product, error) {
	products := []models.Product{}
	for _, p := range r.store.products {
		products = append(products, *p)
	}
	sort.Slice(products, func(i, j int) bool {
		return products[i].Code < products[j].Code
	})
	return products, nil
}

func (r *fakeProductRepo) ListByProject(_ context.Context, projectID string) ([]models.Product, error) {
	products := []models.Product{}
	for _, id := range r.store.links[projectID] {
		if p, ok := r.store.products[id]; ok {
			products = append(products, *p)
		}
	}
	sort.Slice(products, func(i, j int) bool {
		return products[i].Code < products[j].Code
	})
	return products, nil
}
