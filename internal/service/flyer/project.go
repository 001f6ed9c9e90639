package flyer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"flyerstudio/internal/domain"
	"flyerstudio/internal/domain/models"
	"flyerstudio/internal/domain/repositories"
	"flyerstudio/internal/domain/services"

	"github.com/google/uuid"
)

// projectService implements the ProjectService interface
type projectService struct {
	projectRepo repositories.ProjectRepository
	configRepo  repositories.ConfigRepository
	groupRepo   repositories.GroupRepository
	productRepo repositories.ProductRepository
	txManager   repositories.TransactionManager
	logger      *slog.Logger
}

// NewProjectService creates a new project service
func NewProjectService(
	projectRepo repositories.ProjectRepository,
	configRepo repositories.ConfigRepository,
	groupRepo repositories.GroupRepository,
	productRepo repositories.ProductRepository,
	txManager repositories.TransactionManager,
	logger *slog.Logger,
) services.ProjectService {
	return &projectService{
		projectRepo: projectRepo,
		configRepo:  configRepo,
		groupRepo:   groupRepo,
		productRepo: productRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Save creates a new project aggregate in one transaction
func (s *projectService) Save(ctx context.Context, req *services.SaveProjectRequest) (*models.Project, error) {
	if err := validateSaveRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	now := time.Now()
	project := &models.Project{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(req.Name),
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := s.txManager.ExecTx(ctx, func(txCtx context.Context) error {
		cfg := configFromPayload(&req.Config)
		cfg.ID = uuid.NewString()
		if err := s.configRepo.Create(txCtx, cfg); err != nil {
			return err
		}
		project.Config = *cfg

		if err := s.projectRepo.Create(txCtx, project); err != nil {
			return err
		}

		return s.buildAggregate(txCtx, project, req)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("project created",
		"id", project.ID,
		"name", project.Name,
		"groups", len(project.Groups),
		"products", len(project.Products),
	)

	return project, nil
}

// Update replaces the project's name and config in place and its
// groups wholesale. createdAt survives, updatedAt is refreshed.
func (s *projectService) Update(ctx context.Context, id string, req *services.SaveProjectRequest) (*models.Project, error) {
	if err := validateSaveRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	var project *models.Project
	err := s.txManager.ExecTx(ctx, func(txCtx context.Context) error {
		existing, err := s.projectRepo.GetByID(txCtx, id)
		if err != nil {
			return err
		}

		// Config is updated in place so its id stays stable.
		cfg := configFromPayload(&req.Config)
		cfg.ID = existing.Config.ID
		if err := s.configRepo.Update(txCtx, cfg); err != nil {
			return err
		}
		existing.Config = *cfg

		existing.Name = strings.TrimSpace(req.Name)
		existing.UpdatedAt = time.Now()
		if err := s.projectRepo.Update(txCtx, existing); err != nil {
			return err
		}

		// Old groups are discarded, never merged.
		if err := s.groupRepo.DeleteByProject(txCtx, id); err != nil {
			return err
		}

		if err := s.buildAggregate(txCtx, existing, req); err != nil {
			return err
		}

		project = existing
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("project updated",
		"id", project.ID,
		"name", project.Name,
		"groups", len(project.Groups),
	)

	return project, nil
}

// Get returns the full aggregate
func (s *projectService) Get(ctx context.Context, id string) (*models.Project, error) {
	project, err := s.projectRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	groups, err := s.groupRepo.ListByProject(ctx, id)
	if err != nil {
		return nil, err
	}
	project.Groups = groups

	products, err := s.productRepo.ListByProject(ctx, id)
	if err != nil {
		return nil, err
	}
	project.Products = products

	return project, nil
}

// Delete removes the project with its config and groups. Shared
// products are left alone.
func (s *projectService) Delete(ctx context.Context, id string) error {
	err := s.txManager.ExecTx(ctx, func(txCtx context.Context) error {
		configID, err := s.projectRepo.Delete(txCtx, id)
		if err != nil {
			return err
		}
		return s.configRepo.Delete(txCtx, configID)
	})
	if err != nil {
		return err
	}

	s.logger.Info("project deleted", "id", id)
	return nil
}

// List returns one zero-based page of summaries, most recently touched
// first. An out-of-range page yields an empty list, not an error.
func (s *projectService) List(ctx context.Context, page, size int) (*models.ProjectPage, error) {
	if page < 0 {
		return nil, fmt.Errorf("%w: page must not be negative", domain.ErrValidation)
	}
	if size <= 0 {
		return nil, fmt.Errorf("%w: size must be positive", domain.ErrValidation)
	}

	total, err := s.projectRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	summaries, err := s.projectRepo.ListPage(ctx, size, page*size)
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(size) - 1) / int64(size))

	return &models.ProjectPage{
		Projects:      summaries,
		CurrentPage:   page,
		TotalPages:    totalPages,
		TotalElements: total,
		Size:          size,
		HasNext:       page+1 < totalPages,
		HasPrevious:   page > 0,
	}, nil
}

// buildAggregate constructs and persists the request's groups and the
// project's deduplicated product union. Must run inside the caller's
// transaction, after the project row exists.
func (s *projectService) buildAggregate(ctx context.Context, project *models.Project, req *services.SaveProjectRequest) error {
	resolver := newProductResolver(s.productRepo)

	union := make([]models.Product, 0)
	linked := make(map[string]bool) // product id -> already in union

	groups := make([]models.ProductGroup, 0, len(req.Groups))
	codesInGroups := make(map[string]bool)
	for i := range req.Groups {
		payload := &req.Groups[i]

		group := models.ProductGroup{
			ID:       uuid.NewString(),
			Type:     payload.Type,
			Title:    payload.Title,
			Image:    payload.Image,
			Position: payload.Position,
			Page:     payload.Page,
		}
		if group.Image == "" {
			group.Image = deriveGroupImage(payload.Products)
		}

		group.Products = make([]models.Product, 0, len(payload.Products))
		for _, productPayload := range payload.Products {
			codesInGroups[productPayload.Code] = true
			product, err := resolver.resolve(ctx, productPayload)
			if err != nil {
				return err
			}
			group.Products = append(group.Products, *product)
			if !linked[product.ID] {
				linked[product.ID] = true
				union = append(union, *product)
			}
		}

		if err := s.groupRepo.Create(ctx, project.ID, &group); err != nil {
			return err
		}
		groups = append(groups, group)
	}

	// Standalone products whose code also appears inside a group are
	// folded into the group reference, not persisted twice.
	for _, productPayload := range req.Products {
		if codesInGroups[productPayload.Code] {
			continue
		}
		product, err := resolver.resolve(ctx, productPayload)
		if err != nil {
			return err
		}
		if !linked[product.ID] {
			linked[product.ID] = true
			union = append(union, *product)
		}
	}

	productIDs := make([]string, len(union))
	for i := range union {
		productIDs[i] = union[i].ID
	}
	if err := s.projectRepo.SetProducts(ctx, project.ID, productIDs); err != nil {
		return err
	}

	project.Groups = groups
	project.Products = union
	return nil
}

// configFromPayload maps config payload fields onto a model. The id is
// left for the caller to assign.
func configFromPayload(payload *services.FlyerConfigPayload) *models.FlyerConfig {
	return &models.FlyerConfig{
		Title:           payload.Title,
		HeaderText:      payload.HeaderText,
		FooterText:      payload.FooterText,
		HeaderImageURL:  payload.HeaderImageURL,
		FooterImageURL:  payload.FooterImageURL,
		BackgroundColor: payload.BackgroundColor,
		PrimaryColor:    payload.PrimaryColor,
		SecondaryColor:  payload.SecondaryColor,
	}
}
