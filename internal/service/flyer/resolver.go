package flyer

import (
	"context"
	"errors"

	"flyerstudio/internal/domain"
	"flyerstudio/internal/domain/models"
	"flyerstudio/internal/domain/repositories"
	"flyerstudio/internal/domain/services"

	"github.com/google/uuid"
)

// productResolver upserts products by their natural key within a
// single save or import call. A request-local memo guarantees that one
// code resolves to exactly one persisted row per call, even when the
// same code appears several times in the request. The resolver is
// discarded when the call completes.
type productResolver struct {
	repo repositories.ProductRepository
	seen map[string]*models.Product
}

func newProductResolver(repo repositories.ProductRepository) *productResolver {
	return &productResolver{
		repo: repo,
		seen: make(map[string]*models.Product),
	}
}

// resolve returns the existing product for the payload's code or
// creates and persists a new one with a fresh identifier.
func (r *productResolver) resolve(ctx context.Context, payload services.ProductPayload) (*models.Product, error) {
	if product, ok := r.seen[payload.Code]; ok {
		return product, nil
	}

	existing, err := r.repo.GetByCode(ctx, payload.Code)
	if err == nil {
		r.seen[payload.Code] = existing
		return existing, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	product := &models.Product{
		ID:             uuid.NewString(),
		Code:           payload.Code,
		Description:    payload.Description,
		Price:          payload.Price,
		Category:       payload.Category,
		Specifications: payload.Specifications,
	}
	if err := r.repo.Create(ctx, product); err != nil {
		return nil, err
	}

	r.seen[payload.Code] = product
	return product, nil
}
