package repositories

import (
	"context"

	"flyerstudio/internal/domain/models"
)

// ConfigRepository persists flyer configs. A config belongs to exactly
// one project; updates happen in place so the id is stable for the
// lifetime of the project.
type ConfigRepository interface {
	Create(ctx context.Context, cfg *models.FlyerConfig) error
	Update(ctx context.Context, cfg *models.FlyerConfig) error
	Delete(ctx context.Context, id string) error
}
