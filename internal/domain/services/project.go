package services

import (
	"context"

	"flyerstudio/internal/domain/models"

	"github.com/shopspring/decimal"
)

// ProductPayload is a product as submitted by the editor. The code is
// the natural key: two payloads with the same code resolve to the same
// persisted product within one save.
type ProductPayload struct {
	Code           string          `json:"code"`
	Description    string          `json:"description"`
	Price          decimal.Decimal `json:"price"`
	Category       string          `json:"category,omitempty"`
	Specifications string          `json:"specifications,omitempty"`
}

// ProductGroupPayload is a group as submitted by the editor. When
// Image is empty the persisted image path is derived from the first
// product's code.
type ProductGroupPayload struct {
	Type     models.GroupType `json:"type"`
	Title    string           `json:"title"`
	Image    string           `json:"image,omitempty"`
	Position int              `json:"position"`
	Page     *int             `json:"page,omitempty"`
	Products []ProductPayload `json:"products"`
}

// FlyerConfigPayload carries the presentation settings of a save or
// update request. Color strings are free-form and not validated.
type FlyerConfigPayload struct {
	Title           string `json:"title"`
	HeaderText      string `json:"headerText"`
	FooterText      string `json:"footerText"`
	HeaderImageURL  string `json:"headerImageUrl"`
	FooterImageURL  string `json:"footerImageUrl"`
	BackgroundColor string `json:"backgroundColor"`
	PrimaryColor    string `json:"primaryColor"`
	SecondaryColor  string `json:"secondaryColor"`
}

// SaveProjectRequest is the payload for both create and update.
// Products lists standalone products; any of them whose code also
// appears inside a group is folded into the group reference.
type SaveProjectRequest struct {
	Name     string                `json:"name"`
	Config   FlyerConfigPayload    `json:"config"`
	Groups   []ProductGroupPayload `json:"groups"`
	Products []ProductPayload      `json:"products,omitempty"`
}

// ProjectService manages the flyer project aggregate lifecycle.
type ProjectService interface {
	// Save creates a new project from the request. The whole aggregate
	// is persisted in one transaction; createdAt equals updatedAt on
	// the returned project.
	Save(ctx context.Context, req *SaveProjectRequest) (*models.Project, error)

	// Update replaces the project's name and config fields in place and
	// its groups wholesale. createdAt is untouched, updatedAt refreshed.
	Update(ctx context.Context, id string, req *SaveProjectRequest) (*models.Project, error)

	// Get returns the full aggregate or domain.ErrNotFound.
	Get(ctx context.Context, id string) (*models.Project, error)

	// Delete removes the project and its owned config and groups.
	// Shared products survive. Returns domain.ErrNotFound when no
	// project has the id.
	Delete(ctx context.Context, id string) error

	// List returns one zero-based page of summaries ordered by
	// updatedAt descending. An out-of-range page yields an empty list.
	List(ctx context.Context, page, size int) (*models.ProjectPage, error)
}
