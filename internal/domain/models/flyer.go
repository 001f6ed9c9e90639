package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// GroupType describes how a product group is rendered on the flyer.
type GroupType string

const (
	GroupTypeSingle         GroupType = "single"
	GroupTypeSamePrice      GroupType = "same-price"
	GroupTypeDifferentPrice GroupType = "different-price"
)

// Valid reports whether the group type is one of the known render modes.
func (t GroupType) Valid() bool {
	switch t {
	case GroupTypeSingle, GroupTypeSamePrice, GroupTypeDifferentPrice:
		return true
	}
	return false
}

// Product is a catalog line item. Products are shared entities: the
// code is the natural key used for deduplication, the id is the
// server-generated surrogate.
type Product struct {
	ID             string          `json:"id" db:"id"`
	Code           string          `json:"code" db:"code"`
	Description    string          `json:"description" db:"description"`
	Price          decimal.Decimal `json:"price" db:"price"`
	Category       string          `json:"category,omitempty" db:"category"`
	Specifications string          `json:"specifications,omitempty" db:"specifications"`
}

// ProductGroup is an ordered block of products inside a project.
// Position defines the render order across groups; the order of
// Products is the order inside the block.
type ProductGroup struct {
	ID       string    `json:"id" db:"id"`
	Type     GroupType `json:"type" db:"group_type"`
	Title    string    `json:"title" db:"title"`
	Image    string    `json:"image,omitempty" db:"image"`
	Position int       `json:"position" db:"position"`
	Page     *int      `json:"page,omitempty" db:"page"`
	Products []Product `json:"products"`
}

// FlyerConfig holds per-project presentation settings. Exactly one
// config exists per project and it dies with the project.
type FlyerConfig struct {
	ID              string `json:"id" db:"id"`
	Title           string `json:"title" db:"title"`
	HeaderText      string `json:"headerText" db:"header_text"`
	FooterText      string `json:"footerText" db:"footer_text"`
	HeaderImageURL  string `json:"headerImageUrl" db:"header_image_url"`
	FooterImageURL  string `json:"footerImageUrl" db:"footer_image_url"`
	BackgroundColor string `json:"backgroundColor" db:"background_color"`
	PrimaryColor    string `json:"primaryColor" db:"primary_color"`
	SecondaryColor  string `json:"secondaryColor" db:"secondary_color"`
}

// Project is the aggregate root. Groups belong to exactly one project;
// Products holds the deduplicated union of every product referenced by
// the project (standalone or through a group).
type Project struct {
	ID        string         `json:"id" db:"id"`
	Name      string         `json:"name" db:"name"`
	Config    FlyerConfig    `json:"config"`
	Groups    []ProductGroup `json:"groups"`
	Products  []Product      `json:"products"`
	CreatedAt time.Time      `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time      `json:"updatedAt" db:"updated_at"`
}

// ProjectSummary is the listing shape: identity and recency only.
type ProjectSummary struct {
	ID        string    `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// ProjectPage is one page of project summaries ordered by updatedAt
// descending. Field names mirror the wire shape consumed by the
// flyer editor frontend.
type ProjectPage struct {
	Projects      []ProjectSummary `json:"projects"`
	CurrentPage   int              `json:"currentPage"`
	TotalPages    int              `json:"totalPages"`
	TotalElements int64            `json:"totalElements"`
	Size          int              `json:"size"`
	HasNext       bool             `json:"hasNext"`
	HasPrevious   bool             `json:"hasPrevious"`
}
