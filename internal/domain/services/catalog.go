package services

import (
	"context"
	"io"

	"flyerstudio/internal/domain/models"
)

// ImportResult summarizes one spreadsheet import run.
type ImportResult struct {
	TotalRows int `json:"totalRows"`
	Created   int `json:"created"`
	Updated   int `json:"updated"`
	Skipped   int `json:"skipped"`
}

// CatalogService exposes the shared product catalog: listing and bulk
// import from spreadsheet files.
type CatalogService interface {
	// ListProducts returns every catalog product.
	ListProducts(ctx context.Context) ([]models.Product, error)

	// ImportSpreadsheet reads an xlsx file (first sheet, header row
	// skipped) and upserts one product per row keyed by code. Rows
	// missing any of code, description or price are skipped, not
	// failed. All upserts run in one transaction.
	ImportSpreadsheet(ctx context.Context, file io.Reader) (*ImportResult, error)
}
