package flyer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"flyerstudio/internal/domain"
	"flyerstudio/internal/domain/models"
	"flyerstudio/internal/domain/repositories"
	"flyerstudio/internal/domain/services"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// catalogService implements the CatalogService interface
type catalogService struct {
	productRepo repositories.ProductRepository
	txManager   repositories.TransactionManager
	logger      *slog.Logger
}

// NewCatalogService creates a new catalog service
func NewCatalogService(
	productRepo repositories.ProductRepository,
	txManager repositories.TransactionManager,
	logger *slog.Logger,
) services.CatalogService {
	return &catalogService{
		productRepo: productRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// ListProducts returns every catalog product
func (s *catalogService) ListProducts(ctx context.Context) ([]models.Product, error) {
	return s.productRepo.List(ctx)
}

// Spreadsheet layout: column A = code, B = description, C = price,
// row 1 is a header. Only the first sheet is read.
const (
	importCodeColumn  = 1
	importDescColumn  = 2
	importPriceColumn = 3
)

// ImportSpreadsheet upserts one product per data row, keyed by code.
// Incomplete rows are skipped and counted rather than failing the
// import; all upserts share one transaction so a storage failure
// leaves no partial state behind.
func (s *catalogService) ImportSpreadsheet(ctx context.Context, file io.Reader) (*services.ImportResult, error) {
	workbook, err := excelize.OpenReader(file)
	if err != nil {
		return nil, fmt.Errorf("%w: not a readable spreadsheet: %v", domain.ErrValidation, err)
	}
	defer workbook.Close()

	sheets := workbook.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: spreadsheet has no sheets", domain.ErrValidation)
	}
	sheet := sheets[0]

	rows, err := workbook.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheet, err)
	}

	result := &services.ImportResult{}
	err = s.txManager.ExecTx(ctx, func(txCtx context.Context) error {
		// Row 1 is the header.
		for rowIdx := 2; rowIdx <= len(rows); rowIdx++ {
			result.TotalRows++

			row, err := s.readImportRow(workbook, sheet, rowIdx)
			if err != nil {
				return err
			}
			if row == nil {
				result.Skipped++
				continue
			}

			updated, err := s.upsertProduct(txCtx, row)
			if err != nil {
				return err
			}
			if updated {
				result.Updated++
			} else {
				result.Created++
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("spreadsheet import complete",
		"rows", result.TotalRows,
		"created", result.Created,
		"updated", result.Updated,
		"skipped", result.Skipped,
	)

	return result, nil
}

// importRow is one complete spreadsheet row
type importRow struct {
	code        string
	description string
	price       decimal.Decimal
}

// readImportRow reads one data row. Returns nil (no error) when any of
// the three required cells is missing or unusable - such rows are
// skipped, not reported.
func (s *catalogService) readImportRow(workbook *excelize.File, sheet string, rowIdx int) (*importRow, error) {
	code, err := s.readCodeCell(workbook, sheet, rowIdx)
	if err != nil {
		return nil, err
	}

	descCell, _ := excelize.CoordinatesToCellName(importDescColumn, rowIdx)
	description, err := workbook.GetCellValue(sheet, descCell)
	if err != nil {
		return nil, fmt.Errorf("read cell %s: %w", descCell, err)
	}
	description = strings.TrimSpace(description)

	priceCell, _ := excelize.CoordinatesToCellName(importPriceColumn, rowIdx)
	priceRaw, err := workbook.GetCellValue(sheet, priceCell)
	if err != nil {
		return nil, fmt.Errorf("read cell %s: %w", priceCell, err)
	}

	if code == "" || description == "" || strings.TrimSpace(priceRaw) == "" {
		return nil, nil
	}

	price, parseErr := strconv.ParseFloat(strings.TrimSpace(priceRaw), 64)
	if parseErr != nil {
		return nil, nil
	}

	return &importRow{
		code:        code,
		description: description,
		price:       decimal.NewFromFloat(price),
	}, nil
}

// readCodeCell reads and normalizes the code cell. Numeric cells are
// truncated to an integer-valued string ("7", never "7.0" and never
// scientific notation); text cells are trimmed as-is.
func (s *catalogService) readCodeCell(workbook *excelize.File, sheet string, rowIdx int) (string, error) {
	cell, _ := excelize.CoordinatesToCellName(importCodeColumn, rowIdx)

	raw, err := workbook.GetCellValue(sheet, cell)
	if err != nil {
		return "", fmt.Errorf("read cell %s: %w", cell, err)
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", nil
	}

	cellType, err := workbook.GetCellType(sheet, cell)
	if err != nil {
		return "", fmt.Errorf("cell type %s: %w", cell, err)
	}

	switch cellType {
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString:
		return raw, nil
	default:
		// Untyped cells are numeric in xlsx. Truncate to an integer
		// string the way the asset pipeline expects product codes.
		if value, parseErr := strconv.ParseFloat(raw, 64); parseErr == nil {
			return strconv.FormatInt(int64(value), 10), nil
		}
		return raw, nil
	}
}

// upsertProduct updates the product with the row's code in place, or
// inserts a new one. Reports whether an existing product was updated.
func (s *catalogService) upsertProduct(ctx context.Context, row *importRow) (bool, error) {
	existing, err := s.productRepo.GetByCode(ctx, row.code)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			return false, err
		}

		product := &models.Product{
			ID:          uuid.NewString(),
			Code:        row.code,
			Description: row.description,
			Price:       row.price,
		}
		return false, s.productRepo.Create(ctx, product)
	}

	existing.Description = row.description
	existing.Price = row.price
	return true, s.productRepo.Update(ctx, existing)
}
