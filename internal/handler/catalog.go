package handler

import (
	"log/slog"
	"net/http"

	"flyerstudio/internal/domain/services"
	"flyerstudio/internal/httputil"
)

// maxImportUpload caps spreadsheet uploads at 20MB
const maxImportUpload = 20 << 20

// CatalogHandler handles product catalog HTTP requests
type CatalogHandler struct {
	catalogService services.CatalogService
	logger         *slog.Logger
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogService services.CatalogService, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
		logger:         logger,
	}
}

// ListProducts returns every catalog product
// GET /api/products
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.catalogService.ListProducts(r.Context())
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, products)
}

// ImportProducts upserts catalog products from an uploaded spreadsheet.
// The caller blocks until the whole file is processed.
// POST /api/products/import (multipart field "file")
func (h *CatalogHandler) ImportProducts(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxImportUpload); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Failed to parse multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "file field is required")
		return
	}
	defer file.Close()

	h.logger.Info("starting spreadsheet import",
		"filename", header.Filename,
		"size", header.Size,
	)

	result, err := h.catalogService.ImportSpreadsheet(r.Context(), file)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, result)
}
