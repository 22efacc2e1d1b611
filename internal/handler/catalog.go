package handler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/knet-checkout/internal/catalog"
	"github.com/SergeyBogomolovv/knet-checkout/internal/entities"
	"github.com/SergeyBogomolovv/knet-checkout/internal/service"
	"github.com/SergeyBogomolovv/knet-checkout/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

const maxUploadSize = 10 << 20

type CatalogImporter interface {
	ImportFile(ctx context.Context, filename string, r io.Reader) (service.ImportReport, error)
	ImportGSMArena(ctx context.Context, query string, limit int) (service.ImportReport, error)
	ImportSmartprix(ctx context.Context, urls []string) (service.ImportReport, error)
}

type CatalogHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      CatalogImporter
}

func NewCatalogHandler(logger *slog.Logger, svc CatalogImporter) *CatalogHandler {
	return &CatalogHandler{
		logger:   logger.With(slog.String("handler", "catalog")),
		validate: validator.New(),
		svc:      svc,
	}
}

func (h *CatalogHandler) Init(r chi.Router) {
	r.Post("/api/v1/admin/catalog/import", h.ImportFile)
	r.Post("/api/v1/admin/catalog/import/gsmarena", h.ImportGSMArena)
	r.Post("/api/v1/admin/catalog/import/smartprix", h.ImportSmartprix)
	r.Get("/api/v1/admin/catalog/template.csv", h.Template)
}

// ImportFile imports phones from a spreadsheet.
// @Summary      Import catalog file
// @Description  Imports phones from a .csv or .xlsx file with the template columns. Bad rows are reported and skipped.
// @Tags         catalog
// @Accept       mpfd
// @Produce      json
// @Param        file  formData  file  true  "Catalog file (.csv or .xlsx)"
// @Success      200  {object}  ImportReport
// @Failure      400  {object}  utils.ErrorResponse "Invalid file"
// @Failure      500  {object}  utils.ErrorResponse "Internal server error"
// @Router       /api/v1/admin/catalog/import [post]
func (h *CatalogHandler) ImportFile(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	file, header, err := r.FormFile("file")
	if err != nil {
		utils.WriteError(w, "a catalog file is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	report, err := h.svc.ImportFile(r.Context(), header.Filename, file)
	h.writeReport(r.Context(), w, "file", report, err)
}

// ImportGSMArena imports phones matching a search query.
// @Summary      Import from GSMArena
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        request  body      GSMArenaImportRequest  true  "Search query"
// @Success      200  {object}  ImportReport
// @Failure      400  {object}  utils.ValidationErrorResponse "Validation error"
// @Failure      502  {object}  utils.ErrorResponse "Source unavailable"
// @Router       /api/v1/admin/catalog/import/gsmarena [post]
func (h *CatalogHandler) ImportGSMArena(w http.ResponseWriter, r *http.Request) {
	var body GSMArenaImportRequest
	if err := utils.DecodeBody(r, &body); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(body); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	report, err := h.svc.ImportGSMArena(r.Context(), body.Query, body.Limit)
	h.writeReport(r.Context(), w, "gsmarena", report, err)
}

// ImportSmartprix imports phones from Smartprix product pages.
// @Summary      Import from Smartprix
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        request  body      SmartprixImportRequest  true  "Product page URLs"
// @Success      200  {object}  ImportReport
// @Failure      400  {object}  utils.ValidationErrorResponse "Validation error"
// @Router       /api/v1/admin/catalog/import/smartprix [post]
func (h *CatalogHandler) ImportSmartprix(w http.ResponseWriter, r *http.Request) {
	var body SmartprixImportRequest
	if err := utils.DecodeBody(r, &body); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(body); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	report, err := h.svc.ImportSmartprix(r.Context(), body.URLs)
	h.writeReport(r.Context(), w, "smartprix", report, err)
}

// Template returns an example catalog CSV.
// @Summary      Catalog CSV template
// @Tags         catalog
// @Produce      text/csv
// @Success      200  {string}  string
// @Router       /api/v1/admin/catalog/template.csv [get]
func (h *CatalogHandler) Template(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="catalog-template.csv"`)
	if err := catalog.WriteCSVTemplate(w); err != nil {
		h.logger.ErrorContext(r.Context(), "failed to write template", slog.Any("error", err))
	}
}

func (h *CatalogHandler) writeReport(ctx context.Context, w http.ResponseWriter, source string, report service.ImportReport, err error) {
	catalogImportedTotal.WithLabelValues(source).Add(float64(report.Imported))
	catalogRejectedTotal.WithLabelValues(source).Add(float64(len(report.Errors)))

	switch {
	case err == nil:
		utils.WriteJSON(w, ImportReportToJSON(report), http.StatusOK)
	case errors.Is(err, entities.ErrUnsupportedFile), errors.Is(err, catalog.ErrInvalidFile), errors.Is(err, catalog.ErrInvalidHeader):
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, entities.ErrSourceUnavailable):
		h.logger.WarnContext(ctx, "catalog source unavailable", slog.String("source", source), slog.Any("error", err))
		utils.WriteError(w, "catalog source is unavailable, try again later", http.StatusBadGateway)
	default:
		h.logger.ErrorContext(ctx, "catalog import failed", slog.String("source", source), slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
	}
}
