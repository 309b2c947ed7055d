// Package api exposes the analysis pipeline over HTTP.
package api

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/insightdelivered/financial-analytics/internal/analyzer"
	"github.com/insightdelivered/financial-analytics/internal/ingest"
	"github.com/insightdelivered/financial-analytics/internal/models"
	"github.com/insightdelivered/financial-analytics/internal/storage"
	"github.com/insightdelivered/financial-analytics/internal/writer"
)

const (
	version = "1.0.0"

	// listLimit caps how many records the list endpoint returns.
	listLimit = 100

	// previewRows is how many raw rows the upload response echoes back.
	previewRows = 5
)

// UploadResponse is the JSON response from the upload endpoint.
type UploadResponse struct {
	ID              string                 `json:"id"`
	Filename        string                 `json:"filename"`
	DetectedColumns models.DetectedColumns `json:"detected_columns"`
	KPIs            models.KPIReport       `json:"kpis"`
	DataPreview     []models.Row           `json:"data_preview"`
}

// Handler holds the HTTP handlers for the API.
type Handler struct {
	store  storage.Store
	logger *slog.Logger
}

func NewHandler(store storage.Store, logger *slog.Logger) *Handler {
	return &Handler{store: store, logger: logger}
}

// RegisterRoutes sets up the /api routes on the fiber app.
func (h *Handler) RegisterRoutes(app *fiber.App) {
	api := app.Group("/api")
	api.Get("/", h.handleRoot)
	api.Get("/health", h.handleHealth)
	api.Post("/upload-csv", h.handleUpload)
	api.Get("/financial-data", h.handleList)
	api.Get("/financial-data/:id", h.handleGet)
	api.Get("/financial-data/:id/export", h.handleExport)
}

func (h *Handler) handleRoot(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": "Financial Analytics API"})
}

func (h *Handler) handleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok", "version": version})
}

func (h *Handler) handleUpload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "No file uploaded. Use form field 'file'.")
	}

	f, err := fileHeader.Open()
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Uploaded file could not be opened.")
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Uploaded file could not be read.")
	}

	ds, err := ingest.Decode(fileHeader.Filename, data)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	detected := analyzer.DetectColumns(ds.Headers)
	kpis := analyzer.CalculateKPIs(ds, detected)

	rec := &models.FinancialRecord{
		ID:              uuid.NewString(),
		Filename:        fileHeader.Filename,
		UploadDate:      time.Now().UTC(),
		Headers:         ds.Headers,
		RawData:         ds.Rows,
		DetectedColumns: detected,
		KPIs:            kpis,
	}

	if err := h.store.Save(c.Context(), rec); err != nil {
		h.logger.Error("failed to persist record",
			"error", err, "filename", rec.Filename)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to store analysis result.")
	}

	h.logger.Info("dataset analyzed",
		"id", rec.ID,
		"filename", rec.Filename,
		"rows", len(ds.Rows),
		"detected_categories", len(detected))

	return c.JSON(UploadResponse{
		ID:              rec.ID,
		Filename:        rec.Filename,
		DetectedColumns: detected,
		KPIs:            kpis,
		DataPreview:     ds.Preview(previewRows),
	})
}

func (h *Handler) handleGet(c *fiber.Ctx) error {
	rec, err := h.store.Get(c.Context(), c.Params("id"))
	if errors.Is(err, storage.ErrNotFound) {
		return fiber.NewError(fiber.StatusNotFound, "Financial data not found")
	}
	if err != nil {
		h.logger.Error("failed to load record", "error", err, "id", c.Params("id"))
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve data.")
	}
	return c.JSON(rec)
}

func (h *Handler) handleList(c *fiber.Ctx) error {
	recs, err := h.store.List(c.Context(), listLimit)
	if err != nil {
		h.logger.Error("failed to list records", "error", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve data.")
	}
	return c.JSON(recs)
}

func (h *Handler) handleExport(c *fiber.Ctx) error {
	rec, err := h.store.Get(c.Context(), c.Params("id"))
	if errors.Is(err, storage.ErrNotFound) {
		return fiber.NewError(fiber.StatusNotFound, "Financial data not found")
	}
	if err != nil {
		h.logger.Error("failed to load record", "error", err, "id", c.Params("id"))
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve data.")
	}

	includeMetadata := c.Query("metadata") != "false"

	var buf bytes.Buffer
	w := &writer.CSVWriter{IncludeMetadata: includeMetadata}
	if err := w.Write(&buf, rec); err != nil {
		h.logger.Error("failed to render CSV export", "error", err, "id", rec.ID)
		return fiber.NewError(fiber.StatusInternalServerError, "CSV generation failed.")
	}

	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename=%q", rec.Filename))
	return c.Send(buf.Bytes())
}

// ErrorHandler renders all handler errors as JSON, keeping the status code
// of fiber errors and mapping everything else to 500.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}
	return c.Status(code).JSON(fiber.Map{"error": err.Error()})
}
