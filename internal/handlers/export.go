// internal/handlers/export.go
package handlers

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/ammerola/shoplist-be/internal/core/ports"
	"github.com/ammerola/shoplist-be/internal/workers"
)

// ExportHandler handles list exports
type ExportHandler struct {
	shopping ports.ShoppingService
	queue    ports.TaskQueue
	logger   *slog.Logger
}

// NewExportHandler creates a new export handler
func NewExportHandler(shopping ports.ShoppingService, queue ports.TaskQueue, logger *slog.Logger) *ExportHandler {
	return &ExportHandler{
		shopping: shopping,
		queue:    queue,
		logger:   logger.With(slog.String("handler", "export")),
	}
}

// ExportExcel handles GET /api/v1/lists/{id}/export/excel
func (h *ExportHandler) ExportExcel(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	listID, ok := pathID(r, "id")
	if !ok {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid list ID")
		return
	}

	list, err := h.shopping.GetList(ctx, listID)
	if err != nil {
		respondServiceError(ctx, w, h.logger, err, "Failed to retrieve data")
		return
	}

	items, err := h.shopping.GetItems(ctx, listID)
	if err != nil {
		respondServiceError(ctx, w, h.logger, err, "Failed to retrieve data")
		return
	}

	// Built in memory so a failure can still be reported as JSON
	var buf bytes.Buffer
	if err := workers.WriteWorkbook(&buf, list, items); err != nil {
		h.logger.ErrorContext(ctx, "failed to generate Excel file", slog.String("error", err.Error()))
		respondError(w, h.logger, http.StatusInternalServerError, "Failed to generate Excel file")
		return
	}

	filename := fmt.Sprintf("lista_%d_%s.xlsx", listID, time.Now().Format("20060102_150405"))
	w.Header().Set("Content-Type", workers.ContentTypeXLSX)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")

	if _, err := w.Write(buf.Bytes()); err != nil {
		h.logger.ErrorContext(ctx, "failed to write Excel response", slog.String("error", err.Error()))
		return
	}

	h.logger.InfoContext(ctx, "Excel export completed",
		slog.Int64("list_id", listID),
		slog.Int("total_rows", len(items)),
		slog.String("filename", filename))
}

// EnqueueExport handles POST /api/v1/lists/{id}/export. The workbook is
// built by a worker and linked from the job once uploaded.
func (h *ExportHandler) EnqueueExport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	listID, ok := pathID(r, "id")
	if !ok {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid list ID")
		return
	}

	if _, err := h.shopping.GetList(ctx, listID); err != nil {
		respondServiceError(ctx, w, h.logger, err, "Failed to queue export")
		return
	}

	job, err := h.queue.EnqueueExport(ctx, listID)
	if err != nil {
		respondServiceError(ctx, w, h.logger, err, "Failed to queue export")
		return
	}

	respondJSON(w, h.logger, http.StatusAccepted, job)
}
