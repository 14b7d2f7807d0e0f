// internal/handlers/import.go
package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/ammerola/shoplist-be/internal/adapters/storage"
	"github.com/ammerola/shoplist-be/internal/core/domain"
	"github.com/ammerola/shoplist-be/internal/core/ports"
)

// ImportHandler accepts spreadsheet and PDF uploads and queues their import
type ImportHandler struct {
	shopping    ports.ShoppingService
	files       ports.FileStorage
	queue       ports.TaskQueue
	maxFileSize int64
	logger      *slog.Logger
}

// NewImportHandler creates a new import handler
func NewImportHandler(shopping ports.ShoppingService, files ports.FileStorage, queue ports.TaskQueue,
	maxFileSize int64, logger *slog.Logger) *ImportHandler {
	return &ImportHandler{
		shopping:    shopping,
		files:       files,
		queue:       queue,
		maxFileSize: maxFileSize,
		logger:      logger.With(slog.String("handler", "import")),
	}
}

// Import handles POST /api/v1/lists/{id}/import with a multipart "file"
// field holding an .xlsx or .pdf document
func (h *ImportHandler) Import(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	listID, ok := pathID(r, "id")
	if !ok {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid list ID")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxFileSize)
	if err := r.ParseMultipartForm(h.maxFileSize); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondError(w, h.logger, http.StatusRequestEntityTooLarge, "File is too large")
			return
		}
		respondError(w, h.logger, http.StatusBadRequest, "Failed to parse form data")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "File is required")
		return
	}
	defer file.Close()

	jobType, ok := importType(header.Filename)
	if !ok {
		respondError(w, h.logger, http.StatusBadRequest, "Only .xlsx and .pdf files are allowed")
		return
	}

	if _, err := h.shopping.GetList(ctx, listID); err != nil {
		respondServiceError(ctx, w, h.logger, err, "Failed to queue import job")
		return
	}

	key := storage.ImportKey(listID, header.Filename)
	if _, err := h.files.Upload(ctx, key, file, header.Header.Get("Content-Type")); err != nil {
		h.logger.ErrorContext(ctx, "failed to store upload",
			slog.String("filename", header.Filename),
			slog.String("error", err.Error()))
		respondError(w, h.logger, http.StatusInternalServerError, "Failed to save upload")
		return
	}

	job, err := h.queue.EnqueueImport(ctx, listID, jobType, key)
	if err != nil {
		if delErr := h.files.Delete(ctx, key); delErr != nil {
			h.logger.WarnContext(ctx, "failed to remove orphaned upload",
				slog.String("key", key),
				slog.String("error", delErr.Error()))
		}
		respondServiceError(ctx, w, h.logger, err, "Failed to queue import job")
		return
	}

	h.logger.InfoContext(ctx, "import queued",
		slog.String("job_id", job.ID),
		slog.String("type", string(jobType)),
		slog.Int64("list_id", listID),
		slog.Int64("size", header.Size))

	respondJSON(w, h.logger, http.StatusAccepted, job)
}

func importType(filename string) (domain.JobType, bool) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx":
		return domain.JobImportExcel, true
	case ".pdf":
		return domain.JobImportPDF, true
	default:
		return "", false
	}
}
