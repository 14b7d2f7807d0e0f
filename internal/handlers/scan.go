// internal/handlers/scan.go
package handlers

import (
	"log/slog"
	"net/http"

	"github.com/ammerola/shoplist-be/internal/core/ports"
)

// ScanHandler exposes scan sessions, one per scanning device
type ScanHandler struct {
	scans  ports.ScanService
	logger *slog.Logger
}

// NewScanHandler creates a new scan handler
func NewScanHandler(scans ports.ScanService, logger *slog.Logger) *ScanHandler {
	return &ScanHandler{
		scans:  scans,
		logger: logger.With(slog.String("handler", "scan")),
	}
}

// StartScanRequest is the body of POST /api/v1/scan/{session}/start
type StartScanRequest struct {
	ListID int64 `json:"list_id"`
}

// ScannedRequest is the body of POST /api/v1/scan/{session}/scanned
type ScannedRequest struct {
	Code string `json:"code"`
}

// Start handles POST /api/v1/scan/{session}/start
func (h *ScanHandler) Start(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	session := r.PathValue("session")

	var req StartScanRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.ListID <= 0 {
		respondError(w, h.logger, http.StatusBadRequest, "list_id is required")
		return
	}

	snapshot, err := h.scans.Start(ctx, session, req.ListID)
	if err != nil {
		respondServiceError(ctx, w, h.logger, err, "Failed to start scan")
		return
	}

	respondJSON(w, h.logger, http.StatusOK, snapshot)
}

// Scanned handles POST /api/v1/scan/{session}/scanned. Codes nobody asked
// for are dropped and reported as not delivered.
func (h *ScanHandler) Scanned(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	session := r.PathValue("session")

	var req ScannedRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return
	}

	delivered, err := h.scans.Scanned(ctx, session, req.Code)
	if err != nil {
		respondServiceError(ctx, w, h.logger, err, "Failed to deliver scan")
		return
	}

	respondJSON(w, h.logger, http.StatusOK, map[string]interface{}{
		"session":   session,
		"delivered": delivered,
	})
}

// Reset handles POST /api/v1/scan/{session}/reset
func (h *ScanHandler) Reset(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	session := r.PathValue("session")

	if err := h.scans.Reset(ctx, session); err != nil {
		respondServiceError(ctx, w, h.logger, err, "Failed to reset scan")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Snapshot handles GET /api/v1/scan/{session}
func (h *ScanHandler) Snapshot(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	session := r.PathValue("session")

	snapshot, err := h.scans.Snapshot(ctx, session)
	if err != nil {
		respondServiceError(ctx, w, h.logger, err, "Failed to load scan session")
		return
	}

	respondJSON(w, h.logger, http.StatusOK, snapshot)
}
