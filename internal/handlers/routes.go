// internal/handlers/routes.go
package handlers

import "net/http"

// APIPrefix is the path prefix of the versioned API
const APIPrefix = "/api/v1"

// Handlers groups every HTTP handler of the API
type Handlers struct {
	Health   *HealthHandler
	Lists    *ListHandler
	Items    *ItemHandler
	Products *ProductHandler
	Scan     *ScanHandler
	Share    *ShareHandler
	Export   *ExportHandler
	Import   *ImportHandler
	Jobs     *JobHandler
}

// Register adds all routes to mux using Go 1.22 method routing. Health
// endpoints are skipped when Health is nil.
func (h *Handlers) Register(mux *http.ServeMux) {
	v1 := APIPrefix

	if h.Health != nil {
		mux.HandleFunc("GET /health", h.Health.Health)
		mux.HandleFunc("GET /ready", h.Health.Readiness)
		mux.HandleFunc("GET "+v1+"/health", h.Health.Health)
	}

	// Lists
	mux.HandleFunc("POST "+v1+"/lists", h.Lists.CreateList)
	mux.HandleFunc("GET "+v1+"/lists", h.Lists.GetLists)
	mux.HandleFunc("GET "+v1+"/lists/{id}", h.Lists.GetList)
	mux.HandleFunc("DELETE "+v1+"/lists/{id}", h.Lists.DeleteList)
	mux.HandleFunc("GET "+v1+"/lists/{id}/summary", h.Lists.Summary)

	// Items
	mux.HandleFunc("GET "+v1+"/lists/{id}/items", h.Items.ListItems)
	mux.HandleFunc("POST "+v1+"/lists/{id}/items", h.Items.CreateItem)
	mux.HandleFunc("DELETE "+v1+"/lists/{id}/items/completed", h.Items.DeleteCompleted)
	mux.HandleFunc("GET "+v1+"/lists/{id}/items/{itemId}", h.Items.GetItem)
	mux.HandleFunc("PUT "+v1+"/lists/{id}/items/{itemId}", h.Items.UpdateItem)
	mux.HandleFunc("PATCH "+v1+"/lists/{id}/items/{itemId}/completed", h.Items.SetCompleted)
	mux.HandleFunc("DELETE "+v1+"/lists/{id}/items/{itemId}", h.Items.DeleteItem)

	// Barcodes and scanning
	mux.HandleFunc("GET "+v1+"/products/{barcode}", h.Products.Lookup)
	mux.HandleFunc("POST "+v1+"/scan/{session}/start", h.Scan.Start)
	mux.HandleFunc("POST "+v1+"/scan/{session}/scanned", h.Scan.Scanned)
	mux.HandleFunc("POST "+v1+"/scan/{session}/reset", h.Scan.Reset)
	mux.HandleFunc("GET "+v1+"/scan/{session}", h.Scan.Snapshot)

	// Sharing
	mux.HandleFunc("GET "+v1+"/lists/{id}/share", h.Share.Share)
	mux.HandleFunc("POST "+v1+"/lists/{id}/share/telegram", h.Share.SendTelegram)
	mux.HandleFunc("GET "+v1+"/shared/{token}", h.Share.Shared)

	// Files and jobs
	mux.HandleFunc("GET "+v1+"/lists/{id}/export/excel", h.Export.ExportExcel)
	mux.HandleFunc("POST "+v1+"/lists/{id}/export", h.Export.EnqueueExport)
	mux.HandleFunc("POST "+v1+"/lists/{id}/import", h.Import.Import)
	mux.HandleFunc("GET "+v1+"/jobs/{id}", h.Jobs.Status)
}
