// internal/core/domain/scan.go
package domain

import "time"

// ScanState is the state of a scan coordinator
type ScanState string

const (
	ScanIdle   ScanState = "idle"
	ScanArmed  ScanState = "armed"
	ScanLocked ScanState = "locked"
)

// ScanSnapshot describes a scan session as seen by a client
type ScanSnapshot struct {
	Session     string    `json:"session"`
	State       ScanState `json:"state"`
	RequestID   uint64    `json:"request_id"`
	ListID      int64     `json:"list_id,omitempty"`
	ScannerOpen bool      `json:"scanner_open"`
	NavigateTo  string    `json:"navigate_to,omitempty"`
	Result      *Product  `json:"result,omitempty"`
	UpdatedAt   time.Time `json:"updated_at"`
}
