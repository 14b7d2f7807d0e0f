// internal/core/ports/scan.go
package ports

import (
	"context"

	"github.com/ammerola/shoplist-be/internal/core/domain"
)

// Navigator presents the scanner to the user on behalf of a requester.
type Navigator interface {
	ToScanner(requestID uint64)
}

// ScanCoordinator hands a scanned code to whichever caller requested it.
// It holds at most one pending callback.
type ScanCoordinator interface {
	StartScan(callback func(code string)) uint64
	OnScanned(code string) bool
	ResetScan()
	State() domain.ScanState
	RequestID() uint64
}

// ScanService manages one coordinator per client scan session.
type ScanService interface {
	Start(ctx context.Context, sessionID string, listID int64) (*domain.ScanSnapshot, error)
	Scanned(ctx context.Context, sessionID, code string) (bool, error)
	Reset(ctx context.Context, sessionID string) error
	Snapshot(ctx context.Context, sessionID string) (*domain.ScanSnapshot, error)
}
