// internal/core/services/scan_coordinator.go
package services

import (
	"log/slog"
	"sync"

	"github.com/ammerola/shoplist-be/internal/core/domain"
	"github.com/ammerola/shoplist-be/internal/core/ports"
)

// ScanCoordinator hands the next decoded barcode to the caller that asked for it.
// It keeps a single pending callback plus a lock flag that drops duplicate
// decode events for the same physical scan.
type ScanCoordinator struct {
	mu        sync.Mutex
	callback  func(code string)
	locked    bool
	requestID uint64

	navigator ports.Navigator
	logger    *slog.Logger
}

var _ ports.ScanCoordinator = (*ScanCoordinator)(nil)

// NewScanCoordinator creates an idle coordinator
func NewScanCoordinator(navigator ports.Navigator, logger *slog.Logger) *ScanCoordinator {
	return &ScanCoordinator{
		navigator: navigator,
		logger:    logger.With(slog.String("service", "scan_coordinator")),
	}
}

// StartScan registers callback as the only pending receiver, clears the lock
// and opens the scanner. A callback that has not fired yet is discarded.
func (c *ScanCoordinator) StartScan(callback func(code string)) uint64 {
	c.mu.Lock()
	if c.callback != nil {
		c.logger.Debug("scan request superseded", slog.Uint64("request_id", c.requestID))
	}
	c.requestID++
	id := c.requestID
	c.callback = callback
	c.locked = false
	c.mu.Unlock()

	if c.navigator != nil {
		c.navigator.ToScanner(id)
	}
	return id
}

// OnScanned delivers code to the pending callback exactly once. It reports
// whether a callback was invoked.
func (c *ScanCoordinator) OnScanned(code string) bool {
	c.mu.Lock()
	if c.locked || c.callback == nil {
		c.mu.Unlock()
		return false
	}
	c.locked = true
	callback := c.callback
	c.callback = nil
	id := c.requestID
	c.mu.Unlock()

	c.logger.Debug("scan delivered", slog.Uint64("request_id", id))
	callback(code)
	return true
}

// ResetScan clears the lock so the scanner can deliver again.
func (c *ScanCoordinator) ResetScan() {
	c.mu.Lock()
	c.locked = false
	c.mu.Unlock()
}

// State reports the current coordinator state
func (c *ScanCoordinator) State() domain.ScanState {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch {
	case c.locked:
		return domain.ScanLocked
	case c.callback != nil:
		return domain.ScanArmed
	default:
		return domain.ScanIdle
	}
}

// RequestID returns the id of the most recent scan request
func (c *ScanCoordinator) RequestID() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.requestID
}
