// internal/core/services/scan_sessions.go
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/ammerola/shoplist-be/internal/core/domain"
	"github.com/ammerola/shoplist-be/internal/core/ports"
)

const maxSessionIDLength = 64

// ScanOptions configures the scan session service
type ScanOptions struct {
	SessionTTL      time.Duration
	ResetCooldown   time.Duration
	ResolveTimeout  time.Duration
	JanitorInterval time.Duration // defaults to half of SessionTTL
}

// scanSession is one device's scanner together with its coordinator
type scanSession struct {
	id          string
	coordinator *ScanCoordinator

	mu          sync.Mutex
	listID      int64
	scannerOpen bool
	result      *domain.Product
	lastSeen    time.Time
}

// ToScanner marks the scanner as open for this session
func (s *scanSession) ToScanner(uint64) {
	s.mu.Lock()
	s.scannerOpen = true
	s.mu.Unlock()
}

func (s *scanSession) touch() {
	s.mu.Lock()
	s.lastSeen = time.Now()
	s.mu.Unlock()
}

func (s *scanSession) snapshot() *domain.ScanSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *scanSession) snapshotLocked() *domain.ScanSnapshot {
	snap := &domain.ScanSnapshot{
		Session:     s.id,
		State:       s.coordinator.State(),
		RequestID:   s.coordinator.RequestID(),
		ListID:      s.listID,
		ScannerOpen: s.scannerOpen,
		Result:      s.result,
		UpdatedAt:   s.lastSeen,
	}
	if s.scannerOpen {
		snap.NavigateTo = fmt.Sprintf("/lists/%d/scan", s.listID)
	}
	return snap
}

// ScanService keeps a scan coordinator per client session
type ScanService struct {
	mu       sync.Mutex
	sessions map[string]*scanSession

	lists    ports.ListRepository
	products ports.ProductService
	cache    ports.CacheRepository
	opts     ScanOptions
	logger   *slog.Logger
}

var _ ports.ScanService = (*ScanService)(nil)

// NewScanService creates a new scan session service
func NewScanService(lists ports.ListRepository, products ports.ProductService,
	cache ports.CacheRepository, opts ScanOptions, logger *slog.Logger) *ScanService {
	if opts.SessionTTL <= 0 {
		opts.SessionTTL = 30 * time.Minute
	}
	if opts.ResolveTimeout <= 0 {
		opts.ResolveTimeout = 10 * time.Second
	}
	if opts.JanitorInterval <= 0 {
		opts.JanitorInterval = opts.SessionTTL / 2
	}

	return &ScanService{
		sessions: make(map[string]*scanSession),
		lists:    lists,
		products: products,
		cache:    cache,
		opts:     opts,
		logger:   logger.With(slog.String("service", "scan")),
	}
}

// Start arms the session's coordinator for a scan on behalf of a list.
func (s *ScanService) Start(ctx context.Context, sessionID string, listID int64) (*domain.ScanSnapshot, error) {
	if err := validateSessionID(sessionID); err != nil {
		return nil, err
	}

	exists, err := s.lists.Exists(ctx, listID)
	if err != nil {
		return nil, fmt.Errorf("failed to check list existence: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("list %d: %w", listID, domain.ErrNotFound)
	}

	session := s.getOrCreate(sessionID)

	// A scan may arrive before StartScan returns; delivery waits until the
	// session belongs to this request.
	var requestID uint64
	ready := make(chan struct{})
	requestID = session.coordinator.StartScan(func(code string) {
		<-ready
		s.resolve(session, requestID, code)
	})

	session.mu.Lock()
	session.listID = listID
	session.result = nil
	session.lastSeen = time.Now()
	session.mu.Unlock()
	close(ready)

	s.logger.InfoContext(ctx, "scan started",
		slog.String("session", sessionID),
		slog.Int64("list_id", listID),
		slog.Uint64("request_id", requestID))

	return session.snapshot(), nil
}

// Scanned forwards a decoded code to the session. It reports whether a
// pending request consumed the code. Codes for unknown sessions are dropped.
func (s *ScanService) Scanned(ctx context.Context, sessionID, code string) (bool, error) {
	if !domain.IsNumericCode(code) {
		return false, domain.NewValidationError("code must be a non-empty numeric string")
	}

	session := s.get(sessionID)
	if session == nil {
		s.logger.DebugContext(ctx, "scan dropped for unknown session", slog.String("session", sessionID))
		return false, nil
	}
	session.touch()

	delivered := session.coordinator.OnScanned(code)
	if delivered && s.opts.ResetCooldown > 0 {
		time.AfterFunc(s.opts.ResetCooldown, session.coordinator.ResetScan)
	}

	s.logger.DebugContext(ctx, "scan received",
		slog.String("session", sessionID),
		slog.Bool("delivered", delivered))

	return delivered, nil
}

// Reset clears the session's re-entrancy lock
func (s *ScanService) Reset(ctx context.Context, sessionID string) error {
	session := s.get(sessionID)
	if session == nil {
		return nil
	}
	session.touch()
	session.coordinator.ResetScan()
	return nil
}

// Snapshot describes the session. Sessions evicted from memory are served
// from the last cached result.
func (s *ScanService) Snapshot(ctx context.Context, sessionID string) (*domain.ScanSnapshot, error) {
	if session := s.get(sessionID); session != nil {
		return session.snapshot(), nil
	}

	var snap domain.ScanSnapshot
	err := s.cache.Get(ctx, scanKey(sessionID), &snap)
	if errors.Is(err, ports.ErrCacheMiss) {
		return nil, fmt.Errorf("scan session %q: %w", sessionID, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read scan result: %w", err)
	}
	return &snap, nil
}

// Run evicts idle sessions until ctx is cancelled.
func (s *ScanService) Run(ctx context.Context) {
	ticker := time.NewTicker(s.opts.JanitorInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.evictIdle(time.Now()); n > 0 {
				s.logger.Debug("evicted idle scan sessions", slog.Int("count", n))
			}
		}
	}
}

func (s *ScanService) evictIdle(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	evicted := 0
	for id, session := range s.sessions {
		session.mu.Lock()
		idle := now.Sub(session.lastSeen)
		session.mu.Unlock()

		if idle > s.opts.SessionTTL {
			delete(s.sessions, id)
			evicted++
		}
	}
	return evicted
}

// resolve runs inside the coordinator callback, outside its mutex. A result
// for a request that has since been superseded is dropped.
func (s *ScanService) resolve(session *scanSession, requestID uint64, code string) {
	ctx, cancel := context.WithTimeout(context.Background(), s.opts.ResolveTimeout)
	defer cancel()

	product, err := s.products.Resolve(ctx, code)
	if err != nil {
		s.logger.WarnContext(ctx, "product lookup failed during scan",
			slog.String("session", session.id),
			slog.String("barcode", code),
			slog.String("error", err.Error()))
	}
	if product == nil {
		product = domain.FallbackProduct(code, "")
	}

	session.mu.Lock()
	if current := session.coordinator.RequestID(); current != requestID {
		session.mu.Unlock()
		s.logger.DebugContext(ctx, "stale scan result discarded",
			slog.String("session", session.id),
			slog.Uint64("request_id", requestID),
			slog.Uint64("current_request_id", current))
		return
	}
	session.result = product
	session.scannerOpen = false
	session.lastSeen = time.Now()
	snap := session.snapshotLocked()
	session.mu.Unlock()

	if err := s.cache.SetWithTTL(ctx, scanKey(session.id), snap, s.opts.SessionTTL); err != nil {
		s.logger.WarnContext(ctx, "failed to cache scan result",
			slog.String("session", session.id),
			slog.String("error", err.Error()))
	}
}

func (s *ScanService) get(sessionID string) *scanSession {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessions[sessionID]
}

func (s *ScanService) getOrCreate(sessionID string) *scanSession {
	s.mu.Lock()
	defer s.mu.Unlock()

	if session, ok := s.sessions[sessionID]; ok {
		return session
	}

	session := &scanSession{id: sessionID, lastSeen: time.Now()}
	session.coordinator = NewScanCoordinator(session, s.logger.With(slog.String("session", sessionID)))
	s.sessions[sessionID] = session
	return session
}

func validateSessionID(id string) error {
	if id == "" {
		return domain.NewValidationError("session id is required")
	}
	if len(id) > maxSessionIDLength {
		return domain.NewValidationError("session id must be at most %d characters", maxSessionIDLength)
	}
	return nil
}

func scanKey(sessionID string) string {
	return ports.CacheKey(ports.PrefixScan, sessionID)
}
