// internal/core/services/share.go
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/ammerola/shoplist-be/internal/core/domain"
	"github.com/ammerola/shoplist-be/internal/core/ports"
)

const shareIssuer = "shoplist"

// ShareOptions configures share links
type ShareOptions struct {
	Secret        string
	TokenTTL      time.Duration
	PublicBaseURL string
}

// shareClaims are carried by a read-only share link
type shareClaims struct {
	ListID int64 `json:"list_id"`
	jwt.RegisteredClaims
}

// ShareService renders lists as text messages and share links
type ShareService struct {
	shopping ports.ShoppingService
	queue    ports.TaskQueue
	opts     ShareOptions
	logger   *slog.Logger
}

var _ ports.ShareService = (*ShareService)(nil)

// NewShareService creates a new share service
func NewShareService(shopping ports.ShoppingService, queue ports.TaskQueue,
	opts ShareOptions, logger *slog.Logger) *ShareService {
	if opts.TokenTTL <= 0 {
		opts.TokenTTL = 7 * 24 * time.Hour
	}
	return &ShareService{
		shopping: shopping,
		queue:    queue,
		opts:     opts,
		logger:   logger.With(slog.String("service", "share")),
	}
}

// Compose builds the share text, the sms: URI and a signed share link
func (s *ShareService) Compose(ctx context.Context, listID int64) (*domain.ShareMessage, error) {
	if _, err := s.shopping.GetList(ctx, listID); err != nil {
		return nil, err
	}

	items, err := s.shopping.GetItems(ctx, listID)
	if err != nil {
		return nil, err
	}

	text := domain.FormatShareText(items)
	msg := &domain.ShareMessage{
		ListID: listID,
		Text:   text,
		SMSURI: domain.SMSURI(text),
	}

	if s.opts.Secret != "" {
		token, expiresAt, err := s.IssueToken(listID)
		if err != nil {
			return nil, err
		}
		msg.ShareURL = strings.TrimRight(s.opts.PublicBaseURL, "/") + "/api/v1/shared/" + token
		msg.ExpiresAt = expiresAt
	}

	s.logger.DebugContext(ctx, "composed share message",
		slog.Int64("list_id", listID),
		slog.Int("items", len(items)))

	return msg, nil
}

// IssueToken signs a share token for the list
func (s *ShareService) IssueToken(listID int64) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(s.opts.TokenTTL)

	claims := shareClaims{
		ListID: listID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    shareIssuer,
			Subject:   strconv.FormatInt(listID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.opts.Secret))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign share token: %w", err)
	}
	return token, expiresAt, nil
}

// ResolveToken verifies a share token and returns the shared list
func (s *ShareService) ResolveToken(ctx context.Context, token string) (*domain.SharedList, error) {
	if s.opts.Secret == "" {
		return nil, fmt.Errorf("share links are disabled: %w", domain.ErrNotFound)
	}

	var claims shareClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(s.opts.Secret), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(shareIssuer),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.NewValidationError("share link has expired")
		}
		return nil, domain.NewValidationError("invalid share link")
	}

	list, err := s.shopping.GetList(ctx, claims.ListID)
	if err != nil {
		return nil, err
	}

	items, err := s.shopping.GetItems(ctx, claims.ListID)
	if err != nil {
		return nil, err
	}

	return &domain.SharedList{List: list, Items: items}, nil
}

// SendTelegram queues delivery of the share text to a telegram chat
func (s *ShareService) SendTelegram(ctx context.Context, listID, chatID int64) (*domain.Job, error) {
	if chatID == 0 {
		return nil, domain.NewValidationError("chat_id is required")
	}

	if _, err := s.shopping.GetList(ctx, listID); err != nil {
		return nil, err
	}

	job, err := s.queue.EnqueueTelegram(ctx, listID, chatID)
	if err != nil {
		return nil, fmt.Errorf("failed to enqueue telegram share: %w", err)
	}

	s.logger.InfoContext(ctx, "queued telegram share",
		slog.Int64("list_id", listID),
		slog.String("job_id", job.ID))

	return job, nil
}
