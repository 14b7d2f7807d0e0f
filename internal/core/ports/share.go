// internal/core/ports/share.go
package ports

import (
	"context"

	"github.com/ammerola/shoplist-be/internal/core/domain"
)

// ShareService renders lists for sharing as a text message
type ShareService interface {
	Compose(ctx context.Context, listID int64) (*domain.ShareMessage, error)
	ResolveToken(ctx context.Context, token string) (*domain.SharedList, error)
	SendTelegram(ctx context.Context, listID, chatID int64) (*domain.Job, error)
}

// Messenger delivers a text message to a chat
type Messenger interface {
	Send(ctx context.Context, chatID int64, text string) error
}
