// internal/workers/notifications_processor.go
package workers

import (
	"context"
	"errors"
	"log/slog"

	"github.com/hibiken/asynq"

	"github.com/ammerola/shoplist-be/internal/core/domain"
	"github.com/ammerola/shoplist-be/internal/core/ports"
)

// ErrMessengerDisabled is returned when no Telegram bot token is configured
var ErrMessengerDisabled = errors.New("telegram messenger is not configured")

// NotificationProcessor sends shared lists to messaging chats
type NotificationProcessor struct {
	share     ports.ShareService
	messenger ports.Messenger
	jobs      ports.JobTracker
	logger    *slog.Logger
}

// NewNotificationProcessor creates a new notification processor. messenger
// may be nil, in which case every share task fails without retrying.
func NewNotificationProcessor(share ports.ShareService, messenger ports.Messenger,
	jobs ports.JobTracker, logger *slog.Logger) *NotificationProcessor {
	return &NotificationProcessor{
		share:     share,
		messenger: messenger,
		jobs:      jobs,
		logger:    logger.With(slog.String("processor", "notification")),
	}
}

// SendTelegram composes the share text of a list and sends it to the chat
func (p *NotificationProcessor) SendTelegram(ctx context.Context, t *asynq.Task) error {
	var payload TelegramPayload
	if err := decodePayload(t, &payload); err != nil {
		return err
	}

	return trackJob(ctx, p.jobs, p.logger, payload.JobID, domain.JobShareChat, payload.ListID, func(job *domain.Job) error {
		if p.messenger == nil {
			return ErrMessengerDisabled
		}

		msg, err := p.share.Compose(ctx, payload.ListID)
		if err != nil {
			return err
		}

		if err := p.messenger.Send(ctx, payload.ChatID, msg.Text); err != nil {
			return err
		}

		p.logger.InfoContext(ctx, "list shared to telegram",
			slog.Int64("list_id", payload.ListID),
			slog.Int64("chat_id", payload.ChatID))
		job.Processed = 1
		return nil
	})
}
