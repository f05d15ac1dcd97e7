package port

import (
	"context"
	"guildbot/internal/core/domain"
)

type TextSender interface {
	// SendMessageReply sends text as a reply to the given message.
	SendMessageReply(ctx context.Context, message *domain.Message, text string) error
	// NotifyStatus posts an operational notice to the status channel, if one is configured.
	NotifyStatus(ctx context.Context, text string) error
	// NotifyAndReturnError sends an error notification based on the provided message context and returns the error.
	NotifyAndReturnError(ctx context.Context, err error, message *domain.Message) error
}
