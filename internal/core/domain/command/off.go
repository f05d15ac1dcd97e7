package command

import (
	"context"
	"guildbot/internal/core/domain"
	"guildbot/internal/core/port"

	"github.com/rs/zerolog"
)

const offNotice = "BOT OFF!"

// Off asks the process to shut down. It does not stop anything itself: it returns
// domain.ErrShutdownRequested and leaves the shutdown to the process entry point.
type Off struct {
	textSender port.TextSender
	roles      []string
}

func NewOff(sender port.TextSender, roles []string) *Off {
	return &Off{textSender: sender, roles: roles}
}

func (o *Off) Definition() domain.Definition {
	return domain.Definition{
		Aliases:       []string{"off"},
		RequiredRoles: o.roles,
		Summary:       "Turns the bot off.",
		Usage:         "`!off`: replies, posts a status notice and shuts the bot down. Takes no arguments.",
	}
}

func (o *Off) Respond(ctx context.Context, invocation *domain.Invocation) error {
	l := zerolog.Ctx(ctx).With().Str("command", invocation.Command).Logger()
	l.Info().Msg("handling request")

	if err := o.textSender.SendMessageReply(ctx, invocation.Message, offNotice); err != nil {
		l.Warn().Err(err).Msg("failed to reply to shutdown request")
	}

	if err := o.textSender.NotifyStatus(ctx, offNotice); err != nil {
		l.Warn().Err(err).Msg("failed to post shutdown status notice")
	}

	return domain.ErrShutdownRequested
}
