package command

import (
	"context"
	"fmt"
	"guildbot/internal/core/domain"
	"guildbot/internal/core/port"

	"github.com/rs/zerolog"
)

type DeleteChannel struct {
	channels   port.ChannelManager
	textSender port.TextSender
	roles      []string
}

func NewDeleteChannel(channels port.ChannelManager, sender port.TextSender, roles []string) *DeleteChannel {
	return &DeleteChannel{channels: channels, textSender: sender, roles: roles}
}

func (d *DeleteChannel) Definition() domain.Definition {
	return domain.Definition{
		Aliases:       []string{"delete_channel"},
		RequiredRoles: d.roles,
		Summary:       "Deletes the channel the command is sent in.",
		Usage:         "`!delete_channel`: deletes the current channel. Takes no arguments.",
	}
}

func (d *DeleteChannel) Respond(ctx context.Context, invocation *domain.Invocation) error {
	l := zerolog.Ctx(ctx).With().Str("command", invocation.Command).Logger()
	l.Info().Msg("handling request")

	err := d.channels.DeleteChannel(ctx, invocation.Message.ChannelID)
	if err != nil {
		return d.textSender.NotifyAndReturnError(ctx, fmt.Errorf("failed to delete channel: %w", err),
			invocation.Message)
	}

	l.Info().Msg("deleted channel")

	return nil
}
