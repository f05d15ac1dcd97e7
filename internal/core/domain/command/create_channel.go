package command

import (
	"context"
	"fmt"
	"guildbot/internal/core/domain"
	"guildbot/internal/core/port"

	"github.com/rs/zerolog"
)

const guildOnly = "`%s` can only be used in a server."

type CreateChannel struct {
	channels   port.ChannelManager
	textSender port.TextSender
}

func NewCreateChannel(channels port.ChannelManager, sender port.TextSender) *CreateChannel {
	return &CreateChannel{channels: channels, textSender: sender}
}

func (c *CreateChannel) Definition() domain.Definition {
	return domain.Definition{
		Aliases: []string{"create_channel"},
		MinArgs: 1,
		MaxArgs: 1,
		Summary: "Creates a text channel.",
		Usage:   "`!create_channel <name>`: creates a text channel called <name> in this server.",
	}
}

func (c *CreateChannel) Respond(ctx context.Context, invocation *domain.Invocation) error {
	l := zerolog.Ctx(ctx).With().Str("command", invocation.Command).Logger()
	l.Info().Msg("handling request")

	if !invocation.Message.InGuild() {
		err := c.textSender.SendMessageReply(ctx, invocation.Message, fmt.Sprintf(guildOnly, invocation.Command))
		if err != nil {
			return fmt.Errorf("failed to send message: %w", err)
		}

		return nil
	}

	name := invocation.Fields()[0]

	channel, err := c.channels.CreateChannel(ctx, invocation.Message.GuildID, name)
	if err != nil {
		return c.textSender.NotifyAndReturnError(ctx, fmt.Errorf("failed to create channel: %w", err),
			invocation.Message)
	}

	l.Info().Str("channelId", channel.ID).Str("name", channel.Name).Msg("created channel")

	err = c.textSender.SendMessageReply(ctx, invocation.Message, fmt.Sprintf("created channel <#%s>", channel.ID))
	if err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}

	return nil
}
