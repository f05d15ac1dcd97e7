package command

import (
	"context"
	"fmt"
	"guildbot/internal/core/domain"
	"guildbot/internal/core/port"

	"github.com/rs/zerolog"
)

const pong = "Pong!"

type Ping struct {
	textSender port.TextSender
}

func NewPing(sender port.TextSender) *Ping {
	return &Ping{textSender: sender}
}

func (p *Ping) Definition() domain.Definition {
	return domain.Definition{
		Aliases: []string{"ping", "test"},
		Summary: "Checks that the bot is alive.",
		Usage:   "`!ping` or `!test`: replies with Pong!",
	}
}

func (p *Ping) Respond(ctx context.Context, invocation *domain.Invocation) error {
	l := zerolog.Ctx(ctx).With().Str("command", invocation.Command).Logger()
	l.Info().Msg("handling request")

	err := p.textSender.SendMessageReply(ctx, invocation.Message, pong)
	if err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}

	return nil
}
