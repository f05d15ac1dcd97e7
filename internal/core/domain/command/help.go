package command

import (
	"context"
	"errors"
	"fmt"
	"guildbot/internal/core/domain"
	"guildbot/internal/core/port"
	"strings"

	"github.com/rs/zerolog"
)

// Help lists the registered commands. It reads the same registry it is registered in.
type Help struct {
	registry   port.CommandRegistry
	textSender port.TextSender
}

func NewHelp(registry port.CommandRegistry, sender port.TextSender) *Help {
	return &Help{registry: registry, textSender: sender}
}

func (h *Help) Definition() domain.Definition {
	return domain.Definition{
		Aliases: []string{"help", "info"},
		MaxArgs: 1,
		Summary: "Lists commands or explains one of them.",
		Usage:   "`!help` lists every command. `!help <command>` shows how to use that command.",
	}
}

func (h *Help) Respond(ctx context.Context, invocation *domain.Invocation) error {
	l := zerolog.Ctx(ctx).With().Str("command", invocation.Command).Logger()
	l.Info().Msg("handling request")

	var reply string

	fields := invocation.Fields()
	if len(fields) == 0 {
		reply = h.overview()
	} else {
		def, _, err := h.registry.Get(fields[0])
		switch {
		case errors.Is(err, domain.ErrCommandNotFound):
			l.Debug().Str("topic", fields[0]).Msg("help requested for unknown command")
			reply = domain.NotFoundReply(fields[0])
		case err != nil:
			return fmt.Errorf("failed to look up help topic: %w", err)
		default:
			reply = def.Usage
		}
	}

	err := h.textSender.SendMessageReply(ctx, invocation.Message, reply)
	if err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}

	return nil
}

func (h *Help) overview() string {
	sb := &strings.Builder{}

	fmt.Fprintf(sb, "Here's a list of everything you can do with me! Try `%chelp <command>` for more details.\n\n",
		domain.Prefix)

	for _, def := range h.registry.Definitions() {
		names := make([]string, len(def.Aliases))
		for i, alias := range def.Aliases {
			names[i] = fmt.Sprintf("`%c%s`", domain.Prefix, alias)
		}

		fmt.Fprintf(sb, "%s: %s", strings.Join(names, ", "), def.Summary)
		if len(def.RequiredRoles) > 0 {
			fmt.Fprintf(sb, " (requires %s)", strings.Join(def.RequiredRoles, ", "))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
