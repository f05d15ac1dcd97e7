package command

import (
	"context"
	"fmt"
	"guildbot/internal/core/domain"
	"guildbot/internal/core/port"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

// MaxHistory is the most messages a single fetch may return.
const MaxHistory = 100

type GetMessages struct {
	history    port.MessageHistory
	textSender port.TextSender
}

func NewGetMessages(history port.MessageHistory, sender port.TextSender) *GetMessages {
	return &GetMessages{history: history, textSender: sender}
}

func (g *GetMessages) Definition() domain.Definition {
	return domain.Definition{
		Aliases: []string{"get_messages"},
		MinArgs: 1,
		MaxArgs: 1,
		Summary: "Shows recent messages of this channel.",
		Usage:   fmt.Sprintf("`!get_messages <count>`: shows up to <count> messages sent before this one, 0-%d.", MaxHistory),
	}
}

func (g *GetMessages) Respond(ctx context.Context, invocation *domain.Invocation) error {
	l := zerolog.Ctx(ctx).With().Str("command", invocation.Command).Logger()
	l.Info().Msg("handling request")

	limit, err := parseLimit(invocation.Fields()[0])
	if err != nil {
		l.Debug().Err(err).Msg("rejecting message count")

		err = g.textSender.SendMessageReply(ctx, invocation.Message, domain.InvalidArgsReply(invocation.Command))
		if err != nil {
			return fmt.Errorf("failed to send message: %w", err)
		}

		return nil
	}

	var messages []domain.Message
	if limit > 0 {
		messages, err = g.history.FetchMessagesBefore(ctx, invocation.Message.ChannelID, invocation.Message.ID, limit)
		if err != nil {
			return g.textSender.NotifyAndReturnError(ctx, fmt.Errorf("failed to fetch messages: %w", err),
				invocation.Message)
		}
	}

	l.Debug().Int("requested", limit).Int("fetched", len(messages)).Msg("fetched message history")

	err = g.textSender.SendMessageReply(ctx, invocation.Message, formatHistory(messages))
	if err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}

	return nil
}

func parseLimit(arg string) (int, error) {
	limit, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("message count %q is not a number: %w", arg, err)
	}

	if limit < 0 || limit > MaxHistory {
		return 0, fmt.Errorf("message count %d out of range 0-%d", limit, MaxHistory)
	}

	return limit, nil
}

// formatHistory renders messages oldest first. The input is newest first.
func formatHistory(messages []domain.Message) string {
	if len(messages) == 0 {
		return "no messages found"
	}

	var plural string
	if len(messages) != 1 {
		plural = "s"
	}

	sb := &strings.Builder{}
	fmt.Fprintf(sb, "last %d message%s:\n", len(messages), plural)

	for i := len(messages) - 1; i >= 0; i-- {
		text := messages[i].Text
		if text == "" {
			text = "(no text)"
		}
		fmt.Fprintf(sb, "%s: %s\n", messages[i].Username, text)
	}

	return sb.String()
}
