package service

import (
	"context"
	"errors"
	"fmt"
	"guildbot/internal/core/domain"
	"guildbot/internal/core/port"

	"github.com/rs/zerolog"
)

type Dispatcher struct {
	registry   port.CommandRegistry
	validator  *Validator
	textSender port.TextSender
}

func NewDispatcher(registry port.CommandRegistry, validator *Validator, sender port.TextSender) *Dispatcher {
	return &Dispatcher{registry: registry, validator: validator, textSender: sender}
}

// Dispatch handles one message. User input problems are answered with a reply and
// return nil; returned errors come from the gateway or from the command handler.
func (d *Dispatcher) Dispatch(ctx context.Context, message *domain.Message) error {
	command, args, ok := domain.ParseCommand(message.Text)
	if !ok {
		return nil
	}

	l := zerolog.Ctx(ctx).With().Str("command", command).Logger()

	definition, handler, err := d.registry.Get(command)
	if errors.Is(err, domain.ErrCommandNotFound) {
		l.Debug().Msg("no handler for command")
		return d.reply(ctx, message, domain.NotFoundReply(command))
	}
	if err != nil {
		return fmt.Errorf("failed to look up command %s: %w", command, err)
	}

	result, err := d.validator.Validate(ctx, definition, args, message)
	if err != nil {
		return fmt.Errorf("failed to validate command %s: %w", command, err)
	}

	l.Debug().Stringer("result", result).Str("args", args).Msg("validated command")

	switch result {
	case ArityInvalid:
		return d.reply(ctx, message, domain.InvalidArgsReply(command))
	case RoleInvalid:
		return d.reply(ctx, message, domain.MissingRolesReply(command))
	}

	return handler.Respond(ctx, &domain.Invocation{
		Definition: definition,
		Command:    command,
		Args:       args,
		Message:    message,
	})
}

func (d *Dispatcher) reply(ctx context.Context, message *domain.Message, text string) error {
	if err := d.textSender.SendMessageReply(ctx, message, text); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrSendingReplyFailed, err)
	}

	return nil
}
