package port

import (
	"context"
	"guildbot/internal/core/domain"
)

type Command interface {
	// Respond executes the command for an invocation that already passed validation.
	Respond(ctx context.Context, invocation *domain.Invocation) error
}

type CommandRegistry interface {
	// Register binds a definition to its handler. Definitions are immutable after registration.
	Register(definition domain.Definition, handler Command) error
	// Get resolves an alias to the first registered definition carrying it and its handler.
	Get(alias string) (domain.Definition, Command, error)
	// Definitions returns all definitions in registration order.
	Definitions() []domain.Definition
}

type Dispatcher interface {
	// Dispatch parses, validates and executes a single inbound message.
	Dispatch(ctx context.Context, message *domain.Message) error
}
