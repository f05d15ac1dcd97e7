package command

import (
	"fmt"
	"guildbot/internal/core/domain"
	"guildbot/internal/core/port"

	"github.com/rs/zerolog/log"
)

type entry struct {
	definition domain.Definition
	handler    port.Command
}

// Registry holds command definitions together with their handlers. It is filled
// once at startup and only read afterwards, so concurrent Get calls need no locking.
type Registry struct {
	entries []entry
	index   map[string]int
}

func (r *Registry) Register(definition domain.Definition, handler port.Command) error {
	if err := definition.Validate(); err != nil {
		return err
	}
	if handler == nil {
		return fmt.Errorf("%w: no handler for %s", domain.ErrInvalidDefinition, definition.Name())
	}

	if r.index == nil {
		r.index = make(map[string]int)
	}

	definition.Aliases = append([]string(nil), definition.Aliases...)
	definition.RequiredRoles = append([]string(nil), definition.RequiredRoles...)

	r.entries = append(r.entries, entry{definition: definition, handler: handler})
	position := len(r.entries) - 1

	for _, alias := range definition.Aliases {
		if existing, ok := r.index[alias]; ok {
			log.Warn().
				Str("alias", alias).
				Str("handler", definition.Name()).
				Str("shadowedBy", r.entries[existing].definition.Name()).
				Msg("alias already registered, keeping first registration")
			continue
		}
		r.index[alias] = position
	}

	log.Info().
		Strs("aliases", definition.Aliases).
		Int("minArgs", definition.MinArgs).
		Int("maxArgs", definition.MaxArgs).
		Strs("roles", definition.RequiredRoles).
		Msg("adding command handler to registry")

	return nil
}

func (r *Registry) Get(alias string) (domain.Definition, port.Command, error) {
	log.Debug().Str("command", alias).Msg("fetching command handler from registry")

	position, ok := r.index[alias]
	if !ok {
		return domain.Definition{}, nil, domain.ErrCommandNotFound
	}

	e := r.entries[position]
	return e.definition, e.handler, nil
}

func (r *Registry) Definitions() []domain.Definition {
	definitions := make([]domain.Definition, len(r.entries))
	for i, e := range r.entries {
		definitions[i] = e.definition
	}

	return definitions
}
