package service

import (
	"context"
	"fmt"
	"guildbot/internal/core/domain"
	"guildbot/internal/core/port"
	"slices"

	"github.com/rs/zerolog"
)

type Authorizer interface {
	IsAuthorized(ctx context.Context, definition domain.Definition, message *domain.Message) (bool, error)
}

// RoleAuthorizer checks required roles by name against the roles of the caller's guild.
//
// Only required names that exist in the guild are enforced, and the caller must hold
// all of them. A guild that defines none of the names passes every caller. Restricted
// commands are refused outside a guild.
type RoleAuthorizer struct {
	directory port.GuildDirectory
}

func NewRoleAuthorizer(directory port.GuildDirectory) *RoleAuthorizer {
	return &RoleAuthorizer{directory: directory}
}

func (a *RoleAuthorizer) IsAuthorized(ctx context.Context, definition domain.Definition,
	message *domain.Message) (bool, error) {
	if len(definition.RequiredRoles) == 0 {
		return true, nil
	}

	l := zerolog.Ctx(ctx)

	if !message.InGuild() {
		l.Debug().Str("command", definition.Name()).Msg("restricted command outside a guild")
		return false, nil
	}

	roles, err := a.directory.GuildRoles(ctx, message.GuildID)
	if err != nil {
		return false, fmt.Errorf("failed to resolve guild roles: %w", err)
	}

	var enforced []domain.Role
	for _, role := range roles {
		if slices.Contains(definition.RequiredRoles, role.Name) {
			enforced = append(enforced, role)
		}
	}

	if len(enforced) == 0 {
		return true, nil
	}

	held, err := a.directory.MemberRoles(ctx, message.GuildID, message.AuthorID)
	if err != nil {
		return false, fmt.Errorf("failed to resolve roles of %s: %w", message.AuthorID, err)
	}

	for _, role := range enforced {
		if !slices.Contains(held, role.ID) {
			l.Debug().Str("role", role.Name).Str("userId", message.AuthorID).Msg("caller is missing role")
			return false, nil
		}
	}

	return true, nil
}
