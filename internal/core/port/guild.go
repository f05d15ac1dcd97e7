package port

import (
	"context"
	"guildbot/internal/core/domain"
)

type GuildDirectory interface {
	// GuildRoles returns every role defined in a guild.
	GuildRoles(ctx context.Context, guildID string) ([]domain.Role, error)
	// MemberRoles returns the IDs of the roles a guild member holds.
	MemberRoles(ctx context.Context, guildID, userID string) ([]string, error)
}

type ChannelManager interface {
	DeleteChannel(ctx context.Context, channelID string) error
	CreateChannel(ctx context.Context, guildID, name string) (domain.Channel, error)
}

type MessageHistory interface {
	// FetchMessagesBefore returns up to limit messages posted before messageID, newest first.
	FetchMessagesBefore(ctx context.Context, channelID, messageID string, limit int) ([]domain.Message, error)
}
