package guild

import (
	"context"
	"fmt"
	"guildbot/internal/core/domain"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"
)

// maxFetch is the largest page Discord returns for a message history request.
const maxFetch = 100

type DiscordSession interface {
	GuildRoles(guildID string, options ...discordgo.RequestOption) ([]*discordgo.Role, error)
	GuildMember(guildID, userID string, options ...discordgo.RequestOption) (*discordgo.Member, error)
	ChannelDelete(channelID string, options ...discordgo.RequestOption) (*discordgo.Channel, error)
	GuildChannelCreate(guildID, name string, ctype discordgo.ChannelType,
		options ...discordgo.RequestOption) (*discordgo.Channel, error)
	ChannelMessages(channelID string, limit int, beforeID, afterID, aroundID string,
		options ...discordgo.RequestOption) ([]*discordgo.Message, error)
}

// Discord performs guild and channel operations through the Discord REST API.
type Discord struct {
	session DiscordSession
}

func NewDiscord(session DiscordSession) *Discord {
	return &Discord{session: session}
}

func (d *Discord) GuildRoles(ctx context.Context, guildID string) ([]domain.Role, error) {
	roles, err := d.session.GuildRoles(guildID, discordgo.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("error fetching roles of guild %s: %w", guildID, err)
	}

	result := make([]domain.Role, 0, len(roles))
	for _, role := range roles {
		result = append(result, domain.Role{ID: role.ID, Name: role.Name})
	}

	return result, nil
}

func (d *Discord) MemberRoles(ctx context.Context, guildID, userID string) ([]string, error) {
	member, err := d.session.GuildMember(guildID, userID, discordgo.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("error fetching member %s of guild %s: %w", userID, guildID, err)
	}

	return member.Roles, nil
}

func (d *Discord) DeleteChannel(ctx context.Context, channelID string) error {
	_, err := d.session.ChannelDelete(channelID, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("error deleting channel %s: %w", channelID, err)
	}

	return nil
}

func (d *Discord) CreateChannel(ctx context.Context, guildID, name string) (domain.Channel, error) {
	channel, err := d.session.GuildChannelCreate(guildID, name, discordgo.ChannelTypeGuildText,
		discordgo.WithContext(ctx))
	if err != nil {
		return domain.Channel{}, fmt.Errorf("error creating channel %q in guild %s: %w", name, guildID, err)
	}

	return domain.Channel{ID: channel.ID, Name: channel.Name}, nil
}

func (d *Discord) FetchMessagesBefore(ctx context.Context, channelID, messageID string,
	limit int) ([]domain.Message, error) {
	if limit <= 0 {
		return nil, nil
	}
	if limit > maxFetch {
		log.Debug().Int("limit", limit).Msg("clamping message history limit")
		limit = maxFetch
	}

	messages, err := d.session.ChannelMessages(channelID, limit, messageID, "", "", discordgo.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("error fetching messages of channel %s: %w", channelID, err)
	}

	result := make([]domain.Message, 0, len(messages))
	for _, m := range messages {
		result = append(result, toDomainMessage(m))
	}

	return result, nil
}

func toDomainMessage(m *discordgo.Message) domain.Message {
	message := domain.Message{
		ID:        m.ID,
		ChannelID: m.ChannelID,
		GuildID:   m.GuildID,
		Text:      m.Content,
	}

	if m.Author != nil {
		message.AuthorID = m.Author.ID
		message.Username = m.Author.Username
	}

	return message
}
