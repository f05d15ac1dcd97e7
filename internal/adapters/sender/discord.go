package sender

import (
	"context"
	"fmt"
	"guildbot/internal/core/domain"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"
)

// DiscordMessageLimit is the maximum content length of a single Discord message, in characters.
const DiscordMessageLimit = 2000

type DiscordSession interface {
	ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend,
		options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// noMentions stops Discord from resolving user, role, @everyone and @here mentions
// in text the bot posts, including text echoed from other users.
func noMentions() *discordgo.MessageAllowedMentions {
	return &discordgo.MessageAllowedMentions{Parse: []discordgo.AllowedMentionType{}}
}

type Discord struct {
	session         DiscordSession
	statusChannelID string
}

func NewDiscord(session DiscordSession, statusChannelID string) *Discord {
	return &Discord{session: session, statusChannelID: statusChannelID}
}

func (s *Discord) SendMessageReply(ctx context.Context, message *domain.Message, text string) error {
	reference := &discordgo.MessageReference{
		MessageID: message.ID,
		ChannelID: message.ChannelID,
		GuildID:   message.GuildID,
	}

	for _, chunk := range splitMessage(text, DiscordMessageLimit) {
		_, err := s.session.ChannelMessageSendComplex(message.ChannelID, &discordgo.MessageSend{
			Content:         chunk,
			Reference:       reference,
			AllowedMentions: noMentions(),
		}, discordgo.WithContext(ctx))
		if err != nil {
			return fmt.Errorf("%w: %w", domain.ErrSendingReplyFailed, err)
		}
	}

	return nil
}

func (s *Discord) NotifyStatus(ctx context.Context, text string) error {
	if s.statusChannelID == "" {
		log.Debug().Str("notice", text).Msg("no status channel configured, skipping notice")
		return nil
	}

	_, err := s.session.ChannelMessageSendComplex(s.statusChannelID, &discordgo.MessageSend{
		Content:         text,
		AllowedMentions: noMentions(),
	}, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("failed to post status notice: %w", err)
	}

	return nil
}

func (s *Discord) NotifyAndReturnError(ctx context.Context, err error, message *domain.Message) error {
	log.Error().Err(err).
		Str("messageId", message.ID).
		Str("channelId", message.ChannelID).
		Msg("command failed")

	sendErr := s.SendMessageReply(ctx, message, fmt.Sprintf("error: %s", err.Error()))
	if sendErr != nil {
		return sendErr
	}

	return err
}

func splitMessage(text string, limit int) []string {
	runes := []rune(text)
	if len(runes) <= limit {
		return []string{text}
	}

	chunks := make([]string, 0, len(runes)/limit+1)
	for len(runes) > limit {
		chunks = append(chunks, string(runes[:limit]))
		runes = runes[limit:]
	}
	if len(runes) > 0 {
		chunks = append(chunks, string(runes))
	}

	return chunks
}
