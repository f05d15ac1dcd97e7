package handler

import (
	"context"
	"guildbot/internal/core/port"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"
)

const (
	onNotice     = "BOT ON!"
	readyTimeout = 10 * time.Second
)

type Ready struct {
	textSender port.TextSender
}

func NewReady(sender port.TextSender) *Ready {
	return &Ready{textSender: sender}
}

func (r *Ready) Handle(_ *discordgo.Session, e *discordgo.Ready) {
	l := log.With().Int("guilds", len(e.Guilds)).Logger()
	if e.User != nil {
		l = l.With().Str("user", e.User.Username).Logger()
	}

	l.Info().Msg("bot ready")

	ctx, cancel := context.WithTimeout(context.Background(), readyTimeout)
	defer cancel()

	if err := r.textSender.NotifyStatus(ctx, onNotice); err != nil {
		l.Warn().Err(err).Msg("failed to post startup status notice")
	}
}
