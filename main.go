package main

import (
	"context"
	"guildbot/internal/adapters/guild"
	"guildbot/internal/adapters/handler"
	"guildbot/internal/adapters/sender"
	"guildbot/internal/config"
	"guildbot/internal/core/domain"
	"guildbot/internal/core/domain/command"
	"guildbot/internal/core/port"
	"guildbot/internal/core/service"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const drainTimeout = 10 * time.Second

type registrable interface {
	port.Command
	Definition() domain.Definition
}

func main() {
	log.Info().Msg("starting guildbot...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("could not load config")
	}

	zerolog.SetGlobalLevel(cfg.LogLevel)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		log.Fatal().Err(err).Msg("failed initializing discord session")
	}
	session.Identify.Intents = discordgo.IntentGuildMessages |
		discordgo.IntentDirectMessages |
		discordgo.IntentMessageContent

	s := sender.NewDiscord(session, cfg.StatusChannelID)
	g := guild.NewDiscord(session)

	commandRegistry := &command.Registry{}

	commands := []registrable{
		command.NewPing(s),
		command.NewHelp(commandRegistry, s),
		command.NewDeleteChannel(g, s, cfg.AdminRoles),
		command.NewOff(s, cfg.AdminRoles),
		command.NewGetMessages(g, s),
		command.NewCreateChannel(g, s),
		command.NewDebug(commandRegistry, guild.NewStatus(session), s, cfg.AdminRoles),
	}
	for _, c := range commands {
		if err := commandRegistry.Register(c.Definition(), c); err != nil {
			log.Fatal().Err(err).Msg("failed registering command")
		}
	}

	validator := service.NewValidator(service.NewRoleAuthorizer(g))
	dispatcher := service.NewDispatcher(commandRegistry, validator, s)
	throttle := service.NewUserThrottle(ctx, cfg.RateLimit, cfg.RateBurst)

	commandHandler := handler.NewCommand(dispatcher, throttle, cfg.HandlerTimeout, cfg.StatusChannelID)

	session.AddHandler(commandHandler.Handle)
	session.AddHandler(handler.NewReady(s).Handle)

	if err := session.Open(); err != nil {
		log.Fatal().Err(err).Msg("failed opening gateway connection")
	}

	log.Info().Msg("bot listening")

	select {
	case <-ctx.Done():
		log.Info().Msg("received signal, shutting down")
	case <-commandHandler.ShutdownRequested():
		log.Info().Msg("shutdown requested by command")
	}

	if !commandHandler.Wait(drainTimeout) {
		log.Warn().Dur("timeout", drainTimeout).Msg("commands still running at shutdown")
	}

	if err := session.Close(); err != nil {
		log.Error().Err(err).Msg("failed closing gateway connection")
	}

	log.Info().Msg("bot stopped")
}
