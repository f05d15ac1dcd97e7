package handler

import (
	"context"
	"errors"
	"guildbot/internal/core/domain"
	"guildbot/internal/core/port"
	"guildbot/internal/core/service"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/gofrs/uuid/v5"
	"github.com/rs/zerolog/log"
)

// Command feeds gateway message events into the dispatcher. discordgo already calls
// every event handler on its own goroutine, so Handle processes the message inline.
type Command struct {
	dispatcher      port.Dispatcher
	throttle        service.Throttle
	timeout         time.Duration
	statusChannelID string

	shutdown chan struct{}
	once     sync.Once
	// mutex guards closing and every inFlight.Add, so no command starts after Wait.
	mutex    sync.Mutex
	closing  bool
	inFlight sync.WaitGroup
}

func NewCommand(dispatcher port.Dispatcher, throttle service.Throttle, timeout time.Duration,
	statusChannelID string) *Command {
	return &Command{
		dispatcher:      dispatcher,
		throttle:        throttle,
		timeout:         timeout,
		statusChannelID: statusChannelID,
		shutdown:        make(chan struct{}),
	}
}

func (c *Command) Handle(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Message == nil || m.Author == nil {
		return
	}

	if s.State != nil && s.State.User != nil && m.Author.ID == s.State.User.ID {
		return
	}

	if c.statusChannelID != "" && m.ChannelID == c.statusChannelID {
		return
	}

	if _, _, ok := domain.ParseCommand(m.Content); !ok {
		return
	}

	if !c.begin() {
		log.Debug().Str("messageId", m.ID).Msg("shutting down, ignoring command")
		return
	}
	defer c.inFlight.Done()

	if !c.throttle.Allow(m.Author.ID) {
		log.Debug().Str("userId", m.Author.ID).Str("messageId", m.ID).Msg("user throttled, dropping command")
		return
	}

	c.process(toDomainMessage(m))
}

func (c *Command) process(message *domain.Message) {
	var requestID string
	if id, err := uuid.NewV4(); err == nil {
		requestID = id.String()
	} else {
		log.Warn().Err(err).Msg("failed to generate request id")
	}

	l := log.With().
		Str("requestId", requestID).
		Str("messageId", message.ID).
		Str("channelId", message.ChannelID).
		Str("guildId", message.GuildID).
		Str("userId", message.AuthorID).
		Logger()

	ctx, cancel := context.WithTimeout(l.WithContext(context.Background()), c.timeout)
	defer cancel()

	l.Debug().Str("message", message.Text).Msg("received command")

	err := c.dispatcher.Dispatch(ctx, message)
	switch {
	case errors.Is(err, domain.ErrShutdownRequested):
		l.Info().Msg("shutdown requested")
		c.requestShutdown()
	case err != nil:
		l.Err(err).Msg("failed to respond to command")
	}
}

// begin registers an in-flight command unless the handler is closing.
func (c *Command) begin() bool {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if c.closing {
		return false
	}

	c.inFlight.Add(1)
	return true
}

func (c *Command) stopAccepting() {
	c.mutex.Lock()
	c.closing = true
	c.mutex.Unlock()
}

func (c *Command) requestShutdown() {
	c.once.Do(func() {
		c.stopAccepting()
		close(c.shutdown)
	})
}

// ShutdownRequested is closed once a command asked the process to stop.
func (c *Command) ShutdownRequested() <-chan struct{} {
	return c.shutdown
}

// Wait stops accepting new commands and blocks until in-flight ones finish or
// timeout passes. It reports whether all of them finished.
func (c *Command) Wait(timeout time.Duration) bool {
	c.stopAccepting()

	done := make(chan struct{})
	go func() {
		c.inFlight.Wait()
		close(done)
	}()

	select {
	case <-done:
		return true
	case <-time.After(timeout):
		return false
	}
}

func toDomainMessage(m *discordgo.MessageCreate) *domain.Message {
	return &domain.Message{
		ID:        m.ID,
		ChannelID: m.ChannelID,
		GuildID:   m.GuildID,
		AuthorID:  m.Author.ID,
		Username:  getDisplayName(m),
		Text:      m.Content,
	}
}

func getDisplayName(m *discordgo.MessageCreate) string {
	if m.Member != nil && m.Member.Nick != "" {
		return m.Member.Nick
	}

	if m.Author.GlobalName != "" {
		return m.Author.GlobalName
	}

	return m.Author.Username
}
