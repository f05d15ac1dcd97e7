package command

import (
	"context"
	"fmt"
	"guildbot/internal/core/domain"
	"guildbot/internal/core/port"
	"runtime"
	"runtime/metrics"
	"time"

	"github.com/rs/zerolog"
)

const heapMetric = "/memory/classes/heap/objects:bytes"

const statsTemplate = `commands: %d (%d aliases)
guilds: %d
uptime: %s
gateway latency: %s
goroutines: %d
heap: %d KB
`

// Debug reports what the bot is serving and how long it has been up.
type Debug struct {
	registry   port.CommandRegistry
	status     port.BotStatus
	textSender port.TextSender
	roles      []string
	startedAt  time.Time
	now        func() time.Time
}

func NewDebug(registry port.CommandRegistry, status port.BotStatus, sender port.TextSender,
	roles []string) *Debug {
	return &Debug{
		registry:   registry,
		status:     status,
		textSender: sender,
		roles:      roles,
		startedAt:  time.Now(),
		now:        time.Now,
	}
}

func (d *Debug) Definition() domain.Definition {
	return domain.Definition{
		Aliases:       []string{"debug", "stats"},
		RequiredRoles: d.roles,
		Summary:       "Shows what the bot is serving and how it is doing.",
		Usage:         "`!debug` or `!stats`: shows registered commands, guilds, uptime and gateway latency. Takes no arguments.",
	}
}

func (d *Debug) Respond(ctx context.Context, invocation *domain.Invocation) error {
	l := zerolog.Ctx(ctx).With().Str("command", invocation.Command).Logger()
	l.Info().Msg("handling request")

	definitions := d.registry.Definitions()
	aliases := 0
	for _, def := range definitions {
		aliases += len(def.Aliases)
	}

	heap := []metrics.Sample{{Name: heapMetric}}
	metrics.Read(heap)

	var heapBytes uint64
	if heap[0].Value.Kind() == metrics.KindUint64 {
		heapBytes = heap[0].Value.Uint64()
	}

	reply := fmt.Sprintf(statsTemplate,
		len(definitions), aliases,
		d.status.GuildCount(),
		d.now().Sub(d.startedAt).Round(time.Second),
		d.status.Latency().Round(time.Millisecond),
		runtime.NumGoroutine(),
		heapBytes/1024,
	)

	err := d.textSender.SendMessageReply(ctx, invocation.Message, reply)
	if err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}

	return nil
}
