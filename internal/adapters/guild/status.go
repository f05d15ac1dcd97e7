package guild

import (
	"time"

	"github.com/bwmarrin/discordgo"
)

// Status reads connection figures from a live gateway session.
type Status struct {
	session *discordgo.Session
}

func NewStatus(session *discordgo.Session) *Status {
	return &Status{session: session}
}

func (s *Status) GuildCount() int {
	state := s.session.State
	if state == nil {
		return 0
	}

	state.RLock()
	defer state.RUnlock()

	return len(state.Guilds)
}

func (s *Status) Latency() time.Duration {
	return s.session.HeartbeatLatency()
}
