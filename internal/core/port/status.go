package port

import "time"

type BotStatus interface {
	// GuildCount returns how many guilds the gateway session currently serves.
	GuildCount() int
	// Latency returns the last measured gateway heartbeat round trip.
	Latency() time.Duration
}
