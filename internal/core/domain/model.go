package domain

// Message is an inbound or fetched chat message, reduced to what the bot needs.
type Message struct {
	ID        string
	ChannelID string
	GuildID   string
	AuthorID  string
	Username  string
	Text      string
}

// InGuild reports whether the message was posted in a guild channel rather than a DM.
func (m *Message) InGuild() bool {
	return m.GuildID != ""
}

type Role struct {
	ID   string
	Name string
}

type Channel struct {
	ID   string
	Name string
}
