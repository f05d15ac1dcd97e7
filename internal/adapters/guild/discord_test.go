package guild

import (
	"errors"
	"guildbot/internal/core/domain"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockSession struct {
	mock.Mock
}

func (m *MockSession) GuildRoles(guildID string, _ ...discordgo.RequestOption) ([]*discordgo.Role, error) {
	args := m.Called(guildID)
	roles, _ := args.Get(0).([]*discordgo.Role)
	return roles, args.Error(1)
}

func (m *MockSession) GuildMember(guildID, userID string, _ ...discordgo.RequestOption) (*discordgo.Member, error) {
	args := m.Called(guildID, userID)
	member, _ := args.Get(0).(*discordgo.Member)
	return member, args.Error(1)
}

func (m *MockSession) ChannelDelete(channelID string, _ ...discordgo.RequestOption) (*discordgo.Channel, error) {
	args := m.Called(channelID)
	channel, _ := args.Get(0).(*discordgo.Channel)
	return channel, args.Error(1)
}

func (m *MockSession) GuildChannelCreate(guildID, name string, ctype discordgo.ChannelType,
	_ ...discordgo.RequestOption) (*discordgo.Channel, error) {
	args := m.Called(guildID, name, ctype)
	channel, _ := args.Get(0).(*discordgo.Channel)
	return channel, args.Error(1)
}

func (m *MockSession) ChannelMessages(channelID string, limit int, beforeID, afterID, aroundID string,
	_ ...discordgo.RequestOption) ([]*discordgo.Message, error) {
	args := m.Called(channelID, limit, beforeID, afterID, aroundID)
	messages, _ := args.Get(0).([]*discordgo.Message)
	return messages, args.Error(1)
}

func TestDiscord_GuildRoles(t *testing.T) {
	ms := new(MockSession)
	ms.On("GuildRoles", "g1").Return([]*discordgo.Role{
		{ID: "r1", Name: "Admin"},
		{ID: "r2", Name: "Mod"},
	}, nil).Once()

	roles, err := NewDiscord(ms).GuildRoles(t.Context(), "g1")

	require.NoError(t, err)
	assert.Equal(t, []domain.Role{{ID: "r1", Name: "Admin"}, {ID: "r2", Name: "Mod"}}, roles)
	ms.AssertExpectations(t)
}

func TestDiscord_GuildRolesFails(t *testing.T) {
	ms := new(MockSession)
	ms.On("GuildRoles", "g1").Return(nil, errors.New("unknown guild")).Once()

	_, err := NewDiscord(ms).GuildRoles(t.Context(), "g1")

	require.ErrorContains(t, err, "unknown guild")
}

func TestDiscord_MemberRoles(t *testing.T) {
	tests := []struct {
		name    string
		member  *discordgo.Member
		retErr  error
		want    []string
		wantErr bool
	}{
		{
			name:   "member with roles",
			member: &discordgo.Member{Roles: []string{"r0", "r1"}},
			want:   []string{"r0", "r1"},
		},
		{
			name:   "member without roles",
			member: &discordgo.Member{},
			want:   nil,
		},
		{
			name:    "member lookup fails",
			retErr:  errors.New("unknown member"),
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ms := new(MockSession)
			ms.On("GuildMember", "g1", "u1").Return(tc.member, tc.retErr).Once()

			got, err := NewDiscord(ms).MemberRoles(t.Context(), "g1", "u1")

			if tc.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tc.want, got)
			ms.AssertExpectations(t)
		})
	}
}

func TestDiscord_DeleteChannel(t *testing.T) {
	ms := new(MockSession)
	ms.On("ChannelDelete", "c1").Return(&discordgo.Channel{ID: "c1"}, nil).Once()
	ms.On("ChannelDelete", "c2").Return(nil, errors.New("missing permissions")).Once()

	d := NewDiscord(ms)

	require.NoError(t, d.DeleteChannel(t.Context(), "c1"))
	require.Error(t, d.DeleteChannel(t.Context(), "c2"))
	ms.AssertExpectations(t)
}

func TestDiscord_CreateChannel(t *testing.T) {
	ms := new(MockSession)
	ms.On("GuildChannelCreate", "g1", "news", discordgo.ChannelTypeGuildText).
		Return(&discordgo.Channel{ID: "c9", Name: "news"}, nil).Once()

	channel, err := NewDiscord(ms).CreateChannel(t.Context(), "g1", "news")

	require.NoError(t, err)
	assert.Equal(t, domain.Channel{ID: "c9", Name: "news"}, channel)
	ms.AssertExpectations(t)
}

func TestDiscord_FetchMessagesBefore(t *testing.T) {
	tests := []struct {
		name      string
		limit     int
		setup     func(ms *MockSession)
		want      []domain.Message
		wantCalls int
	}{
		{
			name:  "maps messages",
			limit: 2,
			setup: func(ms *MockSession) {
				ms.On("ChannelMessages", "c1", 2, "m1", "", "").Return([]*discordgo.Message{
					{ID: "m0", ChannelID: "c1", Content: "hi", Author: &discordgo.User{ID: "u2", Username: "bob"}},
					{ID: "m-1", ChannelID: "c1", Content: "system"},
				}, nil).Once()
			},
			want: []domain.Message{
				{ID: "m0", ChannelID: "c1", AuthorID: "u2", Username: "bob", Text: "hi"},
				{ID: "m-1", ChannelID: "c1", Text: "system"},
			},
			wantCalls: 1,
		},
		{
			name:  "clamps to page size",
			limit: 500,
			setup: func(ms *MockSession) {
				ms.On("ChannelMessages", "c1", 100, "m1", "", "").Return([]*discordgo.Message{}, nil).Once()
			},
			want:      []domain.Message{},
			wantCalls: 1,
		},
		{
			name:      "zero limit makes no call",
			limit:     0,
			setup:     func(_ *MockSession) {},
			want:      nil,
			wantCalls: 0,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ms := new(MockSession)
			tc.setup(ms)

			got, err := NewDiscord(ms).FetchMessagesBefore(t.Context(), "c1", "m1", tc.limit)

			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
			ms.AssertNumberOfCalls(t, "ChannelMessages", tc.wantCalls)
			ms.AssertExpectations(t)
		})
	}
}
