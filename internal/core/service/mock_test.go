package service

import (
	"context"
	"guildbot/internal/core/domain"

	"github.com/stretchr/testify/mock"
)

type mockTextSender struct {
	sendCalled  bool
	callCount   int
	sendReplies []string
	statuses    []string
	sendError   error
}

func (m *mockTextSender) NotifyStatus(_ context.Context, text string) error {
	m.statuses = append(m.statuses, text)
	return nil
}

func (m *mockTextSender) NotifyAndReturnError(_ context.Context, err error, _ *domain.Message) error {
	return err
}

func (m *mockTextSender) SendMessageReply(_ context.Context, _ *domain.Message, text string) error {
	m.callCount++
	m.sendCalled = true
	m.sendReplies = append(m.sendReplies, text)
	return m.sendError
}

type MockDirectory struct {
	mock.Mock
}

func (m *MockDirectory) GuildRoles(ctx context.Context, guildID string) ([]domain.Role, error) {
	args := m.Called(ctx, guildID)
	roles, _ := args.Get(0).([]domain.Role)
	return roles, args.Error(1)
}

func (m *MockDirectory) MemberRoles(ctx context.Context, guildID, userID string) ([]string, error) {
	args := m.Called(ctx, guildID, userID)
	held, _ := args.Get(0).([]string)
	return held, args.Error(1)
}

// MockDirectory also acts as the channel manager and history for end to end tests.
func (m *MockDirectory) DeleteChannel(ctx context.Context, channelID string) error {
	args := m.Called(ctx, channelID)
	return args.Error(0)
}

func (m *MockDirectory) CreateChannel(ctx context.Context, guildID, name string) (domain.Channel, error) {
	args := m.Called(ctx, guildID, name)
	return args.Get(0).(domain.Channel), args.Error(1)
}

func (m *MockDirectory) FetchMessagesBefore(ctx context.Context, channelID, messageID string,
	limit int) ([]domain.Message, error) {
	args := m.Called(ctx, channelID, messageID, limit)
	messages, _ := args.Get(0).([]domain.Message)
	return messages, args.Error(1)
}

func guildMessage(text string) *domain.Message {
	return &domain.Message{
		ID:        "m1",
		ChannelID: "c1",
		GuildID:   "g1",
		AuthorID:  "u1",
		Username:  "alice",
		Text:      text,
	}
}
