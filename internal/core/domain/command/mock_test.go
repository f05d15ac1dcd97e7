package command

import (
	"context"
	"guildbot/internal/core/domain"

	"github.com/stretchr/testify/mock"
)

type mockTextSender struct {
	replyCalls     []string
	statusCalls    []string
	notifyErrCalls []error
	replyErr       error
	statusErr      error
	notifyErr      error
}

func (m *mockTextSender) SendMessageReply(_ context.Context, _ *domain.Message, text string) error {
	m.replyCalls = append(m.replyCalls, text)
	return m.replyErr
}

func (m *mockTextSender) NotifyStatus(_ context.Context, text string) error {
	m.statusCalls = append(m.statusCalls, text)
	return m.statusErr
}

func (m *mockTextSender) NotifyAndReturnError(_ context.Context, err error, _ *domain.Message) error {
	m.notifyErrCalls = append(m.notifyErrCalls, err)
	if m.notifyErr != nil {
		return m.notifyErr
	}
	return err
}

type MockChannels struct {
	mock.Mock
}

func (m *MockChannels) DeleteChannel(ctx context.Context, channelID string) error {
	args := m.Called(ctx, channelID)
	return args.Error(0)
}

func (m *MockChannels) CreateChannel(ctx context.Context, guildID, name string) (domain.Channel, error) {
	args := m.Called(ctx, guildID, name)
	return args.Get(0).(domain.Channel), args.Error(1)
}

type MockHistory struct {
	mock.Mock
}

func (m *MockHistory) FetchMessagesBefore(ctx context.Context, channelID, messageID string,
	limit int) ([]domain.Message, error) {
	args := m.Called(ctx, channelID, messageID, limit)
	messages, _ := args.Get(0).([]domain.Message)
	return messages, args.Error(1)
}

func invocationOf(def domain.Definition, args string) *domain.Invocation {
	return &domain.Invocation{
		Definition: def,
		Command:    def.Name(),
		Args:       args,
		Message: &domain.Message{
			ID:        "m1",
			ChannelID: "c1",
			GuildID:   "g1",
			AuthorID:  "u1",
			Username:  "alice",
		},
	}
}
