package command

import (
	"errors"
	"guildbot/internal/core/domain"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOff_Respond(t *testing.T) {
	tests := []struct {
		name      string
		replyErr  error
		statusErr error
	}{
		{
			name: "replies, notifies and requests shutdown",
		},
		{
			name:     "reply failure still requests shutdown",
			replyErr: errors.New("send failed"),
		},
		{
			name:      "status failure still requests shutdown",
			statusErr: errors.New("no channel"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sender := &mockTextSender{replyErr: tt.replyErr, statusErr: tt.statusErr}
			off := NewOff(sender, []string{"Admin"})

			err := off.Respond(t.Context(), invocationOf(off.Definition(), ""))

			require.ErrorIs(t, err, domain.ErrShutdownRequested)
			assert.Equal(t, []string{"BOT OFF!"}, sender.replyCalls)
			assert.Equal(t, []string{"BOT OFF!"}, sender.statusCalls)
		})
	}
}
