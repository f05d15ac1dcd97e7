package domain

import "errors"

var (
	ErrSendingReplyFailed = errors.New("failed to send reply")
	ErrCommandNotFound    = errors.New("command not found")
	ErrInvalidDefinition  = errors.New("invalid command definition")
	ErrNotInGuild         = errors.New("message was not sent in a guild")
	ErrShutdownRequested  = errors.New("shutdown requested")
)
