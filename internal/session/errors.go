package session

import "errors"

var (
	ErrEmptySessionID = errors.New("session id is required")
	ErrUnknownRole    = errors.New("unknown message role")
)
