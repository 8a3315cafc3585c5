package domain

import "errors"

var (
	ErrNoSession         = errors.New("no active session")
	ErrSessionExpired    = errors.New("session expired")
	ErrMutationInFlight  = errors.New("moderation action already in flight")
	ErrRecordNotFound    = errors.New("record not found")
	ErrUnknownCollection = errors.New("unknown collection")
)
