package goAuthClient

import "errors"

var (
	// ErrClientNotReady is returned when a zero-value Client is used instead
	// of one wired by Build.
	ErrClientNotReady = errors.New("client not initialized")
	// ErrBuilderReused is returned when Build is called twice on one Builder.
	ErrBuilderReused = errors.New("builder already used")
	// ErrBaseURLMissing is returned by config validation when no backend base
	// URL is configured.
	ErrBaseURLMissing = errors.New("base url missing")
	// ErrRedisNotConfigured is returned by Build when WithRedis was called
	// with a nil client.
	ErrRedisNotConfigured = errors.New("redis client not configured")
)

// ValidationError is a local, pre-network form failure. It never reaches a
// gateway: callers stop at the first failing rule and show Message inline.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalid(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}
