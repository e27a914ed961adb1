// Package errors provides standardized error handling for the submission pipeline.
package errors

import (
	"fmt"
	"time"
)

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	// ErrCodeValidationFailed marks a client error: required fields missing.
	ErrCodeValidationFailed ErrorCode = "VALIDATION_FAILED"

	// ErrCodeChannelSendFailed marks a downstream delivery failure.
	ErrCodeChannelSendFailed ErrorCode = "CHANNEL_SEND_FAILED"

	// ErrCodeChannelNotConfigured marks an intentionally absent integration.
	ErrCodeChannelNotConfigured ErrorCode = "CHANNEL_NOT_CONFIGURED"

	// ErrCodeInternal marks an unexpected failure during request handling.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode `json:"code"`
	Message   string    `json:"message"`
	Details   string    `json:"details,omitempty"`
	Channel   string    `json:"channel,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// NewValidationFailedError creates a client error naming the missing fields.
func NewValidationFailedError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeValidationFailed,
		Message:   "Application data validation failed",
		Details:   details,
		Timestamp: time.Now().UTC(),
	}
}

// NewChannelSendFailedError creates a delivery error scoped to one channel.
func NewChannelSendFailedError(channel string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeChannelSendFailed,
		Message:   "Channel delivery failed",
		Details:   err.Error(),
		Channel:   channel,
		Timestamp: time.Now().UTC(),
	}
}

// NewChannelNotConfiguredError marks a channel whose credentials are absent.
// This is a no-op condition, not a failure.
func NewChannelNotConfiguredError(channel string) *StandardError {
	return &StandardError{
		Code:      ErrCodeChannelNotConfigured,
		Message:   "Channel is not configured",
		Channel:   channel,
		Timestamp: time.Now().UTC(),
	}
}

// NewInternalError wraps an unexpected failure. The details never cross the
// HTTP boundary; callers surface a generic message instead.
func NewInternalError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeInternal,
		Message:   "Failed to process application",
		Details:   err.Error(),
		Timestamp: time.Now().UTC(),
	}
}

// IsClientError reports whether the code should surface as a 4xx response.
func IsClientError(code ErrorCode) bool {
	return code == ErrCodeValidationFailed
}
