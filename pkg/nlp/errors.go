package nlp

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// Common LLM client errors
var (
	// ErrEmptyResponse indicates the LLM returned no choices.
	ErrEmptyResponse = errors.New("the LLM returned an empty response")
)

// FailureClass buckets a generation failure for the retry policy.
type FailureClass int

const (
	// FailureBadRequest is a permanent, validation-class failure. Never
	// retried.
	FailureBadRequest FailureClass = iota
	// FailureRateLimit is a rate-limiting response. Retried with the long
	// backoff.
	FailureRateLimit
	// FailureConnection is a network-class failure, including a timed-out
	// attempt. Retried with the long backoff.
	FailureConnection
	// FailureUnknown is any other transient failure. Retried with the short
	// backoff.
	FailureUnknown
)

// RateLimitError represents a rate limit error with optional custom message.
type RateLimitError struct {
	Message string
}

func (e *RateLimitError) Error() string {
	if e.Message == "" {
		return "rate limit exceeded. Please try again later"
	}
	return e.Message
}

// Is implements errors.Is support for RateLimitError.
func (e *RateLimitError) Is(target error) bool {
	_, ok := target.(*RateLimitError)
	return ok
}

// BadRequestError represents a permanent validation failure from the model
// provider. Never retried.
type BadRequestError struct {
	Message string
}

func (e *BadRequestError) Error() string {
	return e.Message
}

// Is implements errors.Is support for BadRequestError.
func (e *BadRequestError) Is(target error) bool {
	_, ok := target.(*BadRequestError)
	return ok
}

// ConnectionError represents a network-class failure reaching the provider.
type ConnectionError struct {
	Message string
}

func (e *ConnectionError) Error() string {
	return e.Message
}

// Is implements errors.Is support for ConnectionError.
func (e *ConnectionError) Is(target error) bool {
	_, ok := target.(*ConnectionError)
	return ok
}

// Classify buckets an error into a failure class for the retry policy.
func Classify(err error) FailureClass {
	if err == nil {
		return FailureUnknown
	}

	var rateLimitErr *RateLimitError
	if errors.As(err, &rateLimitErr) {
		return FailureRateLimit
	}
	var badRequestErr *BadRequestError
	if errors.As(err, &badRequestErr) {
		return FailureBadRequest
	}
	var connectionErr *ConnectionError
	if errors.As(err, &connectionErr) {
		return FailureConnection
	}

	// Inspect provider error shapes.
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.HTTPStatusCode == http.StatusTooManyRequests:
			return FailureRateLimit
		case apiErr.HTTPStatusCode == http.StatusBadRequest,
			apiErr.HTTPStatusCode == http.StatusUnauthorized,
			apiErr.HTTPStatusCode == http.StatusNotFound:
			return FailureBadRequest
		case apiErr.HTTPStatusCode >= 500:
			return FailureConnection
		}
	}

	// A timed-out or severed attempt is a connection-class failure; the
	// outer loop decides whether to keep going.
	if errors.Is(err, context.DeadlineExceeded) {
		return FailureConnection
	}

	errMsg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(errMsg, "rate limit"),
		strings.Contains(errMsg, "too many requests"),
		strings.Contains(errMsg, "429"):
		return FailureRateLimit
	case strings.Contains(errMsg, "connection refused"),
		strings.Contains(errMsg, "connection reset"),
		strings.Contains(errMsg, "timeout"),
		strings.Contains(errMsg, "bad gateway"),
		strings.Contains(errMsg, "service unavailable"):
		return FailureConnection
	case strings.Contains(errMsg, "invalid request"),
		strings.Contains(errMsg, "400"):
		return FailureBadRequest
	}

	return FailureUnknown
}
