package errors

import (
	stderrors "errors"
	"fmt"
)

// Kind classifies a failure so callers can react without parsing messages.
type Kind string

const (
	KindInvalidInput    Kind = "invalid_input"
	KindConfiguration   Kind = "configuration"
	KindUpstreamRequest Kind = "upstream_request"
	KindProviderFailure Kind = "provider_failure"
	KindTimeout         Kind = "timeout"
	KindNotFound        Kind = "not_found"
	KindInternal        Kind = "internal"
)

// Common errors
var (
	ErrEmptyBatch         = InvalidInput("no files uploaded")
	ErrInvalidYouTubeURL  = InvalidInput("invalid YouTube URL")
	ErrCaptionsNotFound   = NotFound("captions not available for this video/language")
	ErrUnexpectedResponse = Upstream("unexpected provider response")
)

// Error represents a classified error
type Error struct {
	kind    Kind
	message string
	cause   error
}

// New creates a new error of the given kind
func New(kind Kind, message string) *Error {
	return &Error{kind: kind, message: message}
}

// Newf creates a new formatted error of the given kind
func Newf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{kind: kind, message: fmt.Sprintf(format, args...)}
}

// Wrap wraps an error with a kind and additional context
func Wrap(err error, kind Kind, message string) error {
	if err == nil {
		return nil
	}
	return &Error{
		kind:    kind,
		message: message,
		cause:   err,
	}
}

// Wrapf wraps an error with a kind and formatted context
func Wrapf(err error, kind Kind, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &Error{
		kind:    kind,
		message: fmt.Sprintf(format, args...),
		cause:   err,
	}
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.cause
}

// Kind returns the classification of the error
func (e *Error) Kind() Kind {
	return e.kind
}

// Message returns the message without the wrapped cause
func (e *Error) Message() string {
	return e.message
}

// Is checks if the error matches target by kind and message
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.kind == t.kind && e.message == t.message
}

// Constructors per kind

func InvalidInput(message string) *Error { return New(KindInvalidInput, message) }

func Configuration(message string) *Error { return New(KindConfiguration, message) }

func Upstream(message string) *Error { return New(KindUpstreamRequest, message) }

func ProviderFailure(message string) *Error { return New(KindProviderFailure, message) }

func Timeout(message string) *Error { return New(KindTimeout, message) }

func NotFound(message string) *Error { return New(KindNotFound, message) }

func Internal(message string) *Error { return New(KindInternal, message) }

// MissingCredential returns the configuration error for an unset API key
func MissingCredential(envVar string) *Error {
	return Newf(KindConfiguration, "%s not set", envVar)
}

// UpstreamStatus returns the error for a non-success HTTP status from a provider
func UpstreamStatus(provider string, status int, body string) *Error {
	return Newf(KindUpstreamRequest, "%s API error (status %d): %s", provider, status, body)
}

// KindOf returns the kind of the outermost classified error in the chain,
// or KindInternal when the chain carries none.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var e *Error
	if stderrors.As(err, &e) {
		return e.kind
	}
	return KindInternal
}

// IsKind reports whether err is classified as kind
func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
