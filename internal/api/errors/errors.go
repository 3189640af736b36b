package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"

	apperrors "autoscribe/internal/app/errors"
)

// ErrorKind represents different types of API errors
type ErrorKind string

const (
	KindValidation      ErrorKind = "validation"
	KindBadRequest      ErrorKind = "bad_request"
	KindNotFound        ErrorKind = "not_found"
	KindPayloadTooLarge ErrorKind = "payload_too_large"
	KindConfiguration   ErrorKind = "configuration"
	KindUpstream        ErrorKind = "upstream_request"
	KindProviderFailure ErrorKind = "provider_failure"
	KindTimeout         ErrorKind = "timeout"
	KindInternal        ErrorKind = "internal"
)

// APIError represents a structured API error response
type APIError struct {
	Kind      ErrorKind         `json:"kind"`
	Message   string            `json:"error"`
	Details   map[string]string `json:"details,omitempty"`
	RequestID string            `json:"request_id,omitempty"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	return e.Message
}

// HTTPStatus returns the appropriate HTTP status code for the error kind
func (e *APIError) HTTPStatus() int {
	switch e.Kind {
	case KindValidation, KindBadRequest:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindPayloadTooLarge:
		return http.StatusRequestEntityTooLarge
	case KindUpstream, KindProviderFailure:
		return http.StatusBadGateway
	case KindTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// NewValidationError creates a validation error with field details
func NewValidationError(message string, fields map[string]string) *APIError {
	return &APIError{
		Kind:    KindValidation,
		Message: message,
		Details: fields,
	}
}

// NewNotFoundError creates a not found error
func NewNotFoundError(resource string) *APIError {
	return &APIError{
		Kind:    KindNotFound,
		Message: fmt.Sprintf("%s not found", resource),
	}
}

// NewBadRequestError creates a bad request error
func NewBadRequestError(message string) *APIError {
	return &APIError{
		Kind:    KindBadRequest,
		Message: message,
	}
}

// NewPayloadTooLargeError creates an upload size error
func NewPayloadTooLargeError(limitBytes int64) *APIError {
	return &APIError{
		Kind:    KindPayloadTooLarge,
		Message: fmt.Sprintf("upload exceeds the %d MB limit", limitBytes/(1024*1024)),
	}
}

// NewInternalError creates an internal server error
func NewInternalError(message string) *APIError {
	return &APIError{
		Kind:    KindInternal,
		Message: message,
	}
}

var kindsByApp = map[apperrors.Kind]ErrorKind{
	apperrors.KindInvalidInput:    KindBadRequest,
	apperrors.KindConfiguration:   KindConfiguration,
	apperrors.KindUpstreamRequest: KindUpstream,
	apperrors.KindProviderFailure: KindProviderFailure,
	apperrors.KindTimeout:         KindTimeout,
	apperrors.KindNotFound:        KindNotFound,
	apperrors.KindInternal:        KindInternal,
}

// FromError converts any error into an APIError. Classified errors keep
// their message; unclassified ones are reported as internal.
func FromError(err error) *APIError {
	if err == nil {
		return nil
	}

	var apiErr *APIError
	if stderrors.As(err, &apiErr) {
		return apiErr
	}

	var appErr *apperrors.Error
	if stderrors.As(err, &appErr) {
		return &APIError{Kind: kindsByApp[appErr.Kind()], Message: err.Error()}
	}

	return &APIError{Kind: KindInternal, Message: "Internal server error"}
}
