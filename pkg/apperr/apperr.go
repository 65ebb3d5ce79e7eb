// Package apperr defines the error taxonomy surfaced at the API
// boundary. Every handler maps one of these onto the response status;
// nothing escapes to crash the process.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// ValidationError reports unusable caller input, caught before any
// upstream call is made.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// ConfigurationError reports a missing credential or endpoint.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string { return e.Reason }

// UpstreamError reports a failed call to the generative-language
// service or a response with no usable text.
type UpstreamError struct {
	Reason string
	Err    error
}

func (e *UpstreamError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Reason, e.Err)
	}
	return e.Reason
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// Validationf builds a ValidationError.
func Validationf(format string, args ...interface{}) error {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// Configurationf builds a ConfigurationError.
func Configurationf(format string, args ...interface{}) error {
	return &ConfigurationError{Reason: fmt.Sprintf(format, args...)}
}

// Upstream wraps err as an UpstreamError.
func Upstream(reason string, err error) error {
	return &UpstreamError{Reason: reason, Err: err}
}

// HTTPStatus maps an error onto the response status convention:
// validation and configuration problems are 400, everything else 500.
func HTTPStatus(err error) int {
	var ve *ValidationError
	var ce *ConfigurationError
	if errors.As(err, &ve) || errors.As(err, &ce) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
