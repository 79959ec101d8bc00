package fiatconnect

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrFiatAccountTypeNotFound   = errors.New("fiat account type not found in quote response")
	ErrFiatAccountSchemaNotFound = errors.New("fiat account schema not found in quote response")
	ErrKycSchemaNotFound         = errors.New("kyc schema not found in quote response")
)

// ConfigError reports a missing or invalid option at startup
type ConfigError struct {
	Option  string
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid configuration: %s: %s", e.Option, e.Message)
}

// NetworkError reports a failed quote request. StatusCode is 0 when no response was received.
type NetworkError struct {
	StatusCode int
	Body       string
	Cause      error
}

func (e *NetworkError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("quote request failed: %v", e.Cause)
	}
	msg := fmt.Sprintf("quote response error status: %d", e.StatusCode)
	if e.Body != "" {
		msg += ": " + e.Body
	}
	return msg
}

func (e *NetworkError) Unwrap() error {
	return e.Cause
}

// Issue is a single schema violation
type Issue struct {
	Path    string
	Message string
}

func (i Issue) String() string {
	return i.Path + ": " + i.Message
}

// SchemaValidationError reports a quote response that does not match the expected shape
type SchemaValidationError struct {
	Issues []Issue
	Cause  error
}

func (e *SchemaValidationError) Error() string {
	if len(e.Issues) == 0 && e.Cause != nil {
		return fmt.Sprintf("invalid quote response: %v", e.Cause)
	}
	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		parts = append(parts, issue.String())
	}
	return "invalid quote response: " + strings.Join(parts, "; ")
}

func (e *SchemaValidationError) Unwrap() error {
	return e.Cause
}

// MissingFieldError reports a required field absent from an otherwise valid quote response
type MissingFieldError struct {
	Field string
	Err   error
}

func (e *MissingFieldError) Error() string {
	return e.Err.Error()
}

func (e *MissingFieldError) Unwrap() error {
	return e.Err
}
