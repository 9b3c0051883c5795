package common

import "fmt"

// LookupError indicates a requested email template is not registered.
type LookupError struct {
	Template string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("template %q is not registered", e.Template)
}

// NewLookupError creates a new LookupError.
func NewLookupError(template string) *LookupError {
	return &LookupError{Template: template}
}

// ValidationError indicates invalid input data.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError creates a new ValidationError.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

// UnauthorizedError indicates missing or invalid authentication.
type UnauthorizedError struct {
	Message string
}

func (e *UnauthorizedError) Error() string {
	if e.Message == "" {
		return "unauthorized"
	}
	return e.Message
}

// NewUnauthorizedError creates a new UnauthorizedError.
func NewUnauthorizedError(message string) *UnauthorizedError {
	return &UnauthorizedError{Message: message}
}

// TransportError indicates a failure to connect to, authenticate with,
// or send via the outbound mail provider.
type TransportError struct {
	Provider string
	Message  string
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s transport error: %s", e.Provider, e.Message)
}

// NewTransportError creates a new TransportError.
func NewTransportError(provider, message string) *TransportError {
	return &TransportError{Provider: provider, Message: message}
}
