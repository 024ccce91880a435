package oerror

import "fmt"

// OomphError is a plain string error raised by the engine for conditions that have no richer
// classification, such as a frame being ticked while the previous one is still in flight.
type OomphError struct {
	Err string
}

// New formats a new OomphError.
func New(format string, args ...any) *OomphError {
	return &OomphError{Err: fmt.Sprintf(format, args...)}
}

func (e *OomphError) Error() string {
	return e.Err
}

// FormatError is returned when a tracking payload is malformed or incomplete. The payload that
// caused it is dropped as a whole, so the previously published state stays in place.
type FormatError struct {
	// Field is the payload field that failed validation, e.g. "controllers[1].position".
	Field  string
	Reason string
}

// NewFormatError returns a FormatError for the field passed.
func NewFormatError(field, format string, args ...any) *FormatError {
	return &FormatError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("malformed payload field %s: %s", e.Field, e.Reason)
}

// ConfigurationError is returned when a component is missing a collaborator it cannot run
// without, such as a camera for the active render mode. It is never retried.
type ConfigurationError struct {
	Component string
	Reason    string
}

// NewConfigurationError returns a ConfigurationError for the component passed.
func NewConfigurationError(component, format string, args ...any) *ConfigurationError {
	return &ConfigurationError{Component: component, Reason: fmt.Sprintf(format, args...)}
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s misconfigured: %s", e.Component, e.Reason)
}
