package caseerrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrArgument indicates an invalid or missing argument.
	ErrArgument = errors.New("argument error")

	// ErrPattern indicates a regular expression could not be compiled.
	ErrPattern = errors.New("pattern error")

	// ErrStyle indicates an unknown naming style.
	ErrStyle = errors.New("unknown style")

	// ErrCollision indicates two keys converted to the same name.
	ErrCollision = errors.New("key collision")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")
)

// ArgumentError represents an invalid argument passed to a helper.
type ArgumentError struct {
	// Name is the parameter name
	Name string
	// Message describes what is wrong with it
	Message string
}

// Error returns a human-readable error message.
func (e *ArgumentError) Error() string {
	msg := "argument error"
	if e.Name != "" {
		msg += " for " + e.Name
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *ArgumentError) Is(target error) bool {
	return target == ErrArgument
}

// PatternError represents a regular expression that failed to compile.
type PatternError struct {
	// Pattern is the source of the expression
	Pattern string
	// Cause is the compiler error
	Cause error
}

// Error returns a human-readable error message.
func (e *PatternError) Error() string {
	msg := "pattern error"
	if e.Pattern != "" {
		msg += fmt.Sprintf(" in %q", e.Pattern)
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *PatternError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *PatternError) Is(target error) bool {
	return target == ErrPattern
}

// StyleError represents a style name that does not match any known style.
type StyleError struct {
	// Value is the name that was provided
	Value string
	// Valid lists the accepted canonical names, if known
	Valid []string
}

// Error returns a human-readable error message.
func (e *StyleError) Error() string {
	msg := fmt.Sprintf("unknown style %q", e.Value)
	if len(e.Valid) > 0 {
		msg += fmt.Sprintf(" (valid: %v)", e.Valid)
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *StyleError) Is(target error) bool {
	return target == ErrStyle
}

// CollisionError represents two keys within the same mapping that convert
// to the same name.
type CollisionError struct {
	// Path is the location of the mapping (e.g., "$.spec.containers[0]")
	Path string
	// Key is the original key that lost
	Key string
	// Existing is the original key that already claimed the converted name
	Existing string
	// Converted is the name both keys convert to
	Converted string
}

// Error returns a human-readable error message.
func (e *CollisionError) Error() string {
	msg := "key collision"
	if e.Path != "" {
		msg += " at " + e.Path
	}
	return msg + fmt.Sprintf(": %q and %q both convert to %q", e.Existing, e.Key, e.Converted)
}

// Is reports whether target matches this error type.
func (e *CollisionError) Is(target error) bool {
	return target == ErrCollision
}

// ConfigError represents an invalid configuration or input.
// This includes invalid options, missing required inputs, and conflicting settings.
type ConfigError struct {
	// Option is the name of the problematic configuration option
	Option string
	// Value is the invalid value that was provided (may be nil)
	Value any
	// Message describes the configuration error
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}
