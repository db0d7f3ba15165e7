// Package errors provides the error types voicemap reports. Loaders return
// ValidationError, ParseError and IOError for malformed or unreadable
// catalogs, all of which abort a run. UnresolvedTagError describes a voice
// that matched no language; a reconciliation pass records it and carries on.
package errors

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Forwarded from the standard library so callers need one import.
var (
	New  = errors.New
	Is   = errors.Is
	As   = errors.As
	Join = errors.Join
)

var (
	// ErrInvalidInput matches every malformed-input error: validation
	// failures and parse failures alike.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnresolvedTag matches voices whose language code found no language.
	ErrUnresolvedTag = errors.New("unresolved language tag")
)

// ValidationError reports a catalog, alias table or flag value that is
// well-formed but semantically invalid. Field is a path such as
// "voices[3].name".
type ValidationError struct {
	Field   string
	Value   any
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
	}
	return "invalid input: " + e.Message
}

// Is matches ErrInvalidInput.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError.
func NewValidationError(field string, value any, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}

// ConfigError reports an unusable configuration file or setting.
type ConfigError struct {
	Component string
	Message   string
	Err       error
}

func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Component != "" {
		msg += " in " + e.Component
	}
	msg += ": " + e.Message
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a new ConfigError.
func NewConfigError(component, message string, err error) *ConfigError {
	return &ConfigError{Component: component, Message: message, Err: err}
}

// UnresolvedTagError describes a voice whose primary language code matched
// no catalog language, even after alias substitution.
type UnresolvedTagError struct {
	Voice  string
	Code   string // as declared by the voice
	Subtag string // as looked up, after alias substitution
}

func (e *UnresolvedTagError) Error() string {
	if e.Subtag != "" && e.Subtag != e.Code {
		return fmt.Sprintf("no language found for voice %s (code %s, subtag %s)", e.Voice, e.Code, e.Subtag)
	}
	return fmt.Sprintf("no language found for voice %s (code %s)", e.Voice, e.Code)
}

// Is matches ErrUnresolvedTag.
func (e *UnresolvedTagError) Is(target error) bool {
	return target == ErrUnresolvedTag
}

// NewUnresolvedTagError creates a new UnresolvedTagError.
func NewUnresolvedTagError(voice, code, subtag string) *UnresolvedTagError {
	return &UnresolvedTagError{Voice: voice, Code: code, Subtag: subtag}
}

// IsValidationError reports whether err is malformed input.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsUnresolvedTag reports whether err describes an unresolved voice.
func IsUnresolvedTag(err error) bool {
	return errors.Is(err, ErrUnresolvedTag)
}

// ParseError reports a document that could not be decoded. Offset is the
// byte offset of the failure when the decoder reports one, otherwise zero.
type ParseError struct {
	Format  string // json, yaml, toml or go
	File    string
	Offset  int64
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	switch {
	case e.File != "" && e.Offset > 0:
		return fmt.Sprintf("cannot parse %s %s at byte %d: %s", e.Format, e.File, e.Offset, e.Message)
	case e.File != "":
		return fmt.Sprintf("cannot parse %s %s: %s", e.Format, e.File, e.Message)
	default:
		return fmt.Sprintf("cannot parse %s: %s", e.Format, e.Message)
	}
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is matches ErrInvalidInput. Unparseable input is invalid input.
func (e *ParseError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewParseError creates a new ParseError.
func NewParseError(format, file, message string, err error) *ParseError {
	return &ParseError{Format: format, File: file, Message: message, Err: err}
}

// IOError reports a failed read or write of a named file.
type IOError struct {
	Operation string // read, write, open, create
	Path      string
	Err       error
}

func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("cannot %s %s: %v", e.Operation, e.Path, e.Err)
	}
	return fmt.Sprintf("cannot %s: %v", e.Operation, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// NewIOError creates a new IOError.
func NewIOError(operation, path string, err error) *IOError {
	return &IOError{Operation: operation, Path: path, Err: err}
}

// WrapValidation wraps err as a ValidationError on field.
func WrapValidation(field string, err error) error {
	if err == nil {
		return nil
	}
	return &ValidationError{Field: field, Message: err.Error()}
}

// WrapIO wraps err as an IOError.
func WrapIO(operation, path string, err error) error {
	if err == nil {
		return nil
	}
	return NewIOError(operation, path, err)
}

// WrapParse wraps a decoder error as a ParseError, keeping the byte offset
// of JSON syntax and type errors.
func WrapParse(format, file string, err error) error {
	if err == nil {
		return nil
	}
	pe := NewParseError(format, file, err.Error(), err)

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.As(err, &syntaxErr):
		pe.Offset = syntaxErr.Offset
	case errors.As(err, &typeErr):
		pe.Offset = typeErr.Offset
	}
	return pe
}
