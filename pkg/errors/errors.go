package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrContract marks calls that the renderer should never be able to make,
// such as clicking a day while a year page is displayed.
var ErrContract = stderrors.New("picker contract violation")

// ParseError represents a YAML parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures configuration validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// KeyError reports a canonical key string that does not match the expected
// format (for example "2024-13-01" where a day key was required).
type KeyError struct {
	Kind    string
	Input   string
	Message string
}

// NewKeyError constructs a KeyError for the given key kind.
func NewKeyError(kind, input, message string) error {
	return &KeyError{Kind: kind, Input: input, Message: message}
}

func (e *KeyError) Error() string {
	if e == nil {
		return ""
	}
	if e.Kind != "" {
		return fmt.Sprintf("invalid %s key %q: %s", e.Kind, e.Input, e.Message)
	}
	return fmt.Sprintf("invalid key %q: %s", e.Input, e.Message)
}

// ContractError is the panic value raised when a command is invoked from a
// scene that cannot render the cells it acts on.
type ContractError struct {
	Operation string
	Scene     string
}

// NewContractError constructs a ContractError.
func NewContractError(operation, scene string) error {
	return &ContractError{Operation: operation, Scene: scene}
}

func (e *ContractError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s: %s is not reachable from the %s scene", ErrContract.Error(), e.Operation, e.Scene)
}

// Unwrap exposes ErrContract so callers can use errors.Is.
func (e *ContractError) Unwrap() error {
	if e == nil {
		return nil
	}
	return ErrContract
}
