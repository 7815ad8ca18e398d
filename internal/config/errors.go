package config

import (
	"errors"
	"fmt"
)

// Errors returned by configuration operations.
var (
	// ErrMissingRequiredOption indicates no target identifier was supplied.
	ErrMissingRequiredOption = errors.New("required option is missing")

	// ErrUnresolvableTarget indicates the target does not resolve to a surface.
	ErrUnresolvableTarget = errors.New("target cannot be resolved")

	// ErrUnsupportedArgumentType indicates the input is neither a target
	// identifier nor an options mapping.
	ErrUnsupportedArgumentType = errors.New("unsupported argument type")

	// ErrInvalidIndentWidth indicates the indent width is not an integer in
	// [1, MaxIndentWidth].
	ErrInvalidIndentWidth = fmt.Errorf("indent width must be an integer from 1 to %d", MaxIndentWidth)

	// ErrDuplicateOption indicates one option was given under two spellings.
	ErrDuplicateOption = errors.New("option given more than once")

	// ErrDuplicatePair indicates two pairs share the same open character.
	ErrDuplicatePair = errors.New("duplicate pair open character")

	// ErrInvalidPair indicates a malformed pair definition.
	ErrInvalidPair = errors.New("invalid pair")
)

// OptionError describes a problem with a single option.
type OptionError struct {
	// Option is the option name.
	Option string
	// Value is the offending value, if any.
	Value any
	// Err is the underlying sentinel error.
	Err error
}

// Error implements the error interface.
func (e *OptionError) Error() string {
	if e.Value == nil {
		return fmt.Sprintf("option %q: %v", e.Option, e.Err)
	}
	return fmt.Sprintf("option %q: %v (value: %v)", e.Option, e.Err, e.Value)
}

// Unwrap returns the underlying error.
func (e *OptionError) Unwrap() error {
	return e.Err
}

func optionError(option string, value any, err error) error {
	return &OptionError{Option: option, Value: value, Err: err}
}
