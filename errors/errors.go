package errors

import (
	"fmt"
	"strings"
)

// SchemaError indicates an invalid option schema: duplicate names or
// aliases, an alias colliding with another option's name, or a collision
// introduced when global and command options are merged.
type SchemaError struct{ Msg string }

func (e SchemaError) Error() string { return e.Msg }

// MissingValueError indicates a non-boolean option token was the last
// token, or was immediately followed by another option-shaped token.
type MissingValueError struct{ Option string }

func (e MissingValueError) Error() string {
	return fmt.Sprintf("option --%s requires a value", e.Option)
}

// CoercionError indicates a raw value could not be converted to the
// option's declared type.
type CoercionError struct{ Option, Type, Value string }

func (e CoercionError) Error() string {
	return fmt.Sprintf("invalid value %q for option --%s: expected %s", e.Value, e.Option, e.Type)
}

// ChoiceError indicates a string option's value is not in its allow-list.
type ChoiceError struct {
	Option, Value string
	Choices       []string
}

func (e ChoiceError) Error() string {
	return fmt.Sprintf("invalid value %q for option --%s: must be one of %s",
		e.Value, e.Option, strings.Join(e.Choices, ", "))
}

// MissingOptionError indicates a required option was absent after parsing.
type MissingOptionError struct{ Name, Alias string }

func (e MissingOptionError) Error() string {
	if e.Alias != "" {
		return fmt.Sprintf("missing required option: --%s (-%s)", e.Name, e.Alias)
	}
	return fmt.Sprintf("missing required option: --%s", e.Name)
}

// UnknownCommandError indicates the invoked command is not registered.
// Suggestion, if present, is a close match the user may have intended.
type UnknownCommandError struct{ Name, Suggestion string }

func (e UnknownCommandError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("unknown command: %s (did you mean %q?)", e.Name, e.Suggestion)
	}
	return fmt.Sprintf("unknown command: %s", e.Name)
}

// Helper constructors
func NewSchema(format string, args ...any) error {
	return SchemaError{Msg: fmt.Sprintf(format, args...)}
}
func NewMissingValue(option string) error { return MissingValueError{Option: option} }
func NewCoercion(option, typ, value string) error {
	return CoercionError{Option: option, Type: typ, Value: value}
}
func NewChoice(option, value string, choices []string) error {
	return ChoiceError{Option: option, Value: value, Choices: choices}
}
func NewMissingOption(name, alias string) error {
	return MissingOptionError{Name: name, Alias: alias}
}
func NewUnknownCommand(name, suggestion string) error {
	return UnknownCommandError{Name: name, Suggestion: suggestion}
}

// ExitCode maps an error to the process exit status used by the top-level
// boundary: malformed invocations (schema, parse, coercion, validation)
// exit 2, anything surfaced by a handler exits 1.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	switch err.(type) {
	case SchemaError, MissingValueError, CoercionError, ChoiceError, MissingOptionError:
		return 2
	}
	return 1
}
