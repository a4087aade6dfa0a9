package core

import (
	"io"

	"github.com/Kingrashy12/ziglet/errors"
)

// OptionType is an option's declared value type, fixed at schema
// definition time.
type OptionType string

const (
	TypeBool   OptionType = "bool"
	TypeString OptionType = "string"
	TypeNumber OptionType = "number"
)

// Option describes a single named, typed flag or key/value pair.
type Option struct {
	// Name is the canonical long-form identifier, unique within its
	// resolution schema. Resolved from tokens of the form --name.
	Name string
	// Alias is an optional short form, resolved from tokens of the form
	// -a. Resolution by Name or Alias is equivalent.
	Alias string
	// Type is one of bool, string or number.
	Type OptionType
	// Required makes absence after parsing a hard error.
	Required bool
	// Default, when not Undefined, is injected into the result before
	// scanning whenever the user supplies nothing for this option.
	Default Value
	// Choices restricts a string-typed option to an exact-match
	// allow-list. Ignored for other types.
	Choices []string
	// Desc is the help text shown for this option.
	Desc string
}

// Options is an ordered option schema. Order matters for help display and
// for which required option is reported first; it never affects
// resolution, since names and aliases are unique.
type Options []Option

// Validate enforces the schema invariant: names unique, aliases unique,
// and no alias colliding with another option's name or alias.
func (opts Options) Validate() error {
	names := make(map[string]bool, len(opts))
	aliases := make(map[string]bool, len(opts))
	for _, opt := range opts {
		if opt.Name == "" {
			return errors.NewSchema("option with empty name")
		}
		if names[opt.Name] {
			return errors.NewSchema("duplicate option name: --%s", opt.Name)
		}
		names[opt.Name] = true
		if opt.Alias == "" {
			continue
		}
		if aliases[opt.Alias] {
			return errors.NewSchema("duplicate option alias: -%s", opt.Alias)
		}
		aliases[opt.Alias] = true
	}
	for _, opt := range opts {
		if opt.Alias != "" && names[opt.Alias] {
			return errors.NewSchema("alias -%s collides with option name --%s", opt.Alias, opt.Alias)
		}
	}
	return nil
}

// Merge concatenates global options with a command's options into one
// resolution schema, globals first, relative order preserved. A name or
// alias collision across the two groups is a hard schema error rather
// than a silent overwrite.
func Merge(global, command Options) (Options, error) {
	merged := make(Options, 0, len(global)+len(command))
	merged = append(merged, global...)
	merged = append(merged, command...)
	if err := merged.Validate(); err != nil {
		return nil, err
	}
	return merged, nil
}

// Handler is the capability a command exposes: it receives a validated
// Context and returns success or a failure propagated unmodified to the
// dispatch caller.
type Handler func(ctx *Context) error

// Command is a named, independently-schemad unit of behavior. Commands
// are registered once at startup and immutable thereafter.
type Command struct {
	Name        string
	Description string
	Options     Options
	Run         Handler
}

// Context is what a matched handler receives: the application identity,
// the validated positional arguments and option values from the merged
// parse pass, and the writer the dispatcher routes output through.
type Context struct {
	Name    string
	Version string
	Args    []string
	Options map[string]Value
	Out     io.Writer
}

// Value returns the resolved value for an option name, or Undefined.
func (c *Context) Value(name string) Value { return c.Options[name] }

// Has reports whether an option resolved to any value.
func (c *Context) Has(name string) bool { return !c.Options[name].IsUndefined() }

// Bool returns the boolean payload of an option, or false.
func (c *Context) Bool(name string) bool { return c.Options[name].AsBool() }

// String returns the string payload of an option, or "".
func (c *Context) String(name string) string { return c.Options[name].AsString() }

// Number returns the numeric payload of an option, or 0.
func (c *Context) Number(name string) float64 { return c.Options[name].AsNumber() }
