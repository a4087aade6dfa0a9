package ziglet

import "github.com/Kingrashy12/ziglet/core"

// Value is the tagged union an option resolves to: exactly one of bool,
// string or number, or the distinct Undefined state.
type Value = core.Value

// Kind identifies which variant a Value holds.
type Kind = core.Kind

const (
	KindUndefined = core.KindUndefined
	KindBool      = core.KindBool
	KindString    = core.KindString
	KindNumber    = core.KindNumber
)

// Option is a single named, typed, optionally-required flag or key/value
// pair accepted by a command or globally.
type Option = core.Option

// Options is an ordered option schema.
type Options = core.Options

// OptionType is an option's declared value type.
type OptionType = core.OptionType

const (
	TypeBool   = core.TypeBool
	TypeString = core.TypeString
	TypeNumber = core.TypeNumber
)

// Command is a named, independently-schemad unit of behavior with its own
// options and handler.
type Command = core.Command

// Handler is the capability a command exposes: it accepts a Context and
// returns success or a propagated failure.
type Handler = core.Handler

// Context is what a dispatched handler receives.
type Context = core.Context

// ParseResult is the structured output of one parse pass.
type ParseResult = core.ParseResult

// Value constructors, re-exported so schema defaults can be declared
// without importing core directly.
var (
	BoolValue   = core.Bool
	StringValue = core.String
	NumberValue = core.Number
)

// UndefinedValue is the absent Value.
var UndefinedValue = core.Undefined
