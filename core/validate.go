package core

import (
	"slices"
	"strconv"

	"github.com/Kingrashy12/ziglet/errors"
	"github.com/Kingrashy12/ziglet/internal/common"
)

// Coerce converts a resolved raw value to the option's declared type.
//
// bool accepts a boolean or the exact strings "true"/"false". number
// rejects booleans and float-parses strings. string rejects booleans and
// any value that parses as a number, then checks the choices allow-list.
func Coerce(opt *Option, v Value) (Value, error) {
	switch opt.Type {
	case TypeBool:
		switch v.Kind() {
		case KindBool:
			return v, nil
		case KindString:
			switch v.AsString() {
			case "true":
				return Bool(true), nil
			case "false":
				return Bool(false), nil
			}
		}
		return Undefined, errors.NewCoercion(opt.Name, string(TypeBool), v.String())

	case TypeNumber:
		switch v.Kind() {
		case KindNumber:
			return v, nil
		case KindString:
			if n, err := strconv.ParseFloat(v.AsString(), 64); err == nil {
				return Number(n), nil
			}
		}
		return Undefined, errors.NewCoercion(opt.Name, string(TypeNumber), v.String())

	case TypeString:
		if v.Kind() != KindString {
			return Undefined, errors.NewCoercion(opt.Name, string(TypeString), v.String())
		}
		s := v.AsString()
		// A value that parses as a number was almost certainly not meant
		// for a string option.
		if common.LooksNumeric(s) {
			return Undefined, errors.NewCoercion(opt.Name, string(TypeString), s)
		}
		if len(opt.Choices) > 0 && !slices.Contains(opt.Choices, s) {
			return Undefined, errors.NewChoice(opt.Name, s, opt.Choices)
		}
		return v, nil
	}
	return Undefined, errors.NewSchema("option --%s has unknown type %q", opt.Name, opt.Type)
}

// ValidateRequired checks the parsed result against every option marked
// required in the active schema. It fails fast on the first missing
// option in schema order, reporting its name and alias.
func ValidateRequired(schema Options, res *ParseResult) error {
	for _, opt := range schema {
		if opt.Required && res.Options[opt.Name].IsUndefined() {
			return errors.NewMissingOption(opt.Name, opt.Alias)
		}
	}
	return nil
}
