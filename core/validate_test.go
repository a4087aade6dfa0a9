package core

import (
	stderrs "errors"
	"testing"

	"github.com/chriso345/gore/assert"

	clierr "github.com/Kingrashy12/ziglet/errors"
)

func TestCoerce_Bool(t *testing.T) {
	opt := &Option{Name: "dev", Type: TypeBool}

	v, err := Coerce(opt, Bool(true))
	assert.Nil(t, err)
	assert.True(t, v.Equal(Bool(true)))

	v, err = Coerce(opt, String("true"))
	assert.Nil(t, err)
	assert.True(t, v.Equal(Bool(true)))

	v, err = Coerce(opt, String("false"))
	assert.Nil(t, err)
	assert.True(t, v.Equal(Bool(false)))

	// Case-sensitive: "True" is not a boolean literal.
	_, err = Coerce(opt, String("True"))
	assert.NotNil(t, err)
	var ce clierr.CoercionError
	assert.True(t, stderrs.As(err, &ce))
	assert.Equal(t, "dev", ce.Option)
}

func TestCoerce_Number(t *testing.T) {
	opt := &Option{Name: "port", Type: TypeNumber}

	v, err := Coerce(opt, String("3.5"))
	assert.Nil(t, err)
	assert.True(t, v.Equal(Number(3.5)))

	v, err = Coerce(opt, Number(42))
	assert.Nil(t, err)
	assert.True(t, v.Equal(Number(42)))

	// A bare flag (implicit boolean) can never satisfy a number option.
	_, err = Coerce(opt, Bool(true))
	assert.NotNil(t, err)

	_, err = Coerce(opt, String("eleven"))
	assert.NotNil(t, err)
	var ce clierr.CoercionError
	assert.True(t, stderrs.As(err, &ce))
	assert.StringContains(t, err.Error(), "number")
}

func TestCoerce_String(t *testing.T) {
	opt := &Option{Name: "name", Type: TypeString}

	v, err := Coerce(opt, String("Alice"))
	assert.Nil(t, err)
	assert.Equal(t, "Alice", v.AsString())

	// Numeric-looking values are rejected for string options.
	_, err = Coerce(opt, String("123"))
	assert.NotNil(t, err)

	// So is a bare flag.
	_, err = Coerce(opt, Bool(true))
	assert.NotNil(t, err)
}

func TestCoerce_Choices(t *testing.T) {
	opt := &Option{Name: "target", Type: TypeString, Choices: []string{"main", "app"}}

	v, err := Coerce(opt, String("app"))
	assert.Nil(t, err)
	assert.Equal(t, "app", v.AsString())

	_, err = Coerce(opt, String("lib"))
	assert.NotNil(t, err)
	var che clierr.ChoiceError
	assert.True(t, stderrs.As(err, &che))
	assert.Equal(t, "target", che.Option)
	assert.StringContains(t, err.Error(), "main, app")
}

func TestValidateRequired_Missing(t *testing.T) {
	schema := Options{{Name: "name", Alias: "n", Type: TypeString, Required: true}}
	res, err := Parse([]string{"greet"}, schema)
	assert.Nil(t, err)

	err = ValidateRequired(schema, res)
	assert.NotNil(t, err)
	var mo clierr.MissingOptionError
	assert.True(t, stderrs.As(err, &mo))
	assert.Equal(t, "name", mo.Name)
	assert.Equal(t, "n", mo.Alias)
}

func TestValidateRequired_FirstInSchemaOrder(t *testing.T) {
	schema := Options{
		{Name: "first", Type: TypeString, Required: true},
		{Name: "second", Type: TypeString, Required: true},
	}
	res, err := Parse([]string{"cmd"}, schema)
	assert.Nil(t, err)

	err = ValidateRequired(schema, res)
	var mo clierr.MissingOptionError
	assert.True(t, stderrs.As(err, &mo))
	assert.Equal(t, "first", mo.Name)
}

func TestValidateRequired_SatisfiedByDefault(t *testing.T) {
	schema := Options{
		{Name: "target", Type: TypeString, Required: true, Default: String("main")},
	}
	res, err := Parse([]string{"install"}, schema)
	assert.Nil(t, err)
	assert.Nil(t, ValidateRequired(schema, res))
}
