package ziglet

import "github.com/Kingrashy12/ziglet/core"

// OptionBuilder constructs a single Option fluently. Builders are cheap,
// single-use values; call Option to finish.
type OptionBuilder struct{ opt core.Option }

// Bool starts a boolean option.
func Bool(name string) *OptionBuilder {
	return &OptionBuilder{opt: core.Option{Name: name, Type: core.TypeBool}}
}

// String starts a string option.
func String(name string) *OptionBuilder {
	return &OptionBuilder{opt: core.Option{Name: name, Type: core.TypeString}}
}

// Number starts a numeric option.
func Number(name string) *OptionBuilder {
	return &OptionBuilder{opt: core.Option{Name: name, Type: core.TypeNumber}}
}

// Alias sets the short form, resolved equivalently to the name.
func (b *OptionBuilder) Alias(alias string) *OptionBuilder {
	b.opt.Alias = alias
	return b
}

// Required makes absence after parsing a hard error.
func (b *OptionBuilder) Required() *OptionBuilder {
	b.opt.Required = true
	return b
}

// Default sets the value injected when the user supplies nothing.
func (b *OptionBuilder) Default(v core.Value) *OptionBuilder {
	b.opt.Default = v
	return b
}

// Choices restricts a string option to an exact-match allow-list.
func (b *OptionBuilder) Choices(choices ...string) *OptionBuilder {
	b.opt.Choices = choices
	return b
}

// Describe sets the help text.
func (b *OptionBuilder) Describe(desc string) *OptionBuilder {
	b.opt.Desc = desc
	return b
}

// Option returns the built option.
func (b *OptionBuilder) Option() core.Option { return b.opt }

// CommandBuilder constructs a Command fluently; call Command to finish.
type CommandBuilder struct{ cmd core.Command }

// NewCommand starts a command with its registry name and description.
func NewCommand(name, description string) *CommandBuilder {
	return &CommandBuilder{cmd: core.Command{Name: name, Description: description}}
}

// Option appends options to the command's schema, preserving order.
func (c *CommandBuilder) Option(opts ...core.Option) *CommandBuilder {
	c.cmd.Options = append(c.cmd.Options, opts...)
	return c
}

// Run sets the handler invoked on dispatch.
func (c *CommandBuilder) Run(h core.Handler) *CommandBuilder {
	c.cmd.Run = h
	return c
}

// Command returns the built command.
func (c *CommandBuilder) Command() *core.Command {
	cmd := c.cmd
	return &cmd
}
