package ziglet

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/Kingrashy12/ziglet/core"
	"github.com/Kingrashy12/ziglet/display"
	"github.com/Kingrashy12/ziglet/errors"
	"github.com/Kingrashy12/ziglet/internal/common"
)

var osExit = os.Exit // Mockable for testing

// Outcome is the terminal state of a single dispatch cycle. Every
// invocation ends in exactly one of these; there is no retry loop.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeDispatched
	OutcomeHelpShown
	OutcomeVersionShown
	OutcomeNoArgsHelp
	OutcomeUnknownCommand
)

// App owns the command registry and the global option schema, and runs
// the two-pass parse-and-dispatch cycle. Commands are registered at
// startup; the App is read-only for the remainder of the process.
type App struct {
	name        string
	version     string
	description string
	globals     core.Options
	registry    *core.Registry
	out         io.Writer
	errOut      io.Writer
}

// New creates an App with the reserved global options installed:
// --help (-h) and --version (-V).
func New(name, version string) *App {
	return &App{
		name:    name,
		version: version,
		globals: core.Options{
			{Name: "help", Alias: "h", Type: core.TypeBool, Desc: "Show help message"},
			{Name: "version", Alias: "V", Type: core.TypeBool, Desc: "Show version information"},
		},
		registry: core.NewRegistry(),
		out:      os.Stdout,
		errOut:   os.Stderr,
	}
}

// Describe sets the application description shown in top-level help.
func (a *App) Describe(description string) *App {
	a.description = description
	return a
}

// SetOutput redirects both normal and error output, mainly for tests.
func (a *App) SetOutput(w io.Writer) *App {
	a.out = w
	a.errOut = w
	return a
}

// Globals appends options available to every command. Colliding with an
// existing global, including the reserved help/version pair, is a schema
// error and leaves the App unchanged.
func (a *App) Globals(opts ...core.Option) error {
	candidate := make(core.Options, 0, len(a.globals)+len(opts))
	candidate = append(candidate, a.globals...)
	candidate = append(candidate, opts...)
	if err := candidate.Validate(); err != nil {
		return err
	}
	a.globals = candidate
	return nil
}

// Register adds commands to the registry. Re-registering a name
// overwrites the previous command.
func (a *App) Register(cmds ...*core.Command) {
	for _, cmd := range cmds {
		a.registry.Put(cmd)
	}
}

// Commands returns the registered commands in registration order.
func (a *App) Commands() []*core.Command { return a.registry.Commands() }

// Run performs one parse-dispatch cycle over args (the process argument
// vector without the program name) and reports how it ended.
//
// Help, version, empty invocations and unknown commands are normal
// terminal outcomes with a nil error. Structural parse errors, coercion
// failures and missing required options come back as typed errors from
// the errors package; anything returned by a handler is propagated
// unmodified.
func (a *App) Run(args []string) (Outcome, error) {
	if err := a.globals.Validate(); err != nil {
		return OutcomeNone, err
	}

	slog.Debug("dispatch started", "app", a.name, "args", len(args))
	pass1 := core.Scan(args, a.globals)

	if pass1.Options["help"].AsBool() {
		a.showHelp(pass1.Command)
		return OutcomeHelpShown, nil
	}
	if pass1.Options["version"].AsBool() {
		fmt.Fprintln(a.out, display.BuildVersion(a.name, a.version))
		return OutcomeVersionShown, nil
	}
	if len(args) == 0 || pass1.Command == "" {
		a.showHelp("")
		return OutcomeNoArgsHelp, nil
	}

	cmd, ok := a.registry.Get(pass1.Command)
	if !ok {
		suggestion := common.ClosestMatch(pass1.Command, a.registry.Names())
		fmt.Fprintln(a.errOut, errors.NewUnknownCommand(pass1.Command, suggestion))
		if listing := display.BuildCommandList(a.registry.Commands()); listing != "" {
			fmt.Fprint(a.errOut, "\n"+listing)
		}
		return OutcomeUnknownCommand, nil
	}

	merged, err := core.Merge(a.globals, cmd.Options)
	if err != nil {
		return OutcomeNone, err
	}
	result, err := core.Parse(args, merged)
	if err != nil {
		return OutcomeNone, err
	}
	if err := core.ValidateRequired(merged, result); err != nil {
		return OutcomeNone, err
	}

	ctx := &core.Context{
		Name:    a.name,
		Version: a.version,
		Args:    result.Args,
		Options: result.Options,
		Out:     a.out,
	}
	slog.Debug("dispatching", "command", cmd.Name)
	if cmd.Run == nil {
		return OutcomeDispatched, nil
	}
	return OutcomeDispatched, cmd.Run(ctx)
}

// Main is the process boundary: it runs against os.Args, reports any
// error on stderr and exits with the status mapped by errors.ExitCode.
// Library users who want to handle errors themselves call Run instead.
func (a *App) Main() {
	if _, err := a.Run(os.Args[1:]); err != nil {
		fmt.Fprintln(a.errOut, err)
		osExit(errors.ExitCode(err))
	}
}

// showHelp renders command help when name identifies a registered
// command, top-level help otherwise.
func (a *App) showHelp(name string) {
	if name != "" {
		if cmd, ok := a.registry.Get(name); ok {
			fmt.Fprintln(a.out, display.BuildCommandHelp(a.name, cmd, a.globals))
			return
		}
	}
	fmt.Fprintln(a.out, display.BuildHelp(a.name, a.description, a.globals, a.registry.Commands()))
}
