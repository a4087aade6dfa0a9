package display

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/mitchellh/go-wordwrap"

	"github.com/Kingrashy12/ziglet/core"
)

const descWrapWidth = 78

var (
	heading = color.New(color.Bold, color.Underline)
	emph    = color.New(color.Bold)
)

// BuildHelp renders the top-level help screen: usage line, wrapped
// application description, the command listing, and the global options.
func BuildHelp(name, description string, globals core.Options, commands []*core.Command) string {
	var b strings.Builder
	b.WriteString(heading.Sprint("Usage:") + " ")
	b.WriteString(emph.Sprint(name))
	if len(commands) > 0 {
		b.WriteString(" [COMMAND]")
	}
	if len(globals) > 0 {
		b.WriteString(" [OPTIONS]")
	}
	b.WriteString("\n")

	if description != "" {
		b.WriteString("\n" + wordwrap.WrapString(description, descWrapWidth) + "\n")
	}

	if len(commands) > 0 {
		b.WriteString("\n" + heading.Sprint("Commands:") + "\n")
		b.WriteString(commandRows(commands))
	}

	if len(globals) > 0 {
		b.WriteString("\n" + heading.Sprint("Options:") + "\n")
		b.WriteString(optionRows(globals))
	}

	return b.String()
}

// BuildCommandHelp renders help for a single command, showing the parent
// application name and the command together (e.g. "app greet [OPTIONS]").
func BuildCommandHelp(appName string, cmd *core.Command, globals core.Options) string {
	var b strings.Builder
	b.WriteString(heading.Sprint("Usage:") + " ")
	b.WriteString(emph.Sprint(appName + " " + cmd.Name))
	if len(cmd.Options)+len(globals) > 0 {
		b.WriteString(" [OPTIONS]")
	}
	b.WriteString(" [ARGS]\n")

	if cmd.Description != "" {
		b.WriteString("\n" + wordwrap.WrapString(cmd.Description, descWrapWidth) + "\n")
	}

	if len(cmd.Options) > 0 {
		b.WriteString("\n" + heading.Sprint("Options:") + "\n")
		b.WriteString(optionRows(cmd.Options))
	}
	if len(globals) > 0 {
		b.WriteString("\n" + heading.Sprint("Global options:") + "\n")
		b.WriteString(optionRows(globals))
	}

	return b.String()
}

// BuildCommandList renders the aligned command listing shown after an
// unknown-command report.
func BuildCommandList(commands []*core.Command) string {
	if len(commands) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(heading.Sprint("Available commands:") + "\n")
	b.WriteString(commandRows(commands))
	return b.String()
}

// === HELPERS ===

func commandRows(commands []*core.Command) string {
	rows := make([][2]string, 0, len(commands))
	for _, cmd := range commands {
		rows = append(rows, [2]string{"  " + cmd.Name, cmd.Description})
	}
	return alignRows(rows)
}

func optionRows(opts core.Options) string {
	rows := make([][2]string, 0, len(opts))
	for _, opt := range opts {
		var flag string
		switch {
		case opt.Alias != "":
			flag = fmt.Sprintf("  -%s, --%s", opt.Alias, opt.Name)
		default:
			flag = fmt.Sprintf("  --%s", opt.Name)
		}
		if opt.Type != core.TypeBool {
			flag += fmt.Sprintf(" <%s>", opt.Type)
		}
		rows = append(rows, [2]string{flag, optionDesc(opt)})
	}
	return alignRows(rows)
}

func optionDesc(opt core.Option) string {
	desc := opt.Desc
	if len(opt.Choices) > 0 {
		desc += fmt.Sprintf(" (one of: %s)", strings.Join(opt.Choices, ", "))
	}
	if opt.Required {
		desc += " (required)"
	} else if !opt.Default.IsUndefined() {
		desc += fmt.Sprintf(" (default: %s)", opt.Default)
	}
	return strings.TrimSpace(desc)
}

// alignRows pads the first column so descriptions line up.
func alignRows(rows [][2]string) string {
	maxLen := 0
	for _, row := range rows {
		if len(row[0]) > maxLen {
			maxLen = len(row[0])
		}
	}
	var b strings.Builder
	for _, row := range rows {
		padding := strings.Repeat(" ", maxLen-len(row[0]))
		b.WriteString(fmt.Sprintf("%s%s  %s\n", row[0], padding, row[1]))
	}
	return b.String()
}
