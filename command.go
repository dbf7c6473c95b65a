package cliargs

import "fmt"

// Command is a named node of a CLI definition: its own arguments, an ordered
// list of subcommands, and the metadata used for help rendering. Commands
// and their arguments are built up front and are read-only during parsing.
//
// Every new Command starts with two implicit arguments: a help flag
// ("-h"/"--help") and a version flag ("-V"/"--version").
type Command struct {
	name        string
	binName     string
	displayName string
	version     string
	author      string
	about       string

	// the space-joined chain of ancestor subcommand names, stamped once
	// when the command is attached to a parent
	subPath string

	args        []Arg
	subcommands []*Command

	helpTemplate    string
	versionTemplate string
}

// NewCommand creates a new command with the given name. The name doubles as
// the default binary name and display name until overridden.
func NewCommand(name string) *Command {
	return &Command{
		name:            name,
		binName:         name,
		displayName:     name,
		helpTemplate:    defaultHelpTemplate,
		versionTemplate: defaultVersionTemplate,
		args: []Arg{
			NewArg("help").Short('h').Long("help").Action(ActionHelp).Help("Print help information"),
			NewArg("version").Short('V').Long("version").Action(ActionVersion).Help("Print version information"),
		},
	}
}

// Name returns the command name.
func (c *Command) Name() string { return c.name }

// Version sets the version string shown in help and version output.
func (c *Command) Version(v string) *Command { c.version = v; return c }

// Author sets the author line shown in help output.
func (c *Command) Author(a string) *Command { c.author = a; return c }

// About sets the one-line description shown in help output.
func (c *Command) About(a string) *Command { c.about = a; return c }

// BinName overrides the binary name used in the usage line (callers usually
// set it from the invocation path).
func (c *Command) BinName(n string) *Command { c.binName = n; return c }

// DisplayName overrides the name shown in the help and version headers.
func (c *Command) DisplayName(n string) *Command { c.displayName = n; return c }

// HelpTemplate overrides the help template (see the package documentation
// for the recognized placeholders).
func (c *Command) HelpTemplate(t string) *Command { c.helpTemplate = t; return c }

// VersionTemplate overrides the version template.
func (c *Command) VersionTemplate(t string) *Command { c.versionTemplate = t; return c }

// Arg registers an argument definition. Registration order is significant:
// it decides which positional receives a token first and the display order
// in help text.
//
// Arg panics when the id, short form, or long form collides with an already
// registered argument (including the implicit help and version flags), like
// the standard flag package does on duplicate registration.
func (c *Command) Arg(a Arg) *Command {
	for _, known := range c.args {
		switch {
		case known.id == a.id:
			panic(fmt.Sprintf("cliargs: duplicate argument id %q in command %q", a.id, c.name))
		case a.short != 0 && known.short == a.short:
			panic(fmt.Sprintf("cliargs: duplicate short form -%c in command %q", a.short, c.name))
		case a.long != "" && known.long == a.long:
			panic(fmt.Sprintf("cliargs: duplicate long form --%s in command %q", a.long, c.name))
		}
	}

	c.args = append(c.args, a)

	return c
}

// Subcommand attaches a child command. The child's binary name and
// subcommand path are stamped here, exactly once - the path becomes
// "<parent path> <child name>" and is used only for usage-line rendering.
//
// Subcommand panics when a child with the same name is already attached.
func (c *Command) Subcommand(sub *Command) *Command {
	for _, known := range c.subcommands {
		if known.name == sub.name {
			panic(fmt.Sprintf("cliargs: duplicate subcommand %q in command %q", sub.name, c.name))
		}
	}

	sub.stamp(c.binName, c.subPath)

	c.subcommands = append(c.subcommands, sub)

	return c
}

// stamp records the binary name and the subcommand path on the attached
// command and on its already attached descendants, so that subtrees may be
// assembled in any order. Rendering never recomputes these.
func (c *Command) stamp(parentBin, parentPath string) {
	c.binName = parentBin
	c.subPath = parentPath + " " + c.name

	for _, sub := range c.subcommands {
		sub.stamp(c.binName, c.subPath)
	}
}

// hasOptions reports whether any non-positional arguments are registered
// (always true in practice thanks to the implicit help and version flags).
func (c *Command) hasOptions() bool {
	for _, a := range c.args {
		if !a.IsPositional() {
			return true
		}
	}

	return false
}

// positionals returns the positional arguments in registration order.
func (c *Command) positionals() []Arg {
	var out []Arg

	for _, a := range c.args {
		if a.IsPositional() {
			out = append(out, a)
		}
	}

	return out
}
