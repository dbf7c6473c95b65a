package cliargs

import "strings"

// Default templates. The recognized placeholders are {name-version},
// {author-with-newline}, {about-with-newline}, {usage} and {all-args};
// every placeholder renders to the empty string when the corresponding
// metadata is absent.
const (
	defaultHelpTemplate = "{name-version}\n" +
		"{author-with-newline}" +
		"{about-with-newline}" +
		"\n" +
		"USAGE:\n" +
		"    {usage}\n" +
		"\n" +
		"{all-args}"

	defaultVersionTemplate = "{name-version}"
)

// minNameColumn is the minimum width of the name column in the help
// sections, before the two spaces separating names from descriptions.
const minNameColumn = 8

// renderHelp renders the command's help template.
func renderHelp(c *Command) string { return renderTemplate(c, c.helpTemplate) }

// renderVersion renders the command's version template.
func renderVersion(c *Command) string { return renderTemplate(c, c.versionTemplate) }

// renderTemplate substitutes every recognized placeholder in the given
// template.
func renderTemplate(c *Command, tpl string) string {
	var nameVersion = c.displayName

	if c.version != "" {
		nameVersion += " " + c.version
	}

	var author, about string

	if c.author != "" {
		author = c.author + "\n"
	}

	if c.about != "" {
		about = c.about + "\n"
	}

	return strings.NewReplacer(
		"{name-version}", nameVersion,
		"{author-with-newline}", author,
		"{about-with-newline}", about,
		"{usage}", usageLine(c),
		"{all-args}", allArgs(c),
	).Replace(tpl)
}

// usageLine builds the one-line usage synopsis: the program path with the
// subcommand chain, "[OPTIONS]" when any options exist, the positional
// forms in registration order, and "[SUBCOMMAND]" when children exist.
func usageLine(c *Command) string {
	var b strings.Builder

	b.Grow(len(c.binName) + len(c.subPath) + 32)

	b.WriteString(c.binName)
	b.WriteString(c.subPath)

	if c.hasOptions() {
		b.WriteString(" [OPTIONS]")
	}

	for _, a := range c.positionals() {
		b.WriteByte(' ')
		b.WriteString(a.positionalForm())
	}

	if len(c.subcommands) > 0 {
		b.WriteString(" [SUBCOMMAND]")
	}

	return b.String()
}

// helpEntry is one name/description line of a help section.
type helpEntry struct{ name, descr string }

// allArgs builds the ARGS, OPTIONS and SUBCOMMANDS sections; empty sections
// are omitted entirely, the remaining ones are separated by a blank line.
func allArgs(c *Command) string {
	var sections []string

	var positionals []helpEntry

	for _, a := range c.positionals() {
		positionals = append(positionals, helpEntry{name: a.positionalForm(), descr: a.help})
	}

	if len(positionals) > 0 {
		sections = append(sections, renderSection("ARGS:", positionals))
	}

	var options []helpEntry

	for _, a := range c.args {
		if !a.IsPositional() {
			options = append(options, helpEntry{name: a.optionForm(), descr: a.help})
		}
	}

	if len(options) > 0 {
		sections = append(sections, renderSection("OPTIONS:", options))
	}

	var subcommands []helpEntry

	for _, sub := range c.subcommands {
		subcommands = append(subcommands, helpEntry{name: sub.name, descr: sub.about})
	}

	if len(subcommands) > 0 {
		sections = append(sections, renderSection("SUBCOMMANDS:", subcommands))
	}

	return strings.Join(sections, "\n\n")
}

// renderSection formats one help section: the header, then each entry on
// its own indented line with the names padded to a common column.
func renderSection(header string, entries []helpEntry) string {
	var column = minNameColumn

	for _, e := range entries {
		if l := len(e.name); l > column {
			column = l
		}
	}

	var b strings.Builder

	b.Grow(len(header) + len(entries)*(column+24))
	b.WriteString(header)

	for _, e := range entries {
		b.WriteString("\n    ")
		b.WriteString(e.name)

		if e.descr != "" {
			for i := len(e.name); i < column; i++ {
				b.WriteByte(' ')
			}

			b.WriteString("  ")
			b.WriteString(e.descr)
		}
	}

	return b.String()
}
