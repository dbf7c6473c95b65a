package cliargs

import (
	"strconv"
	"strings"
)

// Parse matches the given raw argument vector against the command
// definition. Element zero (the executable or subcommand invocation name)
// is always dropped before matching begins.
//
// On success the populated ArgMatches is returned. Any other outcome comes
// back through the error channel: true failures (UnexpectedArgumentError,
// MissingValueError, MissingRequiredError, UnknownSubcommandError) as well
// as intentional help/version display requests (HelpError, VersionError) -
// use IsDisplayRequest to tell the latter apart.
//
// Parse never touches process-wide state and performs no I/O; every call
// runs on its own parser state, so the same Command may be parsed against
// different inputs repeatedly.
func (c *Command) Parse(argv []string) (*ArgMatches, error) {
	var inputs []string

	if len(argv) > 0 {
		inputs = argv[1:]
	}

	var p = argParser{
		cmd:      c,
		inputs:   inputs,
		consumed: make([]bool, len(c.args)),
		matches:  newArgMatches(),
	}

	return p.run()
}

// argParser holds the state of a single parse: the remaining input tokens,
// a consumed marker per argument definition (arguments are never removed
// from the pool, preserving registration order for the positional tie-break
// rule), the matches built so far, and the positional-only mode switch.
type argParser struct {
	cmd            *Command
	inputs         []string
	consumed       []bool
	matches        *ArgMatches
	positionalOnly bool
}

// run is the top-level loop. Every iteration consumes at least one input
// token, so the loop always terminates. Commands owning subcommands never
// match their own arguments - dispatch takes over entirely.
func (p *argParser) run() (*ArgMatches, error) {
	if len(p.cmd.subcommands) > 0 {
		return p.dispatchSubcommand()
	}

	for len(p.inputs) > 0 {
		var tok = p.inputs[0]

		switch {
		case p.positionalOnly:
			if err := p.matchPositional(); err != nil {
				return nil, err
			}

		case tok == "--": // everything after is positional
			p.inputs = p.inputs[1:]
			p.positionalOnly = true

		case strings.HasPrefix(tok, "-"):
			p.inputs = p.inputs[1:]

			if err := p.matchOption(tok); err != nil {
				return nil, err
			}

		default:
			if err := p.matchPositional(); err != nil {
				return nil, err
			}
		}
	}

	if err := p.checkRequired(); err != nil {
		return nil, err
	}

	p.applyDefaults()

	return p.matches, nil
}

// matchOption resolves a dash-prefixed token against the not-yet-consumed
// option definitions. Only an exact match of the rendered short or long
// form counts - no abbreviations, no inline "=value".
func (p *argParser) matchOption(tok string) error {
	for i, a := range p.cmd.args {
		if p.consumed[i] || a.IsPositional() || !a.matchesToken(tok) {
			continue
		}

		if err := p.dispatch(a); err != nil {
			return err
		}

		// repeatable arguments stay in the pool
		if !a.multipleValues && a.action != ActionIncrement {
			p.consumed[i] = true
		}

		return nil
	}

	return &UnexpectedArgumentError{Token: tok}
}

// matchPositional assigns the current token to the earliest registered
// not-yet-consumed positional argument.
func (p *argParser) matchPositional() error {
	var tok = p.inputs[0]

	for i, a := range p.cmd.args {
		if p.consumed[i] || !a.IsPositional() {
			continue
		}

		var before = len(p.inputs)

		if err := p.dispatch(a); err != nil {
			return err
		}

		// a non-value action leaves the token in place; drop it so the
		// loop keeps advancing
		if len(p.inputs) == before {
			p.inputs = p.inputs[1:]
		}

		if !a.multipleValues {
			p.consumed[i] = true
		}

		return nil
	}

	return &UnexpectedArgumentError{Token: tok}
}

// dispatch applies the matched argument's action. For value-taking actions
// the value is the next remaining token: the option name itself has already
// been consumed, while for positionals the current token is the value.
func (p *argParser) dispatch(a Arg) error {
	switch a.action {
	case ActionSet:
		v, err := p.takeValue(a)
		if err != nil {
			return err
		}

		p.matches.values[a.id] = []string{v}

	case ActionAppend:
		v, err := p.takeValue(a)
		if err != nil {
			return err
		}

		p.matches.values[a.id] = append(p.matches.values[a.id], v)

	case ActionSetTrue:
		p.matches.values[a.id] = []string{"true"}

	case ActionSetFalse:
		p.matches.values[a.id] = []string{"false"}

	case ActionIncrement:
		p.matches.values[a.id] = []string{increment(p.matches.values[a.id])}

	case ActionHelp:
		return &HelpError{Text: renderHelp(p.cmd)}

	case ActionVersion:
		return &VersionError{Text: renderVersion(p.cmd)}
	}

	return nil
}

// takeValue consumes the next input token as the argument's value.
func (p *argParser) takeValue(a Arg) (string, error) {
	if len(p.inputs) == 0 {
		return "", &MissingValueError{Arg: a.displayForm()}
	}

	var v = p.inputs[0]

	p.inputs = p.inputs[1:]

	return v, nil
}

// increment computes the next recorded value for ActionIncrement: anything
// but a single-element list resets the count to "1"; otherwise the single
// value is parsed as an integer (a non-number counts as 0) and bumped by
// one.
func increment(recorded []string) string {
	if len(recorded) != 1 {
		return "1"
	}

	n, _ := strconv.Atoi(recorded[0]) // a non-number counts as 0

	return strconv.Itoa(n + 1)
}

// checkRequired collects every required argument with no recorded entry and
// reports them all at once.
func (p *argParser) checkRequired() error {
	var missing []string

	for _, a := range p.cmd.args {
		if a.required && !p.matches.Has(a.id) {
			missing = append(missing, a.displayForm())
		}
	}

	if len(missing) > 0 {
		return &MissingRequiredError{Args: missing}
	}

	return nil
}

// applyDefaults inserts declared default values for arguments with no
// recorded entry. An explicitly recorded empty string suppresses the
// default.
func (p *argParser) applyDefaults() {
	for _, a := range p.cmd.args {
		if a.hasDefault && !p.matches.Has(a.id) {
			p.matches.values[a.id] = []string{a.defaultValue}
		}
	}
}

// dispatchSubcommand routes the parse into the child command named by the
// first remaining token; the child consumes the rest of the input with its
// own argument pool, checks, and defaults. A missing or unknown name fails
// with the parent's rendered help text.
func (p *argParser) dispatchSubcommand() (*ArgMatches, error) {
	if len(p.inputs) == 0 {
		return nil, &UnknownSubcommandError{Help: renderHelp(p.cmd)}
	}

	for _, sub := range p.cmd.subcommands {
		if sub.name != p.inputs[0] {
			continue
		}

		nested, err := sub.Parse(p.inputs)
		if err != nil {
			return nil, err
		}

		p.matches.subName, p.matches.sub = sub.name, nested

		return p.matches, nil
	}

	return nil, &UnknownSubcommandError{Help: renderHelp(p.cmd)}
}
