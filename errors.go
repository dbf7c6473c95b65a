package cliargs

import (
	"errors"
	"strings"
)

// UnexpectedArgumentError is returned when an input token matched no
// remaining argument definition.
type UnexpectedArgumentError struct{ Token string }

func (e *UnexpectedArgumentError) Error() string {
	return "unexpected argument: " + e.Token
}

// MissingValueError is returned when a value-taking argument ran out of
// input tokens. Arg holds the argument's display form.
type MissingValueError struct{ Arg string }

func (e *MissingValueError) Error() string {
	return "missing value for argument: " + e.Arg
}

// missingRequiredHeader prefixes the MissingRequiredError message.
const missingRequiredHeader = "the following required arguments were not provided:"

// MissingRequiredError is returned when one or more required arguments were
// left unset after all input was consumed. Args holds the display form of
// every missing argument, in registration order.
type MissingRequiredError struct{ Args []string }

func (e *MissingRequiredError) Error() string {
	var b strings.Builder

	b.Grow(len(missingRequiredHeader) + len(e.Args)*16)
	b.WriteString(missingRequiredHeader)

	for _, a := range e.Args {
		b.WriteString("\n    ")
		b.WriteString(a)
	}

	return b.String()
}

// UnknownSubcommandError is returned when subcommand dispatch found no
// matching child command (or no token at all); its message is the parent
// command's rendered help text.
type UnknownSubcommandError struct{ Help string }

func (e *UnknownSubcommandError) Error() string { return e.Help }

// HelpError is the intentional early termination caused by a help argument;
// Text carries the rendered help to display. It is not a failure.
type HelpError struct{ Text string }

func (e *HelpError) Error() string { return e.Text }

// VersionError is the intentional early termination caused by a version
// argument; Text carries the rendered version line to display. It is not a
// failure.
type VersionError struct{ Text string }

func (e *VersionError) Error() string { return e.Text }

// IsDisplayRequest reports whether the given parse error is an intentional
// help or version display request rather than a true failure, and returns
// the text to display when it is.
func IsDisplayRequest(err error) (string, bool) {
	var helpErr *HelpError
	if errors.As(err, &helpErr) {
		return helpErr.Text, true
	}

	var versionErr *VersionError
	if errors.As(err, &versionErr) {
		return versionErr.Text, true
	}

	return "", false
}
