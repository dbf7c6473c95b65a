package cliargs

import "strings"

// ArgAction describes the effect applied when an argument is matched
// against an input token.
type ArgAction uint8

// Possible argument actions.
const (
	// ActionSet consumes one value token and overwrites any previously
	// recorded values with it.
	ActionSet ArgAction = iota

	// ActionAppend consumes one value token and appends it to the list of
	// previously recorded values.
	ActionAppend

	// ActionSetTrue records the value "true" without consuming a value token.
	ActionSetTrue

	// ActionSetFalse records the value "false" without consuming a value token.
	ActionSetFalse

	// ActionIncrement records how many times the argument occurred, as a
	// decimal string ("1" on the first occurrence, "2" on the second, and
	// so on).
	ActionIncrement

	// ActionHelp aborts the parse and delivers the rendered help text
	// through the error channel (see HelpError).
	ActionHelp

	// ActionVersion aborts the parse and delivers the rendered version text
	// through the error channel (see VersionError).
	ActionVersion
)

// String returns the action name in a string representation.
func (a ArgAction) String() string {
	switch a {
	case ActionSet:
		return "set"
	case ActionAppend:
		return "append"
	case ActionSetTrue:
		return "set-true"
	case ActionSetFalse:
		return "set-false"
	case ActionIncrement:
		return "increment"
	case ActionHelp:
		return "help"
	case ActionVersion:
		return "version"
	}

	return "unknown"
}

// Arg describes a single argument accepted by a Command - an option (when a
// short and/or long form is set) or a positional (when neither is set).
//
// An Arg is a value: every builder method returns a modified copy, so
// definitions can be chained and shared safely:
//
//	cliargs.NewArg("name").Short('n').Long("name").TakesValue().Help("User name")
type Arg struct {
	id             string
	short          byte   // 0 means "no short form"
	long           string // "" means "no long form"
	required       bool
	takesValue     bool
	multipleValues bool
	defaultValue   string
	hasDefault     bool
	valueName      string
	help           string
	action         ArgAction
}

// NewArg creates a new argument definition with the given unique id. With no
// further modifiers the argument is a positional consuming a single token
// (action ActionSet).
func NewArg(id string) Arg { return Arg{id: id, action: ActionSet} }

// Short sets the one-dash form of the argument (e.g. 'n' for "-n").
func (a Arg) Short(c byte) Arg { a.short = c; return a }

// Long sets the two-dash form of the argument (e.g. "name" for "--name").
func (a Arg) Long(name string) Arg { a.long = name; return a }

// Required marks the argument as mandatory: parsing fails when it is left
// unset after all input is consumed.
func (a Arg) Required() Arg { a.required = true; return a }

// TakesValue declares that the argument consumes a value token; the action
// is forced to ActionSet.
func (a Arg) TakesValue() Arg { a.takesValue, a.action = true, ActionSet; return a }

// TakesMultipleValues declares that the argument may occur multiple times,
// each occurrence consuming a value token; the action is forced to
// ActionAppend.
func (a Arg) TakesMultipleValues() Arg {
	a.takesValue, a.multipleValues, a.action = true, true, ActionAppend

	return a
}

// Default sets the value recorded after parsing when the argument was not
// matched at all.
func (a Arg) Default(v string) Arg { a.defaultValue, a.hasDefault = v, true; return a }

// ValueName sets the placeholder shown for the argument's value in help text
// (the upper-cased id is used when unset).
func (a Arg) ValueName(n string) Arg { a.valueName = n; return a }

// Help sets the one-line description shown in help text.
func (a Arg) Help(h string) Arg { a.help = h; return a }

// Action overrides the argument's action.
func (a Arg) Action(act ArgAction) Arg { a.action = act; return a }

// IsPositional reports whether the argument is matched by position rather
// than by a dash-prefixed token. An argument is positional exactly when it
// has neither a short nor a long form.
func (a Arg) IsPositional() bool { return a.short == 0 && a.long == "" }

// matchesToken reports whether the given input token is exactly the short or
// the long form of the argument. No prefix matching, no inline "=value".
func (a Arg) matchesToken(tok string) bool {
	if a.short != 0 && tok == "-"+string(a.short) {
		return true
	}

	return a.long != "" && tok == "--"+a.long
}

// displayValueName returns the value placeholder for help rendering.
func (a Arg) displayValueName() string {
	if a.valueName != "" {
		return a.valueName
	}

	return strings.ToUpper(a.id)
}

// positionalForm renders the positional argument for the usage line and the
// ARGS help section ("<id>" when required, "[id]" otherwise, with a "..."
// suffix when it accepts multiple values).
func (a Arg) positionalForm() string {
	var b strings.Builder

	b.Grow(len(a.id) + 5)

	if a.required {
		b.WriteByte('<')
		b.WriteString(a.id)
		b.WriteByte('>')
	} else {
		b.WriteByte('[')
		b.WriteString(a.id)
		b.WriteByte(']')
	}

	if a.multipleValues {
		b.WriteString("...")
	}

	return b.String()
}

// optionForm renders the option argument for the OPTIONS help section and
// diagnostics ("-s, --long <VALUE>" with whichever forms exist).
func (a Arg) optionForm() string {
	var b strings.Builder

	b.Grow(len(a.long) + len(a.valueName) + 10)

	if a.short != 0 {
		b.WriteByte('-')
		b.WriteByte(a.short)
	}

	if a.long != "" {
		if a.short != 0 {
			b.WriteString(", ")
		}

		b.WriteString("--")
		b.WriteString(a.long)
	}

	if a.takesValue {
		b.WriteString(" <")
		b.WriteString(a.displayValueName())
		b.WriteByte('>')
	}

	return b.String()
}

// displayForm renders the argument for diagnostics (required-arguments
// listing and missing-value errors).
func (a Arg) displayForm() string {
	if a.IsPositional() {
		return a.positionalForm()
	}

	return a.optionForm()
}
