// Command greet is a small demo CLI built on the cliargs library. It shows
// the intended wrapper pattern: the library stays pure, and this binary owns
// the argument vector intake, output routing and exit codes.
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"

	"gh.tarampamp.am/cliargs"
	"gh.tarampamp.am/cliargs/internal/env"
)

func main() {
	setupColors()

	os.Exit(run(os.Args, colorable.NewColorableStdout(), colorable.NewColorableStderr()))
}

// setupColors decides whether the error prefix is colored, based on the
// environment and the terminal kind.
func setupColors() {
	if _, exists := env.ForceColors.Lookup(); exists {
		color.NoColor = false
	} else if _, exists = env.NoColors.Lookup(); exists {
		color.NoColor = true
	} else if v, ok := env.Term.Lookup(); ok && v == "dumb" {
		color.NoColor = true
	} else {
		fd := os.Stderr.Fd()
		color.NoColor = !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd)
	}
}

// run parses the argument vector and executes the matched subcommand. Help
// and version requests go to stdout (exit code 0), everything the parser
// rejects goes to stderr (exit code 2), execution failures exit with 1.
func run(argv []string, stdout, stderr io.Writer) int {
	matches, err := newCommand().Parse(argv)
	if err != nil {
		if text, ok := cliargs.IsDisplayRequest(err); ok {
			_, _ = fmt.Fprintln(stdout, text)

			return 0
		}

		var unknownSub *cliargs.UnknownSubcommandError
		if errors.As(err, &unknownSub) {
			_, _ = fmt.Fprintln(stderr, unknownSub.Help)

			return 2
		}

		_, _ = fmt.Fprintln(stderr, color.RedString("error:")+" "+err.Error())

		return 2
	}

	out, err := greet(matches)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, color.RedString("error:")+" "+err.Error())

		return 1
	}

	_, _ = fmt.Fprintln(stdout, out)

	return 0
}

// newCommand builds the CLI definition.
func newCommand() *cliargs.Command {
	var hello = cliargs.NewCommand("hello").
		About("Print a greeting").
		Arg(cliargs.NewArg("who").Required().Help("Who to greet")).
		Arg(cliargs.NewArg("lang").Short('l').Long("lang").TakesMultipleValues().
			ValueName("LANG").Help("Greeting language (repeatable)")).
		Arg(cliargs.NewArg("shout").Long("shout").Action(cliargs.ActionSetTrue).
			Help("Greet in upper case")).
		Arg(cliargs.NewArg("excitement").Short('e').Action(cliargs.ActionIncrement).
			Help("Add an exclamation mark (repeatable)"))

	var bye = cliargs.NewCommand("bye").
		About("Print a farewell").
		Arg(cliargs.NewArg("who").Required().Help("Who to bid farewell")).
		Arg(cliargs.NewArg("signoff").Long("signoff").TakesValue().Default("Take care").
			Help("Closing line"))

	return cliargs.NewCommand("greet").
		Version("1.0.0").
		Author("tarampampam <murmur@cats.rulez>").
		About("Greetings as a service").
		Subcommand(hello).
		Subcommand(bye)
}

// greetings per language code.
var greetings = map[string]string{
	"en": "Hello",
	"es": "Hola",
	"fr": "Bonjour",
	"de": "Hallo",
	"ru": "Privet",
}

// greet renders the output for the matched subcommand.
func greet(m *cliargs.ArgMatches) (string, error) {
	name, sub, ok := m.Subcommand()
	if !ok {
		return "", errors.New("no subcommand matched")
	}

	switch name {
	case "hello":
		return hello(sub)

	case "bye":
		who, _ := sub.GetOne("who")
		signoff, _ := sub.GetOne("signoff")

		return fmt.Sprintf("Goodbye, %s. %s", who, signoff), nil
	}

	return "", errors.Errorf("unsupported subcommand %q", name)
}

func hello(m *cliargs.ArgMatches) (string, error) {
	var who, _ = m.GetOne("who")

	langs, ok := m.GetMany("lang")
	if !ok {
		langs = []string{"en"}
	}

	var marks = "" // optional exclamation marks

	if n, found := m.GetOne("excitement"); found {
		count, err := strconv.Atoi(n)
		if err != nil {
			return "", errors.Wrap(err, "unexpected excitement counter")
		}

		marks = strings.Repeat("!", count)
	}

	var lines = make([]string, 0, len(langs))

	for _, lang := range langs {
		word, found := greetings[lang]
		if !found {
			return "", errors.Errorf("unsupported language %q", lang)
		}

		line := fmt.Sprintf("%s, %s%s", word, who, marks)

		if m.Has("shout") {
			line = strings.ToUpper(line)
		}

		lines = append(lines, line)
	}

	return strings.Join(lines, "\n"), nil
}
