// Package cliargs is a declarative command-line argument parsing library:
// callers describe a command's options, positionals and nested subcommands,
// and the library converts a raw argument vector into a structured result
// or into human-readable help/version/error text.
//
// The API of this package is inspired by the `github.com/urfave/cli`
// package, but the parsing core is pure - it performs no I/O, never touches
// process-wide state, and leaves output routing and exit codes entirely to
// the caller:
//
//	cmd := cliargs.NewCommand("app").
//		Version("1.0.0").
//		About("Does the thing").
//		Arg(cliargs.NewArg("name").Short('n').Long("name").TakesValue().Help("User name")).
//		Arg(cliargs.NewArg("file").Required().Help("Input file"))
//
//	matches, err := cmd.Parse(os.Args)
//	if err != nil {
//		if text, ok := cliargs.IsDisplayRequest(err); ok {
//			fmt.Println(text) // --help or --version
//			os.Exit(0)
//		}
//
//		fmt.Fprintln(os.Stderr, err)
//		os.Exit(2)
//	}
//
//	name, _ := matches.GetOne("name")
package cliargs
