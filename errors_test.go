package cliargs_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"gh.tarampamp.am/cliargs"
)

func TestErrors_Messages(t *testing.T) {
	t.Parallel()

	for name, tc := range map[string]struct {
		giveErr error
		wantMsg string
	}{
		"unexpected argument": {
			giveErr: &cliargs.UnexpectedArgumentError{Token: "--nope"},
			wantMsg: "unexpected argument: --nope",
		},
		"missing value": {
			giveErr: &cliargs.MissingValueError{Arg: "--name <NAME>"},
			wantMsg: "missing value for argument: --name <NAME>",
		},
		"missing required": {
			giveErr: &cliargs.MissingRequiredError{Args: []string{"<file>", "--name <NAME>"}},
			wantMsg: "the following required arguments were not provided:\n    <file>\n    --name <NAME>",
		},
		"unknown subcommand": {
			giveErr: &cliargs.UnknownSubcommandError{Help: "some help text"},
			wantMsg: "some help text",
		},
		"help": {
			giveErr: &cliargs.HelpError{Text: "rendered help"},
			wantMsg: "rendered help",
		},
		"version": {
			giveErr: &cliargs.VersionError{Text: "app 1.0.0"},
			wantMsg: "app 1.0.0",
		},
	} {
		tc := tc

		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.EqualError(t, tc.giveErr, tc.wantMsg)
		})
	}
}

func TestIsDisplayRequest(t *testing.T) {
	t.Parallel()

	for name, tc := range map[string]struct {
		giveErr  error
		wantText string
		wantOK   bool
	}{
		"help":               {giveErr: &cliargs.HelpError{Text: "help text"}, wantText: "help text", wantOK: true},
		"version":            {giveErr: &cliargs.VersionError{Text: "v1"}, wantText: "v1", wantOK: true},
		"unknown subcommand": {giveErr: &cliargs.UnknownSubcommandError{Help: "help"}, wantOK: false},
		"plain error":        {giveErr: errors.New("boom"), wantOK: false},
		"nil":                {giveErr: nil, wantOK: false},
	} {
		tc := tc

		t.Run(name, func(t *testing.T) {
			t.Parallel()

			text, ok := cliargs.IsDisplayRequest(tc.giveErr)
			assert.Equal(t, tc.wantOK, ok)
			assert.Equal(t, tc.wantText, text)
		})
	}
}
