// Package cli implements the lexicon command tree.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/comalice/lexicon"
	"github.com/comalice/lexicon/internal/logger"
	"github.com/comalice/lexicon/internal/source"
)

// Exit codes.
const (
	ExitOK           = 0
	ExitError        = 1
	ExitInvalidInput = 2
	ExitNotFound     = 3
)

// Execute runs the command line from os.Args and exits with its code.
func Execute() {
	os.Exit(Run(os.Args[1:], os.Stdout, os.Stderr))
}

// Run executes the command line args and returns the process exit code.
func Run(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stderr)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "lexicon: %v\n", err)
		return exitCode(err)
	}
	return ExitOK
}

func exitCode(err error) int {
	switch {
	case errors.Is(err, lexicon.ErrNotFound):
		return ExitNotFound
	case errors.Is(err, lexicon.ErrInvalidInput):
		return ExitInvalidInput
	default:
		return ExitError
	}
}

type rootOptions struct {
	file  string
	debug bool
	log   *slog.Logger
}

func newRootCmd(logOut io.Writer) *cobra.Command {
	opts := &rootOptions{log: logger.Discard()}

	cmd := &cobra.Command{
		Use:           "lexicon",
		Short:         "Exact-match term lookups against a frozen vocabulary file",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			opts.log = logger.New(logger.Config{Out: logOut, Debug: opts.debug})
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.file, "file", "f", "", "Vocabulary file (.yaml, .yml or .json)")
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "write JSON debug logs to stderr")
	_ = cmd.MarkPersistentFlagRequired("file")

	cmd.AddCommand(
		hasCmd(opts),
		getCmd(opts),
		validateCmd(opts),
		listCmd(opts),
		infoCmd(opts),
	)
	return cmd
}

func (o *rootOptions) load() (*lexicon.Lexicon, error) {
	lx, err := source.Load(o.file)
	if err != nil {
		o.log.Debug("lexicon.load_failed", "path", o.file, "error", err)
		return nil, err
	}
	o.log.Debug("lexicon.loaded", "path", o.file, "terms", lx.Len(), "fingerprint", lx.Fingerprint())
	return lx, nil
}
