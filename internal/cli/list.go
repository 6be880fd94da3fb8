package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/comalice/lexicon/internal/source"
)

func listCmd(opts *rootOptions) *cobra.Command {
	var format string

	c := &cobra.Command{
		Use:   "list",
		Short: "Print every term and definition in file order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := source.ParseFormat(format)
			if err != nil {
				return err
			}
			lx, err := opts.load()
			if err != nil {
				return err
			}
			return source.Encode(cmd.OutOrStdout(), lx, f)
		},
	}

	c.Flags().StringVarP(&format, "format", "o", "text", "Output format: text, yaml or json")
	return c
}

func infoCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print the term count and content fingerprint",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			lx, err := opts.load()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "terms: %d\n", lx.Len())
			fmt.Fprintf(out, "fingerprint: %s\n", lx.Fingerprint())
			return nil
		},
	}
}
