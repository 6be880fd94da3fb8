package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func hasCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "has <term>",
		Short: "Print true if the term exists, false otherwise",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lx, err := opts.load()
			if err != nil {
				return err
			}
			ok, err := lx.Has(args[0])
			if err != nil {
				return err
			}
			opts.log.Debug("lexicon.lookup", "op", "has", "term", args[0], "found", ok)
			fmt.Fprintln(cmd.OutOrStdout(), ok)
			return nil
		},
	}
}

func getCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "get <term>",
		Short: "Print the definition of a term",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lx, err := opts.load()
			if err != nil {
				return err
			}
			def, err := lx.Get(args[0])
			if err != nil {
				return err
			}
			opts.log.Debug("lexicon.lookup", "op", "get", "term", args[0])
			fmt.Fprintln(cmd.OutOrStdout(), def)
			return nil
		},
	}
}

func validateCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <term>",
		Short: "Print the normalised form of a term if it exists",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lx, err := opts.load()
			if err != nil {
				return err
			}
			term, err := lx.Validate(args[0])
			if err != nil {
				return err
			}
			opts.log.Debug("lexicon.lookup", "op", "validate", "term", args[0])
			fmt.Fprintln(cmd.OutOrStdout(), term)
			return nil
		},
	}
}
