package commands

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/MacroPower/ospath/pkg/pathutil"
)

type extResult struct {
	Path string `json:"path" yaml:"path"`
	Has  bool   `json:"has" yaml:"has"`
}

// NewExtCmd returns the ext command and its subcommands.
func NewExtCmd(args *RootArgs) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ext",
		Short: "Inspect and change base names and extensions",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "base PATH",
		Short: "Print the last segment of a path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cc *cobra.Command, pArgs []string) error {
			r, err := newRenderer(cc, args)
			if err != nil {
				return err
			}

			base := pathutil.BaseName(pArgs[0])

			return r.Value(pathResult{Path: base}, base)
		},
	})

	var last bool

	changeCmd := &cobra.Command{
		Use:   "change PATH EXT",
		Short: "Replace the extension of a path",
		Args:  cobra.ExactArgs(2),
		RunE: func(cc *cobra.Command, pArgs []string) error {
			r, err := newRenderer(cc, args)
			if err != nil {
				return err
			}

			change := pathutil.ChangeExtension
			if last {
				change = pathutil.ChangeLastExtension
			}

			p := change(pArgs[0], pArgs[1])

			return r.Value(pathResult{Path: p}, p)
		},
	}
	changeCmd.Flags().BoolVar(&last, "last", false, "Only replace the last extension")
	cmd.AddCommand(changeCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "has PATH EXT...",
		Short: "Report whether a path has any of the extensions",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cc *cobra.Command, pArgs []string) error {
			r, err := newRenderer(cc, args)
			if err != nil {
				return err
			}

			has := pathutil.HasExtensions(pArgs[0], pArgs[1:]...)

			return r.Value(extResult{Path: pArgs[0], Has: has}, strconv.FormatBool(has))
		},
	})

	return cmd
}
