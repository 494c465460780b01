package commands

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/MacroPower/ospath/pkg/repl"
)

// NewShellCmd returns the shell command.
func NewShellCmd(args *RootArgs) *cobra.Command {
	var historyFile string

	cmd := &cobra.Command{
		Use:   "shell",
		Short: "Start an interactive path shell",
		Args:  cobra.NoArgs,
		RunE: func(cc *cobra.Command, _ []string) error {
			m, err := args.GetManipulation()
			if err != nil {
				return err
			}

			opts := []repl.Option{repl.WithHistoryFile(historyFile)}
			if in := cc.InOrStdin(); in != os.Stdin {
				opts = append(opts, repl.WithIO(io.NopCloser(in), cc.OutOrStdout(), cc.ErrOrStderr()))
			}

			return repl.New(m, opts...).Run(cc.Context())
		},
	}

	cmd.Flags().StringVar(&historyFile, "history", "", "Persist shell history to this file")
	must(cmd.MarkFlagFilename("history"))

	return cmd
}
