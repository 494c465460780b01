package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"kcl-lang.io/kcl-go/pkg/native"
	"kcl-lang.io/kcl-go/pkg/spec/gpyrpc"

	"github.com/MacroPower/ospath/pkg/render"
)

const runExample = `  # main.k:
  #   import kcl_plugin.ospath
  #   home = ospath.resolve("C:/Users", "me", manipulation="windows")
  ospath run main.k
`

var ErrKCLRun = errors.New("kcl run")

// NewRunCmd returns the run command, which executes KCL files with the
// ospath plugin available as kcl_plugin.ospath.
func NewRunCmd(args *RootArgs) *cobra.Command {
	return &cobra.Command{
		Use:     "run FILE...",
		Short:   "Run KCL files with the ospath plugin",
		Example: runExample,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cc *cobra.Command, pArgs []string) error {
			format, err := args.GetOutput()
			if err != nil {
				return err
			}

			RegisterEnabledPlugins()

			client := native.NewNativeServiceClient()

			result, err := client.ExecProgram(&gpyrpc.ExecProgramArgs{
				KFilenameList: pArgs,
				Args:          []*gpyrpc.Argument{},
			})
			if err != nil {
				return fmt.Errorf("%w: %w", ErrKCLRun, err)
			}

			if msg := result.GetErrMessage(); msg != "" {
				return fmt.Errorf("%w: %s", ErrKCLRun, msg)
			}

			out := result.GetYamlResult()
			if format == render.FormatJSON {
				out = result.GetJsonResult()
			}

			fmt.Fprintln(cc.OutOrStdout(), strings.TrimRight(out, "\n"))

			return nil
		},
	}
}
