package commands

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"

	"github.com/MacroPower/ospath/pkg/log"
	"github.com/MacroPower/ospath/pkg/ospath"
	"github.com/MacroPower/ospath/pkg/render"
)

const envManipulation = "OSPATH_MANIPULATION"

var (
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrLogHandlerFailed = errors.New("log handler failed")
)

func NewRootCmd(name, shortDesc, longDesc string) *cobra.Command {
	args := NewRootArgs()

	cmd := &cobra.Command{
		Use:           name,
		Short:         shortDesc,
		Long:          longDesc,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       GetVersionString(),
	}

	defaultManipulation := os.Getenv(envManipulation)
	if defaultManipulation == "" {
		defaultManipulation = ospath.Native().String()
	}

	cmd.PersistentFlags().StringVar(args.logLevel, "log_level", "warn", "Set the log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(args.logFormat, "log_format", "text", "Set the log format (text, logfmt, json)")
	cmd.PersistentFlags().StringVarP(args.manipulation, "manipulation", "m", defaultManipulation,
		"Set the path manipulation (default, windows); defaults to $"+envManipulation+" or the host OS")
	cmd.PersistentFlags().StringVarP(args.output, "output", "o", string(render.FormatText),
		"Set the output format (text, json, yaml)")

	cmd.PersistentFlags().StringVar(args.cpuProfile, "cpuprofile", "", "Write a CPU profile to this file")
	cmd.PersistentFlags().StringVar(args.memProfile, "memprofile", "", "Write a memory profile to this file")

	must(cmd.MarkPersistentFlagFilename("cpuprofile"))
	must(cmd.MarkPersistentFlagFilename("memprofile"))

	cmd.PersistentPreRunE = func(cc *cobra.Command, _ []string) error {
		var merr error

		if _, err := args.GetManipulation(); err != nil {
			merr = multierror.Append(merr, err)
		}

		if _, err := args.GetOutput(); err != nil {
			merr = multierror.Append(merr, err)
		}

		h, err := log.CreateHandlerWithStrings(cc.ErrOrStderr(), args.GetLogLevel(), args.GetLogFormat())
		if err != nil {
			merr = multierror.Append(merr, fmt.Errorf("%w: %w", ErrLogHandlerFailed, err))
		}

		if merr != nil {
			return merr
		}

		slog.SetDefault(slog.New(h))

		if args.GetCPUProfile() != "" {
			f, err := os.Create(args.GetCPUProfile())
			if err != nil {
				return fmt.Errorf("failed to create CPU profile: %w", err)
			}

			err = pprof.StartCPUProfile(f)
			if err != nil {
				must(f.Close())

				return fmt.Errorf("failed to start CPU profile: %w", err)
			}
		}

		slog.Debug("ready to go")

		return nil
	}

	cmd.PersistentPostRunE = func(_ *cobra.Command, _ []string) error {
		slog.Debug("shutting down")

		if args.GetCPUProfile() != "" {
			pprof.StopCPUProfile()
		}

		if args.GetMemProfile() != "" {
			f, err := os.Create(args.GetMemProfile())
			if err != nil {
				return fmt.Errorf("failed to create memory profile: %w", err)
			}

			runtime.GC() //nolint:revive // Get up-to-date statistics for the profile.

			err = pprof.Lookup("allocs").WriteTo(f, 0)
			if err != nil {
				return fmt.Errorf("failed to write memory profile: %w", err)
			}

			must(f.Close())
		}

		return nil
	}

	cmd.AddCommand(NewResolveCmd(args))
	cmd.AddCommand(NewRelativeCmd(args))
	cmd.AddCommand(NewIsAbsCmd(args))
	cmd.AddCommand(NewExtCmd(args))
	cmd.AddCommand(NewBatchCmd(args))
	cmd.AddCommand(NewShellCmd(args))
	cmd.AddCommand(NewRunCmd(args))
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// newRenderer creates a [render.Renderer] for the command's output stream.
func newRenderer(cc *cobra.Command, args *RootArgs) (*render.Renderer, error) {
	format, err := args.GetOutput()
	if err != nil {
		return nil, err
	}

	styled := false
	if f, ok := cc.OutOrStdout().(*os.File); ok {
		styled = render.IsStyled(f)
	}

	return render.NewRenderer(cc.OutOrStdout(), format, styled), nil
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}
