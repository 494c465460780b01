package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/MacroPower/ospath/pkg/ospath"
)

const (
	resolveExample = `  # Join a drive path with a relative path
  ospath resolve -m windows 'C:/Users' me

  # A later absolute path replaces everything before it
  ospath resolve -m windows foo '\\server\share' .. other
`
	relativeExample = `  ospath relative /a/b /a/c/d
  ospath relative -m windows 'C:/a' 'C:/b'
`
)

type pathResult struct {
	Path string `json:"path" yaml:"path"`
}

type absoluteResult struct {
	Path     string `json:"path" yaml:"path"`
	Absolute bool   `json:"absolute" yaml:"absolute"`
}

// NewResolveCmd returns the resolve command.
func NewResolveCmd(args *RootArgs) *cobra.Command {
	return &cobra.Command{
		Use:     "resolve PATH...",
		Short:   "Resolve paths from left to right",
		Example: resolveExample,
		Args:    cobra.ArbitraryArgs,
		RunE: func(cc *cobra.Command, pArgs []string) error {
			m, err := args.GetManipulation()
			if err != nil {
				return err
			}

			r, err := newRenderer(cc, args)
			if err != nil {
				return err
			}

			p := ospath.ResolveN(pArgs, m)

			return r.Value(pathResult{Path: p}, p)
		},
	}
}

// NewRelativeCmd returns the relative command.
func NewRelativeCmd(args *RootArgs) *cobra.Command {
	return &cobra.Command{
		Use:     "relative FROM TO",
		Short:   "Find the relative path between two absolute paths",
		Example: relativeExample,
		Args:    cobra.ExactArgs(2),
		RunE: func(cc *cobra.Command, pArgs []string) error {
			m, err := args.GetManipulation()
			if err != nil {
				return err
			}

			r, err := newRenderer(cc, args)
			if err != nil {
				return err
			}

			p, err := ospath.Relative(pArgs[0], pArgs[1], m)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
			}

			return r.Value(pathResult{Path: p}, p)
		},
	}
}

// NewIsAbsCmd returns the isabs command.
func NewIsAbsCmd(args *RootArgs) *cobra.Command {
	return &cobra.Command{
		Use:   "isabs PATH",
		Short: "Report whether a path is absolute",
		Args:  cobra.ExactArgs(1),
		RunE: func(cc *cobra.Command, pArgs []string) error {
			m, err := args.GetManipulation()
			if err != nil {
				return err
			}

			r, err := newRenderer(cc, args)
			if err != nil {
				return err
			}

			abs := ospath.IsAbsolute(pArgs[0], m)

			return r.Value(absoluteResult{Path: pArgs[0], Absolute: abs}, strconv.FormatBool(abs))
		},
	}
}
