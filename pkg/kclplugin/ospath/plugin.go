package ospath

import (
	"fmt"
	"log/slog"

	"kcl-lang.io/kcl-go/pkg/plugin"

	"github.com/MacroPower/ospath/pkg/kclutil"
	"github.com/MacroPower/ospath/pkg/ospath"
	"github.com/MacroPower/ospath/pkg/pathutil"
)

// ManipulationKwArg is the keyword argument every method accepts to select
// the [ospath.Manipulation]. It defaults to "default".
const ManipulationKwArg = "manipulation"

// Register registers the ospath [Plugin] with the KCL plugin system.
func Register() {
	plugin.RegisterPlugin(Plugin)
}

// Plugin is the KCL plugin that exposes OS-aware path functions.
var Plugin = plugin.Plugin{
	Name: "ospath",
	MethodMap: map[string]plugin.MethodSpec{
		"resolve": method("resolve", []string{"str", "str"}, "str",
			func(args *kclutil.SafeMethodArgs, m ospath.Manipulation) (any, error) {
				path1, err := args.StrArg(0)
				if err != nil {
					return nil, err
				}

				path2, err := args.StrArg(1)
				if err != nil {
					return nil, err
				}

				return ospath.Resolve(path1, path2, m), nil
			}),
		"resolve_n": method("resolve_n", []string{"[str]"}, "str",
			func(args *kclutil.SafeMethodArgs, m ospath.Manipulation) (any, error) {
				paths, err := args.ListStrArg(0)
				if err != nil {
					return nil, err
				}

				return ospath.ResolveN(paths, m), nil
			}),
		"resolve_one": method("resolve_one", []string{"str"}, "str",
			func(args *kclutil.SafeMethodArgs, m ospath.Manipulation) (any, error) {
				path, err := args.StrArg(0)
				if err != nil {
					return nil, err
				}

				return ospath.ResolveOne(path, m), nil
			}),
		"is_absolute": method("is_absolute", []string{"str"}, "bool",
			func(args *kclutil.SafeMethodArgs, m ospath.Manipulation) (any, error) {
				path, err := args.StrArg(0)
				if err != nil {
					return nil, err
				}

				return ospath.IsAbsolute(path, m), nil
			}),
		"relative": method("relative", []string{"str", "str"}, "str",
			func(args *kclutil.SafeMethodArgs, m ospath.Manipulation) (any, error) {
				from, err := args.StrArg(0)
				if err != nil {
					return nil, err
				}

				to, err := args.StrArg(1)
				if err != nil {
					return nil, err
				}

				return ospath.Relative(from, to, m)
			}),
		"base_name": method("base_name", []string{"str"}, "str",
			func(args *kclutil.SafeMethodArgs, _ ospath.Manipulation) (any, error) {
				path, err := args.StrArg(0)
				if err != nil {
					return nil, err
				}

				return pathutil.BaseName(path), nil
			}),
		"change_extension": method("change_extension", []string{"str", "str"}, "str",
			func(args *kclutil.SafeMethodArgs, _ ospath.Manipulation) (any, error) {
				path, err := args.StrArg(0)
				if err != nil {
					return nil, err
				}

				ext, err := args.StrArg(1)
				if err != nil {
					return nil, err
				}

				return pathutil.ChangeExtension(path, ext), nil
			}),
		"has_extension": method("has_extension", []string{"str", "str"}, "bool",
			func(args *kclutil.SafeMethodArgs, _ ospath.Manipulation) (any, error) {
				path, err := args.StrArg(0)
				if err != nil {
					return nil, err
				}

				ext, err := args.StrArg(1)
				if err != nil {
					return nil, err
				}

				return pathutil.HasExtension(path, ext), nil
			}),
	},
}

type methodFunc func(args *kclutil.SafeMethodArgs, m ospath.Manipulation) (any, error)

func method(name string, argsType []string, resultType string, fn methodFunc) plugin.MethodSpec {
	return plugin.MethodSpec{
		Type: &plugin.MethodType{
			ArgsType:   argsType,
			ResultType: resultType,
		},
		Body: func(args *plugin.MethodArgs) (*plugin.MethodResult, error) {
			logger := slog.With(
				slog.String("plugin", "ospath"),
				slog.String("method", name),
			)
			logger.Debug("invoking kcl plugin")

			safeArgs := &kclutil.SafeMethodArgs{Args: args}

			m, err := ospath.ParseManipulation(safeArgs.StrKwArg(ManipulationKwArg, ospath.Default.String()))
			if err != nil {
				return nil, fmt.Errorf("invalid argument: %w", err)
			}

			result, err := fn(safeArgs, m)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", name, err)
			}

			logger.Debug("returning results")

			return &plugin.MethodResult{V: result}, nil
		},
	}
}
