package batch

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/MacroPower/ospath/pkg/ospath"
)

// Result is the outcome of one [Operation].
type Result struct {
	Name         string   `json:"name,omitempty" yaml:"name,omitempty"`
	Op           Op       `json:"op" yaml:"op"`
	Manipulation string   `json:"manipulation" yaml:"manipulation"`
	Paths        []string `json:"paths" yaml:"paths"`
	// Path is set for every op except is_absolute.
	Path *string `json:"path,omitempty" yaml:"path,omitempty"`
	// Absolute is set for is_absolute.
	Absolute *bool  `json:"absolute,omitempty" yaml:"absolute,omitempty"`
	Error    string `json:"error,omitempty" yaml:"error,omitempty"`
}

// Failed reports whether the operation failed.
func (r Result) Failed() bool {
	return r.Error != ""
}

// Options configure [Evaluate].
type Options struct {
	// Concurrency limits the number of operations evaluated at once.
	// Zero means [runtime.GOMAXPROCS].
	Concurrency int
}

// Evaluate validates f and evaluates all of its operations. The returned
// results are in the same order as f.Operations.
func Evaluate(ctx context.Context, f *File, opts Options) ([]Result, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	def, err := ospath.ParseManipulation(f.Manipulation)
	if err != nil {
		return nil, err
	}

	limit := opts.Concurrency
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}

	slog.Debug("evaluating batch",
		slog.Int("operations", len(f.Operations)),
		slog.Int("concurrency", limit),
	)

	results := make([]Result, len(f.Operations))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, op := range f.Operations {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return fmt.Errorf("operation %d: %w", i, err)
			}

			results[i] = evaluate(op, op.manipulation(def))

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	slog.Debug("evaluated batch", slog.Int("operations", len(results)))

	return results, nil
}

func evaluate(op Operation, m ospath.Manipulation) Result {
	r := Result{
		Name:         op.Name,
		Op:           op.Op,
		Manipulation: m.String(),
		Paths:        op.Paths,
	}

	var path string

	switch op.Op {
	case OpResolve:
		path = ospath.Resolve(op.Paths[0], op.Paths[1], m)
	case OpResolveN:
		path = ospath.ResolveN(op.Paths, m)
	case OpResolveOne:
		path = ospath.ResolveOne(op.Paths[0], m)
	case OpRelative:
		rel, err := ospath.Relative(op.Paths[0], op.Paths[1], m)
		if err != nil {
			r.Error = err.Error()

			return r
		}

		path = rel
	case OpIsAbsolute:
		abs := ospath.IsAbsolute(op.Paths[0], m)
		r.Absolute = &abs

		return r
	}

	r.Path = &path

	return r
}
