package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/MacroPower/ospath/pkg/batch"
)

const batchExample = `  # Evaluate a YAML batch file
  ospath batch ops.yaml

  # Read the batch from stdin and print YAML
  cat ops.json | ospath batch - -o yaml

  # Print the JSON Schema of batch files
  ospath batch schema
`

var ErrOperationsFailed = errors.New("operations failed")

// NewBatchCmd returns the batch command.
func NewBatchCmd(args *RootArgs) *cobra.Command {
	var concurrency int

	cmd := &cobra.Command{
		Use:     "batch FILE",
		Short:   "Evaluate a file of path operations",
		Example: batchExample,
		Args:    cobra.ExactArgs(1),
		RunE: func(cc *cobra.Command, pArgs []string) error {
			m, err := args.GetManipulation()
			if err != nil {
				return err
			}

			r, err := newRenderer(cc, args)
			if err != nil {
				return err
			}

			f, err := loadBatch(cc, pArgs[0])
			if err != nil {
				return err
			}

			if f.Manipulation == "" {
				f.Manipulation = m.String()
			}

			results, err := batch.Evaluate(cc.Context(), f, batch.Options{Concurrency: concurrency})
			if err != nil {
				return fmt.Errorf("failed to evaluate batch: %w", err)
			}

			err = r.Results(results)
			if err != nil {
				return err
			}

			failed := 0
			for _, res := range results {
				if res.Failed() {
					failed++
				}
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d %w", failed, len(results), ErrOperationsFailed)
			}

			return nil
		},
	}

	cmd.Flags().IntVar(&concurrency, "concurrency", 0, "Maximum operations evaluated at once (0 for GOMAXPROCS)")

	cmd.AddCommand(&cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema of batch files",
		Args:  cobra.NoArgs,
		RunE: func(cc *cobra.Command, _ []string) error {
			b, err := json.MarshalIndent(batch.Schema(), "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal schema: %w", err)
			}

			fmt.Fprintln(cc.OutOrStdout(), string(b))

			return nil
		},
	})

	return cmd
}

func loadBatch(cc *cobra.Command, name string) (*batch.File, error) {
	var rd io.Reader

	if name == "-" {
		rd = cc.InOrStdin()
	} else {
		f, err := os.Open(name)
		if err != nil {
			return nil, fmt.Errorf("failed to open batch file: %w", err)
		}
		defer f.Close()

		rd = f
	}

	bf, err := batch.Load(rd)
	if err != nil {
		return nil, fmt.Errorf("failed to load batch file: %w", err)
	}

	return bf, nil
}
