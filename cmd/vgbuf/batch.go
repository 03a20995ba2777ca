package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogpu/vgbuf"
	"github.com/gogpu/vgbuf/config"
	"github.com/gogpu/vgbuf/internal/harness"
	"github.com/gogpu/vgbuf/internal/workers"
	"github.com/gogpu/vgbuf/render"
)

// errBatchFailed is returned when at least one case failed.
var errBatchFailed = errors.New("batch: one or more cases failed")

func newBatchCmd(g *globalFlags) *cobra.Command {
	var (
		poolSize int
		jobs     int
	)
	cmd := &cobra.Command{
		Use:   "batch <file.yaml>",
		Short: "Run every case of a YAML batch file",
		Long: `Runs every case of a batch file, --jobs cases at a time. Results are
reported in file order. Buffers are pooled across cases, so cases sharing a
geometry reuse memory. A failing case is reported and the batch continues.

Example:
  vgbuf batch testdata/smoke.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := config.LoadBatch(args[0])
			if err != nil {
				return err
			}
			alloc, err := g.newAllocator()
			if err != nil {
				return err
			}
			pool := vgbuf.NewPool(alloc, poolSize)
			failed, err := runBatch(cmd, b, pool, jobs)
			if derr := pool.Drain(); derr != nil {
				err = errors.Join(err, fmt.Errorf("batch: drain pool: %w", derr))
			}
			if err != nil {
				return err
			}
			if failed > 0 {
				return fmt.Errorf("%w (%d of %d)", errBatchFailed, failed, len(b.Cases))
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&poolSize, "pool-size", 4, "Buffers kept per geometry between cases")
	cmd.Flags().IntVarP(&jobs, "jobs", "j", 1, "Cases run concurrently (0 = one per CPU)")
	return cmd
}

// outcome is the result of one batch case.
type outcome struct {
	name    string
	output  string
	fn      string
	skipped bool
	err     error
}

func runCase(ctx context.Context, b *config.Batch, c config.Case, pool *vgbuf.Pool) outcome {
	o := outcome{name: c.Name}
	cfg, err := b.Config(c)
	if err != nil {
		o.err = err
		return o
	}
	o.output, o.fn = cfg.Output, cfg.Function

	// Drivers carry scissor state, so each case gets its own.
	drv := render.NewSoftwareDriver()
	res, err := harness.Run(ctx, cfg, harness.Deps{Buffers: pool, Driver: drv})
	switch {
	case err != nil:
		o.err = err
	case res.FuncErr != nil:
		o.err = res.FuncErr
	default:
		o.skipped = res.Skipped
	}
	return o
}

func runBatch(cmd *cobra.Command, b *config.Batch, pool *vgbuf.Pool, jobs int) (failed int, err error) {
	out := cmd.OutOrStdout()
	results := make([]outcome, len(b.Cases))

	wp := workers.New(jobs)
	defer wp.Close()

	tasks := make([]workers.Job, len(b.Cases))
	for i, c := range b.Cases {
		tasks[i] = func(ctx context.Context) {
			results[i] = runCase(ctx, b, c, pool)
		}
	}
	if err := wp.Run(cmd.Context(), tasks); err != nil {
		return 0, fmt.Errorf("batch: %w", err)
	}

	headerColor.Fprintf(out, "━━━ %d cases ━━━\n", len(b.Cases))
	for _, o := range results {
		switch {
		case o.err != nil:
			failed++
			failColor.Fprintf(out, "  ✗ %s\n", o.name)
			failColor.Fprintf(out, "    └─ %v\n", o.err)
		case o.skipped:
			warnColor.Fprintf(out, "  ! %s", o.name)
			dimColor.Fprintf(out, " - unknown function %s\n", o.fn)
		default:
			okColor.Fprintf(out, "  ✓ %s", o.name)
			dimColor.Fprintf(out, " - %s\n", o.output)
		}
	}

	summary := okColor
	if failed > 0 {
		summary = failColor
	}
	summary.Fprintf(out, "━━━ %d passed, %d failed ━━━\n", len(b.Cases)-failed, failed)
	return failed, nil
}
