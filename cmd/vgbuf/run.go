package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/gogpu/vgbuf/config"
	"github.com/gogpu/vgbuf/internal/harness"
	"github.com/gogpu/vgbuf/render"
)

// errRunFailed is returned when the function under test fails. The target
// is still saved.
var errRunFailed = errors.New("run: function failed")

// runOptions are the flags of the run command, one per config option.
var runOptions = []struct {
	name, usage string
}{
	{"func", "Function to run (vg_lite_clear, vg_lite_blit, vg_lite_blit_rect, vg_lite_draw, vg_lite_draw_pattern, vg_lite_draw_custom)"},
	{"target", "Target buffer as width,height,FORMAT"},
	{"source", "Source buffer as width,height,FORMAT"},
	{"matrix", "Transform as nine comma-separated floats"},
	{"pattern-matrix", "Pattern transform as nine comma-separated floats"},
	{"rect", "Rectangle as x,y,width,height"},
	{"path-bounding-box", "Path bounding box as left,top,right,bottom"},
	{"blend", "Blend mode, e.g. VG_LITE_BLEND_SRC_OVER"},
	{"fill-rule", "Fill rule, e.g. VG_LITE_FILL_NON_ZERO"},
	{"filter", "Filter, e.g. VG_LITE_FILTER_BI_LINEAR"},
	{"pattern-mode", "Pattern mode, e.g. VG_LITE_PATTERN_REPEAT"},
	{"color", "Paint color as hex AABBGGRR"},
	{"pattern-color", "Pattern color as hex AABBGGRR"},
	{"source-color", "Source clear color as hex AABBGGRR"},
	{"scissor", "Scissor as x,y,right,bottom"},
}

func newRunCmd(g *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run one driver function and save the target buffer",
		Long: `Allocates the target and source buffers, clears the target to white and
the source to --source-color, runs the selected function and saves the target.

Example:
  vgbuf run --func vg_lite_clear --rect 0,0,100,100 --color ff0000ff -o red.png
  vgbuf run --target 320,240,VG_LITE_RGB565 --func vg_lite_blit -o blit.bmp`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := configFromFlags(cmd.Flags())
			if err != nil {
				return err
			}
			return runOne(cmd, g, cfg)
		},
	}

	cmd.Flags().StringP("output", "o", "target.png", "Output image (.png, .bmp, .tiff)")
	for _, o := range runOptions {
		cmd.Flags().String(o.name, "", o.usage)
	}
	return cmd
}

// configFromFlags applies every flag that was set on the command line.
func configFromFlags(fs *pflag.FlagSet) (config.Config, error) {
	cfg := config.Default()
	var err error
	fs.Visit(func(f *pflag.Flag) {
		if err == nil {
			err = cfg.Set(f.Name, f.Value.String())
		}
	})
	return cfg, err
}

func runOne(cmd *cobra.Command, g *globalFlags, cfg config.Config) error {
	alloc, err := g.newAllocator()
	if err != nil {
		return err
	}
	res, err := harness.Run(cmd.Context(), cfg, harness.Deps{
		Buffers: harness.Direct(alloc),
		Driver:  render.NewSoftwareDriver(),
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch {
	case res.Skipped:
		warnColor.Fprintf(out, "! %s: unknown function, nothing drawn\n", res.Function)
	case res.FuncErr != nil:
		failColor.Fprintf(out, "✗ %s: %v\n", res.Function, res.FuncErr)
	default:
		okColor.Fprintf(out, "✓ %s\n", res.Function)
	}
	printf(out, "  target %s\n  saved  %s\n", res.Target.String(), res.Output)
	if res.FuncErr != nil {
		return fmt.Errorf("%w: %s: %w", errRunFailed, res.Function, res.FuncErr)
	}
	return nil
}
